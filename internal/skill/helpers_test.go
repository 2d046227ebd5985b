package skill

import (
	"os"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

// project is a temp copy of testdata/skill.json and testdata/models.
type project struct {
	Dir       string
	Manifest  string
	ModelsDir string
}

func (p project) modelPath(locale string) string {
	return filepath.Join(p.ModelsDir, locale+".json")
}

func setupProject(t *testing.T) project {
	t.Helper()
	dir := t.TempDir()
	p := project{
		Dir:       dir,
		Manifest:  filepath.Join(dir, "skill.json"),
		ModelsDir: filepath.Join(dir, "models"),
	}
	if err := os.MkdirAll(p.ModelsDir, 0755); err != nil {
		t.Fatalf("creating models dir: %v", err)
	}
	copyFile(t, testPath("skill.json"), p.Manifest)
	copyFile(t, testPath("models/en-US.json"), p.modelPath("en-US"))
	return p
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("reading %s: %v", src, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		t.Fatalf("writing %s: %v", dst, err)
	}
}

func mustLoad(t *testing.T, path string) Document {
	t.Helper()
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument(%s): %v", path, err)
	}
	return doc
}

func mustParse(t *testing.T, s string) Document {
	t.Helper()
	doc, err := ParseDocument([]byte(s))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return doc
}

func manifestWithLocales(t *testing.T, locales string) Document {
	t.Helper()
	return mustParse(t, `{"manifest":{"publishingInformation":{"locales":`+locales+`}}}`)
}
