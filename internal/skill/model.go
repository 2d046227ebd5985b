package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/agentx-labs/askedit/internal/platform"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fieldInteractionModel = "interactionModel"
	fieldLanguageModel    = "languageModel"
	fieldInvocationName   = "invocationName"
)

// ModelStore loads and saves locale model documents by locale identifier.
type ModelStore interface {
	Load(locale string) (Document, error)
	Save(locale string, doc Document) error
	Rename(oldLocale, newLocale string) error
}

// DirStore keeps one model document per locale in Dir, named <locale>.json.
type DirStore struct {
	Dir string
}

// NewDirStore returns a DirStore rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

// Path returns the model document path for locale.
func (s *DirStore) Path(locale string) string {
	return filepath.Join(s.Dir, locale+".json")
}

// Load reads the model document for locale. A missing file is ErrModelNotFound.
func (s *DirStore) Load(locale string) (Document, error) {
	path := s.Path(locale)
	doc, err := LoadDocument(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
	}
	return doc, err
}

// Save writes the model document for locale.
func (s *DirStore) Save(locale string, doc Document) error {
	return WriteDocument(s.Path(locale), doc)
}

// Rename moves the model file of oldLocale to newLocale. It fails when the
// source is missing or the target already exists.
func (s *DirStore) Rename(oldLocale, newLocale string) error {
	err := platform.RenameNoClobber(s.Path(oldLocale), s.Path(newLocale))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrModelNotFound, err)
	}
	return err
}

// LanguageModel returns interactionModel.languageModel.
func (d Document) LanguageModel() (map[string]any, error) {
	return d.Object(fieldInteractionModel, fieldLanguageModel)
}

// InvocationName returns the invocation name, or "" when unset.
func (d Document) InvocationName() (string, error) {
	lm, err := d.LanguageModel()
	if err != nil {
		return "", err
	}
	name, _ := lm[fieldInvocationName].(string)
	return name, nil
}

// SetInvocationName lowercases name using the casing rules of locale and
// stores it as interactionModel.languageModel.invocationName.
func (d Document) SetInvocationName(locale, name string) error {
	lm, err := d.LanguageModel()
	if err != nil {
		return err
	}
	lm[fieldInvocationName] = lowercase(locale, name)
	return nil
}

// ReplaceLanguageModel replaces interactionModel.languageModel with the
// languageModel object of src.
func (d Document) ReplaceLanguageModel(src Document) error {
	lm, err := src.Object(fieldLanguageModel)
	if err != nil {
		return err
	}
	im, err := d.Object(fieldInteractionModel)
	if err != nil {
		return err
	}
	im[fieldLanguageModel] = lm
	return nil
}

func lowercase(locale, s string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return cases.Lower(tag).String(s)
}
