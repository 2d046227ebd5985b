package skill

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSingleLocale(t *testing.T) {
	tests := []struct {
		name    string
		locales string
		want    string
		wantErr bool
	}{
		{"one", `{"en-US": {}}`, "en-US", false},
		{"none", `{}`, "", true},
		{"two", `{"en-US": {}, "en-GB": {}}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifestWithLocales(t, tt.locales).SingleLocale()
			if tt.wantErr {
				if !errors.Is(err, ErrLocaleCount) {
					t.Fatalf("error = %v, want ErrLocaleCount", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SingleLocale: %v", err)
			}
			if got != tt.want {
				t.Errorf("SingleLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleLocale_MissingLocales(t *testing.T) {
	doc := mustParse(t, `{"manifest": {"publishingInformation": {}}}`)
	if _, err := doc.SingleLocale(); !errors.Is(err, ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
}

func TestLocaleNames_Sorted(t *testing.T) {
	names, err := manifestWithLocales(t, `{"fr-FR": {}, "de-DE": {}, "en-US": {}}`).LocaleNames()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"de-DE", "en-US", "fr-FR"}, names); diff != "" {
		t.Errorf("LocaleNames mismatch (-want +got):\n%s", diff)
	}
}

func TestSetPrivacy_Defaults(t *testing.T) {
	doc := manifestWithLocales(t, `{"en-US": {}}`)
	if err := doc.SetPrivacy(DefaultPrivacy()); err != nil {
		t.Fatalf("SetPrivacy: %v", err)
	}

	got, err := doc.Object("manifest", "privacyAndCompliance")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"allowsPurchases":   false,
		"isExportCompliant": true,
		"containsAds":       false,
		"isChildDirected":   false,
		"usesPersonalInfo":  false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("privacyAndCompliance mismatch (-want +got):\n%s", diff)
	}
}

func TestSetPrivacy_ReplacesExistingRecord(t *testing.T) {
	doc := mustParse(t, `{"manifest": {"privacyAndCompliance": {"containsAds": true, "locales": {"en-US": {}}}}}`)
	if err := doc.SetPrivacy(DefaultPrivacy()); err != nil {
		t.Fatal(err)
	}
	got, _ := doc.Object("manifest", "privacyAndCompliance")
	if _, ok := got["locales"]; ok {
		t.Error("privacyAndCompliance should be replaced, old locales key survived")
	}
	if got["containsAds"] != false {
		t.Errorf("containsAds = %v, want false", got["containsAds"])
	}
}

func TestSetIcons(t *testing.T) {
	doc := manifestWithLocales(t, `{"en-US": {"name": "x"}}`)
	if err := doc.SetIcons("a.png", "b.png"); err != nil {
		t.Fatalf("SetIcons: %v", err)
	}
	entry, _ := doc.LocaleEntry()
	if entry["smallIconUri"] != "a.png" {
		t.Errorf("smallIconUri = %v, want a.png", entry["smallIconUri"])
	}
	if entry["largeIconUri"] != "b.png" {
		t.Errorf("largeIconUri = %v, want b.png", entry["largeIconUri"])
	}
	if entry["name"] != "x" {
		t.Errorf("name = %v, other fields should be untouched", entry["name"])
	}
}

func TestSetKeywords_Replaces(t *testing.T) {
	doc := manifestWithLocales(t, `{"en-US": {"keywords": ["old", "words", "here"]}}`)
	if err := doc.SetKeywords([]string{"x", "y"}); err != nil {
		t.Fatalf("SetKeywords: %v", err)
	}
	entry, _ := doc.LocaleEntry()
	if diff := cmp.Diff([]any{"x", "y"}, entry["keywords"]); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestLocaleSetters(t *testing.T) {
	tests := []struct {
		field string
		set   func(Document) error
		want  any
	}{
		{"summary", func(d Document) error { return d.SetSummary("S") }, "S"},
		{"description", func(d Document) error { return d.SetDescription("D") }, "D"},
		{"name", func(d Document) error { return d.SetSkillName("Space Facts") }, "Space Facts"},
		{"examplePhrases", func(d Document) error { return d.SetExamplePhrases([]string{"Alexa, open it"}) }, []any{"Alexa, open it"}},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			doc := manifestWithLocales(t, `{"en-US": {}}`)
			if err := tt.set(doc); err != nil {
				t.Fatalf("set %s: %v", tt.field, err)
			}
			entry, _ := doc.LocaleEntry()
			if diff := cmp.Diff(tt.want, entry[tt.field]); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.field, diff)
			}
		})
	}
}

func TestLocaleSetters_RequireSingleLocale(t *testing.T) {
	doc := manifestWithLocales(t, `{"en-US": {}, "en-GB": {}}`)
	setters := map[string]func() error{
		"icons":    func() error { return doc.SetIcons("a", "b") },
		"keywords": func() error { return doc.SetKeywords([]string{"k"}) },
		"summary":  func() error { return doc.SetSummary("s") },
		"name":     func() error { return doc.SetSkillName("n") },
	}
	for name, set := range setters {
		if err := set(); !errors.Is(err, ErrLocaleCount) {
			t.Errorf("%s: error = %v, want ErrLocaleCount", name, err)
		}
	}
}

func TestPublishingSetters_IgnoreLocaleCount(t *testing.T) {
	doc := manifestWithLocales(t, `{"en-US": {}, "en-GB": {}}`)
	if err := doc.SetTestingInstructions("say hi"); err != nil {
		t.Fatalf("SetTestingInstructions: %v", err)
	}
	if err := doc.SetCategory("NOT_A_REAL_CATEGORY"); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	info, _ := doc.PublishingInformation()
	if info["testingInstructions"] != "say hi" {
		t.Errorf("testingInstructions = %v", info["testingInstructions"])
	}
	if info["category"] != "NOT_A_REAL_CATEGORY" {
		t.Errorf("category = %v", info["category"])
	}
}

func TestMoveLocale(t *testing.T) {
	doc := manifestWithLocales(t, `{"en-US": {"name": "Space Facts"}}`)

	old, moved, err := doc.MoveLocale("en-GB")
	if err != nil {
		t.Fatalf("MoveLocale: %v", err)
	}
	if old != "en-US" || !moved {
		t.Errorf("MoveLocale = (%q, %v), want (en-US, true)", old, moved)
	}
	locales, _ := doc.Locales()
	want := map[string]any{"en-GB": map[string]any{"name": "Space Facts"}}
	if diff := cmp.Diff(want, locales); diff != "" {
		t.Errorf("locales mismatch (-want +got):\n%s", diff)
	}

	if _, moved, err := doc.MoveLocale("en-GB"); err != nil || moved {
		t.Errorf("MoveLocale to current key = (moved %v, err %v), want no-op", moved, err)
	}
}

func TestIsKnownCategory(t *testing.T) {
	if !IsKnownCategory("GAMES") {
		t.Error("GAMES should be known")
	}
	if IsKnownCategory("games") {
		t.Error("categories are case sensitive")
	}
}
