package skill

import (
	"testing"
)

func TestValidateManifest_Valid(t *testing.T) {
	for _, file := range []string{"skill.json", "skill-multi.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateManifest(mustLoad(t, testPath(file)))
			if err != nil {
				t.Fatalf("ValidateManifest: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues:")
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
	}{
		{
			"missing manifest",
			`{}`,
			"required",
		},
		{
			"no locales",
			`{"manifest": {"publishingInformation": {"locales": {}}}}`,
			"minProperties",
		},
		{
			"keywords not a list",
			`{"manifest": {"publishingInformation": {"locales": {"en-US": {"keywords": "space"}}}}}`,
			"type",
		},
		{
			"privacy flag not boolean",
			`{"manifest": {"publishingInformation": {"locales": {"en-US": {}}}, "privacyAndCompliance": {"containsAds": "no"}}}`,
			"type",
		},
		{
			"unsupported manifest version",
			`{"manifest": {"manifestVersion": "2.0", "publishingInformation": {"locales": {"en-US": {}}}}}`,
			"manifestVersion",
		},
		{
			"garbage manifest version",
			`{"manifest": {"manifestVersion": "latest", "publishingInformation": {"locales": {"en-US": {}}}}}`,
			"manifestVersion",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateManifest(mustParse(t, tt.doc))
			if err != nil {
				t.Fatalf("ValidateManifest: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid, got valid")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with keyword %q in %+v", tt.keyword, result.Issues)
			}
			if result.Summary() == "" {
				t.Error("Summary() should not be empty for an invalid result")
			}
		})
	}
}

func TestValidateManifest_UnknownCategoryIsWarning(t *testing.T) {
	doc := mustParse(t, `{"manifest": {"publishingInformation": {"category": "SPACE", "locales": {"en-US": {}}}}}`)
	result, err := ValidateManifest(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Fatalf("unknown category must not invalidate the manifest: %+v", result.Issues)
	}
	if len(result.Issues) != 1 || result.Issues[0].Severity != SeverityWarning {
		t.Errorf("Issues = %+v, want one warning", result.Issues)
	}
}

func TestValidateModel(t *testing.T) {
	result, err := ValidateModel(mustLoad(t, testPath("models/en-US.json")))
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Errorf("expected valid model, got %+v", result.Issues)
	}

	result, err = ValidateModel(mustParse(t, `{"interactionModel": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid {
		t.Error("model without languageModel should be invalid")
	}
}

func TestValidateLanguageModel(t *testing.T) {
	tests := []struct {
		file  string
		valid bool
	}{
		{"language-model.json", true},
		{"bad-language-model.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateLanguageModel(mustLoad(t, testPath(tt.file)))
			if err != nil {
				t.Fatal(err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues %+v)", result.Valid, tt.valid, result.Issues)
			}
		})
	}
}
