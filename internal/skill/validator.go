package skill

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.json
var schemaFS embed.FS

// SupportedManifestVersions is the semver constraint manifestVersion must meet.
const SupportedManifestVersions = "~1"

// Schema names one of the embedded JSON schemas.
type Schema string

const (
	SchemaManifest      Schema = "skill.schema.json"
	SchemaModel         Schema = "model.schema.json"
	SchemaLanguageModel Schema = "language-model.schema.json"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

var (
	compileOnce sync.Once
	compiled    map[Schema]*jsonschema.Schema
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a validation. Valid is false when
// at least one issue has SeverityError.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single finding.
type ValidationIssue struct {
	Path     string // instance location, e.g. "/manifest/publishingInformation/locales"
	Message  string
	Keyword  string // failing schema keyword, or a check name for non-schema checks
	Severity string
}

// Summary joins the error issues into one line.
func (r *ValidationResult) Summary() string {
	var parts []string
	for _, issue := range r.Issues {
		if issue.Severity != SeverityError {
			continue
		}
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}

func (r *ValidationResult) add(issue ValidationIssue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == SeverityError {
		r.Valid = false
	}
}

// getSchema compiles all embedded schemas once and returns the named one.
func getSchema(name Schema) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		entries, err := schemaFS.ReadDir("schema")
		if err != nil {
			compileErr = fmt.Errorf("reading embedded schemas: %w", err)
			return
		}
		for _, entry := range entries {
			data, err := schemaFS.ReadFile(path.Join("schema", entry.Name()))
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", entry.Name(), err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", entry.Name(), err)
				return
			}
			if err := c.AddResource(entry.Name(), doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", entry.Name(), err)
				return
			}
		}

		compiled = make(map[Schema]*jsonschema.Schema)
		for _, name := range []Schema{SchemaManifest, SchemaModel, SchemaLanguageModel} {
			sch, err := c.Compile(string(name))
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", name, err)
				return
			}
			compiled[name] = sch
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	sch, ok := compiled[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return sch, nil
}

// Validate checks doc against the named schema. The error return is for
// encoding or schema compilation failures; findings go in the result.
func Validate(name Schema, doc Document) (*ValidationResult, error) {
	schema, err := getSchema(name)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so editor-built values ([]string, bool, ...)
	// have the shapes the validator expects.
	data, err := doc.Marshal()
	if err != nil {
		return nil, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	result := &ValidationResult{Valid: true}
	err = schema.Validate(inst)
	if err == nil {
		return result, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	for _, issue := range extractIssues(validationErr) {
		result.add(issue)
	}
	return result, nil
}

// ValidateManifest checks the manifest schema, the manifestVersion
// constraint, and warns about categories outside KnownCategories.
func ValidateManifest(doc Document) (*ValidationResult, error) {
	result, err := Validate(SchemaManifest, doc)
	if err != nil {
		return nil, err
	}

	if m, err := doc.Object(fieldManifest); err == nil {
		if v, ok := m["manifestVersion"].(string); ok {
			if issue, bad := checkManifestVersion(v); bad {
				result.add(issue)
			}
		}
	}

	if info, err := doc.PublishingInformation(); err == nil {
		if c, ok := info[fieldCategory].(string); ok && !IsKnownCategory(c) {
			result.add(ValidationIssue{
				Path:     "/manifest/publishingInformation/category",
				Message:  fmt.Sprintf("%q is not a known category", c),
				Keyword:  "category",
				Severity: SeverityWarning,
			})
		}
	}
	return result, nil
}

// ValidateModel checks a locale model document.
func ValidateModel(doc Document) (*ValidationResult, error) {
	return Validate(SchemaModel, doc)
}

// ValidateLanguageModel checks a file passed to SetLanguageModel.
func ValidateLanguageModel(doc Document) (*ValidationResult, error) {
	return Validate(SchemaLanguageModel, doc)
}

func checkManifestVersion(v string) (ValidationIssue, bool) {
	issue := ValidationIssue{
		Path:     "/manifest/manifestVersion",
		Keyword:  "manifestVersion",
		Severity: SeverityError,
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		issue.Message = fmt.Sprintf("%q is not a version", v)
		return issue, true
	}
	constraint, err := semver.NewConstraint(SupportedManifestVersions)
	if err != nil {
		issue.Message = err.Error()
		return issue, true
	}
	if !constraint.Check(version) {
		issue.Message = fmt.Sprintf("manifest version %s is not supported (want %s)", v, SupportedManifestVersions)
		return issue, true
	}
	return issue, false
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message:  ve.Error(),
			Severity: SeverityError,
		}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords carry no detail of their own.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:     path,
			Message:  msg,
			Keyword:  keyword,
			Severity: SeverityError,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
