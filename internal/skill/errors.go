package skill

import "errors"

var (
	// ErrManifestNotFound is returned by Open when the manifest file is absent.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrModelNotFound is returned when a locale's model document is absent.
	ErrModelNotFound = errors.New("model document not found")

	// ErrLocaleCount is returned by single-locale operations when the manifest
	// does not define exactly one locale.
	ErrLocaleCount = errors.New("this option only works for single-locale skills")

	// ErrMissingField is returned when a required object is absent from a document.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidDocument is returned for unparseable or wrongly shaped documents.
	ErrInvalidDocument = errors.New("invalid document")
)
