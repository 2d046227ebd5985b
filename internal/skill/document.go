package skill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentx-labs/askedit/internal/platform"
)

// Document is a decoded JSON object. Nested objects are map[string]any,
// arrays are []any and numbers are json.Number, so keys the editor does not
// know about survive a load/save cycle unchanged.
type Document map[string]any

// ParseDocument decodes a JSON object.
func ParseDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidDocument)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalidDocument)
	}
	return doc, nil
}

// LoadDocument reads and decodes the JSON object at path.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes the document with two-space indentation and a trailing
// newline. HTML characters are not escaped so URIs stay readable.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any(d)); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument writes doc to path, keeping the permissions of an existing file.
func WriteDocument(path string, doc Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	return platform.WriteFile(path, data, 0644)
}

// Object walks keys from the document root and returns the object found
// there. Every step must exist and be a JSON object.
func (d Document) Object(keys ...string) (map[string]any, error) {
	cur := map[string]any(d)
	for i, k := range keys {
		v, ok := cur[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(keys[:i+1], "."))
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not an object", ErrInvalidDocument, strings.Join(keys[:i+1], "."))
		}
		cur = m
	}
	return cur, nil
}

// stringList converts to the []any shape produced by decoding.
func stringList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
