package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/agentx-labs/askedit/internal/logging"
)

// Editor holds the manifest of one run and applies operations to it.
type Editor struct {
	path   string
	doc    Document
	models ModelStore
	logger *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used to report applied operations and writes.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// Open loads the manifest at path. A missing file is ErrManifestNotFound.
func Open(path string, models ModelStore, opts ...Option) (*Editor, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, err
	}
	e := New(doc, models, opts...)
	e.path = path
	return e, nil
}

// New returns an editor over an in-memory manifest. Save fails until the
// editor has a path; use SaveAs instead.
func New(doc Document, models ModelStore, opts ...Option) *Editor {
	e := &Editor{
		doc:    doc,
		models: models,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the manifest path, or "" for an in-memory editor.
func (e *Editor) Path() string { return e.path }

// Document returns the manifest being edited.
func (e *Editor) Document() Document { return e.doc }

// SingleLocale returns the manifest's only locale.
func (e *Editor) SingleLocale() (string, error) { return e.doc.SingleLocale() }

// Apply runs ops in order. The first failing operation stops the sequence
// and its error is returned; model documents already written stay written.
func (e *Editor) Apply(ops ...Operation) error {
	for _, op := range ops {
		if err := op.apply(e); err != nil {
			return fmt.Errorf("%s: %w", op.Name, err)
		}
		e.logger.Debug("applied operation", "operation", op.Name)
	}
	return nil
}

// Save writes the manifest back to the path it was opened from.
func (e *Editor) Save() error {
	if e.path == "" {
		return errors.New("saving manifest: editor has no path")
	}
	return e.SaveAs(e.path)
}

// SaveAs writes the manifest to path.
func (e *Editor) SaveAs(path string) error {
	if err := WriteDocument(path, e.doc); err != nil {
		return fmt.Errorf("saving manifest %s: %w", path, err)
	}
	e.logger.Info("saved manifest", "path", path)
	return nil
}

// Model loads the model document of the single locale.
func (e *Editor) Model() (Document, error) {
	locale, err := e.doc.SingleLocale()
	if err != nil {
		return nil, err
	}
	return e.models.Load(locale)
}

func (e *Editor) changeLocale(newLocale string) error {
	locales, err := e.doc.Locales()
	if err != nil {
		return err
	}
	if _, ok := locales[newLocale]; ok {
		e.logger.Debug("locale unchanged", "locale", newLocale)
		return nil
	}
	old, err := e.doc.SingleLocale()
	if err != nil {
		return err
	}

	// Rename on disk first so a failed rename leaves the manifest untouched.
	if err := e.models.Rename(old, newLocale); err != nil {
		return err
	}
	if _, _, err := e.doc.MoveLocale(newLocale); err != nil {
		return err
	}
	e.logger.Info("changed locale", "from", old, "to", newLocale)
	return nil
}

// updateModel loads the single locale's model, applies fn and writes it back.
// The locale is resolved here, after any earlier locale change.
func (e *Editor) updateModel(fn func(locale string, model Document) error) error {
	locale, err := e.doc.SingleLocale()
	if err != nil {
		return err
	}
	model, err := e.models.Load(locale)
	if err != nil {
		return err
	}
	if err := fn(locale, model); err != nil {
		return err
	}
	if err := e.models.Save(locale, model); err != nil {
		return fmt.Errorf("saving model for %s: %w", locale, err)
	}
	e.logger.Info("saved model", "locale", locale)
	return nil
}

func (e *Editor) setLanguageModel(path string) error {
	if _, err := e.doc.SingleLocale(); err != nil {
		return err
	}
	src, err := LoadDocument(path)
	if err != nil {
		return err
	}
	result, err := ValidateLanguageModel(src)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("%w: %s: %s", ErrInvalidDocument, path, result.Summary())
	}
	return e.updateModel(func(_ string, model Document) error {
		return model.ReplaceLanguageModel(src)
	})
}

