package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/agentx-labs/askedit/internal/skill"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the manifest and every locale's model document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), opts)
		},
	}
}

func runValidate(w io.Writer, opts *globalOptions) error {
	doc, err := skill.LoadDocument(opts.manifest)
	if err != nil {
		return err
	}

	failed := 0
	fmt.Fprintf(w, "Manifest: %s\n", opts.manifest)
	result, err := skill.ValidateManifest(doc)
	if err != nil {
		return err
	}
	if !printResult(w, result) {
		failed++
	}

	locales, err := doc.LocaleNames()
	if err != nil {
		// Already reported by the schema check.
		locales = nil
	}
	store := skill.NewDirStore(opts.modelsDir)
	for _, locale := range locales {
		fmt.Fprintf(w, "Model: %s\n", store.Path(locale))
		model, err := store.Load(locale)
		if err != nil {
			if errors.Is(err, skill.ErrModelNotFound) {
				fmt.Fprintf(w, "  [FAIL] model document not found\n")
			} else {
				fmt.Fprintf(w, "  [FAIL] %v\n", err)
			}
			failed++
			continue
		}
		result, err := skill.ValidateModel(model)
		if err != nil {
			return err
		}
		if !printResult(w, result) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d document(s) failed validation", failed)
	}
	return nil
}

// printResult writes one result and reports whether it was valid.
func printResult(w io.Writer, result *skill.ValidationResult) bool {
	if result.Valid && len(result.Issues) == 0 {
		fmt.Fprintln(w, "  [ OK ] valid")
		return true
	}
	for _, issue := range result.Issues {
		tag := "[FAIL]"
		if issue.Severity == skill.SeverityWarning {
			tag = "[WARN]"
		}
		if issue.Path != "" {
			fmt.Fprintf(w, "  %s %s: %s\n", tag, issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "  %s %s\n", tag, issue.Message)
		}
	}
	return result.Valid
}
