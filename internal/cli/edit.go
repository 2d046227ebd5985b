package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/agentx-labs/askedit/internal/skill"
	"github.com/spf13/cobra"
)

// editOptions holds the edit flags of the root command.
type editOptions struct {
	keywords            []string
	icons               []string
	invocationName      string
	privacy             bool
	changeLocale        string
	summary             string
	description         string
	examplePhrases      []string
	skillName           string
	testingInstructions string
	category            string
	languageModel       string
}

func (o *editOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVarP(&o.keywords, "keywords", "k", nil, "Keywords for the skill (comma separated or repeated)")
	f.StringSliceVar(&o.icons, "icons", nil, "URLs of the small and large icon: SMALL,LARGE")
	f.StringVarP(&o.invocationName, "invocation-name", "i", "", "Invocation name (stored lowercase)")
	f.BoolVarP(&o.privacy, "privacy", "p", false, "Set privacy and compliance to the defaults (export compliant, everything else false)")
	f.StringVar(&o.changeLocale, "change-locale", "", "Move the single locale to a new locale identifier")
	f.StringVarP(&o.summary, "summary", "s", "", "A short summary for the skill")
	f.StringVarP(&o.description, "description", "d", "", "A full description for the skill")
	f.StringArrayVarP(&o.examplePhrases, "example-phrases", "e", nil, "Example phrase for the skill (repeat for several)")
	f.StringVarP(&o.skillName, "skill-name", "n", "", "The name of the skill (not the invocation name)")
	f.StringVarP(&o.testingInstructions, "testing-instructions", "t", "", "Testing instructions for the skill")
	f.StringVarP(&o.category, "category", "c", "", "The skill's category")
	f.StringVar(&o.languageModel, "language-model", "", "Replace the language model with the languageModel of this JSON file")
}

// operations returns the requested edits in their fixed order. Locale
// changes come before the model edits so those address the renamed file.
func (o *editOptions) operations() ([]skill.Operation, error) {
	if len(o.icons) != 0 && len(o.icons) != 2 {
		return nil, fmt.Errorf("--icons takes exactly two values (small and large icon URL), got %d", len(o.icons))
	}

	var ops []skill.Operation
	if o.privacy {
		ops = append(ops, skill.SetPrivacy(skill.DefaultPrivacy()))
	}
	if len(o.icons) == 2 {
		ops = append(ops, skill.SetIcons(o.icons[0], o.icons[1]))
	}
	if len(o.keywords) > 0 {
		ops = append(ops, skill.SetKeywords(o.keywords...))
	}
	if o.changeLocale != "" {
		ops = append(ops, skill.ChangeLocale(o.changeLocale))
	}
	if o.summary != "" {
		ops = append(ops, skill.SetSummary(o.summary))
	}
	if o.description != "" {
		ops = append(ops, skill.SetDescription(o.description))
	}
	if len(o.examplePhrases) > 0 {
		ops = append(ops, skill.SetExamplePhrases(o.examplePhrases...))
	}
	if o.skillName != "" {
		ops = append(ops, skill.SetSkillName(o.skillName))
	}
	if o.testingInstructions != "" {
		ops = append(ops, skill.SetTestingInstructions(o.testingInstructions))
	}
	if o.category != "" {
		ops = append(ops, skill.SetCategory(o.category))
	}
	if o.invocationName != "" {
		ops = append(ops, skill.SetInvocationName(o.invocationName))
	}
	if o.languageModel != "" {
		ops = append(ops, skill.SetLanguageModel(o.languageModel))
	}
	return ops, nil
}

func runEdit(cmd *cobra.Command, opts *globalOptions, edit *editOptions) error {
	if _, err := os.Stat(opts.manifest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s not found", opts.manifest)
		}
		return fmt.Errorf("checking manifest: %w", err)
	}

	ops, err := edit.operations()
	if err != nil {
		return err
	}
	if edit.category != "" && !skill.IsKnownCategory(edit.category) {
		opts.logger.Warn("category is not in the known category list", "category", edit.category)
	}

	editor, err := skill.Open(opts.manifest, skill.NewDirStore(opts.modelsDir), skill.WithLogger(opts.logger))
	if err != nil {
		return err
	}
	if err := editor.Apply(ops...); err != nil {
		return err
	}
	return editor.Save()
}
