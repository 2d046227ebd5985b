package cli

import (
	"fmt"
	"log/slog"

	"github.com/agentx-labs/askedit/internal/branding"
	"github.com/agentx-labs/askedit/internal/config"
	"github.com/agentx-labs/askedit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// globalOptions are the persistent flags shared by every command, resolved
// against the user config before a command runs.
type globalOptions struct {
	manifest  string
	modelsDir string
	logLevel  string
	logFormat string

	logger *slog.Logger
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	edit := &editOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [flags]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` edits the publishing information, privacy settings and locale content of
skill.json, and the invocation name and language model in models/<locale>.json.

All edits are applied in one run. The manifest is saved once at the end; model
documents are written as soon as they change. --change-locale runs before
--invocation-name and --language-model, which then address the renamed model.`,
		Example: `  askedit --summary "Facts about space" --category EDUCATION_AND_REFERENCE
  askedit --change-locale en-GB --invocation-name "Space Facts"
  askedit -k space,facts -e "Alexa, open space facts" -e "Alexa, ask space facts for a fact"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, edit)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.manifest, "manifest", config.DefaultManifest, "Path to the skill manifest")
	pf.StringVar(&opts.modelsDir, "models-dir", "", "Directory of locale model documents (default: models/ next to the manifest)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	edit.register(cmd)

	cmd.AddCommand(
		newShowCmd(opts),
		newValidateCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// resolve fills unset flags from the user config and builds the logger.
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	config.Load()

	flags := cmd.Flags()
	if !flags.Changed("manifest") {
		o.manifest = config.ManifestPath()
	}
	if !flags.Changed("models-dir") {
		o.modelsDir = config.ModelsDir(o.manifest)
	}
	if !flags.Changed("log-level") {
		o.logLevel = config.Get(config.KeyLogLevel)
	}
	if !flags.Changed("log-format") {
		o.logFormat = config.Get(config.KeyLogFormat)
	}

	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}
	o.logger = logging.New(
		logging.WithLevel(level),
		logging.WithFormat(format),
		logging.WithOutput(cmd.ErrOrStderr()),
	)
	return nil
}
