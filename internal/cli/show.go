package cli

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/askedit/internal/skill"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	var (
		showModel bool
		showYAML  bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the manifest or the single locale's model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := skill.Open(opts.manifest, skill.NewDirStore(opts.modelsDir), skill.WithLogger(opts.logger))
			if err != nil {
				return err
			}

			doc := editor.Document()
			if showModel {
				if doc, err = editor.Model(); err != nil {
					return err
				}
			}

			if showYAML {
				out, err := yaml.Marshal(yamlValue(map[string]any(doc)))
				if err != nil {
					return fmt.Errorf("marshaling as YAML: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				return nil
			}

			out, err := doc.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showModel, "model", false, "Show models/<locale>.json of the single locale instead of the manifest")
	cmd.Flags().BoolVar(&showYAML, "yaml", false, "Output as YAML")
	return cmd
}

// yamlValue turns json.Number into int64 or float64 so YAML prints numbers
// rather than quoted strings.
func yamlValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = yamlValue(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = yamlValue(v)
		}
		return a
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return val
	}
}
