package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func convertCommand(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-render a Detection document in canonical form",
		Long: `Parse a Detection document and write its canonical rendering.
Unknown Data elements are dropped and Data is reordered as picks, beams,
correlations. The document is not validated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var out []byte
			switch to {
			case "json":
				out, err = marshalIndent(d)
			case "yaml":
				out, err = yaml.Marshal(d)
			default:
				return fmt.Errorf("unsupported target format %q: must be json or yaml", to)
			}
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", args[0], err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "Target format: json, yaml")
	return cmd
}
