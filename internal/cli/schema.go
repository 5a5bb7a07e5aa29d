package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	df "github.com/seismo/detectionformats"
)

func schemaCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the Detection document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := marshalIndent(df.DocumentSchema())
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			a.log.Debug("schema rendered")
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
