package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/gowot/td"
)

func newIDCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print fresh urn:uuid Thing identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for range n {
				fmt.Fprintln(cmd.OutOrStdout(), td.NewThingID())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of identifiers")
	return cmd
}
