package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/gowot/node"
	"github.com/reoring/gowot/td"
)

func newFmtCmd(opts *options) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Re-emit a valid document with stable indentation",
		Long: `Decode a document and print it again. Member order and number
spelling are kept as written, unknown members included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := opts.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			thing, err := td.ThingFromJSON(n)
			if err != nil {
				printIssues(cmd.ErrOrStderr(), args[0], err)
				return errInvalid
			}
			var out []byte
			if asYAML {
				out, err = node.MarshalYAML(thing.ToJSON())
			} else {
				out, err = node.MarshalJSONIndent(thing.ToJSON(), "", "  ")
				out = append(out, '\n')
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write YAML instead of JSON")
	return cmd
}
