package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/gowot/td"
)

var errInvalid = errors.New("invalid documents")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Decode documents and report every issue",
		Long: `Decode each Thing Description or Thing Model and report every issue
with its JSON Pointer. Documents whose @type carries tm:ThingModel are
checked as Thing Models. Files ending in .yaml or .yml are read as YAML;
"-" reads stdin.`,
		Example: `  gowot check lamp.td.json
  gowot --lang ja check model.tm.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := checkOne(cmd, opts, path); err != nil {
					printIssues(cmd.ErrOrStderr(), path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalid, failed, len(args))
			}
			return nil
		},
	}
}

func checkOne(cmd *cobra.Command, opts *options, path string) error {
	n, err := opts.readDocument(cmd, path)
	if err != nil {
		return err
	}
	thing, err := td.ThingFromJSON(n)
	if err != nil {
		return err
	}
	kind := "ThingDescription"
	if thing.IsThingModel() {
		kind = "ThingModel"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d properties, %d actions, %d events, %d security definitions)\n",
		path, kind, thing.Properties().Len(), thing.Actions().Len(), thing.Events().Len(), thing.SecurityDefinitions().Len())
	return nil
}
