package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/gowot/jsonschema"
	"github.com/reoring/gowot/td"
)

func newSchemaCmd(opts *options) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "schema FILE NAME",
		Short: "Export the data schema of an affordance as JSON Schema",
		Long: `Export one data schema of the named affordance as a JSON Schema
document. --from selects which schema: a property, the input or output of
an action, or the data of an event.`,
		Example: `  gowot schema lamp.td.json status
  gowot schema lamp.td.json toggle --from input`,
		Args: cobra.ExactArgs(2),
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
			s, err := pickSchema(thing, args[1], from)
			if err != nil {
				return err
			}
			out, err := jsonschema.Marshal(td.JSONSchemaOf(s))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "property", "property, input, output or data")
	return cmd
}

func pickSchema(thing td.Thing, name, from string) (td.DataSchema, error) {
	var (
		s  td.DataSchema
		ok bool
	)
	switch from {
	case "property":
		var p *td.PropertyAffordance
		if p, ok = thing.Properties().Get(name); ok {
			s = p
		}
	case "input", "output":
		a, found := thing.Actions().Get(name)
		if !found {
			return nil, fmt.Errorf("no action %q", name)
		}
		if from == "input" {
			s, ok = a.Input()
		} else {
			s, ok = a.Output()
		}
	case "data":
		e, found := thing.Events().Get(name)
		if !found {
			return nil, fmt.Errorf("no event %q", name)
		}
		s, ok = e.Data()
	default:
		return nil, fmt.Errorf("unknown --from %q", from)
	}
	if !ok {
		return nil, fmt.Errorf("%s of %q not found", from, name)
	}
	return s, nil
}
