// Package cli contains the gowot command definitions.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/i18n"
	"github.com/reoring/gowot/node"
)

type options struct {
	verbose  bool
	lang     string
	maxDepth int
	maxBytes int64
}

// NewRootCmd returns the root command with every subcommand registered.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gowot",
		Short:         "Inspect and normalise W3C WoT Thing Descriptions and Thing Models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				gowot.SetLogger(slog.New(h))
			}
			if opts.lang != "" {
				i18n.SetLanguage(opts.lang)
			}
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log values dropped by lenient decoding")
	pf.StringVar(&opts.lang, "lang", "", "language of issue messages (en, ja)")
	pf.IntVar(&opts.maxDepth, "max-depth", 0, "maximum nesting depth of input documents (0: unlimited)")
	pf.Int64Var(&opts.maxBytes, "max-bytes", 0, "maximum size of input documents in bytes (0: unlimited)")

	root.AddCommand(newCheckCmd(opts), newFmtCmd(opts), newSchemaCmd(opts), newIDCmd())
	return root
}

// Run executes the CLI with args, writing to stdout and stderr. The package
// logger and message language are restored on return.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	logger, tr := gowot.Logger(), i18n.Current()
	defer func() {
		gowot.SetLogger(logger)
		i18n.SetTranslator(tr)
	}()
	return root.ExecuteContext(ctx)
}

func (o *options) parseOptions() []node.ParseOption {
	return []node.ParseOption{node.WithOptions(node.ParseOptions{MaxDepth: o.maxDepth, MaxBytes: o.maxBytes})}
}

// readDocument parses path as YAML when its extension says so and as JSON
// otherwise. "-" reads stdin.
func (o *options) readDocument(cmd *cobra.Command, path string) (node.Node, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return node.ParseYAML(data, o.parseOptions()...)
	}
	return node.ParseJSON(data, o.parseOptions()...)
}

func printIssues(w io.Writer, path string, err error) {
	for _, it := range gowot.ToIssues(err) {
		line := fmt.Sprintf("%s:%s: %s: %s", path, it.Path, it.Code, it.Message)
		if it.Hint != "" {
			line += " (" + it.Hint + ")"
		}
		fmt.Fprintln(w, line)
	}
}
