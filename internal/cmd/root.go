// Package cmd implements the livemd command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ezerfernandes/livemd/internal/livemd"
	"github.com/spf13/cobra"
)

const fileMode = 0o644

type statusFunc func(format string, args ...any)

// options carries the state shared by all subcommands. File reads go
// through fsys and writes through writeFile, so tests can run the whole
// CLI against an in-memory filesystem.
type options struct {
	fsys      fs.FS
	writeFile func(name string, data []byte) error

	tag    string
	quiet  bool
	status statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...any) {}

		return
	}

	o.status = func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}
}

func (o *options) extractor() *livemd.Extractor {
	return livemd.New(o.tag)
}

// Execute runs the CLI against the current directory and exits nonzero on
// failure.
func Execute(args []string, stdout, stderr io.Writer) {
	opts := &options{
		fsys: os.DirFS("."),
		writeFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, fileMode)
		},
	}

	if err := run(args, opts, stdout, stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, opts *options, stdout, stderr io.Writer) error {
	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func rootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "livemd",
		Short: "Extract code cells from Livebook notebooks",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
		},

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.tag, "tag", "t", livemd.DefaultTag, "fence tag marking code cells")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")

	cmd.AddCommand(extractCmd(opts))
	cmd.AddCommand(listCmd(opts))
	cmd.AddCommand(syncCmd(opts))

	return cmd
}

var errNoNotebooks = errors.New("no notebooks found")
