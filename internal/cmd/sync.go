package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"io/fs"

	"github.com/ezerfernandes/livemd/internal/livemd"
	"github.com/ezerfernandes/livemd/internal/region"
	"github.com/spf13/cobra"
)

//go:embed help/sync.md
var syncHelp string

const syncArgs = 2

func syncCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "sync [flags] notebook target",
		Short: "Splice a notebook's executable code into a target file",
		Long:  syncHelp,
		Args:  cobra.ExactArgs(syncArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return syncRun(opts, args[0], args[1], name)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVar(&name, "region", "livemd", "name of the target #region to replace")

	return cmd
}

func syncRun(opts *options, notebook, target, name string) error {
	src, err := fs.ReadFile(opts.fsys, notebook)
	if err != nil {
		return err
	}

	sources, err := opts.extractor().CodeCells(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", notebook, err)
	}

	code := livemd.Join(sources)

	old, err := fs.ReadFile(opts.fsys, target)
	if err != nil {
		return err
	}

	updated, found, err := region.Replace(old, name, []byte(code))
	if err != nil {
		return fmt.Errorf("%s: %w", target, err)
	}

	if !found {
		return fmt.Errorf("%s: region %q not found", target, name)
	}

	if bytes.Equal(old, updated) {
		opts.status("%s: unchanged\n", target)

		return nil
	}

	if err := opts.writeFile(target, updated); err != nil {
		return err
	}

	opts.status("%s: updated region %q from %s\n", target, name, notebook)

	return nil
}
