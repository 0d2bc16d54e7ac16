package cmd

import (
	_ "embed"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

//go:embed help/extract.md
var extractHelp string

func extractCmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] [notebook...]",
		Aliases: []string{"x"},
		Short:   "Print the executable code of notebooks",
		Long:    extractHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := notebooks(opts.fsys, args)
			if err != nil {
				return err
			}

			ext := opts.extractor()

			var failures int

			for _, file := range files {
				src, err := fs.ReadFile(opts.fsys, file)
				if err != nil {
					return err
				}

				if check {
					if _, cerr := ext.CodeCells(string(src)); cerr != nil {
						opts.status("%s: %v\n", file, cerr)

						failures++

						continue
					}
				}

				if len(files) > 1 {
					opts.status("--- %s ---\n", file)
				}

				if code := ext.ExecutableSource(string(src)); len(code) != 0 {
					fmt.Fprintln(cmd.OutOrStdout(), code)
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d notebook(s) failed", failures)
			}

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail on malformed notebooks instead of printing nothing")

	return cmd
}
