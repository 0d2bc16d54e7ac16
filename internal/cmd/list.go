package cmd

import (
	_ "embed"
	"fmt"
	"io/fs"

	"github.com/ezerfernandes/livemd/internal/mdblock"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [notebook...]",
		Aliases: []string{"ls"},
		Short:   "List the code cells of notebooks",
		Long:    listHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := notebooks(opts.fsys, args)
			if err != nil {
				return err
			}

			if all {
				return listFences(cmd, opts, files)
			}

			return listCells(cmd, opts, files)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every fenced block regardless of language")

	return cmd
}

func listCells(cmd *cobra.Command, opts *options, files []string) error {
	ext := opts.extractor()

	tbl := table.New("FILE", "CELL", "LINES", "KIND").WithWriter(cmd.OutOrStdout())

	for _, file := range files {
		src, err := fs.ReadFile(opts.fsys, file)
		if err != nil {
			return err
		}

		cells, err := ext.AllCells(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		for i, cell := range cells {
			tbl.AddRow(file, i, lineSpan(cell.StartLine, cell.EndLine), cellKind(cell.DocOnly))
		}
	}

	tbl.Print()

	return nil
}

func listFences(cmd *cobra.Command, opts *options, files []string) error {
	tbl := table.New("FILE", "LANG", "LINES", "BYTES").WithWriter(cmd.OutOrStdout())

	for _, file := range files {
		src, err := fs.ReadFile(opts.fsys, file)
		if err != nil {
			return err
		}

		fences, err := mdblock.List(src)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		for _, fence := range fences {
			tbl.AddRow(file, fenceLang(fence.Lang), lineSpan(fence.StartLine, fence.EndLine), len(fence.Code))
		}
	}

	tbl.Print()

	return nil
}

func lineSpan(start, end int) string {
	return fmt.Sprintf("L%d-%d", start, end)
}

func cellKind(docOnly bool) string {
	if docOnly {
		return "markdown"
	}

	return "code"
}

func fenceLang(lang string) string {
	if len(lang) == 0 {
		return "-"
	}

	return lang
}
