package cmd

import (
	"io/fs"
	"strings"

	"github.com/gobwas/glob"
)

const defaultPattern = "**.livemd"

// notebooks resolves command arguments to notebook paths. Plain arguments
// are taken literally; arguments containing glob metacharacters are matched
// against the whole tree. With no arguments, every .livemd file is selected.
func notebooks(fsys fs.FS, args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{defaultPattern}
	}

	var (
		files []string
		seen  = make(map[string]bool)
	)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true

			files = append(files, path)
		}
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, `*?[{`) {
			add(arg)

			continue
		}

		g, err := glob.Compile(arg, '/')
		if err != nil {
			return nil, err
		}

		err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && g.Match(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, errNoNotebooks
	}

	return files, nil
}
