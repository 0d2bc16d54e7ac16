// Package livemd extracts code cells from Livebook notebooks.
//
// A notebook is plain markdown-like text. Code cells are fenced blocks
// tagged with the notebook language; a cell preceded by the annotation
// comment `<!-- livebook:{"force_markdown":true} -->` is display-only and
// excluded from the executable source. Cell contents are treated as opaque
// text: nothing here parses or runs the extracted code.
package livemd

import "strings"

// DefaultTag is the fence tag recognized by the package-level functions.
const DefaultTag = "elixir"

// Cell is one fenced code cell of a notebook.
type Cell struct {
	// Source is the exact text between the fences, including internal
	// blank lines and the trailing newline before the closing fence.
	Source string

	// DocOnly reports whether a force-markdown annotation immediately
	// preceded the cell, with at most whitespace in between.
	DocOnly bool

	// Info is the text after the tag on the opening fence line.
	Info string

	// Meta holds key-value attributes parsed from Info, or nil.
	Meta Meta

	// StartLine and EndLine are the 1-based lines of the opening and
	// closing fences.
	StartLine int
	EndLine   int
}

// Extractor extracts code cells for one fence tag.
type Extractor struct {
	tag string
}

// New returns an Extractor recognizing fences tagged with tag.
// An empty tag selects [DefaultTag].
func New(tag string) *Extractor {
	if tag == "" {
		tag = DefaultTag
	}

	return &Extractor{tag: tag}
}

// AllCells returns every code cell of the notebook in document order,
// including display-only ones.
func (e *Extractor) AllCells(notebook string) ([]Cell, error) {
	nodes, err := scan(notebook, e.tag)
	if err != nil {
		return nil, err
	}

	var cells []Cell

	for _, n := range nodes {
		if n.kind == nodeCell {
			cells = append(cells, n.cell)
		}
	}

	return cells, nil
}

// CodeCells returns the source of every executable cell in document order,
// skipping display-only cells.
func (e *Extractor) CodeCells(notebook string) ([]string, error) {
	cells, err := e.AllCells(notebook)
	if err != nil {
		return nil, err
	}

	var sources []string

	for _, cell := range cells {
		if !cell.DocOnly {
			sources = append(sources, cell.Source)
		}
	}

	return sources, nil
}

// ExecutableSource returns the notebook's executable cells joined into a
// single listing; see [Join]. A malformed notebook yields an empty string:
// callers of this view expect a plain string and cannot handle a structured
// error. The structured views never downgrade errors this way.
func (e *Extractor) ExecutableSource(notebook string) string {
	sources, err := e.CodeCells(notebook)
	if err != nil {
		return ""
	}

	return Join(sources)
}

// Join renders cell sources as one listing: each entry right-trimmed,
// entries separated by exactly one blank line, the result trimmed. An empty
// list yields an empty string.
func Join(sources []string) string {
	trimmed := make([]string, len(sources))

	for i, src := range sources {
		trimmed[i] = strings.TrimRight(src, " \t\r\n")
	}

	return strings.TrimSpace(strings.Join(trimmed, "\n\n"))
}

// AllCells extracts every cell using the default tag.
func AllCells(notebook string) ([]Cell, error) {
	return New(DefaultTag).AllCells(notebook)
}

// CodeCells extracts executable cell sources using the default tag.
func CodeCells(notebook string) ([]string, error) {
	return New(DefaultTag).CodeCells(notebook)
}

// ExecutableSource extracts the joined executable listing using the
// default tag.
func ExecutableSource(notebook string) string {
	return New(DefaultTag).ExecutableSource(notebook)
}
