// Package mdblock lists every fenced code block of a markdown document,
// regardless of language. It is the lenient counterpart to the notebook
// scanner: a full CommonMark parse that never fails, used to inspect
// fences the notebook extraction deliberately ignores.
package mdblock

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Fence is one fenced code block found in a document.
type Fence struct {
	Lang      string
	Info      string
	Code      []byte
	StartLine int
	EndLine   int
}

// List parses a markdown document and returns all fenced code blocks in
// document order.
func List(source []byte) ([]Fence, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	var fences []Fence

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		fences = append(fences, extractFence(fcb, source))

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return fences, nil
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		return fcb
	}

	return nil
}

func extractFence(fcb *ast.FencedCodeBlock, source []byte) Fence {
	fence := Fence{Code: extractCode(fcb, source)}
	fence.Lang, fence.Info = splitInfo(fcb, source)
	fence.StartLine, fence.EndLine = extractLines(fcb, source)

	return fence
}

func splitInfo(fcb *ast.FencedCodeBlock, source []byte) (string, string) {
	if fcb.Info == nil {
		return "", ""
	}

	all := reInfo.FindSubmatch(fcb.Info.Text(source))
	if all == nil {
		return "", ""
	}

	var lang, info string

	if len(all) > 1 {
		lang = string(all[1])
	}

	if len(all) > 2 {
		info = string(all[2])
	}

	return lang, info
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else {
		lines := fcb.Lines()
		if lines.Len() > 0 {
			startLine = lineAt(source, lines.At(0).Start) - 1
		}
	}

	lines := fcb.Lines()
	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}
