package livemd

import (
	"encoding/json"
	"strings"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	markerPrefix = "livebook:"
	fenceToken   = "```"

	forceMarkdownKey = "force_markdown"
)

type nodeKind int

const (
	nodeMarker nodeKind = iota
	nodeCell
)

// node is one entry of the intermediate sequence a scan produces, in
// document order: either a force-markdown marker or a code cell.
type node struct {
	kind nodeKind
	cell Cell
}

// scanner walks a notebook left to right exactly once. At every position it
// tries the two recognized tokens (marker comment, opening fence) before
// consuming a single byte of ordinary content, so recognition never needs
// backtracking beyond the token lookahead itself.
type scanner struct {
	src string
	tag string

	pos  int
	line int

	// pending is the one-slot marker state: set when a marker comment is
	// consumed, handed to the next cell, dropped as soon as any
	// non-whitespace ordinary byte intervenes.
	pending bool

	nodes []node
}

func scan(src, tag string) ([]node, error) {
	s := &scanner{src: src, tag: tag, line: 1}

	for s.pos < len(s.src) {
		if s.marker() {
			continue
		}

		done, err := s.fence()
		if err != nil {
			return nil, err
		}

		if done {
			continue
		}

		s.ordinary()
	}

	if s.pos != len(s.src) {
		return nil, &ParseError{Pos: s.pos, Err: ErrIncompleteScan}
	}

	return s.nodes, nil
}

// marker matches the Livebook force-markdown annotation at the current
// position: an HTML comment whose body is `livebook:` followed by a JSON
// object with "force_markdown": true. Whitespace around the delimiters is
// tolerated. Anything that does not match exactly is left for the ordinary
// fallback, one byte at a time.
func (s *scanner) marker() bool {
	rest := s.src[s.pos:]
	if !strings.HasPrefix(rest, commentOpen) {
		return false
	}

	body := rest[len(commentOpen):]
	inner := strings.TrimLeft(body, " \t")

	if !strings.HasPrefix(inner, markerPrefix) {
		return false
	}

	payload := inner[len(markerPrefix):]

	end := strings.Index(payload, commentClose)
	if end < 0 {
		return false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload[:end])), &fields); err != nil {
		return false
	}

	force, ok := fields[forceMarkdownKey].(bool)
	if !ok || !force {
		return false
	}

	consumed := len(commentOpen) + (len(body) - len(inner)) +
		len(markerPrefix) + end + len(commentClose)

	s.advance(consumed)
	s.skipSpace()

	s.pending = true
	s.nodes = append(s.nodes, node{kind: nodeMarker})

	return true
}

// fence matches an opening fence at the current position: three backticks
// immediately followed by the configured tag, the rest of the opening line,
// and a newline. It then consumes the body verbatim until the next bare
// triple-backtick token. A fence that opens but never closes fails the whole
// scan, reported at the opening backtick.
func (s *scanner) fence() (bool, error) {
	rest := s.src[s.pos:]

	open := fenceToken + s.tag
	if !strings.HasPrefix(rest, open) {
		return false, nil
	}

	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		// The opening line never ends, so this is not a fence token.
		return false, nil
	}

	openPos := s.pos
	openLine := s.line
	info := strings.TrimSpace(rest[len(open):nl])

	s.advance(nl + 1)

	start := s.pos

	for s.pos < len(s.src) {
		if strings.HasPrefix(s.src[s.pos:], fenceToken) {
			cell := Cell{
				Source:    s.src[start:s.pos],
				DocOnly:   s.pending,
				Info:      info,
				Meta:      parseMeta(info),
				StartLine: openLine,
				EndLine:   s.line,
			}

			s.advance(len(fenceToken))

			s.pending = false
			s.nodes = append(s.nodes, node{kind: nodeCell, cell: cell})

			return true, nil
		}

		s.advance(1)
	}

	return false, &ParseError{Pos: openPos, Err: ErrUnterminatedFence}
}

// ordinary consumes one byte that belongs to neither token. Non-whitespace
// content between a marker and a fence breaks their adjacency.
func (s *scanner) ordinary() {
	if s.pending && !isSpace(s.src[s.pos]) {
		s.pending = false
	}

	s.advance(1)
}

func (s *scanner) advance(n int) {
	for i := 0; i < n; i++ {
		if s.src[s.pos+i] == '\n' {
			s.line++
		}
	}

	s.pos += n
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.advance(1)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
