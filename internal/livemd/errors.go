package livemd

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedFence reports an opening fence with no closing fence
	// before the end of the notebook.
	ErrUnterminatedFence = errors.New("unterminated code fence")

	// ErrIncompleteScan reports a scan that stopped before consuming the
	// whole notebook. The scanner always makes progress, so this guards a
	// condition that should be impossible.
	ErrIncompleteScan = errors.New("scan left unconsumed input")
)

// ParseError is a scan failure at a byte offset of the notebook.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("byte %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
