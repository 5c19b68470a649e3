package ccachestats

import (
	"errors"
	"fmt"
)

// ErrNotAFile reports that a path expected to be a stats file resolved
// to something else, typically a directory. Line-oriented readers have
// historically spun forever on directory descriptors whose reads fail
// without ever hitting EOF, so ReadLeaf rejects non-regular files up
// front instead of attempting a line read.
var ErrNotAFile = errors.New("not a regular file")

// ParseError reports a stats file line that failed to parse as an
// unsigned decimal counter.
type ParseError struct {
	// Path is the stats file being read.
	Path string
	// Field is the field whose line was malformed; its ordinal is the
	// 0-indexed line number.
	Field Field
	// Text is the offending line, after newline trimming.
	Text string
	// Err is the underlying parse failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d (%s): malformed counter %q: %v",
		e.Path, int(e.Field), e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
