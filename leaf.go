package ccachestats

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Leaf is the parsed content of exactly one stats file: a full set of
// counters plus the file's modification time. It is immutable once
// returned and owned by the caller.
type Leaf struct {
	values ValueStore
	mtime  time.Time
}

// ReadLeaf parses the stats file at path.
//
// Line i holds the decimal value of the field with ordinal i. Files may
// omit trailing lines; the corresponding fields stay zero. A trailing
// LF or CRLF on each line is stripped. A line that doesn't parse as an
// unsigned decimal fails the whole read with a *ParseError.
func ReadLeaf(path string) (*Leaf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAFile)
	}

	leaf := &Leaf{mtime: fi.ModTime()}
	scanner := bufio.NewScanner(f)
	for _, field := range FieldDataOrder {
		if !scanner.Scan() {
			// Trailing zero-valued fields are commonly omitted.
			break
		}
		text := strings.TrimSuffix(scanner.Text(), "\r")
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, &ParseError{Path: path, Field: field, Text: text, Err: err}
		}
		leaf.values.set(field, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return leaf, nil
}

// Get returns the counter recorded for the field.
func (l *Leaf) Get(f Field) uint64 {
	return l.values.Get(f)
}

// Mtime returns the stats file's modification time.
func (l *Leaf) Mtime() time.Time {
	return l.mtime
}
