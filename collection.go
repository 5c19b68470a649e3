package ccachestats

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// Column widths for pretty output. Cosmetic only.
const (
	prettyLabelWidth = 32
	prettyValueWidth = 16
)

// FieldCollection is a full set of counters together with the time they
// were recorded. Both *Leaf and *Dir satisfy it, so the rendering and
// iteration helpers below work uniformly on single files and on whole
// directory snapshots.
type FieldCollection interface {
	// Get returns the counter recorded for the field. It never fails.
	Get(f Field) uint64
	// Mtime returns when the counters were recorded.
	Mtime() time.Time
}

// FieldIterator walks a collection's counters in display order.
//
// Usage follows the usual scanner shape:
//
//	for it := Iterate(c); it.Next(); {
//		fmt.Println(it.Field(), it.Value())
//	}
type FieldIterator struct {
	c FieldCollection
	i int
}

// Iterate returns a fresh display-order iterator over the collection.
// Iterators are independent; restart by calling Iterate again.
func Iterate(c FieldCollection) *FieldIterator {
	return &FieldIterator{c: c, i: -1}
}

// Next advances the iterator. It returns false once all 32 fields have
// been yielded.
func (it *FieldIterator) Next() bool {
	if it.i+1 >= NumFields {
		return false
	}
	it.i++
	return true
}

// Field returns the field at the current position.
func (it *FieldIterator) Field() Field {
	return FieldDisplayOrder[it.i]
}

// Value returns the counter at the current position.
func (it *FieldIterator) Value() uint64 {
	return it.c.Get(FieldDisplayOrder[it.i])
}

// WriteRaw writes the machine-parsable rendering of a collection: a
// "stats_updated_timestamp\t<unix-seconds>" header, then one
// "<id>\t<value>" line per field in display order. Zero values are
// written; only fields flagged FlagNever are skipped.
func WriteRaw(w io.Writer, c FieldCollection) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "stats_updated_timestamp\t%d\n", c.Mtime().Unix())
	for it := Iterate(c); it.Next(); {
		meta := it.Field().Meta()
		if meta.Flags&FlagNever != 0 {
			continue
		}
		fmt.Fprintf(bw, "%s\t%d\n", meta.ID, it.Value())
	}
	return bw.Flush()
}

// WritePretty writes the human rendering of a collection: a header
// pairing "stats updated" with the local mtime, then one aligned
// "<message>  <formatted value>" line per field in display order.
// Fields flagged FlagNever are skipped, as are zero values unless the
// field is flagged FlagAlways.
func WritePretty(w io.Writer, c FieldCollection) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-*.*s%*s\n", prettyLabelWidth, prettyLabelWidth,
		"stats updated", prettyValueWidth, c.Mtime().Local().Format(timeLayout))
	for it := Iterate(c); it.Next(); {
		field, v := it.Field(), it.Value()
		meta := field.Meta()
		if meta.Flags&FlagNever != 0 {
			continue
		}
		if v == 0 && meta.Flags&FlagAlways == 0 {
			continue
		}
		fmt.Fprintf(bw, "%-*.*s%*s\n", prettyLabelWidth, prettyLabelWidth,
			meta.Message, prettyValueWidth, FormatValue(field, v))
	}
	return bw.Flush()
}
