package ccachestats

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ FieldCollection = (*Leaf)(nil)
	_ FieldCollection = (*Dir)(nil)
)

func testLeaf(values map[Field]uint64, mtime time.Time) *Leaf {
	l := &Leaf{mtime: mtime}
	for f, v := range values {
		l.values.set(f, v)
	}
	return l
}

func TestIterateFollowsDisplayOrder(t *testing.T) {
	leaf := testLeaf(map[Field]uint64{FieldZeroTimeStamp: 77}, time.Unix(0, 0))

	var fields []Field
	for it := Iterate(leaf); it.Next(); {
		fields = append(fields, it.Field())
	}
	require.Len(t, fields, NumFields)
	assert.Equal(t, FieldDisplayOrder[:], fields)
}

func TestIterateIsRestartable(t *testing.T) {
	leaf := testLeaf(map[Field]uint64{FieldToCache: 5}, time.Unix(0, 0))

	collect := func() []uint64 {
		var values []uint64
		for it := Iterate(leaf); it.Next(); {
			values = append(values, it.Value())
		}
		return values
	}
	assert.Equal(t, collect(), collect())
}

func TestWriteRaw(t *testing.T) {
	leaf := testLeaf(map[Field]uint64{
		FieldToCache:          5,
		FieldObsoleteMaxFiles: 999,
	}, time.Unix(1234, 0))

	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, leaf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	assert.Equal(t, "stats_updated_timestamp\t1234", lines[0])
	// First field in display order is the zeroing timestamp.
	assert.Equal(t, "stats_zeroed_timestamp\t0", lines[1])
	assert.Contains(t, lines, "cache_miss\t5")
	// Zero values are still written in raw form.
	assert.Contains(t, lines, "called_for_link\t0")
	// Never-shown fields are the only omissions: sentinel + two obsolete.
	assert.Len(t, lines, 1+NumFields-3)
	for _, line := range lines {
		assert.NotContains(t, line, "obsolete")
		assert.NotEqual(t, "none\t0", line)
	}
}

func TestWritePretty(t *testing.T) {
	leaf := testLeaf(map[Field]uint64{
		FieldCacheHitDir:       3,
		FieldTotalSize:         15_000,
		FieldObsoleteMaxSize:   999,
		FieldUnsupportedOption: 0,
	}, time.Unix(1234, 0))

	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, leaf))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "stats updated"), "header was %q", lines[0])
	assert.Contains(t, out, "cache hit (direct)")
	assert.Contains(t, out, "14.65 Mb")
	// Zero but flagged always-show.
	assert.Contains(t, out, "cache miss")
	// Zero without the flag is suppressed.
	assert.NotContains(t, out, "unsupported compiler option")
	// Never-shown regardless of value.
	assert.NotContains(t, out, "OBSOLETE")
}

func TestWritePrettyAlignment(t *testing.T) {
	leaf := testLeaf(map[Field]uint64{FieldCacheHitDir: 3}, time.Unix(1234, 0))

	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, leaf))
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "cache hit (direct)") {
			continue
		}
		// Label padded to its column, value right-aligned in its own.
		assert.Len(t, line, prettyLabelWidth+prettyValueWidth)
		assert.True(t, strings.HasSuffix(line, " 3"), "line %q", line)
	}
}

func TestWriteRawPropagatesSinkError(t *testing.T) {
	leaf := testLeaf(nil, time.Unix(0, 0))
	assert.Error(t, WriteRaw(failingWriter{}, leaf))
	assert.Error(t, WritePretty(failingWriter{}, leaf))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("sink closed")
}
