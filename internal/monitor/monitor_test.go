package monitor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ccachestats "github.com/kentnl-rust/ccache-stats-reader-extras"
)

// fakeSnapshot implements ccachestats.FieldCollection for diff tests.
type fakeSnapshot map[ccachestats.Field]uint64

func (s fakeSnapshot) Get(f ccachestats.Field) uint64 {
	return s[f]
}

func (s fakeSnapshot) Mtime() time.Time {
	return time.Unix(0, 0)
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		prev fakeSnapshot
		next fakeSnapshot
		want []Change
	}{
		{
			name: "no changes",
			prev: fakeSnapshot{ccachestats.FieldToCache: 5},
			next: fakeSnapshot{ccachestats.FieldToCache: 5},
			want: nil,
		},
		{
			name: "increment reported",
			prev: fakeSnapshot{ccachestats.FieldToCache: 5},
			next: fakeSnapshot{ccachestats.FieldToCache: 8},
			want: []Change{{Field: ccachestats.FieldToCache, Old: 5, New: 8}},
		},
		{
			name: "changes come out in data order",
			prev: fakeSnapshot{},
			next: fakeSnapshot{
				ccachestats.FieldZeroTimeStamp: 100,
				ccachestats.FieldStdOut:        1,
			},
			want: []Change{
				{Field: ccachestats.FieldStdOut, Old: 0, New: 1},
				{Field: ccachestats.FieldZeroTimeStamp, Old: 0, New: 100},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.prev, tt.next))
		})
	}
}

func TestChangeDelta(t *testing.T) {
	assert.Equal(t, int64(3), Change{Old: 5, New: 8}.Delta())
	// Counters zeroed between reads yield a negative delta.
	assert.Equal(t, int64(-5), Change{Old: 5, New: 0}.Delta())
}

func TestNewRequiresDir(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stats"), []byte("0\n1\n"), 0o644))

	m, err := New(dir, WithInterval(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancellation")
	}
}

func TestRunFailsOnUnreadableDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stats"), []byte("garbage\n"), 0o644))

	m, err := New(dir)
	require.NoError(t, err)
	assert.Error(t, m.Run(context.Background()))
}
