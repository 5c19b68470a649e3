package ccachestats

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"
)

const statsFileName = "stats"

// shardNames are the sixteen shard subdirectories of a ccache data dir,
// in the reference merge order.
const shardNames = "0123456789abcdef"

// Dir is the aggregated snapshot of a whole ccache data directory: the
// top-level stats file merged with every shard's stats file. Its mtime
// is the newest mtime among the merged leaves.
type Dir struct {
	values ValueStore
	mtime  time.Time
}

// ReadDir reads and merges <dir>/stats and <dir>/<h>/stats for each hex
// digit h.
//
// A candidate file that doesn't exist simply contributes nothing; a
// cache that hasn't written all shards yet is still readable. Any other
// failure, including a malformed counter in any leaf, aborts the whole
// read.
func ReadDir(dirPath string) (*Dir, error) {
	paths := make([]string, 0, len(shardNames)+1)
	paths = append(paths, filepath.Join(dirPath, statsFileName))
	for _, h := range shardNames {
		paths = append(paths, filepath.Join(dirPath, string(h), statsFileName))
	}

	d := &Dir{mtime: time.Unix(0, 0)}
	for _, path := range paths {
		leaf, err := ReadLeaf(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		d.values.mergeFrom(&leaf.values)
		if leaf.mtime.After(d.mtime) {
			d.mtime = leaf.mtime
		}
	}
	return d, nil
}

// Get returns the merged counter for the field.
func (d *Dir) Get(f Field) uint64 {
	return d.values.Get(f)
}

// Mtime returns the newest modification time among the merged leaves,
// or the Unix epoch if no leaf existed.
func (d *Dir) Mtime() time.Time {
	return d.mtime
}
