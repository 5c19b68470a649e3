// Package monitor repeatedly re-reads a ccache data directory and
// reports counter changes. It is glue around the read-only snapshot
// API: all state lives in the snapshots it swaps between reads.
package monitor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	ccachestats "github.com/kentnl-rust/ccache-stats-reader-extras"
)

const (
	defaultInterval = 5 * time.Second

	// Writers touch a shard's stats file with several quick renames;
	// coalesce the burst before re-reading.
	defaultDebounce = 500 * time.Millisecond
)

// Monitor periodically reads a ccache data directory and logs every
// counter that changed since the previous read, with its delta and an
// approximate rate per second.
type Monitor struct {
	dirPath    string
	interval   time.Duration
	debounce   time.Duration
	fileEvents bool
	logger     *zap.Logger
}

type Option func(*Monitor)

// WithInterval sets the polling interval. Ignored in file-event mode.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		m.interval = d
	}
}

// WithLogger sets the logger change reports are written to.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// WithFileEvents switches from interval polling to re-reading on
// filesystem events from the stats files.
func WithFileEvents() Option {
	return func(m *Monitor) {
		m.fileEvents = true
	}
}

// New builds a monitor for the given ccache data directory.
func New(dirPath string, opts ...Option) (*Monitor, error) {
	if dirPath == "" {
		return nil, fmt.Errorf("dir path is required")
	}
	m := &Monitor{
		dirPath:  dirPath,
		interval: defaultInterval,
		debounce: defaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.interval <= 0 {
		m.interval = defaultInterval
	}
	return m, nil
}

// Run takes an initial snapshot and then reports changes until the
// context is cancelled. The initial read must succeed; later read
// failures also end the run, since a directory that stops parsing is
// not something the monitor can recover by itself.
func (m *Monitor) Run(ctx context.Context) error {
	prev, err := ccachestats.ReadDir(m.dirPath)
	if err != nil {
		return fmt.Errorf("failed to take initial snapshot of %s: %w", m.dirPath, err)
	}
	m.logger.Info("monitoring ccache directory", zap.String("dir", m.dirPath),
		zap.Bool("file_events", m.fileEvents))
	if m.fileEvents {
		return m.runFileEvents(ctx, prev)
	}
	return m.runPolling(ctx, prev)
}

func (m *Monitor) runPolling(ctx context.Context, prev *ccachestats.Dir) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			next, err := ccachestats.ReadDir(m.dirPath)
			if err != nil {
				return fmt.Errorf("failed to re-read %s: %w", m.dirPath, err)
			}
			m.report(prev, next, time.Since(last))
			prev, last = next, time.Now()
		}
	}
}

func (m *Monitor) runFileEvents(ctx context.Context, prev *ccachestats.Dir) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(m.dirPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", m.dirPath, err)
	}
	for _, h := range "0123456789abcdef" {
		shard := filepath.Join(m.dirPath, string(h))
		if err := watcher.Add(shard); err != nil {
			// A shard directory that doesn't exist yet has no stats
			// file either; nothing to miss.
			m.logger.Debug("shard not watchable", zap.String("dir", shard), zap.Error(err))
		}
	}

	var debounce *time.Timer
	var fire <-chan time.Time
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != "stats" {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(m.debounce)
			fire = debounce.C
		case <-fire:
			debounce, fire = nil, nil
			next, err := ccachestats.ReadDir(m.dirPath)
			if err != nil {
				return fmt.Errorf("failed to re-read %s: %w", m.dirPath, err)
			}
			m.report(prev, next, time.Since(last))
			prev, last = next, time.Now()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (m *Monitor) report(prev, next ccachestats.FieldCollection, elapsed time.Duration) {
	for _, change := range Diff(prev, next) {
		m.logger.Info("counter changed",
			zap.Stringer("field", change.Field),
			zap.Uint64("old", change.Old),
			zap.Uint64("new", change.New),
			zap.Int64("delta", change.Delta()),
			zap.Float64("per_sec", float64(change.Delta())/elapsed.Seconds()),
		)
	}
}

// Change is one observed counter transition between two snapshots.
type Change struct {
	Field ccachestats.Field
	Old   uint64
	New   uint64
}

// Delta returns the signed difference. Negative deltas happen when the
// counters are zeroed between reads.
func (c Change) Delta() int64 {
	return int64(c.New) - int64(c.Old)
}

// Diff lists every field whose value differs between two snapshots, in
// data order.
func Diff(prev, next ccachestats.FieldCollection) []Change {
	var changes []Change
	for _, f := range ccachestats.FieldDataOrder {
		old, cur := prev.Get(f), next.Get(f)
		if old != cur {
			changes = append(changes, Change{Field: f, Old: old, New: cur})
		}
	}
	return changes
}
