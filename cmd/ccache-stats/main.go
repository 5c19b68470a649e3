package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ccachestats "github.com/kentnl-rust/ccache-stats-reader-extras"
	"github.com/kentnl-rust/ccache-stats-reader-extras/internal/cachedir"
	"github.com/kentnl-rust/ccache-stats-reader-extras/internal/monitor"
)

var (
	cacheDir   string
	verbose    bool
	showStats  bool
	printStats bool

	interval   time.Duration
	fileEvents bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ccache-stats",
	Short: "Read ccache statistics without invoking ccache",
	Long: `ccache-stats reads the counter files inside a ccache data directory
directly, so statistics are available even when ccache itself is not
installed or not runnable.

The directory is taken from --dir, then CCACHE_DIR, then ~/.ccache.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runStats,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the cache directory and report counter changes",
	Long: `Repeatedly re-reads the cache directory and reports every counter
that changed, with its delta and approximate rate per second. By
default it polls on a fixed interval; with --file-events it re-reads
when a stats file changes on disk instead.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cacheDir, "dir", "", "ccache data directory (default: CCACHE_DIR or ~/.ccache)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&showStats, "show-stats", "s", false, "show summary of statistics counters in human-readable format")
	rootCmd.Flags().BoolVar(&printStats, "print-stats", false, "print statistics counter ids and values in machine-parsable format")
	rootCmd.MarkFlagsMutuallyExclusive("show-stats", "print-stats")

	monitorCmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "polling interval")
	monitorCmd.Flags().BoolVar(&fileEvents, "file-events", false, "re-read on filesystem events instead of polling")
	rootCmd.AddCommand(monitorCmd)
}

func resolveDir() (string, error) {
	if cacheDir != "" {
		return cacheDir, nil
	}
	return cachedir.Resolve()
}

func runStats(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	snapshot, err := ccachestats.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory %s: %w", dir, err)
	}
	if printStats {
		return ccachestats.WriteRaw(os.Stdout, snapshot)
	}
	return ccachestats.WritePretty(os.Stdout, snapshot)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	opts := []monitor.Option{
		monitor.WithInterval(interval),
		monitor.WithLogger(logger.With(zap.String("component", "monitor"))),
	}
	if fileEvents {
		opts = append(opts, monitor.WithFileEvents())
	}
	m, err := monitor.New(dir, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := m.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
