// Package cachedir resolves the ccache data directory the same way
// ccache itself does: CCACHE_DIR if set, otherwise $HOME/.ccache.
package cachedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar is the environment variable ccache uses to relocate its data
// directory.
const EnvVar = "CCACHE_DIR"

// Resolve returns the ccache data directory for the current
// environment. It fails only when CCACHE_DIR is unset and no home
// directory can be determined.
func Resolve() (string, error) {
	if dir := os.Getenv(EnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%s is unset and no home directory is available: %w", EnvVar, err)
	}
	return filepath.Join(home, ".ccache"), nil
}
