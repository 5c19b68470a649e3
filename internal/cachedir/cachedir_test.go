package cachedir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("explicit CCACHE_DIR wins", func(t *testing.T) {
		t.Setenv(EnvVar, "/var/cache/ccache")
		dir, err := Resolve()
		require.NoError(t, err)
		assert.Equal(t, "/var/cache/ccache", dir)
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		t.Setenv("HOME", "/home/builder")
		dir, err := Resolve()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/builder", ".ccache"), dir)
	})

	t.Run("fails without any hint", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		t.Setenv("HOME", "")
		_, err := Resolve()
		assert.Error(t, err)
	})
}
