package docs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotdocs/internal/docs"
)

func TestResolveFrom(t *testing.T) {
	t.Parallel()

	t.Run("environment override wins when it exists", func(t *testing.T) {
		t.Parallel()

		envDir := t.TempDir()

		got := docs.ResolveFrom(envDir, t.TempDir(), "/cwd")

		assert.Equal(t, envDir, got)
	})

	t.Run("missing environment dir falls through", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		cwd := t.TempDir()

		got := docs.ResolveFrom(filepath.Join(home, "nope"), home, cwd)

		assert.Equal(t, cwd, got)
	})

	t.Run("conventional dir needs a README", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		cwd := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(home, ".dotfiles"), 0o755))

		got := docs.ResolveFrom("", home, cwd)

		assert.Equal(t, cwd, got, "a .dotfiles dir without README* is skipped")
	})

	t.Run("prefers dot-dotfiles with a README", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		dotfiles := filepath.Join(home, ".dotfiles")
		require.NoError(t, os.Mkdir(dotfiles, 0o755))
		writeFiles(t, dotfiles, "README.md")

		got := docs.ResolveFrom("", home, t.TempDir())

		assert.Equal(t, dotfiles, got)
	})

	t.Run("falls back to config dotfiles", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		cfg := filepath.Join(home, ".config", "dotfiles")
		require.NoError(t, os.MkdirAll(cfg, 0o755))
		writeFiles(t, cfg, "README")

		got := docs.ResolveFrom("", home, t.TempDir())

		assert.Equal(t, cfg, got)
	})

	t.Run("current directory is the final fallback", func(t *testing.T) {
		t.Parallel()

		cwd := t.TempDir()

		got := docs.ResolveFrom("", t.TempDir(), cwd)

		assert.Equal(t, cwd, got)
	})
}
