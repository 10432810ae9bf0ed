package docs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotdocs/internal/docs"
)

func TestReadContent(t *testing.T) {
	t.Parallel()

	t.Run("reads UTF-8 text as-is", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("héllo wörld\n"), 0o644))

		got := docs.ReadContent(path)

		assert.Equal(t, "héllo wörld\n", got)
	})

	t.Run("falls back to Latin-1 for invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "INSTALL")
		// 0xE9 and 0xFC are é and ü in ISO 8859-1, invalid as UTF-8.
		require.NoError(t, os.WriteFile(path, []byte{0xE9, ' ', 0xFC}, 0o644))

		got := docs.ReadContent(path)

		assert.Equal(t, "é ü", got)
	})

	t.Run("read failure becomes placeholder content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.md")

		got := docs.ReadContent(path)

		assert.Contains(t, got, "error reading")
		assert.Contains(t, got, path)
	})
}
