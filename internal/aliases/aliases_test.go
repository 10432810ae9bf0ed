package aliases_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotdocs/internal/aliases"
	"dotdocs/internal/model"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses name and strips single quotes", func(t *testing.T) {
		t.Parallel()

		got := aliases.Parse(strings.NewReader("alias ll='ls -la'\n"))

		require.Len(t, got, 1)
		assert.Equal(t, "ll", got[0].Name)
		assert.Equal(t, "ls -la", got[0].Command)
	})

	t.Run("strips double quotes", func(t *testing.T) {
		t.Parallel()

		got := aliases.Parse(strings.NewReader(`alias gs="git status"`))

		require.Len(t, got, 1)
		assert.Equal(t, "git status", got[0].Command)
	})

	t.Run("strips only one quote layer", func(t *testing.T) {
		t.Parallel()

		got := aliases.Parse(strings.NewReader(`alias e='"$EDITOR"'`))

		require.Len(t, got, 1)
		assert.Equal(t, `"$EDITOR"`, got[0].Command)
	})

	t.Run("groups entries under the preceding comment", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			"# File Operations",
			"alias ll='ls -la'",
			"alias la='ls -A'",
			"# Git",
			"alias gs='git status'",
		}, "\n")

		got := aliases.Parse(strings.NewReader(input))

		require.Len(t, got, 3)
		assert.Equal(t, "File Operations", got[0].Section)
		assert.Equal(t, "File Operations", got[1].Section)
		assert.Equal(t, "Git", got[2].Section)
	})

	t.Run("double hash is not a section header", func(t *testing.T) {
		t.Parallel()

		input := "## not a section\nalias ll='ls -la'\n"

		got := aliases.Parse(strings.NewReader(input))

		require.Len(t, got, 1)
		assert.Empty(t, got[0].Section)
	})

	t.Run("ignores indented comment and alias lines", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			"  # Not A Section",
			"  alias hidden='ls'",
			"alias ll='ls -la'",
		}, "\n")

		got := aliases.Parse(strings.NewReader(input))

		require.Len(t, got, 1)
		assert.Equal(t, "ll", got[0].Name)
		assert.Empty(t, got[0].Section)
	})

	t.Run("skips malformed alias lines", func(t *testing.T) {
		t.Parallel()

		input := "alias broken\nalias ok='works'\n"

		got := aliases.Parse(strings.NewReader(input))

		require.Len(t, got, 1)
		assert.Equal(t, "ok", got[0].Name)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("prints each section header once", func(t *testing.T) {
		t.Parallel()

		entries := []model.AliasEntry{
			{Name: "ll", Command: "ls -la", Section: "File Operations"},
			{Name: "la", Command: "ls -A", Section: "File Operations"},
		}

		got := aliases.Format(entries)

		assert.Equal(t, 1, strings.Count(got, "File Operations"))
		assert.Contains(t, got, "ls -la")
		assert.Contains(t, got, "ls -A")
	})

	t.Run("reports when no aliases are defined", func(t *testing.T) {
		t.Parallel()

		got := aliases.Format(nil)

		assert.Contains(t, got, "No aliases defined.")
	})
}

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields the not-found message", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		got := aliases.Report(dir)

		assert.Equal(t, "No .bash_aliases file found in "+dir, got)
	})

	t.Run("reads the alias file from the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "# Shortcuts\nalias ll='ls -la'\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".bash_aliases"), []byte(content), 0o644))

		got := aliases.Report(dir)

		assert.Contains(t, got, "Shortcuts")
		assert.Contains(t, got, "ll")
		assert.Contains(t, got, "ls -la")
	})
}
