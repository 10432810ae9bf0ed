package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dotdocs/internal/render"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("escapes sensitive characters exactly once", func(t *testing.T) {
		t.Parallel()

		got := render.HTML("a & b < c > d", "/docs/NOTES.txt")

		assert.Contains(t, got, "a &amp; b &lt; c &gt; d")
		assert.NotContains(t, got, "&amp;amp;")
		assert.NotContains(t, got, "&amp;lt;")
	})

	t.Run("wraps plain text in a preformatted block", func(t *testing.T) {
		t.Parallel()

		got := render.HTML("plain content", "/docs/INSTALL")

		assert.Contains(t, got, "<pre>plain content</pre>")
	})

	t.Run("converts markdown files", func(t *testing.T) {
		t.Parallel()

		got := render.HTML("# Welcome\n\nSome *docs*.", "/docs/README.md")

		assert.Contains(t, got, "<h1")
		assert.Contains(t, got, "Welcome")
		assert.Contains(t, got, "<em>docs</em>")
		assert.NotContains(t, got, "<pre># Welcome")
	})

	t.Run("wraps output in a titled document", func(t *testing.T) {
		t.Parallel()

		got := render.HTML("content", "/docs/README.md")

		assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
		assert.Contains(t, got, "<title>README.md</title>")
		assert.Contains(t, got, "<style>")
	})
}
