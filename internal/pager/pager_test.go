package pager_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"dotdocs/internal/pager"
)

func TestShow(t *testing.T) {
	t.Run("paging disabled writes content directly", func(t *testing.T) {
		var buf bytes.Buffer

		pager.Show(&buf, "rendered docs", false)

		assert.Equal(t, "rendered docs\n", buf.String())
	})

	t.Run("non-terminal stdout skips the pager", func(t *testing.T) {
		// Under go test, stdout is not a TTY, so even with paging
		// requested the content goes straight to the writer.
		var buf bytes.Buffer

		pager.Show(&buf, "rendered docs", true)

		assert.Equal(t, "rendered docs\n", buf.String())
	})
}
