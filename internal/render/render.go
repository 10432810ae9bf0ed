package render

import (
	"path/filepath"
	"strings"

	"dotdocs/internal/model"
)

// File renders one file's content with the formatter for the given output
// format. All three formatters are pure functions of (content, path).
func File(format model.OutputFormat, content, path string) string {
	switch format {
	case model.FormatHTML:
		return HTML(content, path)
	case model.FormatText:
		return Text(content, path)
	default:
		return Terminal(content, path)
	}
}

// Join concatenates per-file rendered blocks, separated by a blank line.
func Join(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}

// Text wraps content in a plain delimiter line naming the file. No styling.
func Text(content, path string) string {
	return "=== " + filepath.Base(path) + " ===\n" + content
}
