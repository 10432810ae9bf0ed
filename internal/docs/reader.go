package docs

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadContent reads a documentation file as text. UTF-8 is tried first;
// bytes that fail to validate are re-decoded as ISO 8859-1, which accepts
// any byte sequence. Read failures are folded into the returned content as
// a placeholder so a single unreadable file never aborts the run.
func ReadContent(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return readErrorPlaceholder(path, err)
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return readErrorPlaceholder(path, err)
	}
	return string(decoded)
}

func readErrorPlaceholder(path string, err error) string {
	return fmt.Sprintf("[error reading %s: %v]", path, err)
}
