// Package pager is the output sink: it writes rendered text to stdout
// directly or through an external pager program.
package pager

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// DefaultPager is used when $PAGER is unset.
const DefaultPager = "less"

// Show writes content to w. When usePager is set and stdout is an
// interactive terminal, the content is fed to the pager's stdin and the
// pager writes to w; a pager that cannot be found or exits non-zero
// degrades silently to a direct write. Callers disable paging for HTML
// and non-terminal formats.
func Show(w io.Writer, content string, usePager bool) {
	if !usePager || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(w, content)
		return
	}

	name := os.Getenv("PAGER")
	if name == "" {
		name = DefaultPager
	}
	path, err := exec.LookPath(name)
	if err != nil {
		log.Debug("pager not found, printing directly", "pager", name)
		fmt.Fprintln(w, content)
		return
	}

	cmd := exec.Command(path, pagerArgs(path)...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w
	cmd.Stderr = os.Stderr
	// Blocks until the user quits the pager. Interrupts propagate to the
	// child via the shared terminal, so no extra signal handling here.
	if err := cmd.Run(); err != nil {
		log.Debug("pager failed, printing directly", "pager", name, "err", err)
		fmt.Fprintln(w, content)
	}
}

// pagerArgs returns extra arguments for known pagers. less needs -R to
// pass ANSI color sequences through unmangled.
func pagerArgs(path string) []string {
	if filepath.Base(path) == "less" {
		return []string{"-R"}
	}
	return nil
}
