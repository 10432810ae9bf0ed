// Package aliases extracts alias definitions from a .bash_aliases file and
// formats them as a grouped, human-readable report.
package aliases

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dotdocs/internal/model"
)

// AliasFileName is the fixed file the extractor reads inside the
// resolved dotfiles directory.
const AliasFileName = ".bash_aliases"

// nameColumnWidth pads (and truncates) alias names so commands line up.
const nameColumnWidth = 16

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // Pinkish

	aliasNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan
)

// Report reads dir/.bash_aliases and returns the formatted alias listing.
// A missing file yields a fixed informational message, not an error; the
// caller treats that as normal completion.
func Report(dir string) string {
	path := filepath.Join(dir, AliasFileName)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("No %s file found in %s", AliasFileName, dir)
	}
	defer f.Close()
	return Format(Parse(f))
}

// Parse scans alias file lines in order. A line beginning with a single
// "# " (not "##") sets the current section label. A line beginning with
// "alias " is split at the first "="; lines with no "=" are skipped.
// Prefixes are matched on the raw line, so indented definitions are
// ignored.
func Parse(r io.Reader) []model.AliasEntry {
	var entries []model.AliasEntry
	var section string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "##"):
			section = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "alias "):
			rest := line[len("alias "):]
			eq := strings.Index(rest, "=")
			if eq < 0 {
				continue // malformed, skip silently
			}
			entries = append(entries, model.AliasEntry{
				Name:    strings.TrimSpace(rest[:eq]),
				Command: stripQuotes(strings.TrimSpace(rest[eq+1:])),
				Section: section,
			})
		}
	}
	return entries
}

// Format lists entries indented under their section headers. A header is
// printed once each time the section changes.
func Format(entries []model.AliasEntry) string {
	var b strings.Builder
	b.WriteString(reportTitleStyle.Render("Shell Aliases"))
	b.WriteString("\n")

	current := ""
	printedAny := false
	for _, e := range entries {
		if e.Section != current {
			current = e.Section
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(current))
			b.WriteString("\n")
		} else if !printedAny {
			b.WriteString("\n")
		}
		printedAny = true
		name := fmt.Sprintf("%-*.*s", nameColumnWidth, nameColumnWidth, e.Name)
		fmt.Fprintf(&b, "  %s %s\n", aliasNameStyle.Render(name), e.Command)
	}
	if !printedAny {
		b.WriteString("\nNo aliases defined.\n")
	}
	return b.String()
}

// stripQuotes removes one layer of matching surrounding quotes, if present.
func stripQuotes(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '\'' || first == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
