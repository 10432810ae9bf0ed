package model

// Version is the current release, overridden at build time via -ldflags.
var Version = "0.3.0"

// DocFile represents a single documentation file discovered in the
// dotfiles directory.
type DocFile struct {
	Path string // Absolute or directory-relative path on disk
	Name string // Base name (e.g. README.md)
	Rank int    // Index into PriorityOrder, or UnrankedIndex
}

// PriorityOrder ranks documentation stems for display order. Files whose
// stem is not listed here sort after everything else, alphabetically.
var PriorityOrder = []string{
	"README",
	"INSTALL",
	"QUICKSTART",
	"SETUP",
	"CONFIG",
	"USAGE",
	"CHEATSHEET",
}

// UnrankedIndex is the sentinel rank for files outside PriorityOrder.
// One past the end of the table so unranked files sort last.
var UnrankedIndex = len(PriorityOrder)

// DocPatterns is the fixed set of glob patterns the locator searches for.
// Note GETTING_STARTED* is matched but has no priority rank, so those
// files sort with the unranked group.
var DocPatterns = []string{
	"README*",
	"INSTALL*",
	"CONFIG*",
	"CHEATSHEET*",
	"USAGE*",
	"QUICKSTART*",
	"SETUP*",
	"GETTING_STARTED*",
}

// OutputFormat selects a rendering strategy.
type OutputFormat string

const (
	FormatTerminal OutputFormat = "terminal"
	FormatHTML     OutputFormat = "html"
	FormatText     OutputFormat = "text"
)

// Valid reports whether the format is one of the three known strategies.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTerminal, FormatHTML, FormatText:
		return true
	}
	return false
}

// AliasEntry is a single parsed alias line from .bash_aliases.
type AliasEntry struct {
	Name    string // Alias name (left of the first '=')
	Command string // Command with one layer of surrounding quotes stripped
	Section string // Most recent preceding '# ' comment, if any
}
