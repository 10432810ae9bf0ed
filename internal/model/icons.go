package model

// Centralized icons for the TUI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconReadme   = "¹" // Top-priority file (README)
	IconRanked   = "•" // Any other file with a priority rank
	IconUnranked = "·" // Files outside the priority table
	IconError    = "✗" // File could not be read
)

// IconFor picks the list icon for a documentation file.
func IconFor(f DocFile) string {
	switch {
	case f.Rank == 0:
		return IconReadme
	case f.Rank < UnrankedIndex:
		return IconRanked
	default:
		return IconUnranked
	}
}
