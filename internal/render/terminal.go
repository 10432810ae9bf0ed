package render

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	h1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")) // Pinkish

	h2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	h3Style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("81"))

	fenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")) // Green

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// Terminal renders content for display in a color terminal. A bordered
// header names the file, then each line is classified once by its prefix
// shape and wrapped in a fixed style. Priority order: headings, fence
// delimiters, shell prompts, bullets, numbered lines, passthrough.
func Terminal(content, path string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(filepath.Base(path)))
	b.WriteString("\n")
	for _, line := range strings.Split(content, "\n") {
		b.WriteString(classifyLine(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func classifyLine(line string) string {
	switch {
	case strings.HasPrefix(line, "### "):
		return h3Style.Render(line)
	case strings.HasPrefix(line, "## "):
		return h2Style.Render(line)
	case strings.HasPrefix(line, "# "):
		return h1Style.Render(line)
	case strings.HasPrefix(line, "```"):
		return fenceStyle.Render(line)
	case strings.HasPrefix(line, "$ ") || strings.HasPrefix(line, "sudo "):
		return promptStyle.Render(line)
	case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
		return bulletStyle.Render(line)
	case isNumberedItem(line):
		return numberStyle.Render(line)
	default:
		return line
	}
}

// isNumberedItem matches lines of the shape "N. text" where N is digits.
func isNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i+1 < len(line) && line[i] == '.' && line[i+1] == ' '
}
