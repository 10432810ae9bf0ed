package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dotdocs/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	contentStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Reading documentation files... please wait.\n"
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width == 0 {
		width = 80
	}

	leftWidth := width / 3
	if leftWidth < 24 {
		leftWidth = 24
	}

	listHeight := height - 6
	if listHeight < 4 {
		listHeight = 4
	}

	// LEFT PANEL: file list
	var left strings.Builder
	left.WriteString(titleStyle.Render("Documentation"))
	left.WriteString("\n")
	left.WriteString(dimStyle.Render(m.Dir))
	left.WriteString("\n\n")

	// Windowing so the selection stays visible in short terminals.
	start := 0
	if m.SelectedIdx >= listHeight {
		start = m.SelectedIdx - listHeight + 1
	}
	for row := start; row < len(m.FilteredIndices) && row < start+listHeight; row++ {
		f := m.Files[m.FilteredIndices[row]]
		label := fmt.Sprintf("%s %s", model.IconFor(f), f.Name)
		if row == m.SelectedIdx {
			left.WriteString(selectedItemStyle.Render("> " + label))
		} else {
			left.WriteString(unselectedItemStyle.Render(label))
		}
		left.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		left.WriteString(unselectedItemStyle.Render("(no matches)"))
		left.WriteString("\n")
	}

	leftPanel := lipgloss.NewStyle().Width(leftWidth).Render(left.String())
	rightPanel := contentStyle.Render(m.ContentViewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	// FOOTER: filter input or key help
	var footer string
	if m.InputMode {
		footer = "  / " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("  ↑/↓ select · pgup/pgdn scroll · / filter · q quit")
	}

	return body + "\n" + footer + "\n"
}
