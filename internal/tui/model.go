package tui

import (
	"dotdocs/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Dir      string
	Files    []model.DocFile
	Rendered []string // Per-file content, glamour-rendered for markdown
	Loading  bool

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Files to show
	FilterActive    bool

	// Components
	ContentViewport viewport.Model
}

// InitialModel returns the initial state for browsing files in dir.
func InitialModel(dir string, files []model.DocFile) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Filter docs..."
	ti.CharLimit = 50
	ti.Width = 20

	indices := make([]int, len(files))
	for i := range files {
		indices[i] = i
	}

	return AppModel{
		Dir:             dir,
		Files:           files,
		Loading:         true,
		InputBuffer:     ti,
		FilteredIndices: indices,
	}
}
