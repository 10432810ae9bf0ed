package tui

import (
	"path/filepath"
	"strings"

	"dotdocs/internal/docs"
	"dotdocs/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// MsgDocsReady carries the rendered content for every file, in file order.
type MsgDocsReady []string

// Init kicks off content loading.
func (m AppModel) Init() tea.Cmd {
	return loadDocs(m.Files)
}

func loadDocs(files []model.DocFile) tea.Cmd {
	return func() tea.Msg {
		rendered := make([]string, len(files))
		for i, f := range files {
			rendered[i] = renderDoc(docs.ReadContent(f.Path), f.Path)
		}
		return MsgDocsReady(rendered)
	}
}

// renderDoc pretty-prints markdown through glamour; anything else is
// shown raw. Rendering failures fall back to the raw content.
func renderDoc(content, path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
	default:
		return content
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ContentViewport.Width = msg.Width - msg.Width/3 - 6
		m.ContentViewport.Height = msg.Height - 6
		m.syncViewport()
		return m, nil

	case MsgDocsReady:
		m.Loading = false
		m.Rendered = msg
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = 0
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
			}
			return m, nil
		case "/":
			m.InputMode = true
			m.FilterActive = true
			m.InputBuffer.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.syncViewport()
			}
			return m, nil
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.syncViewport()
			}
			return m, nil
		case "home", "g":
			m.ContentViewport.GotoTop()
			return m, nil
		case "end", "G":
			m.ContentViewport.GotoBottom()
			return m, nil
		}
	}

	// Remaining keys (pgup/pgdown, mouse wheel) scroll the content pane.
	m.ContentViewport, cmd = m.ContentViewport.Update(msg)
	return m, cmd
}

// applyFilter rebuilds FilteredIndices from the input buffer, matching
// file names case-insensitively.
func (m *AppModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.FilteredIndices = m.FilteredIndices[:0]
	for i, f := range m.Files {
		if query == "" || strings.Contains(strings.ToLower(f.Name), query) {
			m.FilteredIndices = append(m.FilteredIndices, i)
		}
	}
	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = 0
	}
	m.syncViewport()
}

// syncViewport points the content pane at the currently selected file.
func (m *AppModel) syncViewport() {
	if len(m.Rendered) == 0 || len(m.FilteredIndices) == 0 {
		m.ContentViewport.SetContent("")
		return
	}
	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = len(m.FilteredIndices) - 1
	}
	idx := m.FilteredIndices[m.SelectedIdx]
	m.ContentViewport.SetContent(m.Rendered[idx])
	m.ContentViewport.GotoTop()
}
