// Package bubbletea provides a terminal pager for comparison reports
// using the Bubble Tea framework.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/textcompare"
)

// Model is the Bubble Tea model for paging through a report.
type Model struct {
	viewport  viewport.Model
	ready     bool
	report    string
	content   string
	clipboard textcompare.Clipboard
}

// NewModel creates a new Model displaying the report styled by theme.
func NewModel(report string, theme textcompare.Theme) Model {
	return Model{
		report:  report,
		content: renderReport(report, theme, nil),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "c":
			if m.clipboard != nil {
				// Copy the raw report, not the styled rendering.
				_ = m.clipboard.Copy(m.report)
			}
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View()
}

// Compile-time interface verification.
var _ textcompare.Viewer = (*Viewer)(nil)

// Viewer implements textcompare.Viewer using a Bubble Tea TUI.
type Viewer struct {
	theme     textcompare.Theme
	clipboard textcompare.Clipboard
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithClipboard enables copying the report to the clipboard with "c".
func WithClipboard(c textcompare.Clipboard) ViewerOption {
	return func(v *Viewer) {
		v.clipboard = c
	}
}

// NewViewer creates a Viewer that styles reports with the given theme.
func NewViewer(theme textcompare.Theme, opts ...ViewerOption) *Viewer {
	v := &Viewer{theme: theme}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the report and blocks until the user exits.
func (v *Viewer) View(_ context.Context, report string) error {
	m := NewModel(report, v.theme)
	m.clipboard = v.clipboard
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
