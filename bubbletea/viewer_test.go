package bubbletea_test

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/textcompare"
	"github.com/fwojciec/textcompare/bubbletea"
	"github.com/fwojciec/textcompare/lipgloss"
	"github.com/fwojciec/textcompare/textdiff"
	"github.com/stretchr/testify/assert"
)

// Compile-time check that Viewer implements textcompare.Viewer.
var _ textcompare.Viewer = (*bubbletea.Viewer)(nil)

// plainTheme renders without any color overrides, so the pager output
// contains the report text verbatim.
type plainTheme struct{}

func (plainTheme) Styles() textcompare.Styles { return textcompare.Styles{} }

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("report", lipgloss.DefaultTheme())
	cmd := m.Init()

	assert.Nil(t, cmd, "Init should return nil command")
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("report", lipgloss.DefaultTheme())

	assert.Equal(t, "Loading...", m.View())
}

func TestModel_DisplaysReport(t *testing.T) {
	t.Parallel()

	report := textdiff.Compare("foo", "bar")
	m := bubbletea.NewModel(report, plainTheme{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	// Wait for content to appear - the original text block should show
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("original"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("report", plainTheme{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("report", plainTheme{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
