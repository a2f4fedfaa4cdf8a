// Package tui implements the interactive format-string playground.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// RenderFunc turns a format string into the styled fragment it would
// produce right now, or the format error that stops it.
type RenderFunc func(format string) (string, error)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// PreviewModel is a single-input bubbletea model: edit the format string on
// top, see the rendered fragment (or its error) underneath.
type PreviewModel struct {
	input  textinput.Model
	render RenderFunc

	output string
	errMsg string
}

// NewPreview creates the playground model seeded with the configured format.
func NewPreview(initial string, render RenderFunc) PreviewModel {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.Focus()
	ti.Width = getTerminalWidth() - 4

	m := PreviewModel{input: ti, render: render}
	m.refresh()
	return m
}

func (m *PreviewModel) refresh() {
	out, err := m.render(m.input.Value())
	if err != nil {
		m.output = ""
		m.errMsg = err.Error()
		return
	}
	m.output = out
	m.errMsg = ""
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 4
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	var body string
	switch {
	case m.errMsg != "":
		body = errorStyle.Render(m.errMsg)
	case m.output == "":
		body = emptyStyle.Render("(nothing to display)")
	default:
		body = m.output
	}

	return titleStyle.Render("glint format preview") + "\n" +
		m.input.View() + "\n\n" +
		body + "\n" +
		helpStyle.Render("enter/esc: quit")
}
