package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func echoRender(format string) (string, error) {
	if format == "bad" {
		return "", errors.New("unbalanced group")
	}
	return "rendered:" + format, nil
}

func TestNewPreview_RendersInitialFormat(t *testing.T) {
	m := NewPreview("$branch", echoRender)

	view := m.View()
	if !strings.Contains(view, "rendered:$branch") {
		t.Errorf("view should contain the rendered fragment, got %q", view)
	}
	if !strings.Contains(view, "$branch") {
		t.Error("view should show the format being edited")
	}
}

func TestPreview_TypingRefreshes(t *testing.T) {
	m := NewPreview("", echoRender)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updated.(PreviewModel)

	if !strings.Contains(m.View(), "rendered:x") {
		t.Errorf("view should reflect the typed input, got %q", m.View())
	}
}

func TestPreview_ErrorShown(t *testing.T) {
	m := NewPreview("bad", echoRender)

	if !strings.Contains(m.View(), "unbalanced group") {
		t.Errorf("view should surface the render error, got %q", m.View())
	}
}

func TestPreview_EmptyOutputPlaceholder(t *testing.T) {
	m := NewPreview("", func(string) (string, error) { return "", nil })

	if !strings.Contains(m.View(), "nothing to display") {
		t.Errorf("view should show the empty placeholder, got %q", m.View())
	}
}

func TestPreview_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC, tea.KeyEnter} {
		m := NewPreview("", echoRender)
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}
