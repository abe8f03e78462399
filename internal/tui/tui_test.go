package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklist/internal/ui"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(Options{Placeholder: "What needs doing?"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func typed(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestSubmit_AppendsAndClears(t *testing.T) {
	m := newModel(t)
	m = send(t, m, typed("Buy milk"), enter)

	entries := m.Widget().Entries()
	if len(entries) != 1 || entries[0].Text != "Buy milk" || entries[0].Done {
		t.Fatalf("entries = %+v", entries)
	}
	if m.input.Value() != "" {
		t.Fatalf("input not cleared: %q", m.input.Value())
	}
	if len(m.list.Items()) != 1 {
		t.Fatalf("list items = %d, want 1", len(m.list.Items()))
	}
}

func TestSubmit_BlankAccepted(t *testing.T) {
	m := newModel(t)
	m = send(t, m, enter, typed("   "), enter)
	entries := m.Widget().Entries()
	if len(entries) != 2 || entries[0].Text != "" || entries[1].Text != "   " {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestToggle_OnlyInListFocus(t *testing.T) {
	m := newModel(t)
	m = send(t, m, typed("a"), enter, space)
	// in input focus the space is typed, not a toggle
	if m.Widget().Entries()[0].Done {
		t.Fatalf("space toggled while typing")
	}
	if m.input.Value() != " " {
		t.Fatalf("input = %q, want a space", m.input.Value())
	}

	m = send(t, m, tab)
	if m.InputFocused() {
		t.Fatalf("tab did not move focus to the list")
	}
	m = send(t, m, space)
	if !m.Widget().Entries()[0].Done {
		t.Fatalf("space did not check the entry")
	}
	m = send(t, m, space)
	if m.Widget().Entries()[0].Done {
		t.Fatalf("second space did not uncheck the entry")
	}
}

func TestScenario(t *testing.T) {
	m := newModel(t)

	m = send(t, m, typed("Buy milk"), enter, tab, space, tab)
	if !m.Widget().Entries()[0].Done {
		t.Fatalf("Buy milk not checked")
	}

	m = send(t, m, typed("Walk dog"), enter)
	got := m.Widget().Entries()
	if len(got) != 2 || !got[0].Done || got[1].Done || got[1].Text != "Walk dog" {
		t.Fatalf("after Walk dog: %+v", got)
	}

	view := m.View()
	if !strings.Contains(view, ui.StrikeStyled("Buy milk")) {
		t.Errorf("view lacks struck Buy milk:\n%s", view)
	}
	if strings.Contains(view, ui.StrikeStyled("Walk dog")) || !strings.Contains(view, "Walk dog") {
		t.Errorf("Walk dog should render plain:\n%s", view)
	}

	// cursor sits on the newest entry after submit
	m = send(t, m, tab, up, space)
	got = m.Widget().Entries()
	if got[0].Done || got[1].Done {
		t.Fatalf("after unchecking Buy milk: %+v", got)
	}
	m = send(t, m, down, space)
	if !m.Widget().Entries()[1].Done {
		t.Fatalf("Walk dog not checked")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newModel(t)
	if _, cmd := m.Update(typed("q")); cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatalf("q quit while typing")
		}
	}

	m = send(t, m, tab)
	_, cmd := m.Update(typed("q"))
	if cmd == nil {
		t.Fatalf("q in list focus returned no command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("q in list focus did not quit")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("ctrl+c did not quit")
	}
}
