package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)
	if len(m.items) == 0 {
		t.Fatal("menu should list the registered mazes")
	}
	last := len(m.items) - 1

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at the top, expected 0", m.cursor)
	}

	for i := 0; i < len(m.items)+3; i++ {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != last {
		t.Errorf("cursor = %d after scrolling past the end, expected %d", m.cursor, last)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != m.items[last].GameID {
		t.Errorf("selected %+v, expected %s", m.Selected(), m.items[last].GameID)
	}
}

func TestEmptyMenuCursor(t *testing.T) {
	m := MenuModel{keys: DefaultMenuKeyMap()}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d in an empty menu, expected 0", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil {
		t.Error("an empty menu has nothing to select")
	}
}
