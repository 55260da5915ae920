package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftcli/drift/pkg/history"
)

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(MenuModel)
	}
	return m
}

func newTestMenu(store history.Store) MenuModel {
	return NewMenuModel(context.Background(), store, "memory")
}

func TestMenuNavigation(t *testing.T) {
	m := newTestMenu(nil)

	if m.screen != screenMenu {
		t.Fatalf("initial screen = %v, want menu", m.screen)
	}

	m = send(m, "down")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	m = send(m, "down", "down", "down")
	if m.cursor != len(menuChoices)-1 {
		t.Errorf("cursor = %d, should stop at last entry", m.cursor)
	}
	m = send(m, "up")
	if m.cursor != len(menuChoices)-2 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(menuChoices)-2)
	}
}

func TestMenuQuit(t *testing.T) {
	m := newTestMenu(nil)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestMenuOpensInputScreen(t *testing.T) {
	m := send(newTestMenu(nil), "enter")
	if m.screen != screenInput {
		t.Fatalf("screen = %v, want input", m.screen)
	}
	if !strings.Contains(m.View(), "route:") {
		t.Error("input view should show the route prompt")
	}
}

func TestMenuCalculation(t *testing.T) {
	store := history.NewMemoryStore()
	m := send(newTestMenu(store), "enter", "3F4R", "enter")

	if m.result == nil {
		t.Fatal("result should be set after enter")
	}
	if m.result.rejected != nil {
		t.Fatalf("unexpected rejection: %v", m.result.rejected)
	}
	if m.result.disp.Distance() != 5 {
		t.Errorf("distance = %v, want 5", m.result.disp.Distance())
	}
	if !strings.Contains(m.View(), "5") {
		t.Error("view should show the computed distance")
	}

	// The calculation is recorded.
	entries, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 || entries[0].Route != "3F4R" {
		t.Errorf("history = %v, want the recorded calculation", entries)
	}
}

func TestMenuRejectionShownAndRetryable(t *testing.T) {
	m := send(newTestMenu(nil), "enter", "5F3", "enter")

	if m.result == nil || m.result.rejected == nil {
		t.Fatal("rejection should be kept for display")
	}
	if !strings.Contains(m.View(), "trailing steps") {
		t.Errorf("view should show the rejection reason, got:\n%s", m.View())
	}

	// Typing again clears the stale result; the user can correct and retry.
	m = send(m, "backspace", "backspace", "backspace", "3F4R")
	if m.input != "3F4R" {
		t.Errorf("input = %q, want corrected route", m.input)
	}
	m = send(m, "enter")
	if m.result == nil || m.result.rejected != nil {
		t.Errorf("corrected input should calculate, got %+v", m.result)
	}
}

func TestMenuBackspace(t *testing.T) {
	m := send(newTestMenu(nil), "enter", "3F", "backspace")
	if m.input != "3" {
		t.Errorf("input = %q, want %q", m.input, "3")
	}
	// Backspace on empty input is a no-op.
	m = send(m, "backspace", "backspace")
	if m.input != "" {
		t.Errorf("input = %q, want empty", m.input)
	}
}

func TestMenuInstructionsScreen(t *testing.T) {
	m := send(newTestMenu(nil), "down", "enter")
	if m.screen != screenInstructions {
		t.Fatalf("screen = %v, want instructions", m.screen)
	}
	view := m.View()
	for _, want := range []string{"forward", "back", "left", "right"} {
		if !strings.Contains(view, want) {
			t.Errorf("instructions should mention %q", want)
		}
	}

	// Any key returns to the menu.
	m = send(m, "x")
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after keypress", m.screen)
	}
}

func TestMenuEscReturnsFromInput(t *testing.T) {
	m := send(newTestMenu(nil), "enter", "3F", "esc")
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after esc", m.screen)
	}
}
