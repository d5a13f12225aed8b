package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMenuListsModesWithBestScores(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: floorquiz.IDTimed, Score: 12, Correct: 12}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	best := map[string]int{}
	for _, item := range m.Items() {
		best[item.GameID] = item.Best
	}

	if _, ok := best[floorquiz.IDTimed]; !ok {
		t.Fatalf("Timed mode missing from menu: %+v", m.Items())
	}
	if _, ok := best[floorquiz.IDPractice]; !ok {
		t.Fatalf("Practice mode missing from menu: %+v", m.Items())
	}
	if best[floorquiz.IDTimed] != 12 {
		t.Errorf("Best = %d, want 12", best[floorquiz.IDTimed])
	}
	if !strings.Contains(m.View(), "(best 12)") {
		t.Error("View should show the best score")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("Expected a selection")
	}
	if m.Selected().GameID != m.Items()[1].GameID {
		t.Errorf("Selected %q, want %q", m.Selected().GameID, m.Items()[1].GameID)
	}
	if cmd == nil {
		t.Error("Standalone menu should quit after a selection")
	}
}

func TestMenuCursorClamps(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for range 5 {
		m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.Items())-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.Items())-1)
	}
}

func TestEmbeddedMenuDoesNotQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig()).Embedded(nil)

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab should request the scoreboard")
	}
	if cmd != nil {
		t.Error("Embedded menu should not quit")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(store, nil, testConfig(), "tester", nil, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("Enter should start a round")
	}

	// Title scene: Back returns to the menu
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.InGame() {
		t.Fatal("Back on the title should return to the menu")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScoreboard {
		t.Fatalf("view = %v, want scoreboard", s.view)
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("Scoreboard view should have a title")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Fatalf("view = %v, want menu", s.view)
	}

	_, cmd := s.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit the session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}
