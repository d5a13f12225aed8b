package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestScoreboardShowsResults(t *testing.T) {
	store := openTestStore(t)
	results := []storage.Result{
		{GameID: floorquiz.IDTimed, Score: 9, Correct: 10, Wrong: 1, DurationSec: 60},
		{GameID: floorquiz.IDTimed, Score: 3, Correct: 3, DurationSec: 60},
		{GameID: floorquiz.IDPractice, Score: 20, Correct: 20, DurationSec: 300},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.Mode() != floorquiz.IDTimed {
		t.Fatalf("Mode() = %q, want %q", m.Mode(), floorquiz.IDTimed)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 9 {
		t.Fatalf("scores = %+v", m.scores)
	}

	view := m.View()
	for _, want := range []string{"Modes", "10 right, 1 wrong in 60s", "Games: 2", "Best: 9"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}

	m, _ = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != floorquiz.IDPractice {
		t.Errorf("Mode() after Tab = %q, want %q", m.Mode(), floorquiz.IDPractice)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 20 {
		t.Errorf("practice scores = %+v", m.scores)
	}

	// Wraps around both ways
	m, _ = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != floorquiz.IDTimed {
		t.Errorf("Tab should wrap to %q, got %q", floorquiz.IDTimed, m.Mode())
	}
	m, _ = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Mode() != floorquiz.IDPractice {
		t.Errorf("Shift+Tab should wrap to %q, got %q", floorquiz.IDPractice, m.Mode())
	}
}

func TestScoreboardEmptyAndNarrow(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Error("Empty board should say so")
	}
	if strings.Contains(view, "Modes\n") {
		t.Error("Narrow layout should not draw the sidebar")
	}
	if !strings.Contains(view, "(1/2)") {
		t.Error("Narrow layout should show the mode switcher")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	m, cmd := updateBoard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || cmd == nil {
		t.Error("Standalone Back should quit the program")
	}

	e := NewScoreboardModel(nil, 100, 30).Embedded(nil)
	e, cmd = updateBoard(t, e, tea.KeyMsg{Type: tea.KeyEsc})
	if !e.IsGoingBack() || cmd != nil {
		t.Error("Embedded Back should only set the flag")
	}
}
