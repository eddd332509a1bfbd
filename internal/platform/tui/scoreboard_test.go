package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressBoard(m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardFilter(t *testing.T) {
	store := newTestStore(t)
	for _, run := range []struct {
		score   int
		outcome string
	}{
		{1001, "win"},
		{300, "collision"},
		{120, "collision"},
	} {
		if _, err := store.SaveScore("fake", run.score, run.outcome); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.modes {
		if g.ID == "fake" {
			m.mode = i
		}
	}
	m.load()

	tests := []struct {
		filter   string
		rows     int
		firstRes string
	}{
		{"all runs", 3, "WIN"},
		{"wins", 1, "WIN"},
		{"crashes", 2, "crash"},
		{"all runs", 3, "WIN"},
	}
	for i, tt := range tests {
		if i > 0 {
			m = pressBoard(m, runeKey('f'))
		}
		rows := m.table.Rows()
		if m.filter.String() != tt.filter || len(rows) != tt.rows {
			t.Fatalf("filter %q: %d rows, expected %q with %d", m.filter, len(rows), tt.filter, tt.rows)
		}
		if rows[0][2] != tt.firstRes {
			t.Errorf("filter %q: first result %q, expected %q", tt.filter, rows[0][2], tt.firstRes)
		}
	}

	// ranks stay those of the full list
	m = pressBoard(m, runeKey('f'))
	m = pressBoard(m, runeKey('f'))
	if got := m.table.Rows()[0][0]; got != "#2" {
		t.Errorf("best crash rank = %q, expected #2", got)
	}
}

func TestScoreboardView(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveScore("fake", 500, "collision"); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.modes {
		if g.ID == "fake" {
			m.mode = i
		}
	}
	m.load()

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Fake", "Runs", "500"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = pressBoard(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}
	m = pressBoard(m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
