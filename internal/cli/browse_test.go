package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmaxen/fpgrow/pkg/fptree"
	"github.com/tmaxen/fpgrow/pkg/report"
)

func testPatterns() fptree.Patterns {
	return fptree.Patterns{
		{Items: []string{"bread"}, Support: 4},
		{Items: []string{"milk"}, Support: 5},
		{Items: []string{"bread", "milk"}, Support: 3},
	}
}

func testModel() PatternListModel {
	patterns := testPatterns()
	summary := report.Build("test", [][]string{
		{"milk", "bread"}, {"milk", "bread"}, {"milk", "bread"},
		{"milk"}, {"milk"}, {"bread"},
	}, 3, patterns)
	return NewPatternListModel(patterns, summary)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewPatternListModelSortsBySupport(t *testing.T) {
	m := testModel()

	if m.Patterns[0].Support != 5 {
		t.Errorf("first pattern support = %d, want 5", m.Patterns[0].Support)
	}
	if m.Patterns[2].Support != 3 {
		t.Errorf("last pattern support = %d, want 3", m.Patterns[2].Support)
	}
}

func TestPatternListNavigation(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("j"))
	m = next.(PatternListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(PatternListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after k = %d, want 0", m.Cursor)
	}

	// k at the top stays put
	next, _ = m.Update(keyMsg("k"))
	m = next.(PatternListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after k at top = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(PatternListModel)
	if m.Cursor != len(m.Patterns)-1 {
		t.Errorf("cursor after G = %d, want %d", m.Cursor, len(m.Patterns)-1)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(PatternListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", m.Cursor)
	}
}

func TestPatternListSortToggle(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("o"))
	m = next.(PatternListModel)

	if m.SortMode != sortBySize {
		t.Fatalf("SortMode = %d, want %d", m.SortMode, sortBySize)
	}
	if len(m.Patterns[0].Items) != 2 {
		t.Errorf("first pattern size = %d, want 2", len(m.Patterns[0].Items))
	}

	next, _ = m.Update(keyMsg("o"))
	m = next.(PatternListModel)
	if m.SortMode != sortBySupport {
		t.Errorf("SortMode = %d, want %d after second toggle", m.SortMode, sortBySupport)
	}
}

func TestPatternListQuit(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestPatternListView(t *testing.T) {
	m := testModel()
	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	for _, want := range []string{"milk", "bread", "Support"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
