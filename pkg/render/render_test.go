package render

import (
	"strings"
	"testing"

	"github.com/tmaxen/fpgrow/pkg/fptree"
)

func testTree(t *testing.T) *fptree.Tree {
	t.Helper()
	transactions := [][]string{
		{"a", "b", "c"},
		{"a", "b"},
		{"a", "c"},
		{"b"},
	}
	counts := fptree.CountItems(transactions)
	order := fptree.FrequentOrder(counts, 1)
	return fptree.Build(transactions, order)
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testTree(t), Options{Counts: true})

	if !strings.HasPrefix(dot, "digraph fptree {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	for _, want := range []string{`"a: 3"`, `"b: 2"`, `"c: 1"`, "->"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s:\n%s", want, dot)
		}
	}
}

func TestToDOTWithoutCounts(t *testing.T) {
	dot := ToDOT(testTree(t), Options{})
	if strings.Contains(dot, `"a: 3"`) {
		t.Error("counts rendered despite Counts=false")
	}
	if !strings.Contains(dot, `[label="a"]`) {
		t.Errorf("item label missing:\n%s", dot)
	}
}

func TestToDOTTitle(t *testing.T) {
	dot := ToDOT(testTree(t), Options{Title: "orders"})
	if !strings.Contains(dot, `label="orders"`) {
		t.Errorf("title missing:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first := ToDOT(testTree(t), Options{Counts: true})
	for i := 0; i < 10; i++ {
		if got := ToDOT(testTree(t), Options{Counts: true}); got != first {
			t.Fatalf("run %d: DOT output differs", i)
		}
	}
}

func TestWriteText(t *testing.T) {
	var sb strings.Builder
	if err := WriteText(&sb, testTree(t)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	got := sb.String()

	// a leads the order: a:3 with children b:2 (then c:1) and c:1;
	// the bare b basket forms a second root branch.
	want := strings.Join([]string{
		"├─ a:3",
		"│  ├─ b:2",
		"│  │  └─ c:1",
		"│  └─ c:1",
		"└─ b:1",
		"",
	}, "\n")
	if got != want {
		t.Errorf("WriteText =\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteTextEmptyTree(t *testing.T) {
	var sb strings.Builder
	if err := WriteText(&sb, fptree.New(nil)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("empty tree output = %q, want empty", sb.String())
	}
}
