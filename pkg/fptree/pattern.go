package fptree

import (
	"slices"
	"strings"
)

// Pattern is one frequent itemset together with its support, the number of
// transactions containing every item in the set. Items are sorted
// lexicographically.
type Pattern struct {
	Items   []string `json:"items"`
	Support int      `json:"support"`
}

// Key returns a canonical string identifying the itemset, independent of
// the order items were discovered in.
func (p Pattern) Key() string { return patternKey(p.Items) }

// Patterns is a set of frequent itemsets in canonical enumeration order:
// ascending by size, then lexicographically by items. [Mine] and [MineTree]
// always return Patterns in this order, so output is reproducible.
type Patterns []Pattern

// Support returns the support of the exact itemset and whether it is
// present in the result set.
func (ps Patterns) Support(items ...string) (int, bool) {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	for _, p := range ps {
		if slices.Equal(p.Items, sorted) {
			return p.Support, true
		}
	}
	return 0, false
}

// MaxLen returns the size of the largest itemset, or 0 for an empty set.
func (ps Patterns) MaxLen() int {
	max := 0
	for _, p := range ps {
		if len(p.Items) > max {
			max = len(p.Items)
		}
	}
	return max
}

// patternKey joins sorted items with a separator that cannot appear in a
// sensible item identifier, giving map keys for deduplication.
func patternKey(sorted []string) string {
	return strings.Join(sorted, "\x1f")
}

// collect flattens the accumulation map into canonical enumeration order.
func collect(acc map[string]Pattern) Patterns {
	ps := make(Patterns, 0, len(acc))
	for _, p := range acc {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, func(a, b Pattern) int {
		if len(a.Items) != len(b.Items) {
			return len(a.Items) - len(b.Items)
		}
		return slices.Compare(a.Items, b.Items)
	})
	return ps
}

// record adds an itemset to the accumulator, keeping the larger support if
// the set was already seen.
func record(acc map[string]Pattern, items []string, support int) {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	key := patternKey(sorted)
	if prev, ok := acc[key]; ok && prev.Support >= support {
		return
	}
	acc[key] = Pattern{Items: sorted, Support: support}
}
