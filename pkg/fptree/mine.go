package fptree

import "errors"

// ErrInvalidSupport is returned by [Mine] and [MineTree] when minSupport is
// not a positive count. A non-positive threshold is a configuration error,
// never treated as "no threshold".
var ErrInvalidSupport = errors.New("minimum support must be a positive transaction count")

// Mine finds every itemset occurring in at least minSupport transactions.
// It runs the full two-scan FP-Growth procedure: count item frequencies,
// derive the canonical order, build the tree, and mine it recursively.
//
// An empty result is a valid outcome, not an error: it simply means no item
// met the threshold. Mine returns ErrInvalidSupport when minSupport <= 0,
// before any scan begins.
func Mine(transactions [][]string, minSupport int) (Patterns, error) {
	if minSupport <= 0 {
		return nil, ErrInvalidSupport
	}
	counts := CountItems(transactions)
	order := FrequentOrder(counts, minSupport)
	return MineTree(Build(transactions, order), minSupport)
}

// MineTree mines all frequent itemsets from an already-built tree. The
// tree must have been built with an order derived from the same minSupport;
// items below the threshold would otherwise surface as spurious patterns.
// Returns ErrInvalidSupport when minSupport <= 0.
func MineTree(t *Tree, minSupport int) (Patterns, error) {
	if minSupport <= 0 {
		return nil, ErrInvalidSupport
	}
	acc := make(map[string]Pattern)
	mine(t, minSupport, nil, acc)
	return collect(acc), nil
}

// mine is the recursive conditional miner. prefix is the itemset all
// patterns found in t are extensions of; every emitted pattern combines the
// prefix with items from t. Each recursion level owns its tree and order,
// so no state is shared across levels.
func mine(t *Tree, minSupport int, prefix []string, acc map[string]Pattern) {
	// Single-path fast path: a pure chain needs no further conditional
	// trees. Every non-empty subset of the chain is a pattern whose support
	// is the count of its deepest item (counts never increase downward).
	if chain, ok := t.singlePath(); ok {
		for mask := 1; mask < 1<<len(chain); mask++ {
			items := append([]string(nil), prefix...)
			support := 0
			for i, link := range chain {
				if mask&(1<<i) == 0 {
					continue
				}
				items = append(items, link.item)
				if support == 0 || link.count < support {
					support = link.count
				}
			}
			if support >= minSupport {
				record(acc, items, support)
			}
		}
		return
	}

	// Process least frequent first, so each item's conditional base only
	// contains items above it in the order. That is what makes support
	// counts correct without revisiting work.
	for i := len(t.order) - 1; i >= 0; i-- {
		item := t.order[i]
		support := t.Support(item)
		if support < minSupport {
			continue
		}
		withItem := append(append([]string(nil), prefix...), item)
		record(acc, withItem, support)

		base := t.PrefixPaths(item)
		if len(base) == 0 {
			continue
		}

		// Local frequencies are weighted by path count and filtered by the
		// same threshold; the conditional order is recomputed per level,
		// never reused from the parent tree.
		condCounts := make(map[string]int)
		for _, p := range base {
			for _, it := range p.Items {
				condCounts[it] += p.Count
			}
		}
		condOrder := FrequentOrder(condCounts, minSupport)
		if len(condOrder) == 0 {
			continue
		}
		mine(BuildWeighted(base, condOrder), minSupport, withItem, acc)
	}
}
