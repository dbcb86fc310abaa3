package fptree

import "sort"

// CountItems performs the first database scan, counting how many
// transactions each item appears in. An item occurring more than once in a
// single transaction is counted once; support is a transaction count, not
// an occurrence count. An empty input yields an empty (non-nil) map.
func CountItems(transactions [][]string) map[string]int {
	counts := make(map[string]int)
	seen := make(map[string]bool)
	for _, txn := range transactions {
		clear(seen)
		for _, item := range txn {
			if seen[item] {
				continue
			}
			seen[item] = true
			counts[item]++
		}
	}
	return counts
}

// FrequentOrder filters counts to items with count >= minSupport and
// returns them sorted by descending count, with lexicographic order
// breaking ties. The resulting order is the canonical insertion order for
// one tree: every transaction inserted into that tree must be sorted by it.
//
// Returns an empty slice when no item meets the threshold.
func FrequentOrder(counts map[string]int, minSupport int) []string {
	order := make([]string, 0, len(counts))
	for item, count := range counts {
		if count >= minSupport {
			order = append(order, item)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return order[i] < order[j]
	})
	return order
}

// posMap maps each item to its index in the canonical order.
// Built once per tree and reused for every insertion.
func posMap(order []string) map[string]int {
	m := make(map[string]int, len(order))
	for i, item := range order {
		m[item] = i
	}
	return m
}

// canonicalize projects a transaction onto the items present in pos,
// deduplicates, and sorts by canonical position. Returns nil when no item
// survives, in which case the transaction contributes nothing to the tree.
func canonicalize(txn []string, pos map[string]int) []string {
	var filtered []string
	seen := make(map[string]bool, len(txn))
	for _, item := range txn {
		if _, ok := pos[item]; ok && !seen[item] {
			seen[item] = true
			filtered = append(filtered, item)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return pos[filtered[i]] < pos[filtered[j]]
	})
	return filtered
}
