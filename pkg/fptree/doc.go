// Package fptree implements frequent-itemset mining with the FP-Growth
// algorithm.
//
// FP-Growth finds all itemsets that occur in at least minSupport
// transactions using two database scans and no candidate generation. The
// first scan counts item frequencies; the second builds a prefix-sharing
// tree ([Tree]) over the transactions with items arranged in descending
// frequency order, so transactions with common prefixes share nodes. The
// miner then extracts patterns by recursively building conditional trees
// from each item's prefix paths, least frequent item first.
//
// Items are opaque string identifiers. The package assumes nothing about
// them beyond equality and lexicographic ordering, which is only used to
// break frequency ties deterministically.
//
// # Usage
//
// Mine a transaction database directly:
//
//	patterns, err := fptree.Mine(transactions, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range patterns {
//	    fmt.Println(p.Items, p.Support)
//	}
//
// Or build the tree explicitly for inspection or rendering:
//
//	counts := fptree.CountItems(transactions)
//	order := fptree.FrequentOrder(counts, 4)
//	tree := fptree.Build(transactions, order)
//	patterns, err := fptree.MineTree(tree, 4)
//
// All operations are deterministic: given identical input, the item order,
// tree shape, and pattern enumeration are identical across runs.
package fptree
