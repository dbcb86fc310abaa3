// Package report computes descriptive statistics for a mining run and
// exports pattern sets to JSON and CSV. Like rendering, reporting is a
// collaborator of the mining core: it consumes finished results and never
// feeds back into the algorithm.
package report

import (
	"sort"

	"github.com/tmaxen/fpgrow/pkg/fptree"
)

// topPatternCount is how many highest-support patterns a summary keeps.
const topPatternCount = 5

// Summary describes one mining run.
type Summary struct {
	Dataset       string      `json:"dataset,omitempty"`
	Transactions  int         `json:"transactions"`
	DistinctItems int         `json:"distinct_items"`
	FrequentItems int         `json:"frequent_items"`
	MinSupport    int         `json:"min_support"`
	PatternCount  int         `json:"pattern_count"`
	BySize        map[int]int `json:"by_size,omitempty"`

	// Top holds the highest-support patterns, support descending, smaller
	// itemsets first on ties.
	Top fptree.Patterns `json:"top,omitempty"`
}

// Build computes a summary for a completed run.
func Build(name string, transactions [][]string, minSupport int, patterns fptree.Patterns) Summary {
	counts := fptree.CountItems(transactions)
	frequent := 0
	for _, c := range counts {
		if c >= minSupport {
			frequent++
		}
	}

	bySize := make(map[int]int)
	for _, p := range patterns {
		bySize[len(p.Items)]++
	}

	top := make(fptree.Patterns, len(patterns))
	copy(top, patterns)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Support != top[j].Support {
			return top[i].Support > top[j].Support
		}
		return len(top[i].Items) < len(top[j].Items)
	})
	if len(top) > topPatternCount {
		top = top[:topPatternCount]
	}

	return Summary{
		Dataset:       name,
		Transactions:  len(transactions),
		DistinctItems: len(counts),
		FrequentItems: frequent,
		MinSupport:    minSupport,
		PatternCount:  len(patterns),
		BySize:        bySize,
		Top:           top,
	}
}

// SupportPercent returns a pattern's support as a percentage of the
// transaction count, or 0 when the summary covers no transactions.
func (s Summary) SupportPercent(p fptree.Pattern) float64 {
	if s.Transactions == 0 {
		return 0
	}
	return float64(p.Support) / float64(s.Transactions) * 100
}
