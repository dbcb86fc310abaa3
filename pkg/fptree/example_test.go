package fptree_test

import (
	"fmt"
	"strings"

	"github.com/tmaxen/fpgrow/pkg/fptree"
)

func ExampleMine() {
	transactions := [][]string{
		{"bread", "milk", "eggs"},
		{"bread", "milk"},
		{"bread", "butter"},
		{"milk", "eggs"},
		{"bread", "milk", "butter"},
	}

	patterns, err := fptree.Mine(transactions, 3)
	if err != nil {
		panic(err)
	}
	for _, p := range patterns {
		fmt.Printf("%s: %d\n", strings.Join(p.Items, "+"), p.Support)
	}
	// Output:
	// bread: 4
	// milk: 4
	// bread+milk: 3
}

func ExampleBuild() {
	transactions := [][]string{
		{"a", "b"},
		{"a", "b", "c"},
		{"a"},
	}

	counts := fptree.CountItems(transactions)
	order := fptree.FrequentOrder(counts, 2)
	tree := fptree.Build(transactions, order)

	fmt.Println(order)
	fmt.Println(tree.Support("a"), tree.Support("b"))
	// Output:
	// [a b]
	// 3 2
}
