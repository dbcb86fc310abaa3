package fptree

import (
	"errors"
	"sort"
)

var (
	// ErrCountMismatch is returned by [Tree.Validate] when a node's count is
	// smaller than the sum of its children's counts. Counts accumulate along
	// shared prefixes, so every node must carry at least as much weight as
	// the paths passing through it.
	ErrCountMismatch = errors.New("node count smaller than sum of child counts")

	// ErrHeaderMismatch is returned by [Tree.Validate] when the header table
	// disagrees with the nodes actually present in the tree. This indicates
	// tree corruption.
	ErrHeaderMismatch = errors.New("header table out of sync with tree")

	// ErrOrderViolation is returned by [Tree.Validate] when a path contains
	// items out of canonical order. Prefix sharing is only correct when every
	// inserted transaction was sorted by the same order.
	ErrOrderViolation = errors.New("path violates canonical item order")
)

// WeightedPath is a prefix path paired with the number of transactions
// supporting it. It is both the output of [Tree.PrefixPaths] and the input
// of [BuildWeighted], so conditional trees are constructed through the same
// insertion logic as the initial tree.
type WeightedPath struct {
	Items []string // root-to-node order
	Count int
}

// node is one item occurrence aggregated across all transactions sharing a
// tree path. The tree owns all nodes transitively from the root; the parent
// pointer is a back-reference for upward path reconstruction only.
type node struct {
	item     string
	count    int
	parent   *node
	children map[string]*node
}

// Tree is a frequent-pattern tree: a prefix-sharing trie over transactions
// with items arranged in a fixed canonical order. Transactions with common
// prefixes share nodes, and each node counts the transactions passing
// through it. Nodes holding the same item across branches are reachable via
// a header table rather than sibling links.
//
// A Tree is populated with [Tree.Insert] (or the [Build]/[BuildWeighted]
// constructors) and is read-only afterwards for the purposes of mining.
// The zero value is not usable - use [New] to create a valid instance.
// Tree is not safe for concurrent mutation.
type Tree struct {
	root   *node
	order  []string
	pos    map[string]int
	header map[string][]*node // item -> all nodes for that item, first-seen order
}

// New creates an empty tree whose insertions follow the given canonical
// order. The order must be the one the transactions will be sorted by,
// typically the result of [FrequentOrder]; mixing orders breaks the prefix
// sharing the algorithm relies on.
func New(order []string) *Tree {
	return &Tree{
		root:   &node{children: make(map[string]*node)},
		order:  order,
		pos:    posMap(order),
		header: make(map[string][]*node),
	}
}

// Build constructs a tree from raw transactions. Each transaction is
// projected onto the items in order, deduplicated, sorted canonically, and
// inserted with weight 1. Transactions with no frequent items are skipped.
func Build(transactions [][]string, order []string) *Tree {
	t := New(order)
	for _, txn := range transactions {
		t.Insert(txn, 1)
	}
	return t
}

// BuildWeighted constructs a tree from weighted prefix paths, typically a
// conditional pattern base produced by [Tree.PrefixPaths]. Equal paths from
// different source nodes merge and sum their counts, because they pass
// through the same insertion logic as regular transactions.
func BuildWeighted(paths []WeightedPath, order []string) *Tree {
	t := New(order)
	for _, p := range paths {
		t.Insert(p.Items, p.Count)
	}
	return t
}

// Insert adds one transaction with the given weight. The items are
// canonicalized against the tree's order first, so callers may pass raw
// transactions. Items outside the canonical order are dropped; if nothing
// survives, or weight is not positive, the tree is unchanged.
//
// After inserting transactions with weights w_i, the count at any node
// equals the sum of w_i over every transaction whose canonical prefix
// reaches that node.
func (t *Tree) Insert(items []string, weight int) {
	if weight <= 0 {
		return
	}
	cur := t.root
	for _, item := range canonicalize(items, t.pos) {
		child, ok := cur.children[item]
		if !ok {
			child = &node{
				item:     item,
				parent:   cur,
				children: make(map[string]*node),
			}
			cur.children[item] = child
			t.header[item] = append(t.header[item], child)
		}
		child.count += weight
		cur = child
	}
}

// Order returns the canonical item order the tree was built with,
// descending by frequency. The returned slice must not be modified.
func (t *Tree) Order() []string { return t.order }

// Empty reports whether the tree contains no item nodes.
func (t *Tree) Empty() bool { return len(t.root.children) == 0 }

// NodeCount returns the number of item nodes (the sentinel root excluded).
func (t *Tree) NodeCount() int {
	n := 0
	for _, nodes := range t.header {
		n += len(nodes)
	}
	return n
}

// Support returns the total count of the item across all its nodes, i.e.
// the number of inserted transactions (by weight) containing it. Returns 0
// for items not in the tree.
func (t *Tree) Support(item string) int {
	total := 0
	for _, n := range t.header[item] {
		total += n.count
	}
	return total
}

// RootSupport returns the sum of the root's direct children counts. For a
// tree built from unit-weight transactions this equals the number of
// transactions with at least one frequent item.
func (t *Tree) RootSupport() int {
	total := 0
	for _, n := range t.root.children {
		total += n.count
	}
	return total
}

// PrefixPaths returns the conditional pattern base for item: for every node
// holding the item, the path of ancestor items from just below the root down
// to the node's parent, paired with that node's count. Nodes sitting
// directly under the root contribute an empty path and are omitted, since an
// empty prefix supports no further pattern growth.
func (t *Tree) PrefixPaths(item string) []WeightedPath {
	var paths []WeightedPath
	for _, n := range t.header[item] {
		var items []string
		for cur := n.parent; cur != nil && cur.parent != nil; cur = cur.parent {
			items = append(items, cur.item)
		}
		if len(items) == 0 {
			continue
		}
		// Collected bottom-up; restore root-to-node order.
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
		paths = append(paths, WeightedPath{Items: items, Count: n.count})
	}
	return paths
}

// NodeInfo is a read-only view of one tree node, exposed for rendering and
// inspection without giving out the owned node graph.
type NodeInfo struct {
	ID     int    // preorder index; 0 is the sentinel root
	Parent int    // parent's preorder index; -1 for the root
	Item   string // empty for the root
	Count  int
}

// Nodes returns all nodes in deterministic preorder, visiting children in
// canonical item order. The sentinel root is included as the first entry so
// callers can reconstruct the full shape.
func (t *Tree) Nodes() []NodeInfo {
	infos := []NodeInfo{{ID: 0, Parent: -1}}
	var walk func(n *node, parentID int)
	walk = func(n *node, parentID int) {
		items := make([]string, 0, len(n.children))
		for item := range n.children {
			items = append(items, item)
		}
		sort.Slice(items, func(i, j int) bool { return t.pos[items[i]] < t.pos[items[j]] })
		for _, item := range items {
			child := n.children[item]
			id := len(infos)
			infos = append(infos, NodeInfo{ID: id, Parent: parentID, Item: item, Count: child.count})
			walk(child, id)
		}
	}
	walk(t.root, 0)
	return infos
}

// chainItem is one link of a degenerate single-path tree.
type chainItem struct {
	item  string
	count int
}

// singlePath reports whether the tree degenerates to one linear chain and,
// if so, returns the chain top-down. Counts along a chain are monotonically
// non-increasing, which the miner's subset enumeration relies on.
func (t *Tree) singlePath() ([]chainItem, bool) {
	var chain []chainItem
	cur := t.root
	for len(cur.children) > 0 {
		if len(cur.children) > 1 {
			return nil, false
		}
		for _, child := range cur.children {
			cur = child
		}
		chain = append(chain, chainItem{item: cur.item, count: cur.count})
	}
	return chain, true
}

// Validate checks tree integrity and returns nil if valid.
// It verifies three invariants:
//
//  1. Every node's count is at least the sum of its children's counts
//  2. The header table lists exactly the nodes present in the tree
//  3. Item positions strictly increase along every root-to-leaf path
//
// Violations are programming errors, not recoverable conditions; Validate
// exists so tests and development builds can fail fast on them.
func (t *Tree) Validate() error {
	found := make(map[string]int)
	var walk func(n *node) error
	walk = func(n *node) error {
		childSum := 0
		for item, child := range n.children {
			if child.item != item || child.parent != n {
				return ErrHeaderMismatch
			}
			if n != t.root && t.pos[child.item] <= t.pos[n.item] {
				return ErrOrderViolation
			}
			childSum += child.count
			found[child.item]++
			if err := walk(child); err != nil {
				return err
			}
		}
		if n != t.root && childSum > n.count {
			return ErrCountMismatch
		}
		return nil
	}
	if err := walk(t.root); err != nil {
		return err
	}
	for item, nodes := range t.header {
		if found[item] != len(nodes) {
			return ErrHeaderMismatch
		}
		delete(found, item)
	}
	if len(found) != 0 {
		return ErrHeaderMismatch
	}
	return nil
}
