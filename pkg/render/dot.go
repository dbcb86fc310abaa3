package render

import (
	"bytes"
	"fmt"

	"github.com/tmaxen/fpgrow/pkg/fptree"
)

// Options configures FP-tree rendering.
type Options struct {
	// Counts includes each node's transaction count in its label.
	// When false, only the item identifier is shown.
	Counts bool

	// Title is an optional graph label shown above the tree.
	Title string
}

// ToDOT converts an FP-tree to Graphviz DOT format. The resulting string
// can be rendered with [RenderSVG] or [RenderPNG].
//
// The sentinel root is drawn as a small black point; item nodes are rounded
// boxes. Node order follows the tree's canonical item order, so the output
// is identical across runs for the same input.
func ToDOT(tree *fptree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph fptree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	nodes := tree.Nodes()
	for _, n := range nodes {
		if n.Parent < 0 {
			fmt.Fprintf(&buf, "  n%d [shape=point, width=0.12, fillcolor=black];\n", n.ID)
			continue
		}
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", n.ID, nodeLabel(n, opts.Counts))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		if n.Parent >= 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", n.Parent, n.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n fptree.NodeInfo, counts bool) string {
	if counts {
		return fmt.Sprintf("%s: %d", n.Item, n.Count)
	}
	return n.Item
}
