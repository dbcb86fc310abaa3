package render

import (
	"fmt"
	"io"

	"github.com/tmaxen/fpgrow/pkg/fptree"
)

// WriteText writes an ASCII view of the tree, one node per line with
// branch connectors:
//
//	├─ mouse:8
//	│  ├─ bag:4
//	│  │  └─ cable:2
//	│  └─ cable:3
//	└─ laptop:1
//
// Children appear in canonical item order.
func WriteText(w io.Writer, tree *fptree.Tree) error {
	nodes := tree.Nodes()

	children := make(map[int][]fptree.NodeInfo)
	for _, n := range nodes {
		if n.Parent >= 0 {
			children[n.Parent] = append(children[n.Parent], n)
		}
	}

	var write func(id int, prefix string) error
	write = func(id int, prefix string) error {
		kids := children[id]
		for i, kid := range kids {
			connector, indent := "├─ ", "│  "
			if i == len(kids)-1 {
				connector, indent = "└─ ", "   "
			}
			if _, err := fmt.Fprintf(w, "%s%s%s:%d\n", prefix, connector, kid.Item, kid.Count); err != nil {
				return err
			}
			if err := write(kid.ID, prefix+indent); err != nil {
				return err
			}
		}
		return nil
	}
	return write(0, "")
}
