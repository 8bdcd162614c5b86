package dom

import (
	tp "github.com/xlab/treeprint"
)

// Tree renders the node tree in a human-readable indented form.
func Tree(n *Node) string {
	p := tp.NewWithRoot(n.data.String())
	for _, child := range n.children {
		ppn(p, child)
	}
	return p.String()
}

func ppn(p tp.Tree, node *Node) {
	if len(node.children) == 0 {
		p.AddNode(node.data.String())
		return
	}
	branch := p.AddBranch(node.data.String())
	for _, child := range node.children {
		ppn(branch, child)
	}
}
