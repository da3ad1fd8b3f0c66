package tree

import "github.com/decisiontable/dtc/intern"

// Node is one decision point (or leaf) of a synthesized tree. A
// non-leaf Node tests Value: InfsV/NodeV describe what happens when
// Value holds, InfsO/NodeO when it does not. A leaf has Value == nil
// and Leftover holding every Inference that is already settled no
// matter which way the remaining Values fall.
type Node struct {
	Value *intern.Value

	InfsV *intern.Inferences
	NodeV *Node

	InfsO *intern.Inferences
	NodeO *Node

	// Depth is the worst-case number of further tests below this
	// Node, used both while searching (to prune) and, once final, as
	// the reported tree depth.
	Depth int

	// Leftover holds the Inferences resolved at a leaf Node (Value
	// == nil): every remaining Value failed to usefully split the
	// problem further, so whatever is left in Leftover holds
	// unconditionally at this point in the tree.
	Leftover *intern.Inferences
}

// IsLeaf reports whether n is a terminal Node with no further test.
func (n *Node) IsLeaf() bool { return n.Value == nil }
