package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/decisiontable/dtc/cellsrc"
	"github.com/decisiontable/dtc/intern"
	"github.com/decisiontable/dtc/tree"
)

type tailEntry struct {
	infs  *intern.Inferences
	node  *tree.Node
	label int
}

// emitter walks a tree, recording a label per distinct (tail
// Inferences, continuation node) pair so identical branch tails
// collapse to a single jump. Because the tree builder memoizes
// subproblems, the same *tree.Node can be the continuation for more
// than one (infs, node) pair — each such pair still gets emitted, but
// a node's own body (its T test and both of its own branch tails) is
// only ever written once, since those are looked up by the node's own
// fixed InfsV/NodeV and InfsO/NodeO fields rather than by the node's
// identity alone.
type emitter struct {
	w         *bufio.Writer
	err       error
	nextLabel int
	tails     []tailEntry
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{w: bufio.NewWriter(w), nextLabel: 1}
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func encode(s string) string { return string(cellsrc.EncodeValue([]byte(s))) }

func (e *emitter) writeValue(prefix string, v *intern.Value) {
	e.printf("%s,%s,%s\n", prefix, encode(v.Name.Symbol.String()), encode(v.Symbol.String()))
}

func infsEqual(a, b *intern.Inferences) bool {
	la, lb := 0, 0
	if a != nil {
		la = a.Len()
	}
	if b != nil {
		lb = b.Len()
	}
	if la != lb {
		return false
	}
	for i := 0; i < la; i++ {
		if a.At(i).Conclusion != b.At(i).Conclusion {
			return false
		}
	}
	return true
}

// branchLabel finds or reserves the label for the (infs, node) tail,
// reporting whether it was already recorded (a duplicate tail).
func (e *emitter) branchLabel(infs *intern.Inferences, n *tree.Node) (int, bool) {
	for _, t := range e.tails {
		if t.node == n && infsEqual(t.infs, infs) {
			return t.label, true
		}
	}
	lbl := e.nextLabel
	e.nextLabel++
	e.tails = append(e.tails, tailEntry{infs: infs, node: n, label: lbl})
	return lbl, false
}

func (e *emitter) emitRecords(infs *intern.Inferences) {
	if infs == nil {
		return
	}
	for i := 0; i < infs.Len(); i++ {
		e.writeValue("R", infs.At(i).Conclusion)
	}
}

// emitBranchContent writes infs's R lines followed by either n's body
// or, if there is none, a jump to the end-of-program label.
func (e *emitter) emitBranchContent(infs *intern.Inferences, n *tree.Node) {
	e.emitRecords(infs)
	if n != nil {
		e.emitNode(n)
	} else {
		e.printf("J,0\n")
	}
}

// emitBranch writes a branch tail: a fresh label and its content the
// first time it is seen, or a jump to the existing label thereafter.
func (e *emitter) emitBranch(infs *intern.Inferences, n *tree.Node) {
	lbl, dup := e.branchLabel(infs, n)
	if dup {
		e.printf("J,%d\n", lbl)
		return
	}
	e.printf("L,%d\n", lbl)
	e.emitBranchContent(infs, n)
}

// emitNode writes n's body for the tail that led here. A leaf's
// Leftover records are printed fresh on every visit, since each
// calling tail has its own preceding records and needs its own copy.
// A non-leaf's T test and its two branches are looked up through the
// same (infs, node) tails table branchLabel uses everywhere else, so
// the second time a memoized node is reached through a different
// incoming tail, its own body still only gets written once: the test
// is re-emitted (it has to be, since this is a new entry point) but
// jumps straight into the first visit's already-written V/O bodies
// instead of re-emitting them.
func (e *emitter) emitNode(n *tree.Node) {
	if n.IsLeaf() {
		e.emitRecords(n.Leftover)
		return
	}

	lbl, dup := e.branchLabel(n.InfsV, n.NodeV)
	e.printf("T,%s,%s,%d\n", encode(n.Value.Name.Symbol.String()), encode(n.Value.Symbol.String()), lbl)
	e.emitBranch(n.InfsO, n.NodeO)
	if !dup {
		e.printf("L,%d\n", lbl)
		e.emitBranchContent(n.InfsV, n.NodeV)
	}
}

// Emit writes the full pseudocode listing for root: a D header, one I
// line per independent Value, one O line per distinct conclusion
// drawn from universe, then the tree body, ending with the reserved
// L,0 end-of-program label.
func Emit(w io.Writer, independent *intern.Values, universe *intern.Inferences, root *tree.Node) error {
	e := newEmitter(w)

	e.printf("D,%d\n", root.Depth+1)

	for i := 0; i < independent.Len(); i++ {
		e.writeValue("I", independent.At(i))
	}

	var prev *intern.Value
	for i := 0; i < universe.Len(); i++ {
		v := universe.At(i).Conclusion
		if v == prev {
			continue
		}
		prev = v
		e.writeValue("O", v)
	}

	e.emitNode(root)
	e.printf("L,0\n")

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
