package tree

import (
	"sort"
	"strconv"
	"strings"

	"github.com/decisiontable/dtc/intern"
	"github.com/decisiontable/dtc/resolve"
)

// Builder synthesizes decision trees, memoizing every (Values,
// Inferences) subproblem it solves so that two branches of the search
// needing the same remainder only pay for it once.
type Builder struct {
	quick bool
	memo  map[string]*Node
}

// NewBuilder constructs a Builder. When quick is true, Build stops at
// the first feasible candidate Value at each level instead of
// searching all of them for the one with minimum worst-case depth.
func NewBuilder(quick bool) *Builder {
	return &Builder{quick: quick, memo: map[string]*Node{}}
}

// Build synthesizes a tree over vals and infs. The initial depth
// bound is vals.Len() — no tree over len(vals) independent Values can
// need to test more of them than that.
func (b *Builder) Build(vals *intern.Values, infs *intern.Inferences) *Node {
	return b.build(vals, infs, vals.Len())
}

func key(vals *intern.Values, infs *intern.Inferences) string {
	var sb strings.Builder
	for i := 0; i < vals.Len(); i++ {
		v := vals.At(i)
		sb.WriteString(v.Name.Symbol.String())
		sb.WriteByte('=')
		sb.WriteString(v.Symbol.String())
		sb.WriteByte(';')
	}
	sb.WriteByte('|')
	for i := 0; i < infs.Len(); i++ {
		inf := infs.At(i)
		sb.WriteString(inf.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(inf.Row))
		sb.WriteByte(';')
	}
	return sb.String()
}

func sortedByBalance(vals *intern.Values) []*intern.Value {
	cand := append([]*intern.Value(nil), vals.Slice()...)
	sort.Slice(cand, func(i, j int) bool {
		return resolve.CompareBalance(cand[i], cand[j]) < 0
	})
	return cand
}

func (b *Builder) build(vals *intern.Values, infs *intern.Inferences, depthBound int) *Node {
	k := key(vals, infs)
	if n, ok := b.memo[k]; ok {
		return n
	}

	bd := depthBound
	var best *Node

	for _, val := range sortedByBalance(vals) {
		r := &Node{}

		nV := resolve.ResolvedByValue(vals, infs, val)
		for i := 0; i < nV.Len(); i++ {
			resolve.TransitiveAdd(nV.At(i).Conclusion, infs, nV)
		}
		if nV.Len() > 0 {
			r.InfsV = nV
		}

		nO := resolve.ResolvedByName(vals, infs, val)
		for i := 0; i < nO.Len(); i++ {
			resolve.TransitiveAdd(nO.At(i).Conclusion, infs, nO)
		}
		if nO.Len() > 0 {
			r.InfsO = nO
		}

		// nVRemain: what's left over once every sibling Value's own
		// reachable Inferences are subtracted out of infs.
		var nVRemain *intern.Inferences
		sibs := val.Name.Values()
		for s := 0; s < sibs.Len(); s++ {
			sib := sibs.At(s)
			if sib == val {
				continue
			}
			base := infs
			if nVRemain != nil {
				base = nVRemain
			}
			nVRemain = resolve.Minus(base, sib.Inferences())
		}

		nORemain := resolve.Minus(infs, val.Inferences())

		if nVRemain.Len() > 0 && r.InfsV != nil {
			nVRemain = resolve.Strip(nVRemain, r.InfsV)
		}
		if nORemain.Len() > 0 && r.InfsO != nil {
			nORemain = resolve.Strip(nORemain, r.InfsO)
		}

		var fV, fO *intern.Values
		if nVRemain.Len() > 0 {
			fV = resolve.ValuesUnderOtherNames(vals, val, nVRemain)
		}
		if nORemain.Len() > 0 {
			fO = resolve.ValuesExcluding(vals, val, nORemain)
		}

		if (fV != nil && fV.Len() == 0) || (fO != nil && fO.Len() == 0) {
			// val doesn't usefully split the remaining problem.
			continue
		}

		r.Value = val
		if fV != nil {
			r.NodeV = b.build(fV, nVRemain, bd)
		}
		if fO != nil {
			r.NodeO = b.build(fO, nORemain, bd)
		}

		if r.NodeV != nil || r.NodeO != nil {
			switch {
			case r.NodeV != nil && r.NodeO != nil && !r.NodeV.IsLeaf() && !r.NodeO.IsLeaf():
				r.Depth = 1 + max(r.NodeV.Depth, r.NodeO.Depth)
			case r.NodeO == nil && r.NodeV != nil && !r.NodeV.IsLeaf():
				r.Depth = 1 + r.NodeV.Depth
			case r.NodeV == nil && r.NodeO != nil && !r.NodeO.IsLeaf():
				r.Depth = 1 + r.NodeO.Depth
			default:
				// one side collapsed straight to a leaf without the
				// other side contributing: not an improvement.
				continue
			}
		}

		if r.Depth > bd {
			continue
		}

		if best == nil || r.Depth < best.Depth {
			best = r
			if b.quick || best.Depth == 0 {
				break
			}
			bd = best.Depth
		}
	}

	if best == nil {
		best = &Node{Leftover: infs}
	}
	b.memo[k] = best
	return best
}
