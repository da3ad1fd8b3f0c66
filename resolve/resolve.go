package resolve

import "github.com/decisiontable/dtc/intern"

// usedAsCondition reports whether val appears in the conditions of any
// Inference in infs.
func usedAsCondition(infs *intern.Inferences, val *intern.Value) bool {
	for i := 0; i < infs.Len(); i++ {
		if infs.At(i).Conditions.Contains(val) {
			return true
		}
	}
	return false
}

// otherSiblingInferenceCount sums the reachable-inference counts of
// every Value sharing val's Name other than val itself.
func otherSiblingInferenceCount(val *intern.Value) int {
	total := 0
	sibs := val.Name.Values()
	for i := 0; i < sibs.Len(); i++ {
		sib := sibs.At(i)
		if sib == val {
			continue
		}
		if infs := sib.Inferences(); infs != nil {
			total += infs.Len()
		}
	}
	return total
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// CompareBalance orders two candidate branching Values the way the
// tree builder walks them: primarily by how balanced a split on the
// Value would be (own reachable inferences vs. its siblings' combined
// total — smaller difference first), and, among equally balanced
// Values, by preferring the one whose smaller side carries more
// inferences (larger minimum first, so cheap-to-settle Values are
// tried last).
func CompareBalance(a, b *intern.Value) int {
	o1, o2 := otherSiblingInferenceCount(a), otherSiblingInferenceCount(b)
	n1, n2 := a.Inferences().Len(), b.Inferences().Len()

	if d1, d2 := absDiff(n1, o1), absDiff(n2, o2); d1 != d2 {
		if d1 < d2 {
			return -1
		}
		return 1
	}
	if m1, m2 := min(n1, o1), min(n2, o2); m1 != m2 {
		if m1 > m2 {
			return -1
		}
		return 1
	}
	return 0
}

// TransitiveAdd extends r in place with every Inference in infs whose
// sole condition is val, then with every Inference whose sole
// condition is one of those Inferences' conclusions, and so on —
// the single-dependency transitive closure of simple one-condition
// chains starting at val.
func TransitiveAdd(val *intern.Value, infs, r *intern.Inferences) {
	seen := map[*intern.Value]bool{val: true}
	frontier := []*intern.Value{val}

	for len(frontier) > 0 {
		var next []*intern.Value
		for _, v := range frontier {
			for i := 0; i < infs.Len(); i++ {
				inf := infs.At(i)
				if inf.Conditions.Len() != 1 || inf.Conditions.At(0) != v {
					continue
				}
				r.Add(inf)
				if c := inf.Conclusion; !seen[c] {
					seen[c] = true
					next = append(next, c)
				}
			}
		}
		frontier = next
	}
}

// ResolvedByValue returns the subset of infs that val alone settles:
// every Inference reachable from val (per its precomputed Inferences
// set) that is still present in infs, none of whose other conditions
// is still an open Value in vals, and none of whose other conditions
// is settled by an Inference in infs that itself still has an open
// condition.
func ResolvedByValue(vals *intern.Values, infs *intern.Inferences, val *intern.Value) *intern.Inferences {
	r := intern.NewInferences()
	candidates := val.Inferences()

outer:
	for i := 0; i < candidates.Len(); i++ {
		inf := candidates.At(i)
		if !infs.Contains(inf) {
			continue
		}
		conds := inf.Conditions
		for c := 0; c < conds.Len(); c++ {
			cv := conds.At(c)
			if cv == val {
				continue
			}
			if vals.Contains(cv) {
				continue outer
			}
			idx, found := infs.IndexByConclusion(cv)
			if !found {
				continue
			}
			for idx < infs.Len() && infs.At(idx).Conclusion == cv {
				m := infs.At(idx)
				for k := 0; k < m.Conditions.Len(); k++ {
					if vals.Contains(m.Conditions.At(k)) {
						continue outer
					}
				}
				idx++
			}
		}
		r.Add(inf)
	}
	return r
}

// ResolvedByName narrows infs by every sibling of val (under val's
// Name) that is still present in vals, chaining ResolvedByValue across
// them one sibling at a time so each step works against the previous
// step's narrowed result.
func ResolvedByName(vals *intern.Values, infs *intern.Inferences, val *intern.Value) *intern.Inferences {
	var r *intern.Inferences
	sibs := val.Name.Values()
	for i := 0; i < sibs.Len(); i++ {
		sib := sibs.At(i)
		if sib == val || !vals.Contains(sib) {
			continue
		}
		base := infs
		if r != nil {
			base = r
		}
		r = ResolvedByValue(vals, base, sib)
	}
	if r == nil {
		return intern.NewInferences()
	}
	return r
}

// Minus returns the Inferences present in a but not in b.
func Minus(a, b *intern.Inferences) *intern.Inferences {
	r := intern.NewInferences()
	for i := 0; i < a.Len(); i++ {
		if inf := a.At(i); !b.Contains(inf) {
			r.Add(inf)
		}
	}
	return r
}

// Strip returns the subset of a that b does not already settle: an
// Inference is dropped if b concludes the same Value, or if any of
// the Inference's conditions shares a Name with one of b's
// conclusions but holds a different Value (b has gone the other way).
func Strip(a, b *intern.Inferences) *intern.Inferences {
	r := intern.NewInferences()

outer:
	for i := 0; i < a.Len(); i++ {
		inf := a.At(i)
		if _, found := b.IndexByConclusion(inf.Conclusion); found {
			continue
		}
		conds := inf.Conditions
		for c := 0; c < conds.Len(); c++ {
			cv := conds.At(c)
			for j := 0; j < b.Len(); j++ {
				bc := b.At(j).Conclusion
				if bc != cv && bc.Name == cv.Name {
					continue outer
				}
			}
		}
		r.Add(inf)
	}
	return r
}

// ValuesUnderOtherNames returns the subset of vals whose Name differs
// from val's and which still appears as a condition somewhere in
// infs — the pool of Values still worth branching on along val's
// "holds" edge.
func ValuesUnderOtherNames(vals *intern.Values, val *intern.Value, infs *intern.Inferences) *intern.Values {
	r := intern.NewValues()
	for i := 0; i < vals.Len(); i++ {
		v := vals.At(i)
		if v.Name == val.Name {
			continue
		}
		if usedAsCondition(infs, v) {
			r.Add(v)
		}
	}
	return r
}

// ValuesExcluding returns the subset of vals other than val itself
// that still appears as a condition somewhere in infs. If exactly one
// remaining Value shares val's Name, that Name has been fully decided
// by elimination, so its Values are dropped too (same narrowing
// ValuesUnderOtherNames would have produced).
func ValuesExcluding(vals *intern.Values, val *intern.Value, infs *intern.Inferences) *intern.Values {
	var kept []*intern.Value
	sameName := 0
	for i := 0; i < vals.Len(); i++ {
		v := vals.At(i)
		if v == val || !usedAsCondition(infs, v) {
			continue
		}
		kept = append(kept, v)
		if v.Name == val.Name {
			sameName++
		}
	}
	r := intern.NewValues()
	for _, v := range kept {
		if sameName == 1 && v.Name == val.Name {
			continue
		}
		r.Add(v)
	}
	return r
}
