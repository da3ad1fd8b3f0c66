package analysis

import "github.com/decisiontable/dtc/intern"

// reachableInferences computes the smallest set of Inferences
// containing every Inference whose conditions reference start, closed
// under: whenever an Inference with conclusion c is included, every
// Inference referencing c in its own conditions is also included. The
// traversal is an explicit worklist over Values rather than recursion,
// so it terminates even if condition/conclusion chains cycle back on
// themselves.
func reachableInferences(all *intern.Inferences, start *intern.Value) *intern.Inferences {
	result := intern.NewInferences()
	seen := map[*intern.Value]bool{start: true}
	frontier := []*intern.Value{start}

	for len(frontier) > 0 {
		var next []*intern.Value
		for _, v := range frontier {
			for i := 0; i < all.Len(); i++ {
				inf := all.At(i)
				if !inf.Conditions.Contains(v) {
					continue
				}
				if result.Contains(inf) {
					continue
				}
				result.Add(inf)
				if c := inf.Conclusion; !seen[c] {
					seen[c] = true
					next = append(next, c)
				}
			}
		}
		frontier = next
	}
	return result
}
