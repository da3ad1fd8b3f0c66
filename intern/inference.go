package intern

import "errors"

// ErrConditionNameConflict is returned by Inference.AddCondition when a
// second, different Value under a Name already present in the
// Inference's conditions is added (two values for one condition Name
// in the same row).
var ErrConditionNameConflict = errors.New("intern: condition name conflict")

// Inference is one row of the decision table: a conclusion Value that
// holds whenever every Value in Conditions holds. Conditions is
// non-empty once loading finishes (see loader.Loader.Finish); it may be
// empty transiently while a row is still being read.
type Inference struct {
	Conclusion *Value
	Conditions *Values
	File       string
	Row        int
}

// NewInference starts a new Inference with the given conclusion and
// source coordinates; conditions are added one at a time via
// AddCondition as the row's remaining cells are read.
func NewInference(conclusion *Value, file string, row int) *Inference {
	return &Inference{Conclusion: conclusion, Conditions: newValues(), File: file, Row: row}
}

// AddCondition adds val to the Inference's condition set. Re-adding an
// already-present Value is a silent no-op. Adding a different Value
// under a Name that already has a condition Value is rejected with
// ErrConditionNameConflict.
func (inf *Inference) AddCondition(val *Value) error {
	for i := 0; i < inf.Conditions.Len(); i++ {
		existing := inf.Conditions.At(i)
		if existing == val {
			return nil
		}
		if existing.Name == val.Name {
			return ErrConditionNameConflict
		}
	}
	inf.Conditions.Add(val)
	return nil
}

func cmpInference(a, b *Inference) int {
	if c := cmpValue(a.Conclusion, b.Conclusion); c != 0 {
		return c
	}
	return cmpValues(a.Conditions, b.Conditions)
}

// Inferences is a sorted sequence of distinct Inferences, used as the
// global table and as every frontier/result set passed between
// resolution-algebra operations and the tree builder.
type Inferences struct {
	set orderedSlice[*Inference]
}

func newInferences() *Inferences {
	return &Inferences{set: newOrderedSlice(cmpInference)}
}

// NewInferences constructs an empty Inferences sequence.
func NewInferences() *Inferences { return newInferences() }

// Add inserts inf in sorted position, returning the canonical Inference.
func (is *Inferences) Add(inf *Inference) *Inference { return is.set.add(inf) }

// Contains reports whether an Inference equal to inf is present.
func (is *Inferences) Contains(inf *Inference) bool { return is.set.contains(inf) }

// Len returns the number of Inferences in the sequence.
func (is *Inferences) Len() int { return is.set.len() }

// At returns the i'th Inference in sorted order.
func (is *Inferences) At(i int) *Inference { return is.set.at(i) }

// Slice returns the sequence's backing slice; callers must not mutate it.
func (is *Inferences) Slice() []*Inference { return is.set.slice() }

// IndexByConclusion returns the index of the first Inference whose
// Conclusion equals val, and true, or (-1, false) if none matches. Used
// by independence analysis: a Value is independent iff this misses.
func (is *Inferences) IndexByConclusion(val *Value) (int, bool) {
	lo, hi := 0, is.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := cmpValue(val, is.At(mid).Conclusion)
		switch {
		case c == 0:
			// Conclusion values are not necessarily unique (several
			// Inferences may share a conclusion); walk left to the
			// first match so callers see every one.
			for mid > 0 && is.At(mid-1).Conclusion == val {
				mid--
			}
			return mid, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return -1, false
}
