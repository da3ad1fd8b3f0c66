package intern

import "errors"

// ErrInferencesAlreadySet is returned by Value.SetInferences when the
// independent-value Inferences set for a Value has already been
// populated. Independence analysis (package analysis) must populate it
// exactly once per run.
var ErrInferencesAlreadySet = errors.New("intern: value inferences already set")

// Value is a (Name, Symbol) pair — one entry in a decision table's
// universe of conditions and conclusions. Comparison is (Name, then
// Symbol). Independent Values (those never the conclusion of any
// Inference) additionally carry an Inferences set populated once by
// package analysis, listing every Inference transitively reachable
// from holding this Value true.
type Value struct {
	Name   *Name
	Symbol *Symbol
	infs   *Inferences
}

// newValue constructs a candidate Value. Not interned until passed to
// Values.Add.
func newValue(nam *Name, sym *Symbol) *Value {
	return &Value{Name: nam, Symbol: sym}
}

// Inferences returns the Value's reachable-inferences set, or nil if
// this Value is dependent (a conclusion of some Inference) or if
// independence analysis has not run yet.
func (v *Value) Inferences() *Inferences { return v.infs }

// SetInferences populates v's reachable-inferences set. It may only be
// called once per Value.
func (v *Value) SetInferences(infs *Inferences) error {
	if v.infs != nil {
		return ErrInferencesAlreadySet
	}
	v.infs = infs
	return nil
}

func cmpValue(a, b *Value) int {
	if c := cmpName(a.Name, b.Name); c != 0 {
		return c
	}
	return cmpSymbol(a.Symbol, b.Symbol)
}

// Values is a sorted sequence of distinct Values, used both as the
// global table and as the smaller per-Name and per-frontier sequences
// used throughout resolution and tree building.
type Values struct {
	set orderedSlice[*Value]
}

func newValues() *Values {
	return &Values{set: newOrderedSlice(cmpValue)}
}

// NewValues constructs an empty Values sequence.
func NewValues() *Values { return newValues() }

// Add inserts val in sorted position, returning the canonical Value
// (val itself, or the pre-existing equal one).
func (vs *Values) Add(val *Value) *Value { return vs.set.add(val) }

// Contains reports whether val (by Name+Symbol) is present.
func (vs *Values) Contains(val *Value) bool { return vs.set.contains(val) }

// Len returns the number of Values in the sequence.
func (vs *Values) Len() int { return vs.set.len() }

// At returns the i'th Value in sorted order.
func (vs *Values) At(i int) *Value { return vs.set.at(i) }

// Slice returns the sequence's backing slice; callers must not mutate it.
func (vs *Values) Slice() []*Value { return vs.set.slice() }

func cmpValues(a, b *Values) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if c := cmpValue(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	default:
		return 0
	}
}
