package analysis

import "github.com/decisiontable/dtc/intern"

// Compute identifies reg's independent Values (those never the
// conclusion of any Inference), populates each one's reachable
// Inferences set (see reachableInferences), and returns the
// independent set sorted the same way every other Values sequence is.
//
// It fails with ErrNoIndependentValues if the table has none, and with
// ErrDependentIndependent if some Name mixes independent and dependent
// Values — a Name must be entirely one or the other, since the tree
// builder tests a Name by branching on all of its Values at once.
func Compute(reg *intern.Registry) (*intern.Values, error) {
	independent := intern.NewValues()

	names := reg.Names
	for i := 0; i < names.Len(); i++ {
		nam := names.At(i)
		vals := nam.Values()
		for j := 0; j < vals.Len(); j++ {
			val := vals.At(j)
			if _, found := reg.Inferences.IndexByConclusion(val); !found {
				independent.Add(val)
			}
		}
	}

	if independent.Len() == 0 {
		return nil, ErrNoIndependentValues.New()
	}

	for i := 0; i < independent.Len(); i++ {
		val := independent.At(i)
		if err := val.SetInferences(reachableInferences(reg.Inferences, val)); err != nil {
			return nil, err
		}
	}

	for i := 0; i < independent.Len(); i++ {
		nam := independent.At(i).Name
		vals := nam.Values()
		for j := 0; j < vals.Len(); j++ {
			sib := vals.At(j)
			if sib.Inferences() == nil {
				return nil, ErrDependentIndependent.New(nam.Symbol.String(), sib.Symbol.String())
			}
		}
	}

	return independent, nil
}
