package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decisiontable/dtc/analysis"
	"github.com/decisiontable/dtc/intern"
)

// buildInference interns a (nam, sym) conclusion with the given
// (nam, sym) conditions and registers it.
func buildInference(t *testing.T, reg *intern.Registry, concNam, concSym string, conds ...[2]string) *intern.Inference {
	val := reg.InternValue(reg.InternName(reg.InternSymbol([]byte(concNam))), reg.InternSymbol([]byte(concSym)))
	inf := intern.NewInference(val, "t.csv", 1)
	for _, cond := range conds {
		cv := reg.InternValue(reg.InternName(reg.InternSymbol([]byte(cond[0]))), reg.InternSymbol([]byte(cond[1])))
		require.NoError(t, inf.AddCondition(cv))
	}
	return reg.InternInference(inf)
}

func TestComputeSingleIndependent(t *testing.T) {
	reg := intern.NewRegistry()
	a := reg.InternName(reg.InternSymbol([]byte("A")))
	reg.InternValue(a, reg.InternSymbol([]byte("1")))
	reg.InternValue(a, reg.InternSymbol([]byte("2")))

	buildInference(t, reg, "B", "x", [2]string{"A", "1"})
	buildInference(t, reg, "B", "y", [2]string{"A", "2"})

	independent, err := analysis.Compute(reg)
	require.NoError(t, err)
	require.Equal(t, 2, independent.Len())
	assert.Equal(t, "1", independent.At(0).Symbol.String())
	assert.Equal(t, "2", independent.At(1).Symbol.String())

	a1 := independent.At(0)
	require.NotNil(t, a1.Inferences())
	assert.Equal(t, 1, a1.Inferences().Len())
}

func TestComputeTransitiveClosure(t *testing.T) {
	reg := intern.NewRegistry()
	buildInference(t, reg, "mid", "m", [2]string{"A", "1"})
	buildInference(t, reg, "out", "o", [2]string{"mid", "m"})

	independent, err := analysis.Compute(reg)
	require.NoError(t, err)
	require.Equal(t, 1, independent.Len())

	a1 := independent.At(0)
	require.NotNil(t, a1.Inferences())
	// both the direct inference (mid=m from A=1) and the chained one
	// (out=o from mid=m) must be reachable from A=1.
	assert.Equal(t, 2, a1.Inferences().Len())
}

func TestComputeNoIndependentValues(t *testing.T) {
	reg := intern.NewRegistry()
	// A and B conclude each other's values: nothing is ever free.
	buildInference(t, reg, "A", "x", [2]string{"B", "p"})
	buildInference(t, reg, "A", "y", [2]string{"B", "q"})
	buildInference(t, reg, "B", "p", [2]string{"A", "y"})
	buildInference(t, reg, "B", "q", [2]string{"A", "x"})

	_, err := analysis.Compute(reg)
	require.Error(t, err)
	assert.True(t, analysis.ErrNoIndependentValues.Is(err))
}

func TestComputeRejectsMixedIndependence(t *testing.T) {
	reg := intern.NewRegistry()
	// A has values x (dependent, concluded from B=m) and y (never concluded).
	buildInference(t, reg, "A", "x", [2]string{"B", "m"})
	a := reg.InternName(reg.InternSymbol([]byte("A")))
	reg.InternValue(a, reg.InternSymbol([]byte("y")))

	_, err := analysis.Compute(reg)
	require.Error(t, err)
	assert.True(t, analysis.ErrDependentIndependent.Is(err))
}
