package analysis

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrNoIndependentValues is given when no Value in the table is
	// ever free of being a conclusion — there is nothing for a caller
	// to supply at evaluation time.
	ErrNoIndependentValues = errors.NewKind("no independent values")
	// ErrDependentIndependent is given when a Name has both
	// independent and dependent Values — independence is a per-Name
	// property, not a per-Value one.
	ErrDependentIndependent = errors.NewKind("independent name %q has dependent value %q")
)
