package emit

import "gopkg.in/src-d/go-errors.v1"

// ErrUnresolvable is given when a leaf (or a branch's settled
// Inferences) concludes two different Values under the same Name —
// the source table contradicts itself for some combination of
// independent Values.
var ErrUnresolvable = errors.NewKind("unresolvable %q: %q @%s:%d vs %q @%s:%d")
