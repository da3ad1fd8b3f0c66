package loader

import "gopkg.in/src-d/go-errors.v1"

// Error kinds for every diagnosable condition the loader can run into.
// Each is instantiated with New(args...) or wraps an underlying cause
// with Wrap(err); both support Is(err) for tests and callers to
// branch on kind without string matching.
var (
	// ErrEmptyHeaderName is given for an empty cell in a header row.
	ErrEmptyHeaderName = errors.NewKind("empty @name at %s:%d:%d")
	// ErrDuplicateHeaderName is given for a Name repeated within one header row.
	ErrDuplicateHeaderName = errors.NewKind("duplicate name %q in header row at %s:%d:%d")
	// ErrEmptyConclusionCell is given for an empty cell at column 0 of a data row.
	ErrEmptyConclusionCell = errors.NewKind("empty conclusion value at %s:%d:%d")
	// ErrExcessCells is given when a data row has more cells than the active header.
	ErrExcessCells = errors.NewKind("excess cell %q at %s:%d:%d")
	// ErrDuplicateInference is given when two rows at different source
	// coordinates produce an equal (conclusion, conditions) Inference.
	ErrDuplicateInference = errors.NewKind("duplicate inference @%s:%d @%s:%d")
	// ErrConditionConflict wraps intern.ErrConditionNameConflict with
	// source coordinates when a row assigns two different Values under
	// one condition Name.
	ErrConditionConflict = errors.NewKind("duplicate val at %s:%d:%d")
	// ErrNoHeaderSeen is given for a data row before any header row has
	// established the column-to-Name mapping.
	ErrNoHeaderSeen = errors.NewKind("data row before any @header at %s:%d")
	// ErrTooFewValues is given, at Finish, for a Name with fewer than
	// two distinct Values — it can never be meaningfully tested.
	ErrTooFewValues = errors.NewKind("name %q has fewer than two distinct values")
	// ErrEmptyConditions is given, at Finish, for an Inference whose
	// condition set is empty.
	ErrEmptyConditions = errors.NewKind("inference at %s:%d has no conditions")
)
