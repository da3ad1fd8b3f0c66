// Package intern holds the deduplicated object graph a decision table
// compiles into: Symbols, Names, Values and Inferences.
//
// Every category is stored as a sorted sequence ordered by a total
// comparison over its elements; the single mutating operation on any
// sequence is Add, which returns the canonical (already-interned)
// element when an equal one exists and otherwise inserts item in sorted
// position. Two logically equal instances of any category are therefore
// always pointer-identical after going through Add — callers that built
// a throwaway instance to test membership must discard it in favor of
// the returned canonical one.
//
// A Registry bundles the four top-level tables (Symbols, Names, Values,
// Inferences) that a Loader fills in. Names own their own Values
// sub-sequence; Inferences own their own Conditions sub-sequence. Both
// are plain sorted sequences of the same shape as the top-level tables,
// just scoped to one parent.
package intern
