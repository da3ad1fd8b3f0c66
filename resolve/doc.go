// Package resolve implements the resolution algebra the tree builder
// uses to decide, for a candidate branching Value, which Inferences
// become settled on each branch and which remaining Values are still
// worth asking about.
//
// Every operation here is a set computation over the Values and
// Inferences already interned by package intern; all but TransitiveAdd
// (which extends the set it is given in place) return a fresh result
// set. None of them can fail, so none return an error.
package resolve
