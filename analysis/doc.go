// Package analysis computes the independence structure a decision
// table needs before tree synthesis can start: which Values are
// independent (never a conclusion), and for each one, the full set of
// Inferences transitively reachable from it.
//
// The closure itself is an iterative breadth-first traversal over an
// implicit graph whose nodes are Values and whose edges run from every
// Inference mentioning a Value in its conditions to that Inference's
// conclusion Value — the same queue-and-visited-set shape used
// elsewhere in this codebase's graph traversals, retargeted from graph
// vertices onto decision-table Values so the closure never recurses
// and so cyclic condition/conclusion chains cannot cause unbounded
// recursion.
package analysis
