// Package emit checks a synthesized tree for soundness and writes it
// out as a line-oriented pseudocode listing: a D header, one I line
// per independent Value, one O line per distinct conclusion, then the
// tree body as T/R/L/J opcodes with tail-sharing across identical
// branch continuations.
package emit
