// Package cellsrc is the CSV cell tokenizer: it turns a byte-clean,
// quote-wrapped CSV file into rows of already-decoded cells, and
// re-encodes Symbols back into CSV cell text for the emitter. This
// package exists only as the thin adapter between the standard
// library's encoding/csv and package loader's row-oriented Cell
// events.
package cellsrc
