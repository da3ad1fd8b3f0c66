// Package loader turns a stream of CSV rows (package cellsrc) into the
// interned object graph in package intern, classifying each row by its
// first cell: comment rows (col 0 starts with '#'), header rows (col 0
// starts with '@', remaining cells name columns), and data rows (col 0
// is the conclusion, the rest are conditions).
package loader
