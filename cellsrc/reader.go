package cellsrc

import (
	"encoding/csv"
	"io"
)

// Row is one decoded CSV record: Index is the 1-based row number within
// its source file, Cells holds the already quote/comma-decoded bytes of
// each cell in column order.
type Row struct {
	Index int
	Cells [][]byte
}

// Reader decodes rows from an underlying byte-clean CSV stream.
// Variable-length rows are expected (comment, header and data rows all
// have different shapes), so FieldsPerRecord is not enforced here —
// the loader is the layer that knows what counts as "excess cells".
type Reader struct {
	csv *csv.Reader
	row int
}

// NewReader wraps r as a Reader over comma-separated, quote-escaped
// CSV content.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = false
	return &Reader{csv: cr}
}

// ReadRow decodes the next row, or returns io.EOF once the stream is
// exhausted.
func (rd *Reader) ReadRow() (Row, error) {
	record, err := rd.csv.Read()
	if err != nil {
		return Row{}, err
	}
	rd.row++
	cells := make([][]byte, len(record))
	for i, field := range record {
		cells[i] = []byte(field)
	}
	return Row{Index: rd.row, Cells: cells}, nil
}
