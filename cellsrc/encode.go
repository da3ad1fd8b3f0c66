package cellsrc

import (
	"bytes"
	"encoding/csv"
)

// EncodeValue re-encodes raw bytes as a single CSV cell, escaping
// commas, quotes and newlines so a Symbol's text round-trips safely
// through both the input table and the emitted listing.
func EncodeValue(raw []byte) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{string(raw)})
	w.Flush()
	return bytes.TrimRight(buf.Bytes(), "\r\n")
}
