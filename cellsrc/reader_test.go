package cellsrc_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decisiontable/dtc/cellsrc"
)

func TestReadRowDecodesQuotedCommas(t *testing.T) {
	r := cellsrc.NewReader(strings.NewReader("@A,B\n\"x,y\",1\n"))

	header, err := r.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, 1, header.Index)
	assert.Equal(t, [][]byte{[]byte("@A"), []byte("B")}, header.Cells)

	data, err := r.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, 2, data.Index)
	assert.Equal(t, [][]byte{[]byte("x,y"), []byte("1")}, data.Cells)

	_, err = r.ReadRow()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEncodeValueEscapesCommasAndQuotes(t *testing.T) {
	assert.Equal(t, `"x,y"`, string(cellsrc.EncodeValue([]byte("x,y"))))
	assert.Equal(t, `plain`, string(cellsrc.EncodeValue([]byte("plain"))))
	assert.Equal(t, `"has ""quote"""`, string(cellsrc.EncodeValue([]byte(`has "quote"`))))
}
