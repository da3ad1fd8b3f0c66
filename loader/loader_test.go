package loader_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decisiontable/dtc/cellsrc"
	"github.com/decisiontable/dtc/intern"
	"github.com/decisiontable/dtc/loader"
)

func loadAll(t *testing.T, ld *loader.Loader, file, content string) error {
	t.Helper()
	r := cellsrc.NewReader(strings.NewReader(content))
	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			return nil
		}
		require.NoError(t, err)
		if err := ld.LoadRow(file, row); err != nil {
			return err
		}
	}
}

func TestLoadSingleIndependent(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	require.NoError(t, loadAll(t, ld, "t.csv", "@A,B\nx,1\ny,2\n"))
	require.NoError(t, ld.Finish())

	assert.Equal(t, 2, reg.Names.Len())
	assert.Equal(t, 2, reg.Inferences.Len())
}

func TestCommentRowsAreSkipped(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	require.NoError(t, loadAll(t, ld, "t.csv", "# note\n@A,B\nx,1\n# another\ny,2\n"))
	assert.Equal(t, 2, reg.Inferences.Len())
}

func TestDuplicateHeaderNameRejected(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	err := loadAll(t, ld, "t.csv", "@A,A\nx,1\n")
	require.Error(t, err)
	assert.True(t, loader.ErrDuplicateHeaderName.Is(err))
}

func TestEmptyHeaderNameRejected(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	err := loadAll(t, ld, "t.csv", "@A,\nx,1\n")
	require.Error(t, err)
	assert.True(t, loader.ErrEmptyHeaderName.Is(err))
}

func TestExcessCellsRejected(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	err := loadAll(t, ld, "t.csv", "@A,B\nx,1,extra\n")
	require.Error(t, err)
	assert.True(t, loader.ErrExcessCells.Is(err))
}

func TestEmptyConclusionRejected(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	err := loadAll(t, ld, "t.csv", "@A,B\n,1\n")
	require.Error(t, err)
	assert.True(t, loader.ErrEmptyConclusionCell.Is(err))
}

func TestEmptyConditionCellIsIgnored(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	require.NoError(t, loadAll(t, ld, "t.csv", "@A,B,C\nx,1,\n"))
	require.Equal(t, 1, reg.Inferences.Len())
	assert.Equal(t, 1, reg.Inferences.At(0).Conditions.Len())
}

func TestDuplicateInferenceAcrossFiles(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	require.NoError(t, loadAll(t, ld, "file1.csv", "@A,B\nx,1\n"))
	err := loadAll(t, ld, "file2.csv", "@A,B\nx,1\n")
	require.Error(t, err)
	assert.True(t, loader.ErrDuplicateInference.Is(err))
}

func TestFinishRejectsTooFewValues(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	require.NoError(t, loadAll(t, ld, "t.csv", "@A,B\nx,1\n"))
	err := ld.Finish()
	require.Error(t, err)
	assert.True(t, loader.ErrTooFewValues.Is(err))
}

func TestFinishAcceptsWellFormedTable(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	require.NoError(t, loadAll(t, ld, "t.csv", "@A,B\nx,1\ny,2\n"))
	assert.NoError(t, ld.Finish())
}

func TestDataRowBeforeHeaderRejected(t *testing.T) {
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	err := loadAll(t, ld, "t.csv", "x,1\n")
	require.Error(t, err)
	assert.True(t, loader.ErrNoHeaderSeen.Is(err))
}
