package loader

import (
	"github.com/decisiontable/dtc/cellsrc"
	"github.com/decisiontable/dtc/intern"
)

// Loader consumes rows from one or more CSV files in sequence, filling
// in a shared Registry. The column-to-Name mapping is reset by every
// header row and carries forward to subsequent data rows until the
// next header row.
type Loader struct {
	reg     *intern.Registry
	columns []*intern.Name
}

// New constructs a Loader writing into reg.
func New(reg *intern.Registry) *Loader {
	return &Loader{reg: reg}
}

// Registry returns the Loader's backing Registry.
func (l *Loader) Registry() *intern.Registry { return l.reg }

// LoadRow dispatches one decoded CSV row by the leading byte of its
// first cell: '#' starts a comment row, '@' starts a header row, and
// anything else is a data row. file is used only for diagnostics.
func (l *Loader) LoadRow(file string, row cellsrc.Row) error {
	if len(row.Cells) == 0 {
		return nil
	}
	first := row.Cells[0]
	switch {
	case len(first) > 0 && first[0] == '#':
		return nil // comment row
	case len(first) > 0 && first[0] == '@':
		return l.loadHeader(file, row)
	default:
		return l.loadData(file, row)
	}
}

func (l *Loader) loadHeader(file string, row cellsrc.Row) error {
	names := make([]*intern.Name, 0, len(row.Cells))
	for col, raw := range row.Cells {
		cell := raw
		if col == 0 {
			cell = raw[1:] // strip the leading '@'
		}
		if len(cell) == 0 {
			return ErrEmptyHeaderName.New(file, row.Index, col)
		}
		nam := l.reg.InternName(l.reg.InternSymbol(cell))
		for _, existing := range names {
			if existing == nam {
				return ErrDuplicateHeaderName.New(string(cell), file, row.Index, col)
			}
		}
		names = append(names, nam)
	}
	l.columns = names
	return nil
}

func (l *Loader) loadData(file string, row cellsrc.Row) error {
	if l.columns == nil {
		return ErrNoHeaderSeen.New(file, row.Index)
	}
	if len(row.Cells) > len(l.columns) {
		return ErrExcessCells.New(string(row.Cells[len(l.columns)]), file, row.Index, len(l.columns))
	}

	var inf *intern.Inference
	for col, raw := range row.Cells {
		if len(raw) == 0 {
			if col == 0 {
				return ErrEmptyConclusionCell.New(file, row.Index, col)
			}
			continue // ignored
		}

		nam := l.columns[col]
		val := l.reg.InternValue(nam, l.reg.InternSymbol(raw))

		if col == 0 {
			inf = intern.NewInference(val, file, row.Index)
			continue
		}
		if err := inf.AddCondition(val); err != nil {
			return ErrConditionConflict.Wrap(err, file, row.Index, col)
		}
	}
	if inf == nil {
		return nil
	}

	canonical := l.reg.InternInference(inf)
	if canonical != inf {
		return ErrDuplicateInference.New(canonical.File, canonical.Row, file, row.Index)
	}
	return nil
}

// Finish runs the global post-load validations that can only be
// checked once every file has been read: every Name must have at
// least two distinct Values, and every Inference must have at least
// one condition.
func (l *Loader) Finish() error {
	names := l.reg.Names
	for i := 0; i < names.Len(); i++ {
		nam := names.At(i)
		if nam.Values().Len() < 2 {
			return ErrTooFewValues.New(nam.Symbol.String())
		}
	}
	infs := l.reg.Inferences
	for i := 0; i < infs.Len(); i++ {
		inf := infs.At(i)
		if inf.Conditions.Len() == 0 {
			return ErrEmptyConditions.New(inf.File, inf.Row)
		}
	}
	return nil
}
