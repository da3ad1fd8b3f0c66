package intern

// Name wraps a Symbol and owns the set of distinct Values ever observed
// for it. Comparison between Names is by their Symbol alone.
type Name struct {
	Symbol *Symbol
	values *Values
}

// newName constructs a candidate Name. Not interned until passed to
// Names.Add.
func newName(sym *Symbol) *Name {
	return &Name{Symbol: sym, values: newValues()}
}

// Values returns the sorted set of distinct Values observed for this Name.
func (n *Name) Values() *Values { return n.values }

func cmpName(a, b *Name) int { return cmpSymbol(a.Symbol, b.Symbol) }

// Names is the global sorted table of interned Names.
type Names struct {
	set orderedSlice[*Name]
}

// NewNames constructs an empty Names table.
func NewNames() *Names {
	return &Names{set: newOrderedSlice(cmpName)}
}

// Add interns nam by Symbol, returning the canonical Name.
func (t *Names) Add(nam *Name) *Name { return t.set.add(nam) }

// Len returns the number of distinct interned Names.
func (t *Names) Len() int { return t.set.len() }

// At returns the i'th Name in sorted order.
func (t *Names) At(i int) *Name { return t.set.at(i) }
