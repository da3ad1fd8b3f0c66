package intern

import "strings"

// Symbol is an immutable interned byte string. Two Symbols that hold
// the same bytes are always the same *Symbol after being added to a
// Symbols table (see Symbols.Add).
type Symbol struct {
	raw string
}

// NewSymbol constructs a candidate Symbol from raw bytes. The result is
// not interned until passed to Symbols.Add; an empty Symbol is valid to
// construct but the loader never interns one — empty cells are either
// ignored or rejected before a Symbol would be created for them.
func NewSymbol(raw []byte) *Symbol {
	return &Symbol{raw: string(raw)}
}

// Bytes returns the Symbol's raw content.
func (s *Symbol) Bytes() []byte { return []byte(s.raw) }

// String returns the Symbol's raw content as a string.
func (s *Symbol) String() string { return s.raw }

// cmpSymbol orders Symbols lexicographically with length as the final
// tiebreak; Go's string comparison already has this property (a
// shorter string that is a prefix of a longer one sorts first).
func cmpSymbol(a, b *Symbol) int {
	return strings.Compare(a.raw, b.raw)
}

// Symbols is the global sorted table of interned Symbols.
type Symbols struct {
	set orderedSlice[*Symbol]
}

// NewSymbols constructs an empty Symbols table.
func NewSymbols() *Symbols {
	return &Symbols{set: newOrderedSlice(cmpSymbol)}
}

// Add interns sym, returning the canonical Symbol (sym itself if this
// is the first occurrence of its bytes, otherwise the existing one).
func (t *Symbols) Add(sym *Symbol) *Symbol { return t.set.add(sym) }

// Len returns the number of distinct interned Symbols.
func (t *Symbols) Len() int { return t.set.len() }

// At returns the i'th Symbol in sorted order.
func (t *Symbols) At(i int) *Symbol { return t.set.at(i) }
