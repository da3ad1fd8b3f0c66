package intern

// Registry bundles the four global interning tables a Loader fills in:
// Symbols, Names, Values and Inferences. It is an explicit compilation
// context passed by reference into every operation, rather than
// process-wide global state, so two compiler runs (e.g. two tests in
// the same process) stay fully independent.
type Registry struct {
	Symbols    *Symbols
	Names      *Names
	Values     *Values
	Inferences *Inferences
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		Symbols:    NewSymbols(),
		Names:      NewNames(),
		Values:     NewValues(),
		Inferences: NewInferences(),
	}
}

// InternSymbol interns raw bytes as a Symbol.
func (r *Registry) InternSymbol(raw []byte) *Symbol {
	return r.Symbols.Add(NewSymbol(raw))
}

// InternName interns sym as a Name, creating its Values table on first use.
func (r *Registry) InternName(sym *Symbol) *Name {
	return r.Names.Add(newName(sym))
}

// InternValue interns (nam, sym) as a Value, registering it both
// globally and under nam's own Values table.
func (r *Registry) InternValue(nam *Name, sym *Symbol) *Value {
	val := r.Values.Add(newValue(nam, sym))
	nam.values.Add(val)
	return val
}

// InternInference interns inf globally. The caller is responsible for
// having fully populated inf.Conditions beforehand; comparison (and
// therefore deduplication) depends on it.
func (r *Registry) InternInference(inf *Inference) *Inference {
	return r.Inferences.Add(inf)
}
