package asm

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SymbolKind is the kind of a Symbol.
type SymbolKind int

const (
	SYMBOL_LABEL = SymbolKind(0) // Jump target.
)

// Symbol is a named byte offset in the assembled program.
type Symbol struct {
	Name   string
	Offset uint32
	Kind   SymbolKind
	LineNo int // Line of the declaration.
}

// SymbolTable maps symbol names to their symbols.
type SymbolTable struct {
	symbol map[string]Symbol
}

// Insert adds a symbol. A name can be declared only once.
func (st *SymbolTable) Insert(sym Symbol) (err error) {
	if _, ok := st.symbol[sym.Name]; ok {
		err = ErrLabelDuplicate
		return
	}

	if st.symbol == nil {
		st.symbol = make(map[string]Symbol, 16)
	}
	st.symbol[sym.Name] = sym

	return
}

// Lookup finds a symbol by its exact name.
func (st *SymbolTable) Lookup(name string) (sym Symbol, ok bool) {
	if st == nil {
		return
	}
	sym, ok = st.symbol[name]
	return
}

// Offset returns the offset of a symbol.
func (st *SymbolTable) Offset(name string) (offset uint32, ok bool) {
	sym, ok := st.Lookup(name)
	offset = sym.Offset
	return
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbol)
}

// All iterates over the symbols ordered by offset, then name.
func (st *SymbolTable) All() iter.Seq[Symbol] {
	syms := slices.SortedFunc(maps.Values(st.symbol), func(a, b Symbol) int {
		return cmp.Or(cmp.Compare(a.Offset, b.Offset), cmp.Compare(a.Name, b.Name))
	})
	return slices.Values(syms)
}
