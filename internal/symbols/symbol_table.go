// Package symbols holds the run's variables.
//
// A SymbolTable maps each name to a single tagged Value, so a name always
// has exactly one kind. Insertion order is kept for the final dump.
package symbols

import (
	"fmt"
)

type Symbol struct {
	Name       string
	Value      Value
	DeclaredAt int // source line of the first declaration
}

type SymbolTable struct {
	store map[string]*Symbol
	order []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{store: make(map[string]*Symbol)}
}

// Declare binds name to v. Re-declaring a name with the same kind
// overwrites its value and keeps its position; re-declaring it with the
// other kind fails with ErrKindMismatch and leaves the table unchanged.
func (st *SymbolTable) Declare(name string, v Value, line int) error {
	if sym, ok := st.store[name]; ok {
		if sym.Value.Kind != v.Kind {
			return fmt.Errorf("%w: %s is already declared as %s (line %d), cannot redeclare as %s",
				ErrKindMismatch, name, sym.Value.Kind, sym.DeclaredAt, v.Kind)
		}
		sym.Value = v
		return nil
	}
	st.store[name] = &Symbol{Name: name, Value: v, DeclaredAt: line}
	st.order = append(st.order, name)
	return nil
}

// Find returns the current value of name.
func (st *SymbolTable) Find(name string) (Value, bool) {
	sym, ok := st.store[name]
	if !ok {
		return Value{}, false
	}
	return sym.Value, true
}

// Update stores v into an existing variable of the same kind.
func (st *SymbolTable) Update(name string, v Value) error {
	sym, ok := st.store[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndeclared, name)
	}
	if sym.Value.Kind != v.Kind {
		return fmt.Errorf("%w: cannot assign %s value to %s variable %s",
			ErrKindMismatch, v.Kind, sym.Value.Kind, name)
	}
	sym.Value = v
	return nil
}

func (st *SymbolTable) Len() int {
	return len(st.order)
}

// Symbols returns copies of all symbols in insertion order.
func (st *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(st.order))
	for _, name := range st.order {
		out = append(out, *st.store[name])
	}
	return out
}

// ByKind returns copies of the symbols of kind k in insertion order.
func (st *SymbolTable) ByKind(k Kind) []Symbol {
	var out []Symbol
	for _, name := range st.order {
		if sym := st.store[name]; sym.Value.Kind == k {
			out = append(out, *sym)
		}
	}
	return out
}
