package prettyprinter

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/numlang/internal/symbols"
)

// WriteDump writes the end-of-run listing of the symbol table: integers
// first, then doubles, each in declaration order.
//
//	Integers stored:
//	[a = 1], [b = 2]
//	Doubles stored:
//	[d = 2.0]
func WriteDump(w io.Writer, st *symbols.SymbolTable) error {
	_, err := fmt.Fprintf(w, "Integers stored:\n%s\nDoubles stored:\n%s\n",
		FormatEntries(st.ByKind(symbols.Integer)),
		FormatEntries(st.ByKind(symbols.Float)))
	return err
}

// FormatEntries renders symbols as "[name = value], [name = value]".
func FormatEntries(syms []symbols.Symbol) string {
	parts := make([]string, 0, len(syms))
	for _, sym := range syms {
		parts = append(parts, "["+sym.Name+" = "+sym.Value.String()+"]")
	}
	return strings.Join(parts, ", ")
}
