package evaluator

import (
	"errors"
	"testing"

	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/symbols"
)

func TestTableError(t *testing.T) {
	st := symbols.NewSymbolTable()
	_ = st.Declare("x", symbols.IntValue(1), 1)

	tests := []struct {
		err  error
		name string
		code diagnostics.ErrorCode
		msg  string
	}{
		{st.Update("y", symbols.IntValue(1)), "y", diagnostics.ErrU001, "variable not declared: y"},
		{st.Update("x", symbols.FloatValue(1)), "x", diagnostics.ErrT001, "type mismatch: cannot assign double value to int variable x"},
		{st.Declare("x", symbols.FloatValue(1), 2), "x", diagnostics.ErrT001, "type mismatch: x is already declared as int (line 1), cannot redeclare as double"},
	}
	for _, tt := range tests {
		d := tableError(tt.err, &ast.Identifier{Value: tt.name})
		if d.Code != tt.code {
			t.Errorf("code = %s, want %s", d.Code, tt.code)
		}
		if d.Message != tt.msg {
			t.Errorf("message = %q, want %q", d.Message, tt.msg)
		}
	}
}

func TestTableErrorUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an error the symbol table never returns")
		}
	}()
	tableError(errors.New("disk full"), &ast.Identifier{Value: "x"})
}
