// Package evaluator executes parsed statements against the run's symbol
// table.
//
// Print expressions are computed in float64. The result is reported as an
// integer only when every operand leaf is an integer literal or an int
// variable; a single double anywhere promotes the whole expression.
package evaluator

import (
	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/symbols"
)

type Evaluator struct {
	Table *symbols.SymbolTable
}

func New(table *symbols.SymbolTable) *Evaluator {
	return &Evaluator{Table: table}
}

// Execute runs one statement. It returns the output lines the statement
// produces; only print statements produce any. On error the symbol table
// is left as it was before the call.
func (e *Evaluator) Execute(stmt ast.Statement) ([]string, *diagnostics.DiagnosticError) {
	switch s := stmt.(type) {
	case *ast.DeclarationStatement:
		return nil, e.evalDeclaration(s)
	case *ast.AssignmentStatement:
		return nil, e.evalAssignment(s)
	case *ast.PrintStatement:
		return e.evalPrint(s)
	}
	return nil, nil
}
