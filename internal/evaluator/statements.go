package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/symbols"
)

// tableError maps a symbol table failure on name to its diagnostic.
// Declare and Update only fail with ErrUndeclared or ErrKindMismatch.
func tableError(err error, name *ast.Identifier) *diagnostics.DiagnosticError {
	switch {
	case errors.Is(err, symbols.ErrUndeclared):
		return diagnostics.NewError(diagnostics.ErrU001, name.Token, name.Value)
	case errors.Is(err, symbols.ErrKindMismatch):
		detail := strings.TrimPrefix(err.Error(), symbols.ErrKindMismatch.Error()+": ")
		return diagnostics.NewError(diagnostics.ErrT001, name.Token, detail)
	}
	panic(fmt.Sprintf("unexpected symbol table error for %s: %v", name.Value, err))
}

func (e *Evaluator) evalDeclaration(node *ast.DeclarationStatement) *diagnostics.DiagnosticError {
	kind, ok := symbols.KindOf(node.Type)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrS001, node.Token, node.Type)
	}

	value := symbols.Zero(kind)
	if node.Value != nil {
		v, err := symbols.ParseLiteral(kind, node.Value.Text)
		if err != nil {
			return diagnostics.NewError(diagnostics.ErrN001, node.Value.Token, kind, node.Value.Text)
		}
		value = v
	}

	if err := e.Table.Declare(node.Name.Value, value, node.Token.Line); err != nil {
		return tableError(err, node.Name)
	}
	return nil
}

func (e *Evaluator) evalAssignment(node *ast.AssignmentStatement) *diagnostics.DiagnosticError {
	name := node.Name.Value
	current, ok := e.Table.Find(name)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrU001, node.Name.Token, name)
	}

	var value symbols.Value
	switch rhs := node.Value.(type) {
	case *ast.Identifier:
		src, ok := e.Table.Find(rhs.Value)
		if !ok {
			return diagnostics.NewError(diagnostics.ErrU001, rhs.Token, rhs.Value)
		}
		if src.Kind != current.Kind {
			return diagnostics.NewError(diagnostics.ErrT001, rhs.Token,
				fmt.Sprintf("cannot assign %s variable %s to %s variable %s", src.Kind, rhs.Value, current.Kind, name))
		}
		value = src
	case *ast.NumberLiteral:
		v, err := symbols.ParseLiteral(current.Kind, rhs.Text)
		if err != nil {
			return diagnostics.NewError(diagnostics.ErrN001, rhs.Token, current.Kind, rhs.Text)
		}
		value = v
	default:
		return diagnostics.NewError(diagnostics.ErrS002, node.Token, node.TokenLiteral())
	}

	if err := e.Table.Update(name, value); err != nil {
		return tableError(err, node.Name)
	}
	return nil
}

func (e *Evaluator) evalPrint(node *ast.PrintStatement) ([]string, *diagnostics.DiagnosticError) {
	res, derr := e.Evaluate(node.Expression)
	if derr != nil {
		return nil, derr
	}
	s, err := res.Format()
	if err != nil {
		return nil, diagnostics.NewError(diagnostics.ErrM001, node.Token, err.Error())
	}
	return []string{"Result: " + s, ""}, nil
}
