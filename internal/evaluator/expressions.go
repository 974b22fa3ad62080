package evaluator

import (
	"fmt"
	"strconv"

	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/symbols"
)

// Evaluate computes expr. Identifiers are resolved against the table at
// the time of the call.
func (e *Evaluator) Evaluate(expr ast.Expression) (Result, *diagnostics.DiagnosticError) {
	isInteger := true
	v, err := e.eval(expr, &isInteger)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, IsInteger: isInteger}, nil
}

func (e *Evaluator) eval(node ast.Expression, isInteger *bool) (float64, *diagnostics.DiagnosticError) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return e.evalNumberLiteral(n, isInteger)
	case *ast.Identifier:
		return e.evalIdentifier(n, isInteger)
	case *ast.PrefixExpression:
		right, err := e.eval(n.Right, isInteger)
		if err != nil {
			return 0, err
		}
		if n.Operator == "-" {
			return -right, nil
		}
		return right, nil
	case *ast.InfixExpression:
		left, err := e.eval(n.Left, isInteger)
		if err != nil {
			return 0, err
		}
		right, err := e.eval(n.Right, isInteger)
		if err != nil {
			return 0, err
		}
		return evalInfix(n.Operator, left, right), nil
	}
	return 0, diagnostics.NewError(diagnostics.ErrS004, node.GetToken(), node.TokenLiteral(),
		fmt.Sprintf("unsupported node %T", node))
}

// evalInfix never fails: division is always floating point, so x/0 yields
// an infinity or NaN that Result.Format rejects for integer results.
func evalInfix(op string, left, right float64) float64 {
	switch op {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	default:
		return left / right
	}
}

func (e *Evaluator) evalNumberLiteral(n *ast.NumberLiteral, isInteger *bool) (float64, *diagnostics.DiagnosticError) {
	if n.IsFractional() {
		*isInteger = false
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return 0, diagnostics.NewError(diagnostics.ErrN001, n.Token, symbols.Float, n.Text)
		}
		return f, nil
	}
	i, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return 0, diagnostics.NewError(diagnostics.ErrN001, n.Token, symbols.Integer, n.Text)
	}
	return float64(i), nil
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier, isInteger *bool) (float64, *diagnostics.DiagnosticError) {
	v, ok := e.Table.Find(n.Value)
	if !ok {
		return 0, diagnostics.NewError(diagnostics.ErrU001, n.Token, n.Value)
	}
	if v.Kind == symbols.Float {
		*isInteger = false
	}
	return v.AsFloat(), nil
}
