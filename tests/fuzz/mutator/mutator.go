package mutator

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/funvibe/numlang/internal/ast"
)

// ASTMutator applies random mutations to a parsed statement. Every
// mutation keeps the statement inside the grammar, so the mutated tree
// always prints back to source that parses.
type ASTMutator struct {
	rnd   *rand.Rand
	names []string
}

// NewASTMutator creates a new ASTMutator with the given seed. Identifiers
// are replaced by names drawn from names.
func NewASTMutator(seed int64, names ...string) *ASTMutator {
	if len(names) == 0 {
		names = []string{"x", "y", "z"}
	}
	return &ASTMutator{
		rnd:   rand.New(rand.NewSource(seed)),
		names: names,
	}
}

// Mutate applies a random mutation to the statement in place.
func (m *ASTMutator) Mutate(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.PrintStatement:
		if s == nil || s.Expression == nil {
			return
		}
		s.Expression = m.mutateExpression(s.Expression)
	case *ast.DeclarationStatement:
		if s == nil {
			return
		}
		m.mutateDeclaration(s)
	case *ast.AssignmentStatement:
		if s == nil {
			return
		}
		m.mutateAssignment(s)
	}
}

func (m *ASTMutator) mutateExpression(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.InfixExpression:
		r := m.rnd.Float32()
		if r < 0.33 {
			e.Operator = m.randomOperator()
		} else if r < 0.66 {
			e.Left = m.mutateExpression(e.Left)
		} else {
			e.Right = m.mutateExpression(e.Right)
		}
	case *ast.PrefixExpression:
		if m.rnd.Float32() < 0.5 {
			// Drop the sign.
			return e.Right
		}
		e.Right = m.mutateExpression(e.Right)
	case *ast.NumberLiteral:
		if m.rnd.Float32() < 0.2 {
			return &ast.PrefixExpression{Token: e.Token, Operator: "-", Right: e}
		}
		e.Text = m.mutateDigits(e.Text)
	case *ast.Identifier:
		e.Value = m.names[m.rnd.Intn(len(m.names))]
	}
	return expr
}

func (m *ASTMutator) mutateDeclaration(s *ast.DeclarationStatement) {
	switch {
	case s.Value == nil:
		s.Value = &ast.NumberLiteral{Text: strconv.Itoa(m.rnd.Intn(100))}
	case m.rnd.Float32() < 0.2:
		s.Value = nil
	default:
		s.Value.Text = m.mutateDigits(s.Value.Text)
	}
}

func (m *ASTMutator) mutateAssignment(s *ast.AssignmentStatement) {
	if m.rnd.Float32() < 0.5 {
		s.Value = &ast.Identifier{Value: m.names[m.rnd.Intn(len(m.names))]}
		return
	}
	s.Value = &ast.NumberLiteral{Text: m.mutateDigits("0")}
}

// mutateDigits replaces one digit of a literal, keeping its sign and
// decimal point.
func (m *ASTMutator) mutateDigits(text string) string {
	var idx []int
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return text
	}
	b := []byte(text)
	b[idx[m.rnd.Intn(len(idx))]] = byte('0' + m.rnd.Intn(10))
	if m.rnd.Float32() < 0.1 && !strings.Contains(text, ".") {
		b = append(b, '.', byte('0'+m.rnd.Intn(10)))
	}
	return string(b)
}

func (m *ASTMutator) randomOperator() string {
	ops := []string{"+", "-", "*", "/"}
	return ops[m.rnd.Intn(len(ops))]
}
