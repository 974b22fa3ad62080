package prettyprinter

import (
	"bytes"

	"github.com/funvibe/numlang/internal/ast"
)

// CodePrinter reconstructs canonical source from a statement. The language
// has no parentheses, so an expression tree built by the parser can always
// be printed without them and re-parses to the same tree.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) VisitDeclarationStatement(n *ast.DeclarationStatement) {
	p.write(n.Type + " ")
	n.Name.Accept(p)
	if n.Value != nil {
		p.write(" = ")
		n.Value.Accept(p)
	}
	p.write(";")
}

func (p *CodePrinter) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	n.Name.Accept(p)
	p.write(" = ")
	n.Value.Accept(p)
	p.write(";")
}

func (p *CodePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.write("print(")
	if n.Expression != nil {
		n.Expression.Accept(p)
	}
	p.write(");")
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitNumberLiteral(n *ast.NumberLiteral) {
	p.write(n.Text)
}

func (p *CodePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.write(n.Operator)
	n.Right.Accept(p)
}

func (p *CodePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	n.Left.Accept(p)
	p.write(" " + n.Operator + " ")
	n.Right.Accept(p)
}
