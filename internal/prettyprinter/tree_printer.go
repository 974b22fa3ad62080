package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/numlang/internal/ast"
)

// TreePrinter renders the AST structure, one node per line, children
// indented by two spaces.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(s string) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) children(nodes ...ast.Node) {
	p.indent++
	for _, n := range nodes {
		n.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitDeclarationStatement(n *ast.DeclarationStatement) {
	p.line("DeclarationStatement " + n.Type)
	if n.Value != nil {
		p.children(n.Name, n.Value)
		return
	}
	p.children(n.Name)
}

func (p *TreePrinter) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	p.line("AssignmentStatement")
	p.children(n.Name, n.Value)
}

func (p *TreePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.line("PrintStatement " + strconv.Quote(n.Raw))
	if n.Expression != nil {
		p.children(n.Expression)
	}
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.line("Identifier " + n.Value)
}

func (p *TreePrinter) VisitNumberLiteral(n *ast.NumberLiteral) {
	p.line("NumberLiteral " + n.Text)
}

func (p *TreePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.line("PrefixExpression " + n.Operator)
	p.children(n.Right)
}

func (p *TreePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.line("InfixExpression " + n.Operator)
	p.children(n.Left, n.Right)
}
