package ast

import (
	"github.com/funvibe/numlang/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
	Kind() StatementKind
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// StatementKind is the result of classifying a source line.
type StatementKind int

const (
	UnknownStatement StatementKind = iota
	DeclarationKind
	AssignmentKind
	PrintKind
)

func (k StatementKind) String() string {
	switch k {
	case DeclarationKind:
		return "declaration"
	case AssignmentKind:
		return "assignment"
	case PrintKind:
		return "print"
	}
	return "unknown"
}

// Visitor walks the tree. Each node calls the method matching its type.
type Visitor interface {
	VisitDeclarationStatement(*DeclarationStatement)
	VisitAssignmentStatement(*AssignmentStatement)
	VisitPrintStatement(*PrintStatement)
	VisitIdentifier(*Identifier)
	VisitNumberLiteral(*NumberLiteral)
	VisitPrefixExpression(*PrefixExpression)
	VisitInfixExpression(*InfixExpression)
}

// DeclarationStatement introduces a variable.
// int x = 5;  double y;
type DeclarationStatement struct {
	Token token.Token    // The 'int' or 'double' keyword
	Type  string         // "int" or "double"
	Name  *Identifier
	Value *NumberLiteral // nil when no initializer is given
}

func (ds *DeclarationStatement) Accept(v Visitor)      { v.VisitDeclarationStatement(ds) }
func (ds *DeclarationStatement) statementNode()        {}
func (ds *DeclarationStatement) TokenLiteral() string  { return ds.Token.Lexeme }
func (ds *DeclarationStatement) GetToken() token.Token { return ds.Token }
func (ds *DeclarationStatement) Kind() StatementKind   { return DeclarationKind }

// AssignmentStatement updates an existing variable.
// x = 5;  x = y
type AssignmentStatement struct {
	Token token.Token // The target identifier token
	Name  *Identifier
	Value Expression // *NumberLiteral or *Identifier
}

func (as *AssignmentStatement) Accept(v Visitor)      { v.VisitAssignmentStatement(as) }
func (as *AssignmentStatement) statementNode()        {}
func (as *AssignmentStatement) TokenLiteral() string  { return as.Token.Lexeme }
func (as *AssignmentStatement) GetToken() token.Token { return as.Token }
func (as *AssignmentStatement) Kind() StatementKind   { return AssignmentKind }

// PrintStatement evaluates and reports an expression.
// print(a + b * 2);
type PrintStatement struct {
	Token      token.Token // The 'print' keyword
	Source     string      // The whole source line, echoed before the result
	Raw        string      // The expression text with whitespace removed
	Expression Expression
}

func (ps *PrintStatement) Accept(v Visitor)      { v.VisitPrintStatement(ps) }
func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }
func (ps *PrintStatement) Kind() StatementKind   { return PrintKind }
