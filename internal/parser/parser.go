// Package parser turns the tokens of one classified line into a statement.
//
// Declarations and assignments are matched against their fixed grammars.
// Print expressions go through a Pratt parser: '*' and '/' bind tighter
// than '+' and '-', all four are left-associative, and a leading '+' or '-'
// on an operand is a sign.
package parser

import (
	"fmt"

	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/pipeline"
	"github.com/funvibe/numlang/internal/token"
)

// MaxRecursionDepth bounds nested prefix operators such as "- - - 1".
const MaxRecursionDepth = 1000

const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x
)

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx   *pipeline.PipelineContext
	depth int

	// failure holds the first problem found; later ones are consequences.
	failure string

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentifier,
		token.NUMBER: p.parseNumberLiteral,
		token.PLUS:   p.parsePrefixExpression,
		token.MINUS:  p.parsePrefixExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
	}

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
		return
	}
	p.peekToken = token.Token{Type: token.EOF, Line: p.curToken.Line}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances when the next token has type t and records a failure
// otherwise.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.fail("expected %s, got %s", describe(t), describeToken(p.peekToken))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) fail(format string, args ...interface{}) {
	if p.failure == "" {
		p.failure = fmt.Sprintf(format, args...)
	}
}

// Failure returns the first problem the parser ran into, or "".
func (p *Parser) Failure() string {
	return p.failure
}

func describe(t token.TokenType) string {
	switch t {
	case token.EOF:
		return "end of line"
	case token.IDENT:
		return "identifier"
	case token.NUMBER:
		return "number"
	}
	return fmt.Sprintf("'%s'", t)
}

func describeToken(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of line"
	case token.ILLEGAL:
		return fmt.Sprintf("unexpected character %q", tok.Lexeme)
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
