package parser

import (
	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/config"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/token"
)

// ParseStatement parses the line held by the context according to its
// classified kind. On failure it records one diagnostic on the context and
// returns nil.
func (p *Parser) ParseStatement() ast.Statement {
	switch p.ctx.Kind {
	case ast.DeclarationKind:
		if stmt := p.parseDeclaration(); stmt != nil {
			return stmt
		}
		p.ctx.AddError(diagnostics.NewError(diagnostics.ErrS001, p.ctx.LineToken(), p.ctx.Line))
	case ast.AssignmentKind:
		if stmt := p.parseAssignment(); stmt != nil {
			return stmt
		}
		p.ctx.AddError(diagnostics.NewError(diagnostics.ErrS002, p.ctx.LineToken(), p.ctx.Line))
	case ast.PrintKind:
		if stmt := p.parsePrint(); stmt != nil {
			return stmt
		}
		p.ctx.AddError(diagnostics.NewError(diagnostics.ErrS004, p.ctx.LineToken(), p.ctx.ExprSource, p.failure))
	}
	return nil
}

// parseDeclaration parses
//
//	(int|double) <identifier> (= <signed-literal>)? ;
func (p *Parser) parseDeclaration() *ast.DeclarationStatement {
	if !p.curTokenIs(token.IDENT) ||
		(p.curToken.Lexeme != config.IntKeyword && p.curToken.Lexeme != config.DoubleKeyword) {
		p.fail("expected %s or %s", config.IntKeyword, config.DoubleKeyword)
		return nil
	}
	stmt := &ast.DeclarationStatement{Token: p.curToken, Type: p.curToken.Lexeme}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	if config.Reserved(p.curToken.Lexeme) {
		p.fail("%q is a reserved word", p.curToken.Lexeme)
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseSignedLiteral()
		if stmt.Value == nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON) || !p.expectPeek(token.EOF) {
		return nil
	}
	return stmt
}

// parseAssignment parses
//
//	<identifier> = (<signed-literal> | <identifier>) ;?
func (p *Parser) parseAssignment() *ast.AssignmentStatement {
	if !p.curTokenIs(token.IDENT) {
		p.fail("expected identifier, got %s", describeToken(p.curToken))
		return nil
	}
	stmt := &ast.AssignmentStatement{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	if p.curTokenIs(token.IDENT) {
		stmt.Value = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		lit := p.parseSignedLiteral()
		if lit == nil {
			return nil
		}
		stmt.Value = lit
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	if !p.expectPeek(token.EOF) {
		return nil
	}
	return stmt
}

// parseSignedLiteral parses a number with an optional sign written directly
// in front of it ("-5", "+2.5"). A sign separated by whitespace is rejected.
func (p *Parser) parseSignedLiteral() *ast.NumberLiteral {
	if p.curTokenIs(token.NUMBER) {
		return &ast.NumberLiteral{Token: p.curToken, Text: p.curToken.Lexeme}
	}
	if !p.curTokenIs(token.MINUS) && !p.curTokenIs(token.PLUS) {
		p.fail("expected number, got %s", describeToken(p.curToken))
		return nil
	}
	sign := p.curToken
	if !p.expectPeek(token.NUMBER) {
		return nil
	}
	if p.curToken.Column != sign.Column+1 {
		p.fail("sign must be written directly before the number")
		return nil
	}
	return &ast.NumberLiteral{Token: sign, Text: sign.Lexeme + p.curToken.Lexeme}
}

// parsePrint parses the expression tokens of a print statement. The token
// stream holds only the expression, not the surrounding print( and );.
func (p *Parser) parsePrint() *ast.PrintStatement {
	stmt := &ast.PrintStatement{
		Token:  token.Token{Type: token.IDENT, Lexeme: config.PrintKeyword, Line: p.ctx.LineNo, Column: 1},
		Source: p.ctx.Line,
		Raw:    p.ctx.ExprSource,
	}

	if p.curTokenIs(token.EOF) {
		p.fail("empty expression")
		return nil
	}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	if !p.peekTokenIs(token.EOF) {
		p.nextToken()
		p.noPrefixParseFnError()
		return nil
	}
	return stmt
}
