package lexer

import (
	"github.com/funvibe/numlang/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // source line the input came from
	column       int  // current column number
}

func New(input string) *Lexer {
	return NewAt(input, 1)
}

// NewAt creates a lexer whose tokens report the given source line.
func NewAt(input string, line int) *Lexer {
	l := &Lexer{input: input, line: line}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '=':
		tok = l.newToken(token.ASSIGN)
	case '+':
		tok = l.newToken(token.PLUS)
	case '-':
		tok = l.newToken(token.MINUS)
	case '*':
		tok = l.newToken(token.ASTERISK)
	case '/':
		tok = l.newToken(token.SLASH)
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case ';':
		tok = l.newToken(token.SEMICOLON)
	case 0:
		if l.position >= len(l.input) {
			return token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
		}
		tok = l.newToken(token.ILLEGAL)
	default:
		if isLetter(l.ch) {
			col := l.column
			ident := l.readIdentifier()
			return token.Token{Type: token.IDENT, Lexeme: ident, Line: l.line, Column: col}
		}
		if isDigit(l.ch) {
			col := l.column
			num := l.readNumber()
			return token.Token{Type: token.NUMBER, Lexeme: num, Line: l.line, Column: col}
		}
		tok = l.newToken(token.ILLEGAL)
	}

	l.readChar()
	return tok
}

// Tokenize scans the whole input. The returned slice always ends with EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) newToken(t token.TokenType) token.Token {
	return token.Token{Type: t, Lexeme: string(l.ch), Line: l.line, Column: l.column}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads digits with an optional fractional part. A trailing
// decimal point with no digits after it ("5.") is part of the literal.
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
