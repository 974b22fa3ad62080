package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT  TokenType = "IDENT"  // x, total, _tmp1
	NUMBER TokenType = "NUMBER" // 42, 3.14, 5.

	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"

	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	SEMICOLON TokenType = ";"
)

// Token is a lexical unit. Line is the 1-based source line the token came
// from; Column is 1-based within the scanned text.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// IsOperator reports whether t is one of the four arithmetic operators.
func (t TokenType) IsOperator() bool {
	switch t {
	case PLUS, MINUS, ASTERISK, SLASH:
		return true
	}
	return false
}

// IsOperand reports whether t can stand as an expression operand.
func (t TokenType) IsOperand() bool {
	return t == IDENT || t == NUMBER
}
