// Package diagnostics defines the coded errors reported while running a
// numlang program.
//
// Every per-line failure is a *DiagnosticError. They are collected on the
// pipeline context and printed by the driver; none of them stops the run.
// Only ErrF001 (source not found) and ErrC001 (bad configuration) are fatal.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/numlang/internal/token"
)

type ErrorCode string

const (
	ErrS001 ErrorCode = "S001" // declaration does not match its grammar
	ErrS002 ErrorCode = "S002" // assignment does not match its grammar
	ErrS003 ErrorCode = "S003" // print statement does not match its grammar
	ErrS004 ErrorCode = "S004" // malformed expression inside print(...)
	ErrU001 ErrorCode = "U001" // reference to an undeclared variable
	ErrN001 ErrorCode = "N001" // literal cannot be converted to the expected kind
	ErrT001 ErrorCode = "T001" // integer/double kind mismatch
	ErrM001 ErrorCode = "M001" // arithmetic result cannot be represented
	ErrF001 ErrorCode = "F001" // source cannot be opened
	ErrC001 ErrorCode = "C001" // invalid configuration
)

var messages = map[ErrorCode]string{
	ErrS001: "syntax error in declaration: %s",
	ErrS002: "syntax error in assignment: %s",
	ErrS003: "syntax error in print statement: %s",
	ErrS004: "syntax error in expression %q: %s",
	ErrU001: "variable not declared: %s",
	ErrN001: "invalid %s literal: %s",
	ErrT001: "type mismatch: %s",
	ErrM001: "arithmetic error: %s",
	ErrF001: "file not found: %s",
	ErrC001: "invalid configuration: %s",
}

// Kind returns the error family a code belongs to.
func (c ErrorCode) Kind() string {
	switch c {
	case ErrS001, ErrS002, ErrS003, ErrS004:
		return "SyntaxError"
	case ErrU001:
		return "UndeclaredVariableError"
	case ErrN001:
		return "ParseError"
	case ErrT001:
		return "TypeMismatchError"
	case ErrM001:
		return "ArithmeticError"
	case ErrF001:
		return "SourceNotFoundError"
	case ErrC001:
		return "ConfigError"
	}
	return "Error"
}

// Fatal reports whether an error with this code must stop the run.
func (c ErrorCode) Fatal() bool {
	return c == ErrF001 || c == ErrC001
}

type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
}

// NewError formats the message template registered for code with args.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	tmpl, ok := messages[code]
	if !ok {
		tmpl = "%v"
	}
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(tmpl, args...),
	}
}

func (e *DiagnosticError) Error() string {
	loc := ""
	if e.Token.Line > 0 {
		loc = fmt.Sprintf("line %d: ", e.Token.Line)
	}
	return fmt.Sprintf("%serror [%s]: %s", loc, e.Code, e.Message)
}

// Is lets errors.Is match a diagnostic by code against a template error
// created with NewError or a bare &DiagnosticError{Code: ...}.
func (e *DiagnosticError) Is(target error) bool {
	t, ok := target.(*DiagnosticError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
