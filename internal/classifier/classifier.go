// Package classifier decides which statement a source line holds.
//
// Classification is by fixed lexical prefix only: a leading int or double
// keyword makes a declaration, a leading "print(" makes a print statement,
// anything else is an assignment. The grammar of each kind is checked later
// by the parser.
package classifier

import (
	"strings"

	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/config"
)

// Classify returns the statement kind of a trimmed, non-empty line.
func Classify(line string) ast.StatementKind {
	if hasKeyword(line, config.IntKeyword) || hasKeyword(line, config.DoubleKeyword) {
		return ast.DeclarationKind
	}
	if strings.HasPrefix(line, config.PrintPrefix) {
		return ast.PrintKind
	}
	return ast.AssignmentKind
}

// hasKeyword reports whether line starts with kw as a whole word, so that
// "integer = 1;" is not taken for a declaration.
func hasKeyword(line, kw string) bool {
	rest, ok := strings.CutPrefix(line, kw)
	if !ok {
		return false
	}
	return rest == "" || !isWordChar(rest[0])
}

func isWordChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}

// ExtractExpression returns the text between the leading "print(" and the
// trailing ");" with all whitespace removed.
func ExtractExpression(line string) (string, bool) {
	if !strings.HasPrefix(line, config.PrintPrefix) || !strings.HasSuffix(line, config.PrintSuffix) {
		return "", false
	}
	if len(line) < len(config.PrintPrefix)+len(config.PrintSuffix) {
		return "", false
	}
	inner := line[len(config.PrintPrefix) : len(line)-len(config.PrintSuffix)]
	return strings.Join(strings.Fields(inner), ""), true
}
