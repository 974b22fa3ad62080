package targets

import (
	"strings"

	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/classifier"
	"github.com/funvibe/numlang/internal/lexer"
	"github.com/funvibe/numlang/internal/parser"
	"github.com/funvibe/numlang/internal/pipeline"
	"github.com/funvibe/numlang/internal/prettyprinter"
	"github.com/funvibe/numlang/internal/symbols"
)

// parseLine runs the front half of the line pipeline.
func parseLine(st *symbols.SymbolTable, lineNo int, line string, lenient bool) *pipeline.PipelineContext {
	ctx := pipeline.NewContext(st, lineNo, line)
	ctx.Lenient = lenient
	return pipeline.New(
		&classifier.ClassifierProcessor{},
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	).Run(ctx)
}

// programLines splits a program the way the driver does: trimmed, blank
// lines dropped.
func programLines(program string) []string {
	var lines []string
	for _, line := range strings.Split(program, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func printCode(stmt ast.Statement) string {
	p := prettyprinter.NewCodePrinter()
	stmt.Accept(p)
	return p.String()
}

func printTree(stmt ast.Statement) string {
	p := prettyprinter.NewTreePrinter()
	stmt.Accept(p)
	return p.String()
}
