package pipeline

import (
	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/symbols"
	"github.com/funvibe/numlang/internal/token"
)

// Processor is a single stage of line processing.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one source line through the stages.
type PipelineContext struct {
	LineNo int
	Line   string // trimmed, non-empty source line

	// Lenient makes the expression scanner drop characters it does not
	// recognize.
	Lenient bool

	Kind        ast.StatementKind
	ExprSource  string // print expression with whitespace removed
	TokenStream []token.Token
	Statement   ast.Statement

	// Table is owned by the driver and shared by every line of a run.
	Table *symbols.SymbolTable

	Output []string
	Errors []*diagnostics.DiagnosticError
}

// NewContext prepares a context for one line.
func NewContext(table *symbols.SymbolTable, lineNo int, line string) *PipelineContext {
	return &PipelineContext{Table: table, LineNo: lineNo, Line: line}
}

// LineToken is a position-only token for diagnostics about the whole line.
func (ctx *PipelineContext) LineToken() token.Token {
	return token.Token{Line: ctx.LineNo, Column: 1}
}

func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	ctx.Errors = append(ctx.Errors, err)
}

func (ctx *PipelineContext) Emit(line string) {
	ctx.Output = append(ctx.Output, line)
}

func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}
