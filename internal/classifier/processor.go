package classifier

import (
	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/pipeline"
)

type ClassifierProcessor struct{}

func (cp *ClassifierProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Kind = Classify(ctx.Line)
	if ctx.Kind != ast.PrintKind {
		return ctx
	}

	// Print lines are echoed before anything else, even when malformed.
	ctx.Emit(ctx.Line)

	expr, ok := ExtractExpression(ctx.Line)
	if !ok {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrS003, ctx.LineToken(), ctx.Line))
		return ctx
	}
	ctx.ExprSource = expr
	return ctx
}
