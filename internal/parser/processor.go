package parser

import (
	"github.com/funvibe/numlang/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || ctx.TokenStream == nil {
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.Statement = parser.ParseStatement()

	// Errors are already added to the context by the parser instance.
	return ctx
}
