package evaluator

import (
	"github.com/funvibe/numlang/internal/pipeline"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Statement == nil || ctx.Failed() {
		return ctx
	}

	out, err := New(ctx.Table).Execute(ctx.Statement)
	if err != nil {
		if err.Token.Line == 0 {
			err.Token = ctx.LineToken()
		}
		ctx.AddError(err)
		return ctx
	}
	for _, line := range out {
		ctx.Emit(line)
	}
	return ctx
}
