package pipeline

// Pipeline represents a sequence of processing stages applied to one line.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Every stage still runs on errors; stages that need a clean context
		// check ctx.Failed() themselves.
	}
	return ctx
}
