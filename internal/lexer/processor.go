package lexer

import (
	"github.com/funvibe/numlang/internal/ast"
	"github.com/funvibe/numlang/internal/pipeline"
	"github.com/funvibe/numlang/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}

	if ctx.Kind == ast.PrintKind {
		tokens := NewAt(ctx.ExprSource, ctx.LineNo).Tokenize()
		if ctx.Lenient {
			tokens = DropUnrecognized(tokens)
		}
		ctx.TokenStream = tokens
		return ctx
	}

	ctx.TokenStream = NewAt(ctx.Line, ctx.LineNo).Tokenize()
	return ctx
}

// DropUnrecognized keeps only the tokens an expression may contain:
// numbers, identifiers, the four operators and EOF.
func DropUnrecognized(tokens []token.Token) []token.Token {
	kept := tokens[:0:0]
	for _, tok := range tokens {
		if tok.Type.IsOperand() || tok.Type.IsOperator() || tok.Type == token.EOF {
			kept = append(kept, tok)
		}
	}
	return kept
}
