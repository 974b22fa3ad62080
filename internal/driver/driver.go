// Package driver runs a numlang program: it feeds each source line through
// the line pipeline, prints results and diagnostics, and renders the final
// symbol table.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/funvibe/numlang/internal/classifier"
	"github.com/funvibe/numlang/internal/config"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/evaluator"
	"github.com/funvibe/numlang/internal/export"
	"github.com/funvibe/numlang/internal/lexer"
	"github.com/funvibe/numlang/internal/parser"
	"github.com/funvibe/numlang/internal/pipeline"
	"github.com/funvibe/numlang/internal/prettyprinter"
	"github.com/funvibe/numlang/internal/symbols"
	"github.com/funvibe/numlang/internal/token"
	"github.com/funvibe/numlang/internal/utils"
)

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

type Options struct {
	Lenient  bool
	Dump     string // config.DumpText, DumpYAML or DumpNone
	Color    bool   // colour diagnostics
	ExportDB string // SQLite snapshot path, empty to skip
	RunID    string // generated when empty

	// Logger receives debug traces. Nil discards them.
	Logger *log.Logger
}

// OptionsFrom builds driver options from a resolved configuration. color
// is the outcome of UseColor.
func OptionsFrom(cfg *config.Config, color bool, logger *log.Logger) Options {
	return Options{
		Lenient:  cfg.Lenient,
		Dump:     cfg.Dump,
		Color:    color,
		ExportDB: cfg.ExportDB,
		Logger:   logger,
	}
}

type Driver struct {
	opts     Options
	out      io.Writer
	log      *log.Logger
	table    *symbols.SymbolTable
	pipeline *pipeline.Pipeline
	runID    string
	source   string
	errors   int
}

func New(out io.Writer, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if opts.Dump == "" {
		opts.Dump = config.DumpText
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	return &Driver{
		opts:  opts,
		out:   out,
		log:   logger,
		table: symbols.NewSymbolTable(),
		pipeline: pipeline.New(
			&classifier.ClassifierProcessor{},
			&lexer.LexerProcessor{},
			&parser.ParserProcessor{},
			&evaluator.EvaluatorProcessor{},
		),
		runID: opts.RunID,
	}
}

// Table returns the symbol table shared by every line of the run.
func (d *Driver) Table() *symbols.SymbolTable { return d.table }

// RunID identifies this run in the YAML dump and the SQLite snapshot.
func (d *Driver) RunID() string { return d.runID }

// ErrorCount is the number of per-line diagnostics reported so far.
func (d *Driver) ErrorCount() int { return d.errors }

// RunFile executes the program at path and finishes the run. A file that
// cannot be opened is reported on the output followed by the (empty) dump,
// and returned as an F001 diagnostic.
func (d *Driver) RunFile(ctx context.Context, path string) error {
	d.source = path
	f, err := os.Open(path)
	if err != nil {
		derr := diagnostics.NewError(diagnostics.ErrF001, token.Token{}, path)
		d.log.Printf("run %s: %v", d.runID, err)
		fmt.Fprintf(d.out, "Error: %s\n", derr.Message)
		if ferr := d.Finish(ctx); ferr != nil {
			return ferr
		}
		return derr
	}
	defer f.Close()

	if err := d.Run(ctx, f); err != nil {
		return err
	}
	return d.Finish(ctx)
}

// Run executes every line of r. Blank lines are skipped but still counted
// for line numbers. Per-line errors are printed and do not stop the run.
func (d *Driver) Run(ctx context.Context, r io.Reader) error {
	if d.source == "" {
		d.source = utils.StdinName
	}
	d.log.Printf("run %s: source %s", d.runID, d.source)
	if d.source != utils.StdinName && !config.HasSourceExt(d.source) {
		d.log.Printf("run %s: %s does not have a recognized source extension %v", d.runID, d.source, config.SourceFileExtensions)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d.execLine(lineNo, line)
	}
	return scanner.Err()
}

func (d *Driver) execLine(lineNo int, line string) {
	pctx := pipeline.NewContext(d.table, lineNo, line)
	pctx.Lenient = d.opts.Lenient
	pctx = d.pipeline.Run(pctx)

	d.trace(pctx)

	for _, s := range pctx.Output {
		fmt.Fprintln(d.out, s)
	}
	for _, err := range pctx.Errors {
		d.errors++
		fmt.Fprintln(d.out, d.paint("- "+err.Error()))
	}
}

func (d *Driver) trace(pctx *pipeline.PipelineContext) {
	d.log.Printf("line %d: %s", pctx.LineNo, pctx.Kind)
	if pctx.Statement != nil {
		tp := prettyprinter.NewTreePrinter()
		pctx.Statement.Accept(tp)
		d.log.Printf("line %d tree:\n%s", pctx.LineNo, strings.TrimRight(tp.String(), "\n"))
	}
	for _, s := range pctx.Output {
		if strings.HasPrefix(s, "Result: ") {
			d.log.Printf("line %d: %s", pctx.LineNo, s)
		}
	}
	for _, err := range pctx.Errors {
		d.log.Printf("line %d: %s %s", pctx.LineNo, err.Code.Kind(), err.Code)
	}
}

// Finish renders the final dump and writes the SQLite snapshot if one was
// requested.
func (d *Driver) Finish(ctx context.Context) error {
	snap := export.NewSnapshot(d.runID, utils.DisplayName(d.source), d.table)

	switch d.opts.Dump {
	case config.DumpYAML:
		if err := export.WriteYAML(d.out, snap); err != nil {
			return err
		}
	case config.DumpNone:
	default:
		if err := prettyprinter.WriteDump(d.out, d.table); err != nil {
			return err
		}
	}

	if d.opts.ExportDB != "" {
		if err := export.WriteSQLite(ctx, d.opts.ExportDB, snap); err != nil {
			return fmt.Errorf("export %s: %w", d.opts.ExportDB, err)
		}
		d.log.Printf("run %s: exported %d variables to %s", d.runID, d.table.Len(), d.opts.ExportDB)
	}
	return nil
}
