package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/funvibe/numlang/internal/config"
	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/driver"
	"github.com/funvibe/numlang/internal/token"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

const usage = `Usage: numlang [flags] [file]

Runs a numlang program. The file defaults to the "input" setting of
numlang.yaml, or input.txt.

Flags:
`

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(exitFailed)
		}
	}()

	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout *os.File, stderr io.Writer) int {
	fs := flag.NewFlagSet("numlang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "config file (default "+config.DefaultConfigFile+" if present)")
	lenient := fs.Bool("lenient", false, "drop unrecognized characters in print expressions")
	dump := fs.String("dump", "", "final dump format: text | yaml | none")
	exportDB := fs.String("export-db", "", "write a SQLite snapshot of the final symbol table to `path`")
	color := fs.String("color", "", "coloured diagnostics: auto | always | never")
	debug := fs.Bool("debug", false, "trace classification and expression trees to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitConfig
	}

	cfg, err := loadConfig(*configPath)
	if err == nil {
		err = cfg.Apply(config.EnvOverrides(), "environment")
	}
	if err == nil {
		err = cfg.Apply(flagOverrides(fs, *lenient, *dump, *exportDB, *color), "command line")
	}
	if err != nil {
		derr := diagnostics.NewError(diagnostics.ErrC001, token.Token{}, err)
		fmt.Fprintf(stderr, "Error: %s\n", derr.Message)
		return exitCodeFor(derr)
	}
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}

	logger := log.New(io.Discard, "", 0)
	if *debug {
		logger = log.Default()
	}

	opts := driver.OptionsFrom(cfg, driver.UseColor(cfg.Color, stdout), logger)
	if config.IsTestMode() {
		opts.Color = false
		opts.RunID = uuid.Nil.String()
	}

	d := driver.New(stdout, opts)
	if err := d.RunFile(ctx, cfg.Input); err != nil {
		var derr *diagnostics.DiagnosticError
		if !errors.As(err, &derr) {
			fmt.Fprintf(stderr, "Error: %s\n", err)
		}
		return exitCodeFor(err)
	}
	return exitOK
}

// exitCodeFor maps an error that ended the run to the process exit status.
// Fatal diagnostics carry their own status; anything else is a failed run.
func exitCodeFor(err error) int {
	var derr *diagnostics.DiagnosticError
	if !errors.As(err, &derr) || !derr.Code.Fatal() {
		return exitFailed
	}
	if derr.Code == diagnostics.ErrC001 {
		return exitConfig
	}
	return exitFailed
}

// loadConfig reads an explicitly named config file, or the default one when
// it exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	return config.LoadOptional(config.DefaultConfigFile)
}

// flagOverrides turns the flags given on the command line into overrides.
// Flags left at their defaults do not override the config file.
func flagOverrides(fs *flag.FlagSet, lenient bool, dump, exportDB, color string) config.Overrides {
	var o config.Overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lenient":
			o.Lenient = &lenient
		case "dump":
			o.Dump = &dump
		case "export-db":
			o.ExportDB = &exportDB
		case "color":
			o.Color = &color
		}
	})
	return o
}
