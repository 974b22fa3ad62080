package driver

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/xyproto/env/v2"

	"github.com/funvibe/numlang/internal/config"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[39m"
)

// UseColor decides whether diagnostics written to out are coloured. In
// auto mode colour needs a terminal, no NO_COLOR and a TERM other than
// dumb.
func UseColor(mode string, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	// NO_COLOR convention: https://no-color.org/
	if config.NoColor() {
		return false
	}
	if out == nil {
		return false
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}
	return env.Str("TERM") != "dumb"
}

func (d *Driver) paint(s string) string {
	if !d.opts.Color {
		return s
	}
	return ansiRed + s + ansiReset
}
