package config

import "strings"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".num", ".txt"}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// DefaultInputFile is read when no source file is named on the command line
// or in the config file.
const DefaultInputFile = "input.txt"

// DefaultConfigFile is picked up from the working directory when present.
const DefaultConfigFile = "numlang.yaml"

// Statement keywords
const (
	IntKeyword    = "int"
	DoubleKeyword = "double"
	PrintKeyword  = "print"
)

// PrintPrefix and PrintSuffix delimit the expression of a print statement.
const (
	PrintPrefix = PrintKeyword + "("
	PrintSuffix = ");"
)

// Reserved reports whether name is a statement keyword and therefore cannot
// be declared as a variable.
func Reserved(name string) bool {
	switch name {
	case IntKeyword, DoubleKeyword, PrintKeyword:
		return true
	}
	return false
}

// Dump formats
const (
	DumpText = "text"
	DumpYAML = "yaml"
	DumpNone = "none"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables consulted by EnvOverrides.
const (
	EnvInput    = "NUMLANG_INPUT"
	EnvLenient  = "NUMLANG_LENIENT"
	EnvDump     = "NUMLANG_DUMP"
	EnvColor    = "NUMLANG_COLOR"
	EnvExportDB = "NUMLANG_EXPORT_DB"
	EnvNoColor  = "NO_COLOR"
	EnvTestMode = "NUMLANG_TEST_MODE"
)
