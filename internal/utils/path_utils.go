package utils

import (
	"path/filepath"
)

// StdinName is the source name used when a program is read from a stream.
const StdinName = "<stdin>"

// ResolveRelative resolves path against baseDir when path is relative.
// An empty or "." baseDir leaves path as is.
func ResolveRelative(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if baseDir == "." || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// DisplayName is the short name of a source shown in dumps: the base name
// of a file path, or the path unchanged for streams.
func DisplayName(path string) string {
	if path == "" || path == StdinName {
		return path
	}
	return filepath.Base(path)
}
