package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/numlang/internal/diagnostics"
	"github.com/funvibe/numlang/internal/token"
)

// runCLI runs the command with args and returns its exit code, stdout and
// stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	out, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	var stderr bytes.Buffer
	code := run(context.Background(), args, out, &stderr)

	data, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}
	return code, string(data), stderr.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunProgram(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.num", "int x = 5;\nprint(x*2);\n")
	code, stdout, stderr := runCLI(t, "-color", "never", src)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	want := "print(x*2);\nResult: 10\n\nIntegers stored:\n[x = 5]\nDoubles stored:\n\n"
	if stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}
}

func TestMissingSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	code, stdout, _ := runCLI(t, "-color", "never", path)
	if code != exitFailed {
		t.Errorf("exit code = %d, want %d", code, exitFailed)
	}
	if !strings.HasPrefix(stdout, "Error: file not found: "+path+"\n") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestInvalidFlagValue(t *testing.T) {
	code, _, stderr := runCLI(t, "-dump", "xml", "x.num")
	if code != exitConfig {
		t.Errorf("exit code = %d, want %d", code, exitConfig)
	}
	if !strings.Contains(stderr, "invalid configuration") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	code, _, stderr := runCLI(t, "-config", filepath.Join(t.TempDir(), "none.yaml"))
	if code != exitConfig {
		t.Errorf("exit code = %d, want %d", code, exitConfig)
	}
	if !strings.Contains(stderr, "none.yaml") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestConfigFileSelectsInput(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prog.num", "double d = 1.5;\n")
	cfg := writeFile(t, dir, "numlang.yaml", "input: "+src+"\ndump: none\ncolor: never\n")

	code, stdout, stderr := runCLI(t, "-config", cfg)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("expected no output with dump none, got %q", stdout)
	}

	// Flags win over the file.
	_, stdout, _ = runCLI(t, "-config", cfg, "-dump", "text")
	if !strings.Contains(stdout, "[d = 1.5]") {
		t.Errorf("text dump missing entry: %q", stdout)
	}
}

func TestHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	if code != exitOK {
		t.Errorf("exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(stderr, "Usage: numlang") {
		t.Errorf("usage not printed: %q", stderr)
	}
}

func TestTooManyArguments(t *testing.T) {
	code, _, _ := runCLI(t, "a.num", "b.num")
	if code != exitConfig {
		t.Errorf("exit code = %d, want %d", code, exitConfig)
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config", diagnostics.NewError(diagnostics.ErrC001, token.Token{}, "bad dump"), exitConfig},
		{"missing source", diagnostics.NewError(diagnostics.ErrF001, token.Token{}, "x.num"), exitFailed},
		{"line diagnostic", diagnostics.NewError(diagnostics.ErrU001, token.Token{Line: 1}, "x"), exitFailed},
		{"plain error", errors.New("export failed"), exitFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}
