package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/numlang/internal/config"
)

// TestFunctional runs .num programs through the compiled binary
// and compares output with .want files.
// This tests the actual binary - what users see.
func TestFunctional(t *testing.T) {
	// Get project root (parent of tests/)
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(t.TempDir(), "numlang-test-binary")

	// Always build fresh binary
	t.Log("Building fresh binary...")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/numlang")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, output)
	}

	// Find all source files with .want files
	var testFiles []string
	err = filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		for _, ext := range config.SourceFileExtensions {
			if strings.HasSuffix(path, ext) {
				wantFile := strings.TrimSuffix(path, ext) + ".want"
				if _, err := os.Stat(wantFile); err == nil {
					testFiles = append(testFiles, path)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}

	if len(testFiles) == 0 {
		t.Skip("No test files with .want found")
	}

	for _, testFile := range testFiles {
		testFile := testFile
		testName := strings.TrimSuffix(filepath.Base(testFile), filepath.Ext(testFile))

		t.Run(testName, func(t *testing.T) {
			absPath, err := filepath.Abs(testFile)
			if err != nil {
				t.Fatalf("Failed to get absolute path: %v", err)
			}

			ext := filepath.Ext(testFile)
			wantBytes, err := os.ReadFile(strings.TrimSuffix(testFile, ext) + ".want")
			if err != nil {
				t.Fatalf("Failed to read .want file: %v", err)
			}
			want := string(wantBytes)

			// An optional .args file holds extra flags, one per line.
			args := []string{}
			if extra, err := os.ReadFile(strings.TrimSuffix(testFile, ext) + ".args"); err == nil {
				for _, a := range strings.Split(strings.TrimSpace(string(extra)), "\n") {
					if a = strings.TrimSpace(a); a != "" {
						args = append(args, a)
					}
				}
			}
			args = append(args, absPath)

			cmd := exec.Command(binaryPath, args...)
			cmd.Dir = t.TempDir()
			// Set test mode environment variable so the binary knows it's running in test mode
			cmd.Env = append(os.Environ(), config.EnvTestMode+"=1", config.EnvNoColor+"=1")
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			_ = cmd.Run()

			got := strings.ReplaceAll(stdout.String(), "\r\n", "\n")
			if stderr.Len() > 0 {
				t.Logf("stderr:\n%s", stderr.String())
			}
			if got != want {
				t.Errorf("Output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}

// TestFunctionalMissingFile checks the report for a source that does not
// exist.
func TestFunctionalMissingFile(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	binaryPath := filepath.Join(dir, "numlang-test-binary")
	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/numlang")
	build.Dir = projectRoot
	if output, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, output)
	}

	cmd := exec.Command(binaryPath, "missing.num")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), config.EnvTestMode+"=1")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err = cmd.Run()

	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit status 1, got %v", err)
	}
	want := "Error: file not found: missing.num\nIntegers stored:\n\nDoubles stored:\n\n"
	if stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
}
