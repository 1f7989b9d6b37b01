// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> search engine -> store layer -> SQLite.
//
// Tests run the compiled binary as a subprocess with GLINT_DIR pointed at a
// temp directory, so history, config, and the analytics log are isolated per
// test and the process lifecycle (engine shutdown, history flush) is covered
// for real.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the glint binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "glint-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "glint"
		if os.PathSeparator == '\\' {
			binaryName = "glint.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testCatalog is a small catalog covering every match tier: exact and partial
// name hits, category and type hits, a description-only hit, and a best
// seller / new product pair for boost assertions.
const testCatalog = `[
  {"id": "g1", "name": "Rose Lip Gloss", "description": "Sheer hydrating gloss with rosehip oil", "category": "Lips", "type": "gloss", "price": 12.5, "stock": 40},
  {"id": "g2", "name": "Berry Lip Gloss", "description": "Tinted gloss", "category": "Lips", "type": "gloss", "price": 13, "stock": 18, "is_best_seller": true},
  {"id": "b1", "name": "Cleansing Balm", "description": "Melting balm cleanser", "category": "Face", "type": "cleanser", "price": 22, "stock": 7, "is_new": true},
  {"id": "s1", "name": "Vitamin C Serum", "description": "Brightening serum for dull skin", "category": "Face", "type": "serum", "price": 29, "stock": 12},
  {"id": "m1", "name": "Clay Mask", "description": "Purifying mask with kaolin clay", "category": "Face", "type": "mask", "price": 18, "stock": 25}
]`

// testEnv holds test environment state.
type testEnv struct {
	t       *testing.T
	dir     string // working directory and GLINT_DIR
	catalog string // catalog file path
	binary  string
}

// newTestEnv creates a temporary directory with an isolated glint home, a
// catalog file, and a short debounce so pipeline commands stay fast.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()

	catalog := filepath.Join(dir, "products.json")
	if err := os.WriteFile(catalog, []byte(testCatalog), 0644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}

	env := &testEnv{t: t, dir: dir, catalog: catalog, binary: binary}

	env.run("config", "search.debounce_ms", "25")

	return env
}

// run executes glint with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("glint %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes glint and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"GLINT_DIR="+e.dir,
		"GLINT_CATALOG="+e.catalog,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runStdin executes glint with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("glint %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes glint with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"GLINT_DIR="+e.dir,
		"GLINT_CATALOG="+e.catalog,
	)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks if output does not contain the string.
func (e *testEnv) notContains(output, unexpected string) {
	e.t.Helper()
	assert.NotContains(e.t, output, unexpected)
}
