package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaarutyunov/cppdecl/internal/cache"
	"github.com/gaarutyunov/cppdecl/pkg/config"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	return cache.New(filepath.Join(t.TempDir(), "cache.json"))
}

func TestReadLinesSkipsBlankAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decls.txt")
	content := "int x;\n\n// a comment\nvoid f(int y);\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lines, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "int x;" || lines[1] != "void f(int y);" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestParseLinesPreservesOrderAndReportsFailures(t *testing.T) {
	cfg := &config.Config{}
	lines := []string{"int x", "???"}

	results := parseLines(lines, "member", cfg, nil)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].line != "int x" || results[0].err != nil {
		t.Errorf("expected line 0 to parse cleanly, got err=%v", results[0].err)
	}
	if results[1].err == nil {
		t.Errorf("expected line 1 to fail to parse")
	}
}

func TestParseLinesUsesCacheAcrossCalls(t *testing.T) {
	cfg := &config.Config{}
	ch := newTestCache(t)

	results1 := parseLines([]string{"int x"}, "member", cfg, ch)
	results2 := parseLines([]string{"int x"}, "member", cfg, ch)

	if results1[0].decl != results2[0].decl {
		t.Errorf("expected the second parse of an identical line to return the cached *ast.Declaration")
	}
}

func TestParseOneWarnsOnFailure(t *testing.T) {
	var warnings []string
	cfg := &config.Config{Warn: func(msg string) { warnings = append(warnings, msg) }}

	if decl := parseOne("???", "member", cfg, nil); decl != nil {
		t.Errorf("expected a nil declaration for unparseable input")
	}
	if len(warnings) == 0 {
		t.Errorf("expected the warn sink to receive the parse failure")
	}
}
