package cache

import (
	"path/filepath"
	"testing"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
	"github.com/gaarutyunov/cppdecl/pkg/config"
)

func TestFingerprintStableUnderAttributeOrder(t *testing.T) {
	a := &config.Config{IDAttributes: []string{"EXPORT", "HIDDEN"}}
	b := &config.Config{IDAttributes: []string{"HIDDEN", "EXPORT"}}

	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("expected fingerprints to match regardless of attribute order")
	}
}

func TestFingerprintDiffersOnFallbackToggle(t *testing.T) {
	a := &config.Config{AllowFallbackExpressionParsing: false}
	b := &config.Config{AllowFallbackExpressionParsing: true}

	if Fingerprint(a) == Fingerprint(b) {
		t.Errorf("expected fingerprints to differ when fallback toggle differs")
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "cache.json"))
	fp := Fingerprint(&config.Config{})
	decl := &ast.Declaration{ObjectType: "function"}

	if _, ok := c.Get(fp, "int f()", "function"); ok {
		t.Fatalf("expected cache miss before Put")
	}

	c.Put(fp, "int f()", "function", decl)

	got, ok := c.Get(fp, "int f()", "function")
	if !ok {
		t.Fatalf("expected cache hit after Put")
	}
	if got != decl {
		t.Errorf("expected Get to return the same *ast.Declaration that was Put")
	}
}

func TestSeenSurvivesSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := New(path)
	fp := Fingerprint(&config.Config{})
	c.Put(fp, "int f()", "function", &ast.Declaration{})

	if err := c.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reloaded.Seen(fp, "int f()", "function") {
		t.Errorf("expected Seen to report true for a digest persisted by Save")
	}
	if _, ok := reloaded.Get(fp, "int f()", "function"); ok {
		t.Errorf("expected Get to miss after reload: parsed ASTs are not persisted")
	}
}

func TestRemoveClearsBothTables(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "cache.json"))
	fp := Fingerprint(&config.Config{})
	c.Put(fp, "int f()", "function", &ast.Declaration{})

	c.Remove(fp, "int f()", "function")

	if _, ok := c.Get(fp, "int f()", "function"); ok {
		t.Errorf("expected Get to miss after Remove")
	}
	if c.Seen(fp, "int f()", "function") {
		t.Errorf("expected Seen to report false after Remove")
	}
}

func TestClearEmptiesCache(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "cache.json"))
	fp := Fingerprint(&config.Config{})
	c.Put(fp, "int f()", "function", &ast.Declaration{})

	c.Clear()

	if _, ok := c.Get(fp, "int f()", "function"); ok {
		t.Errorf("expected Get to miss after Clear")
	}
}
