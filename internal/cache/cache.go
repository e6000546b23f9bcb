// Package cache memoizes parsed declarations so a documentation build that
// reparses the same signature across several output formats pays the
// parse cost once.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
	"github.com/gaarutyunov/cppdecl/pkg/config"
)

// Cache maps a (config fingerprint, input, object type) key to the digest
// it was last seen with, persisted to disk, plus an in-memory table of the
// parsed declarations themselves. The digest table is what survives a
// process restart; the parsed ASTs do not, since ast.Declaration is a
// tagged-union of interfaces with no generic JSON shape (see DESIGN.md).
type Cache struct {
	Digests map[string]string `json:"digests"`
	path    string
	parsed  map[string]*ast.Declaration
}

// New creates an empty cache bound to cachePath.
func New(cachePath string) *Cache {
	return &Cache{
		Digests: make(map[string]string),
		path:    cachePath,
		parsed:  make(map[string]*ast.Declaration),
	}
}

// Load reads a cache's digest table from disk. A missing file is not an
// error: it just means a cold cache.
func Load(cachePath string) (*Cache, error) {
	c := New(cachePath)

	data, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(data, &c.Digests); err != nil {
		return nil, fmt.Errorf("failed to parse cache: %w", err)
	}

	return c, nil
}

// Save writes the digest table to disk, creating its parent directory if
// needed.
func (c *Cache) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(c.Digests, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}

// Fingerprint digests the parts of a Config that affect parse output
// (attribute allowlists, fallback-expression toggle), so callers can key
// cache entries on "this config, this input" without the Config having to
// implement equality itself.
func Fingerprint(cfg *config.Config) string {
	if cfg == nil {
		return digest("")
	}
	ids := append([]string(nil), cfg.IDAttributes...)
	parens := append([]string(nil), cfg.ParenAttributes...)
	sort.Strings(ids)
	sort.Strings(parens)
	var b strings.Builder
	b.WriteString(strings.Join(ids, ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(parens, ","))
	b.WriteByte('|')
	fmt.Fprintf(&b, "%v", cfg.AllowFallbackExpressionParsing)
	return digest(b.String())
}

func digest(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

func key(fingerprint, input, objectType string) string {
	return fingerprint + "\x00" + objectType + "\x00" + input
}

// Get returns the declaration previously cached under this
// (fingerprint, objectType, input) key, if this process has parsed it
// before.
func (c *Cache) Get(fingerprint, input, objectType string) (*ast.Declaration, bool) {
	decl, ok := c.parsed[key(fingerprint, input, objectType)]
	return decl, ok
}

// Put records decl as the parse result for this key, and updates the
// persisted digest so a future process can tell this exact input was seen
// before, even though decl itself is not persisted.
func (c *Cache) Put(fingerprint, input, objectType string, decl *ast.Declaration) {
	k := key(fingerprint, input, objectType)
	c.parsed[k] = decl
	c.Digests[k] = digest(input)
}

// Seen reports whether this exact (fingerprint, objectType, input) key was
// recorded in a prior Save, even across a process restart where the
// in-memory parsed table is empty.
func (c *Cache) Seen(fingerprint, input, objectType string) bool {
	k := key(fingerprint, input, objectType)
	return c.Digests[k] == digest(input)
}

// Remove drops a key from both tables.
func (c *Cache) Remove(fingerprint, input, objectType string) {
	k := key(fingerprint, input, objectType)
	delete(c.parsed, k)
	delete(c.Digests, k)
}

// Clear empties both tables.
func (c *Cache) Clear() {
	c.Digests = make(map[string]string)
	c.parsed = make(map[string]*ast.Declaration)
}
