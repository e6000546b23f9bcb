// Package parser implements the character-cursor recursive-descent
// parser described in the package comment in state.go: declarations, expressions, and
// cross-reference targets, built by hand rather than from a grammar (see
// DESIGN.md for why github.com/alecthomas/participle/v2 - the grammar
// library this package used to be built on - cannot express this
// parser's unbounded speculative rewind).
package parser

import "github.com/gaarutyunov/cppdecl/pkg/config"

// Parser holds the configuration every parse entry point consults:
// attribute allowlists and the fallback-expression-parsing switch (spec
// §6 "External interfaces").
type Parser struct {
	cfg *config.Config
}

// New builds a Parser bound to cfg. A nil cfg is valid and behaves as
// the zero Config (no configured attributes, fallback parsing
// disabled, diagnostics dropped).
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Parser{cfg: cfg}
}
