// Package config defines the external knobs the parser consumes.
//
// Directive wiring, option loading and logging setup live outside this
// module (spec §1, "Out of scope"); callers build a Config and pass it by
// reference at parser construction, mirroring the teacher's habit of
// passing explicit parameters rather than reaching for global state
// (internal/cache.New takes its path as an argument, pkg/parser.New takes
// none at all because participle owns the grammar - here the parser is the
// grammar, so its knobs travel in explicitly).
package config

// WarnFunc receives non-fatal diagnostics raised while parsing, such as a
// fallback-expression activation (spec §4.5) or a template-prefix
// consistency warning (spec §4.10). It is invoked synchronously and must
// not block.
type WarnFunc func(msg string)

// Config carries the three knobs the parser's external interface exposes
// (spec §6).
type Config struct {
	// IDAttributes lists identifier tokens treated as attributes with no
	// argument list, e.g. "CPPDECL_EXPORT".
	IDAttributes []string

	// ParenAttributes lists identifier tokens treated as attributes that
	// carry a balanced parenthesized argument, e.g. "CPPDECL_ALIGN(8)".
	ParenAttributes []string

	// AllowFallbackExpressionParsing enables the longest-balanced-bracket-run
	// fallback scanner (spec §4.5) when strict expression parsing fails.
	// When false, a failed strict parse is fatal wherever fallback would
	// otherwise have been tried.
	AllowFallbackExpressionParsing bool

	// Warn receives diagnostics. A nil Warn is treated as a no-op sink.
	Warn WarnFunc
}

func (c *Config) warn(msg string) {
	if c == nil || c.Warn == nil {
		return
	}
	c.Warn(msg)
}

// WarnMsg routes msg to the configured sink, tolerating a nil receiver or a
// nil sink.
func (c *Config) WarnMsg(msg string) {
	c.warn(msg)
}

// IsIDAttribute reports whether name is configured as a no-argument
// attribute identifier.
func (c *Config) IsIDAttribute(name string) bool {
	if c == nil {
		return false
	}
	for _, a := range c.IDAttributes {
		if a == name {
			return true
		}
	}
	return false
}

// IsParenAttribute reports whether name is configured as a
// parenthesized-argument attribute identifier.
func (c *Config) IsParenAttribute(name string) bool {
	if c == nil {
		return false
	}
	for _, a := range c.ParenAttributes {
		if a == name {
			return true
		}
	}
	return false
}
