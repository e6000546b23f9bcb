// Package parser implements a hand-written, character-cursor recursive
// descent parser for C++ declarations, expressions and cross-reference
// targets, speculating and rewinding across alternatives exactly as a
// human reader resolves C++'s local ambiguities (spec §4.1).
//
// Unlike a token-stream parser, state here is a single byte offset into
// the original source string: trying an alternative is "remember the
// offset, attempt the parse, restore the offset on failure", which lets
// the grammar rewind to the middle of what would otherwise be a token
// (e.g. abandoning a greedy "<" template-argument-list partway through
// and falling back to treating it as less-than).
package parser

import (
	"regexp"
	"strings"
)

// state is the parser's mutable cursor over the definition text being
// parsed. snapshot returns the current position for a speculative
// attempt and rewind restores it (spec §4.1 "Core mechanism").
type state struct {
	text string
	pos  int
}

func newState(text string) *state {
	return &state{text: text}
}

// snapshot returns the cursor position so a caller can rewind later.
func (s *state) snapshot() int { return s.pos }

// rewind resets the cursor to a previously taken snapshot.
func (s *state) rewind(pos int) { s.pos = pos }

// eof reports whether the cursor is at or past the end of input.
func (s *state) eof() bool { return s.pos >= len(s.text) }

// rest returns the unconsumed remainder of the input.
func (s *state) rest() string { return s.text[s.pos:] }

// skipWhitespace advances the cursor over any run of whitespace.
func (s *state) skipWhitespace() {
	for s.pos < len(s.text) {
		switch s.text[s.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			s.pos++
		default:
			return
		}
	}
}

// matchRegex anchors re at the cursor (after skipping leading
// whitespace unless skipWS is false) and, on a match, advances the
// cursor past it and returns the full match text.
func (s *state) matchRegex(re *regexp.Regexp, skipWS bool) (string, bool) {
	if skipWS {
		s.skipWhitespace()
	}
	loc := re.FindStringIndex(s.rest())
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	match := s.rest()[loc[0]:loc[1]]
	s.pos += loc[1]
	return match, true
}

// matchString consumes lit at the cursor, after skipping leading
// whitespace when skipWS is true, returning false and leaving the cursor untouched if lit
// isn't there.
func (s *state) matchString(lit string, skipWS bool) bool {
	if skipWS {
		s.skipWhitespace()
	}
	if strings.HasPrefix(s.rest(), lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// peekString reports whether lit appears at the cursor without
// consuming it.
func (s *state) peekString(skipWS bool, lit string) bool {
	save := s.pos
	if skipWS {
		s.skipWhitespace()
	}
	ok := strings.HasPrefix(s.rest(), lit)
	s.pos = save
	return ok
}

// matchKeyword consumes an identifier-shaped keyword, refusing to match
// a prefix of a longer identifier (e.g. "int" must not match "integer").
func (s *state) matchKeyword(kw string) bool {
	save := s.pos
	s.skipWhitespace()
	if !strings.HasPrefix(s.rest(), kw) {
		s.pos = save
		return false
	}
	after := s.pos + len(kw)
	if after < len(s.text) && isIdentChar(rune(s.text[after])) {
		s.pos = save
		return false
	}
	s.pos = after
	return true
}

// peekKeyword is matchKeyword without consuming input.
func (s *state) peekKeyword(kw string) bool {
	save := s.pos
	ok := s.matchKeyword(kw)
	s.pos = save
	return ok
}

func isIdentChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r > 127
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127
}

var identRE = regexp.MustCompile(`^[A-Za-z_\x80-\xff][A-Za-z0-9_\x80-\xff]*`)

// matchIdentifier consumes a bare identifier. It does not reject
// keywords: the caller decides which keyword set applies, since it
// differs between e.g. nested-name segments and fundamental-type
// specifiers.
func (s *state) matchIdentifier() (string, bool) {
	s.skipWhitespace()
	loc := identRE.FindStringIndex(s.rest())
	if loc == nil {
		return "", false
	}
	name := s.rest()[loc[0]:loc[1]]
	s.pos += loc[1]
	return name, true
}
