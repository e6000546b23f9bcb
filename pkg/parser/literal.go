package parser

import (
	"regexp"
	"unicode/utf8"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
)

var (
	floatRE      = regexp.MustCompile(`^[0-9][0-9']*\.([0-9']*)?([eE][+-]?[0-9][0-9']*)?[fFlL]?|^\.[0-9][0-9']*([eE][+-]?[0-9][0-9']*)?[fFlL]?|^[0-9][0-9']*[eE][+-]?[0-9][0-9']*[fFlL]?`)
	binaryIntRE  = regexp.MustCompile(`^0[bB][01']+`)
	hexIntRE     = regexp.MustCompile(`^0[xX][0-9a-fA-F']+`)
	decimalIntRE = regexp.MustCompile(`^[1-9][0-9']*`)
	octalIntRE   = regexp.MustCompile(`^0[0-7']*`)
	intSuffixRE  = regexp.MustCompile(`^[uUlL]*`)
	stringRE     = regexp.MustCompile(`^(u8|[uUL])?"([^"\\]|\\.)*"`)
	charRE       = regexp.MustCompile(`^(u8|[uUL])?'([^'\\]|\\.)+'`)
	udlSuffixRE  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
)

// parseLiteral tries every literal form in turn (spec §4.3
// "_parse_literal"): keyword literals, then floating, then the four
// integer bases, then string, then character, finally checking for a
// trailing user-defined-literal suffix with no intervening whitespace.
func (p *Parser) parseLiteral(s *state) (ast.Expr, error) {
	start := s.snapshot()

	if s.matchKeyword("true") {
		return &ast.BoolLiteral{Value: true}, nil
	}
	if s.matchKeyword("false") {
		return &ast.BoolLiteral{Value: false}, nil
	}
	if s.matchKeyword("nullptr") {
		return &ast.NullptrLiteral{}, nil
	}
	if s.matchKeyword("this") {
		return &ast.ThisExpr{}, nil
	}

	s.skipWhitespace()
	before := s.pos

	if m, ok := s.matchRegex(floatRE, false); ok {
		return p.attachUDL(s, &ast.NumberLiteral{Value: m}), nil
	}
	if m, ok := s.matchRegex(binaryIntRE, false); ok {
		suf, _ := s.matchRegex(intSuffixRE, false)
		return p.attachUDL(s, &ast.NumberLiteral{Value: m + suf}), nil
	}
	if m, ok := s.matchRegex(hexIntRE, false); ok {
		suf, _ := s.matchRegex(intSuffixRE, false)
		return p.attachUDL(s, &ast.NumberLiteral{Value: m + suf}), nil
	}
	if m, ok := s.matchRegex(decimalIntRE, false); ok {
		suf, _ := s.matchRegex(intSuffixRE, false)
		return p.attachUDL(s, &ast.NumberLiteral{Value: m + suf}), nil
	}
	if m, ok := s.matchRegex(octalIntRE, false); ok {
		suf, _ := s.matchRegex(intSuffixRE, false)
		return p.attachUDL(s, &ast.NumberLiteral{Value: m + suf}), nil
	}
	if m, ok := s.matchRegex(stringRE, false); ok {
		return p.attachUDL(s, &ast.StringLiteral{Value: m}), nil
	}
	if m, ok := s.matchRegex(charRE, false); ok {
		lit, perr := decodeCharLiteral(m)
		if perr != nil {
			s.rewind(start)
			return nil, perr
		}
		return p.attachUDL(s, lit), nil
	}

	s.rewind(before)
	return nil, newParseError("literal", start, "expected a literal")
}

// attachUDL checks for a user-defined-literal suffix immediately
// following inner with no whitespace, wrapping inner if one is present.
func (p *Parser) attachUDL(s *state, inner ast.Expr) ast.Expr {
	if s.eof() {
		return inner
	}
	r, _ := utf8.DecodeRuneInString(s.rest())
	if !isIdentStart(r) {
		return inner
	}
	loc := udlSuffixRE.FindStringIndex(s.rest())
	if loc == nil {
		return inner
	}
	suffix := s.rest()[loc[0]:loc[1]]
	s.pos += loc[1]
	return &ast.UserDefinedLiteral{Literal: inner, Suffix: suffix}
}

// decodeCharLiteral pulls the prefix and the single code point out of a
// matched character-literal token. Multi-character literals (allowed by
// the grammar but implementation-defined in value) keep only the first
// decoded rune, which is sufficient for declaration/expression shape.
func decodeCharLiteral(raw string) (*ast.CharLiteral, error) {
	i := 0
	prefix := ""
	switch {
	case len(raw) >= 2 && raw[:2] == "u8":
		prefix, i = "u8", 2
	case len(raw) >= 1 && (raw[0] == 'u' || raw[0] == 'U' || raw[0] == 'L'):
		prefix, i = string(raw[0]), 1
	}
	body := raw[i+1 : len(raw)-1]
	if body == "" {
		return nil, newParseError("char-literal", 0, "empty character literal")
	}
	if body[0] == '\\' {
		r, _, _, err := decodeEscape(body)
		if err != nil {
			return nil, err
		}
		return &ast.CharLiteral{Prefix: prefix, Value: r}, nil
	}
	r, _ := utf8.DecodeRuneInString(body)
	return &ast.CharLiteral{Prefix: prefix, Value: r}, nil
}
