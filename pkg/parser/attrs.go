package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// parseAttributeList parses a possibly-empty run of attributes in any of
// the three accepted forms (spec §4.11): a balanced "[[...]]" block, a
// configured no-argument identifier, or a configured identifier with a
// balanced parenthesized argument.
func (p *Parser) parseAttributeList(s *state) *ast.AttributeList {
	list := &ast.AttributeList{}
	for {
		if s.peekString(true, "[[") {
			raw, ok := p.parseBracketedAttribute(s)
			if !ok {
				break
			}
			list.Attrs = append(list.Attrs, &ast.Attribute{IsBracket: true, Bracketed: raw})
			continue
		}

		save := s.snapshot()
		name, ok := s.matchIdentifier()
		if !ok {
			break
		}
		if p.cfg.IsParenAttribute(name) {
			if s.peekString(true, "(") {
				arg, ok := p.parseBalancedParen(s)
				if ok {
					list.Attrs = append(list.Attrs, &ast.Attribute{Identifier: name, HasParen: true, ParenArg: arg})
					continue
				}
			}
			s.rewind(save)
			break
		}
		if p.cfg.IsIDAttribute(name) {
			list.Attrs = append(list.Attrs, &ast.Attribute{Identifier: name})
			continue
		}
		s.rewind(save)
		break
	}
	if len(list.Attrs) == 0 {
		return nil
	}
	return list
}

func (p *Parser) parseBracketedAttribute(s *state) (string, bool) {
	start := s.snapshot()
	if !s.matchString("[[", true) {
		return "", false
	}
	depth := 1
	for !s.eof() {
		if s.matchString("[[", false) {
			depth++
			continue
		}
		if s.matchString("]]", false) {
			depth--
			if depth == 0 {
				return s.text[start:s.pos], true
			}
			continue
		}
		s.pos++
	}
	s.rewind(start)
	return "", false
}

func (p *Parser) parseBalancedParen(s *state) (string, bool) {
	start := s.snapshot()
	if !s.matchString("(", true) {
		return "", false
	}
	depth := 1
	for !s.eof() {
		switch s.text[s.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				s.pos++
				return s.text[start:s.pos], true
			}
		}
		s.pos++
	}
	s.rewind(start)
	return "", false
}
