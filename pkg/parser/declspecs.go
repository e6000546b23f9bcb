package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// parseDeclSpecsSimple parses the decl-specifiers other than the
// trailing type-specifier, gating each keyword by outer context exactly
// as spec §4.8's table describes: storage-class keywords and "mutable"
// need outer "member" (mutable) or "member"/"function" (storage);
// "inline"/"constexpr" need "member" or "function"; "constinit" and
// "thread_local" need "member"; "consteval"/"friend"/"virtual"/
// "explicit" need "function". "const"/"volatile" are accepted in every
// context; whether they are legal given the trailing type-specifier is
// checked by the caller once that's known.
func (p *Parser) parseDeclSpecsSimple(s *state, outer string) *ast.DeclSpecsSimple {
	ds := &ast.DeclSpecsSimple{}
	memberOrFunction := outer == "member" || outer == "function"

	for {
		save := s.snapshot()
		switch {
		case s.matchKeyword("const"):
			ds.Const = true
		case s.matchKeyword("volatile"):
			ds.Volatile = true
		case memberOrFunction && s.matchKeyword("static"):
			ds.Storage = "static"
		case memberOrFunction && s.matchKeyword("extern"):
			ds.Storage = "extern"
		case memberOrFunction && s.matchKeyword("register"):
			ds.Storage = "register"
		case outer == "member" && s.matchKeyword("mutable"):
			// mutable has no dedicated field distinct from storage in the
			// upstream grammar snapshot this mirrors; record it as storage
			// so canonicalization still sees it.
			ds.Storage = "mutable"
		case memberOrFunction && s.matchKeyword("inline"):
			ds.Inline = true
		case memberOrFunction && s.matchKeyword("constexpr"):
			ds.Constexpr = true
		case outer == "member" && s.matchKeyword("constinit"):
			ds.Constinit = true
		case outer == "member" && s.matchKeyword("thread_local"):
			ds.ThreadLocal = true
		case outer == "function" && s.matchKeyword("consteval"):
			ds.Consteval = true
		case outer == "function" && s.matchKeyword("friend"):
			ds.Friend = true
		case outer == "function" && s.matchKeyword("virtual"):
			ds.Virtual = true
		case outer == "function" && s.matchKeyword("explicit"):
			spec := &ast.ExplicitSpec{}
			if s.matchString("(", true) {
				expr, err := p.parseConstantExpression(s, false)
				if err == nil && s.matchString(")", true) {
					spec.HasExpr = true
					spec.Expr = expr
				} else {
					s.rewind(save)
					s.matchKeyword("explicit")
				}
			}
			ds.Explicit = spec
		default:
			s.rewind(save)
			goto done
		}
	}
done:
	if attrs := p.parseAttributeList(s); attrs != nil {
		ds.Attrs = attrs
	}
	return ds
}

// parseTrailingTypeSpec parses the one trailing-type-specifier variant
// present at the cursor: decltype(auto), decltype(expr), an elaborated
// name (optionally prefixed by class/struct/union/enum/typename), the
// "auto" placeholder, or a fundamental-type token run (spec §4.9
// "_parse_trailing_type_spec").
func (p *Parser) parseTrailingTypeSpec(s *state) (ast.TrailingTypeSpec, error) {
	start := s.snapshot()

	if s.matchKeyword("decltype") {
		if !s.matchString("(", true) {
			return nil, newParseError("trailing-type-specifier", start, "expected '(' after 'decltype'")
		}
		if s.matchKeyword("auto") {
			if !s.matchString(")", true) {
				return nil, newParseError("trailing-type-specifier", start, "expected ')'")
			}
			return &ast.TrailingTypeSpecDecltypeAuto{}, nil
		}
		expr, err := p.parseExpression(s)
		if err != nil || !s.matchString(")", true) {
			s.rewind(start)
			return nil, newParseError("trailing-type-specifier", start, "expected an expression and ')'")
		}
		return &ast.TrailingTypeSpecDecltype{Expr: expr}, nil
	}

	var prefix string
	switch {
	case s.matchKeyword("class"):
		prefix = "class"
	case s.matchKeyword("struct"):
		prefix = "struct"
	case s.matchKeyword("union"):
		prefix = "union"
	case s.matchKeyword("enum"):
		prefix = "enum"
	case s.matchKeyword("typename"):
		prefix = "typename"
	}

	if prefix == "" {
		if s.matchKeyword("auto") {
			return &ast.TrailingTypeSpecName{Placeholder: "auto"}, nil
		}
		if words, ok := p.tryFundamentalWords(s); ok {
			canon := canonicalizeFundamental(words)
			if canon == nil {
				s.rewind(start)
				return nil, newParseError("trailing-type-specifier", start, "invalid combination of fundamental-type keywords")
			}
			return &ast.TrailingTypeSpecFundamental{Names: words, Canonical: canon}, nil
		}
	}

	name, err := p.parseNestedName(s, nil)
	if err != nil {
		s.rewind(start)
		return nil, newParseError("trailing-type-specifier", start, "expected a type name: "+err.Error())
	}
	return &ast.TrailingTypeSpecName{Prefix: prefix, Name: name}, nil
}

// tryFundamentalWords greedily consumes a run of fundamental-type
// keywords, returning them in source order for diagnostics.
func (p *Parser) tryFundamentalWords(s *state) ([]string, bool) {
	var words []string
	for {
		save := s.snapshot()
		word, ok := s.matchIdentifier()
		if !ok || !fundamentalTypeWords[word] {
			s.rewind(save)
			break
		}
		words = append(words, word)
	}
	return words, len(words) > 0
}

// parseDeclSpecs parses the full decl-specifier-seq: left specifiers,
// trailing type-specifier (optional - a constructor or conversion
// function has none), right specifiers (spec §4.9
// "_parse_decl_specs").
func (p *Parser) parseDeclSpecs(s *state, outer string) (*ast.DeclSpecs, error) {
	left := p.parseDeclSpecsSimple(s, outer)

	save := s.snapshot()
	trailing, err := p.parseTrailingTypeSpec(s)
	if err != nil {
		s.rewind(save)
		trailing = nil
	}

	right := p.parseDeclSpecsSimple(s, outer)

	if trailing == nil && (left.Const || left.Volatile || right.Const || right.Volatile) {
		return nil, newParseError("decl-specifier-seq", save, "'const'/'volatile' require a type-specifier")
	}

	return &ast.DeclSpecs{Outer: outer, LeftSpecs: left, Trailing: trailing, RightSpecs: right}, nil
}
