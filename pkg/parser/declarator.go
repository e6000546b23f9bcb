package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// cvQuals is a small scratch struct for the cv-qualifier loop shared by
// pointer declarators, pointer-to-member declarators and
// parameters-and-qualifiers.
type cvQuals struct {
	Const, Volatile bool
}

func (p *Parser) parseCVQualifiers(s *state) cvQuals {
	var cv cvQuals
	for {
		switch {
		case s.matchKeyword("const"):
			cv.Const = true
		case s.matchKeyword("volatile"):
			cv.Volatile = true
		default:
			return cv
		}
	}
}

// parseDeclarator parses one declarator, recursively unwrapping
// pointer/reference/pack/parenthesized/pointer-to-member prefixes before
// reaching the leaf declarator-id (spec §4.9 "_parse_declarator").
// allowMissingName permits an abstract declarator with no declarator-id,
// as used for type-ids (spec §4.9, simplifying the original's
// false/"maybe"/"single"/true named-mode matrix to this one flag - see
// DESIGN.md).
func (p *Parser) parseDeclarator(s *state, allowMissingName bool) (ast.Declarator, error) {
	start := s.snapshot()

	if s.matchString("...", true) {
		inner, err := p.parseDeclarator(s, allowMissingName)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		return &ast.DeclaratorParamPack{Inner: inner}, nil
	}

	if s.matchString("&&", true) {
		attrs := p.parseAttributeList(s)
		inner, err := p.parseDeclarator(s, allowMissingName)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		return &ast.DeclaratorRef{Inner: inner, Rvalue: true, Attrs: attrs}, nil
	}
	if s.matchString("&", true) {
		attrs := p.parseAttributeList(s)
		inner, err := p.parseDeclarator(s, allowMissingName)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		return &ast.DeclaratorRef{Inner: inner, Attrs: attrs}, nil
	}
	if s.matchString("*", true) {
		attrs := p.parseAttributeList(s)
		cv := p.parseCVQualifiers(s)
		inner, err := p.parseDeclarator(s, allowMissingName)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		return &ast.DeclaratorPtr{Inner: inner, Const: cv.Const, Volatile: cv.Volatile, Attrs: attrs}, nil
	}

	if memPtr, ok := p.tryParseMemPtrDeclarator(s, allowMissingName); ok {
		return memPtr, nil
	}

	if s.peekString(true, "(") {
		save := s.snapshot()
		s.matchString("(", true)
		if inner, err := p.parseDeclarator(s, allowMissingName); err == nil && s.matchString(")", true) {
			next, nextErr := p.parseDeclaratorLeaf(s, true)
			if nextErr == nil {
				return &ast.DeclaratorParen{Inner: inner, Next: next}, nil
			}
		}
		s.rewind(save)
	}

	return p.parseDeclaratorLeaf(s, allowMissingName)
}

// tryParseMemPtrDeclarator speculatively parses a pointer-to-member
// declarator, "class-name::*" [cv] declarator, rewinding entirely on any
// mismatch since a plain nested-name is a far more common prefix of a
// declarator-id.
func (p *Parser) tryParseMemPtrDeclarator(s *state, allowMissingName bool) (ast.Declarator, bool) {
	start := s.snapshot()
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		s.rewind(start)
		return nil, false
	}
	if !s.matchString("::*", true) {
		s.rewind(start)
		return nil, false
	}
	cv := p.parseCVQualifiers(s)
	inner, err := p.parseDeclarator(s, allowMissingName)
	if err != nil {
		s.rewind(start)
		return nil, false
	}
	return &ast.DeclaratorMemPtr{Name: name, Const: cv.Const, Volatile: cv.Volatile, Inner: inner}, true
}

// parseDeclaratorLeaf parses the innermost declarator: an optional
// declarator-id, then either a bit-field width or a run of array-ops
// plus an optional parameters-and-qualifiers suffix (spec §4.9,
// including the bit-field guard: a bit-field needs no array-ops and no
// parameters-and-qualifiers).
func (p *Parser) parseDeclaratorLeaf(s *state, allowMissingName bool) (ast.Declarator, error) {
	start := s.snapshot()

	var name *ast.NestedName
	if n, err := p.parseNestedName(s, nil); err == nil {
		name = n
	} else if !allowMissingName {
		s.rewind(start)
		return nil, newParseError("declarator-id", start, "expected a declarator-id: "+err.Error())
	}

	if name != nil && !s.peekString(true, "::") && s.matchString(":", true) {
		size, err := p.parseConstantExpression(s, false)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		return &ast.DeclaratorNameBitField{DeclID: name, Size: size}, nil
	}

	return p.parseArrayOpsAndParams(s, name)
}

func (p *Parser) parseArrayOpsAndParams(s *state, name *ast.NestedName) (ast.Declarator, error) {
	leaf := &ast.DeclaratorNameParamQual{DeclID: name}
	for s.matchString("[", true) {
		var size ast.Expr
		if !s.peekString(true, "]") {
			e, err := p.parseConstantExpression(s, false)
			if err != nil {
				return nil, err
			}
			size = e
		}
		if !s.matchString("]", true) {
			return nil, newParseError("array-declarator", s.snapshot(), "expected ']'")
		}
		leaf.ArrayOps = append(leaf.ArrayOps, &ast.ArrayOp{Size: size})
	}

	if len(leaf.ArrayOps) == 0 && s.peekString(true, "(") {
		save := s.snapshot()
		if pq, err := p.parseParametersAndQualifiers(s, true); err == nil {
			leaf.ParamQual = pq
		} else {
			s.rewind(save)
		}
	}
	return leaf, nil
}

// parseParametersAndQualifiers parses a function declarator's parameter
// list and its cv/ref/exception/override/final/attribute/trailing-return
// suffix (spec §4.9 "_parse_parameters_and_qualifiers"). functionMode
// enables the "= 0 | delete | default" pure/deleted/defaulted suffix,
// only legal on an actual function declarator, not on a function type-id.
func (p *Parser) parseParametersAndQualifiers(s *state, functionMode bool) (*ast.ParametersAndQualifiers, error) {
	start := s.snapshot()
	if !s.matchString("(", true) {
		return nil, newParseError("parameters-and-qualifiers", start, "expected '('")
	}

	pq := &ast.ParametersAndQualifiers{}
	if !s.peekString(true, ")") {
		for {
			if s.matchString("...", true) {
				pq.Params = append(pq.Params, &ast.Parameter{Ellipsis: true})
				break
			}
			param, err := p.parseTypeWithInitValue(s, "functionParam")
			if err != nil {
				s.rewind(start)
				return nil, err
			}
			pq.Params = append(pq.Params, &ast.Parameter{Param: param})
			if s.matchString(",", true) {
				continue
			}
			break
		}
	}
	if !s.matchString(")", true) {
		s.rewind(start)
		return nil, newParseError("parameters-and-qualifiers", start, "expected ')'")
	}

	// cv-qualifiers may appear in either order; try both.
	cv := p.parseCVQualifiers(s)
	pq.Const, pq.Volatile = cv.Const, cv.Volatile

	switch {
	case s.matchString("&&", true):
		pq.RefQual = "&&"
	case s.matchString("&", true):
		pq.RefQual = "&"
	}

	if s.matchKeyword("noexcept") {
		except := &ast.NoexceptSpec{}
		if s.matchString("(", true) {
			expr, err := p.parseConstantExpression(s, false)
			if err != nil || !s.matchString(")", true) {
				s.rewind(start)
				return nil, newParseError("parameters-and-qualifiers", start, "expected a constant-expression and ')' after 'noexcept('")
			}
			except.HasExpr = true
			except.Expr = expr
		}
		pq.Except = except
	}

	if attrs := p.parseAttributeList(s); attrs != nil {
		pq.Attrs = attrs
	}

	if s.matchString("->", true) {
		ret, err := p.parseType(s, "type")
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		pq.TrailingReturn = ret
	}

	for {
		save := s.snapshot()
		switch {
		case s.matchKeyword("override"):
			pq.Override = true
		case s.matchKeyword("final"):
			pq.Final = true
		default:
			s.rewind(save)
			goto doneSpecifiers
		}
	}
doneSpecifiers:

	if functionMode && s.matchString("=", true) {
		switch {
		case s.matchString("0", true):
			pq.Initializer = "0"
		case s.matchKeyword("delete"):
			pq.Initializer = "delete"
		case s.matchKeyword("default"):
			pq.Initializer = "default"
		default:
			s.rewind(start)
			return nil, newParseError("parameters-and-qualifiers", start, "expected '0', 'delete' or 'default' after '='")
		}
	}

	return pq, nil
}

// parseType parses a full type-id: a decl-specifier-seq followed by an
// abstract (possibly empty) declarator (spec §4.9 "_parse_type"). outer
// selects which decl-specifier gating table applies.
func (p *Parser) parseType(s *state, outer string) (*ast.Type, error) {
	start := s.snapshot()
	specs, err := p.parseDeclSpecs(s, outer)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	decl, err := p.parseDeclarator(s, true)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	return &ast.Type{DeclSpecs: specs, Declarator: decl}, nil
}

// parseInitializer parses a declarator's initializer: "=" initializer-
// clause, or a bare braced-init-list.
func (p *Parser) parseInitializer(s *state) (*ast.Initializer, error) {
	if s.matchString("=", true) {
		value, err := p.parseInitializerClause(s)
		if err != nil {
			return nil, err
		}
		return &ast.Initializer{HasAssign: true, Value: value}, nil
	}
	if s.peekString(true, "{") {
		value, err := p.parseBracedInitList(s)
		if err != nil {
			return nil, err
		}
		return &ast.Initializer{Value: value}, nil
	}
	return nil, nil
}

// parseTypeWithInit parses a type followed by an optional initializer
// (spec §4.7 "_parse_type_with_init"). It always returns a
// *ast.TypeWithInit; the constrained-type-with-init alternative is not
// produced in any context.
func (p *Parser) parseTypeWithInit(s *state, outer string) (ast.TypeWithInitNode, error) {
	v, err := p.parseTypeWithInitValue(s, outer)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p *Parser) parseTypeWithInitValue(s *state, outer string) (*ast.TypeWithInit, error) {
	start := s.snapshot()
	typ, err := p.parseType(s, outer)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	if outer == "function" && typ.DeclName() == nil {
		// No declarator-id followed the type-specifier: retry with no
		// type-specifier, so a constructor or operator name is the
		// declarator-id. The typed parse is kept if the retry fails.
		end := s.snapshot()
		s.rewind(start)
		left := p.parseDeclSpecsSimple(s, outer)
		if decl, err2 := p.parseDeclarator(s, false); err2 == nil {
			typ = &ast.Type{DeclSpecs: &ast.DeclSpecs{Outer: outer, LeftSpecs: left, RightSpecs: &ast.DeclSpecsSimple{}}, Declarator: decl}
		} else {
			s.rewind(end)
		}
	}
	init, err := p.parseInitializer(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	return &ast.TypeWithInit{Type: typ, Init: init}, nil
}
