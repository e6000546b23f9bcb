package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// parseTemplateArgumentList parses "<" arg ("," arg)* ">". Each argument
// is resolved by the double speculation described in spec §4.7: try it
// as a type-id first, then as a constant-expression parsed with the
// in_template guard so a bare "<"/">" inside it is never mistaken for a
// comparison operator.
func (p *Parser) parseTemplateArgumentList(s *state) (*ast.TemplateArgs, error) {
	start := s.snapshot()
	if !s.matchString("<", true) {
		return nil, newParseError("template-argument-list", start, "expected '<'")
	}

	args := &ast.TemplateArgs{}
	if s.matchString(">", true) {
		return args, nil
	}

	for {
		arg, err := p.parseTemplateArgument(s)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		args.Args = append(args.Args, arg)

		if s.matchString("...", true) {
			args.PackExpansion = true
		}
		if s.matchString(",", true) {
			continue
		}
		break
	}

	if !p.matchClosingAngle(s) {
		s.rewind(start)
		return nil, newParseError("template-argument-list", start, "expected '>' to close template-argument-list")
	}
	return args, nil
}

// matchCloseAngle consumes a ">" and, specially, splits a ">>" token
// into two closes so nested template-id chains like "vector<vector<int>>"
// parse without requiring a space. Only the first ">" of such a pair is
// consumed here; the caller re-enters for the next level.
func (s *state) matchCloseAngle() bool {
	s.skipWhitespace()
	if len(s.rest()) == 0 {
		return false
	}
	if s.rest()[0] == '>' {
		s.pos++
		return true
	}
	return false
}

func (p *Parser) matchClosingAngle(s *state) bool {
	return s.matchCloseAngle()
}

func (p *Parser) parseTemplateArgument(s *state) (ast.TemplateArg, error) {
	start := s.snapshot()
	if typ, err := p.parseType(s, "templateParam"); err == nil {
		if s.peekString(true, ",") || s.peekString(true, ">") || s.peekString(true, "...") {
			return typ, nil
		}
	}
	s.rewind(start)

	expr, err := p.parseConstantExpression(s, true)
	if err != nil {
		return nil, err
	}
	return &ast.TemplateArgConstant{Value: expr}, nil
}

// parseTemplateParameter parses one entry of a template-parameter-list:
// a type/template-template parameter or a non-type parameter, resolved
// by speculation (spec §4.10 "_parse_template_parameter").
func (p *Parser) parseTemplateParameter(s *state) (ast.TemplateParam, error) {
	start := s.snapshot()

	if s.peekKeyword("template") {
		tp, err := p.parseTemplateParamTemplateType(s)
		if err == nil {
			return tp, nil
		}
		s.rewind(start)
	}

	if s.peekKeyword("typename") || s.peekKeyword("class") {
		save := s.snapshot()
		if tp, err := p.parseTemplateParamType(s); err == nil {
			return tp, nil
		}
		s.rewind(save)
	}

	nt, err := p.parseTemplateParamNonType(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	return nt, nil
}

func (p *Parser) parseTemplateParamType(s *state) (*ast.TemplateParamType, error) {
	start := s.snapshot()
	var key string
	switch {
	case s.matchKeyword("typename"):
		key = "typename"
	case s.matchKeyword("class"):
		key = "class"
	default:
		return nil, newParseError("template-parameter", start, "expected 'typename' or 'class'")
	}
	tp := &ast.TemplateParamType{Key: key}
	tp.Pack = s.matchString("...", true)
	if id, ok := s.matchIdentifier(); ok && !reservedWords[id] {
		tp.Ident = id
	}
	if s.matchString("=", true) {
		def, err := p.parseType(s, "type")
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		tp.Default = def
	}
	return tp, nil
}

func (p *Parser) parseTemplateParamTemplateType(s *state) (*ast.TemplateParamTemplateType, error) {
	start := s.snapshot()
	nested, err := p.parseTemplateParams(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	data, err := p.parseTemplateParamType(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	return &ast.TemplateParamTemplateType{Nested: nested, Data: data}, nil
}

func (p *Parser) parseTemplateParamNonType(s *state) (*ast.TemplateParamNonType, error) {
	start := s.snapshot()
	tp, err := p.parseTypeWithInit(s, "templateParam")
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	pack := false
	if decl, ok := tp.(*ast.TypeWithInit); ok && decl.Type != nil {
		if _, isPack := decl.Type.Declarator.(*ast.DeclaratorParamPack); isPack {
			pack = true
		}
	}
	return &ast.TemplateParamNonType{Param: tp, Pack: pack}, nil
}

// parseTemplateParams parses "template" "<" parameter-list ">"
// [requires-clause].
func (p *Parser) parseTemplateParams(s *state) (*ast.TemplateParams, error) {
	start := s.snapshot()
	if !s.matchKeyword("template") {
		return nil, newParseError("template-parameter-list", start, "expected 'template'")
	}
	if !s.matchString("<", true) {
		s.rewind(start)
		return nil, newParseError("template-parameter-list", start, "expected '<' after 'template'")
	}

	tparams := &ast.TemplateParams{}
	if !s.matchString(">", true) {
		for {
			param, err := p.parseTemplateParameter(s)
			if err != nil {
				s.rewind(start)
				return nil, err
			}
			tparams.Params = append(tparams.Params, param)
			if s.matchString(",", true) {
				continue
			}
			break
		}
		if !p.matchClosingAngle(s) {
			s.rewind(start)
			return nil, newParseError("template-parameter-list", start, "expected '>'")
		}
	}

	if s.peekKeyword("requires") {
		rc, err := p.parseRequiresClause(s)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		tparams.RequiresClause = rc
	}
	return tparams, nil
}

// parseTemplateIntroduction parses the abbreviated
// "ConceptName{P1, P2, ...}" template-introduction form.
func (p *Parser) parseTemplateIntroduction(s *state) (*ast.TemplateIntroduction, error) {
	start := s.snapshot()
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	if !s.matchString("{", true) {
		s.rewind(start)
		return nil, newParseError("template-introduction", start, "expected '{'")
	}
	intro := &ast.TemplateIntroduction{Concept: name}
	for {
		pack := s.matchString("...", true)
		id, ok := s.matchIdentifier()
		if !ok || reservedWords[id] {
			s.rewind(start)
			return nil, newParseError("template-introduction", start, "expected an identifier")
		}
		intro.Params = append(intro.Params, &ast.TemplateIntroductionParameter{Ident: id, Pack: pack})
		if s.matchString(",", true) {
			continue
		}
		break
	}
	if !s.matchString("}", true) {
		s.rewind(start)
		return nil, newParseError("template-introduction", start, "expected '}'")
	}
	return intro, nil
}

// parseRequiresClause parses "requires" constraint-logical-or-expression,
// restricted to the two-level &&/|| grammar over primary expressions
// described in spec §4.10.
func (p *Parser) parseRequiresClause(s *state) (*ast.RequiresClause, error) {
	start := s.snapshot()
	if !s.matchKeyword("requires") {
		return nil, newParseError("requires-clause", start, "expected 'requires'")
	}
	expr, err := p.parseRequiresOrExpr(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	return &ast.RequiresClause{Expr: expr}, nil
}

func (p *Parser) parseRequiresOrExpr(s *state) (ast.Expr, error) {
	first, err := p.parseRequiresAndExpr(s)
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	var ops []string
	for {
		save := s.snapshot()
		var op string
		if s.matchString("||", true) {
			op = "||"
		} else if s.matchKeyword("or") {
			op = "or"
		} else {
			s.rewind(save)
			break
		}
		next, err := p.parseRequiresAndExpr(s)
		if err != nil {
			s.rewind(save)
			break
		}
		ops = append(ops, op)
		exprs = append(exprs, next)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.BinOpExpr{Exprs: exprs, Ops: ops}, nil
}

func (p *Parser) parseRequiresAndExpr(s *state) (ast.Expr, error) {
	first, err := p.parseRequiresPrimaryExpr(s)
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	var ops []string
	for {
		save := s.snapshot()
		var op string
		if s.matchString("&&", true) {
			op = "&&"
		} else if s.matchKeyword("and") {
			op = "and"
		} else {
			s.rewind(save)
			break
		}
		next, err := p.parseRequiresPrimaryExpr(s)
		if err != nil {
			s.rewind(save)
			break
		}
		ops = append(ops, op)
		exprs = append(exprs, next)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.BinOpExpr{Exprs: exprs, Ops: ops}, nil
}

func (p *Parser) parseRequiresPrimaryExpr(s *state) (ast.Expr, error) {
	if s.matchString("(", true) {
		inner, err := p.parseRequiresOrExpr(s)
		if err != nil {
			return nil, err
		}
		if !s.matchString(")", true) {
			return nil, newParseError("requires-clause", s.snapshot(), "expected ')'")
		}
		return &ast.ParenExpr{Inner: inner}, nil
	}
	return p.parsePrimaryExpression(s)
}

// parseTemplateDeclarationPrefix parses the (possibly multi-level)
// sequence of "template<...>" clauses and TemplateIntroductions, in any
// mix, preceding a declaration. When no level is found and objectType is
// "member", this is the member full-specialization shorthand and a
// shorthand marker is returned; for any other objectType the result is
// nil with no error (spec §4.10).
func (p *Parser) parseTemplateDeclarationPrefix(s *state, objectType string) (*ast.TemplateDeclarationPrefix, error) {
	prefix := &ast.TemplateDeclarationPrefix{}
	for {
		save := s.snapshot()
		if s.peekKeyword("template") {
			tp, err := p.parseTemplateParams(s)
			if err != nil {
				s.rewind(save)
				break
			}
			prefix.Entries = append(prefix.Entries, tp)
			continue
		}
		introSave := s.snapshot()
		if intro, err := p.parseTemplateIntroduction(s); err == nil {
			prefix.Entries = append(prefix.Entries, intro)
			continue
		}
		s.rewind(introSave)
		break
	}

	if len(prefix.Entries) == 0 {
		if objectType == "member" {
			prefix.IsShorthand = true
			return prefix, nil
		}
		return nil, nil
	}
	return prefix, nil
}
