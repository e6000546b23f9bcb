package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// parseVisibility parses an optional "public:"/"protected:"/"private:"
// member-visibility label.
func (p *Parser) parseVisibility(s *state) string {
	save := s.snapshot()
	for _, kw := range []string{"public", "protected", "private"} {
		if s.matchKeyword(kw) {
			if s.matchString(":", true) {
				return kw
			}
			s.rewind(save)
			return ""
		}
	}
	return ""
}

// parseBaseClause parses a class's ": base-specifier-list" base-clause.
func (p *Parser) parseBaseClause(s *state) ([]*ast.BaseClass, error) {
	start := s.snapshot()
	if !s.matchString(":", true) {
		return nil, nil
	}
	var bases []*ast.BaseClass
	for {
		base := &ast.BaseClass{}
		leadingVirtual := s.matchKeyword("virtual")
		base.Virtual = leadingVirtual
		if vis := p.parseVisibilityNoColon(s); vis != "" {
			base.Visibility = vis
		}
		if !leadingVirtual && s.matchKeyword("virtual") {
			base.Virtual = true
		}
		name, err := p.parseNestedName(s, nil)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		base.Name = name
		base.Pack = s.matchString("...", true)
		bases = append(bases, base)
		if s.matchString(",", true) {
			continue
		}
		break
	}
	return bases, nil
}

// parseVisibilityNoColon parses a bare "public"/"protected"/"private"
// keyword without a trailing colon, as used in a base-specifier.
func (p *Parser) parseVisibilityNoColon(s *state) string {
	for _, kw := range []string{"public", "protected", "private"} {
		if s.matchKeyword(kw) {
			return kw
		}
	}
	return ""
}

// parseClass parses a class/struct body-less declaration:
// ["class"|"struct"] name [final] [base-clause]. The leading keyword, when
// present, is discarded: ast.Class does not distinguish "class Foo" from
// "struct Foo" any more than the directive it is declared under does.
func (p *Parser) parseClass(s *state) (*ast.Class, error) {
	s.matchKeyword("class")
	s.matchKeyword("struct")
	attrs := p.parseAttributeList(s)
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	cls := &ast.Class{Name: name, Attrs: attrs}
	if s.matchKeyword("final") {
		cls.Final = true
	}
	bases, err := p.parseBaseClause(s)
	if err != nil {
		return nil, err
	}
	cls.Bases = bases
	return cls, nil
}

// parseUnion parses a union declaration: ["union"] name.
func (p *Parser) parseUnion(s *state) (*ast.Union, error) {
	s.matchKeyword("union")
	attrs := p.parseAttributeList(s)
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	return &ast.Union{Name: name, Attrs: attrs}, nil
}

// parseEnum parses an enum declaration: [class|struct] name
// [":" underlying-type].
func (p *Parser) parseEnum(s *state) (*ast.Enum, error) {
	e := &ast.Enum{}
	switch {
	case s.matchKeyword("class"):
		e.Scoped = "class"
	case s.matchKeyword("struct"):
		e.Scoped = "struct"
	}
	e.Attrs = p.parseAttributeList(s)
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	e.Name = name
	if s.matchString(":", true) {
		typ, err := p.parseType(s, "type")
		if err != nil {
			return nil, err
		}
		e.UnderlyingType = typ
	}
	return e, nil
}

// parseEnumerator parses one enum-body entry: name ["=" constant-expression].
func (p *Parser) parseEnumerator(s *state) (*ast.Enumerator, error) {
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	en := &ast.Enumerator{Name: name}
	en.Attrs = p.parseAttributeList(s)
	if init, err := p.parseInitializer(s); err == nil {
		en.Init = init
	}
	return en, nil
}

// parseTypeUsing parses "Name" ["=" Type] for a using-alias declaration.
// The input starts at the alias name; no "using" keyword is consumed.
func (p *Parser) parseTypeUsing(s *state) (*ast.TypeUsing, error) {
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	tu := &ast.TypeUsing{Name: name}
	if s.matchString("=", true) {
		typ, err := p.parseType(s, "type")
		if err != nil {
			return nil, err
		}
		tu.AssignedType = typ
	}
	return tu, nil
}

// parseConcept parses "Name" "=" constraint-expression.
func (p *Parser) parseConcept(s *state) (*ast.Concept, error) {
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	init, err := p.parseInitializer(s)
	if err != nil {
		return nil, err
	}
	return &ast.Concept{Name: name, Init: init}, nil
}

// parseNamespace parses a namespace-name.
func (p *Parser) parseNamespace(s *state) (*ast.Namespace, error) {
	name, err := p.parseNestedName(s, nil)
	if err != nil {
		return nil, err
	}
	return &ast.Namespace{Name: name}, nil
}

// ParseDeclaration parses one top-level declaration of the given
// object-kind, dispatching to the kind-specific inner grammar, applying
// any template-declaration prefix, and consuming a trailing
// requires-clause and semicolon if present (spec §4.11
// "parse_declaration"). directiveType is validated against its own,
// more specific closed set and stamped onto the result as
// Declaration.DirectiveKind.
func (p *Parser) ParseDeclaration(text, objectType, directiveType string) (*ast.Declaration, error) {
	if !validDirectiveKinds[directiveType] {
		return nil, newParseError("declaration", newState(text).snapshot(),
			"unknown directiveType \""+directiveType+"\"")
	}
	s := newState(text)
	decl, err := p.parseDeclarationAt(s, objectType)
	if err != nil {
		return nil, err
	}
	decl.DirectiveKind = directiveType
	s.skipWhitespace()
	if !s.eof() {
		return nil, newParseError("declaration", s.snapshot(), "unexpected trailing input: "+s.rest())
	}
	return decl, nil
}

func (p *Parser) parseDeclarationAt(s *state, objectType string) (*ast.Declaration, error) {
	start := s.snapshot()
	decl := &ast.Declaration{ObjectType: objectType}

	decl.Visibility = p.parseVisibility(s)

	prefix, err := p.parseTemplateDeclarationPrefix(s, objectType)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	decl.TemplatePrefix = prefix

	var inner ast.DeclarationInner
	switch objectType {
	case "class":
		inner, err = p.parseClass(s)
	case "union":
		inner, err = p.parseUnion(s)
	case "enum":
		inner, err = p.parseEnum(s)
	case "enumerator":
		inner, err = p.parseEnumerator(s)
	case "type_using":
		inner, err = p.parseTypeUsing(s)
	case "concept":
		inner, err = p.parseConcept(s)
	case "namespace":
		inner, err = p.parseNamespace(s)
	case "member":
		inner, err = p.parseTypeWithInitValue(s, "member")
	case "function":
		inner, err = p.parseTypeWithInitValue(s, "function")
	default:
		inner, err = p.parseType(s, "type")
	}
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	decl.Inner = inner

	if s.peekKeyword("requires") {
		rc, rcErr := p.parseRequiresClause(s)
		if rcErr != nil {
			s.rewind(start)
			return nil, rcErr
		}
		decl.TrailingRequiresClause = rc
	}

	decl.TrailingSemicolon = s.matchString(";", true)
	return decl, nil
}

// parseXrefShorthand tries the namespace/shorthand cross-reference form:
// an optional template-declaration prefix (object-type "xref") plus a
// nested name, discarding a trailing "()" before requiring full
// consumption.
func (p *Parser) parseXrefShorthand(s *state) (*ast.Namespace, error) {
	prefix, err := p.parseTemplateDeclarationPrefix(s, "xref")
	if err != nil {
		return nil, err
	}
	name, err := p.parseNestedName(s, prefix)
	if err != nil {
		return nil, err
	}
	s.skipWhitespace()
	s.matchString("()", true)
	s.skipWhitespace()
	if !s.eof() {
		return nil, newParseError("xref-object", s.snapshot(), "unexpected trailing input: "+s.rest())
	}
	return &ast.Namespace{Name: name, TemplatePrefix: prefix}, nil
}

// ParseXrefObject parses a cross-reference target. It first tries the
// namespace/shorthand form, and falls back to a full function
// declaration when that fails (spec §4.11 "parse_xref_object"). The
// bool result reports whether the shorthand branch matched.
func (p *Parser) ParseXrefObject(text string) (ast.Node, bool, error) {
	start := newState(text)

	shortState := newState(text)
	ns, shortErr := p.parseXrefShorthand(shortState)
	if shortErr == nil {
		return ns, true, nil
	}

	fnState := newState(text)
	decl, fnErr := p.parseDeclarationAt(fnState, "function")
	if fnErr == nil {
		decl.DirectiveKind = "function"
		fnState.skipWhitespace()
		fnState.matchString("()", true)
		fnState.skipWhitespace()
		if fnState.eof() {
			return decl, false, nil
		}
		fnErr = newParseError("xref-object", fnState.snapshot(), "unexpected trailing input: "+fnState.rest())
	}

	return nil, false, newParseError("xref-object", start.snapshot(),
		"could not parse as either a shorthand reference or a function declaration: "+shortErr.Error()+"; "+fnErr.Error())
}

// ParseExpression parses text as either a standalone expression or,
// failing that, a pure type-id, falling back to the bracket-balancing
// scanner when both strict branches fail and fallback parsing is
// enabled (spec §4.5/§6, "parse_expression"). The expression branch
// wins when both would parse.
func (p *Parser) ParseExpression(text string) (ast.Node, error) {
	start := newState(text)
	expr, exprErr := p.parseExpression(start)
	if exprErr == nil {
		start.skipWhitespace()
		if start.eof() {
			return expr, nil
		}
		exprErr = newParseError("expression", start.snapshot(), "unexpected trailing input: "+start.rest())
	}

	ts := newState(text)
	typ, typErr := p.parseType(ts, "type")
	if typErr == nil {
		ts.skipWhitespace()
		if ts.eof() {
			return typ, nil
		}
		typErr = newParseError("expression", ts.snapshot(), "unexpected trailing input: "+ts.rest())
	}

	if !p.cfg.AllowFallbackExpressionParsing {
		return nil, exprErr
	}
	p.cfg.WarnMsg("falling back to bracket-balancing scan for expression: " + text)
	fb := newState(text)
	raw := p.parseExpressionFallback(fb, map[byte]bool{})
	return &ast.FallbackExpr{Text: raw}, nil
}

// ParseNamespaceObject parses a namespace-name used as a cross-reference
// target (spec §4.11 "parse_namespace_object").
func (p *Parser) ParseNamespaceObject(text string) (*ast.Namespace, error) {
	s := newState(text)
	ns, err := p.parseNamespace(s)
	if err != nil {
		return nil, err
	}
	s.skipWhitespace()
	if !s.eof() {
		return nil, newParseError("namespace", s.snapshot(), "unexpected trailing input: "+s.rest())
	}
	return ns, nil
}
