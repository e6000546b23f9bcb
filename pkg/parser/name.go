package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// reservedWords cannot be used as a plain identifier inside a
// nested-name (spec §4.6). Alternative-token spellings of operators
// ("and", "bitand", ...) are included since they are reserved too.
var reservedWords = map[string]bool{
	"alignas": true, "alignof": true, "asm": true, "auto": true, "bool": true,
	"break": true, "case": true, "catch": true, "char": true, "char8_t": true,
	"char16_t": true, "char32_t": true, "class": true, "concept": true,
	"const": true, "consteval": true, "constexpr": true, "constinit": true,
	"const_cast": true, "continue": true, "co_await": true, "co_return": true,
	"co_yield": true, "decltype": true, "default": true, "delete": true,
	"do": true, "double": true, "dynamic_cast": true, "else": true, "enum": true,
	"explicit": true, "export": true, "extern": true, "false": true,
	"float": true, "for": true, "friend": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "nullptr": true,
	"operator": true, "private": true, "protected": true, "public": true,
	"register": true, "reinterpret_cast": true, "requires": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "static_assert": true, "static_cast": true, "struct": true,
	"switch": true, "template": true, "this": true, "thread_local": true,
	"throw": true, "true": true, "try": true, "typedef": true, "typeid": true,
	"typename": true, "union": true, "unsigned": true, "using": true,
	"virtual": true, "void": true, "volatile": true, "wchar_t": true,
	"while": true,
	"and": true, "and_eq": true, "bitand": true, "bitor": true, "compl": true,
	"not": true, "not_eq": true, "or": true, "or_eq": true, "xor": true,
	"xor_eq": true,
}

// parseIdentifier matches a plain, non-reserved identifier.
func (p *Parser) parseIdentifier(s *state) (*ast.Identifier, error) {
	start := s.snapshot()
	name, ok := s.matchIdentifier()
	if !ok {
		return nil, newParseError("identifier", start, "expected an identifier")
	}
	if reservedWords[name] {
		s.rewind(start)
		return nil, newParseError("identifier", start, "'"+name+"' is a reserved word")
	}
	return &ast.Identifier{Name: name}, nil
}

// parseOperatorID parses "operator" followed by a built-in operator
// token, a conversion-function-id, or a user-defined-literal operator-id
// (spec §4.6 "_parse_operator").
func (p *Parser) parseOperatorID(s *state) (ast.Operator, error) {
	start := s.snapshot()
	if !s.matchKeyword("operator") {
		return nil, newParseError("operator-id", start, "expected 'operator'")
	}

	if s.matchString("[]", true) {
		return &ast.OperatorBuiltin{Token: "[]"}, nil
	}
	if s.matchString("()", true) {
		return &ast.OperatorBuiltin{Token: "()"}, nil
	}
	if s.matchKeyword("new") {
		if s.matchString("[]", true) {
			return &ast.OperatorBuiltin{Token: "new[]"}, nil
		}
		return &ast.OperatorBuiltin{Token: "new"}, nil
	}
	if s.matchKeyword("delete") {
		if s.matchString("[]", true) {
			return &ast.OperatorBuiltin{Token: "delete[]"}, nil
		}
		return &ast.OperatorBuiltin{Token: "delete"}, nil
	}
	if s.matchString(`""`, true) {
		suffix, ok := s.matchIdentifier()
		if !ok {
			return nil, newParseError("operator-id", start, "expected a literal-operator suffix after '\"\"'")
		}
		return &ast.OperatorLiteral{Suffix: suffix}, nil
	}

	s.skipWhitespace()
	for _, tok := range builtinOperatorTokens {
		if s.matchString(tok, false) {
			return &ast.OperatorBuiltin{Token: tok}, nil
		}
	}

	typ, err := p.parseType(s, "operatorCast")
	if err != nil {
		s.rewind(start)
		return nil, newParseError("operator-id", start, "expected an operator token or a conversion type: "+err.Error())
	}
	return &ast.OperatorConversion{Type: typ}, nil
}

// parseUnqualifiedID parses an operator-id if "operator" is next,
// otherwise a plain identifier.
func (p *Parser) parseUnqualifiedID(s *state) (ast.NameOrOperator, error) {
	if s.peekKeyword("operator") {
		return p.parseOperatorID(s)
	}
	return p.parseIdentifier(s)
}

// parseNestedName parses a possibly root-qualified "::"-separated chain
// of unqualified-ids, each optionally preceded by a disambiguating
// "template" keyword and optionally followed by a template-argument
// list (spec §4.6 "_parse_nested_name").
func (p *Parser) parseNestedName(s *state, templatePrefix *ast.TemplateDeclarationPrefix) (*ast.NestedName, error) {
	start := s.snapshot()
	nn := &ast.NestedName{}
	nn.Rooted = s.matchString("::", true)

	for {
		elStart := s.snapshot()
		hasTemplate := false
		if len(nn.Elements) > 0 || nn.Rooted {
			hasTemplate = s.matchKeyword("template")
		}

		nameOrOp, err := p.parseUnqualifiedID(s)
		if err != nil {
			if len(nn.Elements) == 0 {
				s.rewind(start)
				return nil, err
			}
			s.rewind(elStart)
			break
		}

		el := &ast.NestedNameElement{NameOrOp: nameOrOp, HasTemplate: hasTemplate}

		if s.peekString(true, "<") {
			argsStart := s.snapshot()
			args, argsErr := p.parseTemplateArgumentList(s)
			if argsErr == nil {
				el.TemplateArgs = args
			} else {
				s.rewind(argsStart)
			}
		}
		nn.Elements = append(nn.Elements, el)

		if !s.matchString("::", true) {
			break
		}
	}

	if len(nn.Elements) == 0 {
		s.rewind(start)
		return nil, newParseError("nested-name", start, "expected a name")
	}
	return nn, nil
}
