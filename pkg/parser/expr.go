package parser

import "github.com/gaarutyunov/cppdecl/pkg/ast"

// parsePrimaryExpression parses a literal, "this", an id-expression, a
// fold-or-paren-expression, or a braced-init-list (spec §4.4
// "_parse_primary_expression").
func (p *Parser) parsePrimaryExpression(s *state) (ast.Expr, error) {
	start := s.snapshot()

	if s.peekString(true, "(") {
		if e, err := p.parseFoldOrParenExpression(s); err == nil {
			return e, nil
		}
		s.rewind(start)
	}

	if s.peekString(true, "{") {
		return p.parseBracedInitList(s)
	}

	if lit, err := p.parseLiteral(s); err == nil {
		return lit, nil
	}
	s.rewind(start)

	name, err := p.parseNestedName(s, nil)
	if err != nil {
		s.rewind(start)
		return nil, newParseError("primary-expression", start, "expected a literal, 'this', a parenthesized expression, a braced-init-list, or a name: "+err.Error())
	}
	return &ast.IDExpr{Name: name}, nil
}

// parseFoldOrParenExpression disambiguates "(" expr ")" from a unary or
// binary fold-expression, both of which start with "(" (spec §4.4
// "_parse_fold_or_paren_expression"). It tries the more specific fold
// shapes first since a bare parenthesized expression would otherwise
// swallow their prefix.
func (p *Parser) parseFoldOrParenExpression(s *state) (ast.Expr, error) {
	start := s.snapshot()
	if !s.matchString("(", true) {
		return nil, newParseError("fold-or-paren-expression", start, "expected '('")
	}

	// Unary right fold: "(" cast-expression op "..." ")"
	{
		save := s.snapshot()
		if left, err := p.parseCastExpression(s, false); err == nil {
			for _, op := range foldOperators {
				attempt := s.snapshot()
				if s.matchString(op, true) && s.matchString("...", true) && s.matchString(")", true) {
					return &ast.FoldExpr{Left: left, Op: op}, nil
				}
				s.rewind(attempt)
			}
		}
		s.rewind(save)
	}

	// Unary left fold: "(" "..." op cast-expression ")"
	{
		save := s.snapshot()
		if s.matchString("...", true) {
			for _, op := range foldOperators {
				attempt := s.snapshot()
				if s.matchString(op, true) {
					if right, err := p.parseCastExpression(s, false); err == nil && s.matchString(")", true) {
						return &ast.FoldExpr{Op: op, Right: right}, nil
					}
				}
				s.rewind(attempt)
			}
		}
		s.rewind(save)
	}

	// Binary fold: "(" cast-expression op "..." op cast-expression ")"
	{
		save := s.snapshot()
		if left, err := p.parseCastExpression(s, false); err == nil {
			for _, op := range foldOperators {
				attempt := s.snapshot()
				if s.matchString(op, true) && s.matchString("...", true) && s.matchString(op, true) {
					if right, err := p.parseCastExpression(s, false); err == nil && s.matchString(")", true) {
						return &ast.FoldExpr{Left: left, Op: op, Right: right}, nil
					}
				}
				s.rewind(attempt)
			}
		}
		s.rewind(save)
	}

	expr, err := p.parseExpression(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	if !s.matchString(")", true) {
		s.rewind(start)
		return nil, newParseError("paren-expression", start, "expected ')'")
	}
	return &ast.ParenExpr{Inner: expr}, nil
}

// parseParenExprList parses "(" [expr ("," expr)*] ")".
func (p *Parser) parseParenExprList(s *state) (*ast.ParenExprList, error) {
	start := s.snapshot()
	if !s.matchString("(", true) {
		return nil, newParseError("expression-list", start, "expected '('")
	}
	list := &ast.ParenExprList{}
	if s.matchString(")", true) {
		return list, nil
	}
	for {
		e, err := p.parseAssignmentExpression(s, false)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		list.Exprs = append(list.Exprs, e)
		if s.matchString(",", true) {
			continue
		}
		break
	}
	if !s.matchString(")", true) {
		s.rewind(start)
		return nil, newParseError("expression-list", start, "expected ')'")
	}
	return list, nil
}

// parseBracedInitList parses "{" [init-clause ("," init-clause)* [","]] "}".
func (p *Parser) parseBracedInitList(s *state) (*ast.BracedInitList, error) {
	start := s.snapshot()
	if !s.matchString("{", true) {
		return nil, newParseError("braced-init-list", start, "expected '{'")
	}
	list := &ast.BracedInitList{}
	if s.matchString("}", true) {
		return list, nil
	}
	for {
		e, err := p.parseInitializerClause(s)
		if err != nil {
			s.rewind(start)
			return nil, err
		}
		list.Exprs = append(list.Exprs, e)
		if s.matchString(",", true) {
			if s.peekString(true, "}") {
				list.TrailingComma = true
				break
			}
			continue
		}
		break
	}
	if !s.matchString("}", true) {
		s.rewind(start)
		return nil, newParseError("braced-init-list", start, "expected '}'")
	}
	return list, nil
}

// parseInitializerClause parses either a braced-init-list or a plain
// assignment-expression.
func (p *Parser) parseInitializerClause(s *state) (ast.Expr, error) {
	if s.peekString(true, "{") {
		return p.parseBracedInitList(s)
	}
	return p.parseAssignmentExpression(s, false)
}

// parsePostfixExpression parses explicit casts, typeid, sizeof/alignof
// forms that look like postfix expressions, and the general
// primary-or-type-then-op-chain case, following the speculation order
// in spec §4.4 ("_parse_postfix_expression").
func (p *Parser) parsePostfixExpression(s *state) (ast.Expr, error) {
	start := s.snapshot()

	for _, kind := range []ast.ExplicitCastKind{ast.CastStatic, ast.CastDynamic, ast.CastReinterpret, ast.CastConst} {
		if s.matchKeyword(string(kind)) {
			if s.matchString("<", true) {
				typ, err := p.parseType(s, "type")
				if err == nil && p.matchClosingAngle(s) {
					if args, err2 := p.parseParenExprList(s); err2 == nil {
						operand := ast.Expr(nil)
						if len(args.Exprs) > 0 {
							operand = args.Exprs[0]
						}
						return p.parsePostfixOpsChain(s, &ast.ExplicitCastExpr{Kind: kind, Type: typ, Operand: operand})
					}
				}
			}
			s.rewind(start)
			break
		}
	}

	if s.matchKeyword("typeid") {
		if s.matchString("(", true) {
			typeStart := s.snapshot()
			if typ, err := p.parseType(s, "type"); err == nil && s.matchString(")", true) {
				return p.parsePostfixOpsChain(s, &ast.TypeidExpr{IsType: true, Type: typ})
			}
			s.rewind(typeStart)
			if expr, err := p.parseExpression(s); err == nil && s.matchString(")", true) {
				return p.parsePostfixOpsChain(s, &ast.TypeidExpr{Operand: expr})
			}
		}
		s.rewind(start)
	}

	prefix, err := p.parsePostfixPrefix(s)
	if err != nil {
		s.rewind(start)
		return nil, err
	}
	return p.parsePostfixOpsChain(s, prefix)
}

// parsePostfixPrefix resolves the primary-expression-or-type ambiguity
// at the head of a postfix-expression: "Type(args)" is a functional-style
// cast, "Type{args}" is a braced functional cast, otherwise it is a
// plain primary-expression.
func (p *Parser) parsePostfixPrefix(s *state) (ast.Expr, error) {
	start := s.snapshot()
	if typ, err := p.parseType(s, "function"); err == nil && typ.DeclSpecs.Trailing != nil {
		if args, err2 := p.parseParenExprList(s); err2 == nil {
			return &ast.CastExpr{Type: typ, Operand: exprListToExpr(args)}, nil
		}
		if s.peekString(true, "{") {
			if args, err2 := p.parseBracedInitList(s); err2 == nil {
				return &ast.CastExpr{Type: typ, Operand: args}, nil
			}
		}
	}
	s.rewind(start)
	return p.parsePrimaryExpression(s)
}

func exprListToExpr(l *ast.ParenExprList) ast.Expr {
	if len(l.Exprs) == 1 {
		return l.Exprs[0]
	}
	return l
}

// parsePostfixOpsChain consumes the ordered run of "[...]", "(...)",
// ".name", "->name", "++" and "--" suffixes following prefix.
func (p *Parser) parsePostfixOpsChain(s *state, prefix ast.Expr) (ast.Expr, error) {
	var ops []ast.PostfixOp
	for {
		switch {
		case s.matchString("[", true):
			idx, err := p.parseExpression(s)
			if err != nil || !s.matchString("]", true) {
				return nil, newParseError("postfix-expression", s.snapshot(), "expected ']'")
			}
			ops = append(ops, &ast.PostfixArray{Index: idx})
		case s.peekString(true, "("):
			args, err := p.parseParenExprList(s)
			if err != nil {
				return nil, err
			}
			ops = append(ops, &ast.PostfixCall{Args: args})
		case s.peekString(true, "{"):
			args, err := p.parseBracedInitList(s)
			if err != nil {
				return nil, err
			}
			ops = append(ops, &ast.PostfixCall{Args: args})
		case s.peekString(true, "->*"):
			// "->*" belongs to the binary-operator grammar, not postfix.
			goto done
		case s.matchString("->", true):
			name, err := p.parseNestedName(s, nil)
			if err != nil {
				return nil, err
			}
			ops = append(ops, &ast.PostfixArrow{Name: name})
		case s.peekString(true, ".*"):
			goto done
		case s.matchString(".", true):
			name, err := p.parseNestedName(s, nil)
			if err != nil {
				return nil, err
			}
			ops = append(ops, &ast.PostfixMember{Name: name})
		case s.matchString("++", true):
			ops = append(ops, &ast.PostfixInc{})
		case s.matchString("--", true):
			ops = append(ops, &ast.PostfixDec{})
		default:
			goto done
		}
	}
done:
	if len(ops) == 0 {
		return prefix, nil
	}
	return &ast.PostfixExpr{Prefix: prefix, Ops: ops}, nil
}

// parseUnaryExpression parses a prefix unary operator applied to a
// cast-expression, sizeof/alignof/noexcept, new-expressions,
// delete-expressions, or falls through to a postfix-expression (spec
// §4.4 "_parse_unary_expression").
func (p *Parser) parseUnaryExpression(s *state, inTemplate bool) (ast.Expr, error) {
	start := s.snapshot()

	if s.matchString("::", true) {
		if s.matchKeyword("new") {
			return p.parseNewExpressionTail(s, true)
		}
		if s.matchKeyword("delete") {
			return p.parseDeleteExpressionTail(s, true)
		}
		s.rewind(start)
	}
	if s.peekKeyword("new") {
		s.matchKeyword("new")
		return p.parseNewExpressionTail(s, false)
	}
	if s.peekKeyword("delete") {
		s.matchKeyword("delete")
		return p.parseDeleteExpressionTail(s, false)
	}

	if s.matchString("sizeof", true) {
		if s.matchString("...", true) {
			if !s.matchString("(", true) {
				return nil, newParseError("sizeof...-expression", start, "expected '('")
			}
			ident, ok := s.matchIdentifier()
			if !ok || !s.matchString(")", true) {
				return nil, newParseError("sizeof...-expression", start, "expected an identifier and ')'")
			}
			return &ast.SizeofParamPack{Ident: ident}, nil
		}
		if s.peekString(true, "(") {
			save := s.snapshot()
			s.matchString("(", true)
			if typ, err := p.parseType(s, "type"); err == nil && s.matchString(")", true) {
				return &ast.SizeofType{Type: typ}, nil
			}
			s.rewind(save)
		}
		operand, err := p.parseUnaryExpression(s, inTemplate)
		if err != nil {
			return nil, err
		}
		return &ast.SizeofExpr{Operand: operand}, nil
	}

	if s.matchString("alignof", true) {
		if !s.matchString("(", true) {
			return nil, newParseError("alignof-expression", start, "expected '('")
		}
		typ, err := p.parseType(s, "type")
		if err != nil || !s.matchString(")", true) {
			return nil, newParseError("alignof-expression", start, "expected a type-id and ')'")
		}
		return &ast.AlignofExpr{Type: typ}, nil
	}

	if s.matchKeyword("noexcept") {
		if !s.matchString("(", true) {
			return nil, newParseError("noexcept-expression", start, "expected '('")
		}
		operand, err := p.parseExpression(s)
		if err != nil || !s.matchString(")", true) {
			return nil, newParseError("noexcept-expression", start, "expected an expression and ')'")
		}
		return &ast.NoexceptExpr{Operand: operand}, nil
	}

	s.skipWhitespace()
	for _, op := range unaryOps {
		if s.matchString(op, false) {
			operand, err := p.parseCastExpression(s, inTemplate)
			if err != nil {
				s.rewind(start)
				return nil, err
			}
			return &ast.UnaryExpr{Op: op, Operand: operand}, nil
		}
	}

	return p.parsePostfixExpression(s)
}

// parseNewExpressionTail parses a new-expression after "new" (and any
// preceding "::") has been consumed. Placement and parenthesized type-id
// forms are rejected as out of scope (spec §4.4, matching the original's
// stub for new-expression).
func (p *Parser) parseNewExpressionTail(s *state, rooted bool) (ast.Expr, error) {
	start := s.snapshot()
	typ, err := p.parseType(s, "type")
	if err != nil {
		s.rewind(start)
		return nil, newParseError("new-expression", start, "expected a type-id: "+err.Error())
	}
	expr := &ast.NewExpr{Rooted: rooted, IsTypeID: true, Type: typ}
	if s.peekString(true, "(") {
		if args, err := p.parseParenExprList(s); err == nil {
			expr.Init = args
		}
	} else if s.peekString(true, "{") {
		if args, err := p.parseBracedInitList(s); err == nil {
			expr.Init = args
		}
	}
	return expr, nil
}

func (p *Parser) parseDeleteExpressionTail(s *state, rooted bool) (ast.Expr, error) {
	array := s.matchString("[]", true)
	operand, err := p.parseCastExpression(s, false)
	if err != nil {
		return nil, err
	}
	return &ast.DeleteExpr{Rooted: rooted, Array: array, Operand: operand}, nil
}

// parseCastExpression resolves "(" type-id ")" cast-expression against a
// plain unary-expression by speculation (spec §4.4
// "_parse_cast_expression").
func (p *Parser) parseCastExpression(s *state, inTemplate bool) (ast.Expr, error) {
	start := s.snapshot()
	if s.matchString("(", true) {
		if typ, err := p.parseType(s, "type"); err == nil && s.matchString(")", true) {
			if operand, err2 := p.parseCastExpression(s, inTemplate); err2 == nil {
				return &ast.CastExpr{Type: typ, Operand: operand}, nil
			}
		}
		s.rewind(start)
	}
	return p.parseUnaryExpression(s, inTemplate)
}

// parseBinOpExpr implements the shared precedence-table dispatcher:
// level selects which entry of binOpLevels is being evaluated, and
// inTemplate prevents "<"/">" from being consumed as operators while
// inside a template-argument-list (spec §4.4 "_parse_bin_op_expr").
func (p *Parser) parseBinOpExpr(s *state, level int, inTemplate bool) (ast.Expr, error) {
	if level >= len(binOpLevels) {
		return p.parseCastExpression(s, inTemplate)
	}
	left, err := p.parseBinOpExpr(s, level+1, inTemplate)
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{left}
	var ops []string
	lvl := binOpLevels[level]
	for {
		save := s.snapshot()
		s.skipWhitespace()
		op := matchLevelOp(s, lvl, inTemplate)
		if op == "" {
			s.rewind(save)
			break
		}
		right, err := p.parseBinOpExpr(s, level+1, inTemplate)
		if err != nil {
			s.rewind(save)
			break
		}
		ops = append(ops, op)
		exprs = append(exprs, right)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.BinOpExpr{Exprs: exprs, Ops: ops}, nil
}

// matchLevelOp matches the longest operator spelling in lvl at the
// cursor, refusing to match "<"/">" when inTemplate is set (they close
// the enclosing template-argument-list instead) and refusing to split
// "&&" into "&" by trying longer spellings first via table order plus an
// explicit lookahead guard.
func matchLevelOp(s *state, lvl binOpLevel, inTemplate bool) string {
	if inTemplate {
		if s.peekString(false, "<") || s.peekString(false, ">") {
			// still allow <=, >=, <<, >>, <=> which are longer matches
			longer := false
			for _, op := range lvl.ops {
				if len(op) > 1 && s.peekString(false, op) {
					longer = true
				}
			}
			if !longer {
				return ""
			}
		}
	}
	for _, op := range lvl.ops {
		if op == "&" && s.peekString(false, "&&") {
			continue
		}
		if s.matchString(op, false) {
			return op
		}
	}
	return ""
}

func (p *Parser) parseLogicalOrExpression(s *state, inTemplate bool) (ast.Expr, error) {
	return p.parseBinOpExpr(s, 0, inTemplate)
}

// parseConditionalExpression parses a logical-or-expression optionally
// followed by "? expression : assignment-expression" (spec §4.4
// "_parse_conditional_expression_tail").
func (p *Parser) parseConditionalExpression(s *state, inTemplate bool) (ast.Expr, error) {
	cond, err := p.parseLogicalOrExpression(s, inTemplate)
	if err != nil {
		return nil, err
	}
	save := s.snapshot()
	if !s.matchString("?", true) {
		return cond, nil
	}
	then, err := p.parseExpression(s)
	if err != nil {
		s.rewind(save)
		return cond, nil
	}
	if !s.matchString(":", true) {
		s.rewind(save)
		return cond, nil
	}
	els, err := p.parseAssignmentExpression(s, inTemplate)
	if err != nil {
		s.rewind(save)
		return cond, nil
	}
	return &ast.ConditionalExpr{Cond: cond, Then: then, Else: els}, nil
}

// parseAssignmentExpression parses a conditional-expression optionally
// followed by an assignment operator and a right-hand-side
// assignment-expression (spec §4.4 "_parse_assignment_expression").
func (p *Parser) parseAssignmentExpression(s *state, inTemplate bool) (ast.Expr, error) {
	left, err := p.parseConditionalExpression(s, inTemplate)
	if err != nil {
		return nil, err
	}
	save := s.snapshot()
	s.skipWhitespace()
	for _, op := range assignmentOps {
		if s.matchString(op, false) {
			right, err := p.parseAssignmentExpression(s, inTemplate)
			if err != nil {
				s.rewind(save)
				return left, nil
			}
			return &ast.AssignmentExpr{LHS: left, Op: op, RHS: right}, nil
		}
	}
	return left, nil
}

// parseConstantExpression parses a conditional-expression (constant
// expressions never contain a top-level comma or assignment).
func (p *Parser) parseConstantExpression(s *state, inTemplate bool) (ast.Expr, error) {
	return p.parseConditionalExpression(s, inTemplate)
}

// parseExpression parses a comma-separated sequence of
// assignment-expressions (spec §4.4 "_parse_expression").
func (p *Parser) parseExpression(s *state) (ast.Expr, error) {
	first, err := p.parseAssignmentExpression(s, false)
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	for {
		save := s.snapshot()
		if !s.matchString(",", true) {
			break
		}
		next, err := p.parseAssignmentExpression(s, false)
		if err != nil {
			s.rewind(save)
			break
		}
		exprs = append(exprs, next)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.CommaExpr{Exprs: exprs}, nil
}
