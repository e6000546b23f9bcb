// Package ast defines the closed AST node family produced by pkg/parser:
// expressions, names, types, declarators, template parameters and
// top-level declarations. Nodes are plain structs built bottom-up by the
// parser and never mutated afterwards (spec §3 "Lifecycle"); rendering the
// tree back to source or to a mangled identifier is a responsibility of a
// collaborator outside this module.
package ast

// Expr is the marker interface implemented by every expression-family
// node (spec §3 "Expression nodes"). It is a closed variant: callers
// switch on the concrete type rather than extending the set.
type Expr interface {
	Node
	exprNode()
}

// Node is implemented by every AST node and supports the visitor pattern,
// grounded on the teacher's pkg/ast.ASTNode/Accept convention.
type Node interface {
	Accept(v Visitor) any
}

// NumberLiteral is a digit string with an optional suffix kept attached,
// e.g. "42", "3.14f", "0x2Aull".
type NumberLiteral struct {
	Value string
}

func (*NumberLiteral) exprNode()             {}
func (n *NumberLiteral) Accept(v Visitor) any { return v.VisitNumberLiteral(n) }

// StringLiteral stores the raw source text including surrounding quotes.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode()             {}
func (n *StringLiteral) Accept(v Visitor) any { return v.VisitStringLiteral(n) }

// CharLiteral is a decoded single code point with an optional encoding
// prefix (u8, u, U, L).
type CharLiteral struct {
	Prefix string
	Value  rune
}

func (*CharLiteral) exprNode()             {}
func (n *CharLiteral) Accept(v Visitor) any { return v.VisitCharLiteral(n) }

// BoolLiteral is "true" or "false".
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) exprNode()             {}
func (n *BoolLiteral) Accept(v Visitor) any { return v.VisitBoolLiteral(n) }

// NullptrLiteral is the "nullptr" pointer literal.
type NullptrLiteral struct{}

func (*NullptrLiteral) exprNode()             {}
func (n *NullptrLiteral) Accept(v Visitor) any { return v.VisitNullptrLiteral(n) }

// ThisExpr is the "this" expression.
type ThisExpr struct{}

func (*ThisExpr) exprNode()             {}
func (n *ThisExpr) Accept(v Visitor) any { return v.VisitThisExpr(n) }

// UserDefinedLiteral wraps an inner literal with a user-defined-literal
// suffix identifier, e.g. 42_km.
type UserDefinedLiteral struct {
	Literal Expr
	Suffix  string
}

func (*UserDefinedLiteral) exprNode()             {}
func (n *UserDefinedLiteral) Accept(v Visitor) any { return v.VisitUserDefinedLiteral(n) }

// IDExpr wraps a nested name used as an expression (id-expression).
type IDExpr struct {
	Name *NestedName
}

func (*IDExpr) exprNode()             {}
func (n *IDExpr) Accept(v Visitor) any { return v.VisitIDExpr(n) }

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Inner Expr
}

func (*ParenExpr) exprNode()             {}
func (n *ParenExpr) Accept(v Visitor) any { return v.VisitParenExpr(n) }

// BracedInitList is a "{...}" initializer list.
type BracedInitList struct {
	Exprs         []Expr
	TrailingComma bool
}

func (*BracedInitList) exprNode()             {}
func (n *BracedInitList) Accept(v Visitor) any { return v.VisitBracedInitList(n) }

// ParenExprList is a parenthesized, comma-separated expression list, e.g.
// a function call's argument list.
type ParenExprList struct {
	Exprs []Expr
}

func (*ParenExprList) exprNode()             {}
func (n *ParenExprList) Accept(v Visitor) any { return v.VisitParenExprList(n) }

// FoldExpr is a fold-expression: a unary right fold has only Left, a
// unary left fold has only Right, and a binary fold has both.
type FoldExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (*FoldExpr) exprNode()             {}
func (n *FoldExpr) Accept(v Visitor) any { return v.VisitFoldExpr(n) }

// UnaryExpr is a prefix unary operator applied to a cast-expression.
type UnaryExpr struct {
	Op      string
	Operand Expr
}

func (*UnaryExpr) exprNode()             {}
func (n *UnaryExpr) Accept(v Visitor) any { return v.VisitUnaryExpr(n) }

// CastExpr is "(" type ")" cast-expression.
type CastExpr struct {
	Type    *Type
	Operand Expr
}

func (*CastExpr) exprNode()             {}
func (n *CastExpr) Accept(v Visitor) any { return v.VisitCastExpr(n) }

// BinOpExpr is a chain of operands interleaved with operators at one
// precedence level: len(Ops) == len(Exprs)-1.
type BinOpExpr struct {
	Exprs []Expr
	Ops   []string
}

func (*BinOpExpr) exprNode()             {}
func (n *BinOpExpr) Accept(v Visitor) any { return v.VisitBinOpExpr(n) }

// ConditionalExpr is the ternary "cond ? then : else" expression.
type ConditionalExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*ConditionalExpr) exprNode()             {}
func (n *ConditionalExpr) Accept(v Visitor) any { return v.VisitConditionalExpr(n) }

// AssignmentExpr is "lhs op rhs" for any assignment operator.
type AssignmentExpr struct {
	LHS Expr
	Op  string
	RHS Expr
}

func (*AssignmentExpr) exprNode()             {}
func (n *AssignmentExpr) Accept(v Visitor) any { return v.VisitAssignmentExpr(n) }

// CommaExpr is a comma-separated sequence of assignment-expressions.
type CommaExpr struct {
	Exprs []Expr
}

func (*CommaExpr) exprNode()             {}
func (n *CommaExpr) Accept(v Visitor) any { return v.VisitCommaExpr(n) }

// PostfixOp is one operation in a postfix-expression's op chain.
type PostfixOp interface {
	Node
	postfixOpNode()
}

// PostfixArray is "prefix[expr]".
type PostfixArray struct {
	Index Expr
}

func (*PostfixArray) postfixOpNode()         {}
func (n *PostfixArray) Accept(v Visitor) any { return v.VisitPostfixArray(n) }

// PostfixCall is "prefix(args)" or "prefix{args}".
type PostfixCall struct {
	Args Expr // *ParenExprList or *BracedInitList
}

func (*PostfixCall) postfixOpNode()         {}
func (n *PostfixCall) Accept(v Visitor) any { return v.VisitPostfixCall(n) }

// PostfixMember is "prefix.name".
type PostfixMember struct {
	Name *NestedName
}

func (*PostfixMember) postfixOpNode()         {}
func (n *PostfixMember) Accept(v Visitor) any { return v.VisitPostfixMember(n) }

// PostfixArrow is "prefix->name".
type PostfixArrow struct {
	Name *NestedName
}

func (*PostfixArrow) postfixOpNode()         {}
func (n *PostfixArrow) Accept(v Visitor) any { return v.VisitPostfixArrow(n) }

// PostfixInc is "prefix++".
type PostfixInc struct{}

func (*PostfixInc) postfixOpNode()         {}
func (n *PostfixInc) Accept(v Visitor) any { return v.VisitPostfixInc(n) }

// PostfixDec is "prefix--".
type PostfixDec struct{}

func (*PostfixDec) postfixOpNode()         {}
func (n *PostfixDec) Accept(v Visitor) any { return v.VisitPostfixDec(n) }

// PostfixExpr is a primary/type prefix followed by an ordered postfix op
// chain.
type PostfixExpr struct {
	Prefix Expr
	Ops    []PostfixOp
}

func (*PostfixExpr) exprNode()             {}
func (n *PostfixExpr) Accept(v Visitor) any { return v.VisitPostfixExpr(n) }

// SizeofExpr is "sizeof unary-expression".
type SizeofExpr struct {
	Operand Expr
}

func (*SizeofExpr) exprNode()             {}
func (n *SizeofExpr) Accept(v Visitor) any { return v.VisitSizeofExpr(n) }

// SizeofType is "sizeof(type-id)".
type SizeofType struct {
	Type *Type
}

func (*SizeofType) exprNode()             {}
func (n *SizeofType) Accept(v Visitor) any { return v.VisitSizeofType(n) }

// SizeofParamPack is "sizeof...(identifier)".
type SizeofParamPack struct {
	Ident string
}

func (*SizeofParamPack) exprNode()             {}
func (n *SizeofParamPack) Accept(v Visitor) any { return v.VisitSizeofParamPack(n) }

// AlignofExpr is "alignof(type-id)".
type AlignofExpr struct {
	Type *Type
}

func (*AlignofExpr) exprNode()             {}
func (n *AlignofExpr) Accept(v Visitor) any { return v.VisitAlignofExpr(n) }

// NoexceptExpr is "noexcept(expression)" used as an expression.
type NoexceptExpr struct {
	Operand Expr
}

func (*NoexceptExpr) exprNode()             {}
func (n *NoexceptExpr) Accept(v Visitor) any { return v.VisitNoexceptExpr(n) }

// TypeidExpr is "typeid(type-id)" or "typeid(expression)".
type TypeidExpr struct {
	IsType  bool
	Type    *Type
	Operand Expr
}

func (*TypeidExpr) exprNode()             {}
func (n *TypeidExpr) Accept(v Visitor) any { return v.VisitTypeidExpr(n) }

// ExplicitCastKind enumerates the four named C++ casts.
type ExplicitCastKind string

const (
	CastStatic      ExplicitCastKind = "static_cast"
	CastDynamic     ExplicitCastKind = "dynamic_cast"
	CastReinterpret ExplicitCastKind = "reinterpret_cast"
	CastConst       ExplicitCastKind = "const_cast"
)

// ExplicitCastExpr is "kind<type>(expr)".
type ExplicitCastExpr struct {
	Kind    ExplicitCastKind
	Type    *Type
	Operand Expr
}

func (*ExplicitCastExpr) exprNode()             {}
func (n *ExplicitCastExpr) Accept(v Visitor) any { return v.VisitExplicitCastExpr(n) }

// NewExpr is a new-expression. Init is nil, *ParenExprList or
// *BracedInitList.
type NewExpr struct {
	Rooted   bool
	IsTypeID bool
	Type     *Type
	Init     Expr
}

func (*NewExpr) exprNode()             {}
func (n *NewExpr) Accept(v Visitor) any { return v.VisitNewExpr(n) }

// DeleteExpr is a delete-expression, optionally rooted ("::delete") and/or
// array form ("delete[]").
type DeleteExpr struct {
	Rooted  bool
	Array   bool
	Operand Expr
}

func (*DeleteExpr) exprNode()             {}
func (n *DeleteExpr) Accept(v Visitor) any { return v.VisitDeleteExpr(n) }

// PackExpansionExpr is "expr...".
type PackExpansionExpr struct {
	Inner Expr
}

func (*PackExpansionExpr) exprNode()             {}
func (n *PackExpansionExpr) Accept(v Visitor) any { return v.VisitPackExpansionExpr(n) }

// FallbackExpr holds verbatim text recovered by the bracket-balancing
// fallback scanner (spec §4.5) when strict expression parsing failed.
type FallbackExpr struct {
	Text string
}

func (*FallbackExpr) exprNode()             {}
func (n *FallbackExpr) Accept(v Visitor) any { return v.VisitFallbackExpr(n) }
