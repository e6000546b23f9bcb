package ast

// Attribute is one parsed attribute, in any of the three accepted forms:
// a plain identifier, an identifier with a balanced parenthesized
// argument, or a balanced "[[...]]" block kept as raw text (spec §4.11).
type Attribute struct {
	Identifier string
	ParenArg   string
	HasParen   bool
	Bracketed  string
	IsBracket  bool
}

func (n *Attribute) Accept(v Visitor) any { return v.VisitAttribute(n) }

// AttributeList is an ordered, possibly empty run of attributes.
type AttributeList struct {
	Attrs []*Attribute
}

func (n *AttributeList) Accept(v Visitor) any { return v.VisitAttributeList(n) }

// ExplicitSpec is the "explicit" specifier, optionally conditioned on a
// constant-expression: "explicit(expr)".
type ExplicitSpec struct {
	HasExpr bool
	Expr    Expr
}

func (n *ExplicitSpec) Accept(v Visitor) any { return v.VisitExplicitSpec(n) }

// DeclSpecsSimple holds the decl-specifier-seq entries other than the
// trailing type-specifier, gated by outer context exactly as the
// consistency table in spec §4.8 describes.
type DeclSpecsSimple struct {
	Storage    string // "", "static", "extern", "register", "mutable"
	ThreadLocal bool
	Inline     bool
	Virtual    bool
	Explicit   *ExplicitSpec
	Friend     bool
	Constexpr  bool
	Consteval  bool
	Constinit  bool
	Volatile   bool
	Const      bool
	Attrs      *AttributeList
}

func (n *DeclSpecsSimple) Accept(v Visitor) any { return v.VisitDeclSpecsSimple(n) }

// TrailingTypeSpec is implemented by the four trailing-type-specifier
// variants (spec §4.9).
type TrailingTypeSpec interface {
	Node
	trailingTypeSpecNode()
}

// TrailingTypeSpecFundamental is a fundamental type built from a
// canonicalized [modifier, signedness, width..., base] token sequence,
// keeping both the raw token order (Names) and the canonical form
// (Canonical) because diagnostics quote the former (spec §4.9).
type TrailingTypeSpecFundamental struct {
	Names     []string
	Canonical []string
}

func (*TrailingTypeSpecFundamental) trailingTypeSpecNode()     {}
func (n *TrailingTypeSpecFundamental) Accept(v Visitor) any { return v.VisitTrailingTypeSpecFundamental(n) }

// TrailingTypeSpecDecltype is "decltype(expression)".
type TrailingTypeSpecDecltype struct {
	Expr Expr
}

func (*TrailingTypeSpecDecltype) trailingTypeSpecNode()     {}
func (n *TrailingTypeSpecDecltype) Accept(v Visitor) any { return v.VisitTrailingTypeSpecDecltype(n) }

// TrailingTypeSpecDecltypeAuto is the placeholder "decltype(auto)".
type TrailingTypeSpecDecltypeAuto struct{}

func (*TrailingTypeSpecDecltypeAuto) trailingTypeSpecNode() {}
func (n *TrailingTypeSpecDecltypeAuto) Accept(v Visitor) any {
	return v.VisitTrailingTypeSpecDecltypeAuto(n)
}

// TrailingTypeSpecName is an elaborated-type-specifier or placeholder
// name: an optional "class"/"struct"/"union"/"enum"/"typename" prefix
// keyword and a nested name, or the "auto" deduced placeholder (spec
// §4.9). "decltype(auto)" is TrailingTypeSpecDecltypeAuto instead.
type TrailingTypeSpecName struct {
	Prefix      string // "", "class", "struct", "union", "enum", "typename"
	Name        *NestedName
	Placeholder string // "", "auto"
}

func (*TrailingTypeSpecName) trailingTypeSpecNode()     {}
func (n *TrailingTypeSpecName) Accept(v Visitor) any { return v.VisitTrailingTypeSpecName(n) }

// DeclSpecs is the full decl-specifier-seq: specifiers before the
// trailing type-specifier, the trailing type-specifier itself (nil for
// declarations with no type, e.g. constructors), and specifiers after.
type DeclSpecs struct {
	Outer        string // "type", "member", "function", "templateParam", "operatorCast", "functionParam"
	LeftSpecs    *DeclSpecsSimple
	Trailing     TrailingTypeSpec
	RightSpecs   *DeclSpecsSimple
}

func (n *DeclSpecs) Accept(v Visitor) any { return v.VisitDeclSpecs(n) }

// ArrayOp is one "[size]" array-declarator suffix. Size is nil for "[]".
type ArrayOp struct {
	Size Expr
}

func (n *ArrayOp) Accept(v Visitor) any { return v.VisitArrayOp(n) }

// NoexceptSpec is a function's exception specification: bare "noexcept",
// "noexcept(expr)", or absent.
type NoexceptSpec struct {
	HasExpr bool
	Expr    Expr
}

func (n *NoexceptSpec) Accept(v Visitor) any { return v.VisitNoexceptSpec(n) }

// ParametersAndQualifiers is a function declarator's parameter list plus
// the trailing cv/ref/exception/override/final/attribute/trailing-return
// suffix (spec §4.9 "_parse_parameters_and_qualifiers").
type ParametersAndQualifiers struct {
	Params         []*Parameter
	Const          bool
	Volatile       bool
	RefQual        string // "", "&", "&&"
	Except         *NoexceptSpec
	TrailingReturn *Type
	Override       bool
	Final          bool
	Attrs          *AttributeList
	Initializer    string // "", "0", "delete", "default"
}

func (n *ParametersAndQualifiers) Accept(v Visitor) any { return v.VisitParametersAndQualifiers(n) }

// Declarator is implemented by the seven declarator variants (spec §4.9
// "_parse_declarator").
type Declarator interface {
	Node
	declaratorNode()
	// DeclName returns the nested name ultimately being declared, drilling
	// through pointer/reference/pack/paren wrappers.
	DeclName() *NestedName
}

// DeclaratorPtr is "* [cv] inner".
type DeclaratorPtr struct {
	Inner    Declarator
	Const    bool
	Volatile bool
	Attrs    *AttributeList
}

func (*DeclaratorPtr) declaratorNode()        {}
func (n *DeclaratorPtr) DeclName() *NestedName { return n.Inner.DeclName() }
func (n *DeclaratorPtr) Accept(v Visitor) any  { return v.VisitDeclaratorPtr(n) }

// DeclaratorRef is "&" or "&&" followed by an inner declarator.
type DeclaratorRef struct {
	Inner   Declarator
	Rvalue  bool
	Attrs   *AttributeList
}

func (*DeclaratorRef) declaratorNode()        {}
func (n *DeclaratorRef) DeclName() *NestedName { return n.Inner.DeclName() }
func (n *DeclaratorRef) Accept(v Visitor) any  { return v.VisitDeclaratorRef(n) }

// DeclaratorParamPack is "..." followed by an inner declarator.
type DeclaratorParamPack struct {
	Inner Declarator
}

func (*DeclaratorParamPack) declaratorNode()        {}
func (n *DeclaratorParamPack) DeclName() *NestedName { return n.Inner.DeclName() }
func (n *DeclaratorParamPack) Accept(v Visitor) any  { return v.VisitDeclaratorParamPack(n) }

// DeclaratorParen is a parenthesized declarator, "(" inner ")" next,
// where Next holds any trailing array-ops/parameters-and-qualifiers that
// apply to the parenthesized group as a whole.
type DeclaratorParen struct {
	Inner Declarator
	Next  Declarator
}

func (*DeclaratorParen) declaratorNode()        {}
func (n *DeclaratorParen) DeclName() *NestedName { return n.Inner.DeclName() }
func (n *DeclaratorParen) Accept(v Visitor) any  { return v.VisitDeclaratorParen(n) }

// DeclaratorMemPtr is a pointer-to-member declarator,
// "class-name::*" [cv] inner.
type DeclaratorMemPtr struct {
	Name     *NestedName
	Const    bool
	Volatile bool
	Inner    Declarator
}

func (*DeclaratorMemPtr) declaratorNode()        {}
func (n *DeclaratorMemPtr) DeclName() *NestedName { return n.Inner.DeclName() }
func (n *DeclaratorMemPtr) Accept(v Visitor) any  { return v.VisitDeclaratorMemPtr(n) }

// DeclaratorNameParamQual is the leaf declarator: a declarator-id
// followed by any array-ops and an optional
// parameters-and-qualifiers suffix.
type DeclaratorNameParamQual struct {
	DeclID    *NestedName
	ArrayOps  []*ArrayOp
	ParamQual *ParametersAndQualifiers
}

func (*DeclaratorNameParamQual) declaratorNode()        {}
func (n *DeclaratorNameParamQual) DeclName() *NestedName { return n.DeclID }
func (n *DeclaratorNameParamQual) Accept(v Visitor) any  { return v.VisitDeclaratorNameParamQual(n) }

// DeclaratorNameBitField is a bit-field leaf declarator,
// declarator-id ":" constant-expression.
type DeclaratorNameBitField struct {
	DeclID *NestedName
	Size   Expr
}

func (*DeclaratorNameBitField) declaratorNode()        {}
func (n *DeclaratorNameBitField) DeclName() *NestedName { return n.DeclID }
func (n *DeclaratorNameBitField) Accept(v Visitor) any  { return v.VisitDeclaratorNameBitField(n) }

// Type pairs a decl-specifier-seq with a declarator, the unit every
// type-id and most declarations are built from.
type Type struct {
	DeclSpecs  *DeclSpecs
	Declarator Declarator
}

func (n *Type) Accept(v Visitor) any { return v.VisitType(n) }

// DeclName returns the nested name this type declares, or nil if its
// declarator is abstract (no name).
func (t *Type) DeclName() *NestedName {
	if t.Declarator == nil {
		return nil
	}
	return t.Declarator.DeclName()
}

// Initializer is a declarator's initializer: "= expr" or a braced-init-list,
// the HasAssign flag distinguishing the two "=" forms from direct-list-init.
type Initializer struct {
	HasAssign bool
	Value     Expr // Expr or *BracedInitList
}

func (n *Initializer) Accept(v Visitor) any { return v.VisitInitializer(n) }

// TypeWithInitNode is implemented by *TypeWithInit and
// *TemplateParamConstrainedTypeWithInit: a non-type template parameter's
// default can be spelled either way (spec §4.7 "_parse_type_with_init").
type TypeWithInitNode interface {
	Node
	typeWithInitNode()
}

// TypeWithInit is a type plus an optional initializer, used for member
// declarations, parameters and non-type template parameters.
type TypeWithInit struct {
	Type *Type
	Init *Initializer
}

func (*TypeWithInit) typeWithInitNode()     {}
func (n *TypeWithInit) Accept(v Visitor) any { return v.VisitTypeWithInit(n) }

// TemplateParamConstrainedTypeWithInit is the constrained-type-parameter
// spelling of a template parameter default, "ConceptName auto ident = type".
type TemplateParamConstrainedTypeWithInit struct {
	Type     *Type
	TypeInit *Type
}

func (*TemplateParamConstrainedTypeWithInit) typeWithInitNode() {}
func (n *TemplateParamConstrainedTypeWithInit) Accept(v Visitor) any {
	return v.VisitTemplateParamConstrainedTypeWithInit(n)
}

// Parameter is one entry of a parameters-and-qualifiers list: a
// type-with-init plus whether it's the ellipsis sentinel.
type Parameter struct {
	Param    *TypeWithInit
	Ellipsis bool
}

func (n *Parameter) Accept(v Visitor) any { return v.VisitParameter(n) }
