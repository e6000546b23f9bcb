package ast

// RequiresClause is a "requires" constraint-expression, restricted to the
// two-level &&/|| grammar over primary expressions described in spec
// §4.10 ("_parse_requires_clause").
type RequiresClause struct {
	Expr Expr
}

func (n *RequiresClause) Accept(v Visitor) any { return v.VisitRequiresClause(n) }

// TemplateParam is implemented by the three template-parameter variants
// (spec §4.10 "_parse_template_parameter").
type TemplateParam interface {
	Node
	templateParamNode()
}

// TemplateParamType is "typename|class [...] [ident] [= type]".
type TemplateParamType struct {
	Key     string // "typename" or "class"
	Pack    bool
	Ident   string
	Default *Type
}

func (*TemplateParamType) templateParamNode()     {}
func (n *TemplateParamType) Accept(v Visitor) any { return v.VisitTemplateParamType(n) }

// TemplateParamTemplateType is a template-template-parameter: a nested
// template-parameter-list followed by a TemplateParamType for the
// "typename"/"class"/identifier/default portion.
type TemplateParamTemplateType struct {
	Nested *TemplateParams
	Data   *TemplateParamType
}

func (*TemplateParamTemplateType) templateParamNode()     {}
func (n *TemplateParamTemplateType) Accept(v Visitor) any { return v.VisitTemplateParamTemplateType(n) }

// TemplateParamNonType is a non-type template parameter: a
// type-with-init or constrained-type-with-init, optionally a pack.
type TemplateParamNonType struct {
	Param TypeWithInitNode
	Pack  bool
}

func (*TemplateParamNonType) templateParamNode()     {}
func (n *TemplateParamNonType) Accept(v Visitor) any { return v.VisitTemplateParamNonType(n) }

// TemplateParams is a "template<...>" parameter list plus an optional
// trailing requires-clause.
type TemplateParams struct {
	Params         []TemplateParam
	RequiresClause *RequiresClause
}

func (n *TemplateParams) Accept(v Visitor) any { return v.VisitTemplateParams(n) }

// TemplateIntroductionParameter is one identifier in an abbreviated
// template-introduction, optionally a pack ("Ts...").
type TemplateIntroductionParameter struct {
	Ident string
	Pack  bool
}

func (n *TemplateIntroductionParameter) Accept(v Visitor) any {
	return v.VisitTemplateIntroductionParameter(n)
}

// TemplateIntroduction is the abbreviated concept-constrained template
// syntax, "ConceptName{Params...}".
type TemplateIntroduction struct {
	Concept *NestedName
	Params  []*TemplateIntroductionParameter
}

func (n *TemplateIntroduction) Accept(v Visitor) any { return v.VisitTemplateIntroduction(n) }

// TemplatePrefixEntry is implemented by *TemplateParams and
// *TemplateIntroduction: a single entry in a template-declaration-prefix.
type TemplatePrefixEntry interface {
	Node
	templatePrefixEntryNode()
}

func (*TemplateParams) templatePrefixEntryNode()        {}
func (*TemplateIntroduction) templatePrefixEntryNode()   {}

// TemplateDeclarationPrefix is the (possibly multi-level, for nested
// class templates) sequence of "template<...>" clauses preceding a
// declaration. A nil Entries with IsShorthand set marks the member
// full-specialization shorthand described in spec §4.10.
type TemplateDeclarationPrefix struct {
	Entries     []TemplatePrefixEntry
	IsShorthand bool
}

func (n *TemplateDeclarationPrefix) Accept(v Visitor) any { return v.VisitTemplateDeclarationPrefix(n) }
