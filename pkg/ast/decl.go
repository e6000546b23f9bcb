package ast

// DeclarationInner is implemented by every node that can sit inside a
// Declaration: its shape depends on the declaration's ObjectType (spec
// §4.11 "parse_declaration"'s per-kind dispatch). DeclName lets the
// template-prefix consistency check (spec §4.10) find how many of the
// declared name's segments are themselves templated, regardless of kind.
type DeclarationInner interface {
	Node
	declarationInnerNode()
	DeclName() *NestedName
}

func (*Type) declarationInnerNode() {}

// DeclName on *TypeWithInit drills into the wrapped Type.
func (n *TypeWithInit) DeclName() *NestedName {
	if n.Type == nil {
		return nil
	}
	return n.Type.DeclName()
}

func (*TypeWithInit) declarationInnerNode() {}

// BaseClass is one entry of a class's base-clause.
type BaseClass struct {
	Name       *NestedName
	Visibility string // "", "public", "protected", "private"
	Virtual    bool
	Pack       bool
}

func (n *BaseClass) Accept(v Visitor) any { return v.VisitBaseClass(n) }

// Class is a class/struct declaration.
type Class struct {
	Name  *NestedName
	Final bool
	Bases []*BaseClass
	Attrs *AttributeList
}

func (*Class) declarationInnerNode()     {}
func (n *Class) DeclName() *NestedName    { return n.Name }
func (n *Class) Accept(v Visitor) any     { return v.VisitClass(n) }

// Union is a union declaration.
type Union struct {
	Name  *NestedName
	Attrs *AttributeList
}

func (*Union) declarationInnerNode()  {}
func (n *Union) DeclName() *NestedName { return n.Name }
func (n *Union) Accept(v Visitor) any  { return v.VisitUnion(n) }

// Enum is an enum declaration, scoped ("enum class"/"enum struct") or
// unscoped, with an optional fixed underlying type.
type Enum struct {
	Name           *NestedName
	Scoped         string // "", "class", "struct"
	UnderlyingType *Type
	Attrs          *AttributeList
}

func (*Enum) declarationInnerNode()  {}
func (n *Enum) DeclName() *NestedName { return n.Name }
func (n *Enum) Accept(v Visitor) any  { return v.VisitEnum(n) }

// Enumerator is one "name [= value]" entry of an enum's body.
type Enumerator struct {
	Name  *NestedName
	Init  *Initializer
	Attrs *AttributeList
}

func (*Enumerator) declarationInnerNode()  {}
func (n *Enumerator) DeclName() *NestedName { return n.Name }
func (n *Enumerator) Accept(v Visitor) any  { return v.VisitEnumerator(n) }

// TypeUsing is a "using Name = Type;" alias declaration.
type TypeUsing struct {
	Name         *NestedName
	AssignedType *Type // nil for a using-declaration with no alias
}

func (*TypeUsing) declarationInnerNode()  {}
func (n *TypeUsing) DeclName() *NestedName { return n.Name }
func (n *TypeUsing) Accept(v Visitor) any  { return v.VisitTypeUsing(n) }

// Concept is a "concept Name = constraint-expression;" declaration.
type Concept struct {
	Name *NestedName
	Init *Initializer
}

func (*Concept) declarationInnerNode()  {}
func (n *Concept) DeclName() *NestedName { return n.Name }
func (n *Concept) Accept(v Visitor) any  { return v.VisitConcept(n) }

// Namespace is a "namespace Name" declaration, or the shorthand form of
// a cross-reference target, which carries its own optional template
// prefix (spec §4.11 "parse_namespace_object"/"parse_xref_object").
type Namespace struct {
	Name           *NestedName
	TemplatePrefix *TemplateDeclarationPrefix
}

func (*Namespace) declarationInnerNode()  {}
func (n *Namespace) DeclName() *NestedName { return n.Name }
func (n *Namespace) Accept(v Visitor) any  { return v.VisitNamespace(n) }

// Declaration is the top-level parse result: an object-kind tag, a
// directive-kind tag (the more specific spelling the surrounding
// directive was written with, e.g. "struct" or "enum-class" for an
// objectType of "class"/"enum"), an optional member-visibility label,
// an optional template-declaration prefix, the kind-specific inner
// node, and an optional trailing requires-clause (spec §3 "Top-level
// nodes").
type Declaration struct {
	ObjectType             string // "type", "concept", "member", "function", "class", "union", "enum", "enumerator", "namespace", "type_using"
	DirectiveKind          string // "class", "struct", "union", "function", "member", "var", "type", "concept", "enum", "enum-struct", "enum-class", "enumerator"
	Visibility             string // "", "public", "protected", "private"
	TemplatePrefix         *TemplateDeclarationPrefix
	Inner                  DeclarationInner
	TrailingRequiresClause *RequiresClause
	TrailingSemicolon      bool
}

func (n *Declaration) Accept(v Visitor) any { return v.VisitDeclaration(n) }
