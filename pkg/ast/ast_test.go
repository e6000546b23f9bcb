package ast

import "testing"

func name(s string) *NestedName {
	return &NestedName{Elements: []*NestedNameElement{{NameOrOp: &Identifier{Name: s}}}}
}

func TestDeclNameDrillsThroughWrapperDeclarators(t *testing.T) {
	leaf := &DeclaratorNameParamQual{DeclID: name("x")}
	wrapped := &DeclaratorRef{Inner: &DeclaratorPtr{Inner: &DeclaratorParamPack{Inner: leaf}}}

	got := wrapped.DeclName()
	if got == nil || got.Elements[0].NameOrOp.(*Identifier).Name != "x" {
		t.Fatalf("expected DeclName to drill through Ref/Ptr/ParamPack to %q, got %v", "x", got)
	}
}

func TestDeclNameDrillsThroughParenDeclaratorToInnerNotNext(t *testing.T) {
	// "(*p)[3]": Inner names p, Next carries the trailing array-op with no
	// name of its own - DeclName must come from Inner.
	paren := &DeclaratorParen{
		Inner: &DeclaratorPtr{Inner: &DeclaratorNameParamQual{DeclID: name("p")}},
		Next:  &DeclaratorNameParamQual{ArrayOps: []*ArrayOp{{}}},
	}
	got := paren.DeclName()
	if got == nil || got.Elements[0].NameOrOp.(*Identifier).Name != "p" {
		t.Fatalf("expected DeclName %q from Inner, got %v", "p", got)
	}
}

func TestDeclNameOnAbstractDeclaratorIsNil(t *testing.T) {
	typ := &Type{Declarator: nil}
	if got := typ.DeclName(); got != nil {
		t.Errorf("expected a nil declarator to yield a nil DeclName, got %v", got)
	}
}

func TestTypeWithInitDeclNameDelegatesToType(t *testing.T) {
	twi := &TypeWithInit{Type: &Type{Declarator: &DeclaratorNameParamQual{DeclID: name("y")}}}
	got := twi.DeclName()
	if got == nil || got.Elements[0].NameOrOp.(*Identifier).Name != "y" {
		t.Fatalf("expected DeclName %q, got %v", "y", got)
	}
	if (&TypeWithInit{}).DeclName() != nil {
		t.Errorf("expected a nil Type to yield a nil DeclName")
	}
}

// countingVisitor counts how many NestedName leaves it reaches, to check
// that default BaseVisitor traversal actually walks the whole tree.
type countingVisitor struct {
	BaseVisitor
	names int
}

func newCountingVisitor() *countingVisitor {
	v := &countingVisitor{}
	v.Self = v
	return v
}

func (v *countingVisitor) VisitNestedName(n *NestedName) any {
	v.names++
	return v.BaseVisitor.VisitNestedName(n)
}

func TestBaseVisitorDefaultTraversalReachesNestedNamesAtEveryDepth(t *testing.T) {
	decl := &Declaration{
		ObjectType: "function",
		Inner: &TypeWithInit{
			Type: &Type{
				Declarator: &DeclaratorPtr{Inner: &DeclaratorNameParamQual{
					DeclID: name("f"),
					ParamQual: &ParametersAndQualifiers{
						Params: []*Parameter{{
							Param: &TypeWithInit{
								Type: &Type{Declarator: &DeclaratorNameParamQual{DeclID: name("argc")}},
							},
						}},
					},
				}},
			},
		},
	}

	v := newCountingVisitor()
	decl.Accept(v)

	if v.names != 2 {
		t.Fatalf("expected default traversal to reach both the function name and the parameter name (2 NestedName nodes), got %d", v.names)
	}
}

// partialOverrideVisitor exercises the Self-dispatch fix directly: it
// overrides only VisitIdentifier, several unoverridden node kinds sit
// between Declaration and it, and it must still fire.
type partialOverrideVisitor struct {
	BaseVisitor
	seen []string
}

func newPartialOverrideVisitor() *partialOverrideVisitor {
	v := &partialOverrideVisitor{}
	v.Self = v
	return v
}

func (v *partialOverrideVisitor) VisitIdentifier(n *Identifier) any {
	v.seen = append(v.seen, n.Name)
	return nil
}

func TestBaseVisitorSelfDispatchReachesOverrideBehindUnoverriddenAncestors(t *testing.T) {
	decl := &Declaration{
		ObjectType: "function",
		Inner: &TypeWithInit{
			Type: &Type{Declarator: &DeclaratorNameParamQual{DeclID: name("f")}},
		},
	}

	v := newPartialOverrideVisitor()
	decl.Accept(v)

	if len(v.seen) != 1 || v.seen[0] != "f" {
		t.Fatalf("expected the identifier override to fire exactly once with %q, got %v", "f", v.seen)
	}
}

func TestBaseVisitorWithoutSelfStillTraversesUsingItself(t *testing.T) {
	// A bare BaseVisitor (Self left nil) must still be usable directly:
	// self() falls back to the receiver itself.
	b := &BaseVisitor{}
	decl := &Declaration{
		Inner: &TypeWithInit{
			Type: &Type{Declarator: &DeclaratorNameParamQual{DeclID: name("z")}},
		},
	}
	if got := decl.Accept(b); got != nil {
		t.Errorf("expected BaseVisitor's default Visit methods to return nil, got %v", got)
	}
}
