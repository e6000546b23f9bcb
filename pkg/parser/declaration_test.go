package parser

import (
	"testing"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
	"github.com/gaarutyunov/cppdecl/pkg/visitors"
)

func declName(t *testing.T, n *ast.NestedName) string {
	t.Helper()
	if n == nil || len(n.Elements) == 0 {
		t.Fatalf("expected a non-empty nested name")
	}
	id, ok := n.Elements[len(n.Elements)-1].NameOrOp.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected the last nested-name element to be a plain identifier, got %T", n.Elements[len(n.Elements)-1].NameOrOp)
	}
	return id.Name
}

// Scenario 1: int main(int argc, char *argv[])
func TestParseDeclarationFunctionWithArrayParam(t *testing.T) {
	p := New(nil)
	decl, err := p.ParseDeclaration("int main(int argc, char *argv[])", "function", "function")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}

	twi, ok := decl.Inner.(*ast.TypeWithInit)
	if !ok {
		t.Fatalf("expected *ast.TypeWithInit inner, got %T", decl.Inner)
	}

	trailing, ok := twi.Type.DeclSpecs.Trailing.(*ast.TrailingTypeSpecFundamental)
	if !ok {
		t.Fatalf("expected a fundamental trailing type-spec, got %T", twi.Type.DeclSpecs.Trailing)
	}
	if len(trailing.Canonical) != 1 || trailing.Canonical[0] != "int" {
		t.Errorf("expected canonical [int], got %v", trailing.Canonical)
	}

	decltor, ok := twi.Type.Declarator.(*ast.DeclaratorNameParamQual)
	if !ok {
		t.Fatalf("expected *ast.DeclaratorNameParamQual declarator, got %T", twi.Type.Declarator)
	}
	if declName(t, decltor.DeclID) != "main" {
		t.Errorf("expected declarator name 'main', got %q", declName(t, decltor.DeclID))
	}
	if decltor.ParamQual == nil || len(decltor.ParamQual.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %v", decltor.ParamQual)
	}

	argv := decltor.ParamQual.Params[1]
	ptr, ok := argv.Param.Type.Declarator.(*ast.DeclaratorPtr)
	if !ok {
		t.Fatalf("expected argv's declarator to be a pointer, got %T", argv.Param.Type.Declarator)
	}
	leaf, ok := ptr.Inner.(*ast.DeclaratorNameParamQual)
	if !ok {
		t.Fatalf("expected the pointer's inner declarator to be a name, got %T", ptr.Inner)
	}
	if declName(t, leaf.DeclID) != "argv" {
		t.Errorf("expected declarator name 'argv', got %q", declName(t, leaf.DeclID))
	}
	if len(leaf.ArrayOps) != 1 || leaf.ArrayOps[0].Size != nil {
		t.Errorf("expected one array-op with a nil size, got %v", leaf.ArrayOps)
	}
}

// Scenario 2: template<typename T, int N = 42> class Array final : public Base<T>
func TestParseDeclarationTemplateClassWithBase(t *testing.T) {
	p := New(nil)
	decl, err := p.ParseDeclaration("template<typename T, int N = 42> class Array final : public Base<T>", "class", "class")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}

	if decl.TemplatePrefix == nil || len(decl.TemplatePrefix.Entries) != 1 {
		t.Fatalf("expected exactly one template-prefix entry, got %v", decl.TemplatePrefix)
	}
	params, ok := decl.TemplatePrefix.Entries[0].(*ast.TemplateParams)
	if !ok {
		t.Fatalf("expected a *ast.TemplateParams entry, got %T", decl.TemplatePrefix.Entries[0])
	}
	if len(params.Params) != 2 {
		t.Fatalf("expected 2 template parameters, got %d", len(params.Params))
	}

	tparam, ok := params.Params[0].(*ast.TemplateParamType)
	if !ok {
		t.Fatalf("expected the first template parameter to be a type parameter, got %T", params.Params[0])
	}
	if tparam.Key != "typename" || tparam.Ident != "T" {
		t.Errorf("expected 'typename T', got key=%q ident=%q", tparam.Key, tparam.Ident)
	}

	nparam, ok := params.Params[1].(*ast.TemplateParamNonType)
	if !ok {
		t.Fatalf("expected the second template parameter to be a non-type parameter, got %T", params.Params[1])
	}
	twi, ok := nparam.Param.(*ast.TypeWithInit)
	if !ok {
		t.Fatalf("expected a *ast.TypeWithInit non-type parameter, got %T", nparam.Param)
	}
	if declName(t, twi.Type.DeclName()) != "N" {
		t.Errorf("expected non-type parameter name 'N', got %q", declName(t, twi.Type.DeclName()))
	}
	if twi.Init == nil {
		t.Fatalf("expected a default value for N")
	}
	num, ok := twi.Init.Value.(*ast.NumberLiteral)
	if !ok || num.Value != "42" {
		t.Errorf("expected default value 42, got %#v", twi.Init.Value)
	}

	cls, ok := decl.Inner.(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class inner, got %T", decl.Inner)
	}
	if declName(t, cls.Name) != "Array" {
		t.Errorf("expected class name 'Array', got %q", declName(t, cls.Name))
	}
	if !cls.Final {
		t.Errorf("expected final=true")
	}
	if len(cls.Bases) != 1 {
		t.Fatalf("expected 1 base class, got %d", len(cls.Bases))
	}
	base := cls.Bases[0]
	if base.Visibility != "public" || base.Virtual || base.Pack {
		t.Errorf("expected public, non-virtual, non-pack base, got %+v", base)
	}
	if declName(t, base.Name) != "Base" {
		t.Errorf("expected base name 'Base', got %q", declName(t, base.Name))
	}
}

// Scenario 3: operator""_km as function/function
func TestParseDeclarationUserDefinedLiteralOperator(t *testing.T) {
	p := New(nil)
	decl, err := p.ParseDeclaration(`operator""_km`, "function", "function")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}
	name := decl.Inner.DeclName()
	if name == nil || len(name.Elements) == 0 {
		t.Fatalf("expected a declared name")
	}
	lit, ok := name.Elements[len(name.Elements)-1].NameOrOp.(*ast.OperatorLiteral)
	if !ok {
		t.Fatalf("expected an operator-literal name, got %T", name.Elements[len(name.Elements)-1].NameOrOp)
	}
	if lit.Suffix != "_km" {
		t.Errorf("expected suffix '_km', got %q", lit.Suffix)
	}
}

// Scenario 4: (a + ... + b) as an expression
func TestParseExpressionBinaryFold(t *testing.T) {
	p := New(nil)
	expr, err := p.ParseExpression("(a + ... + b)")
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}
	fold, ok := expr.(*ast.FoldExpr)
	if !ok {
		t.Fatalf("expected *ast.FoldExpr, got %T", expr)
	}
	if fold.Op != "+" {
		t.Errorf("expected fold operator '+', got %q", fold.Op)
	}
	if fold.Left == nil || fold.Right == nil {
		t.Fatalf("expected a binary fold to carry both operands, got left=%v right=%v", fold.Left, fold.Right)
	}
	if declName(t, fold.Left.(*ast.IDExpr).Name) != "a" {
		t.Errorf("expected left operand 'a'")
	}
	if declName(t, fold.Right.(*ast.IDExpr).Name) != "b" {
		t.Errorf("expected right operand 'b'")
	}
}

// Scenario 5: decltype(auto) f() -> int
func TestParseDeclarationTrailingReturnType(t *testing.T) {
	p := New(nil)
	decl, err := p.ParseDeclaration("decltype(auto) f() -> int", "function", "function")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}
	twi := decl.Inner.(*ast.TypeWithInit)
	if _, ok := twi.Type.DeclSpecs.Trailing.(*ast.TrailingTypeSpecDecltypeAuto); !ok {
		t.Fatalf("expected decltype(auto) trailing type-spec, got %T", twi.Type.DeclSpecs.Trailing)
	}
	decltor := twi.Type.Declarator.(*ast.DeclaratorNameParamQual)
	if declName(t, decltor.DeclID) != "f" {
		t.Errorf("expected declarator name 'f', got %q", declName(t, decltor.DeclID))
	}
	if decltor.ParamQual == nil || len(decltor.ParamQual.Params) != 0 {
		t.Fatalf("expected an empty parameter list, got %v", decltor.ParamQual)
	}
	ret, ok := decltor.ParamQual.TrailingReturn.DeclSpecs.Trailing.(*ast.TrailingTypeSpecFundamental)
	if !ok || len(ret.Canonical) != 1 || ret.Canonical[0] != "int" {
		t.Errorf("expected trailing return type 'int', got %#v", decltor.ParamQual.TrailingReturn)
	}
}

// Scenario 6: template<> struct S<int> as class/struct
func TestParseDeclarationExplicitSpecialization(t *testing.T) {
	p := New(nil)
	decl, err := p.ParseDeclaration("template<> struct S<int>", "class", "struct")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}
	if len(decl.TemplatePrefix.Entries) != 1 {
		t.Fatalf("expected 1 template-prefix entry, got %d", len(decl.TemplatePrefix.Entries))
	}
	params := decl.TemplatePrefix.Entries[0].(*ast.TemplateParams)
	if len(params.Params) != 0 {
		t.Errorf("expected an empty template-parameter list, got %d", len(params.Params))
	}

	cls := decl.Inner.(*ast.Class)
	if len(cls.Name.Elements) != 1 {
		t.Fatalf("expected 1 nested-name element, got %d", len(cls.Name.Elements))
	}
	el := cls.Name.Elements[0]
	if el.TemplateArgs == nil || len(el.TemplateArgs.Args) != 1 {
		t.Fatalf("expected 1 template argument, got %v", el.TemplateArgs)
	}

	checker := visitors.CheckDeclaration(decl)
	if checker.HasErrors() {
		t.Errorf("expected the explicit specialization to pass consistency checking, got errors: %v", checker.Errors)
	}
}

// Boundary: foo<> parses as a nested name with an empty template-args node.
func TestParseExpressionEmptyTemplateArgList(t *testing.T) {
	p := New(nil)
	expr, err := p.ParseExpression("foo<>")
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}
	id, ok := expr.(*ast.IDExpr)
	if !ok {
		t.Fatalf("expected *ast.IDExpr, got %T", expr)
	}
	el := id.Name.Elements[len(id.Name.Elements)-1]
	if el.TemplateArgs == nil {
		t.Fatalf("expected a non-nil, empty template-args node")
	}
	if len(el.TemplateArgs.Args) != 0 || el.TemplateArgs.PackExpansion {
		t.Errorf("expected an empty, non-pack-expansion template-args node, got %+v", el.TemplateArgs)
	}
}

// Boundary: trailing comma in a braced-init-list is preserved as a flag.
func TestParseExpressionBracedInitListTrailingComma(t *testing.T) {
	p := New(nil)
	expr, err := p.ParseExpression("{1, 2,}")
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}
	list, ok := expr.(*ast.BracedInitList)
	if !ok {
		t.Fatalf("expected *ast.BracedInitList, got %T", expr)
	}
	if !list.TrailingComma {
		t.Errorf("expected TrailingComma to be true")
	}
	if len(list.Exprs) != 2 {
		t.Errorf("expected 2 elements, got %d", len(list.Exprs))
	}
}

// Boundary: ::new and ::delete set the rooted flag.
func TestParseExpressionRootedNewAndDelete(t *testing.T) {
	p := New(nil)

	newExpr, err := p.ParseExpression("::new int")
	if err != nil {
		t.Fatalf("ParseExpression(new) failed: %v", err)
	}
	n, ok := newExpr.(*ast.NewExpr)
	if !ok {
		t.Fatalf("expected *ast.NewExpr, got %T", newExpr)
	}
	if !n.Rooted {
		t.Errorf("expected Rooted=true for '::new'")
	}

	delExpr, err := p.ParseExpression("::delete p")
	if err != nil {
		t.Fatalf("ParseExpression(delete) failed: %v", err)
	}
	d, ok := delExpr.(*ast.DeleteExpr)
	if !ok {
		t.Fatalf("expected *ast.DeleteExpr, got %T", delExpr)
	}
	if !d.Rooted {
		t.Errorf("expected Rooted=true for '::delete'")
	}
}

// Canonical fundamental types: permutation of tokens yields the same
// canonical sequence.
func TestCanonicalFundamentalTypeInvariantUnderPermutation(t *testing.T) {
	p := New(nil)
	a, err := p.ParseDeclaration("unsigned long long x", "member", "member")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}
	b, err := p.ParseDeclaration("long unsigned long x", "member", "member")
	if err != nil {
		t.Fatalf("ParseDeclaration failed: %v", err)
	}

	canonOf := func(d *ast.Declaration) []string {
		twi := d.Inner.(*ast.TypeWithInit)
		return twi.Type.DeclSpecs.Trailing.(*ast.TrailingTypeSpecFundamental).Canonical
	}
	ca, cb := canonOf(a), canonOf(b)
	if len(ca) != len(cb) {
		t.Fatalf("expected matching canonical lengths, got %v vs %v", ca, cb)
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Errorf("expected identical canonical sequences, got %v vs %v", ca, cb)
		}
	}
}

// Rewind safety: when every alternative fails on malformed input, the
// parse returns an error rather than a partial result.
func TestParseDeclarationRejectsMalformedInput(t *testing.T) {
	p := New(nil)
	if _, err := p.ParseDeclaration("int ???", "function", "function"); err == nil {
		t.Fatalf("expected a parse error for malformed input")
	}
}

