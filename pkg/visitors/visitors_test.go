package visitors

import (
	"strings"
	"testing"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
)

func TestDumpRendersDeclarationTree(t *testing.T) {
	decl := &ast.Declaration{
		ObjectType: "member",
		Inner: &ast.TypeWithInit{
			Type: &ast.Type{
				DeclSpecs: &ast.DeclSpecs{
					Trailing: &ast.TrailingTypeSpecFundamental{Names: []string{"int"}, Canonical: []string{"int"}},
				},
				Declarator: &ast.DeclaratorPtr{
					Inner: &ast.DeclaratorNameParamQual{
						DeclID: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "x"}}}},
					},
				},
			},
		},
	}

	d := NewDump()
	decl.Accept(d)
	out := d.String()

	for _, want := range []string{"Declaration: object=member", "DeclaratorPtr:", "Fundamental: [int]", "NestedName: x"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDumpIndentsNestedChildren(t *testing.T) {
	decl := &ast.Declaration{
		ObjectType: "member",
		Inner: &ast.TypeWithInit{
			Type: &ast.Type{
				DeclSpecs: &ast.DeclSpecs{
					Trailing: &ast.TrailingTypeSpecFundamental{Names: []string{"int"}, Canonical: []string{"int"}},
				},
				Declarator: &ast.DeclaratorNameParamQual{
					DeclID: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "x"}}}},
				},
			},
		},
	}

	d := NewDump()
	decl.Accept(d)
	lines := strings.Split(strings.TrimRight(d.String(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatalf("expected non-empty dump output")
	}
	if strings.HasPrefix(lines[0], " ") {
		t.Errorf("expected the root line to have no leading indent, got %q", lines[0])
	}
	foundIndented := false
	for _, l := range lines[1:] {
		if strings.HasPrefix(l, "  ") {
			foundIndented = true
			break
		}
	}
	if !foundIndented {
		t.Errorf("expected at least one indented child line in:\n%s", d.String())
	}
}

func declWithFold(left, right ast.Expr) *ast.Declaration {
	return &ast.Declaration{
		ObjectType: "function",
		Inner: &ast.TypeWithInit{
			Type: &ast.Type{
				Declarator: &ast.DeclaratorNameParamQual{
					DeclID: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "f"}}}},
					ParamQual: &ast.ParametersAndQualifiers{
						Params: []*ast.Parameter{{
							Param: &ast.TypeWithInit{
								Type: &ast.Type{Declarator: &ast.DeclaratorNameParamQual{}},
								Init: &ast.Initializer{HasAssign: true, Value: &ast.FoldExpr{Left: left, Op: "+", Right: right}},
							},
						}},
					},
				},
			},
		},
	}
}

func TestCheckDeclarationAcceptsBinaryFoldWithBothOperands(t *testing.T) {
	c := CheckDeclaration(declWithFold(&ast.IDExpr{Name: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "a"}}}}}, &ast.IDExpr{Name: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "b"}}}}}))
	if c.HasErrors() {
		t.Errorf("expected a binary fold with both operands to pass, got errors: %v", c.Errors)
	}
}

func TestCheckDeclarationRejectsFoldWithNeitherOperand(t *testing.T) {
	c := CheckDeclaration(declWithFold(nil, nil))
	if !c.HasErrors() {
		t.Fatalf("expected an error for a fold expression with no operands")
	}
}

func TestCheckDeclarationRejectsNonTrailingEllipsisParameter(t *testing.T) {
	decl := &ast.Declaration{
		ObjectType: "function",
		Inner: &ast.TypeWithInit{
			Type: &ast.Type{
				Declarator: &ast.DeclaratorNameParamQual{
					DeclID: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "f"}}}},
					ParamQual: &ast.ParametersAndQualifiers{
						Params: []*ast.Parameter{
							{Ellipsis: true},
							{Param: &ast.TypeWithInit{Type: &ast.Type{Declarator: &ast.DeclaratorNameParamQual{}}}},
						},
					},
				},
			},
		},
	}
	c := CheckDeclaration(decl)
	if !c.HasErrors() {
		t.Fatalf("expected an error for an ellipsis parameter that isn't last")
	}
}

func TestCheckDeclarationRejectsBitFieldWithNoWidth(t *testing.T) {
	decl := &ast.Declaration{
		ObjectType: "member",
		Inner: &ast.TypeWithInit{
			Type: &ast.Type{
				Declarator: &ast.DeclaratorNameBitField{
					DeclID: &ast.NestedName{Elements: []*ast.NestedNameElement{{NameOrOp: &ast.Identifier{Name: "flag"}}}},
				},
			},
		},
	}
	c := CheckDeclaration(decl)
	if !c.HasErrors() {
		t.Fatalf("expected an error for a bit-field declarator missing its width")
	}
}

func TestCheckDeclarationTemplatePrefixConsistency(t *testing.T) {
	nameWithOneTemplatedSegment := &ast.NestedName{Elements: []*ast.NestedNameElement{
		{NameOrOp: &ast.Identifier{Name: "S"}, TemplateArgs: &ast.TemplateArgs{Args: []ast.TemplateArg{&ast.TemplateArgConstant{Value: &ast.NumberLiteral{Value: "1"}}}}},
	}}

	tooManyLevels := &ast.Declaration{
		ObjectType: "class",
		TemplatePrefix: &ast.TemplateDeclarationPrefix{Entries: []ast.TemplatePrefixEntry{
			&ast.TemplateParams{}, &ast.TemplateParams{}, &ast.TemplateParams{},
		}},
		Inner: &ast.Class{Name: nameWithOneTemplatedSegment},
	}
	c := CheckDeclaration(tooManyLevels)
	if !c.HasErrors() {
		t.Fatalf("expected an error: 3 template-parameter lists for a name with 1 templated segment")
	}

	justRight := &ast.Declaration{
		ObjectType: "class",
		TemplatePrefix: &ast.TemplateDeclarationPrefix{Entries: []ast.TemplatePrefixEntry{
			&ast.TemplateParams{},
		}},
		Inner: &ast.Class{Name: nameWithOneTemplatedSegment},
	}
	c = CheckDeclaration(justRight)
	if c.HasErrors() {
		t.Errorf("expected 1 template-parameter list for a name with 1 templated segment to pass, got %v", c.Errors)
	}

	tooFewLevelsButTolerated := &ast.Declaration{
		ObjectType:     "class",
		TemplatePrefix: &ast.TemplateDeclarationPrefix{Entries: []ast.TemplatePrefixEntry{&ast.TemplateParams{}}},
		Inner: &ast.Class{Name: &ast.NestedName{Elements: []*ast.NestedNameElement{
			{NameOrOp: &ast.Identifier{Name: "Outer"}, TemplateArgs: &ast.TemplateArgs{}},
			{NameOrOp: &ast.Identifier{Name: "Inner"}, TemplateArgs: &ast.TemplateArgs{}},
		}}},
	}
	c = CheckDeclaration(tooFewLevelsButTolerated)
	if c.HasErrors() {
		t.Errorf("expected more templated segments than parameter lists to warn, not error, got %v", c.Errors)
	}
	if len(c.Warnings) == 0 {
		t.Errorf("expected a warning for 2 templated segments with only 1 parameter list")
	}
}
