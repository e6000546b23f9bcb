// Package visitors collects ast.Visitor implementations used for
// debugging and for the invariant checks that run over a parsed
// declaration (spec §4, §8).
package visitors

import (
	"fmt"
	"strings"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
)

// Dump renders a parsed tree as an indented, human-readable listing. It
// embeds ast.BaseVisitor so unhandled node kinds still traverse instead
// of panicking, grounded on the teacher's DebugPrinter.
type Dump struct {
	ast.BaseVisitor

	output strings.Builder
	indent int
}

// NewDump creates an empty Dump visitor.
func NewDump() *Dump {
	d := &Dump{}
	d.Self = d
	return d
}

// String returns the accumulated output.
func (d *Dump) String() string {
	return d.output.String()
}

func (d *Dump) print(format string, args ...any) {
	d.output.WriteString(strings.Repeat("  ", d.indent))
	fmt.Fprintf(&d.output, format, args...)
	d.output.WriteString("\n")
}

func (d *Dump) child(n ast.Node) {
	d.indent++
	n.Accept(d)
	d.indent--
}

func (d *Dump) VisitDeclaration(n *ast.Declaration) any {
	d.print("Declaration: object=%s directive=%s visibility=%s", n.ObjectType, n.DirectiveKind, n.Visibility)
	if n.TemplatePrefix != nil {
		d.child(n.TemplatePrefix)
	}
	if n.Inner != nil {
		d.child(n.Inner)
	}
	if n.TrailingRequiresClause != nil {
		d.child(n.TrailingRequiresClause)
	}
	return nil
}

func (d *Dump) VisitType(n *ast.Type) any {
	d.print("Type:")
	if n.DeclSpecs != nil {
		d.child(n.DeclSpecs)
	}
	if n.Declarator != nil {
		d.child(n.Declarator)
	}
	return nil
}

func (d *Dump) VisitDeclSpecs(n *ast.DeclSpecs) any {
	d.print("DeclSpecs: outer=%s", n.Outer)
	if n.LeftSpecs != nil {
		d.child(n.LeftSpecs)
	}
	if n.Trailing != nil {
		d.child(n.Trailing)
	}
	if n.RightSpecs != nil {
		d.child(n.RightSpecs)
	}
	return nil
}

func (d *Dump) VisitDeclSpecsSimple(n *ast.DeclSpecsSimple) any {
	d.print("DeclSpecsSimple: storage=%q const=%v volatile=%v inline=%v virtual=%v constexpr=%v", n.Storage, n.Const, n.Volatile, n.Inline, n.Virtual, n.Constexpr)
	return nil
}

func (d *Dump) VisitTrailingTypeSpecFundamental(n *ast.TrailingTypeSpecFundamental) any {
	d.print("Fundamental: %v (canonical %v)", n.Names, n.Canonical)
	return nil
}

func (d *Dump) VisitTrailingTypeSpecName(n *ast.TrailingTypeSpecName) any {
	d.print("TrailingTypeSpecName: prefix=%q placeholder=%q", n.Prefix, n.Placeholder)
	if n.Name != nil {
		d.child(n.Name)
	}
	return nil
}

func (d *Dump) VisitTrailingTypeSpecDecltype(n *ast.TrailingTypeSpecDecltype) any {
	d.print("decltype(...)")
	d.child(n.Expr)
	return nil
}

func (d *Dump) VisitTrailingTypeSpecDecltypeAuto(n *ast.TrailingTypeSpecDecltypeAuto) any {
	d.print("decltype(auto)")
	return nil
}

func (d *Dump) VisitNestedName(n *ast.NestedName) any {
	parts := make([]string, 0, len(n.Elements))
	for _, el := range n.Elements {
		parts = append(parts, nameOrOperatorText(el.NameOrOp))
	}
	prefix := ""
	if n.Rooted {
		prefix = "::"
	}
	d.print("NestedName: %s%s", prefix, strings.Join(parts, "::"))
	return nil
}

func nameOrOperatorText(n ast.NameOrOperator) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.OperatorBuiltin:
		return "operator" + v.Token
	case *ast.OperatorLiteral:
		return `operator""` + v.Suffix
	case *ast.OperatorConversion:
		return "operator <conversion>"
	default:
		return "<?>"
	}
}

func (d *Dump) VisitDeclaratorNameParamQual(n *ast.DeclaratorNameParamQual) any {
	d.print("DeclaratorNameParamQual: arrayOps=%d hasParams=%v", len(n.ArrayOps), n.ParamQual != nil)
	if n.DeclID != nil {
		d.child(n.DeclID)
	}
	return nil
}

func (d *Dump) VisitDeclaratorPtr(n *ast.DeclaratorPtr) any {
	d.print("DeclaratorPtr: const=%v volatile=%v", n.Const, n.Volatile)
	if n.Inner != nil {
		d.child(n.Inner)
	}
	return nil
}

func (d *Dump) VisitDeclaratorRef(n *ast.DeclaratorRef) any {
	d.print("DeclaratorRef:")
	if n.Inner != nil {
		d.child(n.Inner)
	}
	return nil
}

func (d *Dump) VisitClass(n *ast.Class) any {
	d.print("Class: final=%v bases=%d", n.Final, len(n.Bases))
	if n.Name != nil {
		d.child(n.Name)
	}
	return nil
}

func (d *Dump) VisitEnum(n *ast.Enum) any {
	d.print("Enum: scoped=%q", n.Scoped)
	if n.Name != nil {
		d.child(n.Name)
	}
	return nil
}

func (d *Dump) VisitNumberLiteral(n *ast.NumberLiteral) any {
	d.print("NumberLiteral: %s", n.Value)
	return nil
}

func (d *Dump) VisitStringLiteral(n *ast.StringLiteral) any {
	d.print("StringLiteral: %s", n.Value)
	return nil
}

func (d *Dump) VisitIDExpr(n *ast.IDExpr) any {
	d.print("IDExpr:")
	if n.Name != nil {
		d.child(n.Name)
	}
	return nil
}

func (d *Dump) VisitBinOpExpr(n *ast.BinOpExpr) any {
	d.print("BinOpExpr: ops=%v", n.Ops)
	for _, e := range n.Exprs {
		d.child(e)
	}
	return nil
}

func (d *Dump) VisitFallbackExpr(n *ast.FallbackExpr) any {
	d.print("FallbackExpr: %q", n.Text)
	return nil
}
