package visitors

import (
	"fmt"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
)

// CheckError is one invariant violation found by Checker.
type CheckError struct {
	Where   string
	Message string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %s", e.Where, e.Message)
}

// Checker walks a parsed tree and validates the structural invariants the
// parser's grammar alone does not enforce: ellipsis placement, fold-
// expression shape and template-prefix/template-argument consistency
// (spec §4.10's "_check_template_consistency" table). It never rejects
// anything the parser already accepted as a type error - those checks
// are out of scope (name resolution and type-checking are non-goals).
type Checker struct {
	ast.BaseVisitor

	Errors   []*CheckError
	Warnings []*CheckError
}

// NewChecker creates an empty Checker.
func NewChecker() *Checker {
	c := &Checker{}
	c.Self = c
	return c
}

// HasErrors reports whether any invariant violation was recorded.
func (c *Checker) HasErrors() bool {
	return len(c.Errors) > 0
}

func (c *Checker) addError(where, format string, args ...any) {
	c.Errors = append(c.Errors, &CheckError{Where: where, Message: fmt.Sprintf(format, args...)})
}

func (c *Checker) addWarning(where, format string, args ...any) {
	c.Warnings = append(c.Warnings, &CheckError{Where: where, Message: fmt.Sprintf(format, args...)})
}

// CheckDeclaration runs every invariant check over decl and returns a
// fresh Checker holding the results.
func CheckDeclaration(decl *ast.Declaration) *Checker {
	c := NewChecker()
	decl.Accept(c)
	c.checkTemplatePrefixConsistency(decl)
	return c
}

func (c *Checker) VisitParametersAndQualifiers(n *ast.ParametersAndQualifiers) any {
	for i, p := range n.Params {
		if p.Ellipsis && i != len(n.Params)-1 {
			c.addError("parameters-and-qualifiers", "ellipsis parameter must be last, found at index %d of %d", i, len(n.Params))
		}
	}
	return c.BaseVisitor.VisitParametersAndQualifiers(n)
}

func (c *Checker) VisitFoldExpr(n *ast.FoldExpr) any {
	if n.Left == nil && n.Right == nil {
		c.addError("fold-expression", "fold expression has neither a left nor a right operand")
	}
	return c.BaseVisitor.VisitFoldExpr(n)
}

func (c *Checker) VisitDeclaratorNameBitField(n *ast.DeclaratorNameBitField) any {
	if n.Size == nil {
		c.addError("bit-field", "bit-field declarator is missing its width expression")
	}
	return c.BaseVisitor.VisitDeclaratorNameBitField(n)
}

// checkTemplatePrefixConsistency applies the table from spec §4.10:
// counting how many segments of the declared name carry an explicit
// template-argument list (numArgs) against how many "template<...>"
// levels precede the declaration (numParams).
//
//   - numArgs+1 < numParams is always an error: too many template
//     parameter lists for too few templated name segments.
//   - numArgs > numParams is tolerated with a warning: the missing
//     leading levels are implicitly empty ("template<> template<>").
func (c *Checker) checkTemplatePrefixConsistency(decl *ast.Declaration) {
	if decl.TemplatePrefix == nil || decl.TemplatePrefix.IsShorthand {
		return
	}
	name := decl.Inner.DeclName()
	if name == nil {
		return
	}
	numArgs := 0
	for _, el := range name.Elements {
		if el.TemplateArgs != nil {
			numArgs++
		}
	}
	numParams := 0
	for _, e := range decl.TemplatePrefix.Entries {
		if _, ok := e.(*ast.TemplateParams); ok {
			numParams++
		}
	}
	if numParams == 0 {
		return
	}
	if numArgs+1 < numParams {
		c.addError("template-prefix", "too many template parameter lists (%d) for a name with %d templated segments", numParams, numArgs)
		return
	}
	if numArgs > numParams {
		c.addWarning("template-prefix", "name has %d templated segments but only %d template parameter lists precede it; assuming %d leading empty lists", numArgs, numParams, numArgs-numParams)
	}
}
