package ast

// BaseVisitor provides a default depth-first traversal for every node
// type. Embed it and override only the Visit methods a particular
// consumer cares about; unoverridden nodes still have their children
// visited.
//
// Embedding alone is not enough to make overrides reachable: a promoted,
// unoverridden method like VisitDeclaration runs with its receiver bound
// to the embedded BaseVisitor, not the outer type, so without Self its
// own Accept calls would recurse on the base behavior forever, skipping
// any override the embedder defines further down the tree. Embedders
// must set Self to themselves after construction so descent keeps
// reaching their overrides.
type BaseVisitor struct {
	Self Visitor
}

var _ Visitor = (*BaseVisitor)(nil)

// self returns the outer visitor that descent should recurse through,
// falling back to the BaseVisitor itself when Self was never set.
func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

// Expressions

func (b *BaseVisitor) VisitNumberLiteral(n *NumberLiteral) any   { return nil }
func (b *BaseVisitor) VisitStringLiteral(n *StringLiteral) any   { return nil }
func (b *BaseVisitor) VisitCharLiteral(n *CharLiteral) any       { return nil }
func (b *BaseVisitor) VisitBoolLiteral(n *BoolLiteral) any       { return nil }
func (b *BaseVisitor) VisitNullptrLiteral(n *NullptrLiteral) any { return nil }
func (b *BaseVisitor) VisitThisExpr(n *ThisExpr) any             { return nil }

func (b *BaseVisitor) VisitUserDefinedLiteral(n *UserDefinedLiteral) any {
	if n.Literal != nil {
		n.Literal.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitIDExpr(n *IDExpr) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitParenExpr(n *ParenExpr) any {
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitBracedInitList(n *BracedInitList) any {
	for _, e := range n.Exprs {
		e.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitParenExprList(n *ParenExprList) any {
	for _, e := range n.Exprs {
		e.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitFoldExpr(n *FoldExpr) any {
	if n.Left != nil {
		n.Left.Accept(b.self())
	}
	if n.Right != nil {
		n.Right.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitUnaryExpr(n *UnaryExpr) any {
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitCastExpr(n *CastExpr) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitBinOpExpr(n *BinOpExpr) any {
	for _, e := range n.Exprs {
		e.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitConditionalExpr(n *ConditionalExpr) any {
	if n.Cond != nil {
		n.Cond.Accept(b.self())
	}
	if n.Then != nil {
		n.Then.Accept(b.self())
	}
	if n.Else != nil {
		n.Else.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitAssignmentExpr(n *AssignmentExpr) any {
	if n.LHS != nil {
		n.LHS.Accept(b.self())
	}
	if n.RHS != nil {
		n.RHS.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitCommaExpr(n *CommaExpr) any {
	for _, e := range n.Exprs {
		e.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPostfixExpr(n *PostfixExpr) any {
	if n.Prefix != nil {
		n.Prefix.Accept(b.self())
	}
	for _, op := range n.Ops {
		op.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPostfixArray(n *PostfixArray) any {
	if n.Index != nil {
		n.Index.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPostfixCall(n *PostfixCall) any {
	if n.Args != nil {
		n.Args.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPostfixMember(n *PostfixMember) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPostfixArrow(n *PostfixArrow) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPostfixInc(n *PostfixInc) any { return nil }
func (b *BaseVisitor) VisitPostfixDec(n *PostfixDec) any { return nil }

func (b *BaseVisitor) VisitSizeofExpr(n *SizeofExpr) any {
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitSizeofType(n *SizeofType) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitSizeofParamPack(n *SizeofParamPack) any { return nil }

func (b *BaseVisitor) VisitAlignofExpr(n *AlignofExpr) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitNoexceptExpr(n *NoexceptExpr) any {
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTypeidExpr(n *TypeidExpr) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitExplicitCastExpr(n *ExplicitCastExpr) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitNewExpr(n *NewExpr) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	if n.Init != nil {
		n.Init.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeleteExpr(n *DeleteExpr) any {
	if n.Operand != nil {
		n.Operand.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitPackExpansionExpr(n *PackExpansionExpr) any {
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitFallbackExpr(n *FallbackExpr) any { return nil }

// Names

func (b *BaseVisitor) VisitIdentifier(n *Identifier) any { return nil }

func (b *BaseVisitor) VisitOperatorBuiltin(n *OperatorBuiltin) any { return nil }

func (b *BaseVisitor) VisitOperatorConversion(n *OperatorConversion) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitOperatorLiteral(n *OperatorLiteral) any { return nil }

func (b *BaseVisitor) VisitTemplateArgConstant(n *TemplateArgConstant) any {
	if n.Value != nil {
		n.Value.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateArgs(n *TemplateArgs) any {
	for _, a := range n.Args {
		a.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitNestedNameElement(n *NestedNameElement) any {
	if n.NameOrOp != nil {
		n.NameOrOp.Accept(b.self())
	}
	if n.TemplateArgs != nil {
		n.TemplateArgs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitNestedName(n *NestedName) any {
	for _, e := range n.Elements {
		e.Accept(b.self())
	}
	return nil
}

// Types and declarators

func (b *BaseVisitor) VisitAttribute(n *Attribute) any { return nil }

func (b *BaseVisitor) VisitAttributeList(n *AttributeList) any {
	for _, a := range n.Attrs {
		a.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitExplicitSpec(n *ExplicitSpec) any {
	if n.Expr != nil {
		n.Expr.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclSpecsSimple(n *DeclSpecsSimple) any {
	if n.Explicit != nil {
		n.Explicit.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTrailingTypeSpecFundamental(n *TrailingTypeSpecFundamental) any {
	return nil
}

func (b *BaseVisitor) VisitTrailingTypeSpecDecltype(n *TrailingTypeSpecDecltype) any {
	if n.Expr != nil {
		n.Expr.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTrailingTypeSpecDecltypeAuto(n *TrailingTypeSpecDecltypeAuto) any {
	return nil
}

func (b *BaseVisitor) VisitTrailingTypeSpecName(n *TrailingTypeSpecName) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclSpecs(n *DeclSpecs) any {
	if n.LeftSpecs != nil {
		n.LeftSpecs.Accept(b.self())
	}
	if n.Trailing != nil {
		n.Trailing.Accept(b.self())
	}
	if n.RightSpecs != nil {
		n.RightSpecs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitArrayOp(n *ArrayOp) any {
	if n.Size != nil {
		n.Size.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitNoexceptSpec(n *NoexceptSpec) any {
	if n.Expr != nil {
		n.Expr.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitParametersAndQualifiers(n *ParametersAndQualifiers) any {
	for _, p := range n.Params {
		p.Accept(b.self())
	}
	if n.Except != nil {
		n.Except.Accept(b.self())
	}
	if n.TrailingReturn != nil {
		n.TrailingReturn.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorPtr(n *DeclaratorPtr) any {
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorRef(n *DeclaratorRef) any {
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorParamPack(n *DeclaratorParamPack) any {
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorParen(n *DeclaratorParen) any {
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	if n.Next != nil {
		n.Next.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorMemPtr(n *DeclaratorMemPtr) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorNameParamQual(n *DeclaratorNameParamQual) any {
	if n.DeclID != nil {
		n.DeclID.Accept(b.self())
	}
	for _, op := range n.ArrayOps {
		op.Accept(b.self())
	}
	if n.ParamQual != nil {
		n.ParamQual.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaratorNameBitField(n *DeclaratorNameBitField) any {
	if n.DeclID != nil {
		n.DeclID.Accept(b.self())
	}
	if n.Size != nil {
		n.Size.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitType(n *Type) any {
	if n.DeclSpecs != nil {
		n.DeclSpecs.Accept(b.self())
	}
	if n.Declarator != nil {
		n.Declarator.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitInitializer(n *Initializer) any {
	if n.Value != nil {
		n.Value.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTypeWithInit(n *TypeWithInit) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	if n.Init != nil {
		n.Init.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateParamConstrainedTypeWithInit(n *TemplateParamConstrainedTypeWithInit) any {
	if n.Type != nil {
		n.Type.Accept(b.self())
	}
	if n.TypeInit != nil {
		n.TypeInit.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitParameter(n *Parameter) any {
	if n.Param != nil {
		n.Param.Accept(b.self())
	}
	return nil
}

// Templates

func (b *BaseVisitor) VisitRequiresClause(n *RequiresClause) any {
	if n.Expr != nil {
		n.Expr.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateParamType(n *TemplateParamType) any {
	if n.Default != nil {
		n.Default.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateParamTemplateType(n *TemplateParamTemplateType) any {
	if n.Nested != nil {
		n.Nested.Accept(b.self())
	}
	if n.Data != nil {
		n.Data.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateParamNonType(n *TemplateParamNonType) any {
	if n.Param != nil {
		n.Param.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateParams(n *TemplateParams) any {
	for _, p := range n.Params {
		p.Accept(b.self())
	}
	if n.RequiresClause != nil {
		n.RequiresClause.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateIntroductionParameter(n *TemplateIntroductionParameter) any {
	return nil
}

func (b *BaseVisitor) VisitTemplateIntroduction(n *TemplateIntroduction) any {
	if n.Concept != nil {
		n.Concept.Accept(b.self())
	}
	for _, p := range n.Params {
		p.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTemplateDeclarationPrefix(n *TemplateDeclarationPrefix) any {
	for _, e := range n.Entries {
		e.Accept(b.self())
	}
	return nil
}

// Top level

func (b *BaseVisitor) VisitBaseClass(n *BaseClass) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitClass(n *Class) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	for _, base := range n.Bases {
		base.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitUnion(n *Union) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitEnum(n *Enum) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	if n.UnderlyingType != nil {
		n.UnderlyingType.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitEnumerator(n *Enumerator) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	if n.Init != nil {
		n.Init.Accept(b.self())
	}
	if n.Attrs != nil {
		n.Attrs.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitTypeUsing(n *TypeUsing) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	if n.AssignedType != nil {
		n.AssignedType.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitConcept(n *Concept) any {
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	if n.Init != nil {
		n.Init.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitNamespace(n *Namespace) any {
	if n.TemplatePrefix != nil {
		n.TemplatePrefix.Accept(b.self())
	}
	if n.Name != nil {
		n.Name.Accept(b.self())
	}
	return nil
}

func (b *BaseVisitor) VisitDeclaration(n *Declaration) any {
	if n.TemplatePrefix != nil {
		n.TemplatePrefix.Accept(b.self())
	}
	if n.Inner != nil {
		n.Inner.Accept(b.self())
	}
	if n.TrailingRequiresClause != nil {
		n.TrailingRequiresClause.Accept(b.self())
	}
	return nil
}
