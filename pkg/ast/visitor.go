package ast

// Visitor is implemented by every AST consumer, grounded on the teacher's
// pkg/ast.Visitor interface: one VisitX method per concrete node type, so
// a caller that only cares about a handful of node kinds can embed
// BaseVisitor and override just those.
type Visitor interface {
	// Expressions
	VisitNumberLiteral(n *NumberLiteral) any
	VisitStringLiteral(n *StringLiteral) any
	VisitCharLiteral(n *CharLiteral) any
	VisitBoolLiteral(n *BoolLiteral) any
	VisitNullptrLiteral(n *NullptrLiteral) any
	VisitThisExpr(n *ThisExpr) any
	VisitUserDefinedLiteral(n *UserDefinedLiteral) any
	VisitIDExpr(n *IDExpr) any
	VisitParenExpr(n *ParenExpr) any
	VisitBracedInitList(n *BracedInitList) any
	VisitParenExprList(n *ParenExprList) any
	VisitFoldExpr(n *FoldExpr) any
	VisitUnaryExpr(n *UnaryExpr) any
	VisitCastExpr(n *CastExpr) any
	VisitBinOpExpr(n *BinOpExpr) any
	VisitConditionalExpr(n *ConditionalExpr) any
	VisitAssignmentExpr(n *AssignmentExpr) any
	VisitCommaExpr(n *CommaExpr) any
	VisitPostfixExpr(n *PostfixExpr) any
	VisitPostfixArray(n *PostfixArray) any
	VisitPostfixCall(n *PostfixCall) any
	VisitPostfixMember(n *PostfixMember) any
	VisitPostfixArrow(n *PostfixArrow) any
	VisitPostfixInc(n *PostfixInc) any
	VisitPostfixDec(n *PostfixDec) any
	VisitSizeofExpr(n *SizeofExpr) any
	VisitSizeofType(n *SizeofType) any
	VisitSizeofParamPack(n *SizeofParamPack) any
	VisitAlignofExpr(n *AlignofExpr) any
	VisitNoexceptExpr(n *NoexceptExpr) any
	VisitTypeidExpr(n *TypeidExpr) any
	VisitExplicitCastExpr(n *ExplicitCastExpr) any
	VisitNewExpr(n *NewExpr) any
	VisitDeleteExpr(n *DeleteExpr) any
	VisitPackExpansionExpr(n *PackExpansionExpr) any
	VisitFallbackExpr(n *FallbackExpr) any

	// Names
	VisitIdentifier(n *Identifier) any
	VisitOperatorBuiltin(n *OperatorBuiltin) any
	VisitOperatorConversion(n *OperatorConversion) any
	VisitOperatorLiteral(n *OperatorLiteral) any
	VisitTemplateArgConstant(n *TemplateArgConstant) any
	VisitTemplateArgs(n *TemplateArgs) any
	VisitNestedNameElement(n *NestedNameElement) any
	VisitNestedName(n *NestedName) any

	// Types and declarators
	VisitAttribute(n *Attribute) any
	VisitAttributeList(n *AttributeList) any
	VisitExplicitSpec(n *ExplicitSpec) any
	VisitDeclSpecsSimple(n *DeclSpecsSimple) any
	VisitTrailingTypeSpecFundamental(n *TrailingTypeSpecFundamental) any
	VisitTrailingTypeSpecDecltype(n *TrailingTypeSpecDecltype) any
	VisitTrailingTypeSpecDecltypeAuto(n *TrailingTypeSpecDecltypeAuto) any
	VisitTrailingTypeSpecName(n *TrailingTypeSpecName) any
	VisitDeclSpecs(n *DeclSpecs) any
	VisitArrayOp(n *ArrayOp) any
	VisitNoexceptSpec(n *NoexceptSpec) any
	VisitParametersAndQualifiers(n *ParametersAndQualifiers) any
	VisitDeclaratorPtr(n *DeclaratorPtr) any
	VisitDeclaratorRef(n *DeclaratorRef) any
	VisitDeclaratorParamPack(n *DeclaratorParamPack) any
	VisitDeclaratorParen(n *DeclaratorParen) any
	VisitDeclaratorMemPtr(n *DeclaratorMemPtr) any
	VisitDeclaratorNameParamQual(n *DeclaratorNameParamQual) any
	VisitDeclaratorNameBitField(n *DeclaratorNameBitField) any
	VisitType(n *Type) any
	VisitInitializer(n *Initializer) any
	VisitTypeWithInit(n *TypeWithInit) any
	VisitTemplateParamConstrainedTypeWithInit(n *TemplateParamConstrainedTypeWithInit) any
	VisitParameter(n *Parameter) any

	// Templates
	VisitRequiresClause(n *RequiresClause) any
	VisitTemplateParamType(n *TemplateParamType) any
	VisitTemplateParamTemplateType(n *TemplateParamTemplateType) any
	VisitTemplateParamNonType(n *TemplateParamNonType) any
	VisitTemplateParams(n *TemplateParams) any
	VisitTemplateIntroductionParameter(n *TemplateIntroductionParameter) any
	VisitTemplateIntroduction(n *TemplateIntroduction) any
	VisitTemplateDeclarationPrefix(n *TemplateDeclarationPrefix) any

	// Top level
	VisitBaseClass(n *BaseClass) any
	VisitClass(n *Class) any
	VisitUnion(n *Union) any
	VisitEnum(n *Enum) any
	VisitEnumerator(n *Enumerator) any
	VisitTypeUsing(n *TypeUsing) any
	VisitConcept(n *Concept) any
	VisitNamespace(n *Namespace) any
	VisitDeclaration(n *Declaration) any
}
