package ast

type Visitor interface {
	VisitProgram(n *Program)

	VisitStatement(n *Statement)
	VisitStatements(n *Statements)
	VisitExpression(n *Expression)
	VisitExpressions(n *Expressions)

	VisitBadStatement(n *BadStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitCaseStatement(n *CaseStatement)
	VisitCatchStatement(n *CatchStatement)
	VisitDebuggerStatement(n *DebuggerStatement)
	VisitDoWhileStatement(n *DoWhileStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitForInStatement(n *ForInStatement)
	VisitForOfStatement(n *ForOfStatement)
	VisitForStatement(n *ForStatement)
	VisitForLoopInitializer(n *ForLoopInitializer)
	VisitForInto(n *ForInto)
	VisitIfStatement(n *IfStatement)
	VisitLabelledStatement(n *LabelledStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitVariableDeclarators(n *VariableDeclarators)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitWhileStatement(n *WhileStatement)
	VisitWithStatement(n *WithStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)

	VisitArrayLiteral(n *ArrayLiteral)
	VisitAssignExpression(n *AssignExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitCallExpression(n *CallExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitParameterList(n *ParameterList)
	VisitIdentifier(n *Identifier)
	VisitInvalidExpression(n *InvalidExpression)
	VisitNewExpression(n *NewExpression)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitProperties(n *Properties)
	VisitProperty(n *Property)
	VisitPropertyKeyed(n *PropertyKeyed)
	VisitPropertyShort(n *PropertyShort)
	VisitRegExpLiteral(n *RegExpLiteral)
	VisitSequenceExpression(n *SequenceExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitStringLiteral(n *StringLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
}

// NoopVisitor visits every child of every node and changes nothing. Embed it
// and point V at the outer visitor so overridden methods take part in the
// dispatch:
//
//	v := &myVisitor{}
//	v.V = v
//	program.VisitWith(v)
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program)               { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBadStatement(n *BadStatement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitCaseStatement(n *CaseStatement)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDebuggerStatement(n *DebuggerStatement) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForOfStatement(n *ForOfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForStatement(n *ForStatement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForLoopInitializer(n *ForLoopInitializer) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForInto(n *ForInto)                     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement)             { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitLabelledStatement(n *LabelledStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(n *TryStatement)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitVariableDeclarators(n *VariableDeclarators) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWithStatement(n *WithStatement)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitParameterList(n *ParameterList)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(n *Identifier)               { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitInvalidExpression(n *InvalidExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral)             { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties)               { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(n *Property)                   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitRegExpLiteral(n *RegExpLiteral)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor)              { v.VisitProgram(n) }
func (n *Statement) VisitWith(v Visitor)            { v.VisitStatement(n) }
func (n *Statements) VisitWith(v Visitor)           { v.VisitStatements(n) }
func (n *Expression) VisitWith(v Visitor)           { v.VisitExpression(n) }
func (n *Expressions) VisitWith(v Visitor)          { v.VisitExpressions(n) }
func (n *BadStatement) VisitWith(v Visitor)         { v.VisitBadStatement(n) }
func (n *BlockStatement) VisitWith(v Visitor)       { v.VisitBlockStatement(n) }
func (n *BreakStatement) VisitWith(v Visitor)       { v.VisitBreakStatement(n) }
func (n *ContinueStatement) VisitWith(v Visitor)    { v.VisitContinueStatement(n) }
func (n *CaseStatement) VisitWith(v Visitor)        { v.VisitCaseStatement(n) }
func (n *CatchStatement) VisitWith(v Visitor)       { v.VisitCatchStatement(n) }
func (n *DebuggerStatement) VisitWith(v Visitor)    { v.VisitDebuggerStatement(n) }
func (n *DoWhileStatement) VisitWith(v Visitor)     { v.VisitDoWhileStatement(n) }
func (n *EmptyStatement) VisitWith(v Visitor)       { v.VisitEmptyStatement(n) }
func (n *ExpressionStatement) VisitWith(v Visitor)  { v.VisitExpressionStatement(n) }
func (n *ForInStatement) VisitWith(v Visitor)       { v.VisitForInStatement(n) }
func (n *ForOfStatement) VisitWith(v Visitor)       { v.VisitForOfStatement(n) }
func (n *ForStatement) VisitWith(v Visitor)         { v.VisitForStatement(n) }
func (n *ForLoopInitializer) VisitWith(v Visitor)   { v.VisitForLoopInitializer(n) }
func (n *ForInto) VisitWith(v Visitor)              { v.VisitForInto(n) }
func (n *IfStatement) VisitWith(v Visitor)          { v.VisitIfStatement(n) }
func (n *LabelledStatement) VisitWith(v Visitor)    { v.VisitLabelledStatement(n) }
func (n *ReturnStatement) VisitWith(v Visitor)      { v.VisitReturnStatement(n) }
func (n *SwitchStatement) VisitWith(v Visitor)      { v.VisitSwitchStatement(n) }
func (n *ThrowStatement) VisitWith(v Visitor)       { v.VisitThrowStatement(n) }
func (n *TryStatement) VisitWith(v Visitor)         { v.VisitTryStatement(n) }
func (n *VariableDeclaration) VisitWith(v Visitor)  { v.VisitVariableDeclaration(n) }
func (n *VariableDeclarators) VisitWith(v Visitor)  { v.VisitVariableDeclarators(n) }
func (n *VariableDeclarator) VisitWith(v Visitor)   { v.VisitVariableDeclarator(n) }
func (n *WhileStatement) VisitWith(v Visitor)       { v.VisitWhileStatement(n) }
func (n *WithStatement) VisitWith(v Visitor)        { v.VisitWithStatement(n) }
func (n *FunctionDeclaration) VisitWith(v Visitor)  { v.VisitFunctionDeclaration(n) }
func (n *ArrayLiteral) VisitWith(v Visitor)         { v.VisitArrayLiteral(n) }
func (n *AssignExpression) VisitWith(v Visitor)     { v.VisitAssignExpression(n) }
func (n *BinaryExpression) VisitWith(v Visitor)     { v.VisitBinaryExpression(n) }
func (n *BooleanLiteral) VisitWith(v Visitor)       { v.VisitBooleanLiteral(n) }
func (n *CallExpression) VisitWith(v Visitor)       { v.VisitCallExpression(n) }
func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *MemberExpression) VisitWith(v Visitor)     { v.VisitMemberExpression(n) }
func (n *FunctionLiteral) VisitWith(v Visitor)      { v.VisitFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *ParameterList) VisitWith(v Visitor)        { v.VisitParameterList(n) }
func (n *Identifier) VisitWith(v Visitor)           { v.VisitIdentifier(n) }
func (n *InvalidExpression) VisitWith(v Visitor)    { v.VisitInvalidExpression(n) }
func (n *NewExpression) VisitWith(v Visitor)        { v.VisitNewExpression(n) }
func (n *NullLiteral) VisitWith(v Visitor)          { v.VisitNullLiteral(n) }
func (n *NumberLiteral) VisitWith(v Visitor)        { v.VisitNumberLiteral(n) }
func (n *ObjectLiteral) VisitWith(v Visitor)        { v.VisitObjectLiteral(n) }
func (n *Properties) VisitWith(v Visitor)           { v.VisitProperties(n) }
func (n *Property) VisitWith(v Visitor)             { v.VisitProperty(n) }
func (n *PropertyKeyed) VisitWith(v Visitor)        { v.VisitPropertyKeyed(n) }
func (n *PropertyShort) VisitWith(v Visitor)        { v.VisitPropertyShort(n) }
func (n *RegExpLiteral) VisitWith(v Visitor)        { v.VisitRegExpLiteral(n) }
func (n *SequenceExpression) VisitWith(v Visitor)   { v.VisitSequenceExpression(n) }
func (n *SpreadElement) VisitWith(v Visitor)        { v.VisitSpreadElement(n) }
func (n *StringLiteral) VisitWith(v Visitor)        { v.VisitStringLiteral(n) }
func (n *ThisExpression) VisitWith(v Visitor)       { v.VisitThisExpression(n) }
func (n *UnaryExpression) VisitWith(v Visitor)      { v.VisitUnaryExpression(n) }
func (n *UpdateExpression) VisitWith(v Visitor)     { v.VisitUpdateExpression(n) }

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	n.Consequent.VisitWith(v)
}

func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil {
		n.Parameter.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ForLoopInitializer) VisitChildrenWith(v Visitor) {
	n.Initializer.VisitWith(v)
}

func (n *ForInto) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *VariableDeclarators) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ParameterList) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *InvalidExpression) VisitChildrenWith(v Visitor) {}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Property) VisitChildrenWith(v Visitor) {
	n.Prop.VisitWith(v)
}

func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
}

func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}
