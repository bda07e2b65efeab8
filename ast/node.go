package ast

// Idx is a compact encoding of a source position within JS code: the byte
// offset plus one. The zero Idx marks a node that has no source position,
// such as a node synthesized by a rewrite.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Program struct {
	Body Statements
}

func (p *Program) Idx0() Idx {
	if len(p.Body) == 0 {
		return 0
	}
	return p.Body[0].Idx0()
}

func (p *Program) Idx1() Idx {
	if len(p.Body) == 0 {
		return 0
	}
	return p.Body[len(p.Body)-1].Idx1()
}

func (n *BadStatement) Idx0() Idx        { return n.From }
func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *BreakStatement) Idx0() Idx      { return n.Idx }
func (n *ContinueStatement) Idx0() Idx   { return n.Idx }
func (n *CaseStatement) Idx0() Idx       { return n.Case }
func (n *CatchStatement) Idx0() Idx      { return n.Catch }
func (n *DebuggerStatement) Idx0() Idx   { return n.Debugger }
func (n *DoWhileStatement) Idx0() Idx    { return n.Do }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *ForInStatement) Idx0() Idx      { return n.For }
func (n *ForOfStatement) Idx0() Idx      { return n.For }
func (n *ForStatement) Idx0() Idx        { return n.For }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *LabelledStatement) Idx0() Idx   { return n.Label.Idx0() }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *SwitchStatement) Idx0() Idx     { return n.Switch }
func (n *ThrowStatement) Idx0() Idx      { return n.Throw }
func (n *TryStatement) Idx0() Idx        { return n.Try }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *WhileStatement) Idx0() Idx      { return n.While }
func (n *WithStatement) Idx0() Idx       { return n.With }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }

func (n *BadStatement) Idx1() Idx   { return n.To }
func (n *BlockStatement) Idx1() Idx { return n.RightBrace + 1 }
func (n *BreakStatement) Idx1() Idx {
	if n.Label != nil {
		return n.Label.Idx1()
	}
	return n.Idx + 5
}
func (n *ContinueStatement) Idx1() Idx {
	if n.Label != nil {
		return n.Label.Idx1()
	}
	return n.Idx + 8
}
func (n *CaseStatement) Idx1() Idx {
	if len(n.Consequent) == 0 {
		if n.Test != nil {
			return n.Test.Idx1()
		}
		return n.Case + 7
	}
	return n.Consequent[len(n.Consequent)-1].Idx1()
}
func (n *CatchStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *DebuggerStatement) Idx1() Idx   { return n.Debugger + 8 }
func (n *DoWhileStatement) Idx1() Idx    { return n.RightParenthesis + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *ForInStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForOfStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx        { return n.Body.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *LabelledStatement) Idx1() Idx { return n.Statement.Idx1() }
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *SwitchStatement) Idx1() Idx { return n.RightBrace + 1 }
func (n *ThrowStatement) Idx1() Idx  { return n.Argument.Idx1() }
func (n *TryStatement) Idx1() Idx {
	if n.Finally != nil {
		return n.Finally.Idx1()
	}
	if n.Catch != nil {
		return n.Catch.Idx1()
	}
	return n.Body.Idx1()
}
func (n *VariableDeclaration) Idx1() Idx {
	if len(n.List) == 0 {
		return n.Idx + Idx(len(n.Token.String()))
	}
	return n.List[len(n.List)-1].Idx1()
}
func (n *WhileStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *WithStatement) Idx1() Idx       { return n.Body.Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }

func (n *ArrayLiteral) Idx0() Idx          { return n.LeftBracket }
func (n *AssignExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BinaryExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BooleanLiteral) Idx0() Idx        { return n.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *FunctionLiteral) Idx0() Idx       { return n.Function }
func (n *ArrowFunctionLiteral) Idx0() Idx  { return n.Start }
func (n *Identifier) Idx0() Idx            { return n.Idx }
func (n *InvalidExpression) Idx0() Idx     { return n.From }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *RegExpLiteral) Idx0() Idx         { return n.Idx }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *SpreadElement) Idx0() Idx         { return n.Ellipsis }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}
func (n *ParameterList) Idx0() Idx      { return n.Opening }
func (n *VariableDeclarator) Idx0() Idx { return n.Target.Idx0() }
func (n *PropertyKeyed) Idx0() Idx      { return n.Key.Idx0() }
func (n *PropertyShort) Idx0() Idx      { return n.Name.Idx0() }

func (n *ArrayLiteral) Idx1() Idx          { return n.RightBracket + 1 }
func (n *AssignExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BinaryExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BooleanLiteral) Idx1() Idx        { return n.Idx + Idx(len(n.Literal())) }
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (n *MemberExpression) Idx1() Idx {
	if n.Computed {
		return n.RightBracket + 1
	}
	return n.Property.Idx1()
}
func (n *FunctionLiteral) Idx1() Idx      { return n.Body.Idx1() }
func (n *ArrowFunctionLiteral) Idx1() Idx { return n.Body.Idx1() }
func (n *Identifier) Idx1() Idx           { return n.Idx + Idx(len(n.Name)) }
func (n *InvalidExpression) Idx1() Idx    { return n.To }
func (n *NewExpression) Idx1() Idx {
	if n.RightParenthesis > 0 {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *NullLiteral) Idx1() Idx        { return n.Idx + 4 }
func (n *NumberLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Literal)) }
func (n *ObjectLiteral) Idx1() Idx      { return n.RightBrace + 1 }
func (n *RegExpLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Literal)) }
func (n *SequenceExpression) Idx1() Idx { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *SpreadElement) Idx1() Idx      { return n.Expression.Idx1() }
func (n *StringLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Literal)) }
func (n *ThisExpression) Idx1() Idx     { return n.Idx + 4 }
func (n *UnaryExpression) Idx1() Idx    { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Idx + 2
	}
	return n.Operand.Idx1()
}
func (n *ParameterList) Idx1() Idx { return n.Closing + 1 }
func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}
func (n *PropertyKeyed) Idx1() Idx { return n.Value.Idx1() }
func (n *PropertyShort) Idx1() Idx { return n.Name.Idx1() }
