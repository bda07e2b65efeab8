package ast

// Clone returns a deep copy of the statement. Source positions are kept.
func (n *Statement) Clone() *Statement {
	if n == nil {
		return nil
	}
	return &Statement{Stmt: CloneStmt(n.Stmt)}
}

// Clone returns a deep copy of the expression. Source positions are kept.
func (n *Expression) Clone() *Expression {
	if n == nil {
		return nil
	}
	return &Expression{Expr: CloneExpr(n.Expr)}
}

func (n Statements) Clone() Statements {
	if n == nil {
		return nil
	}
	ns := make(Statements, len(n))
	for i := range n {
		ns[i] = Statement{Stmt: CloneStmt(n[i].Stmt)}
	}
	return ns
}

func (n Expressions) Clone() Expressions {
	if n == nil {
		return nil
	}
	ns := make(Expressions, len(n))
	for i := range n {
		ns[i] = Expression{Expr: CloneExpr(n[i].Expr)}
	}
	return ns
}

func (n VariableDeclarators) Clone() VariableDeclarators {
	if n == nil {
		return nil
	}
	ns := make(VariableDeclarators, len(n))
	for i := range n {
		ns[i] = VariableDeclarator{
			Target:      n[i].Target.Clone(),
			Initializer: n[i].Initializer.Clone(),
		}
	}
	return ns
}

func (n Properties) Clone() Properties {
	if n == nil {
		return nil
	}
	ns := make(Properties, len(n))
	for i := range n {
		var prop Prop
		switch p := n[i].Prop.(type) {
		case *PropertyKeyed:
			prop = &PropertyKeyed{Key: p.Key.Clone(), Kind: p.Kind, Computed: p.Computed, Value: p.Value.Clone()}
		case *PropertyShort:
			prop = &PropertyShort{Name: p.Name.Clone()}
		case *SpreadElement:
			prop = p.Clone()
		}
		ns[i] = Property{Prop: prop}
	}
	return ns
}

func (n *Identifier) Clone() *Identifier {
	if n == nil {
		return nil
	}
	return &Identifier{Idx: n.Idx, Name: n.Name}
}

func (n *BlockStatement) Clone() *BlockStatement {
	if n == nil {
		return nil
	}
	return &BlockStatement{LeftBrace: n.LeftBrace, List: n.List.Clone(), RightBrace: n.RightBrace}
}

func (n *VariableDeclaration) Clone() *VariableDeclaration {
	if n == nil {
		return nil
	}
	return &VariableDeclaration{Idx: n.Idx, Token: n.Token, List: n.List.Clone()}
}

func (n *ParameterList) Clone() *ParameterList {
	if n == nil {
		return nil
	}
	return &ParameterList{Opening: n.Opening, List: n.List.Clone(), Rest: n.Rest.Clone(), Closing: n.Closing}
}

func (n *FunctionLiteral) Clone() *FunctionLiteral {
	if n == nil {
		return nil
	}
	return &FunctionLiteral{
		Function:      n.Function,
		Name:          n.Name.Clone(),
		ParameterList: n.ParameterList.Clone(),
		Body:          n.Body.Clone(),
	}
}

func (n *SpreadElement) Clone() *SpreadElement {
	if n == nil {
		return nil
	}
	return &SpreadElement{Ellipsis: n.Ellipsis, Expression: n.Expression.Clone()}
}

func (n *CatchStatement) Clone() *CatchStatement {
	if n == nil {
		return nil
	}
	return &CatchStatement{Catch: n.Catch, Parameter: n.Parameter.Clone(), Body: n.Body.Clone()}
}

func cloneHead(h ForHead) ForHead {
	switch h := h.(type) {
	case *VariableDeclaration:
		return h.Clone()
	case *Expression:
		return h.Clone()
	}
	return nil
}

// CloneStmt returns a deep copy of s. A nil statement clones to nil.
func CloneStmt(s Stmt) Stmt {
	switch n := s.(type) {
	case nil:
		return nil
	case *BadStatement:
		return &BadStatement{From: n.From, To: n.To}
	case *BlockStatement:
		return n.Clone()
	case *BreakStatement:
		return &BreakStatement{Idx: n.Idx, Label: n.Label.Clone()}
	case *ContinueStatement:
		return &ContinueStatement{Idx: n.Idx, Label: n.Label.Clone()}
	case *DebuggerStatement:
		return &DebuggerStatement{Debugger: n.Debugger}
	case *DoWhileStatement:
		return &DoWhileStatement{Do: n.Do, Body: n.Body.Clone(), Test: n.Test.Clone(), RightParenthesis: n.RightParenthesis}
	case *EmptyStatement:
		return &EmptyStatement{Semicolon: n.Semicolon}
	case *ExpressionStatement:
		return &ExpressionStatement{Expression: n.Expression.Clone()}
	case *ForInStatement:
		return &ForInStatement{For: n.For, Into: &ForInto{Into: cloneHead(n.Into.Into)}, Source: n.Source.Clone(), Body: n.Body.Clone()}
	case *ForOfStatement:
		return &ForOfStatement{For: n.For, Into: &ForInto{Into: cloneHead(n.Into.Into)}, Source: n.Source.Clone(), Body: n.Body.Clone()}
	case *ForStatement:
		var init *ForLoopInitializer
		if n.Initializer != nil {
			init = &ForLoopInitializer{Initializer: cloneHead(n.Initializer.Initializer)}
		}
		return &ForStatement{For: n.For, Initializer: init, Test: n.Test.Clone(), Update: n.Update.Clone(), Body: n.Body.Clone()}
	case *IfStatement:
		return &IfStatement{If: n.If, Test: n.Test.Clone(), Consequent: n.Consequent.Clone(), Alternate: n.Alternate.Clone()}
	case *LabelledStatement:
		return &LabelledStatement{Label: n.Label.Clone(), Colon: n.Colon, Statement: n.Statement.Clone()}
	case *ReturnStatement:
		return &ReturnStatement{Return: n.Return, Argument: n.Argument.Clone()}
	case *SwitchStatement:
		body := make([]CaseStatement, len(n.Body))
		for i, c := range n.Body {
			body[i] = CaseStatement{Case: c.Case, Test: c.Test.Clone(), Consequent: c.Consequent.Clone()}
		}
		return &SwitchStatement{Switch: n.Switch, Discriminant: n.Discriminant.Clone(), Default: n.Default, Body: body, RightBrace: n.RightBrace}
	case *ThrowStatement:
		return &ThrowStatement{Throw: n.Throw, Argument: n.Argument.Clone()}
	case *TryStatement:
		return &TryStatement{Try: n.Try, Body: n.Body.Clone(), Catch: n.Catch.Clone(), Finally: n.Finally.Clone()}
	case *VariableDeclaration:
		return n.Clone()
	case *WhileStatement:
		return &WhileStatement{While: n.While, Test: n.Test.Clone(), Body: n.Body.Clone()}
	case *WithStatement:
		return &WithStatement{With: n.With, Object: n.Object.Clone(), Body: n.Body.Clone()}
	case *FunctionDeclaration:
		return &FunctionDeclaration{Function: n.Function.Clone()}
	case *Statement:
		return n.Clone()
	}
	panic("ast: cannot clone statement")
}

// CloneExpr returns a deep copy of e. A nil expression clones to nil.
func CloneExpr(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *ArrayLiteral:
		return &ArrayLiteral{LeftBracket: n.LeftBracket, RightBracket: n.RightBracket, Value: n.Value.Clone()}
	case *AssignExpression:
		return &AssignExpression{Operator: n.Operator, Left: n.Left.Clone(), Right: n.Right.Clone()}
	case *BinaryExpression:
		return &BinaryExpression{Operator: n.Operator, Left: n.Left.Clone(), Right: n.Right.Clone()}
	case *BooleanLiteral:
		return &BooleanLiteral{Idx: n.Idx, Value: n.Value}
	case *CallExpression:
		return &CallExpression{Callee: n.Callee.Clone(), LeftParenthesis: n.LeftParenthesis, ArgumentList: n.ArgumentList.Clone(), RightParenthesis: n.RightParenthesis}
	case *ConditionalExpression:
		return &ConditionalExpression{Test: n.Test.Clone(), Consequent: n.Consequent.Clone(), Alternate: n.Alternate.Clone()}
	case *MemberExpression:
		return &MemberExpression{Object: n.Object.Clone(), Property: n.Property.Clone(), Computed: n.Computed, RightBracket: n.RightBracket}
	case *FunctionLiteral:
		return n.Clone()
	case *ArrowFunctionLiteral:
		var body ConciseBody
		switch b := n.Body.(type) {
		case *BlockStatement:
			body = b.Clone()
		case *Expression:
			body = b.Clone()
		}
		return &ArrowFunctionLiteral{Start: n.Start, ParameterList: n.ParameterList.Clone(), Body: body}
	case *Identifier:
		return n.Clone()
	case *InvalidExpression:
		return &InvalidExpression{From: n.From, To: n.To}
	case *NewExpression:
		return &NewExpression{New: n.New, Callee: n.Callee.Clone(), LeftParenthesis: n.LeftParenthesis, ArgumentList: n.ArgumentList.Clone(), RightParenthesis: n.RightParenthesis}
	case *NullLiteral:
		return &NullLiteral{Idx: n.Idx}
	case *NumberLiteral:
		return &NumberLiteral{Idx: n.Idx, Literal: n.Literal, Value: n.Value}
	case *ObjectLiteral:
		return &ObjectLiteral{LeftBrace: n.LeftBrace, RightBrace: n.RightBrace, Value: n.Value.Clone()}
	case *RegExpLiteral:
		return &RegExpLiteral{Idx: n.Idx, Literal: n.Literal, Pattern: n.Pattern, Flags: n.Flags}
	case *SequenceExpression:
		return &SequenceExpression{Sequence: n.Sequence.Clone()}
	case *SpreadElement:
		return n.Clone()
	case *StringLiteral:
		return &StringLiteral{Idx: n.Idx, Literal: n.Literal, Value: n.Value}
	case *ThisExpression:
		return &ThisExpression{Idx: n.Idx}
	case *UnaryExpression:
		return &UnaryExpression{Operator: n.Operator, Idx: n.Idx, Operand: n.Operand.Clone()}
	case *UpdateExpression:
		return &UpdateExpression{Operator: n.Operator, Idx: n.Idx, Operand: n.Operand.Clone(), Postfix: n.Postfix}
	case *Expression:
		return n.Clone()
	}
	panic("ast: cannot clone expression")
}
