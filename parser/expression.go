package parser

import (
	"strings"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/parser/scanner"
	"github.com/reloopjs/reloop/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	node := &ast.Identifier{
		Idx:  p.currentOffset(),
		Name: p.currentString(),
	}
	p.next()
	return node
}

func (p *parser) parseBindingIdentifier() *ast.Identifier {
	switch p.currentKind() {
	case token.LeftBracket, token.LeftBrace:
		p.errorf(errUnsupported, "Destructuring patterns")
		p.nextStatement()
		return &ast.Identifier{Idx: p.currentOffset()}
	}
	if !token.ID(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
		return &ast.Identifier{Idx: p.currentOffset()}
	}
	return p.parseIdentifier()
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier, token.Let, token.Of:
		return &ast.Expression{Expr: p.parseIdentifier()}
	case token.Null:
		p.next()
		return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
	case token.Boolean:
		value := p.currentString() == "true"
		p.next()
		return &ast.Expression{Expr: &ast.BooleanLiteral{Idx: idx, Value: value}}
	case token.This:
		p.next()
		return &ast.Expression{Expr: &ast.ThisExpression{Idx: idx}}
	case token.String:
		literal := p.currentString()
		value, err := scanner.Unquote(literal)
		if err != nil {
			p.errorf("%s", err.Error())
		}
		p.next()
		return &ast.Expression{Expr: &ast.StringLiteral{Idx: idx, Literal: literal, Value: value}}
	case token.Number:
		literal := p.currentString()
		value, err := scanner.ParseNumber(literal)
		if err != nil {
			p.errorf("Invalid number literal %s", literal)
		}
		p.next()
		return &ast.Expression{Expr: &ast.NumberLiteral{Idx: idx, Literal: literal, Value: value}}
	case token.Slash, token.QuotientAssign:
		return p.parseRegExpLiteral()
	case token.LeftBrace:
		return &ast.Expression{Expr: p.parseObjectLiteral()}
	case token.LeftBracket:
		return &ast.Expression{Expr: p.parseArrayLiteral()}
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.Function:
		return &ast.Expression{Expr: p.parseFunction(false)}
	}

	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}
}

func (p *parser) parseRegExpLiteral() *ast.Expression {
	p.token = p.scanner.ScanRegExp()
	literal := p.currentString()
	node := &ast.RegExpLiteral{
		Idx:     p.currentOffset(),
		Literal: literal,
	}
	if end := strings.LastIndexByte(literal, '/'); end > 0 {
		node.Pattern = literal[1:end]
		node.Flags = literal[end+1:]
	}
	p.next()
	return &ast.Expression{Expr: node}
}

func (p *parser) parseParenthesisedExpression() *ast.Expression {
	p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	expr := p.parseExpression()
	p.scope.allowIn = allowIn
	p.expect(token.RightParenthesis)
	return expr
}

func (p *parser) parseVariableDeclaration() ast.VariableDeclarator {
	node := ast.VariableDeclarator{
		Target: p.parseBindingIdentifier(),
	}

	if p.currentKind() == token.Assign {
		p.next()
		node.Initializer = p.parseAssignmentExpression()
	}

	return node
}

func (p *parser) parseVariableDeclarationList() (list ast.VariableDeclarators) {
	for {
		list = append(list, p.parseVariableDeclaration())
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	return list
}

func (p *parser) parseObjectPropertyKey() (key *ast.Expression, computed bool) {
	idx := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.LeftBracket:
		p.next()
		key = p.parseAssignmentExpression()
		p.expect(token.RightBracket)
		return key, true
	case kind == token.String, kind == token.Number:
		return p.parsePrimaryExpression(), false
	case token.ID(kind) || token.IsKeyword(kind):
		return &ast.Expression{Expr: p.parseIdentifier()}, false
	}
	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}, false
}

func (p *parser) parseObjectProperty() ast.Property {
	if p.currentKind() == token.Ellipsis {
		idx := p.currentOffset()
		p.next()
		return ast.Property{Prop: &ast.SpreadElement{Ellipsis: idx, Expression: p.parseAssignmentExpression()}}
	}

	if p.currentKind() == token.Identifier {
		switch name := p.currentString(); name {
		case "get", "set":
			next := p.peek().Kind
			if next != token.Colon && next != token.Comma && next != token.RightBrace && next != token.LeftParenthesis {
				p.next()
				key, computed := p.parseObjectPropertyKey()
				return ast.Property{Prop: &ast.PropertyKeyed{
					Key:      key,
					Kind:     ast.PropertyKind(name),
					Computed: computed,
					Value:    p.parseMethodDefinition(key.Idx0()),
				}}
			}
		}
	}

	shorthand := token.ID(p.currentKind())
	key, computed := p.parseObjectPropertyKey()

	switch p.currentKind() {
	case token.LeftParenthesis:
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindMethod,
			Computed: computed,
			Value:    p.parseMethodDefinition(key.Idx0()),
		}}
	case token.Comma, token.RightBrace:
		if id, ok := key.Expr.(*ast.Identifier); ok && shorthand && !computed {
			return ast.Property{Prop: &ast.PropertyShort{Name: id}}
		}
	}

	p.expect(token.Colon)
	return ast.Property{Prop: &ast.PropertyKeyed{
		Key:      key,
		Kind:     ast.PropertyKindValue,
		Computed: computed,
		Value:    p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseMethodDefinition(keyStartIdx ast.Idx) *ast.Expression {
	node := &ast.FunctionLiteral{
		Function:      keyStartIdx,
		ParameterList: p.parseFunctionParameterList(),
	}
	node.Body = p.parseFunctionBlock()
	return &ast.Expression{Expr: node}
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	node := &ast.ObjectLiteral{
		LeftBrace: p.expect(token.LeftBrace),
	}
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		node.Value = append(node.Value, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	node := &ast.ArrayLiteral{
		LeftBracket: p.expect(token.LeftBracket),
	}
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		if p.currentKind() == token.Comma {
			p.next()
			node.Value = append(node.Value, ast.Expression{})
			continue
		}
		node.Value = append(node.Value, *p.parseSpreadOrAssignment())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	node.RightBracket = p.expect(token.RightBracket)
	return node
}

func (p *parser) parseSpreadOrAssignment() *ast.Expression {
	if p.currentKind() == token.Ellipsis {
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.SpreadElement{Ellipsis: idx, Expression: p.parseAssignmentExpression()}}
	}
	return p.parseAssignmentExpression()
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	idx0 = p.expect(token.LeftParenthesis)
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		argumentList = append(argumentList, *p.parseSpreadOrAssignment())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseCallExpression(left *ast.Expression) *ast.Expression {
	argumentList, idx0, idx1 := p.parseArgumentList()
	return &ast.Expression{Expr: &ast.CallExpression{
		Callee:           left,
		LeftParenthesis:  idx0,
		ArgumentList:     argumentList,
		RightParenthesis: idx1,
	}}
}

func (p *parser) parseDotMember(left *ast.Expression) *ast.Expression {
	p.expect(token.Period)
	if kind := p.currentKind(); !token.ID(kind) && !token.IsKeyword(kind) {
		p.errorUnexpectedToken(kind)
		return left
	}
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:   left,
		Property: &ast.Expression{Expr: p.parseIdentifier()},
	}}
}

func (p *parser) parseBracketMember(left *ast.Expression) *ast.Expression {
	p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	member := p.parseExpression()
	p.scope.allowIn = allowIn
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:       left,
		Property:     member,
		Computed:     true,
		RightBracket: p.expect(token.RightBracket),
	}}
}

func (p *parser) parseNewExpression() *ast.Expression {
	idx := p.expect(token.New)
	if p.currentKind() == token.Period {
		p.errorf(errUnsupported, "Meta properties")
	}
	node := &ast.NewExpression{
		New:    idx,
		Callee: p.parseLeftHandSideExpression(),
	}
	if p.currentKind() == token.LeftParenthesis {
		node.ArgumentList, node.LeftParenthesis, node.RightParenthesis = p.parseArgumentList()
	}
	return &ast.Expression{Expr: node}
}

// parseLeftHandSideExpression parses a member expression without calls, the
// callee position of a new expression.
func (p *parser) parseLeftHandSideExpression() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		default:
			return left
		}
	}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left)
		default:
			return left
		}
	}
}

func (p *parser) parseUpdateExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		if !isSimpleAssignTarget(operand) {
			p.errorAt(idx, "Invalid left-hand side in prefix operation")
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{
			Operator: tkn,
			Idx:      idx,
			Operand:  operand,
		}}
	}

	operand := p.parseLeftHandSideExpressionAllowCall()
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		// Make sure there is no line terminator here
		if p.token.OnNewLine {
			break
		}
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		if !isSimpleAssignTarget(operand) {
			p.errorAt(idx, "Invalid left-hand side in postfix operation")
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{
			Operator: tkn,
			Idx:      idx,
			Operand:  operand,
			Postfix:  true,
		}}
	}
	return operand
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot,
		token.Delete, token.Void, token.Typeof:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.UnaryExpression{
			Operator: tkn,
			Idx:      idx,
			Operand:  p.parseUnaryExpression(),
		}}
	}

	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) *ast.Expression {
	lhsParenthesized := p.currentKind() == token.LeftParenthesis
	lhs := p.parseUnaryExpression()
	return p.parseBinaryExpressionRest(lhs, lhsParenthesized, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(lhs *ast.Expression, lhsParenthesized bool, minPrecedence Precedence) *ast.Expression {
	for {
		kind := p.currentKind()

		lbp := OperatorPrecedence(kind)

		if lbp <= minPrecedence {
			break
		}

		if kind == token.In && !p.scope.allowIn {
			break
		}

		p.next()

		rhsParenthesized := p.currentKind() == token.LeftParenthesis
		rhs := p.parseBinaryExpressionOrHigher(lbp ^ 1)

		if isLogicalOperator(kind) {
			if kind == token.Coalesce {
				if mixesLogical(rhs) && !rhsParenthesized || mixesLogical(lhs) && !lhsParenthesized {
					p.errorf("Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
				}
			}
		} else if kind == token.Exponent && !lhsParenthesized {
			if _, ok := lhs.Expr.(*ast.UnaryExpression); ok {
				p.errorf("Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence")
			}
		}
		lhs = &ast.Expression{Expr: &ast.BinaryExpression{
			Operator: kind,
			Left:     lhs,
			Right:    rhs,
		}}

		lhsParenthesized = false
	}

	return lhs
}

func mixesLogical(e *ast.Expression) bool {
	if b, ok := e.Expr.(*ast.BinaryExpression); ok {
		return b.Operator == token.LogicalAnd || b.Operator == token.LogicalOr
	}
	return false
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	left := p.parseBinaryExpressionOrHigher(PrecedenceLowest)

	if p.currentKind() == token.QuestionMark {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		consequent := p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.expect(token.Colon)
		return &ast.Expression{Expr: &ast.ConditionalExpression{
			Test:       left,
			Consequent: consequent,
			Alternate:  p.parseAssignmentExpression(),
		}}
	}

	return left
}

func (p *parser) parseArrowFunction(start ast.Idx, paramList *ast.ParameterList) *ast.Expression {
	if p.token.OnNewLine {
		p.errorf("Illegal newline before arrow")
	}
	p.expect(token.Arrow)
	node := &ast.ArrowFunctionLiteral{
		Start:         start,
		ParameterList: paramList,
	}
	node.Body = p.parseArrowFunctionBody()
	return &ast.Expression{Expr: node}
}

func (p *parser) parseSingleArgArrowFunction(start ast.Idx) *ast.Expression {
	id := p.parseIdentifier()
	paramList := &ast.ParameterList{
		Opening: id.Idx,
		List:    ast.VariableDeclarators{{Target: id}},
		Closing: id.Idx1() - 1,
	}
	return p.parseArrowFunction(start, paramList)
}

// tryArrowParameters parses a parenthesised parameter list when it is
// followed by "=>". Otherwise it rewinds and reports false.
func (p *parser) tryArrowParameters() (*ast.ParameterList, bool) {
	state := p.mark()
	params := p.parseFunctionParameterList()
	if p.currentKind() == token.Arrow && p.errors == state.errors {
		return params, true
	}
	p.restore(state)
	return nil, false
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	start := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.LeftParenthesis:
		if params, ok := p.tryArrowParameters(); ok {
			return p.parseArrowFunction(start, params)
		}
	case token.ID(kind):
		if next := p.peek(); next.Kind == token.Arrow && !next.OnNewLine {
			return p.parseSingleArgArrowFunction(start)
		}
	}

	left := p.parseConditionalExpression()
	kind := p.currentKind()
	if !token.IsAssign(kind) {
		return left
	}

	if kind == token.Assign && !isAssignTarget(left) || kind != token.Assign && !isSimpleAssignTarget(left) {
		p.errorAt(left.Idx0(), errInvalidAssignTarget)
	}
	p.next()
	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: kind,
		Left:     left,
		Right:    p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()

	if p.currentKind() == token.Comma {
		sequence := ast.Expressions{*left}
		for p.currentKind() == token.Comma {
			p.next()
			sequence = append(sequence, *p.parseAssignmentExpression())
		}
		return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: sequence}}
	}

	return left
}

func isSimpleAssignTarget(e *ast.Expression) bool {
	switch e.Expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func isAssignTarget(e *ast.Expression) bool {
	if isSimpleAssignTarget(e) {
		return true
	}
	switch e.Expr.(type) {
	case *ast.ArrayLiteral, *ast.ObjectLiteral:
		// Destructuring assignment is parsed but not interpreted further.
		return true
	}
	return false
}
