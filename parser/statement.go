package parser

import (
	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/token"
)

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList()
	node.RightBrace = p.expect(token.RightBrace)

	return node
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Semicolon: idx}
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		list = append(list, p.parseStatementProgress())
	}

	return list
}

// parseStatementProgress parses one statement and makes sure at least one
// token was consumed, so that error recovery cannot loop forever.
func (p *parser) parseStatementProgress() ast.Statement {
	start := p.currentOffset()
	stmt := ast.Statement{Stmt: p.parseStatement()}
	if p.currentOffset() == start && p.currentKind() != token.Eof {
		p.next()
	}
	return stmt
}

func (p *parser) parseStatement() ast.Stmt {
	if p.currentKind() == token.Eof {
		p.errorUnexpectedToken(p.currentKind())
		return &ast.BadStatement{From: p.currentOffset(), To: p.currentOffset() + 1}
	}

	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForOrForInStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Var, token.Const:
		return p.parseLexicalDeclaration(p.currentKind())
	case token.Let:
		switch p.peek().Kind {
		case token.Identifier, token.Let, token.Of, token.LeftBracket, token.LeftBrace:
			return p.parseLexicalDeclaration(token.Let)
		}
	case token.Function:
		return &ast.FunctionDeclaration{
			Function: p.parseFunction(true),
		}
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	}

	expression := p.parseExpression()

	if identifier, isIdentifier := expression.Expr.(*ast.Identifier); isIdentifier && p.currentKind() == token.Colon {
		// LabelledStatement
		colon := p.currentOffset()
		p.next() // :
		label := identifier.Name
		for _, value := range p.scope.labels {
			if label == value {
				p.errorAt(identifier.Idx, "Label '%s' has already been declared", label)
			}
		}
		p.scope.labels = append(p.scope.labels, label) // Push the label
		statement := p.parseStatement()
		p.scope.labels = p.scope.labels[:len(p.scope.labels)-1] // Pop the label
		return &ast.LabelledStatement{
			Label:     identifier,
			Colon:     colon,
			Statement: &ast.Statement{Stmt: statement},
		}
	}

	p.semicolon()

	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func (p *parser) parseTryStatement() ast.Stmt {
	node := &ast.TryStatement{
		Try:  p.expect(token.Try),
		Body: p.parseBlockStatement(),
	}

	if p.currentKind() == token.Catch {
		catch := p.currentOffset()
		p.next()
		var parameter *ast.Identifier
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			parameter = p.parseBindingIdentifier()
			p.expect(token.RightParenthesis)
		}
		node.Catch = &ast.CatchStatement{
			Catch:     catch,
			Parameter: parameter,
			Body:      p.parseBlockStatement(),
		}
	}

	if p.currentKind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}

	if node.Catch == nil && node.Finally == nil {
		p.errorf("Missing catch or finally after try")
		return &ast.BadStatement{From: node.Try, To: node.Body.Idx1()}
	}

	return node
}

func (p *parser) parseFunctionParameterList() *ast.ParameterList {
	node := &ast.ParameterList{
		Opening: p.expect(token.LeftParenthesis),
	}
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			p.next()
			node.Rest = p.parseBindingIdentifier()
			break
		}
		decl := ast.VariableDeclarator{Target: p.parseBindingIdentifier()}
		if p.currentKind() == token.Assign {
			p.next()
			decl.Initializer = p.parseAssignmentExpression()
		}
		node.List = append(node.List, decl)
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	node.Closing = p.expect(token.RightParenthesis)
	return node
}

func (p *parser) parseFunction(declaration bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function: p.expect(token.Function),
	}

	if p.currentKind() == token.Multiply {
		p.errorf(errUnsupported, "Generator functions")
		p.next()
	}

	if token.ID(p.currentKind()) {
		node.Name = p.parseIdentifier()
	} else if declaration {
		p.errorUnexpectedToken(p.currentKind())
	}

	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBlock()

	return node
}

func (p *parser) parseFunctionBlock() *ast.BlockStatement {
	p.openScope()
	p.scope.inFunction = true
	defer p.closeScope()
	return p.parseBlockStatement()
}

func (p *parser) parseArrowFunctionBody() ast.ConciseBody {
	if p.currentKind() == token.LeftBrace {
		return p.parseFunctionBlock()
	}
	p.openScope()
	p.scope.inFunction = true
	defer p.closeScope()
	return p.parseAssignmentExpression()
}

func (p *parser) parseDebuggerStatement() ast.Stmt {
	idx := p.expect(token.Debugger)

	node := &ast.DebuggerStatement{
		Debugger: idx,
	}

	p.semicolon()

	return node
}

func (p *parser) parseReturnStatement() ast.Stmt {
	idx := p.expect(token.Return)

	if !p.scope.inFunction {
		p.errorAt(idx, "Illegal return statement")
	}

	node := &ast.ReturnStatement{
		Return: idx,
	}

	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}

	p.semicolon()

	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	idx := p.expect(token.Throw)

	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
		p.nextStatement()
		return &ast.BadStatement{From: idx, To: p.currentOffset()}
	}

	node := &ast.ThrowStatement{
		Throw:    idx,
		Argument: p.parseExpression(),
	}

	p.semicolon()

	return node
}

func (p *parser) parseSwitchStatement() ast.Stmt {
	idx := p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	node := &ast.SwitchStatement{
		Switch:       idx,
		Discriminant: p.parseExpression(),
		Default:      -1,
	}
	p.expect(token.RightParenthesis)

	p.expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true
	defer func() {
		p.scope.inSwitch = inSwitch
	}()

	for index := 0; p.currentKind() != token.Eof; index++ {
		if p.currentKind() == token.RightBrace {
			node.RightBrace = p.currentOffset()
			p.next()
			break
		}

		clause := p.parseCaseStatement()
		if clause.Test == nil {
			if node.Default != -1 {
				p.errorAt(clause.Case, "More than one default clause in switch statement")
			}
			node.Default = index
		}
		node.Body = append(node.Body, clause)
	}

	return node
}

func (p *parser) parseWithStatement() ast.Stmt {
	idx := p.expect(token.With)
	p.expect(token.LeftParenthesis)
	node := &ast.WithStatement{
		With:   idx,
		Object: p.parseExpression(),
	}
	p.expect(token.RightParenthesis)
	node.Body = &ast.Statement{Stmt: p.parseStatement()}

	return node
}

func (p *parser) parseCaseStatement() ast.CaseStatement {
	node := ast.CaseStatement{
		Case: p.currentOffset(),
	}
	if p.currentKind() == token.Default {
		p.next()
	} else {
		p.expect(token.Case)
		node.Test = p.parseExpression()
	}
	p.expect(token.Colon)

	for {
		if p.currentKind() == token.Eof ||
			p.currentKind() == token.RightBrace ||
			p.currentKind() == token.Case ||
			p.currentKind() == token.Default {
			break
		}
		node.Consequent = append(node.Consequent, p.parseStatementProgress())
	}

	return node
}

func (p *parser) parseIterationStatement() *ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	defer func() {
		p.scope.inIteration = inIteration
	}()
	return &ast.Statement{Stmt: p.parseStatement()}
}

func (p *parser) parseForIn(idx ast.Idx, into *ast.ForInto) *ast.ForInStatement {
	// Already have consumed "<into> in"

	source := p.parseExpression()
	p.expect(token.RightParenthesis)

	return &ast.ForInStatement{
		For:    idx,
		Into:   into,
		Source: source,
		Body:   p.parseIterationStatement(),
	}
}

func (p *parser) parseForOf(idx ast.Idx, into *ast.ForInto) *ast.ForOfStatement {
	// Already have consumed "<into> of"

	source := p.parseAssignmentExpression()
	p.expect(token.RightParenthesis)

	return &ast.ForOfStatement{
		For:    idx,
		Into:   into,
		Source: source,
		Body:   p.parseIterationStatement(),
	}
}

func (p *parser) parseFor(idx ast.Idx, initializer *ast.ForLoopInitializer) *ast.ForStatement {
	// Already have consumed "<initializer> ;"

	var test, update *ast.Expression

	if p.currentKind() != token.Semicolon {
		test = p.parseExpression()
	}
	p.expect(token.Semicolon)

	if p.currentKind() != token.RightParenthesis {
		update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)

	return &ast.ForStatement{
		For:         idx,
		Initializer: initializer,
		Test:        test,
		Update:      update,
		Body:        p.parseIterationStatement(),
	}
}

func (p *parser) parseForOrForInStatement() ast.Stmt {
	idx := p.expect(token.For)
	p.expect(token.LeftParenthesis)

	var initializer *ast.ForLoopInitializer

	forIn := false
	forOf := false
	var into *ast.ForInto
	if p.currentKind() != token.Semicolon {

		allowIn := p.scope.allowIn
		p.scope.allowIn = false
		tok := p.currentKind()
		if tok == token.Let {
			switch p.peek().Kind {
			case token.Identifier, token.Let, token.Of, token.LeftBracket, token.LeftBrace:
			default:
				tok = token.Identifier
			}
		}
		if tok == token.Var || tok == token.Let || tok == token.Const {
			declIdx := p.currentOffset()
			p.next()

			list := p.parseVariableDeclarationList()
			if len(list) == 1 {
				if p.currentKind() == token.In {
					p.next() // in
					forIn = true
				} else if p.currentKind() == token.Of {
					p.next()
					forOf = true
				}
			}
			decl := &ast.VariableDeclaration{
				Idx:   declIdx,
				Token: tok,
				List:  list,
			}
			if forIn || forOf {
				if list[0].Initializer != nil {
					p.errorAt(declIdx, "for-in loop variable declaration may not have an initializer")
				}
				into = &ast.ForInto{Into: decl}
			} else {
				p.ensureConstInit(decl)
				initializer = &ast.ForLoopInitializer{Initializer: decl}
			}
		} else {
			expr := p.parseExpression()
			if p.currentKind() == token.In {
				p.next()
				forIn = true
			} else if p.currentKind() == token.Of {
				p.next()
				forOf = true
			}
			if forIn || forOf {
				if !isAssignTarget(expr) {
					p.errorAt(expr.Idx0(), "Invalid left-hand side in for-in or for-of")
					p.nextStatement()
					return &ast.BadStatement{From: idx, To: p.currentOffset()}
				}
				into = &ast.ForInto{Into: expr}
			} else {
				initializer = &ast.ForLoopInitializer{Initializer: expr}
			}
		}
		p.scope.allowIn = allowIn
	}

	if forIn {
		return p.parseForIn(idx, into)
	}
	if forOf {
		return p.parseForOf(idx, into)
	}

	p.expect(token.Semicolon)
	return p.parseFor(idx, initializer)
}

func (p *parser) ensureConstInit(decl *ast.VariableDeclaration) {
	if decl.Token != token.Const {
		return
	}
	for _, item := range decl.List {
		if item.Initializer == nil {
			p.errorAt(item.Target.Idx, "Missing initializer in const declaration")
			break
		}
	}
}

func (p *parser) parseLexicalDeclaration(tok token.Token) *ast.VariableDeclaration {
	idx := p.expect(tok)

	list := p.parseVariableDeclarationList()
	node := &ast.VariableDeclaration{
		Idx:   idx,
		Token: tok,
		List:  list,
	}
	p.ensureConstInit(node)
	p.semicolon()

	return node
}

func (p *parser) parseDoWhileStatement() ast.Stmt {
	node := &ast.DoWhileStatement{
		Do: p.expect(token.Do),
	}
	node.Body = p.parseIterationStatement()

	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	node.RightParenthesis = p.expect(token.RightParenthesis)
	if p.currentKind() == token.Semicolon {
		p.next()
	}

	return node
}

func (p *parser) parseWhileStatement() ast.Stmt {
	idx := p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node := &ast.WhileStatement{
		While: idx,
		Test:  p.parseExpression(),
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationStatement()

	return node
}

func (p *parser) parseIfStatement() ast.Stmt {
	idx := p.expect(token.If)
	p.expect(token.LeftParenthesis)
	node := &ast.IfStatement{
		If:   idx,
		Test: p.parseExpression(),
	}
	p.expect(token.RightParenthesis)

	node.Consequent = &ast.Statement{Stmt: p.parseStatement()}

	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = &ast.Statement{Stmt: p.parseStatement()}
	}

	return node
}

func (p *parser) parseSourceElements() (body ast.Statements) {
	for p.currentKind() != token.Eof {
		body = append(body, p.parseStatementProgress())
	}

	return body
}

func (p *parser) parseProgram() *ast.Program {
	return &ast.Program{
		Body: p.parseSourceElements(),
	}
}

func (p *parser) parseBreakStatement() ast.Stmt {
	idx := p.expect(token.Break)

	if !p.token.OnNewLine && token.ID(p.currentKind()) {
		identifier := p.parseIdentifier()
		if !p.scope.hasLabel(identifier.Name) {
			p.errorAt(identifier.Idx, "Undefined label '%s'", identifier.Name)
			return &ast.BadStatement{From: idx, To: identifier.Idx1()}
		}
		p.semicolon()
		return &ast.BreakStatement{
			Idx:   idx,
			Label: identifier,
		}
	}

	if !p.scope.inIteration && !p.scope.inSwitch {
		p.errorAt(idx, "Illegal break statement")
		p.semicolon()
		return &ast.BadStatement{From: idx, To: idx + 5}
	}
	p.semicolon()
	return &ast.BreakStatement{
		Idx: idx,
	}
}

func (p *parser) parseContinueStatement() ast.Stmt {
	idx := p.expect(token.Continue)

	if !p.scope.inIteration {
		p.errorAt(idx, "Illegal continue statement: no surrounding iteration statement")
		p.nextStatement()
		return &ast.BadStatement{From: idx, To: p.currentOffset()}
	}

	if !p.token.OnNewLine && token.ID(p.currentKind()) {
		identifier := p.parseIdentifier()
		if !p.scope.hasLabel(identifier.Name) {
			p.errorAt(identifier.Idx, "Undefined label '%s'", identifier.Name)
			return &ast.BadStatement{From: idx, To: identifier.Idx1()}
		}
		p.semicolon()
		return &ast.ContinueStatement{
			Idx:   idx,
			Label: identifier,
		}
	}

	p.semicolon()
	return &ast.ContinueStatement{
		Idx: idx,
	}
}

// Find the next statement after an error (recover)
func (p *parser) nextStatement() {
	for {
		switch p.currentKind() {
		case token.Break, token.Continue,
			token.For, token.If, token.Return, token.Switch,
			token.Var, token.Do, token.Try, token.With,
			token.While, token.Throw, token.Catch, token.Finally:
			// Return only if parser made some progress since last
			// sync or if it has not reached 10 next calls without
			// progress. Otherwise consume at least one token to
			// avoid an endless parser loop
			if p.currentOffset() == p.recover.idx && p.recover.count < 10 {
				p.recover.count++
				return
			}
			if p.currentOffset() > p.recover.idx {
				p.recover.idx = p.currentOffset()
				p.recover.count = 0
				return
			}
		case token.Eof, token.Semicolon, token.RightBrace:
			if p.currentKind() == token.Semicolon {
				p.next()
			}
			return
		}
		p.next()
	}
}
