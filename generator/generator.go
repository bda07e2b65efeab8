package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/token"
)

// Generate prints node as JavaScript source. Nested statements are indented
// with four spaces and parentheses are emitted only where operator
// precedence requires them.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

// operand prints e, parenthesized when it binds looser than min.
func (s *state) operand(e *ast.Expression, min parser.Precedence) {
	if e == nil || e.Expr == nil {
		return
	}
	if precedenceOf(e.Expr) < min {
		s.write("(")
		gen(s.wrap(e.Expr))
		s.write(")")
		return
	}
	gen(s.wrap(e.Expr))
}

func (s *state) body(stmt *ast.Statement) {
	if stmt == nil || stmt.Stmt == nil {
		s.write(";")
		return
	}
	if _, ok := stmt.Stmt.(*ast.BlockStatement); ok {
		s.write(" ")
		gen(s.wrap(stmt.Stmt))
		return
	}
	s.indent++
	s.lineAndPad()
	gen(s.wrap(stmt.Stmt))
	s.indent--
}

func (s *state) statements(list ast.Statements) {
	for _, st := range list {
		s.lineAndPad()
		gen(s.wrap(st.Stmt))
	}
}

func (s *state) expressionList(list ast.Expressions) {
	for i := range list {
		if i > 0 {
			s.write(", ")
		}
		s.operand(&list[i], parser.PrecedenceAssign)
	}
}

func (s *state) parameters(params *ast.ParameterList) {
	s.write("(")
	for i, p := range params.List {
		if i > 0 {
			s.write(", ")
		}
		gen(s.wrap(&p))
	}
	if params.Rest != nil {
		if len(params.List) > 0 {
			s.write(", ")
		}
		s.write("...")
		gen(s.wrap(params.Rest))
	}
	s.write(")")
}

func (s *state) forHead(head ast.ForHead) {
	switch h := head.(type) {
	case *ast.VariableDeclaration:
		s.declaration(h)
	case *ast.Expression:
		s.operand(h, parser.PrecedenceLowest)
	}
}

func (s *state) declaration(n *ast.VariableDeclaration) {
	s.write(n.Token.String())
	s.write(" ")
	for i := range n.List {
		if i > 0 {
			s.write(", ")
		}
		gen(s.wrap(&n.List[i]))
	}
}

// danglingElse reports whether stmt ends in an if without an else, which
// would capture a following else when printed without braces.
func danglingElse(stmt ast.Stmt) bool {
	switch n := stmt.(type) {
	case *ast.IfStatement:
		if n.Alternate == nil {
			return true
		}
		return danglingElse(n.Alternate.Stmt)
	case *ast.WhileStatement:
		return danglingElse(n.Body.Stmt)
	case *ast.ForStatement:
		return danglingElse(n.Body.Stmt)
	case *ast.ForInStatement:
		return danglingElse(n.Body.Stmt)
	case *ast.ForOfStatement:
		return danglingElse(n.Body.Stmt)
	case *ast.WithStatement:
		return danglingElse(n.Body.Stmt)
	case *ast.LabelledStatement:
		return danglingElse(n.Statement.Stmt)
	}
	return false
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for i, st := range n.Body {
			if i > 0 {
				s.line()
			}
			gen(s.wrap(st.Stmt))
		}
	case *ast.Statement:
		gen(s.wrap(n.Stmt))
	case *ast.Expression:
		gen(s.wrap(n.Expr))

	case *ast.BadStatement:
	case *ast.BlockStatement:
		if len(n.List) == 0 {
			s.write("{}")
			return
		}
		s.write("{")
		s.indent++
		s.statements(n.List)
		s.indent--
		s.lineAndPad()
		s.write("}")
	case *ast.BreakStatement:
		s.write("break")
		if n.Label != nil {
			s.write(" " + n.Label.Name)
		}
		s.write(";")
	case *ast.ContinueStatement:
		s.write("continue")
		if n.Label != nil {
			s.write(" " + n.Label.Name)
		}
		s.write(";")
	case *ast.DebuggerStatement:
		s.write("debugger;")
	case *ast.DoWhileStatement:
		s.write("do")
		s.body(n.Body)
		if _, ok := n.Body.Stmt.(*ast.BlockStatement); ok {
			s.write(" ")
		} else {
			s.lineAndPad()
		}
		s.write("while (")
		s.operand(n.Test, parser.PrecedenceLowest)
		s.write(");")
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.ExpressionStatement:
		switch leftmost(n.Expression.Expr).(type) {
		case *ast.FunctionLiteral, *ast.ObjectLiteral:
			s.write("(")
			s.operand(n.Expression, parser.PrecedenceLowest)
			s.write(");")
			return
		}
		s.operand(n.Expression, parser.PrecedenceLowest)
		s.write(";")
	case *ast.ForInStatement:
		s.write("for (")
		s.forHead(n.Into.Into)
		s.write(" in ")
		s.operand(n.Source, parser.PrecedenceLowest)
		s.write(")")
		s.body(n.Body)
	case *ast.ForOfStatement:
		s.write("for (")
		s.forHead(n.Into.Into)
		s.write(" of ")
		s.operand(n.Source, parser.PrecedenceAssign)
		s.write(")")
		s.body(n.Body)
	case *ast.ForStatement:
		s.write("for (")
		if n.Initializer != nil {
			s.forHead(n.Initializer.Initializer)
		}
		s.write(";")
		if n.Test != nil {
			s.write(" ")
			s.operand(n.Test, parser.PrecedenceLowest)
		}
		s.write(";")
		if n.Update != nil {
			s.write(" ")
			s.operand(n.Update, parser.PrecedenceLowest)
		}
		s.write(")")
		s.body(n.Body)
	case *ast.IfStatement:
		s.write("if (")
		s.operand(n.Test, parser.PrecedenceLowest)
		s.write(")")
		consequent := n.Consequent
		if n.Alternate != nil && danglingElse(consequent.Stmt) {
			consequent = &ast.Statement{Stmt: &ast.BlockStatement{List: ast.Statements{*consequent}}}
		}
		s.body(consequent)
		if n.Alternate != nil {
			if _, ok := consequent.Stmt.(*ast.BlockStatement); ok {
				s.write(" ")
			} else {
				s.lineAndPad()
			}
			s.write("else")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				s.write(" ")
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				s.body(n.Alternate)
			}
		}
	case *ast.LabelledStatement:
		s.write(n.Label.Name)
		s.write(": ")
		gen(s.wrap(n.Statement.Stmt))
	case *ast.ReturnStatement:
		s.write("return")
		if n.Argument != nil {
			s.write(" ")
			s.operand(n.Argument, parser.PrecedenceLowest)
		}
		s.write(";")
	case *ast.SwitchStatement:
		s.write("switch (")
		s.operand(n.Discriminant, parser.PrecedenceLowest)
		s.write(") {")
		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(&n.Body[i]))
		}
		s.indent--
		s.lineAndPad()
		s.write("}")
	case *ast.CaseStatement:
		if n.Test != nil {
			s.write("case ")
			s.operand(n.Test, parser.PrecedenceLowest)
			s.write(":")
		} else {
			s.write("default:")
		}
		s.indent++
		s.statements(n.Consequent)
		s.indent--
	case *ast.ThrowStatement:
		s.write("throw ")
		s.operand(n.Argument, parser.PrecedenceLowest)
		s.write(";")
	case *ast.TryStatement:
		s.write("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.write(" ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.write(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.CatchStatement:
		s.write("catch ")
		if n.Parameter != nil {
			s.write("(" + n.Parameter.Name + ") ")
		}
		gen(s.wrap(n.Body))
	case *ast.VariableDeclaration:
		s.declaration(n)
		s.write(";")
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.write(" = ")
			s.operand(n.Initializer, parser.PrecedenceAssign)
		}
	case *ast.WhileStatement:
		s.write("while (")
		s.operand(n.Test, parser.PrecedenceLowest)
		s.write(")")
		s.body(n.Body)
	case *ast.WithStatement:
		s.write("with (")
		s.operand(n.Object, parser.PrecedenceLowest)
		s.write(")")
		s.body(n.Body)
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))

	case *ast.ArrayLiteral:
		s.write("[")
		for i := range n.Value {
			if i > 0 {
				s.write(", ")
			}
			s.operand(&n.Value[i], parser.PrecedenceAssign)
		}
		// A trailing elision needs its own comma to survive.
		if len(n.Value) > 0 && n.Value[len(n.Value)-1].Expr == nil {
			s.write(",")
		}
		s.write("]")
	case *ast.AssignExpression:
		s.operand(n.Left, parser.PrecedenceCall)
		s.write(" " + n.Operator.String() + " ")
		s.operand(n.Right, parser.PrecedenceAssign)
	case *ast.BinaryExpression:
		lbp := parser.OperatorPrecedence(n.Operator)
		left, right := lbp, lbp+1
		if n.Operator == token.Exponent {
			left, right = lbp+1, lbp
			if _, ok := n.Left.Expr.(*ast.UnaryExpression); ok {
				left = precedencePrimary
			}
		}
		if n.Operator == token.Coalesce {
			if isLogical(n.Left.Expr) {
				left = precedencePrimary
			}
			if isLogical(n.Right.Expr) {
				right = precedencePrimary
			}
		} else if isLogical(n) {
			if isCoalesce(n.Left.Expr) {
				left = precedencePrimary
			}
			if isCoalesce(n.Right.Expr) {
				right = precedencePrimary
			}
		}
		s.operand(n.Left, left)
		s.write(" " + n.Operator.String() + " ")
		s.operand(n.Right, right)
	case *ast.BooleanLiteral:
		s.write(n.Literal())
	case *ast.CallExpression:
		s.operand(n.Callee, parser.PrecedenceCall)
		s.write("(")
		s.expressionList(n.ArgumentList)
		s.write(")")
	case *ast.ConditionalExpression:
		s.operand(n.Test, parser.PrecedenceNullishCoalescing)
		s.write(" ? ")
		s.operand(n.Consequent, parser.PrecedenceAssign)
		s.write(" : ")
		s.operand(n.Alternate, parser.PrecedenceAssign)
	case *ast.MemberExpression:
		if num, ok := n.Object.Expr.(*ast.NumberLiteral); ok && !n.Computed && isPlainInteger(num) {
			s.write("(")
			gen(s.wrap(num))
			s.write(")")
		} else {
			s.operand(n.Object, parser.PrecedenceCall)
		}
		if n.Computed {
			s.write("[")
			s.operand(n.Property, parser.PrecedenceLowest)
			s.write("]")
		} else {
			s.write(".")
			gen(s.wrap(n.Property.Expr))
		}
	case *ast.FunctionLiteral:
		s.write("function")
		if n.Name != nil {
			s.write(" " + n.Name.Name)
		}
		s.parameters(n.ParameterList)
		s.write(" ")
		gen(s.wrap(n.Body))
	case *ast.ArrowFunctionLiteral:
		if len(n.ParameterList.List) == 1 && n.ParameterList.Rest == nil && n.ParameterList.List[0].Initializer == nil {
			gen(s.wrap(n.ParameterList.List[0].Target))
		} else {
			s.parameters(n.ParameterList)
		}
		s.write(" => ")
		switch b := n.Body.(type) {
		case *ast.BlockStatement:
			gen(s.wrap(b))
		case *ast.Expression:
			if _, ok := leftmost(b.Expr).(*ast.ObjectLiteral); ok {
				s.write("(")
				s.operand(b, parser.PrecedenceLowest)
				s.write(")")
			} else {
				s.operand(b, parser.PrecedenceAssign)
			}
		}
	case *ast.Identifier:
		s.write(n.Name)
	case *ast.InvalidExpression:
	case *ast.NewExpression:
		s.write("new ")
		if containsCall(n.Callee.Expr) {
			s.write("(")
			gen(s.wrap(n.Callee.Expr))
			s.write(")")
		} else {
			s.operand(n.Callee, parser.PrecedenceMember)
		}
		if n.LeftParenthesis != 0 || len(n.ArgumentList) > 0 {
			s.write("(")
			s.expressionList(n.ArgumentList)
			s.write(")")
		}
	case *ast.NullLiteral:
		s.write("null")
	case *ast.NumberLiteral:
		if n.Literal != "" {
			s.write(n.Literal)
		} else {
			s.write(formatNumber(n.Value))
		}
	case *ast.ObjectLiteral:
		if len(n.Value) == 0 {
			s.write("{}")
			return
		}
		s.write("{")
		for i := range n.Value {
			if i > 0 {
				s.write(",")
			}
			s.write(" ")
			gen(s.wrap(&n.Value[i]))
		}
		s.write(" }")
	case *ast.Property:
		gen(s.wrap(n.Prop))
	case *ast.PropertyKeyed:
		switch n.Kind {
		case ast.PropertyKindGet, ast.PropertyKindSet:
			s.write(string(n.Kind) + " ")
			fallthrough
		case ast.PropertyKindMethod:
			s.propertyKey(n)
			fn := n.Value.Expr.(*ast.FunctionLiteral)
			s.parameters(fn.ParameterList)
			s.write(" ")
			gen(s.wrap(fn.Body))
		default:
			s.propertyKey(n)
			s.write(": ")
			s.operand(n.Value, parser.PrecedenceAssign)
		}
	case *ast.PropertyShort:
		s.write(n.Name.Name)
	case *ast.RegExpLiteral:
		s.write(n.Literal)
	case *ast.SequenceExpression:
		s.expressionList(n.Sequence)
	case *ast.SpreadElement:
		s.write("...")
		s.operand(n.Expression, parser.PrecedenceAssign)
	case *ast.StringLiteral:
		if n.Literal != "" {
			s.write(n.Literal)
		} else {
			s.write(strconv.Quote(n.Value))
		}
	case *ast.ThisExpression:
		s.write("this")
	case *ast.UnaryExpression:
		s.write(n.Operator.String())
		switch n.Operator {
		case token.Typeof, token.Void, token.Delete:
			s.write(" ")
		case token.Plus, token.Minus:
			if startsWithSign(n.Operand.Expr, n.Operator) {
				s.write(" ")
			}
		}
		s.operand(n.Operand, parser.PrecedencePrefix)
	case *ast.UpdateExpression:
		if n.Postfix {
			s.operand(n.Operand, parser.PrecedencePostfix)
			s.write(n.Operator.String())
		} else {
			s.write(n.Operator.String())
			s.operand(n.Operand, parser.PrecedencePrefix)
		}
	}
}

func (s *state) propertyKey(n *ast.PropertyKeyed) {
	if n.Computed {
		s.write("[")
		s.operand(n.Key, parser.PrecedenceAssign)
		s.write("]")
		return
	}
	gen(s.wrap(n.Key.Expr))
}

// startsWithSign reports whether e prints with a leading + or - that would
// fuse with a preceding unary operator of the same sign.
func startsWithSign(e ast.Expr, op token.Token) bool {
	switch n := e.(type) {
	case *ast.UnaryExpression:
		return n.Operator == op
	case *ast.UpdateExpression:
		if n.Postfix {
			return false
		}
		return op == token.Plus && n.Operator == token.Increment ||
			op == token.Minus && n.Operator == token.Decrement
	}
	return false
}

func isPlainInteger(n *ast.NumberLiteral) bool {
	lit := n.Literal
	if lit == "" {
		lit = formatNumber(n.Value)
	}
	return !strings.ContainsAny(lit, ".eExXoObB")
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
