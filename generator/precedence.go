package generator

import (
	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/token"
)

const precedencePrimary parser.Precedence = 255

// precedenceOf returns the binding power of e as an operand.
func precedenceOf(e ast.Expr) parser.Precedence {
	switch n := e.(type) {
	case *ast.Expression:
		return precedenceOf(n.Expr)
	case *ast.SequenceExpression:
		return parser.PrecedenceComma
	case *ast.SpreadElement:
		return parser.PrecedenceSpread
	case *ast.AssignExpression, *ast.ArrowFunctionLiteral:
		return parser.PrecedenceAssign
	case *ast.ConditionalExpression:
		return parser.PrecedenceConditional
	case *ast.BinaryExpression:
		return parser.OperatorPrecedence(n.Operator)
	case *ast.UnaryExpression:
		return parser.PrecedencePrefix
	case *ast.UpdateExpression:
		if n.Postfix {
			return parser.PrecedencePostfix
		}
		return parser.PrecedencePrefix
	case *ast.NewExpression:
		if n.LeftParenthesis == 0 && len(n.ArgumentList) == 0 && n.RightParenthesis == 0 {
			return parser.PrecedenceNew
		}
		return parser.PrecedenceMember
	case *ast.CallExpression:
		return parser.PrecedenceCall
	case *ast.MemberExpression:
		return parser.PrecedenceMember
	}
	return precedencePrimary
}

func containsCall(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Expression:
		return containsCall(n.Expr)
	case *ast.CallExpression:
		return true
	case *ast.MemberExpression:
		return containsCall(n.Object.Expr)
	}
	return false
}

// leftmost returns the expression printed first when e is printed without
// parentheses.
func leftmost(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Expression:
		return leftmost(n.Expr)
	case *ast.SequenceExpression:
		return leftmost(n.Sequence[0].Expr)
	case *ast.AssignExpression:
		return leftmost(n.Left.Expr)
	case *ast.BinaryExpression:
		return leftmost(n.Left.Expr)
	case *ast.ConditionalExpression:
		return leftmost(n.Test.Expr)
	case *ast.CallExpression:
		return leftmost(n.Callee.Expr)
	case *ast.MemberExpression:
		return leftmost(n.Object.Expr)
	case *ast.UpdateExpression:
		if n.Postfix {
			return leftmost(n.Operand.Expr)
		}
	}
	return e
}

func isLogical(e ast.Expr) bool {
	if b, ok := e.(*ast.BinaryExpression); ok {
		return b.Operator == token.LogicalAnd || b.Operator == token.LogicalOr
	}
	return false
}

func isCoalesce(e ast.Expr) bool {
	b, ok := e.(*ast.BinaryExpression)
	return ok && b.Operator == token.Coalesce
}
