package ast

import "github.com/reloopjs/reloop/token"

type (
	Expressions []Expression

	Expression struct {
		Expr
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		VisitableNode
		_expr()
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions // elisions hold a nil Expr
	}

	AssignExpression struct {
		Operator token.Token // Assign or a compound assignment
		Left     *Expression
		Right    *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	// MemberExpression is either object.property or object[property].
	MemberExpression struct {
		Object       *Expression
		Property     *Expression
		Computed     bool
		RightBracket Idx
	}

	Identifier struct {
		Idx  Idx
		Name string
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	NullLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Idx     Idx
		Literal string
		Value   float64
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	RegExpLiteral struct {
		Idx     Idx
		Literal string
		Pattern string
		Flags   string
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	SpreadElement struct {
		Ellipsis   Idx
		Expression *Expression
	}

	StringLiteral struct {
		Idx     Idx
		Literal string // raw source text, quotes included
		Value   string
	}

	ThisExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token // Increment or Decrement
		Idx      Idx
		Operand  *Expression
		Postfix  bool
	}
)

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*BooleanLiteral) _expr()        {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*FunctionLiteral) _expr()       {}
func (*ArrowFunctionLiteral) _expr()  {}
func (*Identifier) _expr()            {}
func (*InvalidExpression) _expr()     {}
func (*NewExpression) _expr()         {}
func (*NullLiteral) _expr()           {}
func (*NumberLiteral) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*RegExpLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*SpreadElement) _expr()         {}
func (*StringLiteral) _expr()         {}
func (*ThisExpression) _expr()        {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}

// Literal returns the source spelling of the boolean.
func (n *BooleanLiteral) Literal() string {
	if n.Value {
		return "true"
	}
	return "false"
}
