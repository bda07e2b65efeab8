package ast

import "github.com/reloopjs/reloop/token"

type (
	Statements []Statement

	Statement struct {
		Stmt
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		VisitableNode
		_stmt()
	}

	BadStatement struct {
		From Idx
		To   Idx
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx
	}

	BreakStatement struct {
		Idx   Idx
		Label *Identifier
	}

	ContinueStatement struct {
		Idx   Idx
		Label *Identifier
	}

	CaseStatement struct {
		Case       Idx
		Test       *Expression
		Consequent Statements
	}

	CatchStatement struct {
		Catch     Idx
		Parameter *Identifier
		Body      *BlockStatement
	}

	DebuggerStatement struct {
		Debugger Idx
	}

	DoWhileStatement struct {
		Do               Idx
		Body             *Statement
		Test             *Expression
		RightParenthesis Idx
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	ForInStatement struct {
		For    Idx
		Into   *ForInto
		Source *Expression
		Body   *Statement
	}

	ForOfStatement struct {
		For    Idx
		Into   *ForInto
		Source *Expression
		Body   *Statement
	}

	ForStatement struct {
		For         Idx
		Initializer *ForLoopInitializer
		Test        *Expression
		Update      *Expression
		Body        *Statement
	}

	// ForLoopInitializer holds either a *VariableDeclaration or an *Expression.
	ForLoopInitializer struct {
		Initializer ForHead
	}

	// ForInto is the left-hand side of a for-in or for-of loop.
	ForInto struct {
		Into ForHead
	}

	// ForHead is implemented by *VariableDeclaration and *Expression.
	ForHead interface {
		VisitableNode
		_forHead()
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement
	}

	LabelledStatement struct {
		Label     *Identifier
		Colon     Idx
		Statement *Statement
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression
	}

	SwitchStatement struct {
		Switch       Idx
		Discriminant *Expression
		Default      int
		Body         []CaseStatement
		RightBrace   Idx
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}

	TryStatement struct {
		Try     Idx
		Body    *BlockStatement
		Catch   *CatchStatement
		Finally *BlockStatement
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclaration struct {
		Idx   Idx
		Token token.Token // var, let or const
		List  VariableDeclarators
	}

	VariableDeclarator struct {
		Target      *Identifier
		Initializer *Expression
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}

	WithStatement struct {
		With   Idx
		Object *Expression
		Body   *Statement
	}

	FunctionDeclaration struct {
		Function *FunctionLiteral
	}
)

func (*BadStatement) _stmt()        {}
func (*BlockStatement) _stmt()      {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*DebuggerStatement) _stmt()   {}
func (*DoWhileStatement) _stmt()    {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForInStatement) _stmt()      {}
func (*ForOfStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*IfStatement) _stmt()         {}
func (*LabelledStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*VariableDeclaration) _stmt() {}
func (*WhileStatement) _stmt()      {}
func (*WithStatement) _stmt()       {}
func (*FunctionDeclaration) _stmt() {}

func (*VariableDeclaration) _forHead() {}
func (*Expression) _forHead()          {}

// IsLexical reports whether the declaration introduces block scoped bindings.
func (n *VariableDeclaration) IsLexical() bool {
	return n.Token == token.Let || n.Token == token.Const
}
