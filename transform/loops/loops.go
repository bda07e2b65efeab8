// Package loops rewrites for and do-while loops into equivalent while loops.
package loops

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/ast/ext"
	"github.com/reloopjs/reloop/token"
	"github.com/reloopjs/reloop/transform/blocks"
)

// UnsupportedConstructError reports a loop that cannot be rewritten without
// changing its behaviour. Label is set for a labeled continue.
type UnsupportedConstructError struct {
	Idx       ast.Idx
	Label     string
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	if e.Construct != "" {
		return e.Construct + " is not supported"
	}
	return fmt.Sprintf("labeled continue '%s' is not supported", e.Label)
}

var (
	stopFunctions      = ext.Kinds(ext.KindFunction)
	stopLoopsFunctions = ext.Kinds(ext.KindLoop, ext.KindFunction)
)

// check fails on the first labeled continue in body, searching through
// nested loops but not functions. Continues of this loop are also rejected
// where the epilogue would run in the wrong place: inside a try whose
// finally would then run after it, and inside a switch when the epilogue
// ends the loop with a break that would only leave the switch.
func check(body *ast.Statement, epilogue ast.Stmt) error {
	var err error
	inspect(body, stopFunctions, func(s ast.Stmt) bool {
		if c, ok := s.(*ast.ContinueStatement); ok && c.Label != nil && err == nil {
			err = &UnsupportedConstructError{Idx: c.Idx, Label: c.Label.Name}
		}
		return err == nil
	})
	if err != nil || epilogue == nil {
		return err
	}

	exits := breaksOut(epilogue)
	inspect(body, stopLoopsFunctions, func(s ast.Stmt) bool {
		if err != nil {
			return false
		}
		switch n := s.(type) {
		case *ast.SwitchStatement:
			if exits {
				err = firstContinue(n, "continue inside a switch of a do-while loop")
				return false
			}
		case *ast.TryStatement:
			if n.Finally == nil {
				break
			}
			if err = firstContinue(n.Body, "continue inside try with finally"); err == nil && n.Catch != nil {
				err = firstContinue(n.Catch.Body, "continue inside try with finally")
			}
		}
		return err == nil
	})
	return err
}

// firstContinue returns an error for the first continue in s that belongs
// to the loop being rewritten.
func firstContinue(s ast.Stmt, construct string) error {
	var err error
	inspect(s, stopLoopsFunctions, func(s ast.Stmt) bool {
		if c, ok := s.(*ast.ContinueStatement); ok && err == nil {
			err = &UnsupportedConstructError{Idx: c.Idx, Construct: construct}
		}
		return err == nil
	})
	return err
}

// breaksOut reports whether s holds an unlabeled break that would leave the
// statement s is placed in.
func breaksOut(s ast.Stmt) bool {
	found := false
	inspect(s, ext.Kinds(ext.KindLoop, ext.KindFunction), func(s ast.Stmt) bool {
		switch n := s.(type) {
		case *ast.BreakStatement:
			found = found || n.Label == nil
		case *ast.SwitchStatement:
			return false
		}
		return !found
	})
	return found
}

type redirector struct {
	epilogue ast.Stmt
	count    int
}

func (r *redirector) site() ast.Statement {
	r.count++
	return ast.Statement{Stmt: ast.CloneStmt(r.epilogue)}
}

func isContinue(s ast.Statement) (*ast.ContinueStatement, bool) {
	c, ok := s.Stmt.(*ast.ContinueStatement)
	return c, ok
}

// slot rewrites a continue held directly in a single-statement slot.
func (r *redirector) slot(s *ast.Statement) {
	if c, ok := isContinue(*s); ok {
		s.Stmt = &ast.BlockStatement{
			LeftBrace:  c.Idx0(),
			List:       ast.Statements{r.site(), {Stmt: c}},
			RightBrace: c.Idx1() - 1,
		}
		return
	}
	r.descend(s)
}

func (r *redirector) list(l *ast.Statements) {
	for i := 0; i < len(*l); i++ {
		c, ok := isContinue((*l)[i])
		if !ok {
			r.descend(&(*l)[i])
			continue
		}
		*l = slices.Replace(*l, i, i+1, r.site(), ast.Statement{Stmt: c})
		i++
	}
}

func (r *redirector) descend(s *ast.Statement) {
	if stopLoopsFunctions.Has(ext.Classify(s)) {
		return
	}
	eachChild(s, r.slot, r.list)
}

// RedirectContinues makes body a block that ends with epilogue and runs a
// copy of epilogue before each continue that targets the enclosing loop.
// Continues in nested loops and functions are left alone. A nil epilogue
// only coerces body to a block. Labeled continues are rejected before
// anything is modified.
func RedirectContinues(body *ast.Statement, epilogue ast.Stmt) (*ast.BlockStatement, error) {
	block, _, err := redirectContinues(body, epilogue)
	return block, err
}

func redirectContinues(body *ast.Statement, epilogue ast.Stmt) (*ast.BlockStatement, int, error) {
	if err := check(body, epilogue); err != nil {
		return nil, 0, err
	}
	block := blocks.Normalize(body)
	if block == nil {
		block = &ast.Statement{Stmt: &ast.BlockStatement{}}
	}
	n := block.Stmt.(*ast.BlockStatement)
	if epilogue == nil {
		return n, 0, nil
	}
	r := &redirector{epilogue: epilogue}
	r.list(&n.List)
	n.List = append(n.List, ast.Statement{Stmt: epilogue})
	return n, r.count, nil
}

// Canonicalizer rewrites loops and counts what it rewrote.
type Canonicalizer struct {
	ForLoops            int
	DoWhileLoops        int
	ContinuesRedirected int
}

// Canonicalize rewrites a for or do-while loop into a while loop. While,
// for-in and for-of loops are returned unchanged. Any other statement is a
// *ext.ShapeError.
func Canonicalize(loop ast.Stmt) (ast.Stmt, error) {
	return (&Canonicalizer{}).Canonicalize(loop)
}

// Canonicalize is the counting form of the package level Canonicalize.
func (c *Canonicalizer) Canonicalize(loop ast.Stmt) (ast.Stmt, error) {
	if err := ext.AssertIs(loop, ext.KindLoop); err != nil {
		return nil, err
	}
	if st, ok := loop.(*ast.Statement); ok {
		loop = st.Stmt
	}
	switch n := loop.(type) {
	case *ast.ForStatement:
		return c.forLoop(n)
	case *ast.DoWhileStatement:
		return c.doWhileLoop(n)
	}
	return loop, nil
}

func trueLiteral() *ast.Expression {
	return &ast.Expression{Expr: &ast.BooleanLiteral{Value: true}}
}

// forLoop turns for (init; test; update) body into
//
//	{ init; while (test) { body; update; } }
//
// with update also placed before every continue of the loop. Without an
// initializer the bare while loop is returned.
func (c *Canonicalizer) forLoop(n *ast.ForStatement) (ast.Stmt, error) {
	var epilogue ast.Stmt
	if n.Update != nil {
		epilogue = &ast.ExpressionStatement{Expression: n.Update}
	}
	body, redirected, err := redirectContinues(blocks.Normalize(n.Body), epilogue)
	if err != nil {
		return nil, err
	}
	test := n.Test
	if test == nil {
		test = trueLiteral()
	}
	while := &ast.WhileStatement{While: n.For, Test: test, Body: &ast.Statement{Stmt: body}}
	c.ForLoops++
	c.ContinuesRedirected += redirected

	if n.Initializer == nil {
		return while, nil
	}
	var init ast.Stmt
	switch head := n.Initializer.Initializer.(type) {
	case *ast.VariableDeclaration:
		init = head
	case *ast.Expression:
		init = &ast.ExpressionStatement{Expression: head}
	default:
		return nil, &ext.ShapeError{Want: ext.KindStatement, Got: ext.KindInvalid, Idx: n.For}
	}
	return &ast.BlockStatement{
		LeftBrace:  n.For,
		List:       ast.Statements{{Stmt: init}, {Stmt: while}},
		RightBrace: n.Idx1() - 1,
	}, nil
}

// doWhileLoop turns do body while (test) into
//
//	while (true) { body; if (!(test)) break; }
//
// with the test also placed before every continue of the loop.
func (c *Canonicalizer) doWhileLoop(n *ast.DoWhileStatement) (ast.Stmt, error) {
	epilogue := &ast.IfStatement{
		If: n.Test.Idx0(),
		Test: &ast.Expression{Expr: &ast.UnaryExpression{
			Operator: token.Not,
			Operand:  n.Test,
		}},
		Consequent: &ast.Statement{Stmt: &ast.BreakStatement{}},
	}
	body, redirected, err := redirectContinues(blocks.Normalize(n.Body), epilogue)
	if err != nil {
		return nil, err
	}
	c.DoWhileLoops++
	c.ContinuesRedirected += redirected
	return &ast.WhileStatement{While: n.Do, Test: trueLiteral(), Body: &ast.Statement{Stmt: body}}, nil
}

// Spliceable reports whether the block returned for a for loop may be
// merged into the enclosing statement list. Lexical initializers keep their
// block so the binding stays scoped to the loop.
func Spliceable(s ast.Stmt) bool {
	block, ok := s.(*ast.BlockStatement)
	if !ok || len(block.List) != 2 {
		return false
	}
	if _, ok := block.List[1].Stmt.(*ast.WhileStatement); !ok {
		return false
	}
	switch init := block.List[0].Stmt.(type) {
	case *ast.VariableDeclaration:
		return !init.IsLexical()
	case *ast.ExpressionStatement:
		return true
	}
	return false
}
