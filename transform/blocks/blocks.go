// Package blocks gives if branches and loop bodies explicit block bodies.
package blocks

import (
	"github.com/reloopjs/reloop/ast"
)

// Normalize returns s as a block statement. A block is returned unchanged;
// any other statement is wrapped in a new single-statement block that shares
// the original node. A nil slot stays nil.
func Normalize(s *ast.Statement) *ast.Statement {
	if s == nil || s.Stmt == nil {
		return s
	}
	if _, ok := s.Stmt.(*ast.BlockStatement); ok {
		return s
	}
	block := &ast.BlockStatement{List: ast.Statements{*s}}
	if idx := s.Idx0(); idx > 0 {
		block.LeftBrace = idx
		block.RightBrace = s.Idx1() - 1
	}
	return &ast.Statement{Stmt: block}
}

// normalizeSlot normalizes *slot in place and reports whether a block was
// introduced.
func normalizeSlot(slot **ast.Statement) bool {
	before := *slot
	*slot = Normalize(before)
	return *slot != before
}

// FixIf normalizes the branches of n. An alternate that is itself an if
// statement is left alone so else-if chains stay flat. It returns the number
// of blocks introduced.
func FixIf(n *ast.IfStatement) int {
	added := 0
	if normalizeSlot(&n.Consequent) {
		added++
	}
	if n.Alternate != nil {
		if _, chained := n.Alternate.Stmt.(*ast.IfStatement); !chained && normalizeSlot(&n.Alternate) {
			added++
		}
	}
	return added
}

// FixLoop normalizes the body of a loop statement. Other statements are left
// untouched. It returns the number of blocks introduced.
func FixLoop(loop ast.Stmt) int {
	var slot **ast.Statement
	switch n := loop.(type) {
	case *ast.WhileStatement:
		slot = &n.Body
	case *ast.ForStatement:
		slot = &n.Body
	case *ast.ForInStatement:
		slot = &n.Body
	case *ast.ForOfStatement:
		slot = &n.Body
	case *ast.DoWhileStatement:
		slot = &n.Body
	default:
		return 0
	}
	if normalizeSlot(slot) {
		return 1
	}
	return 0
}

type braces struct {
	ast.NoopVisitor
	added int
}

func (b *braces) VisitIfStatement(n *ast.IfStatement) {
	b.added += FixIf(n)
	n.VisitChildrenWith(b.V)
}

func (b *braces) VisitWhileStatement(n *ast.WhileStatement) {
	b.added += FixLoop(n)
	n.VisitChildrenWith(b.V)
}

func (b *braces) VisitForStatement(n *ast.ForStatement) {
	b.added += FixLoop(n)
	n.VisitChildrenWith(b.V)
}

func (b *braces) VisitForInStatement(n *ast.ForInStatement) {
	b.added += FixLoop(n)
	n.VisitChildrenWith(b.V)
}

func (b *braces) VisitForOfStatement(n *ast.ForOfStatement) {
	b.added += FixLoop(n)
	n.VisitChildrenWith(b.V)
}

func (b *braces) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	b.added += FixLoop(n)
	n.VisitChildrenWith(b.V)
}

// Braces normalizes every if statement and loop in p, including those
// nested in function bodies and expressions. It returns the number of blocks
// introduced.
func Braces(p *ast.Program) int {
	visitor := &braces{}
	visitor.V = visitor
	p.VisitWith(visitor)
	return visitor.added
}
