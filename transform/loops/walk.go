package loops

import (
	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/ast/ext"
)

// eachChild calls single for every child statement slot of s and list for
// every child statement list. Expressions are never entered.
func eachChild(s ast.Stmt, single func(*ast.Statement), list func(*ast.Statements)) {
	switch n := s.(type) {
	case *ast.Statement:
		eachChild(n.Stmt, single, list)
	case *ast.BlockStatement:
		list(&n.List)
	case *ast.IfStatement:
		single(n.Consequent)
		if n.Alternate != nil {
			single(n.Alternate)
		}
	case *ast.WhileStatement, *ast.ForStatement, *ast.ForInStatement,
		*ast.ForOfStatement, *ast.DoWhileStatement:
		single(ext.LoopBody(n))
	case *ast.LabelledStatement:
		single(n.Statement)
	case *ast.WithStatement:
		single(n.Body)
	case *ast.SwitchStatement:
		for i := range n.Body {
			list(&n.Body[i].Consequent)
		}
	case *ast.TryStatement:
		list(&n.Body.List)
		if n.Catch != nil {
			list(&n.Catch.Body.List)
		}
		if n.Finally != nil {
			list(&n.Finally.List)
		}
	}
}

// inspect walks s in pre-order, calling fn for every statement. Descent
// stops below statements whose kind is in stop; fn still sees them. fn may
// return false to skip the children of a statement.
func inspect(s ast.Stmt, stop ext.KindSet, fn func(ast.Stmt) bool) {
	if s == nil {
		return
	}
	if st, ok := s.(*ast.Statement); ok {
		if st == nil || st.Stmt == nil {
			return
		}
		s = st.Stmt
	}
	if !fn(s) || stop.Has(ext.Classify(s)) {
		return
	}
	eachChild(s,
		func(slot *ast.Statement) { inspect(slot, stop, fn) },
		func(l *ast.Statements) {
			for i := range *l {
				inspect(&(*l)[i], stop, fn)
			}
		},
	)
}
