package ext_test

import (
	"errors"
	"testing"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/ast/ext"
)

func TestClassify(t *testing.T) {
	var tests = []struct {
		stmt ast.Stmt
		want ext.Kind
	}{
		{nil, ext.KindInvalid},
		{(*ast.Statement)(nil), ext.KindInvalid},
		{&ast.Statement{}, ext.KindInvalid},
		{&ast.BlockStatement{}, ext.KindBlock},
		{&ast.ForStatement{}, ext.KindLoop},
		{&ast.DoWhileStatement{}, ext.KindLoop},
		{&ast.ForOfStatement{}, ext.KindLoop},
		{&ast.Statement{Stmt: &ast.WhileStatement{}}, ext.KindLoop},
		{&ast.IfStatement{}, ext.KindConditional},
		{&ast.ContinueStatement{}, ext.KindJump},
		{&ast.FunctionDeclaration{}, ext.KindFunction},
		{&ast.EmptyStatement{}, ext.KindStatement},

		{(*ast.BlockStatement)(nil), ext.KindInvalid},
		{(*ast.ForStatement)(nil), ext.KindInvalid},
		{(*ast.WhileStatement)(nil), ext.KindInvalid},
		{(*ast.DoWhileStatement)(nil), ext.KindInvalid},
		{(*ast.ForInStatement)(nil), ext.KindInvalid},
		{(*ast.ForOfStatement)(nil), ext.KindInvalid},
		{(*ast.IfStatement)(nil), ext.KindInvalid},
		{(*ast.BreakStatement)(nil), ext.KindInvalid},
		{&ast.Statement{Stmt: (*ast.ForStatement)(nil)}, ext.KindInvalid},
	}
	for _, test := range tests {
		if got := ext.Classify(test.stmt); got != test.want {
			t.Errorf("Classify(%T) = %s; want %s", test.stmt, got, test.want)
		}
	}
}

func TestAssertIsTypedNil(t *testing.T) {
	err := ext.AssertIs((*ast.ForStatement)(nil), ext.KindLoop)
	var shape *ext.ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("err = %v; want *ext.ShapeError", err)
	}
	if shape.Got != ext.KindInvalid || shape.Idx != 0 {
		t.Errorf("shape error = %+v", shape)
	}
	if err := ext.AssertIs(&ast.ForStatement{}, ext.KindLoop); err != nil {
		t.Errorf("AssertIs(for) = %v", err)
	}
}
