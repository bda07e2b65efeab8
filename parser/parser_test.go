package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/generator"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/token"
)

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches want once whitespace runs are collapsed.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := strings.Join(strings.Fields(generator.Generate(mustParse(t, code))), " ")
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// parseError parses code and returns the first syntax error.
func parseError(t *testing.T, code string) *parser.Error {
	t.Helper()
	_, err := parser.ParseFile(code)
	if err == nil {
		t.Fatalf("expected a syntax error for %q", code)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *parser.Error", err)
	}
	return perr
}

func exprOf(s ast.Statement) ast.Expr {
	return s.Stmt.(*ast.ExpressionStatement).Expression.Expr
}

func TestForStatementFullAST(t *testing.T) {
	p := mustParse(t, "for (var i = 0; i < 10; i++) { f(i); }")
	loop, ok := p.Body[0].Stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement = %T; want *ast.ForStatement", p.Body[0].Stmt)
	}
	decl, ok := loop.Initializer.Initializer.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("initializer = %T; want *ast.VariableDeclaration", loop.Initializer.Initializer)
	}
	if decl.Token != token.Var || decl.IsLexical() {
		t.Errorf("declaration token = %v; want var", decl.Token)
	}
	if _, ok := loop.Test.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("test = %T; want *ast.BinaryExpression", loop.Test.Expr)
	}
	update, ok := loop.Update.Expr.(*ast.UpdateExpression)
	if !ok || !update.Postfix || update.Operator != token.Increment {
		t.Errorf("update = %#v; want postfix ++", loop.Update.Expr)
	}
	body, ok := loop.Body.Stmt.(*ast.BlockStatement)
	if !ok || len(body.List) != 1 {
		t.Errorf("body = %#v; want block with one statement", loop.Body.Stmt)
	}
}

func TestForStatementEmptyAST(t *testing.T) {
	p := mustParse(t, "for (;;) x();")
	loop := p.Body[0].Stmt.(*ast.ForStatement)
	if loop.Initializer != nil || loop.Test != nil || loop.Update != nil {
		t.Errorf("empty for header parsed as %#v", loop)
	}
	if _, ok := loop.Body.Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("body = %T; want *ast.ExpressionStatement", loop.Body.Stmt)
	}
}

func TestForStatementExpressionInit(t *testing.T) {
	p := mustParse(t, "for (i = 0, j = 1; i < j; i++) {}")
	loop := p.Body[0].Stmt.(*ast.ForStatement)
	init, ok := loop.Initializer.Initializer.(*ast.Expression)
	if !ok {
		t.Fatalf("initializer = %T; want *ast.Expression", loop.Initializer.Initializer)
	}
	if _, ok := init.Expr.(*ast.SequenceExpression); !ok {
		t.Errorf("initializer expression = %T; want *ast.SequenceExpression", init.Expr)
	}
}

func TestForInAndOf(t *testing.T) {
	p := mustParse(t, "for (var k in o) {} for (const v of xs) {} for (a.b in c) {}")
	if _, ok := p.Body[0].Stmt.(*ast.ForInStatement); !ok {
		t.Errorf("statement 0 = %T; want *ast.ForInStatement", p.Body[0].Stmt)
	}
	of, ok := p.Body[1].Stmt.(*ast.ForOfStatement)
	if !ok {
		t.Fatalf("statement 1 = %T; want *ast.ForOfStatement", p.Body[1].Stmt)
	}
	if decl := of.Into.Into.(*ast.VariableDeclaration); decl.Token != token.Const {
		t.Errorf("for-of declaration = %v; want const", decl.Token)
	}
	in := p.Body[2].Stmt.(*ast.ForInStatement)
	if _, ok := in.Into.Into.(*ast.Expression).Expr.(*ast.MemberExpression); !ok {
		t.Errorf("for-in target = %T; want member expression", in.Into.Into)
	}
}

func TestDoWhileAST(t *testing.T) {
	p := mustParse(t, "do x++; while (x < 3) y();")
	loop, ok := p.Body[0].Stmt.(*ast.DoWhileStatement)
	if !ok {
		t.Fatalf("statement = %T; want *ast.DoWhileStatement", p.Body[0].Stmt)
	}
	if _, ok := loop.Body.Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("body = %T; want *ast.ExpressionStatement", loop.Body.Stmt)
	}
	if len(p.Body) != 2 {
		t.Errorf("program has %d statements; want 2", len(p.Body))
	}
}

func TestIfElseChainAST(t *testing.T) {
	p := mustParse(t, "if (a) b(); else if (c) d(); else e();")
	outer := p.Body[0].Stmt.(*ast.IfStatement)
	inner, ok := outer.Alternate.Stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("alternate = %T; want *ast.IfStatement", outer.Alternate.Stmt)
	}
	if inner.Alternate == nil {
		t.Fatal("inner alternate missing")
	}
	if _, ok := inner.Alternate.Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("inner alternate = %T; want *ast.ExpressionStatement", inner.Alternate.Stmt)
	}
}

func TestLabelledContinueAST(t *testing.T) {
	p := mustParse(t, "outer: while (a) { for (;;) { continue outer; } }")
	labelled := p.Body[0].Stmt.(*ast.LabelledStatement)
	if labelled.Label.Name != "outer" {
		t.Errorf("label = %q; want outer", labelled.Label.Name)
	}
	while := labelled.Statement.Stmt.(*ast.WhileStatement)
	loop := while.Body.Stmt.(*ast.BlockStatement).List[0].Stmt.(*ast.ForStatement)
	cont := loop.Body.Stmt.(*ast.BlockStatement).List[0].Stmt.(*ast.ContinueStatement)
	if cont.Label == nil || cont.Label.Name != "outer" {
		t.Errorf("continue label = %#v; want outer", cont.Label)
	}
}

func TestNodePositions(t *testing.T) {
	src := "x;\nwhile (a) { continue; }"
	p := mustParse(t, src)
	loop := p.Body[1].Stmt.(*ast.WhileStatement)
	if got := int(loop.Idx0()); got != strings.Index(src, "while")+1 {
		t.Errorf("while Idx0 = %d; want %d", got, strings.Index(src, "while")+1)
	}
	if got := int(loop.Idx1()); got != len(src)+1 {
		t.Errorf("while Idx1 = %d; want %d", got, len(src)+1)
	}
	cont := loop.Body.Stmt.(*ast.BlockStatement).List[0].Stmt.(*ast.ContinueStatement)
	if got := int(cont.Idx0()); got != strings.Index(src, "continue")+1 {
		t.Errorf("continue Idx0 = %d; want %d", got, strings.Index(src, "continue")+1)
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		code string
		op   token.Token
	}{
		{"a + b * c", token.Plus},
		{"a * b + c", token.Plus},
		{"a < b && c", token.LogicalAnd},
		{"a || b && c", token.LogicalOr},
		{"a ?? b", token.Coalesce},
		{"a | b ^ c & d", token.Or},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		bin, ok := exprOf(p.Body[0]).(*ast.BinaryExpression)
		if !ok {
			t.Errorf("%q: %T; want *ast.BinaryExpression", tt.code, exprOf(p.Body[0]))
			continue
		}
		if bin.Operator != tt.op {
			t.Errorf("%q: root operator = %v; want %v", tt.code, bin.Operator, tt.op)
		}
	}
}

func TestPrecedenceExponentiationRightAssociative(t *testing.T) {
	p := mustParse(t, "a ** b ** c")
	bin := exprOf(p.Body[0]).(*ast.BinaryExpression)
	if _, ok := bin.Left.Expr.(*ast.Identifier); !ok {
		t.Errorf("left = %T; want *ast.Identifier", bin.Left.Expr)
	}
	if _, ok := bin.Right.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("right = %T; want *ast.BinaryExpression", bin.Right.Expr)
	}
}

func TestPrecedenceTernaryOverAssignment(t *testing.T) {
	p := mustParse(t, "x = a ? b : c")
	assign := exprOf(p.Body[0]).(*ast.AssignExpression)
	if _, ok := assign.Right.Expr.(*ast.ConditionalExpression); !ok {
		t.Errorf("right = %T; want *ast.ConditionalExpression", assign.Right.Expr)
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"1e3", 1000},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"1_000", 1000},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		num, ok := exprOf(p.Body[0]).(*ast.NumberLiteral)
		if !ok {
			t.Errorf("%q: %T; want *ast.NumberLiteral", tt.code, exprOf(p.Body[0]))
			continue
		}
		if num.Value != tt.want {
			t.Errorf("%q: value = %v; want %v", tt.code, num.Value, tt.want)
		}
		if num.Literal != tt.code {
			t.Errorf("%q: literal = %q", tt.code, num.Literal)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{`'a'`, "a"},
		{`"b\n"`, "b\n"},
		{`'\x41B\u{43}'`, "ABC"},
		{`"😀"`, "\U0001F600"},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		str := exprOf(p.Body[0]).(*ast.StringLiteral)
		if str.Value != tt.want {
			t.Errorf("%s: value = %q; want %q", tt.code, str.Value, tt.want)
		}
	}
}

func TestRegExpAST(t *testing.T) {
	p := mustParse(t, "x = /a[/]b/gi")
	re, ok := exprOf(p.Body[0]).(*ast.AssignExpression).Right.Expr.(*ast.RegExpLiteral)
	if !ok {
		t.Fatal("right side is not a regexp literal")
	}
	if re.Pattern != "a[/]b" || re.Flags != "gi" {
		t.Errorf("regexp = %q / %q", re.Pattern, re.Flags)
	}
}

func TestArrowFunctionAST(t *testing.T) {
	p := mustParse(t, "f = (a, b = 2) => a + b; g = x => { return x; }; h = (a)")
	arrow := exprOf(p.Body[0]).(*ast.AssignExpression).Right.Expr.(*ast.ArrowFunctionLiteral)
	if len(arrow.ParameterList.List) != 2 {
		t.Errorf("parameters = %d; want 2", len(arrow.ParameterList.List))
	}
	if _, ok := arrow.Body.(*ast.Expression); !ok {
		t.Errorf("concise body = %T; want *ast.Expression", arrow.Body)
	}
	single := exprOf(p.Body[1]).(*ast.AssignExpression).Right.Expr.(*ast.ArrowFunctionLiteral)
	if _, ok := single.Body.(*ast.BlockStatement); !ok {
		t.Errorf("block body = %T; want *ast.BlockStatement", single.Body)
	}
	if _, ok := exprOf(p.Body[2]).(*ast.AssignExpression).Right.Expr.(*ast.Identifier); !ok {
		t.Error("parenthesised identifier parsed as arrow")
	}
}

func TestASI(t *testing.T) {
	tests := []struct {
		code  string
		count int
	}{
		{"a\nb", 2},
		{"a = 1\n++b", 2},
		{"function f() { return\n1 }", 1},
		{"while (a) { break\nb }", 1},
		{"x = y\n(z)", 1},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if len(p.Body) != tt.count {
			t.Errorf("%q: %d statements; want %d", tt.code, len(p.Body), tt.count)
		}
	}

	p := mustParse(t, "function f() { return\n1 }")
	body := p.Body[0].Stmt.(*ast.FunctionDeclaration).Function.Body
	if ret := body.List[0].Stmt.(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return argument = %#v; want nil", ret.Argument)
	}
}

func TestCommentsSkipped(t *testing.T) {
	p := mustParse(t, "// line\na /* block */ = /* multi\nline */ 1;")
	if len(p.Body) != 1 {
		t.Errorf("%d statements; want 1", len(p.Body))
	}
}

func TestRoundTripStatements(t *testing.T) {
	assertRoundTrip(t, "for (let i = 0; i < 3; i++) { if (i) continue; f(i); }",
		"for (let i = 0; i < 3; i++) { if (i) continue; f(i); }")
	assertRoundTrip(t, "do { i++ } while (i < 3)", "do { i++; } while (i < 3);")
	assertRoundTrip(t, "var o = { a: 1, 'b': [2, 3] }", "var o = { a: 1, 'b': [2, 3] };")
	assertRoundTrip(t, "switch (x) { case 1: case 2: y(); default: }",
		"switch (x) { case 1: case 2: y(); default: }")
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		code    string
		message string
	}{
		{"continue;", "Illegal continue statement: no surrounding iteration statement"},
		{"break;", "Illegal break statement"},
		{"while (a) { continue missing; }", "Undefined label 'missing'"},
		{"a: a: x;", "Label 'a' has already been declared"},
		{"return 1;", "Illegal return statement"},
		{"try {}", "Missing catch or finally after try"},
		{"const a;", "Missing initializer in const declaration"},
		{"function* g() {}", "Generator functions are not supported"},
		{"1 = 2;", "Invalid left-hand side in assignment"},
		{"if (a", "Unexpected end of input"},
	}
	for _, tt := range tests {
		perr := parseError(t, tt.code)
		if perr.Message != tt.message {
			t.Errorf("%q: error = %q; want %q", tt.code, perr.Message, tt.message)
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	src := "while (a) {}\ncontinue;"
	perr := parseError(t, src)
	if want := ast.Idx(strings.Index(src, "continue") + 1); perr.Idx != want {
		t.Errorf("error index = %d; want %d", perr.Idx, want)
	}
}

func TestUnsupportedSyntax(t *testing.T) {
	for _, code := range []string{
		"x = `template`;",
		"var {a} = o;",
	} {
		if _, err := parser.ParseFile(code); err == nil {
			t.Errorf("%q: expected an error", code)
		}
	}
}
