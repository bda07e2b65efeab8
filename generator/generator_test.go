package generator

import (
	"regexp"
	"testing"

	"github.com/tdewolff/test"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/token"
)

var whitespace = regexp.MustCompile(`\s+`)

func generateSquashed(node ast.Node) string {
	return whitespace.ReplaceAllString(Generate(node), " ")
}

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return p
}

func TestExpressionParentheses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"grouped addition", "(a + b) * c;", "(a + b) * c;"},
		{"right nested subtraction", "a - (b - c);", "a - (b - c);"},
		{"left nested subtraction", "(a - b) - c;", "a - b - c;"},
		{"left nested exponent", "(a ** b) ** c;", "(a ** b) ** c;"},
		{"right nested exponent", "a ** b ** c;", "a ** b ** c;"},
		{"unary base of exponent", "(-a) ** b;", "(-a) ** b;"},
		{"coalesce inside logical", "(a ?? b) || c;", "(a ?? b) || c;"},
		{"sequence as test", "(a, b) ? c : d;", "(a, b) ? c : d;"},
		{"conditional as test", "(a ? b : c) ? d : e;", "(a ? b : c) ? d : e;"},
		{"conditional as alternate", "a ? b : c ? d : e;", "a ? b : c ? d : e;"},
		{"chained assignment", "a = b = c;", "a = b = c;"},
		{"sequence argument", "new F6(((a = 1), 2));", "new F6((a = 1, 2));"},
		{"sequence call argument", "f(x, ((e = 5), 6));", "f(x, (e = 5, 6));"},
		{"call in new callee", "new (f())();", "new (f())();"},
		{"new without arguments", "new a.b;", "new a.b;"},
		{"integer member", "(1).toString();", "(1).toString();"},
		{"decimal member", "1.5.toFixed();", "1.5.toFixed();"},
		{"double negation", "-(-x);", "- -x;"},
		{"negated decrement", "-(--x);", "- --x;"},
		{"typeof", "typeof x;", "typeof x;"},
		{"not of logical", "!(a && b);", "!(a && b);"},
		{"postfix", "a++;", "a++;"},
		{"compound assignment", "a += b * 2;", "a += b * 2;"},
		{"object statement", "({ a: 1 });", "({ a: 1 });"},
		{"function statement", "(function() {})();", "(function() {}());"},
		{"arrow object body", "x = () => ({ a: 1 });", "x = () => ({ a: 1 });"},
		{"arrow single parameter", "x = (a) => a + 1;", "x = a => a + 1;"},
		{"arrow in argument", "f((a, b) => { return a; });", "f((a, b) => { return a; });"},
		{"array holes", "x = [1, , 2];", "x = [1, , 2];"},
		{"spread", "f(...xs);", "f(...xs);"},
		{"computed member", "a[b + 1] = c.d;", "a[b + 1] = c.d;"},
		{"raw string", "x = 'a';", "x = 'a';"},
		{"regexp", "x = /a+/g;", "x = /a+/g;"},
		{"object members", "x = { a: 1, b, [c]: 2, get d() { return 1; }, m(y) {} };",
			"x = { a: 1, b, [c]: 2, get d() { return 1; }, m(y) {} };"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, generateSquashed(parseSource(t, tt.input)), tt.expected)
		})
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"if else", "if (a) b(); else c();", "if (a) b(); else c();"},
		{"else if", "if (a) { b(); } else if (c) { d(); }", "if (a) { b(); } else if (c) { d(); }"},
		{"for", "for (var i = 0; i < n; i++) { f(i); }", "for (var i = 0; i < n; i++) { f(i); }"},
		{"empty for", "for (;;) {}", "for (;;) {}"},
		{"for in", "for (k in o) f(k);", "for (k in o) f(k);"},
		{"for of", "for (const v of xs) { f(v); }", "for (const v of xs) { f(v); }"},
		{"while", "while (x) x--;", "while (x) x--;"},
		{"do while block", "do { x(); } while (y);", "do { x(); } while (y);"},
		{"do while single", "do x(); while (y);", "do x(); while (y);"},
		{"labelled", "outer: for (;;) break outer;", "outer: for (;;) break outer;"},
		{"continue", "while (a) { continue; }", "while (a) { continue; }"},
		{"switch", "switch (x) { case 1: a(); break; default: b(); }",
			"switch (x) { case 1: a(); break; default: b(); }"},
		{"try", "try { a(); } catch (e) { b(); } finally { c(); }",
			"try { a(); } catch (e) { b(); } finally { c(); }"},
		{"function", "function f(a, b = 1, ...c) { return a; }", "function f(a, b = 1, ...c) { return a; }"},
		{"let declaration", "let a = 1, b;", "let a = 1, b;"},
		{"throw", "function g() { throw new Error('x'); }", "function g() { throw new Error('x'); }"},
		{"empty statement", ";", ";"},
		{"program", "a();\nb();", "a(); b();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, generateSquashed(parseSource(t, tt.input)), tt.expected)
		})
	}
}

func TestIndentation(t *testing.T) {
	p := parseSource(t, "while (a) { if (b) { c(); } }")
	test.T(t, Generate(p), "while (a) {\n    if (b) {\n        c();\n    }\n}")
}

func TestDanglingElse(t *testing.T) {
	ident := func(name string) *ast.Expression {
		return &ast.Expression{Expr: &ast.Identifier{Name: name}}
	}
	call := func(name string) *ast.Statement {
		return &ast.Statement{Stmt: &ast.ExpressionStatement{
			Expression: &ast.Expression{Expr: &ast.CallExpression{Callee: ident(name)}},
		}}
	}
	p := &ast.Program{Body: ast.Statements{{Stmt: &ast.IfStatement{
		Test:       ident("a"),
		Consequent: &ast.Statement{Stmt: &ast.IfStatement{Test: ident("b"), Consequent: call("c")}},
		Alternate:  call("d"),
	}}}}
	test.T(t, generateSquashed(p), "if (a) { if (b) c(); } else d();")
}

func TestSyntheticLiterals(t *testing.T) {
	p := &ast.Program{Body: ast.Statements{{Stmt: &ast.ExpressionStatement{
		Expression: &ast.Expression{Expr: &ast.SequenceExpression{Sequence: ast.Expressions{
			{Expr: &ast.StringLiteral{Value: "hi\n"}},
			{Expr: &ast.NumberLiteral{Value: 2.5}},
			{Expr: &ast.BooleanLiteral{Value: true}},
			{Expr: &ast.UnaryExpression{Operator: token.Not, Operand: &ast.Expression{Expr: &ast.Identifier{Name: "x"}}}},
		}}},
	}}}}
	test.T(t, Generate(p), `"hi\n", 2.5, true, !x;`)
}
