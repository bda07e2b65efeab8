package transform_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/evaluator"
	"github.com/reloopjs/reloop/generator"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/transform"
	"github.com/reloopjs/reloop/transform/loops"
)

func generate(n ast.Node) string {
	return strings.Join(strings.Fields(generator.Generate(n)), " ")
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return p
}

func transformSource(t *testing.T, src string) string {
	t.Helper()
	p, err := transform.Transform(mustParse(t, src))
	if err != nil {
		t.Fatalf("Transform(%q): %v", src, err)
	}
	return generate(p)
}

func TestTransform(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		want string
	}{
		{
			name: "if else",
			in:   "if (a) b(); else c();",
			want: "if (a) { b(); } else { c(); }",
		},
		{
			name: "else if chain",
			in:   "if (a) b(); else if (c) d(); else e();",
			want: "if (a) { b(); } else if (c) { d(); } else { e(); }",
		},
		{
			name: "for with var is spliced",
			in:   "for (var i = 0; i < 3; i++) f(i);",
			want: "var i = 0; while (i < 3) { f(i); i++; }",
		},
		{
			name: "for with let keeps its block",
			in:   "for (let i = 0; i < 3; i++) f(i);",
			want: "{ let i = 0; while (i < 3) { f(i); i++; } }",
		},
		{
			name: "for with expression init is spliced",
			in:   "for (i = 0; i < 3; i++) f(i);",
			want: "i = 0; while (i < 3) { f(i); i++; }",
		},
		{
			name: "for without init",
			in:   "for (; i < 3;) f(i);",
			want: "while (i < 3) { f(i); }",
		},
		{
			name: "for in a single statement slot",
			in:   "if (a) for (var i = 0;;) f();",
			want: "if (a) { var i = 0; while (true) { f(); } }",
		},
		{
			name: "labelled for",
			in:   "outer: for (var i = 0; i < 3; i++) { if (i) break outer; }",
			want: "outer: { var i = 0; while (i < 3) { if (i) { break outer; } i++; } }",
		},
		{
			name: "do while",
			in:   "do x++; while (x < 5);",
			want: "while (true) { x++; if (!(x < 5)) { break; } }",
		},
		{
			name: "nested loops",
			in:   "for (var i = 0; i < 2; i++) for (var j = 0; j < 2; j++) { if (j) continue; f(i, j); }",
			want: "var i = 0; while (i < 2) { var j = 0; while (j < 2) { if (j) { j++; continue; } f(i, j); j++; } i++; }",
		},
		{
			name: "loops in functions",
			in:   "function f() { for (;;) { if (x) return; } } g = () => { do a(); while (b); };",
			want: "function f() { while (true) { if (x) { return; } } } g = () => { while (true) { a(); if (!b) { break; } } };",
		},
		{
			name: "for in and for of keep their form",
			in:   "for (k in o) f(k); for (v of xs) g(v);",
			want: "for (k in o) { f(k); } for (v of xs) { g(v); }",
		},
		{
			name: "while",
			in:   "while (a) if (b) c();",
			want: "while (a) { if (b) { c(); } }",
		},
		{
			name: "untouched",
			in:   "var a = 1; a += 2;",
			want: "var a = 1; a += 2;",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := transformSource(t, test.in); got != test.want {
				t.Errorf("Transform(%q)\n  got:  %s\n  want: %s", test.in, got, test.want)
			}
		})
	}
}

// shapeChecker records the invariants that must hold after every pass ran.
type shapeChecker struct {
	ast.NoopVisitor
	t *testing.T
}

func (c *shapeChecker) requireBlock(what string, s *ast.Statement) {
	if _, ok := s.Stmt.(*ast.BlockStatement); !ok {
		c.t.Errorf("%s is %T; want a block", what, s.Stmt)
	}
}

func (c *shapeChecker) VisitForStatement(n *ast.ForStatement) {
	c.t.Errorf("for loop survived at %d", n.For)
}

func (c *shapeChecker) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	c.t.Errorf("do-while loop survived at %d", n.Do)
}

func (c *shapeChecker) VisitWhileStatement(n *ast.WhileStatement) {
	c.requireBlock("while body", n.Body)
	n.VisitChildrenWith(c.V)
}

func (c *shapeChecker) VisitForInStatement(n *ast.ForInStatement) {
	c.requireBlock("for-in body", n.Body)
	n.VisitChildrenWith(c.V)
}

func (c *shapeChecker) VisitForOfStatement(n *ast.ForOfStatement) {
	c.requireBlock("for-of body", n.Body)
	n.VisitChildrenWith(c.V)
}

func (c *shapeChecker) VisitIfStatement(n *ast.IfStatement) {
	c.requireBlock("if consequent", n.Consequent)
	if n.Alternate != nil {
		if _, ok := n.Alternate.Stmt.(*ast.IfStatement); !ok {
			c.requireBlock("if alternate", n.Alternate)
		}
	}
	n.VisitChildrenWith(c.V)
}

func TestShapeInvariants(t *testing.T) {
	src := `
function f(n) {
	for (var i = 0; i < n; i++)
		if (i % 2) continue; else if (i > 5) break; else g(i);
	do
		for (const k in o) while (k) k--;
	while (n--);
	return () => { for (;;) do x(); while (y); };
}
switch (a) { case 1: for (;;) if (b) continue; }
try { for (let v of xs) do ; while (0); } catch (e) { if (e) throw e; }
`
	p, err := transform.Transform(mustParse(t, src))
	if err != nil {
		t.Fatal(err)
	}
	c := &shapeChecker{t: t}
	c.V = c
	p.VisitWith(c)

	// The printed output must parse again and be a fixed point.
	out := generator.Generate(p)
	if again := transformSource(t, out); again != generate(p) {
		t.Errorf("second run changed the output:\n%s\n%s", generate(p), again)
	}
}

func TestTransformLabeledContinue(t *testing.T) {
	src := "var i = 0;\nouter: for (;; i++) {\n  for (;;) { continue outer; }\n}"
	p, err := transform.Transform(mustParse(t, src))
	if p != nil {
		t.Error("Transform returned a program alongside the error")
	}
	var unsupported *loops.UnsupportedConstructError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v; want *loops.UnsupportedConstructError", err)
	}
	if unsupported.Label != "outer" {
		t.Errorf("label = %q; want outer", unsupported.Label)
	}
	if want := ast.Idx(strings.Index(src, "continue") + 1); unsupported.Idx != want {
		t.Errorf("idx = %d; want %d", unsupported.Idx, want)
	}
}

func TestTransformLabeledContinueInWhile(t *testing.T) {
	// Only for and do-while loops are rewritten, so a labeled continue that
	// stays within while loops is left as written.
	src := "outer: while (a) { while (b) { continue outer; } }"
	if got := transformSource(t, src); got != src {
		t.Errorf("got %s", got)
	}
}

func TestApplyPasses(t *testing.T) {
	src := "if (a) b(); for (var i = 0; i < 2; i++) { if (i) continue; } do c(); while (d);"
	var tests = []struct {
		passes []transform.Pass
		want   string
		report transform.Report
	}{
		{
			passes: []transform.Pass{transform.PassBraces},
			want:   "if (a) { b(); } for (var i = 0; i < 2; i++) { if (i) { continue; } } do { c(); } while (d);",
			report: transform.Report{BlocksAdded: 3},
		},
		{
			passes: []transform.Pass{transform.PassWhile},
			want:   "if (a) b(); var i = 0; while (i < 2) { if (i) { i++; continue; } i++; } while (true) { c(); if (!d) break; }",
			report: transform.Report{ForLoops: 1, DoWhileLoops: 1, ContinuesRedirected: 1},
		},
		{
			want:   "if (a) { b(); } var i = 0; while (i < 2) { if (i) { i++; continue; } i++; } while (true) { c(); if (!d) { break; } }",
			report: transform.Report{BlocksAdded: 2, ForLoops: 1, DoWhileLoops: 1, ContinuesRedirected: 1},
		},
	}
	for _, test := range tests {
		p := mustParse(t, src)
		report, err := transform.Apply(p, transform.Options{Passes: test.passes})
		if err != nil {
			t.Fatal(err)
		}
		if got := generate(p); got != test.want {
			t.Errorf("Apply(%v)\n  got:  %s\n  want: %s", test.passes, got, test.want)
		}
		if report != test.report {
			t.Errorf("Apply(%v) report = %+v; want %+v", test.passes, report, test.report)
		}
		if !report.Changed() {
			t.Errorf("Apply(%v) reported no change", test.passes)
		}
	}
}

func TestSplice(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{
			in:   "if (a) for (var i = 0;;) f();",
			want: "if (a) { var i = 0; while (true) { f(); } }",
		},
		{
			in:   "for (var i = 0;;) f(); g();",
			want: "var i = 0; while (true) { f(); } g();",
		},
		{
			in:   "x: for (var i = 0;;) f();",
			want: "x: { var i = 0; while (true) { f(); } }",
		},
		{
			// Blocks written in the source stay as they are.
			in:   "{ var i = 0; while (i) { f(); } }",
			want: "{ var i = 0; while (i) { f(); } }",
		},
	}
	for _, test := range tests {
		p := mustParse(t, test.in)
		if _, err := transform.Apply(p, transform.Options{Passes: []transform.Pass{transform.PassWhile}}); err != nil {
			t.Fatal(err)
		}
		if got := generate(p); got != test.want {
			t.Errorf("Apply(%q)\n  got:  %s\n  want: %s", test.in, got, test.want)
		}
	}
}

func TestParsePass(t *testing.T) {
	for _, name := range []string{"braces", "while"} {
		if p, err := transform.ParsePass(name); err != nil || string(p) != name {
			t.Errorf("ParsePass(%q) = %q, %v", name, p, err)
		}
	}
	if _, err := transform.ParsePass("unroll"); err == nil {
		t.Error("ParsePass accepted an unknown pass")
	}
}

func TestChain(t *testing.T) {
	var report transform.Report
	var order []string
	mark := func(name string) transform.Transformer {
		return transform.TransformerFunc(func(*ast.Program) error {
			order = append(order, name)
			return nil
		})
	}
	chain := transform.Chain(
		mark("first"),
		transform.Passes(&report, transform.PassBraces),
		transform.Passes(&report, transform.PassWhile),
		mark("last"),
	)
	p := mustParse(t, "for (;;) if (a) break;")
	if err := chain.Transform(p); err != nil {
		t.Fatal(err)
	}
	if got, want := generate(p), "while (true) { if (a) { break; } }"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	if strings.Join(order, ",") != "first,last" {
		t.Errorf("order = %v", order)
	}
	if report.BlocksAdded != 2 || report.ForLoops != 1 {
		t.Errorf("report = %+v", report)
	}

	failing := errors.New("stop")
	err := transform.Chain(
		transform.TransformerFunc(func(*ast.Program) error { return failing }),
		mark("never"),
	).Transform(p)
	if !errors.Is(err, failing) || len(order) != 2 {
		t.Errorf("chain did not stop at the first error: %v, %v", err, order)
	}
}

// Programs whose printed trace must not change when their loops are
// rewritten. The do-while cases have several continue sites each.
var equivalencePrograms = []string{
	`var i = 0;
do {
	i++;
	if (i % 2 == 0) continue;
	if (i == 7) continue;
	print("odd", i);
} while (i < 10);
print("end", i);`,

	`var n = 0, seen = [];
do {
	n += 3;
	if (n > 20) { seen.push("big"); continue; }
	for (var j = 0; j < 2; j++) { if (j) continue; seen.push(n + j); }
	if (n == 9) continue;
	seen.push("tail");
} while (n < 25);
print(seen);`,

	`function count(x) { print("test", x); return x; }
var k = 0;
do {
	k++;
	if (k == 2) continue;
	print("body", k);
} while (count(k) < 4);`,

	`var out = [];
for (var i = 0, j = 10; i < j; i++, j--) {
	if (i == 2) continue;
	if (j == 6) break;
	out.push(i + ":" + j);
}
print(out, i, j);`,

	`for (let i = 0; i < 3; i++) {
	let x = i * 2;
	if (x == 2) continue;
	print(x);
}`,

	`function search(rows) {
	for (var r = 0; r < rows.length; r++) {
		var row = rows[r];
		for (var c = 0; c < row.length; c++) {
			if (row[c] < 0) continue;
			if (row[c] == 42) return r + "," + c;
		}
	}
	return "none";
}
print(search([[1, -1], [3, 42]]), search([]));`,

	`var s = 0;
do {
	s++;
	try {
		if (s == 1) continue;
		if (s == 2) throw "two";
		print("try", s);
	} catch (e) {
		print("caught", e);
		continue;
	}
	print("after", s);
} while (s < 4);`,

	`for (var i = 0; i < 6; i++) {
	try {
		if (i % 3 == 0) throw i;
		print("try", i);
	} catch (e) {
		print("caught", e);
	} finally {
		i++;
		print("finally", i);
		continue;
	}
}`,
}

// Loops whose finally runs after a continue of the loop. Moving the update
// in front of the continue would run it before the finally.
var finallyPrograms = []string{
	`var c = 0;
do {
	c++;
	try { continue; } finally { c += 1; print(c); }
} while (c < 4);`,

	`for (var i = 1; i < 20; i++) {
	try { continue; } finally { i *= 2; print(i); }
}`,
}

func TestTransformContinueInTryFinally(t *testing.T) {
	for _, src := range finallyPrograms {
		before, err := evaluator.Run(mustParse(t, src))
		if err != nil || len(before.Trace) == 0 {
			t.Fatalf("run %q: %v, %q", src, err, before.Trace)
		}

		p, err := transform.Transform(mustParse(t, src))
		if p != nil {
			t.Errorf("%q: Transform returned a program alongside the error", src)
		}
		var unsupported *loops.UnsupportedConstructError
		if !errors.As(err, &unsupported) {
			t.Errorf("%q: err = %v; want *loops.UnsupportedConstructError", src, err)
			continue
		}
		if want := ast.Idx(strings.Index(src, "continue") + 1); unsupported.Idx != want {
			t.Errorf("%q: idx = %d; want %d", src, unsupported.Idx, want)
		}
	}
}

func TestTraceEquivalence(t *testing.T) {
	for i, src := range equivalencePrograms {
		original := mustParse(t, src)
		rewritten, err := transform.Transform(mustParse(t, src))
		if err != nil {
			t.Fatalf("program %d: %v", i, err)
		}
		// Reparse the printed output so the printer is covered too.
		printed := mustParse(t, generator.Generate(rewritten))

		before, err := evaluator.Run(original)
		if err != nil {
			t.Fatalf("program %d: run original: %v", i, err)
		}
		if len(before.Trace) == 0 {
			t.Fatalf("program %d printed nothing", i)
		}
		same, err := evaluator.Equivalent(original, printed)
		if err != nil {
			t.Fatalf("program %d: %v", i, err)
		}
		if !same {
			after, _ := evaluator.Run(printed)
			t.Errorf("program %d traces differ\n  before: %q\n  after:  %q\n%s", i, before.Trace, after.Trace, generator.Generate(printed))
		}
	}
}
