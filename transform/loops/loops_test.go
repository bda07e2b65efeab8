package loops_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/ast/ext"
	"github.com/reloopjs/reloop/generator"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/transform/loops"
)

func generate(n ast.Node) string {
	return strings.Join(strings.Fields(generator.Generate(n)), " ")
}

func firstStmt(t *testing.T, src string) ast.Stmt {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	s := p.Body[0].Stmt
	if l, ok := s.(*ast.LabelledStatement); ok {
		return l.Statement.Stmt
	}
	return s
}

func TestCanonicalize(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		want string
	}{
		{
			name: "for with everything",
			in:   "for (var i = 0; i < 3; i++) { if (i == 1) continue; f(i); }",
			want: "{ var i = 0; while (i < 3) { if (i == 1) { i++; continue; } f(i); i++; } }",
		},
		{
			name: "continue in statement list",
			in:   "for (;; i++) { a(); continue; }",
			want: "while (true) { a(); i++; continue; i++; }",
		},
		{
			name: "bare body",
			in:   "for (;; i++) x();",
			want: "while (true) { x(); i++; }",
		},
		{
			name: "bare continue body",
			in:   "for (;; i++) continue;",
			want: "while (true) { i++; continue; i++; }",
		},
		{
			name: "no update",
			in:   "for (; i < 3;) { if (a) continue; }",
			want: "while (i < 3) { if (a) continue; }",
		},
		{
			name: "expression initializer",
			in:   "for (i = 0, j = 1; i < j; i++) f();",
			want: "{ i = 0, j = 1; while (i < j) { f(); i++; } }",
		},
		{
			name: "nested loop keeps its continues",
			in:   "for (;; i++) { while (x) { continue; } for (;;) continue; }",
			want: "while (true) { while (x) { continue; } for (;;) continue; i++; }",
		},
		{
			name: "function boundary",
			in:   "for (;; i++) { var g = function() { while (a) continue; }; }",
			want: "while (true) { var g = function() { while (a) continue; }; i++; }",
		},
		{
			name: "continue inside switch",
			in:   "for (;; i++) { switch (x) { case 1: continue; } }",
			want: "while (true) { switch (x) { case 1: i++; continue; } i++; }",
		},
		{
			name: "continue inside try",
			in:   "for (;; i++) { try { continue; } catch (e) { f(); } }",
			want: "while (true) { try { i++; continue; } catch (e) { f(); } i++; }",
		},
		{
			name: "continue inside finally",
			in:   "for (;; i++) { try { f(); } finally { continue; } }",
			want: "while (true) { try { f(); } finally { i++; continue; } i++; }",
		},
		{
			name: "labelled inner statement",
			in:   "for (;; i++) { block: { if (a) break block; continue; } }",
			want: "while (true) { block: { if (a) break block; i++; continue; } i++; }",
		},
		{
			name: "do while",
			in:   "do { if (a) continue; b(); } while (i < 3);",
			want: "while (true) { if (a) { if (!(i < 3)) break; continue; } b(); if (!(i < 3)) break; }",
		},
		{
			name: "do while bare body",
			in:   "do x(); while (y);",
			want: "while (true) { x(); if (!y) break; }",
		},
		{
			name: "do while nested loop",
			in:   "do { for (;;) { continue; } } while (y);",
			want: "while (true) { for (;;) { continue; } if (!y) break; }",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := loops.Canonicalize(firstStmt(t, test.in))
			if err != nil {
				t.Fatalf("Canonicalize: %v", err)
			}
			if s := generate(got); s != test.want {
				t.Errorf("Canonicalize(%q)\n  got:  %s\n  want: %s", test.in, s, test.want)
			}
		})
	}
}

func TestCanonicalizeUnchanged(t *testing.T) {
	for _, src := range []string{"while (a) b();", "for (k in o) continue;", "for (v of xs) {}"} {
		loop := firstStmt(t, src)
		got, err := loops.Canonicalize(loop)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if got != loop {
			t.Errorf("%q: loop was replaced", src)
		}
	}
}

func TestCanonicalizeCounts(t *testing.T) {
	c := &loops.Canonicalizer{}
	for _, src := range []string{
		"for (;; i++) { if (a) continue; if (b) continue; }",
		"do { continue; } while (x);",
		"for (;;) { continue; }",
	} {
		if _, err := c.Canonicalize(firstStmt(t, src)); err != nil {
			t.Fatal(err)
		}
	}
	if c.ForLoops != 2 || c.DoWhileLoops != 1 || c.ContinuesRedirected != 3 {
		t.Errorf("counts = %+v; want 2 for, 1 do-while, 3 continues", *c)
	}
}

func TestLabeledContinue(t *testing.T) {
	var tests = []struct {
		in    string
		label string
	}{
		{in: "outer: for (;; i++) { continue outer; }", label: "outer"},
		{in: "outer: for (;; i++) { for (;;) { continue outer; } }", label: "outer"},
		{in: "outer: do { inner: while (a) { continue inner; } } while (b);", label: "inner"},
		{in: "outer: for (;;) { if (a) continue outer; }", label: "outer"},
	}
	for _, test := range tests {
		loop := firstStmt(t, test.in)
		before := generate(loop)
		got, err := loops.Canonicalize(loop)
		var unsupported *loops.UnsupportedConstructError
		if !errors.As(err, &unsupported) {
			t.Errorf("%q: err = %v; want *UnsupportedConstructError", test.in, err)
			continue
		}
		if got != nil {
			t.Errorf("%q: returned a replacement alongside the error", test.in)
		}
		if unsupported.Label != test.label {
			t.Errorf("%q: label = %q; want %q", test.in, unsupported.Label, test.label)
		}
		if want := ast.Idx(strings.Index(test.in, "continue "+test.label) + 1); unsupported.Idx != want {
			t.Errorf("%q: idx = %d; want %d", test.in, unsupported.Idx, want)
		}
		if after := generate(loop); after != before {
			t.Errorf("%q: loop modified on failure:\n  %s", test.in, after)
		}
	}
}

func TestLabeledContinueInFunctionIsIgnored(t *testing.T) {
	got, err := loops.Canonicalize(firstStmt(t, "for (;; i++) { f = function() { l: while (a) continue l; }; }"))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if _, ok := got.(*ast.WhileStatement); !ok {
		t.Errorf("got %T; want *ast.WhileStatement", got)
	}
}

func TestDoWhileContinueInSwitch(t *testing.T) {
	loop := firstStmt(t, "do { switch (x) { case 1: continue; } } while (y);")
	_, err := loops.Canonicalize(loop)
	var unsupported *loops.UnsupportedConstructError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v; want *UnsupportedConstructError", err)
	}
	if unsupported.Label != "" || unsupported.Construct == "" {
		t.Errorf("error = %+v", unsupported)
	}

	// A switch inside a nested loop does not matter.
	if _, err := loops.Canonicalize(firstStmt(t, "do { while (a) { switch (x) { case 1: continue; } } } while (y);")); err != nil {
		t.Errorf("nested loop: %v", err)
	}
}

func TestContinueInTryFinally(t *testing.T) {
	var rejected = []string{
		"for (var i = 1; i < 20; i++) { try { continue; } finally { i *= 2; } }",
		"do { c++; try { continue; } finally { c += 1; } } while (c < 4);",
		"for (;; i++) { try { f(); } catch (e) { if (e) continue; } finally { g(); } }",
		"for (;; i++) { switch (x) { case 1: try { continue; } finally { g(); } } }",
		"for (;; i++) { try { try { continue; } finally { g(); } } catch (e) {} }",
	}
	for _, src := range rejected {
		loop := firstStmt(t, src)
		before := generate(loop)
		_, err := loops.Canonicalize(loop)
		var unsupported *loops.UnsupportedConstructError
		if !errors.As(err, &unsupported) {
			t.Errorf("%q: err = %v; want *UnsupportedConstructError", src, err)
			continue
		}
		if unsupported.Construct != "continue inside try with finally" {
			t.Errorf("%q: construct = %q", src, unsupported.Construct)
		}
		if want := ast.Idx(strings.Index(src, "continue") + 1); unsupported.Idx != want {
			t.Errorf("%q: idx = %d; want %d", src, unsupported.Idx, want)
		}
		if after := generate(loop); after != before {
			t.Errorf("%q: loop modified on failure:\n  %s", src, after)
		}
	}

	var accepted = []string{
		// Nothing to relocate.
		"for (;;) { try { continue; } finally { g(); } }",
		// The continue belongs to the inner loop.
		"for (;; i++) { try { while (a) continue; } finally { g(); } }",
		"do { try { f = function() { for (;;) continue; }; } finally { g(); } } while (y);",
		"for (;; i++) { try { continue; } catch (e) { continue; } }",
	}
	for _, src := range accepted {
		if _, err := loops.Canonicalize(firstStmt(t, src)); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestShapeError(t *testing.T) {
	var shape *ext.ShapeError

	_, err := loops.Canonicalize(firstStmt(t, "if (a) b();"))
	if !errors.As(err, &shape) {
		t.Fatalf("err = %v; want *ext.ShapeError", err)
	}
	if shape.Want != ext.KindLoop || shape.Got != ext.KindConditional || shape.Idx != 1 {
		t.Errorf("shape error = %+v", shape)
	}

	_, err = loops.Canonicalize(nil)
	if !errors.As(err, &shape) || shape.Got != ext.KindInvalid {
		t.Errorf("Canonicalize(nil) err = %v", err)
	}

	for _, loop := range []ast.Stmt{(*ast.ForStatement)(nil), (*ast.DoWhileStatement)(nil), &ast.Statement{Stmt: (*ast.ForStatement)(nil)}} {
		_, err = loops.Canonicalize(loop)
		if !errors.As(err, &shape) || shape.Got != ext.KindInvalid || shape.Idx != 0 {
			t.Errorf("Canonicalize(%T) err = %v", loop, err)
		}
	}
}

func TestRedirectContinues(t *testing.T) {
	loop := firstStmt(t, "while (a) { if (b) continue; c(); continue; }").(*ast.WhileStatement)
	epilogue := firstStmt(t, "i++;")
	block, err := loops.RedirectContinues(loop.Body, epilogue)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := generate(block), "{ if (b) { i++; continue; } c(); i++; continue; i++; }"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}

	// Every continue site gets its own copy of the epilogue.
	first := block.List[0].Stmt.(*ast.IfStatement).Consequent.Stmt.(*ast.BlockStatement).List[0].Stmt
	second := block.List[2].Stmt
	last := block.List[len(block.List)-1].Stmt
	if first == second || first == epilogue || second == epilogue {
		t.Error("continue sites share an epilogue node")
	}
	if last != epilogue {
		t.Error("the trailing epilogue should be the original node")
	}
}

func TestRedirectContinuesNilEpilogue(t *testing.T) {
	loop := firstStmt(t, "while (a) continue;").(*ast.WhileStatement)
	block, err := loops.RedirectContinues(loop.Body, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := generate(block); got != "{ continue; }" {
		t.Errorf("got %s", got)
	}

	loop = firstStmt(t, "l: while (a) continue l;").(*ast.WhileStatement)
	if _, err := loops.RedirectContinues(loop.Body, nil); err == nil {
		t.Error("labeled continue accepted with a nil epilogue")
	}
}

func TestSpliceable(t *testing.T) {
	var tests = []struct {
		in   string
		want bool
	}{
		{in: "for (var i = 0;;) {}", want: true},
		{in: "for (i = 0;;) {}", want: true},
		{in: "for (let i = 0;;) {}", want: false},
		{in: "for (const i = 0;;) {}", want: false},
		{in: "for (;;) {}", want: false},
	}
	for _, test := range tests {
		got, err := loops.Canonicalize(firstStmt(t, test.in))
		if err != nil {
			t.Fatal(err)
		}
		if loops.Spliceable(got) != test.want {
			t.Errorf("Spliceable(%q) = %v; want %v", test.in, !test.want, test.want)
		}
	}
}
