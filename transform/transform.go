// Package transform drives the control-flow rewrites over a whole program.
//
// The braces pass gives every if branch and loop body an explicit block.
// The while pass rewrites for and do-while loops into while loops. Both run
// in a single pre-order traversal; after a loop is replaced the traversal
// continues into the replacement, so nested loops are rewritten as well.
package transform

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/transform/blocks"
	"github.com/reloopjs/reloop/transform/loops"
)

// Pass names a rewrite.
type Pass string

const (
	PassBraces Pass = "braces"
	PassWhile  Pass = "while"
)

// AllPasses lists every pass in the order they apply.
var AllPasses = []Pass{PassBraces, PassWhile}

// ParsePass validates a pass name.
func ParsePass(name string) (Pass, error) {
	for _, p := range AllPasses {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pass %q (want one of %v)", name, AllPasses)
}

// Options selects the passes Apply runs. No passes means all of them.
type Options struct {
	Passes []Pass
}

func (o Options) has(p Pass) bool {
	return len(o.Passes) == 0 || slices.Contains(o.Passes, p)
}

// Report counts the rewrites made by Apply.
type Report struct {
	BlocksAdded         int `msgpack:"blocks_added"`
	ForLoops            int `msgpack:"for_loops"`
	DoWhileLoops        int `msgpack:"do_while_loops"`
	ContinuesRedirected int `msgpack:"continues_redirected"`
}

// Changed reports whether any rewrite happened.
func (r Report) Changed() bool {
	return r != Report{}
}

// Add accumulates o into r.
func (r *Report) Add(o Report) {
	r.BlocksAdded += o.BlocksAdded
	r.ForLoops += o.ForLoops
	r.DoWhileLoops += o.DoWhileLoops
	r.ContinuesRedirected += o.ContinuesRedirected
}

type driver struct {
	ast.NoopVisitor

	braces bool
	while  bool

	canon  loops.Canonicalizer
	blocks int
	err    error
}

func (d *driver) VisitStatement(n *ast.Statement) {
	if d.err != nil {
		return
	}
	switch s := n.Stmt.(type) {
	case *ast.IfStatement:
		if d.braces {
			d.blocks += blocks.FixIf(s)
		}
	case *ast.WhileStatement, *ast.ForInStatement, *ast.ForOfStatement:
		if d.braces {
			d.blocks += blocks.FixLoop(s)
		}
	case *ast.ForStatement, *ast.DoWhileStatement:
		if !d.while {
			if d.braces {
				d.blocks += blocks.FixLoop(s)
			}
			break
		}
		replaced, err := d.canon.Canonicalize(s)
		if err != nil {
			d.err = err
			return
		}
		n.Stmt = replaced
	}
	n.VisitChildrenWith(d.V)
}

// VisitStatements merges the block that replaced a for loop into the list
// when the initializer allows it.
func (d *driver) VisitStatements(n *ast.Statements) {
	for i := 0; i < len(*n) && d.err == nil; i++ {
		_, wasFor := (*n)[i].Stmt.(*ast.ForStatement)
		(*n)[i].VisitWith(d.V)
		if !wasFor || d.err != nil || !loops.Spliceable((*n)[i].Stmt) {
			continue
		}
		block := (*n)[i].Stmt.(*ast.BlockStatement)
		*n = slices.Replace(*n, i, i+1, block.List...)
		i += len(block.List) - 1
	}
}

// Apply runs the selected passes over p in place. On error the tree may be
// partially rewritten and must be discarded.
func Apply(p *ast.Program, opts Options) (Report, error) {
	d := &driver{
		braces: opts.has(PassBraces),
		while:  opts.has(PassWhile),
	}
	d.V = d
	p.VisitWith(d)
	if d.err != nil {
		return Report{}, d.err
	}
	return Report{
		BlocksAdded:         d.blocks,
		ForLoops:            d.canon.ForLoops,
		DoWhileLoops:        d.canon.DoWhileLoops,
		ContinuesRedirected: d.canon.ContinuesRedirected,
	}, nil
}

// Transform runs every pass over p. It returns nil and the error when a loop
// cannot be rewritten; p must then be discarded.
func Transform(p *ast.Program) (*ast.Program, error) {
	if _, err := Apply(p, Options{}); err != nil {
		return nil, err
	}
	return p, nil
}

// Transformer is a rewrite over a whole program.
type Transformer interface {
	Transform(p *ast.Program) error
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(p *ast.Program) error

func (f TransformerFunc) Transform(p *ast.Program) error { return f(p) }

// Chain runs transformers in order and stops at the first error.
func Chain(ts ...Transformer) Transformer {
	return TransformerFunc(func(p *ast.Program) error {
		for _, t := range ts {
			if err := t.Transform(p); err != nil {
				return err
			}
		}
		return nil
	})
}

// Passes returns a Transformer running the given passes and adding their
// counts to report, which may be nil.
func Passes(report *Report, passes ...Pass) Transformer {
	return TransformerFunc(func(p *ast.Program) error {
		r, err := Apply(p, Options{Passes: passes})
		if err == nil && report != nil {
			report.Add(r)
		}
		return err
	})
}
