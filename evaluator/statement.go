package evaluator

import (
	"errors"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/token"
)

type completionKind int

const (
	completionNormal completionKind = iota
	completionBreak
	completionContinue
	completionReturn
)

func (k completionKind) String() string {
	switch k {
	case completionBreak:
		return "break"
	case completionContinue:
		return "continue"
	case completionReturn:
		return "return"
	}
	return "normal"
}

type completion struct {
	kind  completionKind
	label string
	value Value
}

var normal = completion{}

// targets reports whether a break or continue completion belongs to a
// statement carrying labels.
func (c completion) targets(labels []string) bool {
	return c.label == "" || slices.Contains(labels, c.label)
}

func (in *interpreter) execList(s *scope, list ast.Statements) (completion, error) {
	for i := range list {
		c, err := in.exec(s, &list[i], nil)
		if err != nil || c.kind != completionNormal {
			return c, err
		}
	}
	return normal, nil
}

func (in *interpreter) execBlock(s *scope, list ast.Statements) (completion, error) {
	inner := newScope(s, false)
	if err := in.hoistFunctions(inner, list); err != nil {
		return normal, err
	}
	return in.execList(inner, list)
}

func (in *interpreter) exec(s *scope, stmt *ast.Statement, labels []string) (completion, error) {
	if err := in.step(); err != nil {
		return normal, err
	}
	switch n := stmt.Stmt.(type) {
	case *ast.BlockStatement:
		return in.execBlock(s, n.List)
	case *ast.EmptyStatement, *ast.DebuggerStatement, *ast.FunctionDeclaration:
		return normal, nil
	case *ast.ExpressionStatement:
		_, err := in.eval(s, n.Expression)
		return normal, err
	case *ast.VariableDeclaration:
		return normal, in.declare(s, n)
	case *ast.IfStatement:
		test, err := in.eval(s, n.Test)
		if err != nil {
			return normal, err
		}
		if test.bool() {
			return in.exec(s, n.Consequent, nil)
		}
		if n.Alternate != nil {
			return in.exec(s, n.Alternate, nil)
		}
		return normal, nil
	case *ast.WhileStatement:
		return in.loop(s, labels, nil, n.Test, nil, n.Body, false)
	case *ast.DoWhileStatement:
		return in.loop(s, labels, nil, n.Test, nil, n.Body, true)
	case *ast.ForStatement:
		return in.execFor(s, n, labels)
	case *ast.ForInStatement:
		return in.execForInto(s, n.Into, n.Source, n.Body, labels, false)
	case *ast.ForOfStatement:
		return in.execForInto(s, n.Into, n.Source, n.Body, labels, true)
	case *ast.BreakStatement:
		c := completion{kind: completionBreak}
		if n.Label != nil {
			c.label = n.Label.Name
		}
		return c, nil
	case *ast.ContinueStatement:
		c := completion{kind: completionContinue}
		if n.Label != nil {
			c.label = n.Label.Name
		}
		return c, nil
	case *ast.ReturnStatement:
		c := completion{kind: completionReturn}
		if n.Argument != nil {
			v, err := in.eval(s, n.Argument)
			if err != nil {
				return normal, err
			}
			c.value = v
		}
		return c, nil
	case *ast.LabelledStatement:
		c, err := in.exec(s, n.Statement, append(slices.Clip(labels), n.Label.Name))
		if err == nil && c.kind == completionBreak && c.label == n.Label.Name {
			return normal, nil
		}
		return c, err
	case *ast.ThrowStatement:
		v, err := in.eval(s, n.Argument)
		if err != nil {
			return normal, err
		}
		return normal, &Exception{Value: v}
	case *ast.TryStatement:
		return in.execTry(s, n)
	case *ast.SwitchStatement:
		return in.execSwitch(s, n)
	case *ast.WithStatement:
		return normal, unsupported("with statement")
	}
	return normal, unsupported("statement")
}

func (in *interpreter) declare(s *scope, n *ast.VariableDeclaration) error {
	for _, d := range n.List {
		v := undefinedValue
		if d.Initializer != nil {
			var err error
			if v, err = in.eval(s, d.Initializer); err != nil {
				return err
			}
		} else if !n.IsLexical() {
			// var x; leaves the hoisted value alone.
			continue
		}
		if n.IsLexical() {
			s.declare(d.Target.Name, v, n.Token == token.Const)
			continue
		}
		if err := in.assign(s, d.Target.Name, v); err != nil {
			return err
		}
	}
	return nil
}

// loop runs a test-controlled loop. update may be nil. iterate, when set,
// returns a fresh scope for the next iteration before update runs.
func (in *interpreter) loop(s *scope, labels []string, iterate func() *scope, test *ast.Expression, update *ast.Expression, body *ast.Statement, testAfter bool) (completion, error) {
	sc := s
	if iterate != nil {
		sc = iterate()
	}
	for first := true; ; first = false {
		if test != nil && !(testAfter && first) {
			v, err := in.eval(sc, test)
			if err != nil {
				return normal, err
			}
			if !v.bool() {
				return normal, nil
			}
		}
		if err := in.step(); err != nil {
			return normal, err
		}
		c, err := in.exec(sc, body, nil)
		if err != nil {
			return normal, err
		}
		switch c.kind {
		case completionBreak:
			if c.targets(labels) {
				return normal, nil
			}
			return c, nil
		case completionContinue:
			if !c.targets(labels) {
				return c, nil
			}
		case completionReturn:
			return c, nil
		}
		if iterate != nil {
			sc = iterate()
		}
		if update != nil {
			if _, err := in.eval(sc, update); err != nil {
				return normal, err
			}
		}
	}
}

func (in *interpreter) execFor(s *scope, n *ast.ForStatement, labels []string) (completion, error) {
	loopScope := s
	var lexical []string
	if n.Initializer != nil {
		switch init := n.Initializer.Initializer.(type) {
		case *ast.VariableDeclaration:
			if init.IsLexical() {
				loopScope = newScope(s, false)
				for _, d := range init.List {
					lexical = append(lexical, d.Target.Name)
				}
			}
			if err := in.declare(loopScope, init); err != nil {
				return normal, err
			}
		case *ast.Expression:
			if _, err := in.eval(s, init); err != nil {
				return normal, err
			}
		}
	}
	test := n.Test
	if test == nil {
		test = &ast.Expression{Expr: &ast.BooleanLiteral{Value: true}}
	}
	var iterate func() *scope
	if len(lexical) > 0 {
		// Each iteration gets fresh copies of the loop's let bindings.
		current := loopScope
		iterate = func() *scope {
			next := newScope(s, false)
			for _, name := range lexical {
				b := current.bindings[name]
				next.bindings[name] = &binding{value: b.value, constant: b.constant}
			}
			current = next
			return next
		}
	}
	return in.loop(loopScope, labels, iterate, test, n.Update, n.Body, false)
}

func (in *interpreter) execForInto(s *scope, into *ast.ForInto, source *ast.Expression, body *ast.Statement, labels []string, of bool) (completion, error) {
	src, err := in.eval(s, source)
	if err != nil {
		return normal, err
	}
	var items []Value
	switch {
	case of && src.IsString():
		for _, r := range src.String() {
			items = append(items, stringValue(string(r)))
		}
	case of:
		o := src.object()
		if o == nil || o.kind != objectArray {
			return normal, throwTypeError("%s is not iterable", src.String())
		}
		items = slices.Clone(o.array)
	case src.IsObject():
		for _, k := range src.object().ownKeys() {
			items = append(items, stringValue(k))
		}
	case src.IsString():
		for i := range []rune(src.String()) {
			items = append(items, stringValue(strconv.Itoa(i)))
		}
	}

	for _, item := range items {
		sc := s
		switch head := into.Into.(type) {
		case *ast.VariableDeclaration:
			name := head.List[0].Target.Name
			if head.IsLexical() {
				sc = newScope(s, false)
				sc.declare(name, item, head.Token == token.Const)
			} else if err := in.assign(s, name, item); err != nil {
				return normal, err
			}
		case *ast.Expression:
			if err := in.assignTo(s, head, item); err != nil {
				return normal, err
			}
		}
		if err := in.step(); err != nil {
			return normal, err
		}
		c, err := in.exec(sc, body, nil)
		if err != nil {
			return normal, err
		}
		switch c.kind {
		case completionBreak:
			if c.targets(labels) {
				return normal, nil
			}
			return c, nil
		case completionContinue:
			if !c.targets(labels) {
				return c, nil
			}
		case completionReturn:
			return c, nil
		}
	}
	return normal, nil
}

func (in *interpreter) execTry(s *scope, n *ast.TryStatement) (completion, error) {
	c, err := in.execBlock(s, n.Body.List)
	var exc *Exception
	if n.Catch != nil && errors.As(err, &exc) {
		inner := newScope(s, false)
		if n.Catch.Parameter != nil {
			inner.declare(n.Catch.Parameter.Name, exc.Value, false)
		}
		c, err = in.execBlock(inner, n.Catch.Body.List)
	}
	if n.Finally != nil {
		if errors.Is(err, ErrStepLimit) || errors.Is(err, ErrUnsupported) {
			return c, err
		}
		fc, ferr := in.execBlock(s, n.Finally.List)
		if ferr != nil || fc.kind != completionNormal {
			return fc, ferr
		}
	}
	return c, err
}

func (in *interpreter) execSwitch(s *scope, n *ast.SwitchStatement) (completion, error) {
	disc, err := in.eval(s, n.Discriminant)
	if err != nil {
		return normal, err
	}
	start := -1
	for i, clause := range n.Body {
		if clause.Test == nil {
			continue
		}
		v, err := in.eval(s, clause.Test)
		if err != nil {
			return normal, err
		}
		if strictEquals(disc, v) {
			start = i
			break
		}
	}
	if start < 0 {
		start = n.Default
	}
	if start < 0 {
		return normal, nil
	}
	inner := newScope(s, false)
	for _, clause := range n.Body[start:] {
		c, err := in.execList(inner, clause.Consequent)
		if err != nil {
			return normal, err
		}
		if c.kind == completionBreak && c.label == "" {
			return normal, nil
		}
		if c.kind != completionNormal {
			return c, nil
		}
	}
	return normal, nil
}
