// Package evaluator runs programs in a small tree-walking interpreter and
// records what they print. Comparing the traces of two programs is how the
// equivalence of a rewrite is checked.
package evaluator

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reloopjs/reloop/ast"
)

// DefaultStepLimit bounds the number of statements a run may execute.
const DefaultStepLimit = 1_000_000

const maxCallDepth = 256

var (
	// ErrStepLimit is returned when a run exceeds its step budget.
	ErrStepLimit = errors.New("step limit exceeded")
	// ErrUnsupported is wrapped by errors for constructs the interpreter
	// does not run.
	ErrUnsupported = errors.New("unsupported construct")
)

// Exception is an uncaught throw.
type Exception struct {
	Value Value
}

func (e *Exception) Error() string {
	return "uncaught exception: " + e.Value.String()
}

func throwTypeError(format string, args ...any) error {
	return &Exception{Value: stringValue("TypeError: " + fmt.Sprintf(format, args...))}
}

func throwReferenceError(name string) error {
	return &Exception{Value: stringValue("ReferenceError: " + name + " is not defined")}
}

func unsupported(what string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, what)
}

// Result holds the observable behaviour of a run.
type Result struct {
	// Trace has one line per print or trace call, arguments joined by a
	// space.
	Trace []string
	Steps int
}

type options struct {
	stepLimit int
	output    io.Writer
}

// Option configures Run.
type Option func(*options)

// WithStepLimit sets the step budget. Zero or negative means the default.
func WithStepLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.stepLimit = n
		}
	}
}

// WithOutput mirrors every trace line to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

type interpreter struct {
	opts   options
	global *scope
	result *Result
	depth  int
}

// Run executes p. The trace collected so far is returned along with any
// error, including ErrStepLimit and uncaught exceptions.
func Run(p *ast.Program, opts ...Option) (*Result, error) {
	in := &interpreter{
		opts:   options{stepLimit: DefaultStepLimit},
		result: &Result{},
	}
	for _, opt := range opts {
		opt(&in.opts)
	}
	in.global = newScope(nil, true)
	in.installGlobals()

	hoistVars(in.global, p.Body)
	if err := in.hoistFunctions(in.global, p.Body); err != nil {
		return in.result, err
	}
	c, err := in.execList(in.global, p.Body)
	if err != nil {
		return in.result, err
	}
	if c.kind != completionNormal {
		return in.result, fmt.Errorf("%w: %s outside of a loop or function", ErrUnsupported, c.kind)
	}
	return in.result, nil
}

// Equivalent runs a and b and reports whether they print the same trace and
// agree on whether they fail.
func Equivalent(a, b *ast.Program, opts ...Option) (bool, error) {
	ra, errA := Run(a, opts...)
	rb, errB := Run(b, opts...)
	if errors.Is(errA, ErrUnsupported) {
		return false, errA
	}
	if errors.Is(errB, ErrUnsupported) {
		return false, errB
	}
	if errors.Is(errA, ErrStepLimit) || errors.Is(errB, ErrStepLimit) {
		return false, ErrStepLimit
	}
	if (errA == nil) != (errB == nil) {
		return false, nil
	}
	if errA != nil && errA.Error() != errB.Error() {
		return false, nil
	}
	return strings.Join(ra.Trace, "\n") == strings.Join(rb.Trace, "\n"), nil
}

func (in *interpreter) step() error {
	in.result.Steps++
	if in.result.Steps > in.opts.stepLimit {
		return ErrStepLimit
	}
	return nil
}

func (in *interpreter) installGlobals() {
	record := func(in *interpreter, _ Value, args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		line := strings.Join(parts, " ")
		in.result.Trace = append(in.result.Trace, line)
		if in.opts.output != nil {
			fmt.Fprintln(in.opts.output, line)
		}
		return undefinedValue, nil
	}
	in.global.declare("print", objectValue(newBuiltin("print", record)), false)
	in.global.declare("trace", objectValue(newBuiltin("trace", record)), false)
	in.global.declare("undefined", undefinedValue, true)
	in.global.declare("NaN", NaNValue(), true)
	in.global.declare("Infinity", positiveInfinityValue(), true)
}

// hoistVars declares every var binding of list in s, without entering
// nested functions.
func hoistVars(s *scope, list ast.Statements) {
	v := &varHoister{scope: s}
	v.V = v
	list.VisitWith(v)
}

type varHoister struct {
	ast.NoopVisitor
	scope *scope
}

func (h *varHoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if !n.IsLexical() {
		for _, d := range n.List {
			h.scope.declareVar(d.Target.Name)
		}
	}
}

func (h *varHoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {}
func (h *varHoister) VisitExpression(n *ast.Expression)                 {}

// hoistFunctions binds the function declarations directly in list.
func (in *interpreter) hoistFunctions(s *scope, list ast.Statements) error {
	for _, st := range list {
		if fd, ok := st.Stmt.(*ast.FunctionDeclaration); ok {
			fn := in.closure(s, fd.Function.ParameterList, fd.Function.Body, false)
			if fd.Function.Name == nil {
				return unsupported("anonymous function declaration")
			}
			s.declare(fd.Function.Name.Name, fn, false)
		}
	}
	return nil
}

func (in *interpreter) closure(s *scope, params *ast.ParameterList, body ast.ConciseBody, arrow bool) Value {
	return objectValue(&object{
		kind:  objectFunction,
		props: map[string]Value{},
		fn:    &function{params: params, body: body, scope: s, arrow: arrow},
	})
}
