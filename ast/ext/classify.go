package ext

import (
	"fmt"

	"github.com/reloopjs/reloop/ast"
)

// Kind is the syntactic role a statement plays for control-flow rewrites.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindStatement
	KindBlock
	KindLoop
	KindConditional
	KindJump
	KindFunction
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindStatement:   "statement",
	KindBlock:       "block",
	KindLoop:        "loop",
	KindConditional: "conditional",
	KindJump:        "jump",
	KindFunction:    "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Classify returns the kind of s. A nil statement, including a typed nil
// pointer, is KindInvalid.
func Classify(s ast.Stmt) Kind {
	switch n := s.(type) {
	case nil:
		return KindInvalid
	case *ast.Statement:
		if n == nil {
			return KindInvalid
		}
		return Classify(n.Stmt)
	case *ast.BlockStatement:
		return kindOf(n == nil, KindBlock)
	case *ast.ForStatement:
		return kindOf(n == nil, KindLoop)
	case *ast.WhileStatement:
		return kindOf(n == nil, KindLoop)
	case *ast.DoWhileStatement:
		return kindOf(n == nil, KindLoop)
	case *ast.ForInStatement:
		return kindOf(n == nil, KindLoop)
	case *ast.ForOfStatement:
		return kindOf(n == nil, KindLoop)
	case *ast.IfStatement:
		return kindOf(n == nil, KindConditional)
	case *ast.ContinueStatement:
		return kindOf(n == nil, KindJump)
	case *ast.BreakStatement:
		return kindOf(n == nil, KindJump)
	case *ast.FunctionDeclaration:
		return kindOf(n == nil, KindFunction)
	}
	return KindStatement
}

func kindOf(isNil bool, k Kind) Kind {
	if isNil {
		return KindInvalid
	}
	return k
}

// KindSet is a set of kinds, used as the stop set of bounded walks.
type KindSet uint16

// Kinds builds a set holding ks.
func Kinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// ShapeError reports a node whose variant does not match what a rewrite
// expected at that position.
type ShapeError struct {
	Want Kind
	Got  Kind
	Idx  ast.Idx
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Want, e.Got)
}

// AssertIs returns a *ShapeError unless s classifies as k.
func AssertIs(s ast.Stmt, k Kind) error {
	if got := Classify(s); got != k {
		var idx ast.Idx
		if got != KindInvalid {
			idx = s.Idx0()
		}
		return &ShapeError{Want: k, Got: got, Idx: idx}
	}
	return nil
}

// IsLoop reports whether s is one of the iteration statements.
func IsLoop(s ast.Stmt) bool {
	return Classify(s) == KindLoop
}

// LoopBody returns the body slot of a loop statement, or nil when s is not a
// loop.
func LoopBody(s ast.Stmt) *ast.Statement {
	switch n := s.(type) {
	case *ast.ForStatement:
		return n.Body
	case *ast.WhileStatement:
		return n.Body
	case *ast.DoWhileStatement:
		return n.Body
	case *ast.ForInStatement:
		return n.Body
	case *ast.ForOfStatement:
		return n.Body
	case *ast.Statement:
		return LoopBody(n.Stmt)
	}
	return nil
}
