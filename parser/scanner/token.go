package scanner

import (
	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/token"
)

type Token struct {
	Kind token.Token

	// OnNewLine is set when a line terminator precedes the token.
	OnNewLine bool

	Idx0, Idx1 ast.Idx
}

// Raw returns the source text of the token.
func (t Token) Raw(s *Scanner) string {
	return s.Slice(t.Idx0, t.Idx1)
}
