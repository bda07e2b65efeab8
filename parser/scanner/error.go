package scanner

import (
	"fmt"

	"github.com/reloopjs/reloop/ast"
)

// Error is a syntax error at a source position.
type Error struct {
	Idx     ast.Idx
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (s *Scanner) errorf(idx ast.Idx, format string, args ...any) {
	if s.report != nil {
		s.report(&Error{Idx: idx, Message: fmt.Sprintf(format, args...)})
	}
}
