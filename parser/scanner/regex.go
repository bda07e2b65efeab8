package scanner

import (
	"github.com/reloopjs/reloop/token"
)

// ScanRegExp rescans the current '/' or '/=' token as a regular expression
// literal. The parser calls it where an expression is expected, since the
// scanner alone cannot tell division from a regular expression.
func (s *Scanner) ScanRegExp() Token {
	s.pos = int(s.token.Idx0) // one past the opening slash
	idx := s.token.Idx0
	inClass := false
	for {
		b, ok := s.PeekByte()
		if !ok || b == '\n' || b == '\r' {
			s.errorf(idx, "Invalid regular expression: missing /")
			s.token.Kind = token.Illegal
			break
		}
		s.pos++
		if b == '\\' {
			if b, ok := s.PeekByte(); ok && b != '\n' && b != '\r' {
				s.pos++
			}
			continue
		}
		if b == '[' {
			inClass = true
		} else if b == ']' {
			inClass = false
		} else if b == '/' && !inClass {
			for s.pos < len(s.src) && isIdentifierPart(rune(s.src[s.pos])) {
				s.pos++
			}
			s.token.Kind = token.RegularExpression
			break
		}
	}
	s.token.Idx1 = s.Offset()
	return s.token
}
