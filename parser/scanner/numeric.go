package scanner

import (
	"math"
	"strconv"
	"strings"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/token"
)

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return int(b - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

func (s *Scanner) skipDigits(base int) {
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		if b != '_' && digitValue(b) >= base {
			return
		}
		s.pos++
	}
}

func handleNumber(s *Scanner) token.Token {
	idx := s.Offset()
	if b, _ := s.PeekByte(); b == '0' {
		if next, ok := s.peekByteAt(1); ok {
			base := 0
			switch next {
			case 'x', 'X':
				base = 16
			case 'o', 'O':
				base = 8
			case 'b', 'B':
				base = 2
			}
			if base != 0 {
				s.pos += 2
				start := s.pos
				s.skipDigits(base)
				if s.pos == start {
					s.errorf(idx, "Invalid or unexpected token")
					return token.Illegal
				}
				return s.numberEnd(idx)
			}
		}
	}

	s.skipDigits(10)
	if s.AdvanceIfByteEquals('.') {
		s.skipDigits(10)
	}
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.pos++
		if b, ok := s.PeekByte(); ok && (b == '+' || b == '-') {
			s.pos++
		}
		start := s.pos
		s.skipDigits(10)
		if s.pos == start {
			s.errorf(idx, "Invalid or unexpected token")
			return token.Illegal
		}
	}
	return s.numberEnd(idx)
}

// numberEnd rejects an identifier that starts right after a numeric literal,
// as in 3in or 0x1g.
func (s *Scanner) numberEnd(idx ast.Idx) token.Token {
	if b, ok := s.PeekByte(); ok && (isIdentifierStart(rune(b)) || isDecimalDigit(b)) {
		s.errorf(idx, "Invalid or unexpected token")
		return token.Illegal
	}
	return token.Number
}

// ParseNumber returns the value of a numeric literal as spelled in source.
func ParseNumber(literal string) (float64, error) {
	literal = strings.ReplaceAll(literal, "_", "")
	if len(literal) > 2 && literal[0] == '0' {
		base := 0
		switch literal[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(literal[2:], base, 64)
			if err != nil {
				// Too large for uint64: accumulate as a float like the engine does.
				f := 0.0
				for i := 2; i < len(literal); i++ {
					f = f*float64(base) + float64(digitValue(literal[i]))
				}
				return f, nil
			}
			return float64(v), nil
		}
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return math.Inf(1), nil
		}
		return 0, err
	}
	return v, nil
}
