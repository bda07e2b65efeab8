package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/reloopjs/reloop/token"
)

type byteHandler func(s *Scanner) token.Token

var byteHandlers [256]byteHandler

func init() {
	for i := range byteHandlers {
		byteHandlers[i] = handleIllegal
	}
	for i := 0x80; i < 0x100; i++ {
		byteHandlers[i] = handleUnicode
	}
	for _, b := range []byte{' ', '\t', '\v', '\f'} {
		byteHandlers[b] = handleWhitespace
	}
	byteHandlers['\n'] = handleLineTerminator
	byteHandlers['\r'] = handleLineTerminator
	for b := 'a'; b <= 'z'; b++ {
		byteHandlers[b] = handleIdentifier
	}
	for b := 'A'; b <= 'Z'; b++ {
		byteHandlers[b] = handleIdentifier
	}
	byteHandlers['$'] = handleIdentifier
	byteHandlers['_'] = handleIdentifier
	for b := '0'; b <= '9'; b++ {
		byteHandlers[b] = handleNumber
	}
	byteHandlers['"'] = handleString
	byteHandlers['\''] = handleString
	byteHandlers['`'] = handleTemplate
	byteHandlers['\\'] = handleEscapedIdentifier

	byteHandlers['('] = single(token.LeftParenthesis)
	byteHandlers[')'] = single(token.RightParenthesis)
	byteHandlers['['] = single(token.LeftBracket)
	byteHandlers[']'] = single(token.RightBracket)
	byteHandlers['{'] = single(token.LeftBrace)
	byteHandlers['}'] = single(token.RightBrace)
	byteHandlers[';'] = single(token.Semicolon)
	byteHandlers[','] = single(token.Comma)
	byteHandlers[':'] = single(token.Colon)
	byteHandlers['~'] = single(token.BitwiseNot)

	byteHandlers['.'] = handlePeriod
	byteHandlers['/'] = handleSlash
	byteHandlers['?'] = handleQuestion
	byteHandlers['+'] = handlePlus
	byteHandlers['-'] = handleMinus
	byteHandlers['*'] = handleStar
	byteHandlers['%'] = handlePercent
	byteHandlers['&'] = handleAmpersand
	byteHandlers['|'] = handlePipe
	byteHandlers['^'] = handleCaret
	byteHandlers['!'] = handleBang
	byteHandlers['='] = handleEquals
	byteHandlers['<'] = handleLess
	byteHandlers['>'] = handleGreater
}

func single(kind token.Token) byteHandler {
	return func(s *Scanner) token.Token {
		s.ConsumeByte()
		return kind
	}
}

func handleIllegal(s *Scanner) token.Token {
	idx := s.Offset()
	b := s.ConsumeByte()
	s.errorf(idx, "Invalid or unexpected token %q", b)
	return token.Illegal
}

func handleWhitespace(s *Scanner) token.Token {
	s.ConsumeByte()
	return token.Skip
}

func handleLineTerminator(s *Scanner) token.Token {
	s.ConsumeByte()
	s.newLine = true
	return token.Skip
}

func handleUnicode(s *Scanner) token.Token {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	switch {
	case r == '\u2028' || r == '\u2029':
		s.pos += size
		s.newLine = true
		return token.Skip
	case r == '\ufeff' || unicode.Is(unicode.Zs, r):
		s.pos += size
		return token.Skip
	case isIdentifierStart(r):
		return handleIdentifier(s)
	}
	idx := s.Offset()
	s.pos += size
	s.errorf(idx, "Invalid or unexpected token %q", r)
	return token.Illegal
}

func handleTemplate(s *Scanner) token.Token {
	idx := s.Offset()
	s.ConsumeByte()
	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		s.ConsumeByte()
		if b == '\\' {
			if _, ok := s.PeekByte(); ok {
				s.ConsumeByte()
			}
			continue
		}
		if b == '`' {
			break
		}
	}
	s.errorf(idx, "Template literals are not supported")
	return token.Illegal
}

func handlePeriod(s *Scanner) token.Token {
	if b, ok := s.peekByteAt(1); ok && isDecimalDigit(b) {
		return handleNumber(s)
	}
	s.ConsumeByte()
	if b1, ok := s.PeekByte(); ok && b1 == '.' {
		if b2, ok := s.peekByteAt(1); ok && b2 == '.' {
			s.pos += 2
			return token.Ellipsis
		}
	}
	return token.Period
}

func handleSlash(s *Scanner) token.Token {
	switch b, _ := s.peekByteAt(1); b {
	case '/':
		s.skipLineComment()
		return token.Skip
	case '*':
		s.skipBlockComment()
		return token.Skip
	}
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		return token.QuotientAssign
	}
	return token.Slash
}

func handleQuestion(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('?') {
		if s.AdvanceIfByteEquals('=') {
			return token.CoalesceAssign
		}
		return token.Coalesce
	}
	return token.QuestionMark
}

func handlePlus(s *Scanner) token.Token {
	s.ConsumeByte()
	switch {
	case s.AdvanceIfByteEquals('+'):
		return token.Increment
	case s.AdvanceIfByteEquals('='):
		return token.AddAssign
	}
	return token.Plus
}

func handleMinus(s *Scanner) token.Token {
	s.ConsumeByte()
	switch {
	case s.AdvanceIfByteEquals('-'):
		return token.Decrement
	case s.AdvanceIfByteEquals('='):
		return token.SubtractAssign
	}
	return token.Minus
}

func handleStar(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('*') {
		if s.AdvanceIfByteEquals('=') {
			return token.ExponentAssign
		}
		return token.Exponent
	}
	if s.AdvanceIfByteEquals('=') {
		return token.MultiplyAssign
	}
	return token.Multiply
}

func handlePercent(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		return token.RemainderAssign
	}
	return token.Remainder
}

func handleAmpersand(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('&') {
		if s.AdvanceIfByteEquals('=') {
			return token.LogicalAndAssign
		}
		return token.LogicalAnd
	}
	if s.AdvanceIfByteEquals('=') {
		return token.AndAssign
	}
	return token.And
}

func handlePipe(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('|') {
		if s.AdvanceIfByteEquals('=') {
			return token.LogicalOrAssign
		}
		return token.LogicalOr
	}
	if s.AdvanceIfByteEquals('=') {
		return token.OrAssign
	}
	return token.Or
}

func handleCaret(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		return token.ExclusiveOrAssign
	}
	return token.ExclusiveOr
}

func handleBang(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		if s.AdvanceIfByteEquals('=') {
			return token.StrictNotEqual
		}
		return token.NotEqual
	}
	return token.Not
}

func handleEquals(s *Scanner) token.Token {
	s.ConsumeByte()
	switch {
	case s.AdvanceIfByteEquals('>'):
		return token.Arrow
	case s.AdvanceIfByteEquals('='):
		if s.AdvanceIfByteEquals('=') {
			return token.StrictEqual
		}
		return token.Equal
	}
	return token.Assign
}

func handleLess(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('<') {
		if s.AdvanceIfByteEquals('=') {
			return token.ShiftLeftAssign
		}
		return token.ShiftLeft
	}
	if s.AdvanceIfByteEquals('=') {
		return token.LessOrEqual
	}
	return token.Less
}

func handleGreater(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('>') {
		if s.AdvanceIfByteEquals('>') {
			if s.AdvanceIfByteEquals('=') {
				return token.UnsignedShiftRightAssign
			}
			return token.UnsignedShiftRight
		}
		if s.AdvanceIfByteEquals('=') {
			return token.ShiftRightAssign
		}
		return token.ShiftRight
	}
	if s.AdvanceIfByteEquals('=') {
		return token.GreaterOrEqual
	}
	return token.Greater
}
