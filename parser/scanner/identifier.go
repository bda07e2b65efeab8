package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/reloopjs/reloop/token"
)

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' ||
		'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' ||
		r >= utf8.RuneSelf && (unicode.IsLetter(r) || unicode.Is(unicode.Nl, r))
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || '0' <= r && r <= '9' ||
		r == '\u200c' || r == '\u200d' ||
		r >= utf8.RuneSelf && (unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
			unicode.Is(unicode.Nd, r) || unicode.Is(unicode.Pc, r))
}

func handleIdentifier(s *Scanner) token.Token {
	start := s.pos
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		if b < utf8.RuneSelf {
			if !isIdentifierPart(rune(b)) {
				break
			}
			s.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	if b, ok := s.PeekByte(); ok && b == '\\' {
		return handleEscapedIdentifier(s)
	}
	if kind, _ := token.LiteralKeyword(s.src[start:s.pos]); kind != 0 {
		return kind
	}
	return token.Identifier
}

func handleEscapedIdentifier(s *Scanner) token.Token {
	idx := s.Offset()
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if r != '\\' && r != '{' && r != '}' && !isIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	s.errorf(idx, "Unicode escape sequences in identifiers are not supported")
	return token.Illegal
}
