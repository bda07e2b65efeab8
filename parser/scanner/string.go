package scanner

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/reloopjs/reloop/token"
)

func handleString(s *Scanner) token.Token {
	idx := s.Offset()
	quote := s.ConsumeByte()
	for s.pos < len(s.src) {
		switch b := s.src[s.pos]; b {
		case quote:
			s.pos++
			return token.String
		case '\\':
			s.pos++
			if s.pos < len(s.src) {
				if s.src[s.pos] == '\r' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '\n' {
					s.pos++
				}
				s.pos++
			}
		case '\n', '\r':
			s.errorf(idx, "Invalid or unexpected token")
			return token.Illegal
		default:
			s.pos++
		}
	}
	s.errorf(idx, "Invalid or unexpected token")
	return token.Illegal
}

var errInvalidEscape = errors.New("Invalid escape sequence")

// Unquote decodes a quoted string literal, resolving escape sequences.
func Unquote(literal string) (string, error) {
	if len(literal) < 2 {
		return "", errInvalidEscape
	}
	body := literal[1 : len(literal)-1]
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}

	var (
		b     strings.Builder
		units []uint16
	)
	flush := func() {
		if len(units) > 0 {
			b.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			flush()
			r, size := utf8.DecodeRuneInString(body[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		i++
		if i >= len(body) {
			return "", errInvalidEscape
		}
		c = body[i]
		i++
		switch c {
		case 'n':
			flush()
			b.WriteByte('\n')
		case 't':
			flush()
			b.WriteByte('\t')
		case 'r':
			flush()
			b.WriteByte('\r')
		case 'b':
			flush()
			b.WriteByte('\b')
		case 'f':
			flush()
			b.WriteByte('\f')
		case 'v':
			flush()
			b.WriteByte('\v')
		case '0':
			flush()
			b.WriteByte(0)
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if i+2 > len(body) {
				return "", errInvalidEscape
			}
			v, ok := hexValue(body[i : i+2])
			if !ok {
				return "", errInvalidEscape
			}
			i += 2
			flush()
			b.WriteRune(rune(v))
		case 'u':
			var v int
			var ok bool
			if i < len(body) && body[i] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end < 0 {
					return "", errInvalidEscape
				}
				v, ok = hexValue(body[i+1 : i+end])
				i += end + 1
				if !ok || v > utf8.MaxRune {
					return "", errInvalidEscape
				}
				flush()
				b.WriteRune(rune(v))
				continue
			}
			if i+4 > len(body) {
				return "", errInvalidEscape
			}
			v, ok = hexValue(body[i : i+4])
			if !ok {
				return "", errInvalidEscape
			}
			i += 4
			// Surrogate halves are collected so that escaped pairs decode
			// to one code point.
			units = append(units, uint16(v))
		default:
			flush()
			r, size := utf8.DecodeRuneInString(body[i-1:])
			b.WriteRune(r)
			i += size - 1
		}
	}
	flush()
	return b.String(), nil
}

func hexValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= 16 {
			return 0, false
		}
		v = v*16 + d
	}
	return v, true
}
