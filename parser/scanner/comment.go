package scanner

import "strings"

func (s *Scanner) skipLineComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\n', '\r':
			return
		}
		if strings.HasPrefix(s.src[s.pos:], "\u2028") || strings.HasPrefix(s.src[s.pos:], "\u2029") {
			return
		}
		s.pos++
	}
}

func (s *Scanner) skipBlockComment() {
	idx := s.Offset()
	s.pos += 2
	end := strings.Index(s.src[s.pos:], "*/")
	if end < 0 {
		s.errorf(idx, "Unterminated comment")
		end = len(s.src) - s.pos
	} else {
		end += 2
	}
	if strings.ContainsAny(s.src[s.pos:s.pos+end], "\n\r\u2028\u2029") {
		s.newLine = true
	}
	s.pos += end
}
