package scanner

import (
	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/token"
)

// Scanner splits JavaScript source into tokens. It is restartable from any
// Checkpoint, which the parser uses for lookahead.
type Scanner struct {
	token Token

	src string
	pos int

	newLine bool
	report  func(*Error)
}

// NewScanner returns a scanner over src. Lexical errors are handed to report,
// which may be nil.
func NewScanner(src string, report func(*Error)) *Scanner {
	return &Scanner{
		src:    src,
		report: report,
	}
}

// Next scans the next token, skipping whitespace and comments.
func (s *Scanner) Next() Token {
	s.newLine = false
	for {
		s.token.Idx0 = s.Offset()

		b, ok := s.PeekByte()
		if !ok {
			s.token.Kind = token.Eof
			break
		}

		if s.token.Kind = byteHandlers[b](s); s.token.Kind != token.Skip {
			break
		}
	}
	s.token.Idx1 = s.Offset()
	s.token.OnNewLine = s.newLine
	return s.token
}

type Checkpoint struct {
	pos int
	tok Token
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos: s.pos,
		tok: s.token,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.pos = c.pos
	s.token = c.tok
}

// Offset returns the position of the next unread byte.
func (s *Scanner) Offset() ast.Idx {
	return ast.Idx(s.pos + 1)
}

// Slice returns the source text between two positions.
func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src[from-1 : to-1]
}

func (s *Scanner) PeekByte() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *Scanner) peekByteAt(n int) (byte, bool) {
	if s.pos+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+n], true
}

func (s *Scanner) ConsumeByte() byte {
	b := s.src[s.pos]
	s.pos++
	return b
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == b {
		s.pos++
		return true
	}
	return false
}
