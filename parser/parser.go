package parser

import (
	"errors"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/parser/scanner"
	"github.com/reloopjs/reloop/token"
)

type parser struct {
	token scanner.Token

	scanner *scanner.Scanner

	scope *scope

	errors error

	recover struct {
		// Scratch when trying to seek to the next statement, etc.
		idx   ast.Idx
		count int
	}
}

func newParser(src string) *parser {
	p := &parser{}
	p.scanner = scanner.NewScanner(src, func(err *scanner.Error) {
		p.errors = errors.Join(p.errors, err)
	})
	return p
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.Program node. All syntax errors found are
// returned joined; each one is an *Error carrying its source position.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	p.next()
	program := p.parseProgram()
	p.closeScope()
	return program, p.errors
}

func (p *parser) next() {
	p.token = p.scanner.Next()
}

type parserState struct {
	c scanner.Checkpoint

	tok scanner.Token

	errors error
}

func (p *parser) mark() parserState {
	return parserState{
		c:      p.scanner.Checkpoint(),
		tok:    p.token,
		errors: p.errors,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	// Truncate parser errors back to checkpoint state
	p.errors = state.errors
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	tok := p.scanner.Next()
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.Raw(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	switch p.currentKind() {
	case token.Semicolon, token.RightBrace, token.Eof:
		return true
	}
	return p.token.OnNewLine
}

func (p *parser) semicolon() {
	if p.currentKind() == token.Semicolon {
		p.next()
		return
	}
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}
