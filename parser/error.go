package parser

import (
	"errors"
	"fmt"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/parser/scanner"
	"github.com/reloopjs/reloop/token"
)

// Error is a syntax error with the position it was found at.
type Error = scanner.Error

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
	errInvalidAssignTarget  = "Invalid left-hand side in assignment"
	errUnsupported          = "%s are not supported"
)

func (p *parser) errorf(msg string, msgValues ...any) error {
	return p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorAt(idx ast.Idx, msg string, msgValues ...any) error {
	err := &Error{Idx: idx, Message: fmt.Sprintf(msg, msgValues...)}
	p.errors = errors.Join(p.errors, err)
	return err
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Illegal:
		// The scanner reported it already.
		return nil
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		return p.errorf("Unexpected identifier")
	case token.Number:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	}
	if token.IsKeyword(tkn) {
		return p.errorf("Unexpected token '%s'", p.currentString())
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}
