package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/ast/ext"
	"github.com/reloopjs/reloop/file"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/transform/loops"
)

type printer struct {
	w    io.Writer
	tag  *color.Color
	note *color.Color
	bold *color.Color
}

func newPrinter(w io.Writer, mode string) (*printer, error) {
	p := &printer{
		w:    w,
		tag:  color.New(color.FgRed, color.Bold),
		note: color.New(color.FgCyan),
		bold: color.New(color.Bold),
	}
	var enable bool
	switch mode {
	case "auto", "":
		enable = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	case "always":
		enable = true
	case "never":
		enable = false
	default:
		return nil, fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
	}
	for _, c := range []*color.Color{p.tag, p.note, p.bold} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// positioned extracts the source position carried by err.
func positioned(err error) (ast.Idx, bool) {
	var syntax *parser.Error
	var unsupported *loops.UnsupportedConstructError
	var shape *ext.ShapeError
	switch {
	case errors.As(err, &syntax):
		return syntax.Idx, true
	case errors.As(err, &unsupported):
		return unsupported.Idx, true
	case errors.As(err, &shape):
		return shape.Idx, shape.Idx != 0
	}
	return 0, false
}

// split flattens errors joined by the parser.
func split(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []error
		for _, e := range joined.Unwrap() {
			errs = append(errs, split(e)...)
		}
		return errs
	}
	return []error{err}
}

func (p *printer) failure(where string, err error) {
	p.tag.Fprint(p.w, "error: ")
	p.bold.Fprint(p.w, where)
	fmt.Fprintf(p.w, ": %v\n", err)
}

func (p *printer) diagnose(o outcome) {
	for _, err := range split(o.err) {
		idx, ok := positioned(err)
		if !ok || o.file == nil {
			p.failure(o.name(), err)
			continue
		}
		p.at(o.file, idx, err)
	}
}

func (p *printer) at(f *file.File, idx ast.Idx, err error) {
	pos := f.Position(idx)
	p.tag.Fprint(p.w, "error: ")
	p.bold.Fprint(p.w, pos.String())
	fmt.Fprintf(p.w, ": %v\n", err)
	if ctx := f.Context(idx); ctx != "" {
		p.note.Fprintln(p.w, ctx)
	}
}
