package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/cache"
	"github.com/reloopjs/reloop/evaluator"
	"github.com/reloopjs/reloop/file"
	"github.com/reloopjs/reloop/generator"
	"github.com/reloopjs/reloop/parser"
	"github.com/reloopjs/reloop/transform"
)

const stdinName = "<stdin>"

type options struct {
	passes   []transform.Pass
	inPlace  bool
	suffix   string
	verify   bool
	maxSteps int
	jobs     int
	cache    *cache.Cache
}

// input is a file to process. Either path or file is set.
type input struct {
	path string
	file *file.File
}

type outcome struct {
	input
	output  string
	report  transform.Report
	cached  bool
	err     error
	elapsed time.Duration
}

func (o *outcome) name() string {
	if o.file != nil {
		return o.file.Name()
	}
	return o.path
}

// VerifyError reports a rewrite that changed what a program prints.
type VerifyError struct {
	Before, After []string
}

func (e *VerifyError) Error() string {
	i := 0
	for i < len(e.Before) && i < len(e.After) && e.Before[i] == e.After[i] {
		i++
	}
	line := func(t []string) string {
		if i < len(t) {
			return fmt.Sprintf("%q", t[i])
		}
		return "end of output"
	}
	return fmt.Sprintf("output differs from input at print %d: %s became %s", i+1, line(e.Before), line(e.After))
}

func collectInputs(stdin io.Reader, paths []string) ([]input, error) {
	if len(paths) > 0 {
		inputs := make([]input, len(paths))
		for i, p := range paths {
			inputs[i] = input{path: p}
		}
		return inputs, nil
	}
	src, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []input{{file: file.NewFile(stdinName, string(src))}}, nil
}

// process runs every input through the pipeline. Outcomes are returned in
// input order no matter how many jobs ran.
func process(ctx context.Context, opts *options, log *slog.Logger, inputs []input) []outcome {
	outcomes := make([]outcome, len(inputs))
	jobs := opts.jobs
	if jobs <= 0 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(min(jobs, max(len(inputs), 1)))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			// Inputs not started before cancellation are reported, not run.
			if err := ctx.Err(); err != nil {
				outcomes[i] = outcome{input: in, err: err}
				return nil
			}
			start := time.Now()
			o := opts.run(in, log)
			o.elapsed = time.Since(start)
			log.Debug("processed",
				"file", o.name(),
				"elapsed", o.elapsed,
				"cached", o.cached,
				"mode", opts.mode(),
				"blocks", o.report.BlocksAdded,
				"for", o.report.ForLoops,
				"do_while", o.report.DoWhileLoops,
				"continues", o.report.ContinuesRedirected,
			)
			outcomes[i] = o
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (opts *options) run(in input, log *slog.Logger) outcome {
	o := outcome{input: in}
	if o.file == nil {
		f, err := file.Load(in.path)
		if err != nil {
			o.err = err
			return o
		}
		o.file = f
	}
	src := o.file.Source()

	key := cache.NewKey(version(), opts.passes, src)
	// A verified run always executes both programs.
	if !opts.verify {
		e, ok, err := opts.cache.Get(key)
		if err != nil {
			log.Warn("cache read failed", "file", o.name(), "err", err)
		} else if ok {
			o.output, o.report, o.cached = e.Output, e.Report(), true
			return o
		}
	}

	p, err := parser.ParseFile(src)
	if err != nil {
		o.err = err
		return o
	}
	var original *ast.Program
	if opts.verify {
		// Apply rewrites p in place.
		original, _ = parser.ParseFile(src)
	}

	o.report, err = transform.Apply(p, transform.Options{Passes: opts.passes})
	if err != nil {
		o.err = err
		return o
	}
	o.output = generator.Generate(p)
	if !strings.HasSuffix(o.output, "\n") {
		o.output += "\n"
	}

	if opts.verify {
		if o.err = opts.check(original, o.output); o.err != nil {
			return o
		}
	}

	e, err := cache.NewEntry(o.output, o.report)
	if err == nil {
		err = opts.cache.Put(key, e)
	}
	if err != nil {
		log.Warn("cache write failed", "file", o.name(), "err", err)
	}
	return o
}

// check reparses output and compares its trace with original's.
func (opts *options) check(original *ast.Program, output string) error {
	rewritten, err := parser.ParseFile(output)
	if err != nil {
		return fmt.Errorf("output does not parse: %w", err)
	}
	same, err := evaluator.Equivalent(original, rewritten, evaluator.WithStepLimit(opts.maxSteps))
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if same {
		return nil
	}
	before, errBefore := evaluator.Run(original, evaluator.WithStepLimit(opts.maxSteps))
	after, errAfter := evaluator.Run(rewritten, evaluator.WithStepLimit(opts.maxSteps))
	if (errBefore == nil) != (errAfter == nil) || (errBefore != nil && errBefore.Error() != errAfter.Error()) {
		return fmt.Errorf("verify: input ends with %v, output ends with %v", orOK(errBefore), orOK(errAfter))
	}
	return &VerifyError{Before: before.Trace, After: after.Trace}
}

func orOK(err error) any {
	if err == nil {
		return "success"
	}
	return err
}

// outputPath is where a suffix run writes the result for path.
func outputPath(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

func (opts *options) emit(stdout io.Writer, o outcome, header bool) error {
	if o.path == "" || (!opts.inPlace && opts.suffix == "") {
		if header {
			if _, err := fmt.Fprintf(stdout, "// %s\n", o.name()); err != nil {
				return err
			}
		}
		_, err := io.WriteString(stdout, o.output)
		return err
	}
	target := o.path
	if !opts.inPlace {
		target = outputPath(o.path, opts.suffix)
	}
	if opts.inPlace && o.output == o.file.Source() {
		return nil
	}
	return writeFile(target, o.output)
}

// writeFile replaces path atomically, keeping the mode of an existing file.
func writeFile(path, content string) (err error) {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".reloop-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = f.WriteString(content); err != nil {
		return err
	}
	if err = f.Chmod(mode); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
