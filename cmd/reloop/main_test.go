package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"github.com/reloopjs/reloop/file"
	"github.com/reloopjs/reloop/transform"
)

// run executes the CLI with a private cache and an empty config.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	cfg := filepath.Join(dir, "reloop.toml")
	if err := os.WriteFile(cfg, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", cfg, "--color", "never"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestRewriteStdin(t *testing.T) {
	stdout, _, err := run(t, "for (var i = 0; i < 2; i++) f(i);")
	test.Error(t, err)
	test.String(t, squash(stdout), "var i = 0; while (i < 2) { f(i); i++; }")
	test.That(t, strings.HasSuffix(stdout, "\n"))
}

func TestRewritePasses(t *testing.T) {
	stdout, _, err := run(t, "if (a) b(); do c(); while (d);", "--pass", "braces")
	test.Error(t, err)
	test.String(t, squash(stdout), "if (a) { b(); } do { c(); } while (d);")

	_, _, err = run(t, "a;", "--pass", "unroll")
	test.That(t, err != nil && strings.Contains(err.Error(), "unknown pass"), err)
}

func TestRewriteFilesInOrder(t *testing.T) {
	a := writeInput(t, "a.js", "do a(); while (x);")
	b := writeInput(t, "b.js", "for (;;) b();")
	stdout, _, err := run(t, "", "-j", "4", a, b)
	test.Error(t, err)
	want := "// " + a + " while (true) { a(); if (!x) { break; } } // " + b + " while (true) { b(); }"
	test.String(t, squash(stdout), want)
}

func TestRewriteWrite(t *testing.T) {
	path := writeInput(t, "in.js", "for (;;) x();\n")
	stdout, _, err := run(t, "", "-w", path)
	test.Error(t, err)
	test.String(t, stdout, "")

	got, err := os.ReadFile(path)
	test.Error(t, err)
	test.String(t, squash(string(got)), "while (true) { x(); }")
}

func TestRewriteSuffix(t *testing.T) {
	path := writeInput(t, "in.js", "do x(); while (y);")
	_, _, err := run(t, "", "--suffix", ".while.js", path)
	test.Error(t, err)

	got, err := os.ReadFile(filepath.Join(filepath.Dir(path), "in.while.js"))
	test.Error(t, err)
	test.String(t, squash(string(got)), "while (true) { x(); if (!y) { break; } }")

	src, err := os.ReadFile(path)
	test.Error(t, err)
	test.String(t, string(src), "do x(); while (y);", "input untouched")
}

func TestRewriteErrors(t *testing.T) {
	path := writeInput(t, "bad.js", "var i = 0;\nouter: for (;; i++) {\n  for (;;) continue outer;\n}\n")
	_, stderr, err := run(t, "", path)
	test.That(t, err == errFailed, err)
	test.That(t, strings.Contains(stderr, path+":3:12: labeled continue 'outer' is not supported"), stderr)
	test.That(t, strings.Contains(stderr, "continue outer;\n"), stderr)

	_, stderr, err = run(t, "var = ;")
	test.That(t, err == errFailed, err)
	test.That(t, strings.Contains(stderr, "error: <stdin>:1:5:"), stderr)

	_, stderr, err = run(t, "", filepath.Join(t.TempDir(), "missing.js"))
	test.That(t, err == errFailed, err)
	test.That(t, strings.Contains(stderr, "missing.js"), stderr)
}

func TestRewriteVerify(t *testing.T) {
	src := `var i = 0;
do {
	i++;
	if (i == 2) continue;
	print(i);
} while (i < 4);`
	stdout, _, err := run(t, src, "--verify")
	test.Error(t, err)
	test.That(t, strings.Contains(stdout, "while (true)"), stdout)
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	src := "for (;;) x();"
	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--config", writeInput(t, "reloop.toml", ""), "-v"})
		cmd.SetIn(strings.NewReader(src))
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		test.Error(t, cmd.Execute())
		test.String(t, squash(out.String()), "while (true) { x(); }")
	}
	entries, err := os.ReadDir(filepath.Join(dir, "reloop"))
	test.Error(t, err)
	test.T(t, len(entries), 1, "one cache shard")
}

func TestCheck(t *testing.T) {
	a := writeInput(t, "a.js", "for (var i = 0; i < 3; i++) { if (i) continue; f(); }")
	b := writeInput(t, "b.js", "while (a) { b(); }")
	stdout, _, err := run(t, "", "check", a, b)
	test.Error(t, err)
	test.String(t, stdout, a+": 1 for loop, 1 continue redirected\n"+b+": unchanged\n")
}

func TestSummary(t *testing.T) {
	var tests = []struct {
		report transform.Report
		want   string
	}{
		{transform.Report{}, "unchanged"},
		{transform.Report{BlocksAdded: 1}, "1 block added"},
		{transform.Report{ForLoops: 2, DoWhileLoops: 1}, "2 for loops, 1 do-while loop"},
		{transform.Report{DoWhileLoops: 3, ContinuesRedirected: 4, BlocksAdded: 2}, "3 do-while loops, 4 continues redirected, 2 blocks added"},
	}
	for _, tt := range tests {
		test.String(t, summary(tt.report), tt.want)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeInput(t, "reloop.toml", "[transform]\npasses = [\"while\"]\n[cache]\nenabled = false\n")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfg})
	cmd.SetIn(strings.NewReader("if (a) b(); for (;;) c();"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	test.Error(t, cmd.Execute())
	test.String(t, squash(out.String()), "if (a) b(); while (true) { c(); }")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	test.Error(t, err)
	test.That(t, strings.HasPrefix(stdout, "reloop "), stdout)
}

func TestColorFlag(t *testing.T) {
	_, _, err := run(t, "a;", "--color", "sometimes")
	test.That(t, err != nil && strings.Contains(err.Error(), "invalid --color"), err)
}

func TestProcessContext(t *testing.T) {
	inputs := []input{
		{file: file.NewFile("a.js", "for (;;) a();")},
		{file: file.NewFile("b.js", "do b(); while (c);")},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	outcomes := process(context.Background(), &options{jobs: 2}, log, inputs)
	test.T(t, len(outcomes), 2)
	test.Error(t, outcomes[0].err)
	test.Error(t, outcomes[1].err)
	test.String(t, squash(outcomes[0].output), "while (true) { a(); }")
	test.String(t, squash(outcomes[1].output), "while (true) { b(); if (!c) { break; } }")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, o := range process(ctx, &options{jobs: 2}, log, inputs) {
		test.That(t, errors.Is(o.err, context.Canceled), o.name(), o.err)
		test.String(t, o.output, "")
	}
}
