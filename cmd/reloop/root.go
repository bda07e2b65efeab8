package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reloopjs/reloop/cache"
	"github.com/reloopjs/reloop/config"
)

type flags struct {
	passes     []string
	write      bool
	suffix     string
	verify     bool
	maxSteps   int
	jobs       int
	noCache    bool
	configPath string
	color      string
	verbose    bool
}

func (f *flags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringSliceVar(&f.passes, "pass", nil, "passes to run (braces, while); repeatable, default all")
	pf.BoolVar(&f.verify, "verify", false, "run input and output and compare what they print")
	pf.IntVar(&f.maxSteps, "max-steps", config.DefaultMaxSteps, "statement budget for --verify")
	pf.IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files processed in parallel")
	pf.BoolVar(&f.noCache, "no-cache", false, "do not read or write the result cache")
	pf.StringVar(&f.configPath, "config", "", "path to reloop.toml (default: search upwards)")
	pf.StringVar(&f.color, "color", "auto", "colorize diagnostics (auto|always|never)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log per-file details to stderr")

	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "write results back to the input files")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "write results next to the inputs, replacing the extension with this suffix")
}

// session is what a command needs after flags and config are merged.
type session struct {
	opts    *options
	log     *slog.Logger
	printer *printer
	cfg     *config.Config
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// newSession merges cfg with the flags the user set explicitly.
func (f *flags) newSession(cmd *cobra.Command) (*session, error) {
	log := newLogger(cmd.ErrOrStderr(), f.verbose)
	p, err := newPrinter(cmd.ErrOrStderr(), f.color)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		log.Debug("loaded config", "path", cfg.Path)
	}

	changed := cmd.Flags().Changed
	if changed("pass") {
		cfg.Transform.Passes = f.passes
	}
	if changed("verify") {
		cfg.Verify.Enabled = f.verify
	}
	if changed("max-steps") {
		if f.maxSteps <= 0 {
			return nil, fmt.Errorf("--max-steps must be positive")
		}
		cfg.Verify.MaxSteps = f.maxSteps
	}
	if changed("no-cache") {
		cfg.Cache.Enabled = !f.noCache
	}
	if changed("write") {
		cfg.Output.Write = f.write
	}
	if changed("suffix") {
		if strings.ContainsRune(f.suffix, os.PathSeparator) {
			return nil, fmt.Errorf("--suffix must not contain a path separator")
		}
		cfg.Output.Suffix = f.suffix
	}

	passes, err := cfg.Passes()
	if err != nil {
		return nil, err
	}
	opts := &options{
		passes:   passes,
		inPlace:  cfg.InPlace(),
		suffix:   cfg.Output.Suffix,
		verify:   cfg.Verify.Enabled,
		maxSteps: cfg.Verify.MaxSteps,
		jobs:     f.jobs,
	}
	if opts.inPlace {
		opts.suffix = ""
	}
	if cfg.Cache.Enabled {
		c, err := openCache(cfg.Cache.Dir)
		if err != nil {
			log.Warn("cache disabled", "err", err)
		} else {
			opts.cache = c
		}
	}
	return &session{opts: opts, log: log, printer: p, cfg: cfg}, nil
}

func cacheDir() (string, error) {
	return cache.Dir("reloop")
}

func openCache(dir string) (*cache.Cache, error) {
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return cache.Open(dir)
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "reloop [files...]",
		Short: "Rewrite for and do-while loops into while loops",
		Long: `reloop parses JavaScript files, gives every if branch and loop body an
explicit block and rewrites for and do-while loops into equivalent while
loops. Results are printed to stdout unless --write or --suffix is given.
With no files, the program is read from stdin.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.newSession(cmd)
			if err != nil {
				return err
			}
			return s.rewrite(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	f.register(cmd)
	cmd.AddCommand(newCheckCmd(f), newCacheCmd(f), newVersionCmd())
	return cmd
}

func (s *session) rewrite(ctx context.Context, stdin io.Reader, stdout io.Writer, paths []string) error {
	inputs, err := collectInputs(stdin, paths)
	if err != nil {
		return err
	}
	outcomes := process(ctx, s.opts, s.log, inputs)

	failed := false
	for _, o := range outcomes {
		if o.err != nil {
			failed = true
			s.printer.diagnose(o)
			continue
		}
		if err := s.opts.emit(stdout, o, len(outcomes) > 1); err != nil {
			failed = true
			s.printer.failure(o.name(), err)
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func (o *options) mode() string {
	switch {
	case o.inPlace:
		return "write"
	case o.suffix != "":
		return "suffix"
	}
	return "stdout"
}
