// Package config loads reloop.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/reloopjs/reloop/transform"
)

// FileName is the name looked up by Find.
const FileName = "reloop.toml"

// DefaultMaxSteps is the verification step budget when none is configured.
const DefaultMaxSteps = 100_000

type Config struct {
	// Path is the file the config was read from, empty for the defaults.
	Path string `toml:"-"`

	Transform TransformConfig `toml:"transform"`
	Output    OutputConfig    `toml:"output"`
	Verify    VerifyConfig    `toml:"verify"`
	Cache     CacheConfig     `toml:"cache"`
}

type TransformConfig struct {
	Passes []string `toml:"passes"`
}

type OutputConfig struct {
	// Suffix names the output file next to each input. "-" writes in place.
	Suffix string `toml:"suffix"`
	Write  bool   `toml:"write"`
}

type VerifyConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxSteps int  `toml:"max_steps"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Verify: VerifyConfig{MaxSteps: DefaultMaxSteps},
		Cache:  CacheConfig{Enabled: true},
	}
}

// Find walks up from startDir looking for reloop.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads the config at path. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("verify", "max_steps") && cfg.Verify.MaxSteps <= 0 {
		return nil, fmt.Errorf("%s: [verify].max_steps must be positive", path)
	}
	if meta.IsDefined("output", "suffix") && strings.ContainsRune(cfg.Output.Suffix, filepath.Separator) {
		return nil, fmt.Errorf("%s: [output].suffix must not contain a path separator", path)
	}
	if _, err := cfg.Passes(); err != nil {
		return nil, fmt.Errorf("%s: [transform].passes: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds and loads the nearest reloop.toml above startDir, falling
// back to the defaults.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Passes validates the configured pass names. An empty list selects every
// pass.
func (c *Config) Passes() ([]transform.Pass, error) {
	passes := make([]transform.Pass, 0, len(c.Transform.Passes))
	for _, name := range c.Transform.Passes {
		p, err := transform.ParsePass(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		passes = append(passes, p)
	}
	return passes, nil
}

// InPlace reports whether outputs replace their inputs.
func (c *Config) InPlace() bool {
	return c.Output.Write || c.Output.Suffix == "-"
}
