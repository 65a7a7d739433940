package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"lintcore/internal/diag"
	"lintcore/internal/driver"
)

const configFileName = "lintcore.toml"

type projectConfig struct {
	Rules    rulesConfig       `toml:"rules"`
	Output   outputConfig      `toml:"output"`
	Run      runConfig         `toml:"run"`
	Severity map[string]string `toml:"severity"`
}

type rulesConfig struct {
	Tags    []string `toml:"tags"`
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type outputConfig struct {
	Format         string `toml:"format"`
	MaxDiagnostics int    `toml:"max-diagnostics"`
	WithNotes      bool   `toml:"with-notes"`
	PathMode       string `toml:"path-mode"`
}

type runConfig struct {
	Jobs int `toml:"jobs"`
}

// loadedConfig is a parsed lintcore.toml; meta tells which keys were set.
type loadedConfig struct {
	Path   string
	Config projectConfig
	meta   toml.MetaData
}

// defined reports whether key was present in the file. A nil receiver
// (no config file) defines nothing.
func (c *loadedConfig) defined(key ...string) bool {
	return c != nil && c.meta.IsDefined(key...)
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (*loadedConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("output", "format") {
		if _, ok := outputFormats[cfg.Output.Format]; !ok {
			return nil, fmt.Errorf("%s: [output].format must be pretty, short or json, got %q", path, cfg.Output.Format)
		}
	}
	if cfg.Run.Jobs < 0 {
		return nil, fmt.Errorf("%s: [run].jobs must not be negative", path)
	}
	return &loadedConfig{Path: path, Config: cfg, meta: meta}, nil
}

// resolveConfig loads --config when given, otherwise the nearest
// lintcore.toml above the input. Missing file is not an error.
func resolveConfig(explicit, input string) (*loadedConfig, error) {
	if explicit != "" {
		return loadConfig(explicit)
	}
	path, ok, err := findConfig(filepath.Dir(input))
	if err != nil || !ok {
		return nil, err
	}
	return loadConfig(path)
}

// selection returns the rule selection from [rules].
func (c *loadedConfig) selection() driver.Selection {
	if c == nil {
		return driver.Selection{}
	}
	return driver.Selection{
		Tags:    c.Config.Rules.Tags,
		Include: c.Config.Rules.Include,
		Exclude: c.Config.Rules.Exclude,
	}
}

// severities parses [severity] into overrides.
func (c *loadedConfig) severities() (map[string]diag.Severity, error) {
	if c == nil || len(c.Config.Severity) == 0 {
		return nil, nil
	}
	codes := make([]string, 0, len(c.Config.Severity))
	for code := range c.Config.Severity {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make(map[string]diag.Severity, len(codes))
	for _, code := range codes {
		sev, err := diag.ParseSeverity(c.Config.Severity[code])
		if err != nil {
			return nil, fmt.Errorf("%s: [severity].%s: %w", c.Path, code, err)
		}
		out[code] = sev
	}
	return out, nil
}
