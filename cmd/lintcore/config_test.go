package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lintcore/internal/diag"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[run]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResolveConfigMissing(t *testing.T) {
	// во временном каталоге конфига нет, но выше по дереву он может быть
	dir := t.TempDir()
	cfg, err := resolveConfig(filepath.Join(dir, "missing.toml"), filepath.Join(dir, "tree.json"))
	if err == nil || cfg != nil {
		t.Fatalf("expected error for explicit missing config")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules]
tags = ["recommended"]
exclude = ["no-setter-return"]

[output]
format = "short"
with-notes = true

[run]
jobs = 3

[severity]
no-redeclare = "error"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.defined("output", "format") || cfg.defined("output", "max-diagnostics") {
		t.Fatalf("unexpected defined keys")
	}
	sel := cfg.selection()
	if len(sel.Tags) != 1 || len(sel.Exclude) != 1 || sel.Exclude[0] != "no-setter-return" {
		t.Fatalf("unexpected selection %+v", sel)
	}
	sev, err := cfg.severities()
	if err != nil {
		t.Fatalf("severities: %v", err)
	}
	if sev["no-redeclare"] != diag.SevError {
		t.Fatalf("unexpected severities %v", sev)
	}
	if cfg.Config.Run.Jobs != 3 || !cfg.Config.Output.WithNotes {
		t.Fatalf("unexpected config %+v", cfg.Config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[rules\n", "failed to parse TOML"},
		{"unknown key", "[output]\ncolour = true\n", "unknown key"},
		{"format", "[output]\nformat = \"xml\"\n", "[output].format"},
		{"jobs", "[run]\njobs = -1\n", "[run].jobs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, err := loadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}

	path := writeConfig(t, t.TempDir(), "[severity]\nno-redeclare = \"fatal\"\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := cfg.severities(); err == nil {
		t.Fatalf("expected bad severity error")
	}
}

func TestNilConfig(t *testing.T) {
	var cfg *loadedConfig
	if cfg.defined("run", "jobs") {
		t.Fatalf("nil config defines nothing")
	}
	if sel := cfg.selection(); len(sel.Tags)+len(sel.Include)+len(sel.Exclude) != 0 {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if sev, err := cfg.severities(); sev != nil || err != nil {
		t.Fatalf("unexpected severities %v %v", sev, err)
	}
}
