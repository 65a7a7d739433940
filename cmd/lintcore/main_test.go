package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const redeclareDoc = `{
  "path": "input.js",
  "source": "var a; var a;",
  "program": {
    "type": "Program", "sourceType": "script", "start": 0, "end": 13,
    "body": [
      {"type": "VariableDeclaration", "kind": "var", "start": 0, "end": 6, "declarations": [
        {"type": "VariableDeclarator", "start": 4, "end": 5, "init": null,
         "id": {"type": "Identifier", "name": "a", "start": 4, "end": 5}}]},
      {"type": "VariableDeclaration", "kind": "var", "start": 7, "end": 13, "declarations": [
        {"type": "VariableDeclarator", "start": 11, "end": 12, "init": null,
         "id": {"type": "Identifier", "name": "a", "start": 11, "end": 12}}]}
    ]
  }
}`

// resetFlags возвращает глобальные команды в исходное состояние между тестами.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color=off"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDoc(t *testing.T, dir, doc string) string {
	t.Helper()
	path := filepath.Join(dir, "tree.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestCheckShortExitCode(t *testing.T) {
	path := writeDoc(t, t.TempDir(), redeclareDoc)
	out, _, err := execute(t, "check", "--format=short", path)
	var ee exitError
	if !errors.As(err, &ee) || ee.code != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
	if want := "warning no-redeclare input.js:1:12 Redeclaration is not allowed"; !strings.Contains(out, want) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCheckExitZeroAndExclude(t *testing.T) {
	path := writeDoc(t, t.TempDir(), redeclareDoc)
	if _, _, err := execute(t, "check", "--format=short", "--exit-zero", path); err != nil {
		t.Fatalf("expected success with --exit-zero, got %v", err)
	}
	out, _, err := execute(t, "check", "--format=short", "--exclude=no-redeclare", path)
	if err != nil {
		t.Fatalf("expected clean run, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestCheckUnknownRule(t *testing.T) {
	path := writeDoc(t, t.TempDir(), redeclareDoc)
	_, _, err := execute(t, "check", "--rule=no-such-rule", path)
	if err == nil || !strings.Contains(err.Error(), "no-such-rule") {
		t.Fatalf("expected unknown rule error, got %v", err)
	}
}

func TestCheckRuleFlagNarrowsConfigTags(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, redeclareDoc)
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("[rules]\ntags = [\"recommended\"]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := execute(t, "check", "--format=short", "--rule=no-setter-return", path)
	if err != nil {
		t.Fatalf("expected clean run with only no-setter-return, got %v", err)
	}
	if out != "" {
		t.Fatalf("no-redeclare must not run, got %q", out)
	}
	// --rule вместе с --tag объединяются
	out, _, _ = execute(t, "check", "--format=short", "--rule=no-setter-return", "--tag=recommended", path)
	if !strings.Contains(out, "no-redeclare") {
		t.Fatalf("expected tagged rules with --tag, got %q", out)
	}
}

func TestCheckSeverityUnknownRule(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, redeclareDoc)
	_, _, err := execute(t, "check", "--severity=no-such-rule=error", path)
	if err == nil || !strings.Contains(err.Error(), "no-such-rule") {
		t.Fatalf("expected unknown rule error for --severity, got %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("[severity]\nno-such-rule = \"error\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err = execute(t, "check", path)
	if err == nil || !strings.Contains(err.Error(), "no-such-rule") {
		t.Fatalf("expected unknown rule error for [severity], got %v", err)
	}
}

func TestCheckSeverityFlag(t *testing.T) {
	path := writeDoc(t, t.TempDir(), redeclareDoc)
	out, _, _ := execute(t, "check", "--format=json", "--severity=no-redeclare=error", path)
	if !strings.Contains(out, `"severity": "error"`) {
		t.Fatalf("expected error severity in json, got %s", out)
	}
	if _, _, err := execute(t, "check", "--severity=no-redeclare", path); err == nil {
		t.Fatalf("expected malformed --severity to fail")
	}
}

func TestCheckConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, redeclareDoc)
	cfg := "[output]\nformat = \"json\"\nmax-diagnostics = 5\n\n[severity]\nno-redeclare = \"info\"\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, _ := execute(t, "check", path)
	if !strings.Contains(out, `"severity": "info"`) || !strings.Contains(out, `"count": 1`) {
		t.Fatalf("config not applied, got %s", out)
	}
	// флаг важнее файла
	out, _, _ = execute(t, "check", "--format=short", path)
	if !strings.HasPrefix(out, "info no-redeclare") {
		t.Fatalf("expected short output with info severity, got %q", out)
	}
}

func TestCheckTimingsAndTrace(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, redeclareDoc)
	tracePath := filepath.Join(dir, "trace.log")
	_, stderr, _ := execute(t, "check", "--timings", "--trace="+tracePath, "--trace-level=detail", path)
	if !strings.Contains(stderr, "timings:") || !strings.Contains(stderr, "rule:no-redeclare") {
		t.Fatalf("expected timings summary, got %q", stderr)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if !strings.Contains(string(data), "rule:no-setter-return") {
		t.Fatalf("trace misses rule span:\n%s", data)
	}
}

func TestCheckLoadErrorDumpsRing(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, `{"type": "Program", "body": [{"type": "ExpressionStatement", "start": 0, "end": 1,
  "expression": {"type": "JSXElement", "start": 0, "end": 1}}]}`)
	_, stderr, err := execute(t, "check", "--trace-level=debug", "--trace-mode=ring", path)
	if err == nil || !strings.Contains(err.Error(), "JSXElement") {
		t.Fatalf("expected unsupported node error, got %v", err)
	}
	if !strings.Contains(stderr, "last events before failure") || !strings.Contains(stderr, "load") {
		t.Fatalf("expected ring dump, got %q", stderr)
	}
}

func TestRulesCommand(t *testing.T) {
	out, _, err := execute(t, "rules")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "CODE") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "no-redeclare") || !strings.Contains(lines[1], "recommended") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	// колонки выровнены
	if strings.Index(lines[1], "recommended") != strings.Index(lines[2], "recommended") {
		t.Fatalf("tags column not aligned:\n%s", out)
	}
}

func TestBindingsCommand(t *testing.T) {
	path := writeDoc(t, t.TempDir(), redeclareDoc)
	out, _, err := execute(t, "bindings", "--validate", path)
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	if !strings.Contains(out, "(redeclared)") {
		t.Fatalf("expected redeclared marker, got %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--format=plain")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "lintcore ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestColorEnabled(t *testing.T) {
	cases := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"on", false, true},
		{"off", true, false},
		{"auto", true, true},
		{"auto", false, false},
	}
	for _, tc := range cases {
		got, err := colorEnabled(tc.mode, tc.tty)
		if err != nil || got != tc.want {
			t.Fatalf("colorEnabled(%q, %v) = %v, %v", tc.mode, tc.tty, got, err)
		}
	}
	if _, err := colorEnabled("sometimes", true); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
