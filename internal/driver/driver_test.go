package driver_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lintcore/internal/ast"
	"lintcore/internal/diag"
	"lintcore/internal/driver"
	"lintcore/internal/observ"
	"lintcore/internal/rules"
	"lintcore/internal/testkit"
	"lintcore/internal/trace"
)

func codes(rs []rules.Rule) string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Code()
	}
	return strings.Join(out, ",")
}

func TestSelect(t *testing.T) {
	reg := driver.Builtin()
	cases := []struct {
		name string
		sel  driver.Selection
		want string
	}{
		{"all by default", driver.Selection{}, "no-redeclare,no-setter-return"},
		{"by tag", driver.Selection{Tags: []string{rules.TagRecommended}}, "no-redeclare,no-setter-return"},
		{"include only", driver.Selection{Include: []string{"no-setter-return"}}, "no-setter-return"},
		{"exclude wins", driver.Selection{Tags: []string{rules.TagRecommended}, Exclude: []string{"no-redeclare"}}, "no-setter-return"},
	}
	for _, c := range cases {
		got, err := reg.Select(c.sel)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if codes(got) != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, codes(got), c.want)
		}
	}

	if _, err := reg.Select(driver.Selection{Include: []string{"no-such-rule"}}); !errors.Is(err, driver.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
	if _, err := reg.Select(driver.Selection{Tags: []string{"style"}}); !errors.Is(err, driver.ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestRegistryEntries(t *testing.T) {
	reg := driver.Builtin()
	e, ok := reg.Lookup(rules.NoRedeclareCode)
	if !ok || e.Docs == "" || len(e.Tags) == 0 {
		t.Fatalf("unexpected entry %+v", e)
	}
	if len(reg.Entries()) != 2 {
		t.Fatalf("expected 2 builtin rules, got %d", len(reg.Entries()))
	}
}

// let a; let a; class C { set x(v) { return v; } }
func buildTree(t *testing.T) (*ast.Tree, *testkit.Builder) {
	t.Helper()
	b := testkit.Script()
	s1 := b.VarOf(ast.VarLet, "a")
	s2 := b.VarOf(ast.VarLet, "a")
	cls := b.ClassDecl("C", b.Setter("x", b.Param(b.Bind("v")), b.Return(b.Ref("v"))))
	tree, _ := b.Resolve(s1, s2, cls)
	return tree, b
}

func TestRunMergesSorted(t *testing.T) {
	tree, _ := buildTree(t)
	all, err := driver.Builtin().Select(driver.Selection{})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	timer := observ.NewTimer()
	res, err := driver.Run(context.Background(), tree, driver.RunOptions{Rules: all, Jobs: 2, Timer: timer})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Rules) != 2 || res.Rules[0].Code != rules.NoRedeclareCode || res.Rules[1].Code != rules.NoSetterReturnCode {
		t.Fatalf("per-rule results out of order: %+v", res.Rules)
	}
	if res.Rules[0].Bag.Len() != 1 || res.Rules[1].Bag.Len() != 1 {
		t.Fatalf("expected one diagnostic per rule")
	}
	items := res.Merged.Items()
	if len(items) != 2 || items[0].Code != rules.NoRedeclareCode || items[0].Primary.Start > items[1].Primary.Start {
		t.Fatalf("merged bag not sorted: %+v", items)
	}
	if got := len(timer.Report().Phases); got != 2 {
		t.Fatalf("expected 2 rule timings, got %d", got)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	tree, _ := buildTree(t)
	all, _ := driver.Builtin().Select(driver.Selection{})
	first, err := driver.Run(context.Background(), tree, driver.RunOptions{Rules: all})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	second, err := driver.Run(context.Background(), tree, driver.RunOptions{Rules: all, Jobs: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	a, b := first.Merged.Items(), second.Merged.Items()
	if len(a) != len(b) {
		t.Fatalf("runs differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Primary != b[i].Primary || a[i].Code != b[i].Code {
			t.Fatalf("runs differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRunSeverityOverride(t *testing.T) {
	tree, _ := buildTree(t)
	all, _ := driver.Builtin().Select(driver.Selection{})
	res, err := driver.Run(context.Background(), tree, driver.RunOptions{
		Rules:    all,
		Severity: map[string]diag.Severity{rules.NoSetterReturnCode: diag.SevError},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, d := range res.Merged.Items() {
		want := diag.SevWarning
		if d.Code == rules.NoSetterReturnCode {
			want = diag.SevError
		}
		if d.Severity != want {
			t.Fatalf("%s: severity %s, want %s", d.Code, d.Severity, want)
		}
	}
	if !res.Merged.HasErrors() {
		t.Fatalf("override not applied")
	}
}

func TestRunCancelled(t *testing.T) {
	tree, _ := buildTree(t)
	all, _ := driver.Builtin().Select(driver.Selection{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.Run(ctx, tree, driver.RunOptions{Rules: all}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type panicRule struct{}

func (panicRule) Code() string                 { return "boom" }
func (panicRule) Tags() []string               { return nil }
func (panicRule) Run(diag.Reporter, *ast.Tree) { panic("bad tree") }

func TestRunRecoversRulePanic(t *testing.T) {
	tree, _ := buildTree(t)
	_, err := driver.Run(context.Background(), tree, driver.RunOptions{Rules: []rules.Rule{panicRule{}}})
	if err == nil || !strings.Contains(err.Error(), "rule boom panicked") {
		t.Fatalf("expected panic to surface as error, got %v", err)
	}
}

const treeDoc = `{
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

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	if err := os.WriteFile(path, []byte(treeDoc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var buf bytes.Buffer
	tracer := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tracer)

	res, err := driver.CheckFile(ctx, path, driver.CheckOptions{Timings: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	got := diag.FormatShort(res.Run.Merged.Items(), res.FileSet, false)
	if want := "warning no-redeclare input.js:1:12 Redeclaration is not allowed"; !strings.Contains(got, want) {
		t.Fatalf("unexpected output %q", got)
	}
	if res.Resolve.Unresolved != 0 {
		t.Fatalf("unexpected unresolved count %d", res.Resolve.Unresolved)
	}
	phases := res.Timer.Report().Phases
	if len(phases) != 5 || phases[0].Name != "load" || phases[2].Name != "lint" {
		t.Fatalf("unexpected phases %+v", phases)
	}
	for _, name := range []string{"check", "load", "resolve", "rule:no-redeclare"} {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("trace misses %q:\n%s", name, buf.String())
		}
	}
}

func TestCheckFileErrors(t *testing.T) {
	if _, err := driver.CheckFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"), driver.CheckOptions{}); err == nil {
		t.Fatalf("expected load error")
	}
	_, err := driver.CheckFile(context.Background(), "unused.json", driver.CheckOptions{
		Selection: driver.Selection{Exclude: []string{"nope"}},
	})
	if !errors.Is(err, driver.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
	_, err = driver.CheckFile(context.Background(), "unused.json", driver.CheckOptions{
		Severity: map[string]diag.Severity{"no-redeclare": diag.SevError, "no-such-rule": diag.SevError},
	})
	if !errors.Is(err, driver.ErrUnknownRule) || !strings.Contains(err.Error(), "no-such-rule") {
		t.Fatalf("expected ErrUnknownRule for severity override, got %v", err)
	}
}
