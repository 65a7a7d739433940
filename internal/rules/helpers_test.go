package rules

import (
	"testing"

	"lintcore/internal/ast"
	"lintcore/internal/diag"
	"lintcore/internal/source"
	"lintcore/internal/testkit"
)

func runRule(t *testing.T, r Rule, tree *ast.Tree) []diag.Diagnostic {
	t.Helper()
	bag := diag.NewBag()
	r.Run(diag.BagReporter{Bag: bag}, tree)
	return bag.Items()
}

func resolved(t *testing.T, b *testkit.Builder, body ...ast.StmtID) *ast.Tree {
	t.Helper()
	tree, res := b.Resolve(body...)
	if err := testkit.CheckMarks(tree, res); err != nil {
		t.Fatalf("resolver invariants: %v", err)
	}
	return tree
}

func wantSpans(t *testing.T, got []diag.Diagnostic, code string, want ...source.Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Code != code {
			t.Fatalf("diagnostic %d: code %q, want %q", i, got[i].Code, code)
		}
		if got[i].Primary != want[i] {
			t.Fatalf("diagnostic %d: span %v, want %v", i, got[i].Primary, want[i])
		}
	}
}
