package resolve

import (
	"testing"

	"lintcore/internal/ast"
	"lintcore/internal/source"
)

func TestResolverLifecycle(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeGlobal, NoScopeID, ScopeOwner{Kind: ScopeOwnerProgram}, source.Span{})
	idents := ast.NewIdents(4)

	res := NewResolver(table, root)
	fn := res.Enter(ScopeFunction, ScopeOwner{Kind: ScopeOwnerFunc, Func: 1}, source.Span{})
	blk := res.Enter(ScopeBlock, ScopeOwner{Kind: ScopeOwnerStmt, Stmt: 3}, source.Span{})

	if res.HoistScope() != fn {
		t.Fatalf("hoist target must be the function scope")
	}

	value := table.Strings.Intern("value")
	decl := idents.New(value, source.Span{Start: 1, End: 6})
	if !res.Declare(res.CurrentScope(), decl, idents, SymbolLet).IsValid() {
		t.Fatalf("declare returned no symbol")
	}
	ref := idents.New(value, source.Span{Start: 10, End: 15})
	if _, ok := res.Reference(ref, idents); !ok {
		t.Fatalf("reference did not resolve")
	}
	if idents.Get(ref).Mark != blk.Mark() {
		t.Fatalf("reference mark %d, want %d", idents.Get(ref).Mark, blk.Mark())
	}

	res.Leave(blk)
	miss := idents.New(value, source.Span{Start: 20, End: 25})
	if _, ok := res.Reference(miss, idents); ok {
		t.Fatalf("binding must not leak out of its block")
	}
	res.Leave(fn)

	if err := table.Validate(idents); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLeaveMismatchPanics(t *testing.T) {
	table := NewTable(Hints{}, nil)
	res := NewResolver(table, NoScopeID)
	a := res.Enter(ScopeBlock, ScopeOwner{}, source.Span{})
	res.Enter(ScopeBlock, ScopeOwner{}, source.Span{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mismatched Leave")
		}
	}()
	res.Leave(a)
}

func TestValidateDetectsForeignMark(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeGlobal, NoScopeID, ScopeOwner{}, source.Span{})
	idents := ast.NewIdents(1)
	id := idents.New(table.Strings.Intern("x"), source.Span{})
	NewResolver(table, root).Declare(root, id, idents, SymbolVar)

	idents.Get(id).Mark = 99
	if err := table.Validate(idents); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := table.Validate(nil); err != nil {
		t.Fatalf("structure alone is valid: %v", err)
	}
}
