// Package resolve is the pre-resolution pass: it builds the lexical scope
// tree of a program and writes a scope mark into every identifier, giving
// each occurrence its symbol identity (name + mark). Lint rules consume the
// marks and never see the scopes.
//
// Resolution runs in two walks over the same scopes. The first declares
// every binding (so var and function declarations are visible before their
// position); the second resolves references.
package resolve

import (
	"lintcore/internal/ast"
	"lintcore/internal/visit"
)

// Result is the output of Program.
type Result struct {
	Table      *Table
	Root       ScopeID
	Unresolved int
}

// Program resolves tree in place. Calling it again on the same tree
// recomputes every mark from scratch.
func Program(tree *ast.Tree) *Result {
	table := NewTable(Hints{}, tree.Strings)
	rootKind := ScopeGlobal
	if tree.Root.Kind == ast.ProgramModule {
		rootKind = ScopeModule
	}
	root := table.Scopes.New(rootKind, NoScopeID, ScopeOwner{Kind: ScopeOwnerProgram}, tree.Root.Span)

	for i := range tree.Idents.Arena.Slice() {
		tree.Idents.Arena.Slice()[i].Mark = ast.NoMark
	}

	pr := &programResolver{
		tree:   tree,
		table:  table,
		scopes: make(map[ScopeOwner]ScopeID),
	}
	for _, phase := range []phase{phaseDeclare, phaseReference} {
		pr.phase = phase
		pr.res = NewResolver(table, root)
		visit.New(tree, pr, visit.Options{}).Walk()
	}
	return &Result{Table: table, Root: root, Unresolved: pr.unresolved}
}

type phase uint8

const (
	phaseDeclare phase = iota
	phaseReference
)

type programResolver struct {
	visit.Default
	tree       *ast.Tree
	table      *Table
	res        *Resolver
	phase      phase
	scopes     map[ScopeOwner]ScopeID
	unresolved int
	scratch    []ast.IdentID
}
