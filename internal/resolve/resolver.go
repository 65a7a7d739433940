package resolve

import (
	"fmt"

	"lintcore/internal/ast"
	"lintcore/internal/source"
)

// Resolver drives scope management and declaration/lookup routines over a
// Table.
type Resolver struct {
	table *Table
	stack []ScopeID
}

// NewResolver wires a resolver to a table. If root is valid it becomes the
// current scope; otherwise scope-sensitive operations are no-ops.
func NewResolver(table *Table, root ScopeID) *Resolver {
	r := &Resolver{
		table: table,
		stack: make([]ScopeID, 0, 8),
	}
	if root.IsValid() {
		r.stack = append(r.stack, root)
	}
	return r
}

// CurrentScope returns the scope at the top of the stack.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Enter creates a child scope, pushes it onto the stack, and returns its ID.
func (r *Resolver) Enter(kind ScopeKind, owner ScopeOwner, span source.Span) ScopeID {
	parent := r.CurrentScope()
	scope := r.table.Scopes.New(kind, parent, owner, span)
	r.stack = append(r.stack, scope)
	return scope
}

// Reenter pushes an already allocated scope.
func (r *Resolver) Reenter(scope ScopeID) {
	r.stack = append(r.stack, scope)
}

// Leave pops the current scope. A mismatch with expected is a programming
// error in the walk and panics.
func (r *Resolver) Leave(expected ScopeID) {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	if expected.IsValid() && top != expected {
		panic(fmt.Sprintf("resolve: scope stack mismatch: closing #%d while expecting #%d", top, expected))
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// HoistScope returns the nearest enclosing scope that receives `var`
// declarations.
func (r *Resolver) HoistScope() ScopeID {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if s := r.table.Scopes.Get(r.stack[i]); s != nil && s.Kind.hoistTarget() {
			return r.stack[i]
		}
	}
	return r.CurrentScope()
}

// Declare binds ident in scope and writes the scope mark into it. A name
// already bound in the same scope joins the existing symbol: deciding
// whether that is an error is left to lint rules.
func (r *Resolver) Declare(scopeID ScopeID, id ast.IdentID, idents *ast.Idents, kind SymbolKind) SymbolID {
	ident := idents.Get(id)
	scope := r.table.Scopes.Get(scopeID)
	if ident == nil || scope == nil {
		return NoSymbolID
	}
	ident.Mark = scopeID.Mark()
	if symID, ok := scope.NameIndex[ident.Name]; ok {
		if sym := r.table.Symbols.Get(symID); sym != nil {
			sym.Decls = append(sym.Decls, id)
		}
		return symID
	}
	symID := r.table.Symbols.New(&Symbol{
		Name:  ident.Name,
		Kind:  kind,
		Scope: scopeID,
		Span:  ident.Span,
		Decls: []ast.IdentID{id},
	})
	scope.Symbols = append(scope.Symbols, symID)
	scope.NameIndex[ident.Name] = symID
	return symID
}

// Reference resolves ident from the current scope. Resolved occurrences get
// the mark of the declaring scope; unresolved ones keep ast.NoMark.
func (r *Resolver) Reference(id ast.IdentID, idents *ast.Idents) (SymbolID, bool) {
	ident := idents.Get(id)
	if ident == nil {
		return NoSymbolID, false
	}
	symID, ok := r.table.Lookup(r.CurrentScope(), ident.Name)
	if !ok {
		ident.Mark = ast.NoMark
		return NoSymbolID, false
	}
	sym := r.table.Symbols.Get(symID)
	ident.Mark = sym.Scope.Mark()
	sym.Refs = append(sym.Refs, id)
	return symID, true
}
