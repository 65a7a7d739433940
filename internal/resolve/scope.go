package resolve

import (
	"lintcore/internal/ast"
	"lintcore/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // script root
	ScopeModule             // module root
	ScopeFunction           // params + body of a function, static blocks
	ScopeBlock              // block, for head, switch body
	ScopeCatch              // catch param + catch body
	ScopeName               // own name of a named function/class expression
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeModule:
		return "module"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeCatch:
		return "catch"
	case ScopeName:
		return "name"
	default:
		return "invalid"
	}
}

// hoistTarget reports whether `var` declarations stop at this scope.
func (k ScopeKind) hoistTarget() bool {
	return k == ScopeGlobal || k == ScopeModule || k == ScopeFunction
}

// ScopeOwnerKind distinguishes what AST element owns a scope.
type ScopeOwnerKind uint8

const (
	ScopeOwnerUnknown ScopeOwnerKind = iota
	ScopeOwnerProgram
	ScopeOwnerStmt
	ScopeOwnerExpr
	ScopeOwnerFunc
	ScopeOwnerMember
)

// ScopeOwner references an AST construct associated with the scope.
type ScopeOwner struct {
	Kind   ScopeOwnerKind
	Stmt   ast.StmtID
	Expr   ast.ExprID
	Func   ast.FuncID
	Member ast.MemberID
}

// Scope models a lexical scope with a parent-child hierarchy.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ScopeOwner
	Span      source.Span
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
