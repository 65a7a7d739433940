package resolve

import (
	"lintcore/internal/ast"
	"lintcore/internal/source"
)

// SymbolKind classifies the declaration form that introduced a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolLet
	SymbolConst
	SymbolFunction
	SymbolClass
	SymbolParam
	SymbolImport
	SymbolCatch
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "var"
	case SymbolLet:
		return "let"
	case SymbolConst:
		return "const"
	case SymbolFunction:
		return "function"
	case SymbolClass:
		return "class"
	case SymbolParam:
		return "param"
	case SymbolImport:
		return "import"
	case SymbolCatch:
		return "catch"
	default:
		return "invalid"
	}
}

func symbolKindOf(k ast.VarKind) SymbolKind {
	switch k {
	case ast.VarLet:
		return SymbolLet
	case ast.VarConst:
		return SymbolConst
	default:
		return SymbolVar
	}
}

// Symbol is one binding of a scope. A name declared several times in the
// same scope (legal for var and function) stays one symbol with several
// declaring occurrences.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind // kind of the first declaration
	Scope ScopeID
	Span  source.Span // first declaration
	Decls []ast.IdentID
	Refs  []ast.IdentID
}
