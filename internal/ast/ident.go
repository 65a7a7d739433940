package ast

import (
	"fmt"

	"lintcore/internal/source"
)

// Mark fingerprints the lexical scope an identifier resolved to. It is
// written by pre-resolution; NoMark means unresolved (global or unknown).
type Mark uint32

const NoMark Mark = 0

// SymbolKey is the symbol identity of an identifier occurrence: two
// occurrences share a key iff they refer to the same binding.
type SymbolKey struct {
	Name source.StringID
	Mark Mark
}

func (k SymbolKey) String() string {
	return fmt.Sprintf("%d#%d", k.Name, k.Mark)
}

// Ident is a single identifier occurrence (binding or reference).
type Ident struct {
	Name source.StringID
	Span source.Span
	Mark Mark
}

// Key returns the symbol identity of the occurrence.
func (i *Ident) Key() SymbolKey {
	return SymbolKey{Name: i.Name, Mark: i.Mark}
}

type Idents struct {
	Arena *Arena[Ident]
}

func NewIdents(capHint uint) *Idents {
	return &Idents{Arena: NewArena[Ident](capHint)}
}

func (i *Idents) New(name source.StringID, span source.Span) IdentID {
	return IdentID(i.Arena.Allocate(Ident{Name: name, Span: span}))
}

func (i *Idents) Get(id IdentID) *Ident {
	return i.Arena.Get(uint32(id))
}
