package ast

import (
	"lintcore/internal/source"
)

// ProgramKind distinguishes module-form (import/export allowed) from
// script-form roots.
type ProgramKind uint8

const (
	ProgramScript ProgramKind = iota
	ProgramModule
)

func (k ProgramKind) String() string {
	if k == ProgramModule {
		return "module"
	}
	return "script"
}

// Program is the root of a tree.
type Program struct {
	Kind ProgramKind
	Span source.Span
	Body []StmtID
}

type Hints struct{ Stmts, Exprs, Pats, Idents uint }

// Tree owns every node of one parsed program. Producers (the ESTree loader,
// test builders) fill it through the New* constructors; pre-resolution then
// writes identifier marks. Rules only read it.
type Tree struct {
	Strings *source.Interner
	Root    Program

	Idents  *Idents
	Stmts   *Stmts
	Exprs   *Exprs
	Pats    *Pats
	Types   *Types
	Members *Members
	Props   *Props

	Funcs   *Arena[Func]
	Params  *Arena[Param]
	Decls   *Arena[Declarator]
	Classes *Arena[Class]
}

// NewTree allocates an empty tree. If strings is nil a fresh interner is used.
func NewTree(hints Hints, strings *source.Interner) *Tree {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Pats == 0 {
		hints.Pats = 1 << 6
	}
	if hints.Idents == 0 {
		hints.Idents = 1 << 8
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	small := hints.Pats
	return &Tree{
		Strings: strings,
		Idents:  NewIdents(hints.Idents),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Pats:    NewPats(hints.Pats),
		Types:   NewTypes(small),
		Members: NewMembers(small),
		Props:   NewProps(small),
		Funcs:   NewArena[Func](small),
		Params:  NewArena[Param](small),
		Decls:   NewArena[Declarator](small),
		Classes: NewArena[Class](small),
	}
}

// SetRoot installs the program root.
func (t *Tree) SetRoot(kind ProgramKind, span source.Span, body []StmtID) {
	t.Root = Program{Kind: kind, Span: span, Body: body}
}

// Ident interns name and allocates an identifier occurrence.
func (t *Tree) Ident(name string, span source.Span) IdentID {
	return t.Idents.New(t.Strings.Intern(name), span)
}

// Name returns the text of an identifier occurrence.
func (t *Tree) Name(id IdentID) string {
	ident := t.Idents.Get(id)
	if ident == nil {
		return ""
	}
	return t.Strings.MustLookup(ident.Name)
}

func (t *Tree) Func(id FuncID) *Func {
	return t.Funcs.Get(uint32(id))
}

func (t *Tree) Param(id ParamID) *Param {
	return t.Params.Get(uint32(id))
}

func (t *Tree) Declarator(id DeclID) *Declarator {
	return t.Decls.Get(uint32(id))
}

func (t *Tree) Class(id ClassID) *Class {
	return t.Classes.Get(uint32(id))
}

func (t *Tree) NewFunc(fn Func) FuncID {
	return FuncID(t.Funcs.Allocate(fn))
}

func (t *Tree) NewParam(span source.Span, pat PatID) ParamID {
	return ParamID(t.Params.Allocate(Param{Pat: pat, Span: span}))
}

func (t *Tree) NewDeclarator(span source.Span, name PatID, init ExprID) DeclID {
	return DeclID(t.Decls.Allocate(Declarator{Name: name, Init: init, Span: span}))
}

func (t *Tree) NewClass(class Class) ClassID {
	return ClassID(t.Classes.Allocate(class))
}
