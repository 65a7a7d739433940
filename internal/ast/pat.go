package ast

import "lintcore/internal/source"

type PatKind uint8

const (
	PatIdent PatKind = iota
	PatArray
	PatObject
	PatAssign
	PatRest
	// PatExpr is an assignment target that is not a binding (a.b = 1).
	PatExpr
)

func (k PatKind) String() string {
	switch k {
	case PatIdent:
		return "ident"
	case PatArray:
		return "array"
	case PatObject:
		return "object"
	case PatAssign:
		return "assign"
	case PatRest:
		return "rest"
	case PatExpr:
		return "expr"
	default:
		return "invalid"
	}
}

type Pat struct {
	Kind    PatKind
	Span    source.Span
	Payload PayloadID
}

type PatIdentData struct {
	Ident    IdentID
	TypeAnn  TypeID
	Optional bool
}

// PatArrayData: NoPatID elements are holes.
type PatArrayData struct {
	Elems   []PatID
	TypeAnn TypeID
}

// ObjectPatProp is one `key: value` entry. For shorthand `{a}` and
// `{a = 1}` Value is the ident (or assign) pattern that binds.
type ObjectPatProp struct {
	Key       PropKey
	Value     PatID
	Shorthand bool
	Span      source.Span
}

type PatObjectData struct {
	Props   []ObjectPatProp
	TypeAnn TypeID
}

type PatAssignData struct {
	Left  PatID
	Right ExprID
}

type PatRestData struct {
	Arg     PatID
	TypeAnn TypeID
}

type PatExprData struct {
	X ExprID
}

type Pats struct {
	Arena   *Arena[Pat]
	Idents  *Arena[PatIdentData]
	Arrays  *Arena[PatArrayData]
	Objects *Arena[PatObjectData]
	Assigns *Arena[PatAssignData]
	Rests   *Arena[PatRestData]
	Exprs   *Arena[PatExprData]
}

func NewPats(capHint uint) *Pats {
	if capHint == 0 {
		capHint = 1 << 6
	}
	small := capHint/4 + 1
	return &Pats{
		Arena:   NewArena[Pat](capHint),
		Idents:  NewArena[PatIdentData](capHint),
		Arrays:  NewArena[PatArrayData](small),
		Objects: NewArena[PatObjectData](small),
		Assigns: NewArena[PatAssignData](small),
		Rests:   NewArena[PatRestData](small),
		Exprs:   NewArena[PatExprData](small),
	}
}

func (p *Pats) new(kind PatKind, span source.Span, payload uint32) PatID {
	return PatID(p.Arena.Allocate(Pat{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

func (p *Pats) Get(id PatID) *Pat {
	return p.Arena.Get(uint32(id))
}

func (p *Pats) payload(id PatID, kind PatKind) (PayloadID, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != kind {
		return NoPayloadID, false
	}
	return pat.Payload, true
}

func (p *Pats) NewIdent(span source.Span, ident IdentID, typeAnn TypeID) PatID {
	return p.new(PatIdent, span, p.Idents.Allocate(PatIdentData{Ident: ident, TypeAnn: typeAnn}))
}

func (p *Pats) Ident(id PatID) *PatIdentData {
	pl, ok := p.payload(id, PatIdent)
	if !ok {
		return nil
	}
	return p.Idents.Get(uint32(pl))
}

func (p *Pats) NewArray(span source.Span, elems []PatID, typeAnn TypeID) PatID {
	return p.new(PatArray, span, p.Arrays.Allocate(PatArrayData{Elems: elems, TypeAnn: typeAnn}))
}

func (p *Pats) Array(id PatID) *PatArrayData {
	pl, ok := p.payload(id, PatArray)
	if !ok {
		return nil
	}
	return p.Arrays.Get(uint32(pl))
}

func (p *Pats) NewObject(span source.Span, props []ObjectPatProp, typeAnn TypeID) PatID {
	return p.new(PatObject, span, p.Objects.Allocate(PatObjectData{Props: props, TypeAnn: typeAnn}))
}

func (p *Pats) Object(id PatID) *PatObjectData {
	pl, ok := p.payload(id, PatObject)
	if !ok {
		return nil
	}
	return p.Objects.Get(uint32(pl))
}

func (p *Pats) NewAssign(span source.Span, left PatID, right ExprID) PatID {
	return p.new(PatAssign, span, p.Assigns.Allocate(PatAssignData{Left: left, Right: right}))
}

func (p *Pats) Assign(id PatID) *PatAssignData {
	pl, ok := p.payload(id, PatAssign)
	if !ok {
		return nil
	}
	return p.Assigns.Get(uint32(pl))
}

func (p *Pats) NewRest(span source.Span, arg PatID, typeAnn TypeID) PatID {
	return p.new(PatRest, span, p.Rests.Allocate(PatRestData{Arg: arg, TypeAnn: typeAnn}))
}

func (p *Pats) Rest(id PatID) *PatRestData {
	pl, ok := p.payload(id, PatRest)
	if !ok {
		return nil
	}
	return p.Rests.Get(uint32(pl))
}

func (p *Pats) NewExpr(span source.Span, x ExprID) PatID {
	return p.new(PatExpr, span, p.Exprs.Allocate(PatExprData{X: x}))
}

func (p *Pats) Expr(id PatID) *PatExprData {
	pl, ok := p.payload(id, PatExpr)
	if !ok {
		return nil
	}
	return p.Exprs.Get(uint32(pl))
}
