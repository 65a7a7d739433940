package ast

import "lintcore/internal/source"

// PropKind enumerates object-literal entries.
type PropKind uint8

const (
	PropKeyValue PropKind = iota
	PropShorthand
	PropMethod
	PropGetter
	PropSetter
	PropSpread
)

func (k PropKind) String() string {
	switch k {
	case PropKeyValue:
		return "key-value"
	case PropShorthand:
		return "shorthand"
	case PropMethod:
		return "method"
	case PropGetter:
		return "getter"
	case PropSetter:
		return "setter"
	case PropSpread:
		return "spread"
	default:
		return "invalid"
	}
}

// Prop is one object-literal entry. The fields used depend on Kind:
// KeyValue uses Key+Value, Shorthand uses Ident, Method/Getter/Setter use
// Key+Func, Spread uses Value.
type Prop struct {
	Kind  PropKind
	Key   PropKey
	Value ExprID
	Ident IdentID
	Func  FuncID
	Span  source.Span
}

type Props struct {
	Arena *Arena[Prop]
}

func NewProps(capHint uint) *Props {
	return &Props{Arena: NewArena[Prop](capHint)}
}

func (p *Props) New(prop Prop) PropID {
	return PropID(p.Arena.Allocate(prop))
}

func (p *Props) Get(id PropID) *Prop {
	return p.Arena.Get(uint32(id))
}
