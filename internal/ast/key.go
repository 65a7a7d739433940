package ast

import "lintcore/internal/source"

type KeyKind uint8

const (
	KeyIdent KeyKind = iota
	KeyString
	KeyNumber
	KeyComputed
	KeyPrivate
)

// PropKey names a class member, object property or object-pattern entry.
// Name is set for every kind except KeyComputed, which carries Expr.
// A plain key name is never a binding.
type PropKey struct {
	Kind KeyKind
	Name source.StringID
	Expr ExprID
	Span source.Span
}

func (k PropKey) Computed() bool { return k.Kind == KeyComputed }
