package ast

import "lintcore/internal/source"

// TypeKind enumerates type-annotation nodes. Rules never see them unless the
// walker is configured to visit types.
type TypeKind uint8

const (
	TypeKeyword TypeKind = iota
	TypeRef
	TypeUnion
	TypeIntersection
	TypeTuple
	TypeArray
	TypeFunc
	TypeObject
	TypeQuery
	TypeLit
)

func (k TypeKind) String() string {
	switch k {
	case TypeKeyword:
		return "keyword"
	case TypeRef:
		return "ref"
	case TypeUnion:
		return "union"
	case TypeIntersection:
		return "intersection"
	case TypeTuple:
		return "tuple"
	case TypeArray:
		return "array"
	case TypeFunc:
		return "func"
	case TypeObject:
		return "object"
	case TypeQuery:
		return "query"
	case TypeLit:
		return "lit"
	default:
		return "invalid"
	}
}

type TypeMember struct {
	Key      PropKey
	Type     TypeID
	Optional bool
	Span     source.Span
}

// TypeNode is a single flat record; unused fields stay zero.
//   - Keyword, Lit: Name
//   - Ref, Query: Name, Args
//   - Union, Intersection, Tuple: Args
//   - Array: Elem
//   - Func: Params (binding patterns, they are not declarations), Elem is the result
//   - Object: Members
type TypeNode struct {
	Kind    TypeKind
	Span    source.Span
	Name    source.StringID
	Args    []TypeID
	Elem    TypeID
	Params  []PatID
	Members []TypeMember
}

type Types struct {
	Arena *Arena[TypeNode]
}

func NewTypes(capHint uint) *Types {
	return &Types{Arena: NewArena[TypeNode](capHint)}
}

func (t *Types) New(node TypeNode) TypeID {
	return TypeID(t.Arena.Allocate(node))
}

func (t *Types) Get(id TypeID) *TypeNode {
	return t.Arena.Get(uint32(id))
}
