package ast

import "lintcore/internal/source"

// Class is shared by class declarations and class expressions.
type Class struct {
	Super      ExprID
	Implements []TypeID
	Members    []MemberID
	Decorators []ExprID
	Abstract   bool
	Span       source.Span
}

type MemberKind uint8

const (
	MemberConstructor MemberKind = iota
	MemberMethod
	MemberPrivateMethod
	MemberProp
	MemberPrivateProp
	MemberStaticBlock
	MemberEmpty
)

func (k MemberKind) String() string {
	switch k {
	case MemberConstructor:
		return "constructor"
	case MemberMethod:
		return "method"
	case MemberPrivateMethod:
		return "private-method"
	case MemberProp:
		return "prop"
	case MemberPrivateProp:
		return "private-prop"
	case MemberStaticBlock:
		return "static-block"
	case MemberEmpty:
		return "empty"
	default:
		return "invalid"
	}
}

type MethodKind uint8

const (
	MethodNormal MethodKind = iota
	MethodGetter
	MethodSetter
	MethodConstructor
)

type Member struct {
	Kind    MemberKind
	Span    source.Span
	Payload PayloadID
}

// ClassMethod backs constructors, public and private methods and accessors.
type ClassMethod struct {
	Key        PropKey
	Kind       MethodKind
	Func       FuncID
	Static     bool
	Abstract   bool
	Decorators []ExprID
}

// ClassProp backs public and private fields.
type ClassProp struct {
	Key        PropKey
	Value      ExprID
	TypeAnn    TypeID
	Static     bool
	Declare    bool
	Decorators []ExprID
}

type StaticBlock struct {
	Body StmtID
}

type Members struct {
	Arena   *Arena[Member]
	Methods *Arena[ClassMethod]
	Props   *Arena[ClassProp]
	Blocks  *Arena[StaticBlock]
}

func NewMembers(capHint uint) *Members {
	if capHint == 0 {
		capHint = 1 << 4
	}
	return &Members{
		Arena:   NewArena[Member](capHint),
		Methods: NewArena[ClassMethod](capHint),
		Props:   NewArena[ClassProp](capHint / 2),
		Blocks:  NewArena[StaticBlock](0),
	}
}

func (m *Members) Get(id MemberID) *Member {
	return m.Arena.Get(uint32(id))
}

func (m *Members) new(kind MemberKind, span source.Span, payload uint32) MemberID {
	return MemberID(m.Arena.Allocate(Member{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// NewMethod allocates a constructor or method; private is decided by the key.
func (m *Members) NewMethod(span source.Span, method ClassMethod) MemberID {
	kind := MemberMethod
	switch {
	case method.Kind == MethodConstructor:
		kind = MemberConstructor
	case method.Key.Kind == KeyPrivate:
		kind = MemberPrivateMethod
	}
	return m.new(kind, span, m.Methods.Allocate(method))
}

func (m *Members) Method(id MemberID) *ClassMethod {
	member := m.Get(id)
	if member == nil {
		return nil
	}
	switch member.Kind {
	case MemberConstructor, MemberMethod, MemberPrivateMethod:
		return m.Methods.Get(uint32(member.Payload))
	}
	return nil
}

func (m *Members) NewProp(span source.Span, prop ClassProp) MemberID {
	kind := MemberProp
	if prop.Key.Kind == KeyPrivate {
		kind = MemberPrivateProp
	}
	return m.new(kind, span, m.Props.Allocate(prop))
}

func (m *Members) Prop(id MemberID) *ClassProp {
	member := m.Get(id)
	if member == nil || (member.Kind != MemberProp && member.Kind != MemberPrivateProp) {
		return nil
	}
	return m.Props.Get(uint32(member.Payload))
}

func (m *Members) NewStaticBlock(span source.Span, body StmtID) MemberID {
	return m.new(MemberStaticBlock, span, m.Blocks.Allocate(StaticBlock{Body: body}))
}

func (m *Members) StaticBlock(id MemberID) *StaticBlock {
	member := m.Get(id)
	if member == nil || member.Kind != MemberStaticBlock {
		return nil
	}
	return m.Blocks.Get(uint32(member.Payload))
}

func (m *Members) NewEmpty(span source.Span) MemberID {
	return m.new(MemberEmpty, span, 0)
}
