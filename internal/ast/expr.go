package ast

import "lintcore/internal/source"

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprThis
	ExprSuper
	ExprArray
	ExprObject
	ExprFn
	ExprArrow
	ExprClass
	ExprUnary
	ExprUpdate
	ExprBinary
	ExprAssign
	ExprMember
	ExprCall
	ExprNew
	ExprCond
	ExprSeq
	ExprSpread
	ExprTemplate
	ExprParen
	ExprAwait
	ExprYield
	ExprImportCall
	ExprMeta
	ExprTsAs
	ExprNonNull
)

var exprKindNames = [...]string{
	ExprIdent:      "ident",
	ExprLit:        "lit",
	ExprThis:       "this",
	ExprSuper:      "super",
	ExprArray:      "array",
	ExprObject:     "object",
	ExprFn:         "fn",
	ExprArrow:      "arrow",
	ExprClass:      "class",
	ExprUnary:      "unary",
	ExprUpdate:     "update",
	ExprBinary:     "binary",
	ExprAssign:     "assign",
	ExprMember:     "member",
	ExprCall:       "call",
	ExprNew:        "new",
	ExprCond:       "cond",
	ExprSeq:        "seq",
	ExprSpread:     "spread",
	ExprTemplate:   "template",
	ExprParen:      "paren",
	ExprAwait:      "await",
	ExprYield:      "yield",
	ExprImportCall: "import-call",
	ExprMeta:       "meta",
	ExprTsAs:       "ts-as",
	ExprNonNull:    "non-null",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "invalid"
}

type LitKind uint8

const (
	LitNull LitKind = iota
	LitBool
	LitNumber
	LitString
	LitRegExp
	LitBigInt
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprIdentData struct {
	Ident IdentID
}

type ExprLitData struct {
	Kind LitKind
	Raw  string
}

// ExprListData backs array literals and sequence expressions; NoExprID
// entries in an array are holes.
type ExprListData struct {
	Elems []ExprID
}

type ExprObjectData struct {
	Props []PropID
}

// ExprFnData backs function and class expressions (Name optional) and
// arrows (Func only).
type ExprFnData struct {
	Name  IdentID
	Func  FuncID
	Class ClassID
}

// ExprUnaryData is shared by every single-operand form: unary, update,
// spread, paren, await, yield, dynamic import and TS non-null.
type ExprUnaryData struct {
	Op     string
	Arg    ExprID
	Prefix bool
}

type ExprBinaryData struct {
	Op    string
	Left  ExprID
	Right ExprID
}

type ExprAssignData struct {
	Op     string
	Target PatID
	Value  ExprID
}

// ExprMemberData: Prop is set for computed access, Name for `.name`/`.#name`.
type ExprMemberData struct {
	Object   ExprID
	Prop     ExprID
	Name     source.StringID
	Computed bool
	Private  bool
	Optional bool
}

type ExprCallData struct {
	Callee   ExprID
	Args     []ExprID
	Optional bool
}

type ExprCondData struct {
	Test ExprID
	Cons ExprID
	Alt  ExprID
}

type ExprTemplateData struct {
	Tag   ExprID
	Exprs []ExprID
}

type ExprMetaData struct {
	Meta     source.StringID
	Property source.StringID
}

type ExprTsAsData struct {
	X    ExprID
	Type TypeID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Lits      *Arena[ExprLitData]
	Lists     *Arena[ExprListData]
	Objects   *Arena[ExprObjectData]
	Fns       *Arena[ExprFnData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Assigns   *Arena[ExprAssignData]
	Members   *Arena[ExprMemberData]
	Calls     *Arena[ExprCallData]
	Conds     *Arena[ExprCondData]
	Templates *Arena[ExprTemplateData]
	Metas     *Arena[ExprMetaData]
	TsAs      *Arena[ExprTsAsData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint / 2),
		Lits:      NewArena[ExprLitData](small),
		Lists:     NewArena[ExprListData](small),
		Objects:   NewArena[ExprObjectData](small),
		Fns:       NewArena[ExprFnData](small),
		Unaries:   NewArena[ExprUnaryData](small),
		Binaries:  NewArena[ExprBinaryData](small),
		Assigns:   NewArena[ExprAssignData](small),
		Members:   NewArena[ExprMemberData](small),
		Calls:     NewArena[ExprCallData](small),
		Conds:     NewArena[ExprCondData](small),
		Templates: NewArena[ExprTemplateData](small),
		Metas:     NewArena[ExprMetaData](small),
		TsAs:      NewArena[ExprTsAsData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// Get returns the expression header or nil.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kinds ...ExprKind) (PayloadID, bool) {
	expr := e.Get(id)
	if expr == nil {
		return NoPayloadID, false
	}
	for _, k := range kinds {
		if expr.Kind == k {
			return expr.Payload, true
		}
	}
	return NoPayloadID, false
}

func (e *Exprs) NewIdent(span source.Span, ident IdentID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Ident: ident}))
}

func (e *Exprs) Ident(id ExprID) *ExprIdentData {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil
	}
	return e.Idents.Get(uint32(p))
}

func (e *Exprs) NewLit(span source.Span, kind LitKind, raw string) ExprID {
	return e.new(ExprLit, span, e.Lits.Allocate(ExprLitData{Kind: kind, Raw: raw}))
}

func (e *Exprs) Lit(id ExprID) *ExprLitData {
	p, ok := e.payload(id, ExprLit)
	if !ok {
		return nil
	}
	return e.Lits.Get(uint32(p))
}

func (e *Exprs) NewThis(span source.Span) ExprID  { return e.new(ExprThis, span, 0) }
func (e *Exprs) NewSuper(span source.Span) ExprID { return e.new(ExprSuper, span, 0) }

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	return e.new(ExprArray, span, e.Lists.Allocate(ExprListData{Elems: elems}))
}

func (e *Exprs) NewSeq(span source.Span, exprs []ExprID) ExprID {
	return e.new(ExprSeq, span, e.Lists.Allocate(ExprListData{Elems: exprs}))
}

// List returns the elements of an array literal or sequence expression.
func (e *Exprs) List(id ExprID) *ExprListData {
	p, ok := e.payload(id, ExprArray, ExprSeq)
	if !ok {
		return nil
	}
	return e.Lists.Get(uint32(p))
}

func (e *Exprs) NewObject(span source.Span, props []PropID) ExprID {
	return e.new(ExprObject, span, e.Objects.Allocate(ExprObjectData{Props: props}))
}

func (e *Exprs) Object(id ExprID) *ExprObjectData {
	p, ok := e.payload(id, ExprObject)
	if !ok {
		return nil
	}
	return e.Objects.Get(uint32(p))
}

func (e *Exprs) NewFn(span source.Span, name IdentID, fn FuncID) ExprID {
	return e.new(ExprFn, span, e.Fns.Allocate(ExprFnData{Name: name, Func: fn}))
}

func (e *Exprs) NewArrow(span source.Span, fn FuncID) ExprID {
	return e.new(ExprArrow, span, e.Fns.Allocate(ExprFnData{Func: fn}))
}

func (e *Exprs) NewClass(span source.Span, name IdentID, class ClassID) ExprID {
	return e.new(ExprClass, span, e.Fns.Allocate(ExprFnData{Name: name, Class: class}))
}

// Fn returns the payload of a function, arrow or class expression.
func (e *Exprs) Fn(id ExprID) *ExprFnData {
	p, ok := e.payload(id, ExprFn, ExprArrow, ExprClass)
	if !ok {
		return nil
	}
	return e.Fns.Get(uint32(p))
}

// NewUnary allocates any single-operand kind (see ExprUnaryData).
func (e *Exprs) NewUnary(kind ExprKind, span source.Span, op string, arg ExprID, prefix bool) ExprID {
	switch kind {
	case ExprUnary, ExprUpdate, ExprSpread, ExprParen, ExprAwait, ExprYield, ExprImportCall, ExprNonNull:
	default:
		panic("ast: NewUnary with kind " + kind.String())
	}
	return e.new(kind, span, e.Unaries.Allocate(ExprUnaryData{Op: op, Arg: arg, Prefix: prefix}))
}

func (e *Exprs) Unary(id ExprID) *ExprUnaryData {
	p, ok := e.payload(id, ExprUnary, ExprUpdate, ExprSpread, ExprParen, ExprAwait, ExprYield, ExprImportCall, ExprNonNull)
	if !ok {
		return nil
	}
	return e.Unaries.Get(uint32(p))
}

func (e *Exprs) NewBinary(span source.Span, op string, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) *ExprBinaryData {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil
	}
	return e.Binaries.Get(uint32(p))
}

func (e *Exprs) NewAssign(span source.Span, op string, target PatID, value ExprID) ExprID {
	return e.new(ExprAssign, span, e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value}))
}

func (e *Exprs) Assign(id ExprID) *ExprAssignData {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil
	}
	return e.Assigns.Get(uint32(p))
}

func (e *Exprs) NewMember(span source.Span, data ExprMemberData) ExprID {
	return e.new(ExprMember, span, e.Members.Allocate(data))
}

func (e *Exprs) Member(id ExprID) *ExprMemberData {
	p, ok := e.payload(id, ExprMember)
	if !ok {
		return nil
	}
	return e.Members.Get(uint32(p))
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID, optional bool) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args, Optional: optional}))
}

func (e *Exprs) NewNew(span source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprNew, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args}))
}

// Call returns the payload of a call or new expression.
func (e *Exprs) Call(id ExprID) *ExprCallData {
	p, ok := e.payload(id, ExprCall, ExprNew)
	if !ok {
		return nil
	}
	return e.Calls.Get(uint32(p))
}

func (e *Exprs) NewCond(span source.Span, test, cons, alt ExprID) ExprID {
	return e.new(ExprCond, span, e.Conds.Allocate(ExprCondData{Test: test, Cons: cons, Alt: alt}))
}

func (e *Exprs) Cond(id ExprID) *ExprCondData {
	p, ok := e.payload(id, ExprCond)
	if !ok {
		return nil
	}
	return e.Conds.Get(uint32(p))
}

func (e *Exprs) NewTemplate(span source.Span, tag ExprID, exprs []ExprID) ExprID {
	return e.new(ExprTemplate, span, e.Templates.Allocate(ExprTemplateData{Tag: tag, Exprs: exprs}))
}

func (e *Exprs) Template(id ExprID) *ExprTemplateData {
	p, ok := e.payload(id, ExprTemplate)
	if !ok {
		return nil
	}
	return e.Templates.Get(uint32(p))
}

func (e *Exprs) NewMeta(span source.Span, meta, property source.StringID) ExprID {
	return e.new(ExprMeta, span, e.Metas.Allocate(ExprMetaData{Meta: meta, Property: property}))
}

func (e *Exprs) Meta(id ExprID) *ExprMetaData {
	p, ok := e.payload(id, ExprMeta)
	if !ok {
		return nil
	}
	return e.Metas.Get(uint32(p))
}

func (e *Exprs) NewTsAs(span source.Span, x ExprID, typ TypeID) ExprID {
	return e.new(ExprTsAs, span, e.TsAs.Allocate(ExprTsAsData{X: x, Type: typ}))
}

func (e *Exprs) TsAsExpr(id ExprID) *ExprTsAsData {
	p, ok := e.payload(id, ExprTsAs)
	if !ok {
		return nil
	}
	return e.TsAs.Get(uint32(p))
}
