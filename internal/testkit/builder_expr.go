package testkit

import (
	"lintcore/internal/ast"
)

// Ref is an identifier reference expression.
func (b *Builder) Ref(name string) ast.ExprID {
	id := b.Ident(name)
	return b.T.Exprs.NewIdent(b.IdentSpan(id), id)
}

func (b *Builder) Num(raw string) ast.ExprID {
	return b.T.Exprs.NewLit(b.next(len(raw)), ast.LitNumber, raw)
}

func (b *Builder) Str(raw string) ast.ExprID {
	return b.T.Exprs.NewLit(b.next(len(raw)+2), ast.LitString, raw)
}

func (b *Builder) Array(elems ...ast.ExprID) ast.ExprID {
	return b.T.Exprs.NewArray(b.next(2), elems)
}

func (b *Builder) Object(props ...ast.PropID) ast.ExprID {
	return b.T.Exprs.NewObject(b.next(2), props)
}

func (b *Builder) Call(callee ast.ExprID, args ...ast.ExprID) ast.ExprID {
	return b.T.Exprs.NewCall(b.next(2), callee, args, false)
}

func (b *Builder) NewCall(callee ast.ExprID, args ...ast.ExprID) ast.ExprID {
	return b.T.Exprs.NewNew(b.next(3), callee, args)
}

func (b *Builder) Binary(op string, left, right ast.ExprID) ast.ExprID {
	return b.T.Exprs.NewBinary(b.next(len(op)), op, left, right)
}

func (b *Builder) Assign(target ast.PatID, value ast.ExprID) ast.ExprID {
	return b.T.Exprs.NewAssign(b.next(1), "=", target, value)
}

func (b *Builder) Member(object ast.ExprID, name string) ast.ExprID {
	return b.T.Exprs.NewMember(b.next(len(name)+1), ast.ExprMemberData{
		Object: object,
		Name:   b.T.Strings.Intern(name),
	})
}

// FnExpr is `function name(params) { body }`; name may be empty.
func (b *Builder) FnExpr(name string, params []ast.ParamID, body ...ast.StmtID) ast.ExprID {
	ident := ast.NoIdentID
	if name != "" {
		ident = b.Ident(name)
	}
	return b.T.Exprs.NewFn(b.next(8), ident, b.Func(params, body...))
}

// Arrow is `(params) => { body }`.
func (b *Builder) Arrow(params []ast.ParamID, body ...ast.StmtID) ast.ExprID {
	fn := b.Func(params, body...)
	b.T.Func(fn).Arrow = true
	return b.T.Exprs.NewArrow(b.next(2), fn)
}

// ArrowExpr is `(params) => expr`.
func (b *Builder) ArrowExpr(params []ast.ParamID, x ast.ExprID) ast.ExprID {
	fn := b.T.NewFunc(ast.Func{Params: params, ExprBody: x, Arrow: true, Span: b.next(2)})
	return b.T.Exprs.NewArrow(b.next(2), fn)
}

func (b *Builder) ClassExpr(name string, members ...ast.MemberID) ast.ExprID {
	ident := ast.NoIdentID
	if name != "" {
		ident = b.Ident(name)
	}
	return b.T.Exprs.NewClass(b.next(5), ident, b.Class(members...))
}

// --- object literal entries

func (b *Builder) KeyValue(key string, value ast.ExprID) ast.PropID {
	return b.T.Props.New(ast.Prop{Kind: ast.PropKeyValue, Key: b.Key(key), Value: value, Span: b.next(1)})
}

func (b *Builder) ShorthandProp(name string) ast.PropID {
	id := b.Ident(name)
	return b.T.Props.New(ast.Prop{Kind: ast.PropShorthand, Ident: id, Span: b.IdentSpan(id)})
}

func (b *Builder) MethodProp(key string, params []ast.ParamID, body ...ast.StmtID) ast.PropID {
	return b.T.Props.New(ast.Prop{Kind: ast.PropMethod, Key: b.Key(key), Func: b.Func(params, body...), Span: b.next(1)})
}

func (b *Builder) GetterProp(key string, body ...ast.StmtID) ast.PropID {
	return b.T.Props.New(ast.Prop{Kind: ast.PropGetter, Key: b.Key(key), Func: b.Func(nil, body...), Span: b.next(3)})
}

func (b *Builder) SetterProp(key string, param ast.ParamID, body ...ast.StmtID) ast.PropID {
	return b.T.Props.New(ast.Prop{Kind: ast.PropSetter, Key: b.Key(key), Func: b.Func([]ast.ParamID{param}, body...), Span: b.next(3)})
}

// --- functions and classes

// Func allocates a function with a block body.
func (b *Builder) Func(params []ast.ParamID, body ...ast.StmtID) ast.FuncID {
	block := b.Block(body...)
	return b.T.NewFunc(ast.Func{Params: params, Body: block, Span: b.next(2)})
}

// Signature allocates a function without a body.
func (b *Builder) Signature(params []ast.ParamID) ast.FuncID {
	return b.T.NewFunc(ast.Func{Params: params, Span: b.next(2)})
}

func (b *Builder) Param(pat ast.PatID) ast.ParamID {
	return b.T.NewParam(b.next(1), pat)
}

// Params binds one plain identifier parameter per name.
func (b *Builder) Params(names ...string) []ast.ParamID {
	out := make([]ast.ParamID, 0, len(names))
	for _, name := range names {
		out = append(out, b.Param(b.Bind(name)))
	}
	return out
}

func (b *Builder) Class(members ...ast.MemberID) ast.ClassID {
	return b.T.NewClass(ast.Class{Members: members, Span: b.next(2)})
}

func (b *Builder) Ctor(params []ast.ParamID, body ...ast.StmtID) ast.MemberID {
	return b.T.Members.NewMethod(b.next(11), ast.ClassMethod{
		Key:  b.Key("constructor"),
		Kind: ast.MethodConstructor,
		Func: b.Func(params, body...),
	})
}

func (b *Builder) Method(kind ast.MethodKind, key ast.PropKey, params []ast.ParamID, body ...ast.StmtID) ast.MemberID {
	return b.T.Members.NewMethod(b.next(1), ast.ClassMethod{Key: key, Kind: kind, Func: b.Func(params, body...)})
}

// Setter is `set key(param) { body }` with a plain identifier key.
func (b *Builder) Setter(key string, param ast.ParamID, body ...ast.StmtID) ast.MemberID {
	return b.Method(ast.MethodSetter, b.Key(key), []ast.ParamID{param}, body...)
}

// AbstractSetter is a setter without a body.
func (b *Builder) AbstractSetter(key string, param ast.ParamID) ast.MemberID {
	return b.T.Members.NewMethod(b.next(1), ast.ClassMethod{
		Key:      b.Key(key),
		Kind:     ast.MethodSetter,
		Func:     b.Signature([]ast.ParamID{param}),
		Abstract: true,
	})
}

func (b *Builder) Field(key ast.PropKey, value ast.ExprID) ast.MemberID {
	return b.T.Members.NewProp(b.next(1), ast.ClassProp{Key: key, Value: value})
}

func (b *Builder) StaticBlock(body ...ast.StmtID) ast.MemberID {
	return b.T.Members.NewStaticBlock(b.next(6), b.Block(body...))
}
