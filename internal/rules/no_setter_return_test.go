package rules

import (
	"testing"

	"lintcore/internal/ast"
	"lintcore/internal/testkit"
)

// const a = { set setter(a) { return "x"; } };
func TestNoSetterReturnObjectSetter(t *testing.T) {
	b := testkit.Script()
	ret := b.Return(b.Str("x"))
	setter := b.SetterProp("setter", b.Param(b.Bind("a")), ret)
	tree := resolved(t, b, b.Var(ast.VarConst, b.Decl(b.Bind("a"), b.Object(setter))))

	got := runRule(t, NoSetterReturn{}, tree)
	wantSpans(t, got, NoSetterReturnCode, tree.Stmts.Get(ret).Span)
	if got[0].Message != NoSetterReturnMessage {
		t.Fatalf("unexpected message %q", got[0].Message)
	}
}

// class b { set setterA(a) { return "x"; } private set setterB(a) { return "x"; } set #c(v) { return 1; } }
func TestNoSetterReturnClassSetters(t *testing.T) {
	b := testkit.Script()
	r1 := b.Return(b.Str("x"))
	m1 := b.Setter("setterA", b.Param(b.Bind("a")), r1)
	r2 := b.Return(b.Str("x"))
	m2 := b.Setter("setterB", b.Param(b.Bind("a")), r2)
	r3 := b.Return(b.Num("1"))
	m3 := b.Method(ast.MethodSetter, b.PrivateKey("c"), b.Params("v"), r3)
	tree := resolved(t, b, b.ClassDecl("b", m1, m2, m3))

	wantSpans(t, runRule(t, NoSetterReturn{}, tree), NoSetterReturnCode,
		tree.Stmts.Get(r1).Span, tree.Stmts.Get(r2).Span, tree.Stmts.Get(r3).Span)
}

// class C { set s(v) { if (true) { return 1; } } }
func TestNoSetterReturnIgnoresNestedReturn(t *testing.T) {
	b := testkit.Script()
	nested := b.If(b.Ref("true"), b.Block(b.Return(b.Num("1"))), ast.NoStmtID)
	tree := resolved(t, b, b.ClassDecl("C", b.Setter("s", b.Param(b.Bind("v")), nested)))

	if got := runRule(t, NoSetterReturn{}, tree); len(got) != 0 {
		t.Fatalf("nested return must not be flagged, got %+v", got)
	}
}

// class C { set s(v) { return; } get g() { return 1; } m() { return 1; } }
func TestNoSetterReturnIgnoresBareReturnAndOtherMethods(t *testing.T) {
	b := testkit.Script()
	setter := b.Setter("s", b.Param(b.Bind("v")), b.Return(ast.NoExprID))
	getter := b.Method(ast.MethodGetter, b.Key("g"), nil, b.Return(b.Num("1")))
	method := b.Method(ast.MethodNormal, b.Key("m"), nil, b.Return(b.Num("1")))
	ctor := b.Ctor(nil, b.Return(b.Ref("x")))
	obj := b.Object(b.GetterProp("g", b.Return(b.Num("1"))), b.MethodProp("m", nil, b.Return(b.Num("2"))))
	tree := resolved(t, b,
		b.ClassDecl("C", setter, getter, method, ctor),
		b.ExprStmt(obj),
	)

	if got := runRule(t, NoSetterReturn{}, tree); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", got)
	}
}

// abstract class C { abstract set s(v); }
func TestNoSetterReturnIgnoresBodilessSetter(t *testing.T) {
	b := testkit.Script()
	tree := resolved(t, b, b.ClassDecl("C", b.AbstractSetter("s", b.Param(b.Bind("v")))))

	if got := runRule(t, NoSetterReturn{}, tree); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", got)
	}
}

// function f() { return { set a(v) { return v; } }; }
func TestNoSetterReturnFindsSetterInsideFunction(t *testing.T) {
	b := testkit.Script()
	ret := b.Return(b.Ref("v"))
	obj := b.Object(b.SetterProp("a", b.Param(b.Bind("v")), ret))
	tree := resolved(t, b, b.FnDecl("f", nil, b.Return(obj)))

	wantSpans(t, runRule(t, NoSetterReturn{}, tree), NoSetterReturnCode, tree.Stmts.Get(ret).Span)
}

// Class hook does not descend: a class nested in a member is not inspected.
// class A { m() { return class B { set x(v) { return 1; } } } }
func TestNoSetterReturnDoesNotDescendIntoClassMembers(t *testing.T) {
	b := testkit.Script()
	inner := b.ClassExpr("B", b.Setter("x", b.Param(b.Bind("v")), b.Return(b.Num("1"))))
	outer := b.ClassDecl("A", b.Method(ast.MethodNormal, b.Key("m"), nil, b.Return(inner)))
	tree := resolved(t, b, outer)

	if got := runRule(t, NoSetterReturn{}, tree); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", got)
	}

	// the same class at top level is inspected
	b2 := testkit.Script()
	ret := b2.Return(b2.Num("1"))
	inner2 := b2.ClassExpr("B", b2.Setter("x", b2.Param(b2.Bind("v")), ret))
	tree2 := resolved(t, b2, b2.ExprStmt(inner2))
	wantSpans(t, runRule(t, NoSetterReturn{}, tree2), NoSetterReturnCode, tree2.Stmts.Get(ret).Span)
}
