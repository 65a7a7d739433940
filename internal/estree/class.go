package estree

import (
	"lintcore/internal/ast"
)

// fn converts any function-like node: declarations, expressions, arrows,
// TSDeclareFunction and TSEmptyBodyFunctionExpression (no body).
func (l *loader) fn(n node) ast.FuncID {
	if l.err != nil {
		return ast.NoFuncID
	}
	if n == nil {
		l.failf(n, "missing function")
		return ast.NoFuncID
	}
	switch n.typ() {
	case "FunctionDeclaration", "FunctionExpression", "ArrowFunctionExpression",
		"TSDeclareFunction", "TSEmptyBodyFunctionExpression", "ObjectMethod", "ClassMethod", "ClassPrivateMethod":
	default:
		l.unsupported(n, "function position")
		return ast.NoFuncID
	}
	fn := ast.Func{
		Params:     l.params(n.list("params")),
		ReturnType: l.annotation(n.child("returnType")),
		Async:      n.flag("async"),
		Generator:  n.flag("generator"),
		Arrow:      n.typ() == "ArrowFunctionExpression",
		Span:       l.span(n),
	}
	if body := n.child("body"); body != nil {
		if body.typ() == "BlockStatement" {
			fn.Body = l.stmt(body)
		} else {
			fn.ExprBody = l.expr(body)
		}
	}
	return l.tree.NewFunc(fn)
}

func (l *loader) class(n node) ast.ClassID {
	if l.err != nil {
		return ast.NoClassID
	}
	class := ast.Class{
		Decorators: l.decorators(n),
		Super:      l.optExpr(n.child("superClass")),
		Abstract:   n.flag("abstract"),
		Span:       l.span(n),
	}
	for _, impl := range n.list("implements") {
		if impl != nil {
			class.Implements = append(class.Implements, l.typeRef(impl, impl.child("expression")))
		}
	}
	for _, m := range n.child("body").list("body") {
		if m == nil || l.err != nil {
			continue
		}
		class.Members = append(class.Members, l.classMember(m))
	}
	return l.tree.NewClass(class)
}

func (l *loader) classMember(n node) ast.MemberID {
	members := l.tree.Members
	sp := l.span(n)
	switch n.typ() {
	case "MethodDefinition", "TSAbstractMethodDefinition", "ClassMethod", "ClassPrivateMethod":
		value := n.child("value")
		if value == nil {
			// babel кладёт функцию прямо в узел метода
			value = n
		}
		method := ast.ClassMethod{
			Decorators: l.decorators(n),
			Key:        l.key(n.child("key"), n.flag("computed")),
			Static:     n.flag("static"),
			Abstract:   n.typ() == "TSAbstractMethodDefinition" || n.flag("abstract"),
		}
		switch n.str("kind") {
		case "constructor":
			method.Kind = ast.MethodConstructor
		case "get":
			method.Kind = ast.MethodGetter
		case "set":
			method.Kind = ast.MethodSetter
		default:
			method.Kind = ast.MethodNormal
		}
		method.Func = l.fn(value)
		return members.NewMethod(sp, method)
	case "PropertyDefinition", "TSAbstractPropertyDefinition", "ClassProperty", "ClassPrivateProperty", "AccessorProperty":
		return members.NewProp(sp, ast.ClassProp{
			Decorators: l.decorators(n),
			Key:        l.key(n.child("key"), n.flag("computed")),
			TypeAnn:    l.annotation(n),
			Value:      l.optExpr(n.child("value")),
			Static:     n.flag("static"),
			Declare:    n.flag("declare"),
		})
	case "StaticBlock":
		return members.NewStaticBlock(sp, l.tree.Stmts.NewBlock(sp, l.stmtList(n.list("body"))))
	case "TSIndexSignature":
		return members.NewEmpty(sp)
	}
	l.unsupported(n, "class body")
	return ast.NoMemberID
}
