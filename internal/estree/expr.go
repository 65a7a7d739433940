package estree

import (
	"lintcore/internal/ast"
)

func (l *loader) optExpr(n node) ast.ExprID {
	if n == nil {
		return ast.NoExprID
	}
	return l.expr(n)
}

// exprList converts arguments and array elements; null entries become
// NoExprID holes.
func (l *loader) exprList(list []node) []ast.ExprID {
	out := make([]ast.ExprID, len(list))
	for i, n := range list {
		if n != nil {
			out[i] = l.expr(n)
		}
	}
	return out
}

func (l *loader) expr(n node) ast.ExprID {
	if l.err != nil {
		return ast.NoExprID
	}
	if n == nil {
		l.failf(n, "missing expression")
		return ast.NoExprID
	}
	exprs := l.tree.Exprs
	sp := l.span(n)
	switch n.typ() {
	case "Identifier":
		return exprs.NewIdent(sp, l.ident(n))
	case "PrivateIdentifier", "PrivateName":
		// `#x in obj`: ключ, а не ссылка
		return exprs.NewLit(sp, ast.LitString, "#"+n.str("name"))
	case "Literal", "StringLiteral", "NumericLiteral", "BooleanLiteral", "NullLiteral", "RegExpLiteral", "BigIntLiteral":
		return l.literal(n)
	case "ThisExpression":
		return exprs.NewThis(sp)
	case "Super":
		return exprs.NewSuper(sp)
	case "ArrayExpression":
		return exprs.NewArray(sp, l.exprList(n.list("elements")))
	case "SequenceExpression":
		return exprs.NewSeq(sp, l.exprList(n.list("expressions")))
	case "ObjectExpression":
		return exprs.NewObject(sp, l.props(n.list("properties")))
	case "FunctionExpression":
		return exprs.NewFn(sp, l.ident(n.child("id")), l.fn(n))
	case "ArrowFunctionExpression":
		return exprs.NewArrow(sp, l.fn(n))
	case "ClassExpression":
		return exprs.NewClass(sp, l.ident(n.child("id")), l.class(n))
	case "UnaryExpression":
		return exprs.NewUnary(ast.ExprUnary, sp, n.str("operator"), l.expr(n.child("argument")), true)
	case "UpdateExpression":
		return exprs.NewUnary(ast.ExprUpdate, sp, n.str("operator"), l.expr(n.child("argument")), n.flag("prefix"))
	case "SpreadElement":
		return exprs.NewUnary(ast.ExprSpread, sp, "...", l.expr(n.child("argument")), true)
	case "ParenthesizedExpression":
		return exprs.NewUnary(ast.ExprParen, sp, "", l.expr(n.child("expression")), true)
	case "AwaitExpression":
		return exprs.NewUnary(ast.ExprAwait, sp, "await", l.expr(n.child("argument")), true)
	case "YieldExpression":
		op := "yield"
		if n.flag("delegate") {
			op = "yield*"
		}
		return exprs.NewUnary(ast.ExprYield, sp, op, l.optExpr(n.child("argument")), true)
	case "ImportExpression":
		return exprs.NewUnary(ast.ExprImportCall, sp, "import", l.expr(n.child("source")), true)
	case "TSNonNullExpression":
		return exprs.NewUnary(ast.ExprNonNull, sp, "!", l.expr(n.child("expression")), false)
	case "BinaryExpression", "LogicalExpression":
		return exprs.NewBinary(sp, n.str("operator"), l.expr(n.child("left")), l.expr(n.child("right")))
	case "AssignmentExpression":
		return exprs.NewAssign(sp, n.str("operator"), l.target(n.child("left")), l.expr(n.child("right")))
	case "MemberExpression":
		return l.member(n)
	case "CallExpression":
		return exprs.NewCall(sp, l.expr(n.child("callee")), l.exprList(n.list("arguments")), n.flag("optional"))
	case "NewExpression":
		return exprs.NewNew(sp, l.expr(n.child("callee")), l.exprList(n.list("arguments")))
	case "ChainExpression":
		return l.expr(n.child("expression"))
	case "ConditionalExpression":
		return exprs.NewCond(sp, l.expr(n.child("test")), l.expr(n.child("consequent")), l.expr(n.child("alternate")))
	case "TemplateLiteral":
		return exprs.NewTemplate(sp, ast.NoExprID, l.exprList(n.list("expressions")))
	case "TaggedTemplateExpression":
		quasi := n.child("quasi")
		return exprs.NewTemplate(sp, l.expr(n.child("tag")), l.exprList(quasi.list("expressions")))
	case "MetaProperty":
		return exprs.NewMeta(sp, l.intern(n.child("meta").str("name")), l.intern(n.child("property").str("name")))
	case "TSAsExpression", "TSSatisfiesExpression", "TSTypeAssertion":
		return exprs.NewTsAs(sp, l.expr(n.child("expression")), l.typeNode(n.child("typeAnnotation")))
	case "TSInstantiationExpression":
		return l.expr(n.child("expression"))
	}
	l.unsupported(n, "expression position")
	return ast.NoExprID
}

func (l *loader) literal(n node) ast.ExprID {
	raw := n.str("raw")
	val := n["value"]
	if raw == "" {
		raw = rawLiteral(val)
	}
	var kind ast.LitKind
	switch {
	case n.has("regex") || n.typ() == "RegExpLiteral":
		kind = ast.LitRegExp
	case n.has("bigint") || n.typ() == "BigIntLiteral":
		kind = ast.LitBigInt
	default:
		switch val.(type) {
		case nil:
			kind = ast.LitNull
		case bool:
			kind = ast.LitBool
		case string:
			kind = ast.LitString
		default:
			kind = ast.LitNumber
		}
	}
	return l.tree.Exprs.NewLit(l.span(n), kind, raw)
}

func (l *loader) member(n node) ast.ExprID {
	data := ast.ExprMemberData{
		Object:   l.expr(n.child("object")),
		Computed: n.flag("computed"),
		Optional: n.flag("optional"),
	}
	prop := n.child("property")
	switch {
	case data.Computed:
		data.Prop = l.expr(prop)
	case prop.typ() == "PrivateIdentifier" || prop.typ() == "PrivateName":
		data.Private = true
		data.Name = l.intern(prop.str("name"))
	case prop.typ() == "Identifier":
		data.Name = l.intern(prop.str("name"))
	default:
		l.unsupported(prop, "member property")
		return ast.NoExprID
	}
	return l.tree.Exprs.NewMember(l.span(n), data)
}

func (l *loader) props(list []node) []ast.PropID {
	out := make([]ast.PropID, 0, len(list))
	for _, n := range list {
		if n == nil || l.err != nil {
			continue
		}
		out = append(out, l.prop(n))
	}
	return out
}

func (l *loader) prop(n node) ast.PropID {
	sp := l.span(n)
	switch n.typ() {
	case "SpreadElement", "SpreadProperty":
		return l.tree.Props.New(ast.Prop{Kind: ast.PropSpread, Value: l.expr(n.child("argument")), Span: sp})
	case "Property", "ObjectProperty", "ObjectMethod":
	default:
		l.unsupported(n, "object literal")
		return ast.NoPropID
	}
	key := n.child("key")
	value := n.child("value")
	if n.typ() == "ObjectMethod" {
		value = n
	}
	switch {
	case n.str("kind") == "get":
		return l.tree.Props.New(ast.Prop{Kind: ast.PropGetter, Key: l.key(key, n.flag("computed")), Func: l.fn(value), Span: sp})
	case n.str("kind") == "set":
		return l.tree.Props.New(ast.Prop{Kind: ast.PropSetter, Key: l.key(key, n.flag("computed")), Func: l.fn(value), Span: sp})
	case n.flag("method") || n.typ() == "ObjectMethod":
		return l.tree.Props.New(ast.Prop{Kind: ast.PropMethod, Key: l.key(key, n.flag("computed")), Func: l.fn(value), Span: sp})
	case n.flag("shorthand") && value.typ() == "Identifier":
		return l.tree.Props.New(ast.Prop{Kind: ast.PropShorthand, Ident: l.ident(value), Span: sp})
	}
	return l.tree.Props.New(ast.Prop{Kind: ast.PropKeyValue, Key: l.key(key, n.flag("computed")), Value: l.expr(value), Span: sp})
}
