package estree

import (
	"lintcore/internal/ast"
)

// pat converts a binding pattern (declarator id, parameter, catch param).
func (l *loader) pat(n node) ast.PatID {
	if l.err != nil {
		return ast.NoPatID
	}
	if n == nil {
		l.failf(n, "missing pattern")
		return ast.NoPatID
	}
	pats := l.tree.Pats
	sp := l.span(n)
	switch n.typ() {
	case "Identifier":
		id := pats.NewIdent(sp, l.ident(n), l.annotation(n))
		if data := pats.Ident(id); data != nil {
			data.Optional = n.flag("optional")
		}
		return id
	case "ArrayPattern":
		list := n.list("elements")
		elems := make([]ast.PatID, len(list))
		for i, e := range list {
			if e != nil {
				elems[i] = l.pat(e)
			}
		}
		return pats.NewArray(sp, elems, l.annotation(n))
	case "ObjectPattern":
		list := n.list("properties")
		props := make([]ast.ObjectPatProp, 0, len(list))
		for _, p := range list {
			if p == nil || l.err != nil {
				continue
			}
			props = append(props, l.objectPatProp(p))
		}
		return pats.NewObject(sp, props, l.annotation(n))
	case "AssignmentPattern":
		return pats.NewAssign(sp, l.pat(n.child("left")), l.expr(n.child("right")))
	case "RestElement":
		return pats.NewRest(sp, l.pat(n.child("argument")), l.annotation(n))
	case "MemberExpression", "TSAsExpression", "TSNonNullExpression", "TSSatisfiesExpression", "TSTypeAssertion", "ParenthesizedExpression":
		return pats.NewExpr(sp, l.expr(n))
	}
	l.unsupported(n, "pattern position")
	return ast.NoPatID
}

// target converts an assignment or for-in/of left-hand side. ESTree already
// reshapes destructuring targets into patterns, so this is pat with
// expressions allowed at the leaves.
func (l *loader) target(n node) ast.PatID {
	return l.pat(n)
}

func (l *loader) objectPatProp(n node) ast.ObjectPatProp {
	sp := l.span(n)
	switch n.typ() {
	case "RestElement":
		return ast.ObjectPatProp{Value: l.pat(n), Span: sp}
	case "Property", "ObjectProperty":
	default:
		l.unsupported(n, "object pattern")
		return ast.ObjectPatProp{}
	}
	return ast.ObjectPatProp{
		Key:       l.key(n.child("key"), n.flag("computed")),
		Value:     l.pat(n.child("value")),
		Shorthand: n.flag("shorthand"),
		Span:      sp,
	}
}

func (l *loader) params(list []node) []ast.ParamID {
	out := make([]ast.ParamID, 0, len(list))
	for _, n := range list {
		if n == nil || l.err != nil {
			continue
		}
		out = append(out, l.param(n))
	}
	return out
}

func (l *loader) param(n node) ast.ParamID {
	sp := l.span(n)
	decorators := l.decorators(n)
	access := ""
	inner := n
	if n.typ() == "TSParameterProperty" {
		access = n.str("accessibility")
		if access == "" && n.flag("readonly") {
			access = "readonly"
		}
		inner = n.child("parameter")
	}
	id := l.tree.NewParam(sp, l.pat(inner))
	if p := l.tree.Param(id); p != nil {
		p.Decorators = decorators
		p.Accessibility = access
	}
	return id
}
