package estree

import (
	"strings"

	"lintcore/internal/ast"
)

// annotation reads the optional typeAnnotation field of n.
func (l *loader) annotation(n node) ast.TypeID {
	if n == nil {
		return ast.NoTypeID
	}
	t := n.child("typeAnnotation")
	if t == nil {
		return ast.NoTypeID
	}
	return l.typeNode(t)
}

// typeNode converts a TS type. Types are never linted, so shapes the tree
// model has no node for are kept as opaque keywords named after the ESTree
// type instead of failing the load.
func (l *loader) typeNode(n node) ast.TypeID {
	if n == nil || l.err != nil {
		return ast.NoTypeID
	}
	types := l.tree.Types
	sp := l.span(n)
	typ := n.typ()
	switch typ {
	case "TSTypeAnnotation", "TSParenthesizedType", "TSTypeOperator", "TSOptionalType", "TSRestType":
		return l.typeNode(n.child("typeAnnotation"))
	case "TSTypeReference":
		return l.typeRef(n, n.child("typeName"))
	case "TSUnionType":
		return types.New(ast.TypeNode{Kind: ast.TypeUnion, Span: sp, Args: l.typeList(n.list("types"))})
	case "TSIntersectionType":
		return types.New(ast.TypeNode{Kind: ast.TypeIntersection, Span: sp, Args: l.typeList(n.list("types"))})
	case "TSTupleType":
		return types.New(ast.TypeNode{Kind: ast.TypeTuple, Span: sp, Args: l.typeList(n.list("elementTypes"))})
	case "TSArrayType":
		return types.New(ast.TypeNode{Kind: ast.TypeArray, Span: sp, Elem: l.typeNode(n.child("elementType"))})
	case "TSFunctionType", "TSConstructorType":
		params := n.list("params")
		if params == nil {
			params = n.list("parameters")
		}
		pats := make([]ast.PatID, 0, len(params))
		for _, p := range params {
			if p != nil {
				pats = append(pats, l.pat(p))
			}
		}
		ret := n.child("returnType")
		if ret == nil {
			ret = n.child("typeAnnotation")
		}
		return types.New(ast.TypeNode{Kind: ast.TypeFunc, Span: sp, Params: pats, Elem: l.typeNode(ret)})
	case "TSTypeLiteral":
		return types.New(ast.TypeNode{Kind: ast.TypeObject, Span: sp, Members: l.typeMembers(n.list("members"))})
	case "TSTypeQuery":
		return types.New(ast.TypeNode{Kind: ast.TypeQuery, Span: sp, Name: l.intern(entityName(n.child("exprName")))})
	case "TSLiteralType":
		lit := n.child("literal")
		raw := lit.str("raw")
		if raw == "" {
			raw = rawLiteral(lit["value"])
		}
		return types.New(ast.TypeNode{Kind: ast.TypeLit, Span: sp, Name: l.intern(raw)})
	}
	if strings.HasPrefix(typ, "TS") && strings.HasSuffix(typ, "Keyword") {
		name := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(typ, "TS"), "Keyword"))
		return types.New(ast.TypeNode{Kind: ast.TypeKeyword, Span: sp, Name: l.intern(name)})
	}
	if strings.HasPrefix(typ, "TS") && strings.HasSuffix(typ, "Type") {
		return types.New(ast.TypeNode{Kind: ast.TypeKeyword, Span: sp, Name: l.intern(typ)})
	}
	l.unsupported(n, "type position")
	return ast.NoTypeID
}

func (l *loader) typeList(list []node) []ast.TypeID {
	out := make([]ast.TypeID, 0, len(list))
	for _, n := range list {
		if n != nil {
			out = append(out, l.typeNode(n))
		}
	}
	return out
}

// typeRef builds a TypeRef from a node carrying type arguments and its
// (possibly qualified) name.
func (l *loader) typeRef(n, name node) ast.TypeID {
	args := n.child("typeArguments")
	if args == nil {
		args = n.child("typeParameters")
	}
	return l.tree.Types.New(ast.TypeNode{
		Kind: ast.TypeRef,
		Span: l.span(n),
		Name: l.intern(entityName(name)),
		Args: l.typeList(args.list("params")),
	})
}

// entityName flattens Identifier / TSQualifiedName / MemberExpression.
func entityName(n node) string {
	switch n.typ() {
	case "Identifier":
		return n.str("name")
	case "ThisExpression", "TSThisType":
		return "this"
	case "TSQualifiedName":
		return entityName(n.child("left")) + "." + entityName(n.child("right"))
	case "MemberExpression":
		return entityName(n.child("object")) + "." + entityName(n.child("property"))
	}
	return n.typ()
}

func (l *loader) typeMembers(list []node) []ast.TypeMember {
	out := make([]ast.TypeMember, 0, len(list))
	for _, m := range list {
		if m == nil || l.err != nil {
			continue
		}
		member := ast.TypeMember{Optional: m.flag("optional"), Span: l.span(m)}
		if k := m.child("key"); k != nil {
			member.Key = l.key(k, m.flag("computed"))
		}
		member.Type = l.annotation(m)
		if !member.Type.IsValid() {
			member.Type = l.annotation(m.child("returnType"))
		}
		out = append(out, member)
	}
	return out
}

// enumType models an enum as an object type of its member names.
func (l *loader) enumType(n node) ast.TypeID {
	list := n.list("members")
	if body := n.child("body"); body != nil {
		list = body.list("members")
	}
	members := make([]ast.TypeMember, 0, len(list))
	for _, m := range list {
		if m == nil {
			continue
		}
		members = append(members, ast.TypeMember{Key: l.key(m.child("id"), m.flag("computed")), Span: l.span(m)})
	}
	return l.tree.Types.New(ast.TypeNode{Kind: ast.TypeObject, Span: l.span(n), Members: members})
}
