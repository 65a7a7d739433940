package visit

import "lintcore/internal/ast"

// BindingIdents returns the identifiers bound by a pattern in source order.
// Defaults, computed keys and non-binding targets contribute nothing.
func BindingIdents(tree *ast.Tree, pat ast.PatID) []ast.IdentID {
	return AppendBindingIdents(nil, tree, pat)
}

// AppendBindingIdents is BindingIdents appending into dst.
func AppendBindingIdents(dst []ast.IdentID, tree *ast.Tree, pat ast.PatID) []ast.IdentID {
	node := tree.Pats.Get(pat)
	if node == nil {
		return dst
	}
	switch node.Kind {
	case ast.PatIdent:
		if p := tree.Pats.Ident(pat); p != nil && p.Ident.IsValid() {
			dst = append(dst, p.Ident)
		}
	case ast.PatArray:
		if p := tree.Pats.Array(pat); p != nil {
			for _, elem := range p.Elems {
				dst = AppendBindingIdents(dst, tree, elem)
			}
		}
	case ast.PatObject:
		if p := tree.Pats.Object(pat); p != nil {
			for i := range p.Props {
				dst = AppendBindingIdents(dst, tree, p.Props[i].Value)
			}
		}
	case ast.PatAssign:
		if p := tree.Pats.Assign(pat); p != nil {
			dst = AppendBindingIdents(dst, tree, p.Left)
		}
	case ast.PatRest:
		if p := tree.Pats.Rest(pat); p != nil {
			dst = AppendBindingIdents(dst, tree, p.Arg)
		}
	case ast.PatExpr:
	}
	return dst
}
