package estree_test

import (
	"lintcore/internal/ast"
	"lintcore/internal/visit"
)

func bindingNames(tree *ast.Tree, pat ast.PatID) []string {
	ids := visit.BindingIdents(tree, pat)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = tree.Name(id)
	}
	return out
}
