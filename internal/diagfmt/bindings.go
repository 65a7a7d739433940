package diagfmt

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"lintcore/internal/ast"
	"lintcore/internal/resolve"
	"lintcore/internal/source"
)

// BindingRow is one declaring identifier with the symbol identity
// pre-resolution gave it.
type BindingRow struct {
	Name   string
	Mark   ast.Mark
	Kind   string
	Scope  string
	Line   uint32
	Col    uint32
	Refs   int
	Repeat bool // not the first declaration of its symbol
}

// BindingRows lists declarations in source order.
func BindingRows(tree *ast.Tree, res *resolve.Result, fs *source.FileSet) []BindingRow {
	var rows []BindingRow
	type ordered struct {
		row   BindingRow
		start uint32
	}
	var all []ordered
	for _, sym := range res.Table.Symbols.Data() {
		scope := res.Table.Scopes.Get(sym.Scope)
		scopeKind := "?"
		if scope != nil {
			scopeKind = scope.Kind.String()
		}
		for i, id := range sym.Decls {
			ident := tree.Idents.Get(id)
			if ident == nil {
				continue
			}
			pos, _ := fs.Resolve(ident.Span)
			all = append(all, ordered{
				row: BindingRow{
					Name:   tree.Name(id),
					Mark:   ident.Mark,
					Kind:   sym.Kind.String(),
					Scope:  scopeKind,
					Line:   pos.Line,
					Col:    pos.Col,
					Refs:   len(sym.Refs),
					Repeat: i > 0,
				},
				start: ident.Span.Start,
			})
		}
	}
	slices.SortStableFunc(all, func(a, b ordered) int {
		return cmp.Compare(a.start, b.start)
	})
	for _, o := range all {
		rows = append(rows, o.row)
	}
	return rows
}

// Bindings writes one line per declaration:
//
//	1:5   a#1     var    global  refs=2
//	3:9   a#1     var    global  refs=2  (redeclared)
func Bindings(w io.Writer, tree *ast.Tree, res *resolve.Result, fs *source.FileSet) error {
	for _, r := range BindingRows(tree, res, fs) {
		suffix := ""
		if r.Repeat {
			suffix = "  (redeclared)"
		}
		key := fmt.Sprintf("%s#%d", r.Name, r.Mark)
		if _, err := fmt.Fprintf(w, "%-7s %-16s %-9s %-9s refs=%d%s\n",
			fmt.Sprintf("%d:%d", r.Line, r.Col), key, r.Kind, r.Scope, r.Refs, suffix); err != nil {
			return err
		}
	}
	return nil
}
