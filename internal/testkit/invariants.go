package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lintcore/internal/ast"
	"lintcore/internal/resolve"
	"lintcore/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a tree:
// 1) the root span is non-inverted and, when sf is given, within content bounds
// 2) every statement and identifier span is non-inverted and inside the root
// 3) the root span covers the union of top-level statement spans
func CheckSpanInvariants(tree *ast.Tree, sf *source.File) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	root := tree.Root.Span
	if root.End < root.Start {
		return fmt.Errorf("root span is inverted: %v", root)
	}
	if sf != nil {
		if root.File != sf.ID {
			return fmt.Errorf("root span points to different file id: got=%d want=%d", root.File, sf.ID)
		}
		lenContent, err := safecast.Conv[uint32](len(sf.Content))
		if err != nil {
			return fmt.Errorf("len content overflow: %w", err)
		}
		if root.End > lenContent {
			return fmt.Errorf("root span end beyond content: %d > %d", root.End, lenContent)
		}
	}

	inside := func(what string, sp source.Span) error {
		if sp.End < sp.Start {
			return fmt.Errorf("%s span is inverted: %v", what, sp)
		}
		if sp.File != root.File {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, root.File)
		}
		if sp.Start < root.Start || sp.End > root.End {
			return fmt.Errorf("%s span %v is outside root span %v", what, sp, root)
		}
		return nil
	}

	for i, stmt := range tree.Stmts.Arena.Slice() {
		if err := inside(fmt.Sprintf("stmt #%d (%s)", i+1, stmt.Kind), stmt.Span); err != nil {
			return err
		}
	}
	for i, ident := range tree.Idents.Arena.Slice() {
		if err := inside(fmt.Sprintf("ident #%d", i+1), ident.Span); err != nil {
			return err
		}
	}

	var union source.Span
	for i, id := range tree.Root.Body {
		stmt := tree.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil top-level stmt for id=%d", id)
		}
		if i == 0 {
			union = stmt.Span
		} else {
			union = union.Cover(stmt.Span)
		}
	}
	if len(tree.Root.Body) > 0 && (union.Start < root.Start || union.End > root.End) {
		return fmt.Errorf("root span %v does not cover union of statements %v", root, union)
	}
	return nil
}

// CheckMarks verifies the scope table and that every identifier it records
// carries the mark of its symbol's scope.
func CheckMarks(tree *ast.Tree, res *resolve.Result) error {
	if res == nil || res.Table == nil {
		return fmt.Errorf("nil resolve result")
	}
	return res.Table.Validate(tree.Idents)
}
