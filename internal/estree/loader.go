package estree

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lintcore/internal/ast"
	"lintcore/internal/source"
)

// NodeError reports the first node the loader could not convert.
type NodeError struct {
	Type string
	Span source.Span
	Msg  string
}

func (e *NodeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("at %d..%d: %s", e.Span.Start, e.Span.End, e.Msg)
	}
	return fmt.Sprintf("%s at %d..%d: %s", e.Type, e.Span.Start, e.Span.End, e.Msg)
}

// loader converts one Program. Conversion stops at the first error: after
// err is set every method returns zero ids and the tree is discarded.
type loader struct {
	tree  *ast.Tree
	file  *source.File
	utf16 []uint32 // utf16 index -> byte offset; nil when offsets are bytes
	err   error
}

func newLoader(file *source.File, utf16 bool) *loader {
	l := &loader{tree: ast.NewTree(ast.Hints{}, nil), file: file}
	if utf16 && len(file.Content) > 0 {
		l.utf16 = utf16Table(file.Content)
	}
	return l
}

func (l *loader) failf(n node, format string, args ...any) {
	if l.err != nil {
		return
	}
	l.err = &NodeError{Type: n.typ(), Span: l.span(n), Msg: fmt.Sprintf(format, args...)}
}

func (l *loader) unsupported(n node, where string) {
	if n == nil {
		l.failf(n, "missing %s", where)
		return
	}
	l.failf(n, "unsupported node in %s", where)
}

func (l *loader) program(n node) *ast.Tree {
	kind := ast.ProgramScript
	if n.str("sourceType") == "module" {
		kind = ast.ProgramModule
	}
	body := l.stmtList(n.list("body"))
	l.tree.SetRoot(kind, l.span(n), body)
	return l.tree
}

// span reads start/end (acorn, espree) or range (typescript-estree).
func (l *loader) span(n node) source.Span {
	sp := source.Span{File: l.file.ID}
	if n == nil {
		return sp
	}
	start, okStart := number(n["start"])
	end, okEnd := number(n["end"])
	if !okStart || !okEnd {
		r, _ := n["range"].([]any)
		if len(r) != 2 {
			return sp
		}
		start, okStart = number(r[0])
		end, okEnd = number(r[1])
		if !okStart || !okEnd {
			return sp
		}
	}
	s, errS := safecast.Conv[uint32](start)
	e, errE := safecast.Conv[uint32](end)
	if errS != nil || errE != nil || e < s {
		if l.err == nil {
			l.err = &NodeError{Type: n.typ(), Msg: fmt.Sprintf("invalid span %d..%d", start, end)}
		}
		return sp
	}
	sp.Start, sp.End = l.offset(s), l.offset(e)
	return sp
}

func (l *loader) offset(off uint32) uint32 {
	if l.utf16 == nil {
		return off
	}
	if int(off) >= len(l.utf16) {
		return l.utf16[len(l.utf16)-1]
	}
	return l.utf16[off]
}

// utf16Table maps every UTF-16 code unit index (plus the end) to the byte
// offset of the rune containing it.
func utf16Table(content []byte) []uint32 {
	table := make([]uint32, 0, len(content)+1)
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		at := uint32(i) //nolint:gosec // file size bounded by FileSet.Add
		table = append(table, at)
		if r >= 0x10000 {
			table = append(table, at)
		}
		i += size
	}
	end, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("source too large: %w", err))
	}
	return append(table, end)
}

// ident allocates an identifier from an Identifier (or JSXIdentifier-like)
// node; nil gives NoIdentID.
func (l *loader) ident(n node) ast.IdentID {
	if n == nil || l.err != nil {
		return ast.NoIdentID
	}
	switch n.typ() {
	case "Identifier", "PrivateIdentifier":
	default:
		l.failf(n, "expected Identifier")
		return ast.NoIdentID
	}
	name := n.str("name")
	if name == "" {
		l.failf(n, "identifier without name")
		return ast.NoIdentID
	}
	return l.tree.Ident(name, l.span(n))
}

func (l *loader) intern(s string) source.StringID {
	return l.tree.Strings.Intern(s)
}

// key converts a property/member key.
func (l *loader) key(n node, computed bool) ast.PropKey {
	sp := l.span(n)
	if n == nil {
		l.failf(n, "missing key")
		return ast.PropKey{}
	}
	if computed {
		return ast.PropKey{Kind: ast.KeyComputed, Expr: l.expr(n), Span: sp}
	}
	switch n.typ() {
	case "Identifier":
		return ast.PropKey{Kind: ast.KeyIdent, Name: l.intern(n.str("name")), Span: sp}
	case "PrivateIdentifier", "PrivateName":
		name := n.str("name")
		if id := n.child("id"); id != nil {
			name = id.str("name")
		}
		return ast.PropKey{Kind: ast.KeyPrivate, Name: l.intern(name), Span: sp}
	case "Literal", "StringLiteral", "NumericLiteral":
		switch v := n["value"].(type) {
		case string:
			return ast.PropKey{Kind: ast.KeyString, Name: l.intern(v), Span: sp}
		default:
			return ast.PropKey{Kind: ast.KeyNumber, Name: l.intern(rawLiteral(v)), Span: sp}
		}
	}
	// вычисляемые ключи без флага computed (старые парсеры) считаем выражением
	return ast.PropKey{Kind: ast.KeyComputed, Expr: l.expr(n), Span: sp}
}

func (l *loader) decorators(n node) []ast.ExprID {
	list := n.list("decorators")
	if len(list) == 0 {
		return nil
	}
	out := make([]ast.ExprID, 0, len(list))
	for _, d := range list {
		if d == nil {
			continue
		}
		out = append(out, l.expr(d.child("expression")))
	}
	return out
}
