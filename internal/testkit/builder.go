package testkit

import (
	"lintcore/internal/ast"
	"lintcore/internal/resolve"
	"lintcore/internal/source"
)

// Builder assembles ast.Tree values for tests. Every node and identifier
// gets a fresh synthetic span: spans grow monotonically in construction
// order and never overlap, so a test can match a diagnostic to the exact
// node that caused it.
type Builder struct {
	T      *ast.Tree
	File   source.FileID
	kind   ast.ProgramKind
	cursor uint32
}

// New starts a tree of the given program kind.
func New(kind ast.ProgramKind) *Builder {
	return &Builder{T: ast.NewTree(ast.Hints{}, nil), kind: kind}
}

// Script and Module are shorthands for New.
func Script() *Builder { return New(ast.ProgramScript) }
func Module() *Builder { return New(ast.ProgramModule) }

func (b *Builder) next(width int) source.Span {
	w := uint32(max(width, 1)) //nolint:gosec // test helper, widths are tiny
	sp := source.Span{File: b.File, Start: b.cursor, End: b.cursor + w}
	b.cursor += w + 1
	return sp
}

// Program installs body as the root without resolving.
func (b *Builder) Program(body ...ast.StmtID) *ast.Tree {
	b.T.SetRoot(b.kind, source.Span{File: b.File, Start: 0, End: b.cursor}, body)
	return b.T
}

// Resolve installs body as the root and runs pre-resolution.
func (b *Builder) Resolve(body ...ast.StmtID) (*ast.Tree, *resolve.Result) {
	tree := b.Program(body...)
	return tree, resolve.Program(tree)
}

// Ident allocates an identifier occurrence.
func (b *Builder) Ident(name string) ast.IdentID {
	return b.T.Ident(name, b.next(len(name)))
}

// IdentSpan returns the span of an identifier.
func (b *Builder) IdentSpan(id ast.IdentID) source.Span {
	if ident := b.T.Idents.Get(id); ident != nil {
		return ident.Span
	}
	return source.Span{}
}

// --- patterns

func (b *Builder) Bind(name string) ast.PatID {
	id := b.Ident(name)
	return b.T.Pats.NewIdent(b.IdentSpan(id), id, ast.NoTypeID)
}

// BindID is Bind that also returns the identifier.
func (b *Builder) BindID(name string) (ast.PatID, ast.IdentID) {
	id := b.Ident(name)
	return b.T.Pats.NewIdent(b.IdentSpan(id), id, ast.NoTypeID), id
}

// BindTyped binds name with a keyword type annotation.
func (b *Builder) BindTyped(name, typ string) ast.PatID {
	id := b.Ident(name)
	ann := b.T.Types.New(ast.TypeNode{Kind: ast.TypeKeyword, Span: b.next(len(typ)), Name: b.T.Strings.Intern(typ)})
	return b.T.Pats.NewIdent(b.IdentSpan(id), id, ann)
}

func (b *Builder) ArrayPat(elems ...ast.PatID) ast.PatID {
	return b.T.Pats.NewArray(b.next(2), elems, ast.NoTypeID)
}

func (b *Builder) ObjectPat(props ...ast.ObjectPatProp) ast.PatID {
	return b.T.Pats.NewObject(b.next(2), props, ast.NoTypeID)
}

// PatProp is `key: value` inside an object pattern.
func (b *Builder) PatProp(key string, value ast.PatID) ast.ObjectPatProp {
	return ast.ObjectPatProp{Key: b.Key(key), Value: value, Span: b.next(1)}
}

// ShorthandPat is `{name}` / `{name = def}` when def is valid.
func (b *Builder) ShorthandPat(name string, def ast.ExprID) ast.ObjectPatProp {
	id := b.Ident(name)
	span := b.IdentSpan(id)
	value := b.T.Pats.NewIdent(span, id, ast.NoTypeID)
	if def.IsValid() {
		value = b.T.Pats.NewAssign(b.next(1), value, def)
	}
	return ast.ObjectPatProp{
		Key:       ast.PropKey{Kind: ast.KeyIdent, Name: b.T.Strings.Intern(name), Span: span},
		Value:     value,
		Shorthand: true,
		Span:      span,
	}
}

func (b *Builder) AssignPat(left ast.PatID, right ast.ExprID) ast.PatID {
	return b.T.Pats.NewAssign(b.next(1), left, right)
}

func (b *Builder) RestPat(arg ast.PatID) ast.PatID {
	return b.T.Pats.NewRest(b.next(3), arg, ast.NoTypeID)
}

// TargetPat wraps a non-binding assignment target such as a member expression.
func (b *Builder) TargetPat(x ast.ExprID) ast.PatID {
	return b.T.Pats.NewExpr(b.next(1), x)
}

// Key is a plain identifier key.
func (b *Builder) Key(name string) ast.PropKey {
	return ast.PropKey{Kind: ast.KeyIdent, Name: b.T.Strings.Intern(name), Span: b.next(len(name))}
}

func (b *Builder) PrivateKey(name string) ast.PropKey {
	return ast.PropKey{Kind: ast.KeyPrivate, Name: b.T.Strings.Intern(name), Span: b.next(len(name) + 1)}
}

func (b *Builder) ComputedKey(x ast.ExprID) ast.PropKey {
	return ast.PropKey{Kind: ast.KeyComputed, Expr: x, Span: b.next(2)}
}
