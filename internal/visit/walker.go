package visit

import "lintcore/internal/ast"

// Options configures a Walker.
type Options struct {
	// Types enables descent into type annotations, type aliases and
	// implements clauses. Off by default.
	Types bool
}

// Walker drives a Visitor over one tree. It keeps no state besides its
// configuration, so a hook may re-enter any Walk* method.
type Walker struct {
	tree *ast.Tree
	v    Visitor
	opts Options
}

func New(tree *ast.Tree, v Visitor, opts Options) *Walker {
	return &Walker{tree: tree, v: v, opts: opts}
}

// Walk visits the whole program with default options.
func Walk(tree *ast.Tree, v Visitor) {
	New(tree, v, Options{}).Walk()
}

func (w *Walker) Tree() *ast.Tree { return w.tree }

func (w *Walker) Options() Options { return w.opts }

// Walk visits every top-level statement of the program.
func (w *Walker) Walk() {
	if w == nil || w.tree == nil {
		return
	}
	w.WalkStmts(w.tree.Root.Body)
}

func (w *Walker) WalkStmts(ids []ast.StmtID) {
	for _, id := range ids {
		w.WalkStmt(id)
	}
}

func (w *Walker) WalkExprs(ids []ast.ExprID) {
	for _, id := range ids {
		w.WalkExpr(id)
	}
}

func (w *Walker) WalkStmt(id ast.StmtID) {
	if !id.IsValid() || w.tree.Stmts.Get(id) == nil {
		return
	}
	if w.v.Stmt(w, id) == Continue {
		w.StmtChildren(id)
	}
}

func (w *Walker) WalkExpr(id ast.ExprID) {
	if !id.IsValid() || w.tree.Exprs.Get(id) == nil {
		return
	}
	if w.v.Expr(w, id) == Continue {
		w.ExprChildren(id)
	}
}

func (w *Walker) WalkPat(id ast.PatID) {
	if !id.IsValid() || w.tree.Pats.Get(id) == nil {
		return
	}
	if w.v.Pat(w, id) == Continue {
		w.PatChildren(id)
	}
}

func (w *Walker) WalkFunc(id ast.FuncID) {
	if w.tree.Func(id) == nil {
		return
	}
	if w.v.Func(w, id) == Continue {
		w.FuncChildren(id)
	}
}

func (w *Walker) WalkParam(id ast.ParamID) {
	if w.tree.Param(id) == nil {
		return
	}
	if w.v.Param(w, id) == Continue {
		w.ParamChildren(id)
	}
}

func (w *Walker) WalkDeclarator(id ast.DeclID) {
	if w.tree.Declarator(id) == nil {
		return
	}
	if w.v.Declarator(w, id) == Continue {
		w.DeclaratorChildren(id)
	}
}

func (w *Walker) WalkClass(id ast.ClassID) {
	if w.tree.Class(id) == nil {
		return
	}
	if w.v.Class(w, id) == Continue {
		w.ClassChildren(id)
	}
}

func (w *Walker) WalkMember(id ast.MemberID) {
	if w.tree.Members.Get(id) == nil {
		return
	}
	if w.v.Member(w, id) == Continue {
		w.MemberChildren(id)
	}
}

func (w *Walker) WalkProp(id ast.PropID) {
	if w.tree.Props.Get(id) == nil {
		return
	}
	if w.v.Prop(w, id) == Continue {
		w.PropChildren(id)
	}
}

// WalkType is a no-op unless Options.Types is set.
func (w *Walker) WalkType(id ast.TypeID) {
	if !w.opts.Types || w.tree.Types.Get(id) == nil {
		return
	}
	if w.v.Type(w, id) == Continue {
		w.TypeChildren(id)
	}
}

// WalkKey visits the expression of a computed key; other keys are names.
func (w *Walker) WalkKey(key ast.PropKey) {
	if key.Computed() {
		w.WalkExpr(key.Expr)
	}
}
