package rules

import (
	"lintcore/internal/ast"
	"lintcore/internal/diag"
	"lintcore/internal/source"
	"lintcore/internal/visit"
)

const (
	NoRedeclareCode    = "no-redeclare"
	NoRedeclareMessage = "Redeclaration is not allowed"
)

// NoRedeclare reports a binding declared twice in the same scope. Scope
// awareness comes entirely from the symbol identity written into every
// identifier by pre-resolution: the rule keeps one flat set per run.
type NoRedeclare struct{}

func (NoRedeclare) Code() string   { return NoRedeclareCode }
func (NoRedeclare) Tags() []string { return []string{TagRecommended} }

func (NoRedeclare) Docs() string {
	return "Disallows declaring the same variable, function or parameter twice in one scope."
}

func (r NoRedeclare) Run(sink diag.Reporter, tree *ast.Tree) {
	v := &redeclareVisitor{
		sink:     sink,
		tree:     tree,
		bindings: make(map[ast.SymbolKey]source.Span),
	}
	visit.New(tree, v, visit.Options{}).Walk()
}

type redeclareVisitor struct {
	visit.Default
	sink diag.Reporter
	tree *ast.Tree
	// первое объявление каждого ключа, для заметки
	bindings map[ast.SymbolKey]source.Span
	scratch  []ast.IdentID
}

func (v *redeclareVisitor) declare(id ast.IdentID) {
	ident := v.tree.Idents.Get(id)
	if ident == nil {
		return
	}
	key := ident.Key()
	if first, seen := v.bindings[key]; seen {
		diag.ReportWarning(v.sink, NoRedeclareCode, ident.Span, NoRedeclareMessage).
			WithNote(first, "previously declared here").
			Emit()
		return
	}
	v.bindings[key] = ident.Span
}

func (v *redeclareVisitor) declarePat(pat ast.PatID) {
	v.scratch = visit.AppendBindingIdents(v.scratch[:0], v.tree, pat)
	for _, id := range v.scratch {
		v.declare(id)
	}
}

func (v *redeclareVisitor) Stmt(_ *visit.Walker, id ast.StmtID) visit.Action {
	fd := v.tree.Stmts.FnDecl(id)
	if fd == nil {
		return visit.Continue
	}
	// overload signatures and `declare function` take no part
	if fn := v.tree.Func(fd.Func); fn == nil || !fn.HasBody() {
		return visit.Skip
	}
	v.declare(fd.Name)
	return visit.Continue
}

func (v *redeclareVisitor) Declarator(_ *visit.Walker, id ast.DeclID) visit.Action {
	if decl := v.tree.Declarator(id); decl != nil {
		v.declarePat(decl.Name)
	}
	return visit.Continue
}

func (v *redeclareVisitor) Param(_ *visit.Walker, id ast.ParamID) visit.Action {
	if param := v.tree.Param(id); param != nil {
		v.declarePat(param.Pat)
	}
	return visit.Continue
}

// Member: a class field name is not a binding, only its computed key and
// initializer are inspected.
func (v *redeclareVisitor) Member(w *visit.Walker, id ast.MemberID) visit.Action {
	prop := v.tree.Members.Prop(id)
	if prop == nil {
		return visit.Continue
	}
	w.WalkKey(prop.Key)
	w.WalkExpr(prop.Value)
	return visit.Skip
}
