package resolve

import (
	"lintcore/internal/ast"
	"lintcore/internal/source"
	"lintcore/internal/visit"
)

// enter allocates the scope of owner in the declare phase and re-pushes the
// same scope in the reference phase.
func (pr *programResolver) enter(kind ScopeKind, owner ScopeOwner, span source.Span) ScopeID {
	if pr.phase == phaseDeclare {
		id := pr.res.Enter(kind, owner, span)
		pr.scopes[owner] = id
		return id
	}
	id := pr.scopes[owner]
	pr.res.Reenter(id)
	return id
}

func (pr *programResolver) declarePat(scope ScopeID, pat ast.PatID, kind SymbolKind) {
	if pr.phase != phaseDeclare {
		return
	}
	pr.scratch = visit.AppendBindingIdents(pr.scratch[:0], pr.tree, pat)
	for _, id := range pr.scratch {
		pr.res.Declare(scope, id, pr.tree.Idents, kind)
	}
}

func (pr *programResolver) declare(scope ScopeID, id ast.IdentID, kind SymbolKind) {
	if pr.phase != phaseDeclare || !id.IsValid() {
		return
	}
	pr.res.Declare(scope, id, pr.tree.Idents, kind)
}

func (pr *programResolver) reference(id ast.IdentID) {
	if pr.phase != phaseReference || !id.IsValid() {
		return
	}
	if _, ok := pr.res.Reference(id, pr.tree.Idents); !ok {
		pr.unresolved++
	}
}

func (pr *programResolver) Stmt(w *visit.Walker, id ast.StmtID) visit.Action {
	stmts := pr.tree.Stmts
	stmt := stmts.Get(id)
	owner := ScopeOwner{Kind: ScopeOwnerStmt, Stmt: id}
	switch stmt.Kind {
	case ast.StmtBlock:
		scope := pr.enter(ScopeBlock, owner, stmt.Span)
		w.StmtChildren(id)
		pr.res.Leave(scope)
		return visit.Skip

	case ast.StmtFor, ast.StmtForIn, ast.StmtForOf:
		scope := pr.enter(ScopeBlock, owner, stmt.Span)
		w.StmtChildren(id)
		pr.res.Leave(scope)
		return visit.Skip

	case ast.StmtSwitch:
		ss := stmts.Switch(id)
		w.WalkExpr(ss.Disc)
		scope := pr.enter(ScopeBlock, owner, stmt.Span)
		for i := range ss.Cases {
			w.WalkExpr(ss.Cases[i].Test)
			w.WalkStmts(ss.Cases[i].Body)
		}
		pr.res.Leave(scope)
		return visit.Skip

	case ast.StmtTry:
		ts := stmts.Try(id)
		w.WalkStmt(ts.Block)
		if ts.Handler.IsValid() {
			// параметр catch и тело делят одну область
			scope := pr.enter(ScopeCatch, owner, ts.CatchSpan)
			pr.declarePat(scope, ts.Param, SymbolCatch)
			w.WalkPat(ts.Param)
			w.StmtChildren(ts.Handler)
			pr.res.Leave(scope)
		}
		w.WalkStmt(ts.Finalizer)
		return visit.Skip

	case ast.StmtVar:
		vd := stmts.Var(id)
		scope := pr.res.CurrentScope()
		if vd.Kind == ast.VarVar {
			scope = pr.res.HoistScope()
		}
		for _, did := range vd.Decls {
			if decl := pr.tree.Declarator(did); decl != nil {
				pr.declarePat(scope, decl.Name, symbolKindOf(vd.Kind))
			}
		}

	case ast.StmtFnDecl:
		fd := stmts.FnDecl(id)
		pr.declare(pr.res.CurrentScope(), fd.Name, SymbolFunction)

	case ast.StmtClassDecl:
		cd := stmts.ClassDecl(id)
		pr.declare(pr.res.CurrentScope(), cd.Name, SymbolClass)

	case ast.StmtImport:
		for _, spec := range stmts.Import(id).Specs {
			pr.declare(pr.res.CurrentScope(), spec.Local, SymbolImport)
		}

	case ast.StmtExportNamed:
		ed := stmts.Export(id)
		if ed.Source == "" {
			for _, spec := range ed.Specs {
				pr.reference(spec.Local)
			}
		}
	}
	return visit.Continue
}

func (pr *programResolver) Expr(w *visit.Walker, id ast.ExprID) visit.Action {
	exprs := pr.tree.Exprs
	expr := exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		pr.reference(exprs.Ident(id).Ident)
	case ast.ExprFn, ast.ExprClass:
		fn := exprs.Fn(id)
		if !fn.Name.IsValid() {
			return visit.Continue
		}
		kind := SymbolFunction
		if expr.Kind == ast.ExprClass {
			kind = SymbolClass
		}
		scope := pr.enter(ScopeName, ScopeOwner{Kind: ScopeOwnerExpr, Expr: id}, expr.Span)
		pr.declare(scope, fn.Name, kind)
		w.ExprChildren(id)
		pr.res.Leave(scope)
		return visit.Skip
	}
	return visit.Continue
}

// Pat: an identifier pattern without a mark after the declare phase is an
// assignment target, i.e. a reference.
func (pr *programResolver) Pat(_ *visit.Walker, id ast.PatID) visit.Action {
	if pr.phase != phaseReference {
		return visit.Continue
	}
	p := pr.tree.Pats.Ident(id)
	if p == nil {
		return visit.Continue
	}
	if ident := pr.tree.Idents.Get(p.Ident); ident != nil && ident.Mark == ast.NoMark {
		pr.reference(p.Ident)
	}
	return visit.Continue
}

func (pr *programResolver) Func(w *visit.Walker, id ast.FuncID) visit.Action {
	fn := pr.tree.Func(id)
	scope := pr.enter(ScopeFunction, ScopeOwner{Kind: ScopeOwnerFunc, Func: id}, fn.Span)
	for _, p := range fn.Params {
		w.WalkParam(p)
	}
	w.WalkType(fn.ReturnType)
	// тело функции разделяет область с параметрами
	w.StmtChildren(fn.Body)
	w.WalkExpr(fn.ExprBody)
	pr.res.Leave(scope)
	return visit.Skip
}

func (pr *programResolver) Param(_ *visit.Walker, id ast.ParamID) visit.Action {
	if param := pr.tree.Param(id); param != nil {
		pr.declarePat(pr.res.CurrentScope(), param.Pat, SymbolParam)
	}
	return visit.Continue
}

func (pr *programResolver) Member(w *visit.Walker, id ast.MemberID) visit.Action {
	sb := pr.tree.Members.StaticBlock(id)
	if sb == nil {
		return visit.Continue
	}
	member := pr.tree.Members.Get(id)
	scope := pr.enter(ScopeFunction, ScopeOwner{Kind: ScopeOwnerMember, Member: id}, member.Span)
	w.StmtChildren(sb.Body)
	pr.res.Leave(scope)
	return visit.Skip
}

func (pr *programResolver) Prop(_ *visit.Walker, id ast.PropID) visit.Action {
	if prop := pr.tree.Props.Get(id); prop != nil && prop.Kind == ast.PropShorthand {
		pr.reference(prop.Ident)
	}
	return visit.Continue
}
