package visit

import "lintcore/internal/ast"

// StmtChildren visits the children of a statement in source order without
// calling the Stmt hook for the statement itself.
func (w *Walker) StmtChildren(id ast.StmtID) {
	stmts := w.tree.Stmts
	stmt := stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		if block := stmts.Block(id); block != nil {
			w.WalkStmts(block.Stmts)
		}
	case ast.StmtExpr:
		if es := stmts.Expr(id); es != nil {
			w.WalkExpr(es.X)
		}
	case ast.StmtVar:
		if vd := stmts.Var(id); vd != nil {
			for _, d := range vd.Decls {
				w.WalkDeclarator(d)
			}
		}
	case ast.StmtFnDecl:
		if fd := stmts.FnDecl(id); fd != nil {
			w.WalkFunc(fd.Func)
		}
	case ast.StmtClassDecl:
		if cd := stmts.ClassDecl(id); cd != nil {
			w.WalkClass(cd.Class)
		}
	case ast.StmtReturn, ast.StmtThrow:
		if arg := stmts.Arg(id); arg != nil {
			w.WalkExpr(arg.Arg)
		}
	case ast.StmtIf:
		if is := stmts.If(id); is != nil {
			w.WalkExpr(is.Test)
			w.WalkStmt(is.Cons)
			w.WalkStmt(is.Alt)
		}
	case ast.StmtFor:
		if fs := stmts.For(id); fs != nil {
			w.WalkStmt(fs.Init)
			w.WalkExpr(fs.Test)
			w.WalkExpr(fs.Update)
			w.WalkStmt(fs.Body)
		}
	case ast.StmtForIn, ast.StmtForOf:
		if fs := stmts.ForIn(id); fs != nil {
			w.WalkStmt(fs.Left)
			w.WalkPat(fs.LeftPat)
			w.WalkExpr(fs.Right)
			w.WalkStmt(fs.Body)
		}
	case ast.StmtWhile:
		if ls := stmts.Loop(id); ls != nil {
			w.WalkExpr(ls.Test)
			w.WalkStmt(ls.Body)
		}
	case ast.StmtDoWhile:
		if ls := stmts.Loop(id); ls != nil {
			w.WalkStmt(ls.Body)
			w.WalkExpr(ls.Test)
		}
	case ast.StmtTry:
		if ts := stmts.Try(id); ts != nil {
			w.WalkStmt(ts.Block)
			w.WalkPat(ts.Param)
			w.WalkStmt(ts.Handler)
			w.WalkStmt(ts.Finalizer)
		}
	case ast.StmtSwitch:
		if ss := stmts.Switch(id); ss != nil {
			w.WalkExpr(ss.Disc)
			for i := range ss.Cases {
				w.WalkExpr(ss.Cases[i].Test)
				w.WalkStmts(ss.Cases[i].Body)
			}
		}
	case ast.StmtLabeled:
		if ls := stmts.Labeled(id); ls != nil {
			w.WalkStmt(ls.Body)
		}
	case ast.StmtExportDecl, ast.StmtExportDefault, ast.StmtExportNamed, ast.StmtExportAll:
		if ed := stmts.Export(id); ed != nil {
			w.WalkStmt(ed.Decl)
			w.WalkExpr(ed.Default)
		}
	case ast.StmtTypeAlias:
		if ta := stmts.TypeAliasDecl(id); ta != nil {
			w.WalkType(ta.Type)
		}
	case ast.StmtEmpty, ast.StmtDebugger, ast.StmtBreak, ast.StmtContinue, ast.StmtImport:
		// листья
	}
}

func (w *Walker) ExprChildren(id ast.ExprID) {
	exprs := w.tree.Exprs
	expr := exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprArray, ast.ExprSeq:
		if list := exprs.List(id); list != nil {
			w.WalkExprs(list.Elems)
		}
	case ast.ExprObject:
		if obj := exprs.Object(id); obj != nil {
			for _, p := range obj.Props {
				w.WalkProp(p)
			}
		}
	case ast.ExprFn, ast.ExprArrow:
		if fn := exprs.Fn(id); fn != nil {
			w.WalkFunc(fn.Func)
		}
	case ast.ExprClass:
		if fn := exprs.Fn(id); fn != nil {
			w.WalkClass(fn.Class)
		}
	case ast.ExprUnary, ast.ExprUpdate, ast.ExprSpread, ast.ExprParen,
		ast.ExprAwait, ast.ExprYield, ast.ExprImportCall, ast.ExprNonNull:
		if un := exprs.Unary(id); un != nil {
			w.WalkExpr(un.Arg)
		}
	case ast.ExprBinary:
		if bin := exprs.Binary(id); bin != nil {
			w.WalkExpr(bin.Left)
			w.WalkExpr(bin.Right)
		}
	case ast.ExprAssign:
		if as := exprs.Assign(id); as != nil {
			w.WalkPat(as.Target)
			w.WalkExpr(as.Value)
		}
	case ast.ExprMember:
		if m := exprs.Member(id); m != nil {
			w.WalkExpr(m.Object)
			if m.Computed {
				w.WalkExpr(m.Prop)
			}
		}
	case ast.ExprCall, ast.ExprNew:
		if call := exprs.Call(id); call != nil {
			w.WalkExpr(call.Callee)
			w.WalkExprs(call.Args)
		}
	case ast.ExprCond:
		if c := exprs.Cond(id); c != nil {
			w.WalkExpr(c.Test)
			w.WalkExpr(c.Cons)
			w.WalkExpr(c.Alt)
		}
	case ast.ExprTemplate:
		if tpl := exprs.Template(id); tpl != nil {
			w.WalkExpr(tpl.Tag)
			w.WalkExprs(tpl.Exprs)
		}
	case ast.ExprTsAs:
		if as := exprs.TsAsExpr(id); as != nil {
			w.WalkExpr(as.X)
			w.WalkType(as.Type)
		}
	case ast.ExprIdent, ast.ExprLit, ast.ExprThis, ast.ExprSuper, ast.ExprMeta:
	}
}

func (w *Walker) PatChildren(id ast.PatID) {
	pats := w.tree.Pats
	pat := pats.Get(id)
	if pat == nil {
		return
	}
	switch pat.Kind {
	case ast.PatIdent:
		if p := pats.Ident(id); p != nil {
			w.WalkType(p.TypeAnn)
		}
	case ast.PatArray:
		if p := pats.Array(id); p != nil {
			for _, elem := range p.Elems {
				w.WalkPat(elem)
			}
			w.WalkType(p.TypeAnn)
		}
	case ast.PatObject:
		if p := pats.Object(id); p != nil {
			for i := range p.Props {
				w.WalkKey(p.Props[i].Key)
				w.WalkPat(p.Props[i].Value)
			}
			w.WalkType(p.TypeAnn)
		}
	case ast.PatAssign:
		if p := pats.Assign(id); p != nil {
			w.WalkPat(p.Left)
			w.WalkExpr(p.Right)
		}
	case ast.PatRest:
		if p := pats.Rest(id); p != nil {
			w.WalkPat(p.Arg)
			w.WalkType(p.TypeAnn)
		}
	case ast.PatExpr:
		if p := pats.Expr(id); p != nil {
			w.WalkExpr(p.X)
		}
	}
}

func (w *Walker) FuncChildren(id ast.FuncID) {
	fn := w.tree.Func(id)
	if fn == nil {
		return
	}
	for _, p := range fn.Params {
		w.WalkParam(p)
	}
	w.WalkType(fn.ReturnType)
	w.WalkStmt(fn.Body)
	w.WalkExpr(fn.ExprBody)
}

func (w *Walker) ParamChildren(id ast.ParamID) {
	param := w.tree.Param(id)
	if param == nil {
		return
	}
	w.WalkExprs(param.Decorators)
	w.WalkPat(param.Pat)
}

func (w *Walker) DeclaratorChildren(id ast.DeclID) {
	decl := w.tree.Declarator(id)
	if decl == nil {
		return
	}
	w.WalkPat(decl.Name)
	w.WalkExpr(decl.Init)
}

func (w *Walker) ClassChildren(id ast.ClassID) {
	class := w.tree.Class(id)
	if class == nil {
		return
	}
	w.WalkExprs(class.Decorators)
	w.WalkExpr(class.Super)
	for _, t := range class.Implements {
		w.WalkType(t)
	}
	for _, m := range class.Members {
		w.WalkMember(m)
	}
}

func (w *Walker) MemberChildren(id ast.MemberID) {
	members := w.tree.Members
	member := members.Get(id)
	if member == nil {
		return
	}
	switch member.Kind {
	case ast.MemberConstructor, ast.MemberMethod, ast.MemberPrivateMethod:
		if m := members.Method(id); m != nil {
			w.WalkExprs(m.Decorators)
			w.WalkKey(m.Key)
			w.WalkFunc(m.Func)
		}
	case ast.MemberProp, ast.MemberPrivateProp:
		if p := members.Prop(id); p != nil {
			w.WalkExprs(p.Decorators)
			w.WalkKey(p.Key)
			w.WalkType(p.TypeAnn)
			w.WalkExpr(p.Value)
		}
	case ast.MemberStaticBlock:
		if sb := members.StaticBlock(id); sb != nil {
			w.WalkStmt(sb.Body)
		}
	case ast.MemberEmpty:
	}
}

func (w *Walker) PropChildren(id ast.PropID) {
	prop := w.tree.Props.Get(id)
	if prop == nil {
		return
	}
	switch prop.Kind {
	case ast.PropKeyValue:
		w.WalkKey(prop.Key)
		w.WalkExpr(prop.Value)
	case ast.PropMethod, ast.PropGetter, ast.PropSetter:
		w.WalkKey(prop.Key)
		w.WalkFunc(prop.Func)
	case ast.PropSpread:
		w.WalkExpr(prop.Value)
	case ast.PropShorthand:
	}
}

func (w *Walker) TypeChildren(id ast.TypeID) {
	node := w.tree.Types.Get(id)
	if node == nil {
		return
	}
	for _, arg := range node.Args {
		w.WalkType(arg)
	}
	w.WalkType(node.Elem)
	for _, p := range node.Params {
		w.WalkPat(p)
	}
	for i := range node.Members {
		w.WalkKey(node.Members[i].Key)
		w.WalkType(node.Members[i].Type)
	}
}
