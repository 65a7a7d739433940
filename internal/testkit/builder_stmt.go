package testkit

import (
	"lintcore/internal/ast"
)

func (b *Builder) Block(stmts ...ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewBlock(b.next(2), stmts)
}

func (b *Builder) ExprStmt(x ast.ExprID) ast.StmtID {
	return b.T.Stmts.NewExpr(b.next(1), x)
}

func (b *Builder) Decl(name ast.PatID, init ast.ExprID) ast.DeclID {
	return b.T.NewDeclarator(b.next(1), name, init)
}

func (b *Builder) Var(kind ast.VarKind, decls ...ast.DeclID) ast.StmtID {
	return b.T.Stmts.NewVar(b.next(len(kind.String())), kind, decls)
}

// VarOf declares plain identifiers without initializers: `var a, b;`.
func (b *Builder) VarOf(kind ast.VarKind, names ...string) ast.StmtID {
	decls := make([]ast.DeclID, 0, len(names))
	for _, name := range names {
		decls = append(decls, b.Decl(b.Bind(name), ast.NoExprID))
	}
	return b.Var(kind, decls...)
}

// FnDecl is `function name(params) { body }`.
func (b *Builder) FnDecl(name string, params []ast.ParamID, body ...ast.StmtID) ast.StmtID {
	ident := b.Ident(name)
	return b.T.Stmts.NewFnDecl(b.next(8), ident, b.Func(params, body...))
}

// FnSig is a bodiless declaration: an overload or `declare function`.
func (b *Builder) FnSig(name string, params []ast.ParamID) ast.StmtID {
	ident := b.Ident(name)
	return b.T.Stmts.NewFnDecl(b.next(8), ident, b.Signature(params))
}

func (b *Builder) ClassDecl(name string, members ...ast.MemberID) ast.StmtID {
	ident := b.Ident(name)
	return b.T.Stmts.NewClassDecl(b.next(5), ident, b.Class(members...), false)
}

func (b *Builder) Return(arg ast.ExprID) ast.StmtID {
	return b.T.Stmts.NewReturn(b.next(6), arg)
}

func (b *Builder) If(test ast.ExprID, cons, alt ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewIf(b.next(2), test, cons, alt)
}

func (b *Builder) For(init ast.StmtID, test, update ast.ExprID, body ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewFor(b.next(3), ast.ForStmt{Init: init, Test: test, Update: update, Body: body})
}

func (b *Builder) ForIn(left ast.StmtID, right ast.ExprID, body ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewForIn(b.next(3), false, ast.ForInStmt{Left: left, Right: right, Body: body})
}

func (b *Builder) ForOf(left ast.StmtID, right ast.ExprID, body ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewForIn(b.next(3), true, ast.ForInStmt{Left: left, Right: right, Body: body})
}

func (b *Builder) While(test ast.ExprID, body ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewWhile(b.next(5), test, body)
}

func (b *Builder) Empty() ast.StmtID {
	return b.T.Stmts.NewEmpty(b.next(1))
}

func (b *Builder) Case(test ast.ExprID, body ...ast.StmtID) ast.SwitchCase {
	return ast.SwitchCase{Test: test, Body: body, Span: b.next(4)}
}

func (b *Builder) Switch(disc ast.ExprID, cases ...ast.SwitchCase) ast.StmtID {
	return b.T.Stmts.NewSwitch(b.next(6), disc, cases)
}

// Try builds try/catch/finally; handler or finalizer may be ast.NoStmtID.
func (b *Builder) Try(block ast.StmtID, param ast.PatID, handler, finalizer ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewTry(b.next(3), ast.TryStmt{
		Block:     block,
		Param:     param,
		Handler:   handler,
		Finalizer: finalizer,
		CatchSpan: b.next(5),
	})
}

// ExportDecl is `export <decl>`.
func (b *Builder) ExportDecl(decl ast.StmtID) ast.StmtID {
	return b.T.Stmts.NewExport(ast.StmtExportDecl, b.next(6), ast.ExportDecl{Decl: decl})
}

// ExportNamed is `export { names }`.
func (b *Builder) ExportNamed(names ...string) ast.StmtID {
	specs := make([]ast.ExportSpec, 0, len(names))
	for _, name := range names {
		id := b.Ident(name)
		specs = append(specs, ast.ExportSpec{Local: id, Exported: b.T.Strings.Intern(name), Span: b.IdentSpan(id)})
	}
	return b.T.Stmts.NewExport(ast.StmtExportNamed, b.next(6), ast.ExportDecl{Specs: specs})
}

// ImportDefault is `import name from "src"`.
func (b *Builder) ImportDefault(name, src string) ast.StmtID {
	id := b.Ident(name)
	return b.T.Stmts.NewImport(b.next(6), ast.ImportDecl{
		Specs:  []ast.ImportSpec{{Kind: ast.ImportDefault, Local: id, Span: b.IdentSpan(id)}},
		Source: src,
	})
}
