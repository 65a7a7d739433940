package estree

import (
	"lintcore/internal/ast"
	"lintcore/internal/source"
)

func (l *loader) stmtList(list []node) []ast.StmtID {
	out := make([]ast.StmtID, 0, len(list))
	for _, n := range list {
		if l.err != nil {
			return nil
		}
		if n == nil {
			continue
		}
		out = append(out, l.stmt(n))
	}
	return out
}

// optStmt converts a nullable statement field.
func (l *loader) optStmt(n node) ast.StmtID {
	if n == nil {
		return ast.NoStmtID
	}
	return l.stmt(n)
}

func (l *loader) stmt(n node) ast.StmtID {
	if l.err != nil {
		return ast.NoStmtID
	}
	stmts := l.tree.Stmts
	sp := l.span(n)
	switch n.typ() {
	case "ExpressionStatement":
		return stmts.NewExpr(sp, l.expr(n.child("expression")))
	case "BlockStatement":
		return stmts.NewBlock(sp, l.stmtList(n.list("body")))
	case "EmptyStatement":
		return stmts.NewEmpty(sp)
	case "DebuggerStatement":
		return stmts.NewDebugger(sp)
	case "VariableDeclaration":
		return l.varDecl(n)
	case "FunctionDeclaration", "TSDeclareFunction":
		return stmts.NewFnDecl(sp, l.ident(n.child("id")), l.fn(n))
	case "ClassDeclaration":
		return stmts.NewClassDecl(sp, l.ident(n.child("id")), l.class(n), n.flag("declare"))
	case "ReturnStatement":
		return stmts.NewReturn(sp, l.optExpr(n.child("argument")))
	case "ThrowStatement":
		return stmts.NewThrow(sp, l.expr(n.child("argument")))
	case "IfStatement":
		return stmts.NewIf(sp, l.expr(n.child("test")), l.stmt(n.child("consequent")), l.optStmt(n.child("alternate")))
	case "ForStatement":
		return stmts.NewFor(sp, ast.ForStmt{
			Init:   l.forInit(n.child("init")),
			Test:   l.optExpr(n.child("test")),
			Update: l.optExpr(n.child("update")),
			Body:   l.stmt(n.child("body")),
		})
	case "ForInStatement", "ForOfStatement":
		data := ast.ForInStmt{Await: n.flag("await")}
		left := n.child("left")
		if left.typ() == "VariableDeclaration" {
			data.Left = l.varDecl(left)
		} else {
			data.LeftPat = l.target(left)
		}
		data.Right = l.expr(n.child("right"))
		data.Body = l.stmt(n.child("body"))
		return stmts.NewForIn(sp, n.typ() == "ForOfStatement", data)
	case "WhileStatement":
		return stmts.NewWhile(sp, l.expr(n.child("test")), l.stmt(n.child("body")))
	case "DoWhileStatement":
		return stmts.NewDoWhile(sp, l.stmt(n.child("body")), l.expr(n.child("test")))
	case "TryStatement":
		data := ast.TryStmt{Block: l.stmt(n.child("block"))}
		if h := n.child("handler"); h != nil {
			data.CatchSpan = l.span(h)
			if p := h.child("param"); p != nil {
				data.Param = l.pat(p)
			}
			data.Handler = l.stmt(h.child("body"))
		}
		data.Finalizer = l.optStmt(n.child("finalizer"))
		return stmts.NewTry(sp, data)
	case "SwitchStatement":
		disc := l.expr(n.child("discriminant"))
		cases := make([]ast.SwitchCase, 0, len(n.list("cases")))
		for _, c := range n.list("cases") {
			if c == nil {
				continue
			}
			cases = append(cases, ast.SwitchCase{
				Test: l.optExpr(c.child("test")),
				Body: l.stmtList(c.list("consequent")),
				Span: l.span(c),
			})
		}
		return stmts.NewSwitch(sp, disc, cases)
	case "LabeledStatement":
		return stmts.NewLabeled(sp, l.ident(n.child("label")), l.stmt(n.child("body")))
	case "BreakStatement":
		return stmts.NewBreak(sp, l.ident(n.child("label")))
	case "ContinueStatement":
		return stmts.NewContinue(sp, l.ident(n.child("label")))
	case "ImportDeclaration":
		return l.importDecl(n)
	case "ExportNamedDeclaration", "ExportDefaultDeclaration", "ExportAllDeclaration", "TSExportAssignment":
		return l.exportDecl(n)
	case "TSTypeAliasDeclaration":
		return stmts.NewTypeAlias(sp, l.nameOf(n.child("id")), l.typeNode(n.child("typeAnnotation")))
	case "TSInterfaceDeclaration":
		body := n.child("body")
		typ := l.tree.Types.New(ast.TypeNode{Kind: ast.TypeObject, Span: l.span(body), Members: l.typeMembers(body.list("body"))})
		return stmts.NewTypeAlias(sp, l.nameOf(n.child("id")), typ)
	case "TSEnumDeclaration":
		return stmts.NewTypeAlias(sp, l.nameOf(n.child("id")), l.enumType(n))
	}
	l.unsupported(n, "statement position")
	return ast.NoStmtID
}

func (l *loader) nameOf(n node) source.StringID {
	return l.intern(n.str("name"))
}

func (l *loader) varDecl(n node) ast.StmtID {
	var kind ast.VarKind
	switch n.str("kind") {
	case "var":
		kind = ast.VarVar
	case "let":
		kind = ast.VarLet
	case "const":
		kind = ast.VarConst
	default:
		l.failf(n, "unsupported declaration kind %q", n.str("kind"))
		return ast.NoStmtID
	}
	list := n.list("declarations")
	decls := make([]ast.DeclID, 0, len(list))
	for _, d := range list {
		if d == nil || l.err != nil {
			continue
		}
		if d.typ() != "VariableDeclarator" {
			l.unsupported(d, "variable declaration")
			return ast.NoStmtID
		}
		decls = append(decls, l.tree.NewDeclarator(l.span(d), l.pat(d.child("id")), l.optExpr(d.child("init"))))
	}
	id := l.tree.Stmts.NewVar(l.span(n), kind, decls)
	if vd := l.tree.Stmts.Var(id); vd != nil {
		vd.Declare = n.flag("declare")
	}
	return id
}

// forInit wraps an expression initializer into an expression statement.
func (l *loader) forInit(n node) ast.StmtID {
	if n == nil {
		return ast.NoStmtID
	}
	if n.typ() == "VariableDeclaration" {
		return l.varDecl(n)
	}
	return l.tree.Stmts.NewExpr(l.span(n), l.expr(n))
}

func (l *loader) importDecl(n node) ast.StmtID {
	decl := ast.ImportDecl{
		Source:   n.child("source").str("value"),
		TypeOnly: n.str("importKind") == "type",
	}
	for _, s := range n.list("specifiers") {
		if s == nil {
			continue
		}
		spec := ast.ImportSpec{Local: l.ident(s.child("local")), Span: l.span(s)}
		switch s.typ() {
		case "ImportSpecifier":
			spec.Kind = ast.ImportNamed
			spec.Imported = l.intern(moduleName(s.child("imported")))
		case "ImportDefaultSpecifier":
			spec.Kind = ast.ImportDefault
		case "ImportNamespaceSpecifier":
			spec.Kind = ast.ImportNamespace
		default:
			l.unsupported(s, "import specifiers")
			return ast.NoStmtID
		}
		decl.Specs = append(decl.Specs, spec)
	}
	return l.tree.Stmts.NewImport(l.span(n), decl)
}

// moduleName reads an export/import name that may be an Identifier or a
// string literal (`export { a as "a-b" }`).
func moduleName(n node) string {
	if n.typ() == "Identifier" {
		return n.str("name")
	}
	s, _ := n["value"].(string)
	return s
}

func (l *loader) exportDecl(n node) ast.StmtID {
	stmts := l.tree.Stmts
	sp := l.span(n)
	switch n.typ() {
	case "ExportAllDeclaration":
		return stmts.NewExport(ast.StmtExportAll, sp, ast.ExportDecl{Source: n.child("source").str("value")})
	case "TSExportAssignment":
		return stmts.NewExport(ast.StmtExportDefault, sp, ast.ExportDecl{Default: l.expr(n.child("expression"))})
	case "ExportDefaultDeclaration":
		d := n.child("declaration")
		switch d.typ() {
		case "FunctionDeclaration", "ClassDeclaration", "TSDeclareFunction", "TSInterfaceDeclaration":
			return stmts.NewExport(ast.StmtExportDefault, sp, ast.ExportDecl{Decl: l.stmt(d)})
		}
		return stmts.NewExport(ast.StmtExportDefault, sp, ast.ExportDecl{Default: l.expr(d)})
	}

	if d := n.child("declaration"); d != nil {
		return stmts.NewExport(ast.StmtExportDecl, sp, ast.ExportDecl{Decl: l.stmt(d)})
	}
	src := ""
	if s := n.child("source"); s != nil {
		src = s.str("value")
	}
	var specs []ast.ExportSpec
	for _, s := range n.list("specifiers") {
		if s == nil {
			continue
		}
		local := s.child("local")
		spec := ast.ExportSpec{Exported: l.intern(moduleName(s.child("exported"))), Span: l.span(s)}
		if local.typ() == "Identifier" {
			spec.Local = l.ident(local)
		}
		specs = append(specs, spec)
	}
	return stmts.NewExport(ast.StmtExportNamed, sp, ast.ExportDecl{Specs: specs, Source: src})
}
