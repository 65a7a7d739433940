package estree_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"lintcore/internal/ast"
	"lintcore/internal/diag"
	"lintcore/internal/estree"
	"lintcore/internal/resolve"
	"lintcore/internal/rules"
	"lintcore/internal/source"
)

type obj = map[string]any

func at(n obj, start, end int) obj {
	n["start"] = start
	n["end"] = end
	return n
}

func ident(name string, start int) obj {
	return at(obj{"type": "Identifier", "name": name}, start, start+len(name))
}

func program(sourceType string, end int, body ...obj) obj {
	list := make([]any, len(body))
	for i, b := range body {
		list[i] = b
	}
	return at(obj{"type": "Program", "sourceType": sourceType, "body": list}, 0, end)
}

func varDecl(kind string, start, end int, id obj, init any) obj {
	decl := at(obj{"type": "VariableDeclarator", "id": id, "init": init}, id["start"].(int), end)
	return at(obj{"type": "VariableDeclaration", "kind": kind, "declarations": []any{decl}}, start, end)
}

func block(start, end int, body ...obj) obj {
	list := make([]any, len(body))
	for i, b := range body {
		list[i] = b
	}
	return at(obj{"type": "BlockStatement", "body": list}, start, end)
}

func decode(t *testing.T, doc obj) (*estree.Document, *source.FileSet) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fs := source.NewFileSet()
	d, err := estree.Decode(fs, "tree.json", data, estree.EncodingJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return d, fs
}

func lint(t *testing.T, tree *ast.Tree, rule rules.Rule) []diag.Diagnostic {
	t.Helper()
	resolve.Program(tree)
	bag := diag.NewBag()
	rule.Run(diag.BagReporter{Bag: bag}, tree)
	return bag.Items()
}

// function f(a) { var a; }
func TestParamRedeclaredByVar(t *testing.T) {
	fn := at(obj{
		"type":   "FunctionDeclaration",
		"id":     ident("f", 9),
		"params": []any{ident("a", 11)},
		"body":   block(14, 24, varDecl("var", 16, 22, ident("a", 20), nil)),
	}, 0, 24)
	doc, _ := decode(t, program("script", 24, fn))
	if doc.Tree.Root.Kind != ast.ProgramScript {
		t.Fatalf("expected script root, got %s", doc.Tree.Root.Kind)
	}
	diags := lint(t, doc.Tree, rules.NoRedeclare{})
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if got := diags[0].Primary; got.Start != 20 || got.End != 21 {
		t.Fatalf("unexpected span %v", got)
	}
	if len(diags[0].Notes) != 1 || diags[0].Notes[0].Span.Start != 11 {
		t.Fatalf("expected note at first declaration, got %+v", diags[0].Notes)
	}
}

// class A { set x(v) { return v; } } in a module envelope with source text.
func TestEnvelopeSetterReturn(t *testing.T) {
	src := "class A { set x(v) { return v; } }"
	ret := at(obj{"type": "ReturnStatement", "argument": ident("v", 28)}, 21, 30)
	setter := at(obj{
		"type":     "MethodDefinition",
		"kind":     "set",
		"key":      ident("x", 14),
		"computed": false,
		"static":   false,
		"value": at(obj{
			"type":   "FunctionExpression",
			"params": []any{ident("v", 16)},
			"body":   block(19, 32, ret),
		}, 15, 32),
	}, 10, 32)
	class := at(obj{
		"type": "ClassDeclaration",
		"id":   ident("A", 6),
		"body": at(obj{"type": "ClassBody", "body": []any{setter}}, 8, 34),
	}, 0, 34)
	doc, fs := decode(t, obj{"path": "a.js", "source": src, "program": program("module", 34, class)})

	if doc.Path != "a.js" || doc.Tree.Root.Kind != ast.ProgramModule {
		t.Fatalf("unexpected document %q kind %s", doc.Path, doc.Tree.Root.Kind)
	}
	diags := lint(t, doc.Tree, rules.NoSetterReturn{})
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	start, _ := fs.Resolve(diags[0].Primary)
	if start.Line != 1 || start.Col != 22 {
		t.Fatalf("unexpected position %+v", start)
	}
	if line := fs.Get(doc.File).Line(1); line != src {
		t.Fatalf("source not registered: %q", line)
	}
}

func TestUTF16Offsets(t *testing.T) {
	// "😀"; var a;
	src := "\"\U0001F600\"; var a;"
	lit := at(obj{"type": "Literal", "value": "\U0001F600", "raw": "\"\U0001F600\""}, 0, 4)
	stmt := at(obj{"type": "ExpressionStatement", "expression": lit}, 0, 5)
	doc, _ := decode(t, obj{
		"source":  src,
		"offsets": "utf16",
		"program": program("script", 12, stmt, varDecl("var", 6, 12, ident("a", 10), nil)),
	})
	var found bool
	for i := uint32(1); i <= doc.Tree.Idents.Arena.Len(); i++ {
		id := doc.Tree.Idents.Get(ast.IdentID(i))
		if doc.Tree.Name(ast.IdentID(i)) == "a" {
			found = true
			if id.Span.Start != 12 || id.Span.End != 13 {
				t.Fatalf("expected byte span 12..13, got %v", id.Span)
			}
		}
	}
	if !found {
		t.Fatalf("identifier a not loaded")
	}
}

func TestRangeSpansAndDeclareFunction(t *testing.T) {
	// function f(): void; function f() {}  (typescript-estree uses range)
	sig := obj{
		"type":   "TSDeclareFunction",
		"id":     obj{"type": "Identifier", "name": "f", "range": []any{9, 10}},
		"params": []any{},
		"returnType": obj{
			"type":           "TSTypeAnnotation",
			"typeAnnotation": obj{"type": "TSVoidKeyword", "range": []any{14, 18}},
			"range":          []any{12, 18},
		},
		"range": []any{0, 19},
	}
	impl := obj{
		"type":   "FunctionDeclaration",
		"id":     obj{"type": "Identifier", "name": "f", "range": []any{29, 30}},
		"params": []any{},
		"body":   obj{"type": "BlockStatement", "body": []any{}, "range": []any{33, 35}},
		"range":  []any{20, 35},
	}
	prog := obj{"type": "Program", "sourceType": "module", "body": []any{sig, impl}, "range": []any{0, 35}}
	doc, _ := decode(t, prog)
	if diags := lint(t, doc.Tree, rules.NoRedeclare{}); len(diags) != 0 {
		t.Fatalf("overload signature must not count, got %d diagnostics", len(diags))
	}
	first := doc.Tree.Stmts.FnDecl(doc.Tree.Root.Body[0])
	fn := doc.Tree.Func(first.Func)
	if fn.HasBody() || !fn.ReturnType.IsValid() {
		t.Fatalf("unexpected signature func %+v", fn)
	}
	if kw := doc.Tree.Types.Get(fn.ReturnType); kw.Kind != ast.TypeKeyword || doc.Tree.Strings.MustLookup(kw.Name) != "void" {
		t.Fatalf("unexpected return type %+v", kw)
	}
}

func TestMsgpackDocument(t *testing.T) {
	prog := program("script", 20,
		varDecl("let", 0, 9, ident("a", 4), nil),
		varDecl("let", 10, 19, ident("a", 14), nil),
	)
	data, err := msgpack.Marshal(prog)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.msgpack")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := estree.Load(source.NewFileSet(), path, estree.EncodingAuto)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diags := lint(t, doc.Tree, rules.NoRedeclare{}); len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestDestructuringAndDefaults(t *testing.T) {
	// const {a, b: [c, ...d], ...e} = x;
	pattern := at(obj{"type": "ObjectPattern", "properties": []any{
		at(obj{"type": "Property", "key": ident("a", 7), "value": ident("a", 7), "shorthand": true}, 7, 8),
		at(obj{"type": "Property", "key": ident("b", 10), "value": at(obj{"type": "ArrayPattern", "elements": []any{
			ident("c", 14),
			at(obj{"type": "RestElement", "argument": ident("d", 20)}, 17, 21),
		}}, 13, 22)}, 10, 22),
		at(obj{"type": "RestElement", "argument": ident("e", 27)}, 24, 28),
	}}, 6, 29)
	doc, _ := decode(t, program("script", 35, varDecl("const", 0, 35, pattern, ident("x", 32))))
	resolve.Program(doc.Tree)

	decl := doc.Tree.Stmts.Var(doc.Tree.Root.Body[0])
	d := doc.Tree.Declarator(decl.Decls[0])
	names := bindingNames(doc.Tree, d.Name)
	want := []string{"a", "c", "d", "e"}
	if len(names) != len(want) {
		t.Fatalf("bindings = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("bindings = %v, want %v", names, want)
		}
	}
}

func TestErrors(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := estree.Decode(fs, "x.json", []byte(`{"path": "a.js"}`), estree.EncodingJSON); !errors.Is(err, estree.ErrNoProgram) {
		t.Fatalf("expected ErrNoProgram, got %v", err)
	}
	if _, err := estree.Decode(fs, "x.json", []byte(`[1, 2]`), estree.EncodingJSON); err == nil {
		t.Fatalf("expected error for non-object document")
	}

	jsx := obj{"type": "ExpressionStatement", "expression": at(obj{"type": "JSXElement"}, 0, 5), "start": 0, "end": 6}
	data, err := json.Marshal(program("module", 6, jsx))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	_, err = estree.Decode(fs, "x.json", data, estree.EncodingJSON)
	var nodeErr *estree.NodeError
	if !errors.As(err, &nodeErr) || nodeErr.Type != "JSXElement" {
		t.Fatalf("expected NodeError for JSXElement, got %v", err)
	}

	bad := program("script", 3, at(obj{"type": "EmptyStatement"}, 5, 2))
	data, err = json.Marshal(bad)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := estree.Decode(fs, "x.json", data, estree.EncodingJSON); err == nil {
		t.Fatalf("expected error for inverted span")
	}
}

func TestEncodingFromPath(t *testing.T) {
	cases := map[string]estree.Encoding{
		"a.json":    estree.EncodingJSON,
		"a.MSGPACK": estree.EncodingMsgpack,
		"a.mp":      estree.EncodingMsgpack,
		"a":         estree.EncodingJSON,
	}
	for path, want := range cases {
		if got := estree.EncodingFromPath(path); got != want {
			t.Fatalf("EncodingFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

// outer: while (x) { break outer; }
func TestLabeledBreak(t *testing.T) {
	brk := at(obj{"type": "BreakStatement", "label": ident("outer", 25)}, 19, 31)
	loop := at(obj{"type": "WhileStatement", "test": ident("x", 14), "body": block(17, 33, brk)}, 7, 33)
	labeled := at(obj{"type": "LabeledStatement", "label": ident("outer", 0), "body": loop}, 0, 33)
	doc, _ := decode(t, program("script", 33, labeled))

	tree := doc.Tree
	ls := tree.Stmts.Labeled(tree.Root.Body[0])
	if ls == nil || tree.Name(ls.Label) != "outer" {
		t.Fatalf("expected labeled statement, got %+v", ls)
	}
	body := tree.Stmts.Block(tree.Stmts.Loop(ls.Body).Body)
	if body == nil || len(body.Stmts) != 1 {
		t.Fatalf("unexpected loop body %+v", body)
	}
	jump := tree.Stmts.Jump(body.Stmts[0])
	if jump == nil || tree.Name(jump.Label) != "outer" {
		t.Fatalf("expected break with label, got %+v", jump)
	}
	if tree.Stmts.Jump(ls.Body) != nil {
		t.Fatalf("Jump on a loop must return nil")
	}
}
