package ast

import "lintcore/internal/source"

type StmtKind uint8

const (
	StmtEmpty StmtKind = iota
	StmtDebugger
	StmtBlock
	StmtExpr
	StmtVar
	StmtFnDecl
	StmtClassDecl
	StmtReturn
	StmtThrow
	StmtIf
	StmtFor
	StmtForIn
	StmtForOf
	StmtWhile
	StmtDoWhile
	StmtTry
	StmtSwitch
	StmtLabeled
	StmtBreak
	StmtContinue
	StmtImport
	StmtExportDecl
	StmtExportDefault
	StmtExportNamed
	StmtExportAll
	StmtTypeAlias
)

var stmtKindNames = [...]string{
	StmtEmpty:         "empty",
	StmtDebugger:      "debugger",
	StmtBlock:         "block",
	StmtExpr:          "expr",
	StmtVar:           "var",
	StmtFnDecl:        "fn-decl",
	StmtClassDecl:     "class-decl",
	StmtReturn:        "return",
	StmtThrow:         "throw",
	StmtIf:            "if",
	StmtFor:           "for",
	StmtForIn:         "for-in",
	StmtForOf:         "for-of",
	StmtWhile:         "while",
	StmtDoWhile:       "do-while",
	StmtTry:           "try",
	StmtSwitch:        "switch",
	StmtLabeled:       "labeled",
	StmtBreak:         "break",
	StmtContinue:      "continue",
	StmtImport:        "import",
	StmtExportDecl:    "export-decl",
	StmtExportDefault: "export-default",
	StmtExportNamed:   "export-named",
	StmtExportAll:     "export-all",
	StmtTypeAlias:     "type-alias",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "invalid"
}

// VarKind is the declaration keyword of a StmtVar.
type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type BlockStmt struct {
	Stmts []StmtID
}

type ExprStmt struct {
	X ExprID
}

type VarDecl struct {
	Kind    VarKind
	Decls   []DeclID
	Declare bool // TS `declare var`
}

type FnDecl struct {
	Name IdentID
	Func FuncID
}

type ClassDecl struct {
	Name    IdentID
	Class   ClassID
	Declare bool
}

// ArgStmt carries the optional operand of return and throw.
type ArgStmt struct {
	Arg ExprID
}

type IfStmt struct {
	Test ExprID
	Cons StmtID
	Alt  StmtID
}

type ForStmt struct {
	Init   StmtID // StmtVar or StmtExpr
	Test   ExprID
	Update ExprID
	Body   StmtID
}

// ForInStmt backs both for-in and for-of. Exactly one of Left and LeftPat is set.
type ForInStmt struct {
	Left    StmtID // StmtVar with a single declarator
	LeftPat PatID
	Right   ExprID
	Body    StmtID
	Await   bool
}

// LoopStmt backs while and do-while.
type LoopStmt struct {
	Test ExprID
	Body StmtID
}

type TryStmt struct {
	Block     StmtID
	Param     PatID  // catch binding, optional
	Handler   StmtID // catch body, NoStmtID without catch
	Finalizer StmtID
	CatchSpan source.Span
}

type SwitchCase struct {
	Test ExprID // NoExprID for default
	Body []StmtID
	Span source.Span
}

type SwitchStmt struct {
	Disc  ExprID
	Cases []SwitchCase
}

type LabeledStmt struct {
	Label IdentID
	Body  StmtID
}

// JumpStmt backs break and continue.
type JumpStmt struct {
	Label IdentID
}

type ImportSpecKind uint8

const (
	ImportNamed ImportSpecKind = iota
	ImportDefault
	ImportNamespace
)

type ImportSpec struct {
	Kind     ImportSpecKind
	Local    IdentID
	Imported source.StringID
	Span     source.Span
}

type ImportDecl struct {
	Specs    []ImportSpec
	Source   string
	TypeOnly bool
}

type ExportSpec struct {
	Local    IdentID
	Exported source.StringID
	Span     source.Span
}

// ExportDecl backs every export form: Decl for `export <decl>` and
// `export default function/class`, Default for `export default <expr>`,
// Specs/Source for named and star re-exports.
type ExportDecl struct {
	Decl    StmtID
	Default ExprID
	Specs   []ExportSpec
	Source  string
}

type TypeAlias struct {
	Name source.StringID
	Type TypeID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena     *Arena[Stmt]
	Blocks    *Arena[BlockStmt]
	Exprs     *Arena[ExprStmt]
	Vars      *Arena[VarDecl]
	FnDecls   *Arena[FnDecl]
	Classes   *Arena[ClassDecl]
	Args      *Arena[ArgStmt]
	Ifs       *Arena[IfStmt]
	Fors      *Arena[ForStmt]
	ForIns    *Arena[ForInStmt]
	Loops     *Arena[LoopStmt]
	Trys      *Arena[TryStmt]
	Switches  *Arena[SwitchStmt]
	Labels    *Arena[LabeledStmt]
	Jumps     *Arena[JumpStmt]
	Imports   *Arena[ImportDecl]
	Exports   *Arena[ExportDecl]
	TypeAlias *Arena[TypeAlias]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 7
	}
	small := capHint/4 + 1
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Blocks:    NewArena[BlockStmt](small),
		Exprs:     NewArena[ExprStmt](small),
		Vars:      NewArena[VarDecl](small),
		FnDecls:   NewArena[FnDecl](small),
		Classes:   NewArena[ClassDecl](small),
		Args:      NewArena[ArgStmt](small),
		Ifs:       NewArena[IfStmt](small),
		Fors:      NewArena[ForStmt](small),
		ForIns:    NewArena[ForInStmt](small),
		Loops:     NewArena[LoopStmt](small),
		Trys:      NewArena[TryStmt](small),
		Switches:  NewArena[SwitchStmt](small),
		Labels:    NewArena[LabeledStmt](small),
		Jumps:     NewArena[JumpStmt](small),
		Imports:   NewArena[ImportDecl](small),
		Exports:   NewArena[ExportDecl](small),
		TypeAlias: NewArena[TypeAlias](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// Get returns the statement header or nil.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kinds ...StmtKind) (PayloadID, bool) {
	stmt := s.Get(id)
	if stmt == nil {
		return NoPayloadID, false
	}
	for _, k := range kinds {
		if stmt.Kind == k {
			return stmt.Payload, true
		}
	}
	return NoPayloadID, false
}

func (s *Stmts) NewEmpty(span source.Span) StmtID    { return s.new(StmtEmpty, span, 0) }
func (s *Stmts) NewDebugger(span source.Span) StmtID { return s.new(StmtDebugger, span, 0) }

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, s.Blocks.Allocate(BlockStmt{Stmts: stmts}))
}

func (s *Stmts) Block(id StmtID) *BlockStmt {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil
	}
	return s.Blocks.Get(uint32(p))
}

func (s *Stmts) NewExpr(span source.Span, x ExprID) StmtID {
	return s.new(StmtExpr, span, s.Exprs.Allocate(ExprStmt{X: x}))
}

func (s *Stmts) Expr(id StmtID) *ExprStmt {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil
	}
	return s.Exprs.Get(uint32(p))
}

func (s *Stmts) NewVar(span source.Span, kind VarKind, decls []DeclID) StmtID {
	return s.new(StmtVar, span, s.Vars.Allocate(VarDecl{Kind: kind, Decls: decls}))
}

func (s *Stmts) Var(id StmtID) *VarDecl {
	p, ok := s.payload(id, StmtVar)
	if !ok {
		return nil
	}
	return s.Vars.Get(uint32(p))
}

func (s *Stmts) NewFnDecl(span source.Span, name IdentID, fn FuncID) StmtID {
	return s.new(StmtFnDecl, span, s.FnDecls.Allocate(FnDecl{Name: name, Func: fn}))
}

func (s *Stmts) FnDecl(id StmtID) *FnDecl {
	p, ok := s.payload(id, StmtFnDecl)
	if !ok {
		return nil
	}
	return s.FnDecls.Get(uint32(p))
}

func (s *Stmts) NewClassDecl(span source.Span, name IdentID, class ClassID, declare bool) StmtID {
	return s.new(StmtClassDecl, span, s.Classes.Allocate(ClassDecl{Name: name, Class: class, Declare: declare}))
}

func (s *Stmts) ClassDecl(id StmtID) *ClassDecl {
	p, ok := s.payload(id, StmtClassDecl)
	if !ok {
		return nil
	}
	return s.Classes.Get(uint32(p))
}

func (s *Stmts) NewReturn(span source.Span, arg ExprID) StmtID {
	return s.new(StmtReturn, span, s.Args.Allocate(ArgStmt{Arg: arg}))
}

func (s *Stmts) NewThrow(span source.Span, arg ExprID) StmtID {
	return s.new(StmtThrow, span, s.Args.Allocate(ArgStmt{Arg: arg}))
}

// Arg returns the operand holder of a return or throw statement.
func (s *Stmts) Arg(id StmtID) *ArgStmt {
	p, ok := s.payload(id, StmtReturn, StmtThrow)
	if !ok {
		return nil
	}
	return s.Args.Get(uint32(p))
}

func (s *Stmts) NewIf(span source.Span, test ExprID, cons, alt StmtID) StmtID {
	return s.new(StmtIf, span, s.Ifs.Allocate(IfStmt{Test: test, Cons: cons, Alt: alt}))
}

func (s *Stmts) If(id StmtID) *IfStmt {
	p, ok := s.payload(id, StmtIf)
	if !ok {
		return nil
	}
	return s.Ifs.Get(uint32(p))
}

func (s *Stmts) NewFor(span source.Span, data ForStmt) StmtID {
	return s.new(StmtFor, span, s.Fors.Allocate(data))
}

func (s *Stmts) For(id StmtID) *ForStmt {
	p, ok := s.payload(id, StmtFor)
	if !ok {
		return nil
	}
	return s.Fors.Get(uint32(p))
}

// NewForIn allocates a for-in (of=false) or for-of (of=true) loop.
func (s *Stmts) NewForIn(span source.Span, of bool, data ForInStmt) StmtID {
	kind := StmtForIn
	if of {
		kind = StmtForOf
	}
	return s.new(kind, span, s.ForIns.Allocate(data))
}

func (s *Stmts) ForIn(id StmtID) *ForInStmt {
	p, ok := s.payload(id, StmtForIn, StmtForOf)
	if !ok {
		return nil
	}
	return s.ForIns.Get(uint32(p))
}

func (s *Stmts) NewWhile(span source.Span, test ExprID, body StmtID) StmtID {
	return s.new(StmtWhile, span, s.Loops.Allocate(LoopStmt{Test: test, Body: body}))
}

func (s *Stmts) NewDoWhile(span source.Span, body StmtID, test ExprID) StmtID {
	return s.new(StmtDoWhile, span, s.Loops.Allocate(LoopStmt{Test: test, Body: body}))
}

func (s *Stmts) Loop(id StmtID) *LoopStmt {
	p, ok := s.payload(id, StmtWhile, StmtDoWhile)
	if !ok {
		return nil
	}
	return s.Loops.Get(uint32(p))
}

func (s *Stmts) NewTry(span source.Span, data TryStmt) StmtID {
	return s.new(StmtTry, span, s.Trys.Allocate(data))
}

func (s *Stmts) Try(id StmtID) *TryStmt {
	p, ok := s.payload(id, StmtTry)
	if !ok {
		return nil
	}
	return s.Trys.Get(uint32(p))
}

func (s *Stmts) NewSwitch(span source.Span, disc ExprID, cases []SwitchCase) StmtID {
	return s.new(StmtSwitch, span, s.Switches.Allocate(SwitchStmt{Disc: disc, Cases: cases}))
}

func (s *Stmts) Switch(id StmtID) *SwitchStmt {
	p, ok := s.payload(id, StmtSwitch)
	if !ok {
		return nil
	}
	return s.Switches.Get(uint32(p))
}

func (s *Stmts) NewLabeled(span source.Span, label IdentID, body StmtID) StmtID {
	return s.new(StmtLabeled, span, s.Labels.Allocate(LabeledStmt{Label: label, Body: body}))
}

func (s *Stmts) Labeled(id StmtID) *LabeledStmt {
	p, ok := s.payload(id, StmtLabeled)
	if !ok {
		return nil
	}
	return s.Labels.Get(uint32(p))
}

func (s *Stmts) NewBreak(span source.Span, label IdentID) StmtID {
	return s.new(StmtBreak, span, s.Jumps.Allocate(JumpStmt{Label: label}))
}

func (s *Stmts) NewContinue(span source.Span, label IdentID) StmtID {
	return s.new(StmtContinue, span, s.Jumps.Allocate(JumpStmt{Label: label}))
}

func (s *Stmts) Jump(id StmtID) *JumpStmt {
	p, ok := s.payload(id, StmtBreak, StmtContinue)
	if !ok {
		return nil
	}
	return s.Jumps.Get(uint32(p))
}

func (s *Stmts) NewImport(span source.Span, decl ImportDecl) StmtID {
	return s.new(StmtImport, span, s.Imports.Allocate(decl))
}

func (s *Stmts) Import(id StmtID) *ImportDecl {
	p, ok := s.payload(id, StmtImport)
	if !ok {
		return nil
	}
	return s.Imports.Get(uint32(p))
}

// NewExport allocates one of the StmtExport* kinds.
func (s *Stmts) NewExport(kind StmtKind, span source.Span, decl ExportDecl) StmtID {
	switch kind {
	case StmtExportDecl, StmtExportDefault, StmtExportNamed, StmtExportAll:
	default:
		panic("ast: NewExport with non-export kind " + kind.String())
	}
	return s.new(kind, span, s.Exports.Allocate(decl))
}

func (s *Stmts) Export(id StmtID) *ExportDecl {
	p, ok := s.payload(id, StmtExportDecl, StmtExportDefault, StmtExportNamed, StmtExportAll)
	if !ok {
		return nil
	}
	return s.Exports.Get(uint32(p))
}

func (s *Stmts) NewTypeAlias(span source.Span, name source.StringID, typ TypeID) StmtID {
	return s.new(StmtTypeAlias, span, s.TypeAlias.Allocate(TypeAlias{Name: name, Type: typ}))
}

func (s *Stmts) TypeAliasDecl(id StmtID) *TypeAlias {
	p, ok := s.payload(id, StmtTypeAlias)
	if !ok {
		return nil
	}
	return s.TypeAlias.Get(uint32(p))
}
