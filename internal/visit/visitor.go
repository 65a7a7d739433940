// Package visit implements a depth-first pre-order walk over ast.Tree with
// one hook per node category. A hook decides whether the walker descends
// into the node's children; a hook that needs only some children walks them
// itself through the Walker and returns Skip.
package visit

import "lintcore/internal/ast"

// Action is returned by every hook.
type Action uint8

const (
	// Continue visits all children in source order.
	Continue Action = iota
	// Skip visits none of the children.
	Skip
)

func (a Action) String() string {
	if a == Skip {
		return "skip"
	}
	return "continue"
}

// Visitor receives every node reached by a Walker.
type Visitor interface {
	Stmt(w *Walker, id ast.StmtID) Action
	Expr(w *Walker, id ast.ExprID) Action
	Pat(w *Walker, id ast.PatID) Action
	Func(w *Walker, id ast.FuncID) Action
	Param(w *Walker, id ast.ParamID) Action
	Declarator(w *Walker, id ast.DeclID) Action
	Class(w *Walker, id ast.ClassID) Action
	Member(w *Walker, id ast.MemberID) Action
	Prop(w *Walker, id ast.PropID) Action
	Type(w *Walker, id ast.TypeID) Action
}

// Default continues everywhere. Embed it and override the hooks you need.
type Default struct{}

func (Default) Stmt(*Walker, ast.StmtID) Action       { return Continue }
func (Default) Expr(*Walker, ast.ExprID) Action       { return Continue }
func (Default) Pat(*Walker, ast.PatID) Action         { return Continue }
func (Default) Func(*Walker, ast.FuncID) Action       { return Continue }
func (Default) Param(*Walker, ast.ParamID) Action     { return Continue }
func (Default) Declarator(*Walker, ast.DeclID) Action { return Continue }
func (Default) Class(*Walker, ast.ClassID) Action     { return Continue }
func (Default) Member(*Walker, ast.MemberID) Action   { return Continue }
func (Default) Prop(*Walker, ast.PropID) Action       { return Continue }
func (Default) Type(*Walker, ast.TypeID) Action       { return Continue }

// Funcs adapts closures to Visitor; nil fields continue.
type Funcs struct {
	OnStmt       func(w *Walker, id ast.StmtID) Action
	OnExpr       func(w *Walker, id ast.ExprID) Action
	OnPat        func(w *Walker, id ast.PatID) Action
	OnFunc       func(w *Walker, id ast.FuncID) Action
	OnParam      func(w *Walker, id ast.ParamID) Action
	OnDeclarator func(w *Walker, id ast.DeclID) Action
	OnClass      func(w *Walker, id ast.ClassID) Action
	OnMember     func(w *Walker, id ast.MemberID) Action
	OnProp       func(w *Walker, id ast.PropID) Action
	OnType       func(w *Walker, id ast.TypeID) Action
}

func (f Funcs) Stmt(w *Walker, id ast.StmtID) Action {
	if f.OnStmt == nil {
		return Continue
	}
	return f.OnStmt(w, id)
}

func (f Funcs) Expr(w *Walker, id ast.ExprID) Action {
	if f.OnExpr == nil {
		return Continue
	}
	return f.OnExpr(w, id)
}

func (f Funcs) Pat(w *Walker, id ast.PatID) Action {
	if f.OnPat == nil {
		return Continue
	}
	return f.OnPat(w, id)
}

func (f Funcs) Func(w *Walker, id ast.FuncID) Action {
	if f.OnFunc == nil {
		return Continue
	}
	return f.OnFunc(w, id)
}

func (f Funcs) Param(w *Walker, id ast.ParamID) Action {
	if f.OnParam == nil {
		return Continue
	}
	return f.OnParam(w, id)
}

func (f Funcs) Declarator(w *Walker, id ast.DeclID) Action {
	if f.OnDeclarator == nil {
		return Continue
	}
	return f.OnDeclarator(w, id)
}

func (f Funcs) Class(w *Walker, id ast.ClassID) Action {
	if f.OnClass == nil {
		return Continue
	}
	return f.OnClass(w, id)
}

func (f Funcs) Member(w *Walker, id ast.MemberID) Action {
	if f.OnMember == nil {
		return Continue
	}
	return f.OnMember(w, id)
}

func (f Funcs) Prop(w *Walker, id ast.PropID) Action {
	if f.OnProp == nil {
		return Continue
	}
	return f.OnProp(w, id)
}

func (f Funcs) Type(w *Walker, id ast.TypeID) Action {
	if f.OnType == nil {
		return Continue
	}
	return f.OnType(w, id)
}
