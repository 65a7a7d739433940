package rules

import (
	"lintcore/internal/ast"
	"lintcore/internal/diag"
	"lintcore/internal/visit"
)

const (
	NoSetterReturnCode    = "no-setter-return"
	NoSetterReturnMessage = "Setter cannot return a value"
)

// NoSetterReturn reports `return <expr>;` among the top-level statements of
// class setters and object-literal setters.
type NoSetterReturn struct{}

func (NoSetterReturn) Code() string   { return NoSetterReturnCode }
func (NoSetterReturn) Tags() []string { return []string{TagRecommended} }

func (NoSetterReturn) Docs() string {
	return "Disallows returning values from setters."
}

func (NoSetterReturn) Run(sink diag.Reporter, tree *ast.Tree) {
	visit.New(tree, &setterReturnVisitor{sink: sink, tree: tree}, visit.Options{}).Walk()
}

type setterReturnVisitor struct {
	visit.Default
	sink diag.Reporter
	tree *ast.Tree
}

func (v *setterReturnVisitor) Class(_ *visit.Walker, id ast.ClassID) visit.Action {
	class := v.tree.Class(id)
	if class == nil {
		return visit.Skip
	}
	for _, mid := range class.Members {
		member := v.tree.Members.Get(mid)
		if member == nil || (member.Kind != ast.MemberMethod && member.Kind != ast.MemberPrivateMethod) {
			continue
		}
		method := v.tree.Members.Method(mid)
		if method == nil || method.Kind != ast.MethodSetter {
			continue
		}
		if fn := v.tree.Func(method.Func); fn != nil {
			v.checkBody(fn.Body)
		}
	}
	return visit.Skip
}

func (v *setterReturnVisitor) Prop(_ *visit.Walker, id ast.PropID) visit.Action {
	prop := v.tree.Props.Get(id)
	if prop == nil || prop.Kind != ast.PropSetter {
		return visit.Continue
	}
	if fn := v.tree.Func(prop.Func); fn != nil {
		v.checkBody(fn.Body)
	}
	return visit.Skip
}

// checkBody looks at the direct statements of a setter body only.
func (v *setterReturnVisitor) checkBody(body ast.StmtID) {
	block := v.tree.Stmts.Block(body)
	if block == nil {
		return
	}
	for _, sid := range block.Stmts {
		stmt := v.tree.Stmts.Get(sid)
		if stmt == nil || stmt.Kind != ast.StmtReturn {
			continue
		}
		if ret := v.tree.Stmts.Arg(sid); ret != nil && ret.Arg.IsValid() {
			diag.ReportWarning(v.sink, NoSetterReturnCode, stmt.Span, NoSetterReturnMessage).Emit()
		}
	}
}
