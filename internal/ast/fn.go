package ast

import "lintcore/internal/source"

// Func is shared by function declarations and expressions, arrows, class
// methods, constructors and object-literal methods/accessors.
type Func struct {
	Params     []ParamID
	Body       StmtID // StmtBlock; NoStmtID for ambient/overload signatures
	ExprBody   ExprID // concise arrow body
	ReturnType TypeID
	Async      bool
	Generator  bool
	Arrow      bool
	Span       source.Span
}

// HasBody reports whether the function carries an implementation.
func (f *Func) HasBody() bool {
	return f.Body.IsValid() || f.ExprBody.IsValid()
}

// Param is one formal parameter. Accessibility is set for TypeScript
// parameter properties (constructor(private x)).
type Param struct {
	Pat           PatID
	Decorators    []ExprID
	Accessibility string
	Span          source.Span
}

// Declarator is one `name = init` entry of a variable declaration.
type Declarator struct {
	Name PatID
	Init ExprID
	Span source.Span
}
