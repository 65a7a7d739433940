package diag

import (
	"lintcore/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is immutable once emitted. Code is the stable identifier of the
// rule that produced it.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code string, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}
