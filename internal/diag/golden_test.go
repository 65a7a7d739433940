package diag

import (
	"testing"

	"lintcore/internal/source"
)

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/testdata/sample.json", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     "no-redeclare",
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 2, End: 3},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 0, End: 1}, Msg: "previously declared here"},
			},
		},
		{
			Severity: SevError,
			Code:     "no-setter-return",
			Message:  "another",
			Primary:  source.Span{File: file, Start: 0, End: 1},
		},
	}

	expected := "error no-setter-return testdata/sample.json:1:1 another\n" +
		"warning no-redeclare testdata/sample.json:2:1 first line second\n" +
		"note no-redeclare testdata/sample.json:1:1 previously declared here"

	if got := FormatShort(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortWithoutNotes(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("mem.json", []byte("x"))
	diags := []Diagnostic{New(SevWarning, "no-redeclare", source.Span{File: file}, "m").
		WithNote(source.Span{File: file}, "n")}
	if got := FormatShort(diags, fs, false); got != "warning no-redeclare mem.json:1:1 m" {
		t.Fatalf("got %q", got)
	}
	if got := FormatShort(nil, fs, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

// Заметка печатается сразу после своей диагностики, даже если она раньше по
// позиции, чем другие диагностики.
func TestFormatShortKeepsNotesWithDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("in.js", []byte("var a;\n var a; var b; var b;\n"))
	diags := []Diagnostic{
		New(SevWarning, "no-redeclare", source.Span{File: file, Start: 26, End: 27}, "Redeclaration is not allowed").
			WithNote(source.Span{File: file, Start: 19, End: 20}, "previously declared here"),
		New(SevWarning, "no-redeclare", source.Span{File: file, Start: 12, End: 13}, "Redeclaration is not allowed").
			WithNote(source.Span{File: file, Start: 4, End: 5}, "previously declared here"),
	}
	expected := "warning no-redeclare in.js:2:6 Redeclaration is not allowed\n" +
		"note no-redeclare in.js:1:5 previously declared here\n" +
		"warning no-redeclare in.js:2:20 Redeclaration is not allowed\n" +
		"note no-redeclare in.js:2:13 previously declared here"
	if got := FormatShort(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
