package diag

import (
	"testing"

	"lintcore/internal/source"
)

func TestBagKeepsDuplicatesInOrder(t *testing.T) {
	bag := NewBag()
	r := BagReporter{Bag: bag}
	sp := source.Span{Start: 4, End: 5}
	ReportWarning(r, "no-redeclare", sp, "Redeclaration is not allowed").Emit()
	ReportWarning(r, "no-redeclare", sp, "Redeclaration is not allowed").Emit()
	r.Report("no-setter-return", SevWarning, source.Span{Start: 1, End: 2}, "Setter cannot return a value", nil)

	if bag.Len() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", bag.Len())
	}
	if bag.Items()[2].Code != "no-setter-return" {
		t.Fatalf("append order not preserved: %+v", bag.Items())
	}

	bag.Sort()
	if bag.Items()[0].Code != "no-setter-return" {
		t.Fatalf("sort by start failed: %+v", bag.Items())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag()
	b := ReportError(BagReporter{Bag: bag}, "x", source.Span{}, "msg").
		WithNote(source.Span{Start: 1}, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected a single emit, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevError || len(d.Notes) != 1 || d.Notes[0].Msg != "here" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("severity queries are wrong")
	}
}

func TestSeverityReporterOverrides(t *testing.T) {
	bag := NewBag()
	r := NewSeverityReporter(BagReporter{Bag: bag}, map[string]Severity{"no-redeclare": SevError})
	r.Report("no-redeclare", SevWarning, source.Span{}, "a", nil)
	r.Report("no-setter-return", SevWarning, source.Span{}, "b", nil)
	if bag.Items()[0].Severity != SevError || bag.Items()[1].Severity != SevWarning {
		t.Fatalf("override not applied: %+v", bag.Items())
	}
}

func TestMergeAndTruncate(t *testing.T) {
	a, b := NewBag(), NewBag()
	a.Add(New(SevWarning, "a", source.Span{Start: 3}, "a"))
	b.Add(New(SevWarning, "b", source.Span{Start: 1}, "b"))
	b.Add(New(SevWarning, "c", source.Span{Start: 2}, "c"))
	a.Merge(b)
	a.Merge(nil)
	if a.Len() != 3 {
		t.Fatalf("merge lost items: %d", a.Len())
	}
	if dropped := a.Truncate(2); dropped != 1 || a.Len() != 2 {
		t.Fatalf("truncate: dropped=%d len=%d", dropped, a.Len())
	}
	if dropped := a.Truncate(0); dropped != 0 {
		t.Fatalf("truncate(0) must keep everything")
	}
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]Severity{"error": SevError, "Warn": SevWarning, " info ": SevInfo} {
		got, err := ParseSeverity(in)
		if err != nil || got != want {
			t.Fatalf("ParseSeverity(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}
