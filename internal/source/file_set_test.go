package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("var a;\nvar a;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 11, End: 12})
	if start != (LineCol{Line: 2, Col: 5}) {
		t.Fatalf("start = %+v, want 2:5", start)
	}
	if end != (LineCol{Line: 2, Col: 6}) {
		t.Fatalf("end = %+v, want 2:6", end)
	}

	// конец первой строки (позиция самого '\n') остаётся на строке 1
	start, _ = fs.Resolve(Span{File: id, Start: 6, End: 6})
	if start != (LineCol{Line: 1, Col: 7}) {
		t.Fatalf("newline offset = %+v, want 1:7", start)
	}
}

func TestFileSetResolveWithoutContent(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("tree.json", nil)
	start, _ := fs.Resolve(Span{File: id, Start: 40, End: 41})
	if start != (LineCol{Line: 1, Col: 41}) {
		t.Fatalf("start = %+v, want 1:41", start)
	}
	start, _ = fs.Resolve(Span{File: 9, Start: 2, End: 3})
	if start.Line != 1 || start.Col != 3 {
		t.Fatalf("unknown file should fall back to byte columns, got %+v", start)
	}
}

func TestFileLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.js", []byte("first\nsecond\nthird")))
	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.Line(n); got != want {
			t.Fatalf("Line(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src.js")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if got := f.FormatPath("relative", fs.BaseDir()); got != "src.js" {
		t.Fatalf("relative path = %q", got)
	}
	if other, ok := fs.GetByPath(path); !ok || other.ID != id {
		t.Fatalf("GetByPath did not find loaded file")
	}
}
