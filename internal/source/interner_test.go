package source

import "testing"

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("a")
	if again := in.Intern("a"); again != a {
		t.Fatalf("re-interning returned %d, want %d", again, a)
	}
	if b := in.Intern("b"); b == a {
		t.Fatalf("distinct names share an id")
	}
	if in.Intern("") != NoStringID {
		t.Fatalf("empty string must map to NoStringID")
	}
	if s := in.MustLookup(a); s != "a" {
		t.Fatalf("MustLookup = %q", s)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("unexpected lookup success")
	}
	if in.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", in.Len())
	}
}
