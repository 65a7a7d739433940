package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"nested", Span{File: 1, Start: 0, End: 10}, Span{File: 1, Start: 3, End: 5}, Span{File: 1, Start: 0, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Fatalf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanContainsAndBefore(t *testing.T) {
	outer := Span{File: 0, Start: 10, End: 20}
	if !outer.Contains(Span{File: 0, Start: 10, End: 20}) {
		t.Fatalf("span must contain itself")
	}
	if outer.Contains(Span{File: 0, Start: 9, End: 12}) {
		t.Fatalf("span starting before outer must not be contained")
	}
	if outer.Contains(Span{File: 1, Start: 12, End: 13}) {
		t.Fatalf("span from another file must not be contained")
	}
	if !(Span{Start: 1, End: 2}).Before(Span{Start: 1, End: 3}) {
		t.Fatalf("expected shorter span at same start to sort first")
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{Start: 3, End: 7}).Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	if got := (Span{Start: 7, End: 3}).Len(); got != 0 {
		t.Fatalf("inverted span Len() = %d, want 0", got)
	}
	if !(Span{Start: 5, End: 5}).Empty() {
		t.Fatalf("expected empty span")
	}
}
