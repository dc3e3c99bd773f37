package strbuf

import "testing"

func TestIndex(t *testing.T) {
	s := FromString("abcXYabcXY")

	tests := []struct {
		pattern string
		want    int
	}{
		{"abc", 0},
		{"XY", 3},
		{"cXYa", 2},
		{"XYQ", -1},
		{"", -1}, // empty pattern is never found
	}

	for _, tt := range tests {
		if got := s.Index([]byte(tt.pattern)); got != tt.want {
			t.Errorf("Index(%q): expected %d, got %d", tt.pattern, tt.want, got)
		}
		if got := s.IndexString(tt.pattern); got != tt.want {
			t.Errorf("IndexString(%q): expected %d, got %d", tt.pattern, tt.want, got)
		}
	}
}

func TestFindByteRight(t *testing.T) {
	s := FromString("abcabc")

	if got := s.FindByteRight('b', 0); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := s.FindByteRight('b', 2); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := s.FindByteRight('q', 0); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	if got := s.FindByteRight('a', 6); got != -1 {
		t.Errorf("expected -1 past the end, got %d", got)
	}
}

func TestFindByteLeft(t *testing.T) {
	s := FromString("abcabc")

	if got := s.FindByteLeft('b', 5); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := s.FindByteLeft('b', 3); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := s.FindByteLeft('q', 5); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}

	empty := New(8)
	if got := empty.FindByteLeft('a', 0); got != -1 {
		t.Errorf("expected -1 on empty string, got %d", got)
	}
}
