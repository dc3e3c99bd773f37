package strbuf

import "testing"

func TestToUpper(t *testing.T) {
	s := FromString("aBc-12z")
	s.ToUpper()
	if s.String() != "ABC-12Z" {
		t.Errorf("got %q", s.String())
	}
}

func TestToLower(t *testing.T) {
	s := FromString("AbC-12Z")
	s.ToLower()
	if s.String() != "abc-12z" {
		t.Errorf("got %q", s.String())
	}
}

func TestCapitalize(t *testing.T) {
	s := FromString("hello")
	s.Capitalize()
	if s.String() != "Hello" {
		t.Errorf("got %q", s.String())
	}

	s = FromString("9lives")
	s.Capitalize()
	if s.String() != "9lives" {
		t.Errorf("got %q", s.String())
	}

	empty := New(4)
	empty.Capitalize()
	if empty.Len() != 0 {
		t.Error("capitalize on empty string changed length")
	}
}

func TestCaseNonASCIIPassthrough(t *testing.T) {
	// Raw byte semantics: bytes outside ASCII letters are untouched.
	s := FromString("\xc3\xa9abc")
	s.ToUpper()
	if s.String() != "\xc3\xa9ABC" {
		t.Errorf("got %q", s.String())
	}
}
