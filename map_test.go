package strbuf

import "testing"

func TestMapGrow(t *testing.T) {
	s := FromString("XYabcXYabcXY")
	if s.Cap() != 13 || s.Len() != 12 {
		t.Fatalf("setup: cap %d len %d", s.Cap(), s.Len())
	}

	if err := s.MapString("XY", "GIG"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "GIGabcGIGabcGIG" {
		t.Errorf("got %q", s.String())
	}
	if s.Len() != 15 || s.Cap() != 16 {
		t.Errorf("expected len 15 cap 16, got len %d cap %d", s.Len(), s.Cap())
	}
}

func TestMapGrowNoTrailingMatch(t *testing.T) {
	s := FromString("XYabcXYabc")

	if err := s.MapString("XY", "GIG"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "GIGabcGIGabc" {
		t.Errorf("got %q", s.String())
	}
}

func TestMapShrink(t *testing.T) {
	s := FromString("XYabcXYabc")

	if err := s.MapString("XY", "G"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "GabcGabc" {
		t.Errorf("got %q", s.String())
	}
	if s.Cap() != 11 {
		t.Errorf("shrink path must not reallocate, cap %d", s.Cap())
	}
}

func TestMapSameLength(t *testing.T) {
	s := FromString("XYabcXYabc")

	if err := s.MapString("XY", "GG"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "GGabcGGabc" {
		t.Errorf("got %q", s.String())
	}
}

func TestMapNoMatch(t *testing.T) {
	s := FromString("abcdef")

	if err := s.MapString("XY", "GIG"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "abcdef" || s.Cap() != 7 {
		t.Errorf("no-match map changed state: %q cap %d", s.String(), s.Cap())
	}
}

func TestMapEmptyPattern(t *testing.T) {
	s := FromString("abc")

	if err := s.MapString("", "X"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "abc" {
		t.Errorf("empty pattern map changed content: %q", s.String())
	}
}

func TestMapToEmpty(t *testing.T) {
	s := FromString("aXbXc")

	if err := s.MapString("X", ""); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "abc" {
		t.Errorf("got %q", s.String())
	}
}

func TestMapAdjacent(t *testing.T) {
	s := FromString("XXXX")

	if err := s.MapString("X", "yz"); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if s.String() != "yzyzyzyz" {
		t.Errorf("got %q", s.String())
	}
}
