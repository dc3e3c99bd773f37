package strbuf

import (
	"bytes"
	"strings"
	"testing"
)

// FuzzCopyRoundTrip tests that copying arbitrary bytes in and reading them
// back is lossless.
func FuzzCopyRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte("text1"))
	f.Add([]byte{0, 1, 2})
	f.Add([]byte("\xff\xfe binary"))

	f.Fuzz(func(t *testing.T, b []byte) {
		s := New(8)
		if err := s.Copy(b); err != nil {
			t.Fatalf("copy failed: %v", err)
		}

		if !bytes.Equal(s.Bytes(), b) {
			t.Errorf("content mismatch: got %q, want %q", s.Bytes(), b)
		}
		if s.Len() != len(b) {
			t.Errorf("length mismatch: got %d, want %d", s.Len(), len(b))
		}
		if s.Terminated()[s.Len()] != 0 {
			t.Error("missing terminator")
		}
		if s.Cap() < s.Len()+1 {
			t.Errorf("capacity invariant violated: cap %d len %d", s.Cap(), s.Len())
		}
	})
}

// FuzzSelfAppend tests the doubling property for arbitrary content.
func FuzzSelfAppend(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add("text1")
	f.Add("some longer content that spans a few words")

	f.Fuzz(func(t *testing.T, in string) {
		s := FromString(in) // minimum fit forces relocation on append
		if err := s.Append(s.Bytes()); err != nil {
			t.Fatalf("append failed: %v", err)
		}

		if s.Len() != 2*len(in) {
			t.Errorf("length mismatch: got %d, want %d", s.Len(), 2*len(in))
		}
		if s.String() != in+in {
			t.Errorf("content mismatch: got %q", s.String())
		}
	})
}

// FuzzDivideGlueRepair tests the split/join inverse and the repair
// round-trip for arbitrary sources and separators.
func FuzzDivideGlueRepair(f *testing.F) {
	f.Add("XYabcXYabcXY", byte('X'))
	f.Add("a,b,c", byte(','))
	f.Add("", byte(':'))
	f.Add("no separator here", byte('|'))
	f.Add(",,,", byte(','))

	f.Fuzz(func(t *testing.T, in string, sep byte) {
		if sep == 0 || strings.IndexByte(in, 0) >= 0 {
			// A zero separator or embedded zeros make the repair
			// step ambiguous by design.
			return
		}

		s := FromString(in)
		segs := s.Divide(sep)

		// Glue with the separator reconstructs the original.
		g := Glue(segs, []byte{sep})
		if g.String() != in {
			t.Errorf("glue mismatch: got %q, want %q", g.String(), in)
		}

		// Repair restores the mutated source.
		s.Repair(0, sep)
		if s.String() != in {
			t.Errorf("repair mismatch: got %q, want %q", s.String(), in)
		}
	})
}

// FuzzMapGrow cross-checks Map against strings.ReplaceAll.
func FuzzMapGrow(f *testing.F) {
	f.Add("XYabcXYabcXY", "XY", "GIG")
	f.Add("aaaa", "a", "bb")
	f.Add("abc", "b", "")
	f.Add("abc", "xyz", "q")

	f.Fuzz(func(t *testing.T, in, from, to string) {
		if len(from) == 0 {
			return
		}

		s := FromString(in)
		if err := s.MapString(from, to); err != nil {
			t.Fatalf("map failed: %v", err)
		}

		want := strings.ReplaceAll(in, from, to)
		if s.String() != want {
			t.Errorf("got %q, want %q", s.String(), want)
		}
		if s.Len() != len(want) {
			t.Errorf("length mismatch: got %d, want %d", s.Len(), len(want))
		}
	})
}
