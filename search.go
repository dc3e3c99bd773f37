package strbuf

import "bytes"

// Index returns the position of the first occurrence of pattern in the
// content, or -1. An empty pattern is never found.
func (s *String) Index(pattern []byte) int {
	return index(s.Bytes(), pattern)
}

// IndexString returns the position of the first occurrence of pattern, or
// -1.
func (s *String) IndexString(pattern string) int {
	if len(pattern) == 0 {
		return -1
	}
	return bytes.Index(s.Bytes(), []byte(pattern))
}

// index is Index over a raw byte region. The empty pattern yields -1, not
// a match at 0.
func index(b, pattern []byte) int {
	if len(pattern) == 0 {
		return -1
	}
	return bytes.Index(b, pattern)
}

// FindByteRight scans from pos toward the end for c. Returns the position
// or -1.
func (s *String) FindByteRight(c byte, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < s.length; i++ {
		if s.buf[i] == c {
			return i
		}
	}
	return -1
}

// FindByteLeft scans from pos toward the start for c. Returns the position
// or -1.
func (s *String) FindByteLeft(c byte, pos int) int {
	if s.length == 0 {
		return -1
	}
	if pos >= s.length {
		pos = s.length - 1
	}
	for i := pos; i >= 0; i-- {
		if s.buf[i] == c {
			return i
		}
	}
	return -1
}
