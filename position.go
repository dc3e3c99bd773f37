package strbuf

// normIdx normalizes a possibly negative position. A positive position is
// saturated to the content length; a negative one counts from the end, -1
// being the last byte. For a String of length 4:
//
//	Bytes:     a  b  c  d  \0
//	Positive:  0  1  2  3  4
//	Negative: -4 -3 -2 -1
//
// A negative position below -Len() is a caller error; the result indexes
// out of range.
func (s *String) normIdx(pos int) int {
	if pos < 0 {
		return s.length + pos
	}
	if pos > s.length {
		return s.length
	}
	return pos
}

// Invert converts a position between its positive and negative forms
// without changing the logical position it names.
func (s *String) Invert(pos int) int {
	if pos > 0 {
		return -(s.length - pos)
	}
	return s.length + pos
}
