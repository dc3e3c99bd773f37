package strbuf

// Case conversion is in place and ASCII-only; bytes outside 'a'..'z' and
// 'A'..'Z' pass through untouched.

// ToUpper upper-cases the content.
func (s *String) ToUpper() {
	b := s.Bytes()
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
}

// ToLower lower-cases the content.
func (s *String) ToLower() {
	b := s.Bytes()
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
}

// Capitalize upper-cases the first byte.
func (s *String) Capitalize() {
	if s.length == 0 {
		return
	}
	c := s.buf[0]
	if 'a' <= c && c <= 'z' {
		s.buf[0] = c - 'a' + 'A'
	}
}
