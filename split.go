package strbuf

// Split operations are destructive and zero-copy: the delimiter bytes in
// the content are overwritten with 0 and the returned segments alias the
// backing storage. Segments stay valid until the next mutating operation,
// Repair, or Release on the source. Repair restores the delimiter bytes.

// DivideCount returns the number of segments a split on sep would produce,
// without mutating the content. A delimiter at the very end contributes a
// trailing empty segment.
func (s *String) DivideCount(sep byte) int {
	n := 1
	for _, c := range s.Bytes() {
		if c == sep {
			n++
		}
	}
	return n
}

// Divide splits the content on sep, overwriting each delimiter with 0, and
// returns the segments as aliasing views.
func (s *String) Divide(sep byte) [][]byte {
	segs := make([][]byte, s.DivideCount(sep))
	s.splitByte(sep, segs)
	return segs
}

// DivideInto splits the content on sep into caller-provided storage. All
// delimiters are overwritten with 0 even when segs is too small to hold
// every segment. Returns the total segment count.
func (s *String) DivideInto(sep byte, segs [][]byte) int {
	return s.splitByte(sep, segs)
}

func (s *String) splitByte(sep byte, segs [][]byte) int {
	b := s.buf[:s.length]
	cnt := 0
	start := 0
	for i := 0; i < len(b); i++ {
		if b[i] == sep {
			b[i] = 0
			if cnt < len(segs) {
				segs[cnt] = b[start:i]
			}
			cnt++
			start = i + 1
		}
	}
	if cnt < len(segs) {
		segs[cnt] = b[start:]
	}
	return cnt + 1
}

// SegmentCount returns the number of segments a split on the substring sep
// would produce, without mutating the content.
func (s *String) SegmentCount(sep []byte) int {
	n := 1
	b := s.Bytes()
	for {
		i := index(b, sep)
		if i < 0 {
			return n
		}
		n++
		b = b[i+len(sep):]
	}
}

// Segment splits the content on the substring sep. Only the first byte of
// each delimiter occurrence is overwritten with 0; segments end before the
// occurrence and resume after it.
func (s *String) Segment(sep []byte) [][]byte {
	segs := make([][]byte, s.SegmentCount(sep))
	s.splitSegment(sep, segs)
	return segs
}

// SegmentInto splits the content on the substring sep into caller-provided
// storage. Returns the total segment count.
func (s *String) SegmentInto(sep []byte, segs [][]byte) int {
	return s.splitSegment(sep, segs)
}

func (s *String) splitSegment(sep []byte, segs [][]byte) int {
	b := s.buf[:s.length]
	cnt := 0
	off := 0
	for {
		i := index(b[off:], sep)
		if i < 0 {
			break
		}
		hit := off + i
		b[hit] = 0
		if cnt < len(segs) {
			segs[cnt] = b[off:hit]
		}
		cnt++
		off = hit + len(sep)
	}
	if cnt < len(segs) {
		segs[cnt] = b[off:]
	}
	return cnt + 1
}

// Repair remaps every occurrence of the byte from to the byte to across
// the whole content. Use Repair(0, sep) to restore delimiters after a
// destructive split.
func (s *String) Repair(from, to byte) {
	b := s.Bytes()
	for i, c := range b {
		if c == from {
			b[i] = to
		}
	}
}

// Glue joins parts with sep between (not after) each pair into a new
// String sized exactly to the total.
func Glue(parts [][]byte, sep []byte) *String {
	if len(parts) == 0 {
		return New(1)
	}
	total := (len(parts) - 1) * len(sep)
	for _, p := range parts {
		total += len(p)
	}
	s := New(total + 1)
	w := 0
	for i, p := range parts {
		w += copy(s.buf[w:], p)
		if i < len(parts)-1 {
			w += copy(s.buf[w:], sep)
		}
	}
	s.length = w
	s.buf[w] = 0
	return s
}

// GlueStrings joins parts with sep between each pair.
func GlueStrings(parts []string, sep string) *String {
	bp := make([][]byte, len(parts))
	for i, p := range parts {
		bp[i] = []byte(p)
	}
	return Glue(bp, []byte(sep))
}

// TokBegin is the initial cursor value for Tok.
const TokBegin = -1

// Tok produces the next token from the content, delimited by delim. The
// cursor threads the iteration state: start with *pos == TokBegin, and
// call repeatedly until Tok returns nil.
//
// Tok is destructive and non-restartable: each call overwrites the first
// byte of the next delimiter occurrence with 0 and restores the one it
// nulled previously, so the content is only consistent around the most
// recently returned token. A source with no delimiter occurrence yields no
// token at all, and a trailing delimiter yields no trailing empty token.
func (s *String) Tok(delim []byte, pos *int) []byte {
	switch {
	case *pos == TokBegin:
		idx := index(s.Bytes(), delim)
		if idx < 0 {
			return nil
		}
		s.buf[idx] = 0
		*pos = idx
		return s.buf[:idx]
	case *pos >= s.length:
		return nil
	default:
		s.buf[*pos] = delim[0]
		p := *pos + len(delim)
		if p >= s.length {
			*pos = s.length
			return nil
		}
		idx := index(s.buf[p:s.length], delim)
		if idx < 0 {
			*pos = s.length
			return s.buf[p:s.length]
		}
		s.buf[p+idx] = 0
		*pos = p + idx
		return s.buf[p : p+idx]
	}
}

// DropExt truncates the content at the first occurrence of ext. Returns
// false if ext does not occur.
func (s *String) DropExt(ext []byte) bool {
	idx := s.Index(ext)
	if idx < 0 {
		return false
	}
	s.buf[idx] = 0
	s.length = idx
	return true
}
