package strbuf

// Map replaces every non-overlapping occurrence of from with to. When to
// is longer than from the occurrences are counted first, the reservation
// grows to the exact final size, and the existing content is shifted right
// so the rewrite can run left to right reading ahead of the write cursor.
// When to is not longer the rewrite runs in place, since the result never
// exceeds the original extent.
func (s *String) Map(from, to []byte) error {
	if len(from) == 0 || len(s.buf) == 0 {
		return nil
	}
	fl, tl := len(from), len(to)
	olen := s.length

	if tl <= fl {
		r, w := 0, 0
		for {
			i := index(s.buf[r:olen], from)
			if i < 0 {
				w += copy(s.buf[w:], s.buf[r:olen])
				break
			}
			w += copy(s.buf[w:], s.buf[r:r+i])
			w += copy(s.buf[w:], to)
			r += i + fl
		}
		s.length = w
		s.buf[w] = 0
		return nil
	}

	cnt := 0
	b := s.Bytes()
	for {
		i := index(b, from)
		if i < 0 {
			break
		}
		cnt++
		b = b[i+fl:]
	}
	if cnt == 0 {
		return nil
	}

	nlen := olen + cnt*(tl-fl)
	if err := s.EnsureCapacity(nlen + 1); err != nil {
		return err
	}
	shift := nlen - olen
	copy(s.buf[shift:], s.buf[:olen])
	s.length = nlen

	// The write cursor trails the read cursor by the room still owed to
	// pending replacements, so reads always stay ahead of writes.
	r, w := shift, 0
	for {
		i := index(s.buf[r:shift+olen], from)
		if i < 0 {
			w += copy(s.buf[w:], s.buf[r:shift+olen])
			break
		}
		w += copy(s.buf[w:], s.buf[r:r+i])
		w += copy(s.buf[w:], to)
		r += i + fl
	}
	s.buf[s.length] = 0
	return nil
}

// MapString replaces every non-overlapping occurrence of from with to.
func (s *String) MapString(from, to string) error {
	return s.Map([]byte(from), []byte(to))
}
