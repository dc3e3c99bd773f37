package strbuf

// Copy replaces the content with src, growing the reservation as needed.
// src may alias the String's own content; a full self-copy is a no-op.
func (s *String) Copy(src []byte) error {
	if err := s.EnsureCapacity(len(src) + 1); err != nil {
		return err
	}
	copy(s.buf, src)
	s.length = len(src)
	s.buf[s.length] = 0
	return nil
}

// CopyString replaces the content with str.
func (s *String) CopyString(str string) error {
	if err := s.EnsureCapacity(len(str) + 1); err != nil {
		return err
	}
	copy(s.buf, str)
	s.length = len(str)
	s.buf[s.length] = 0
	return nil
}

// Append concatenates src after the existing content. src may alias the
// String's own content: if growth relocates the buffer the source slice
// keeps pointing at the old storage, and without relocation the source and
// destination regions do not overlap.
func (s *String) Append(src []byte) error {
	if err := s.EnsureCapacity(s.length + len(src) + 1); err != nil {
		return err
	}
	copy(s.buf[s.length:], src)
	s.length += len(src)
	s.buf[s.length] = 0
	return nil
}

// AppendString concatenates str after the existing content.
func (s *String) AppendString(str string) error {
	if err := s.EnsureCapacity(s.length + len(str) + 1); err != nil {
		return err
	}
	copy(s.buf[s.length:], str)
	s.length += len(str)
	s.buf[s.length] = 0
	return nil
}

// AppendByte appends a single byte.
func (s *String) AppendByte(c byte) error {
	if err := s.EnsureCapacity(s.length + 2); err != nil {
		return err
	}
	s.buf[s.length] = c
	s.length++
	s.buf[s.length] = 0
	return nil
}

// Insert places src at pos, shifting the tail right. pos may be negative
// (counted from the end) and saturates past the end. src must not alias
// the String's own content.
func (s *String) Insert(pos int, src []byte) error {
	if err := s.EnsureCapacity(s.length + len(src) + 1); err != nil {
		return err
	}
	p := s.normIdx(pos)
	copy(s.buf[p+len(src):], s.buf[p:s.length])
	copy(s.buf[p:], src)
	s.length += len(src)
	s.buf[s.length] = 0
	return nil
}

// InsertString places str at pos, shifting the tail right.
func (s *String) InsertString(pos int, str string) error {
	if err := s.EnsureCapacity(s.length + len(str) + 1); err != nil {
		return err
	}
	p := s.normIdx(pos)
	copy(s.buf[p+len(str):], s.buf[p:s.length])
	copy(s.buf[p:], str)
	s.length += len(str)
	s.buf[s.length] = 0
	return nil
}

// Push inserts a single byte at pos.
func (s *String) Push(pos int, c byte) error {
	if err := s.EnsureCapacity(s.length + 2); err != nil {
		return err
	}
	p := s.normIdx(pos)
	copy(s.buf[p+1:], s.buf[p:s.length])
	s.buf[p] = c
	s.length++
	s.buf[s.length] = 0
	return nil
}

// Pop removes the byte at pos. Popping at the end position is a no-op.
func (s *String) Pop(pos int) {
	if len(s.buf) == 0 {
		return
	}
	p := s.normIdx(pos)
	if p == s.length {
		return
	}
	copy(s.buf[p:], s.buf[p+1:s.length])
	s.length--
	s.buf[s.length] = 0
}

// Limit truncates the content at pos.
func (s *String) Limit(pos int) {
	if len(s.buf) == 0 {
		return
	}
	p := s.normIdx(pos)
	s.buf[p] = 0
	s.length = p
}

// Cut removes cnt bytes from the end, or with a negative cnt, -cnt bytes
// from the start. A count larger than the length clears the string.
func (s *String) Cut(cnt int) {
	if len(s.buf) == 0 {
		return
	}
	if cnt >= 0 {
		if cnt > s.length {
			cnt = s.length
		}
		s.length -= cnt
	} else {
		n := -cnt
		if n > s.length {
			n = s.length
		}
		s.length -= n
		copy(s.buf, s.buf[n:n+s.length])
	}
	s.buf[s.length] = 0
}

// Select keeps the slice [a, b) of the content and discards the rest. The
// boundaries are normalized and reordered if inverted; the upper boundary
// is exclusive. No reallocation happens.
func (s *String) Select(a, b int) {
	if len(s.buf) == 0 {
		return
	}
	an := s.normIdx(a)
	bn := s.normIdx(b)
	if bn < an {
		an, bn = bn, an
	}
	n := bn - an
	copy(s.buf, s.buf[an:bn])
	s.length = n
	s.buf[n] = 0
}

// Fill appends c cnt times.
func (s *String) Fill(c byte, cnt int) error {
	if cnt <= 0 {
		return nil
	}
	if err := s.EnsureCapacity(s.length + cnt + 1); err != nil {
		return err
	}
	for i := 0; i < cnt; i++ {
		s.buf[s.length+i] = c
	}
	s.length += cnt
	s.buf[s.length] = 0
	return nil
}

// AppendRepeat appends src cnt times.
func (s *String) AppendRepeat(src []byte, cnt int) error {
	if cnt <= 0 || len(src) == 0 {
		return nil
	}
	if err := s.EnsureCapacity(s.length + cnt*len(src) + 1); err != nil {
		return err
	}
	for i := 0; i < cnt; i++ {
		copy(s.buf[s.length+i*len(src):], src)
	}
	s.length += cnt * len(src)
	s.buf[s.length] = 0
	return nil
}
