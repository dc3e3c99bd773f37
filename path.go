package strbuf

// Path decomposition works on '/'-separated byte paths, scanning from the
// end for the last separator.

// Dir truncates the content to its directory part. A path with no
// separator becomes ".", and a path whose only separator is the leading
// root becomes "/". The error is non-nil only when the "." result needs
// one more byte than a borrowed backing buffer holds.
func (s *String) Dir() error {
	i := s.length
	for i > 0 && s.buf[i] != '/' {
		i--
	}
	if i > 0 {
		s.buf[i] = 0
		s.length = i
		return nil
	}
	if s.length > 0 && s.buf[0] == '/' {
		s.buf[1] = 0
		s.length = 1
		return nil
	}
	if err := s.EnsureCapacity(2); err != nil {
		return err
	}
	s.buf[0] = '.'
	s.buf[1] = 0
	s.length = 1
	return nil
}

// Base drops the directory part, keeping the bytes after the last
// separator. A path with no separator is left unchanged.
func (s *String) Base() {
	if len(s.buf) == 0 {
		return
	}
	i := s.length
	for i > 0 && s.buf[i] != '/' {
		i--
	}
	if i == 0 && s.buf[0] != '/' {
		return
	}
	i++
	n := s.length - i
	copy(s.buf, s.buf[i:s.length])
	s.length = n
	s.buf[n] = 0
}
