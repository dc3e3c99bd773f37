package strbuf

import (
	"io"
	"os"
)

// ReadFile reads an entire file into a new String. The reservation is
// sized from a stat call and the content is read in one pass, so the
// resulting length equals the file size.
func ReadFile(name string, opts ...Option) (*String, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	size := int(fi.Size())

	s := New(size+1, opts...)
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := io.ReadFull(f, s.buf[:size]); err != nil {
		return nil, err
	}
	s.length = size
	s.buf[size] = 0
	return s, nil
}

// WriteFile writes exactly the content bytes to a file, without the
// terminator. The file is created user read/write only.
func (s *String) WriteFile(name string) error {
	return os.WriteFile(name, s.Bytes(), 0o600)
}
