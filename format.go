package strbuf

import "fmt"

// Appendf appends fmt-formatted output to the content. The output is
// materialized first so the reservation can grow to the exact requirement
// before the bytes are written in place; the append never truncates and
// never over-allocates.
func (s *String) Appendf(format string, args ...any) error {
	out := fmt.Sprintf(format, args...)
	if err := s.EnsureCapacity(s.length + len(out) + 1); err != nil {
		return err
	}
	copy(s.buf[s.length:], out)
	s.length += len(out)
	s.buf[s.length] = 0
	return nil
}

// AppendFormat appends formatted output using a small fixed verb set,
// avoiding the fmt machinery. Two passes run over the format: the first
// measures the exact output size, the second writes in place after a
// single capacity ensure.
//
// Verbs:
//
//	%s  string or []byte
//	%S  *String
//	%i  int
//	%I  int64
//	%u  uint
//	%U  uint64
//	%c  byte
//	%%  literal '%'
//
// An argument whose type does not match its verb contributes nothing
// (a zero byte for %c); an unknown verb emits the verb character.
func (s *String) AppendFormat(format string, args ...any) error {
	size := 0
	argi := 0
	next := func() any {
		if argi < len(args) {
			a := args[argi]
			argi++
			return a
		}
		return nil
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			size++
			continue
		}
		i++
		switch format[i] {
		case 's':
			switch v := next().(type) {
			case string:
				size += len(v)
			case []byte:
				size += len(v)
			}
		case 'S':
			if v, ok := next().(*String); ok {
				size += v.Len()
			}
		case 'i':
			if v, ok := next().(int); ok {
				size += intLen(int64(v))
			}
		case 'I':
			if v, ok := next().(int64); ok {
				size += intLen(v)
			}
		case 'u':
			if v, ok := next().(uint); ok {
				size += uintLen(uint64(v))
			}
		case 'U':
			if v, ok := next().(uint64); ok {
				size += uintLen(v)
			}
		case 'c':
			next()
			size++
		default:
			// '%' and unknown verbs both emit one byte.
			size++
		}
	}

	if err := s.EnsureCapacity(s.length + size + 1); err != nil {
		return err
	}

	argi = 0
	w := s.length
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			s.buf[w] = format[i]
			w++
			continue
		}
		i++
		switch format[i] {
		case 's':
			switch v := next().(type) {
			case string:
				w += copy(s.buf[w:], v)
			case []byte:
				w += copy(s.buf[w:], v)
			}
		case 'S':
			if v, ok := next().(*String); ok {
				w += copy(s.buf[w:], v.Bytes())
			}
		case 'i':
			if v, ok := next().(int); ok {
				w += putInt(s.buf[w:], int64(v))
			}
		case 'I':
			if v, ok := next().(int64); ok {
				w += putInt(s.buf[w:], v)
			}
		case 'u':
			if v, ok := next().(uint); ok {
				w += putUint(s.buf[w:], uint64(v))
			}
		case 'U':
			if v, ok := next().(uint64); ok {
				w += putUint(s.buf[w:], v)
			}
		case 'c':
			v, _ := next().(byte)
			s.buf[w] = v
			w++
		case '%':
			s.buf[w] = '%'
			w++
		default:
			s.buf[w] = format[i]
			w++
		}
	}

	s.length = w
	s.buf[w] = 0
	return nil
}

// uintLen returns the decimal digit count of u.
func uintLen(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

// intLen returns the decimal length of v, sign included.
func intLen(v int64) int {
	if v < 0 {
		// uint64(-v) is the correct magnitude even for MinInt64.
		return uintLen(uint64(-v)) + 1
	}
	return uintLen(uint64(v))
}

// putUint writes the decimal form of u into dst and returns the byte
// count. dst must hold uintLen(u) bytes.
func putUint(dst []byte, u uint64) int {
	n := uintLen(u)
	for i := n - 1; i >= 0; i-- {
		dst[i] = byte(u%10) + '0'
		u /= 10
	}
	return n
}

// putInt writes the decimal form of v into dst and returns the byte count.
func putInt(dst []byte, v int64) int {
	if v < 0 {
		dst[0] = '-'
		return putUint(dst[1:], uint64(-v)) + 1
	}
	return putUint(dst, uint64(v))
}
