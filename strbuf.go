package strbuf

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// Errors returned by strbuf operations.
var (
	// ErrCapacityExceeded is returned when an operation needs more storage
	// than a borrowed (caller-supplied) backing buffer can provide.
	ErrCapacityExceeded = errors.New("capacity exceeded for borrowed storage")
)

// String is a managed dynamic string. It owns a reserved byte buffer and
// tracks the logical content length separately from the reserved capacity.
// The content is always followed by a single zero byte, so Terminated()
// yields a valid C-style string.
//
// The zero value is an empty string with no reserved storage; the first
// growing operation allocates.
//
// Methods that may grow storage use a pointer receiver and swap the backing
// buffer in place, so every holder of the *String stays coherent across a
// relocation.
type String struct {
	buf      []byte    // reserved storage; len(buf) is the capacity
	length   int       // content bytes, excluding the terminator
	borrowed bool      // backing storage supplied by the caller via Use
	alloc    Allocator // nil means the process-wide default
}

// New creates a String with the given reserved capacity in bytes. The
// capacity includes the terminator slot, so New(n) holds up to n-1 content
// bytes without reallocation. A capacity below 1 is raised to 1.
func New(size int, opts ...Option) *String {
	s := &String{}
	for _, opt := range opts {
		opt(s)
	}
	if size < 1 {
		size = 1
	}
	s.buf = s.allocator().Alloc(size)
	s.buf[0] = 0
	return s
}

// Use wraps caller-supplied memory as a String. The whole slice is content
// storage; the caller retains ownership of the allocation. Operations that
// would grow past len(mem) fail with ErrCapacityExceeded, and Release does
// not return the memory to an allocator.
func Use(mem []byte) *String {
	s := &String{buf: mem, borrowed: true}
	if len(mem) > 0 {
		mem[0] = 0
	}
	return s
}

// FromString creates a String from str with minimum-fit reservation
// (len(str)+1).
func FromString(str string, opts ...Option) *String {
	s := New(len(str)+1, opts...)
	copy(s.buf, str)
	s.length = len(str)
	s.buf[s.length] = 0
	return s
}

// FromStringSize creates a String from str with the given reservation.
// The reservation is enlarged if str does not fit.
func FromStringSize(str string, size int, opts ...Option) *String {
	if size < len(str)+1 {
		size = len(str) + 1
	}
	s := New(size, opts...)
	copy(s.buf, str)
	s.length = len(str)
	s.buf[s.length] = 0
	return s
}

// FromBytes creates a String from b with minimum-fit reservation.
func FromBytes(b []byte, opts ...Option) *String {
	s := New(len(b)+1, opts...)
	copy(s.buf, b)
	s.length = len(b)
	s.buf[s.length] = 0
	return s
}

// Len returns the content length in bytes, excluding the terminator.
func (s *String) Len() int {
	return s.length
}

// Cap returns the reserved capacity in bytes, including the terminator
// slot. Cap() >= Len()+1 whenever storage is reserved.
func (s *String) Cap() int {
	return len(s.buf)
}

// IsEmpty returns true if the content length is zero.
func (s *String) IsEmpty() bool {
	return s.length == 0
}

// Bytes returns the content as a byte slice view. The view aliases the
// backing storage: it is invalidated by any operation that may relocate the
// buffer, and writes through it are visible in the String.
func (s *String) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[:s.length]
}

// Terminated returns the content view including the trailing zero byte.
func (s *String) Terminated() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[:s.length+1]
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.Bytes())
}

// End returns the last content byte, or 0 for an empty string.
func (s *String) End() byte {
	if s.length == 0 {
		return 0
	}
	return s.buf[s.length-1]
}

// EnsureCapacity grows the reservation to exactly min bytes if the current
// capacity is smaller. The capacity never decreases. Growth is sized to the
// request, not to a growth factor; see the package documentation for the
// performance implications.
func (s *String) EnsureCapacity(min int) error {
	if len(s.buf) >= min {
		return nil
	}
	if s.borrowed {
		return ErrCapacityExceeded
	}
	a := s.allocator()
	nb := a.Alloc(min)
	if len(s.buf) > 0 {
		copy(nb, s.buf[:s.length+1])
		a.Free(s.buf)
	} else {
		nb[0] = 0
	}
	s.buf = nb
	return nil
}

// ShrinkToFit reduces the reservation to Len()+1 if the current capacity
// exceeds it. Borrowed storage is left untouched.
func (s *String) ShrinkToFit() {
	min := s.length + 1
	if len(s.buf) <= min || s.borrowed {
		return
	}
	a := s.allocator()
	nb := a.Alloc(min)
	copy(nb, s.buf[:min])
	a.Free(s.buf)
	s.buf = nb
}

// Release returns owned storage to the allocator and resets the String to
// the empty zero-value state. Borrowed storage is detached but not freed.
// Releasing an already released String is a no-op.
func (s *String) Release() {
	if s.buf != nil && !s.borrowed {
		s.allocator().Free(s.buf)
	}
	s.buf = nil
	s.length = 0
	s.borrowed = false
}

// Clear sets the content length to zero. The reservation is not touched.
func (s *String) Clear() {
	s.length = 0
	if len(s.buf) > 0 {
		s.buf[0] = 0
	}
}

// Dup returns a copy of s using the same reservation size.
func (s *String) Dup() *String {
	n := &String{alloc: s.alloc}
	size := len(s.buf)
	if size < 1 {
		size = 1
	}
	n.buf = n.allocator().Alloc(size)
	copy(n.buf, s.buf[:s.length])
	n.length = s.length
	n.buf[n.length] = 0
	return n
}

// Rep returns a copy of s with minimum-fit reservation.
func (s *String) Rep() *String {
	n := &String{alloc: s.alloc}
	n.buf = n.allocator().Alloc(s.length + 1)
	copy(n.buf, s.buf[:s.length])
	n.length = s.length
	n.buf[n.length] = 0
	return n
}

// Compare compares the content of s and o like bytes.Compare.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Equal reports whether s and o hold identical content.
func (s *String) Equal(o *String) bool {
	return s.length == o.length && bytes.Equal(s.Bytes(), o.Bytes())
}

// Sort sorts a list of Strings into ascending byte order.
func Sort(list []*String) {
	sort.Slice(list, func(i, j int) bool {
		return bytes.Compare(list[i].Bytes(), list[j].Bytes()) < 0
	})
}

// Dump returns the content followed by the descriptor fields. This is a
// debugging aid, not a serialization format.
func (s *String) Dump() string {
	return fmt.Sprintf("%s\n  len: %d\n  res: %d\n", s.Bytes(), s.length, s.Cap())
}

// Print writes Dump to standard output.
func (s *String) Print() {
	fmt.Print(s.Dump())
}
