package strbuf

// Option is a functional option for configuring a String at construction.
type Option func(*String)

// WithAllocator makes the String draw its backing storage from a, instead
// of the process-wide default. The same allocator serves the String for its
// whole lifetime.
func WithAllocator(a Allocator) Option {
	return func(s *String) {
		if a != nil {
			s.alloc = a
		}
	}
}
