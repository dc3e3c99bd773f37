// Package strbuf provides a managed dynamic string: a growable byte buffer
// that tracks its logical length separately from its reserved capacity and
// keeps the content null-terminated at all times, so the content view stays
// interchangeable with a plain C-style byte string.
//
// The strbuf package provides:
//
//   - Exact-fit capacity management (EnsureCapacity, ShrinkToFit)
//   - Mutation primitives: copy, append, insert, push/pop, cut, select
//   - Destructive split with aliasing segments and byte-remap repair
//   - Join, stateful tokenization, pattern substitution
//   - ASCII case conversion and path decomposition
//   - Formatted append with measure-then-write growth
//   - Pluggable allocators for backing storage
//
// Basic usage:
//
//	s := strbuf.New(128)
//	s.CopyString("hello")
//	s.AppendString(" world")   // no reallocation, spare capacity
//	s.ShrinkToFit()            // capacity drops to len+1
//
// Positions:
//
// Operations taking a position accept negative values counted from the end:
// -1 is the last byte, -2 the second to last. Positive positions past the
// end saturate to the length. A negative position that normalizes below
// zero is a caller error.
//
// Capacity policy:
//
// Every growth reallocates to the exact requirement of the calling
// operation. There is no growth factor, so repeated single-byte appends
// without a prior EnsureCapacity are quadratic. Callers that need amortized
// growth should reserve up front.
//
// Ownership:
//
// A String has exactly one owner and no internal locking. Methods must not
// be called concurrently on the same String; wrap access in your own
// synchronization if a String crosses goroutines.
package strbuf
