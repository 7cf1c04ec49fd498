package restrict

import (
	"bytes"
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/restrict/internal/constraints"
	"github.com/ghettovoice/restrict/internal/util"
)

// String is a byte string guaranteed to contain no byte of the forbidden set
// S. The zero value is an empty, valid string.
//
// The wrapped buffer is exclusively owned: constructors copy their input and
// accessors hand out copies or immutable views, so no two live values alias
// the same memory. Every operation is a plain in-memory computation; sharing
// one value across goroutines requires external synchronization.
type String[S Set] struct {
	buf []byte
}

// New builds a [String] from src, scanning it left to right for forbidden
// bytes. The first offending byte fails the construction with a
// [*ContentError] carrying the byte and its position; otherwise the content
// is adopted verbatim with a single copy.
//
// New is the canonical entry point for untrusted input. Use [Filter] where
// silently dropping forbidden bytes is the intended policy.
func New[S Set, T constraints.Byteseq](src T) (String[S], error) {
	var set S
	for i := 0; i < len(src); i++ {
		if set.Contains(src[i]) {
			return String[S]{}, errtrace.Wrap(&ContentError{Byte: src[i], Pos: i, Set: set.String()})
		}
	}
	return String[S]{buf: util.CloneBytes(src)}, nil
}

// Filter builds a [String] from src by dropping every forbidden byte,
// preserving the relative order of the rest. It never fails and runs in a
// single pass with in-place compaction on the owned copy.
func Filter[S Set, T constraints.Byteseq](src T) String[S] {
	var set S
	buf := util.CloneBytes(src)
	n := 0
	for i := 0; i < len(buf); i++ {
		if set.Contains(buf[i]) {
			continue
		}
		buf[n] = buf[i]
		n++
	}
	return String[S]{buf: buf[:n]}
}

// Len returns the length in bytes.
func (s String[S]) Len() int { return len(s.buf) }

func (s String[S]) String() string { return string(s.buf) }

// Bytes returns a copy of the content.
func (s String[S]) Bytes() []byte { return slices.Clone(s.buf) }

func (s String[S]) IsZero() bool { return len(s.buf) == 0 }

func (s String[S]) Clone() String[S] { return String[S]{buf: slices.Clone(s.buf)} }

// Equal reports byte-for-byte equality with val. It accepts another
// [String] sharing the same set, a pointer to one, or a plain string or
// []byte; the plain side is compared raw, without validation. Any other
// type compares unequal.
func (s String[S]) Equal(val any) bool {
	switch v := val.(type) {
	case String[S]:
		return bytes.Equal(s.buf, v.buf)
	case *String[S]:
		return v != nil && bytes.Equal(s.buf, v.buf)
	case string:
		return string(s.buf) == v
	case []byte:
		return bytes.Equal(s.buf, v)
	default:
		return false
	}
}

// At returns the byte at index i. A negative i is end-relative: -1 is the
// last byte.
func (s String[S]) At(i int) (byte, error) {
	j := i
	if j < 0 {
		j += len(s.buf)
	}
	if j < 0 || j >= len(s.buf) {
		return 0, errtrace.Wrap(&IndexError{Index: i, Len: len(s.buf)})
	}
	return s.buf[j], nil
}

// SetAt overwrites the byte at index i with c. A forbidden c fails with a
// [*ByteError] before anything is written; i follows the same indexing as
// [String.At].
func (s *String[S]) SetAt(i int, c byte) error {
	j := i
	if j < 0 {
		j += len(s.buf)
	}
	if j < 0 || j >= len(s.buf) {
		return errtrace.Wrap(&IndexError{Index: i, Len: len(s.buf)})
	}
	var set S
	if set.Contains(c) {
		return errtrace.Wrap(&ByteError{Byte: c, Set: set.String()})
	}
	s.buf[j] = c
	return nil
}

// Append concatenates other onto s. Both operands already satisfy the
// invariant, so no validation is needed and it never fails.
func (s *String[S]) Append(other String[S]) {
	s.buf = append(s.buf, other.buf...)
}

// AppendString validates v while copying it onto s in a single pass. On a
// forbidden byte it fails with a [*ByteError] and the prior content and
// length of s are fully restored: bytes are staged in spare capacity past
// the committed length, which moves only after the whole of v validated.
func (s *String[S]) AppendString(v string) error {
	if len(v) == 0 {
		return nil
	}
	var set S
	s.buf = slices.Grow(s.buf, len(v))
	buf := s.buf
	for i := 0; i < len(v); i++ {
		if set.Contains(v[i]) {
			return errtrace.Wrap(&ByteError{Byte: v[i], Set: set.String()})
		}
		buf = append(buf, v[i])
	}
	s.buf = buf
	return nil
}

// AppendByte appends c, rejecting a forbidden byte with a [*ByteError]
// before writing.
func (s *String[S]) AppendByte(c byte) error {
	var set S
	if set.Contains(c) {
		return errtrace.Wrap(&ByteError{Byte: c, Set: set.String()})
	}
	s.buf = append(s.buf, c)
	return nil
}

func (s String[S]) LogValue() slog.Value { return slog.StringValue(string(s.buf)) }

func (s String[S]) MarshalText() ([]byte, error) { return slices.Clone(s.buf), nil }

// UnmarshalText funnels text through the checked construction path.
func (s *String[S]) UnmarshalText(text []byte) error {
	v, err := New[S](text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*s = v
	return nil
}
