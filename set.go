package restrict

import (
	"github.com/ghettovoice/restrict/internal/constraints"
)

// Set describes a fixed set of forbidden bytes.
//
// A Set implementation must be a stateless value type: [String] consults the
// zero value of its set parameter, so membership may depend only on the type
// itself. Two [String] values interoperate only when they share the same Set
// type.
type Set interface {
	// Contains reports whether c is a member of the set.
	Contains(c byte) bool
	// String returns a short set name used in error messages.
	String() string
}

// Bitmap is a 256-bit byte membership table, a building block for custom
// [Set] implementations.
type Bitmap [4]uint64

// BitmapOf returns a [Bitmap] containing every byte of chars.
func BitmapOf[T constraints.Byteseq](chars T) Bitmap {
	var b Bitmap
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		b[c>>6] |= 1 << (c & 63)
	}
	return b
}

// BitmapRange returns a [Bitmap] containing every byte in [lo, hi].
func BitmapRange(lo, hi byte) Bitmap {
	var b Bitmap
	for c := int(lo); c <= int(hi); c++ {
		b[c>>6] |= 1 << (c & 63)
	}
	return b
}

// Union returns a [Bitmap] containing every byte of b and other.
func (b Bitmap) Union(other Bitmap) Bitmap {
	for i := range other {
		b[i] |= other[i]
	}
	return b
}

// Contains reports whether c is a member of b.
func (b Bitmap) Contains(c byte) bool { return b[c>>6]&(1<<(c&63)) != 0 }

// Nul is the forbidden set holding the single NUL byte. It parameterizes
// [Path].
type Nul struct{}

func (Nul) Contains(c byte) bool { return c == 0 }

func (Nul) String() string { return "NUL" }

var controlChars = BitmapRange(0x00, 0x1f).Union(BitmapOf("\x7f"))

// Controls is the forbidden set of C0 control bytes and DEL. Filtering
// through it sanitizes text destined for display or logs.
type Controls struct{}

func (Controls) Contains(c byte) bool { return controlChars.Contains(c) }

func (Controls) String() string { return "control" }
