package util

import (
	"github.com/ghettovoice/restrict/internal/constraints"
)

// CloneBytes returns a freshly allocated copy of src. The result never
// aliases src, whatever the underlying type; a plain []byte conversion is an
// identity conversion for []byte-kinded inputs and would share memory.
func CloneBytes[T constraints.Byteseq](src T) []byte {
	buf := make([]byte, len(src))
	for i := 0; i < len(src); i++ {
		buf[i] = src[i]
	}
	return buf
}
