package restrict

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/restrict/internal/constraints"
)

// Path is a byte string guaranteed to contain no NUL byte, the form expected
// by OS-facing call sites: file paths, argv entries, environment values.
type Path = String[Nul]

// NewPath validates src as a [Path], reporting the first embedded NUL with
// its position.
func NewPath[T constraints.Byteseq](src T) (Path, error) {
	return errtrace.Wrap2(New[Nul](src))
}

// FilterPath builds a [Path] from src by dropping every NUL byte.
func FilterPath[T constraints.Byteseq](src T) Path {
	return Filter[Nul](src)
}
