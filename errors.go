package restrict

import (
	"fmt"

	"github.com/ghettovoice/restrict/internal/errorutil"
)

// Common errors.
const (
	// ErrForbiddenByte is matched by errors returned when a forbidden byte
	// is rejected.
	ErrForbiddenByte Error = "forbidden byte"
	// ErrOutOfRange is matched by errors returned on out-of-bounds access.
	ErrOutOfRange Error = "index out of range"
)

// Error represents a restrict error.
// See [errorutil.Error].
type Error = errorutil.Error

// ByteError reports a single forbidden byte rejected at a write or append
// site. The receiver is left unchanged.
type ByteError struct {
	Byte byte
	Set  string
}

func (err *ByteError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("restrict.ByteError: byte %q is in forbidden set %s", err.Byte, err.Set)
}

func (err *ByteError) Restriction() bool { return true }

func (err *ByteError) Unwrap() error { return ErrForbiddenByte }

// ContentError reports the first forbidden byte found by a bulk validation,
// with its zero-based position in the input.
type ContentError struct {
	Byte byte
	Pos  int
	Set  string
}

func (err *ContentError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("restrict.ContentError: byte %q at position %d is in forbidden set %s",
		err.Byte, err.Pos, err.Set)
}

func (err *ContentError) Restriction() bool { return true }

func (err *ContentError) Unwrap() error { return ErrForbiddenByte }

// IndexError reports an out-of-range index used for read or write access.
type IndexError struct {
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("restrict.IndexError: index %d out of range for length %d", err.Index, err.Len)
}

func (err *IndexError) OutOfRange() bool { return true }

func (err *IndexError) Unwrap() error { return ErrOutOfRange }
