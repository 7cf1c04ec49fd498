package errorutil

import "errors"

// IsRestrictionErr returns true if the error reports a forbidden-byte
// rejection.
func IsRestrictionErr(err error) bool {
	var e interface{ Restriction() bool }
	return errors.As(err, &e) && e.Restriction()
}

// IsOutOfRangeErr returns true if the error reports an out-of-range access.
func IsOutOfRangeErr(err error) bool {
	var e interface{ OutOfRange() bool }
	return errors.As(err, &e) && e.OutOfRange()
}
