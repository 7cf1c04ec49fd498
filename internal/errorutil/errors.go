package errorutil

//go:generate errtrace -w .

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }
