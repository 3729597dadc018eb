package basic

// Utf8Error is the error returned by the basic validators. It records only
// that the input was invalid; use the compat package to find out where.
type Utf8Error struct{}

// Error implements the error interface.
func (Utf8Error) Error() string {
	return "invalid utf-8"
}

// ErrInvalid is the value returned by every failing basic validation.
// Errors from the compat package also match it with errors.Is.
var ErrInvalid error = Utf8Error{}
