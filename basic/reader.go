package basic

import (
	"errors"
	"io"
)

// Reader passes data through from an underlying reader while validating it.
// At the end of the stream it returns ErrInvalid instead of io.EOF if the
// data was not valid UTF-8.
type Reader struct {
	r   io.Reader
	v   *Validator
	err error
}

// NewReader returns a Reader validating everything read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, v: NewValidator()}
}

// Read implements io.Reader. Errors from the underlying reader other than
// io.EOF are returned unchanged.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.v.Update(p[:n])
	if errors.Is(err, io.EOF) {
		if verr := r.v.Finalize(); verr != nil {
			r.err = verr
			return n, verr
		}
		r.err = io.EOF
	}
	return n, err
}
