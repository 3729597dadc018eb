package basic

import (
	"github.com/coregx/simdutf8/internal/dispatch"
)

var (
	// ErrUnknownBackend is returned for a backend name that does not exist.
	ErrUnknownBackend = dispatch.ErrUnknownBackend

	// ErrUnsupportedBackend is returned for a backend the running CPU cannot
	// execute.
	ErrUnsupportedBackend = dispatch.ErrUnsupportedBackend
)

// Backends returns the names of the backends the running CPU supports, in
// the order automatic selection prefers them. The first entry is the one
// Validate uses.
func Backends() []string {
	supported := dispatch.SupportedBackends()
	names := make([]string, len(supported))
	for i, b := range supported {
		names[i] = b.String()
	}
	return names
}

// ValidateWith is Validate on a named backend. It fails with
// ErrUnknownBackend or ErrUnsupportedBackend instead of validating when the
// backend cannot be used.
func ValidateWith(backend string, input []byte) error {
	impl, err := dispatch.LookupName(backend)
	if err != nil {
		return err
	}
	if impl.Valid(input) {
		return nil
	}
	return ErrInvalid
}

// NewValidatorWith returns an empty Validator running on the named backend.
func NewValidatorWith(backend string) (*Validator, error) {
	impl, err := dispatch.LookupName(backend)
	if err != nil {
		return nil, err
	}
	return &Validator{stream: impl.NewStreamer()}, nil
}

// NewChunkedValidatorWith returns an empty ChunkedValidator running on the
// named backend.
func NewChunkedValidatorWith(backend string) (*ChunkedValidator, error) {
	impl, err := dispatch.LookupName(backend)
	if err != nil {
		return nil, err
	}
	return &ChunkedValidator{stream: impl.NewChunkedStreamer()}, nil
}
