package eq

import "errors"

var (
	// ErrUnknownKind is returned for a band kind name or value that is not
	// supported.
	ErrUnknownKind = errors.New("eq: unknown band kind")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite
	// sample rate.
	ErrInvalidSampleRate = errors.New("eq: invalid sample rate")
	// ErrInvalidSize is returned for an FFT size that is not a power of two
	// of at least 16.
	ErrInvalidSize = errors.New("eq: invalid FFT size")
)
