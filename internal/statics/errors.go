package statics

import "errors"

var (
	// ErrInsufficientSupports is returned when fewer than two supports are given
	ErrInsufficientSupports = errors.New("at least two supports are required")

	// ErrDegenerateSpan is returned when the two reaction supports coincide
	// or the reactions cannot be expressed as finite numbers
	ErrDegenerateSpan = errors.New("degenerate span")

	// ErrDegenerateLoad is returned for a trapezoidal load whose end
	// intensities sum to zero, leaving its centroid undefined
	ErrDegenerateLoad = errors.New("trapezoidal load has no defined centroid")
)
