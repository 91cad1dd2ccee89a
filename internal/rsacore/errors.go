package rsacore

import "errors"

// Sentinel error kinds for the core. Callers should use errors.Is against
// these rather than string-matching error text.
var (
	// ErrEntropy wraps a failure to read from the OS random source.
	ErrEntropy = errors.New("rsacore: entropy source failed")

	// ErrNotInvertible is returned by ModInverse when gcd(a, m) != 1.
	ErrNotInvertible = errors.New("rsacore: not invertible")

	// ErrParse is returned by Denumbify when its input is not a valid
	// base-10 integer string.
	ErrParse = errors.New("rsacore: invalid decimal string")

	// ErrAlloc documents an allocation-failure error kind for API
	// completeness. Go's allocator has no recoverable failure path (it
	// panics the whole process instead), so this is never constructed by
	// this package; it exists so the error taxonomy is complete for callers
	// who want to reason about it.
	ErrAlloc = errors.New("rsacore: allocation failed")
)
