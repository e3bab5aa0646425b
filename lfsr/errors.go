package lfsr

import "errors"

var (
	// ErrBadPoly indicates an empty connection polynomial or one whose
	// constant term is not 1.
	ErrBadPoly = errors.New("lfsr: connection polynomial must start with 1")

	// ErrStateLength indicates that the seed or tail state does not hold
	// exactly L bits for a degree-L polynomial.
	ErrStateLength = errors.New("lfsr: state length must equal polynomial degree")

	// ErrBadCount indicates a non-positive number of requested bits.
	ErrBadCount = errors.New("lfsr: count must be ≥ 1")
)
