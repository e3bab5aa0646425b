package lfsr

import "fmt"

// Stepper generates future bits of a recurrence from its tail state.
// Its working buffer is kept between calls. Not safe for concurrent use.
// The zero value is ready to use.
type Stepper struct {
	state []uint8
}

// Run fills out with len(out) bits following tail under poly.
//
// Preconditions (unchecked): len(poly) ≥ 1, len(tail) == len(poly)-1,
// every element is 0 or 1. With a degree-0 poly every output bit is 0.
//
// Steps:
//  1. Copy tail into the working buffer (oldest first).
//  2. For t = 0..k-1: fb = XOR_{i=1..L} poly[i]·state[L+t-i];
//     state[L+t] = out[t] = fb.
func (s *Stepper) Run(poly, tail, out []uint8) {
	l := len(poly) - 1
	k := len(out)
	if cap(s.state) < l+k {
		s.state = make([]uint8, l+k)
	}
	state := s.state[:l+k]
	copy(state, tail)

	for t := 0; t < k; t++ {
		var fb uint8
		for i := 1; i <= l; i++ {
			fb ^= poly[i] & state[l+t-i]
		}
		state[l+t] = fb
		out[t] = fb
	}
}

// Predict validates its arguments and returns the k bits that follow tail
// under the recurrence poly.
//
// Errors:
//   - ErrBadPoly     — poly empty or poly[0] != 1.
//   - ErrStateLength — len(tail) != len(poly)-1.
//   - ErrBadCount    — k < 1.
func Predict(poly, tail []uint8, k int) ([]uint8, error) {
	if err := validate(poly, tail); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("Predict(k=%d): %w", k, ErrBadCount)
	}
	out := make([]uint8, k)
	var s Stepper
	s.Run(poly, tail, out)

	return out, nil
}

// validate checks the shape shared by Predict and NewFibonacci.
func validate(poly, state []uint8) error {
	if len(poly) == 0 || poly[0] != 1 {
		return ErrBadPoly
	}
	if len(state) != len(poly)-1 {
		return fmt.Errorf("degree %d, state %d bits: %w", len(poly)-1, len(state), ErrStateLength)
	}

	return nil
}
