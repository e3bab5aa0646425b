package bm

import (
	"strconv"
	"strings"
)

// Recurrence is a linear recurrence over GF(2).
//
// Fields:
//   - Degree — L, the number of previous bits the recurrence reads.
//   - Poly   — connection polynomial coefficients C[0..L], each 0 or 1,
//     with Poly[0] == 1 and len(Poly) == Degree+1.
//
// For every t ≥ Degree the recurrence states
//
//	s[t] = XOR over i in 1..Degree of (Poly[i] AND s[t-i])
type Recurrence struct {
	Degree int
	Poly   []uint8
}

// Taps returns the indices i ≥ 1 with Poly[i] == 1, in increasing order.
func (r Recurrence) Taps() []int {
	var taps []int
	for i := 1; i < len(r.Poly); i++ {
		if r.Poly[i] != 0 {
			taps = append(taps, i)
		}
	}

	return taps
}

// Next evaluates the recurrence on window, whose last Degree elements are
// the most recent bits (oldest first), and returns the bit that follows.
// A zero-degree recurrence always yields 0.
func (r Recurrence) Next(window []uint8) uint8 {
	var fb uint8
	l := len(window)
	for i := 1; i <= r.Degree; i++ {
		fb ^= r.Poly[i] & window[l-i]
	}

	return fb
}

// Check returns the first index t in [Degree, len(bits)) where bits[t]
// differs from the recurrence's value, or -1 if the recurrence reproduces
// the whole sequence.
//
// Complexity: O(n·L).
func (r Recurrence) Check(bits []uint8) int {
	for t := r.Degree; t < len(bits); t++ {
		if r.Next(bits[:t]) != bits[t] {
			return t
		}
	}

	return -1
}

// String renders the connection polynomial, e.g. "1 + x + x^4".
func (r Recurrence) String() string {
	if len(r.Poly) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString("1")
	for _, i := range r.Taps() {
		sb.WriteString(" + x")
		if i > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
