// Package lfsr steps linear-feedback shift registers over GF(2).
//
// Two roles live here:
//   - Stepper / Predict run a recovered connection polynomial forward
//     from the last observed bits, producing future bits.
//   - Fibonacci is a reference generator used to produce known sequences
//     (tests, examples, sample generation).
//
// Both use the same convention as package bm: for a polynomial
// C[0..L] with C[0] = 1,
//
//	s[t] = XOR over i in 1..L of (C[i] AND s[t-i])
//
// ⚙️ Usage:
//
//	next, err := lfsr.Predict(rec.Poly, bits[len(bits)-rec.Degree:], 10)
//
// Performance:
//
//   - Time:   O(L·k) for k predicted bits
//   - Memory: O(L+k), reused across calls by a Stepper
package lfsr
