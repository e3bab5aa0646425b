// Package prng provides GF(2)-linear pseudo-random generators with known
// structure. They are the targets lfsrcrack is meant to break and serve as
// ground truth in tests, examples and the `gen` command.
//
// Every generator here has a state that evolves by a linear map over GF(2)
// and an output that is a linear function of the state, so each output bit
// obeys a recurrence of order at most the state size:
//
//	XorShift32   — 32-bit state   → crack with ≥ 64 samples
//	XorShift128  — 128-bit state  → crack with ≥ 256 samples
//	MT19937      — 19937-bit state → crack with ≥ 39874 samples
//	BitSliced    — one independent LFSR per bit position
package prng
