// Package lfsrcrack breaks GF(2)-linear pseudo-random generators: from a
// run of observed integer outputs it reconstructs, bit position by bit
// position, the linear recurrence each output bit obeys, and uses those
// recurrences to predict what the generator emits next.
//
// 🚀 What can it crack?
//
//	Any generator whose state evolves by a linear map over GF(2) and whose
//	output is a linear function of that state:
//		• Fibonacci and Galois LFSRs
//		• xorshift family (32, 64, 128 bit)
//		• Mersenne Twister (MT19937), tempering included
//		• bit-sliced combinations of independent registers
//
// ✨ Why lfsrcrack?
//
//   - Exact – Berlekamp–Massey yields the shortest recurrence, no guessing
//   - Parallel – bit positions are independent and cracked concurrently
//   - All-or-nothing – bad configuration or too few samples fail up front
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	bitseq/    — slice samples into per-bit streams and reassemble them
//	bm/        — Berlekamp–Massey recurrence recovery over GF(2)
//	lfsr/      — LFSR stepping (prediction) and a reference Fibonacci LFSR
//	predictor/ — two-pass parallel pipeline: Crack, Model.Predict, Predict
//	prng/      — known GF(2)-linear generators (targets and test fixtures)
//	textio/    — plain integer stream input and output
//	cmd/lfsrcrack — the command-line tool
//
// Rule of thumb: a generator with an s-bit state needs at least 2·s
// observed outputs; fewer make the recovered recurrences untrustworthy.
//
//	go install github.com/katalvlaran/lfsrcrack/cmd/lfsrcrack@latest
//	lfsrcrack gen --kind xorshift32 -n 80 | head -64 | lfsrcrack -b 32 -c 16
package lfsrcrack
