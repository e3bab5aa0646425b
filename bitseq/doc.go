// Package bitseq slices fixed-width integer samples into per-bit binary
// streams and reassembles per-bit streams back into integers.
//
// 🚀 What is a bit stream?
//
//	Given samples s[0..n-1] and a bit position p, the bit stream of p is
//	  b[j] = (s[j] >> p) & 1
//	Every position of a GF(2)-linear generator yields its own stream, and
//	each stream satisfies a linear recurrence of its own.
//
// ✨ Key features:
//   - Extract reuses a caller-owned destination slice (per-worker scratch)
//   - Assemble ORs streams back at arbitrary bit positions
//   - Mask builds low-order masks for widths 1..64
//
// ⚙️ Usage:
//
//	bits := bitseq.Extract(samples, 3, nil)
//	vals := bitseq.Assemble([][]uint8{s0, s1}, []int{0, 1}, k)
//
// Performance:
//
//   - Extract:  O(n) time, no allocation when dst is large enough
//   - Assemble: O(P·k) time for P streams of length k
package bitseq
