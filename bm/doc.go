// Package bm recovers the shortest linear recurrence over GF(2) that
// reproduces a binary sequence, using the Berlekamp–Massey algorithm.
//
// 🚀 What is Berlekamp–Massey?
//
//	Given bits s[0..n-1], BM finds the smallest L and a connection
//	polynomial C(x) = 1 + c1·x + … + cL·x^L such that
//	  s[t] = c1·s[t-1] ⊕ c2·s[t-2] ⊕ … ⊕ cL·s[t-L]   for all L ≤ t < n.
//	L is the linear complexity of the sequence. Typical uses:
//	  • recovering the feedback taps of an LFSR from its output
//	  • predicting any GF(2)-linear generator bit by bit
//	  • measuring the linear complexity of a keystream
//
// ✨ Key features:
//   - exact textbook update rules, including corrections that fix C(x)
//     without raising the degree (2L > N)
//   - Recoverer keeps its C, B and T buffers between calls, so a worker
//     can crack many streams without reallocating
//   - Recurrence.Check re-validates a result against any sequence
//
// ⚙️ Usage:
//
//	rec := bm.Recover(bits)
//	fmt.Println(rec.Degree, rec) // 4 1 + x + x^4
//
// Trust:
//
//	If the generator's true linear complexity is d, at least 2·d bits are
//	required for the result to be the generator's own recurrence. With
//	fewer bits the degree can inflate towards n and the polynomial merely
//	memorizes the observed tail.
//
// Performance:
//
//   - Time:   O(n²) bit operations
//   - Memory: O(n) (three scratch polynomials of length n)
package bm
