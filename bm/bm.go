package bm

// Berlekamp–Massey over GF(2)
//
// Algorithm Outline:
//  1. C(x) = B(x) = 1, L = 0, m = -1.
//  2. For N = 0..n-1:
//     d = s[N] ⊕ Σ_{i=1..L} C[i]·s[N-i]
//     if d == 1:
//     T = C
//     C = C ⊕ x^(N-m)·B        (truncated to n coefficients)
//     if 2L ≤ N:
//     B = T; L = N+1-L; m = N
//  3. Return (L, C[0..L]).
//
// When d == 1 but 2L > N only C changes; B, L and m keep their values.
// That branch is what keeps L minimal on sequences that are not
// maximal-length, so it must not be folded into the degree-raising branch.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)

// Recoverer runs Berlekamp–Massey with reusable scratch polynomials.
//
// A Recoverer is not safe for concurrent use; give each goroutine its own.
// The zero value is ready to use.
type Recoverer struct {
	c, b, t []uint8
}

// NewRecoverer returns a Recoverer with scratch preallocated for sequences
// of up to capacity bits.
func NewRecoverer(capacity int) *Recoverer {
	r := &Recoverer{}
	r.grow(capacity)

	return r
}

// grow sizes the scratch for an n-bit sequence. The degree can reach n,
// so the polynomials carry n+1 coefficients; updates still stop at index
// n-1, leaving C[n] zero.
func (r *Recoverer) grow(n int) {
	if cap(r.c) > n {
		return
	}
	r.c = make([]uint8, n+1)
	r.b = make([]uint8, n+1)
	r.t = make([]uint8, n+1)
}

// Recover returns the shortest linear recurrence that generates bits.
// Every element of bits must be 0 or 1. An empty sequence yields the
// degree-0 recurrence.
//
// The returned Poly is a fresh slice; the Recoverer may be reused
// immediately.
func (r *Recoverer) Recover(bits []uint8) Recurrence {
	n := len(bits)
	if n == 0 {
		return Recurrence{Degree: 0, Poly: []uint8{1}}
	}
	r.grow(n)
	c, b, t := r.c[:n+1], r.b[:n+1], r.t[:n+1]
	clear(c)
	clear(b)
	c[0], b[0] = 1, 1

	l, m := 0, -1
	for N := 0; N < n; N++ {
		// discrepancy between the current recurrence and bits[N]
		d := bits[N]
		for i := 1; i <= l; i++ {
			d ^= c[i] & bits[N-i]
		}
		if d == 0 {
			continue
		}

		copy(t, c)
		shift := N - m
		for j := 0; j+shift < n; j++ {
			c[j+shift] ^= b[j]
		}
		if 2*l <= N {
			copy(b, t)
			l = N + 1 - l
			m = N
		}
	}

	poly := make([]uint8, l+1)
	copy(poly, c[:l+1])

	return Recurrence{Degree: l, Poly: poly}
}

// Recover is a convenience wrapper around a throwaway Recoverer.
func Recover(bits []uint8) Recurrence {
	var r Recoverer

	return r.Recover(bits)
}
