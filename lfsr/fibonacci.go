package lfsr

// Fibonacci is a Fibonacci-configuration LFSR driven by a connection
// polynomial. It emits its seed first and then the bits produced by the
// recurrence, so the first L outputs equal the seed.
type Fibonacci struct {
	poly   []uint8
	window []uint8 // next L output bits, oldest first
}

// NewFibonacci builds an LFSR for poly (C[0] = 1) seeded with len(poly)-1
// bits, oldest first. Both slices are copied.
func NewFibonacci(poly, seed []uint8) (*Fibonacci, error) {
	if err := validate(poly, seed); err != nil {
		return nil, err
	}
	f := &Fibonacci{
		poly:   append([]uint8(nil), poly...),
		window: append([]uint8(nil), seed...),
	}

	return f, nil
}

// Degree returns L.
func (f *Fibonacci) Degree() int { return len(f.poly) - 1 }

// Next returns the next output bit.
func (f *Fibonacci) Next() uint8 {
	l := len(f.window)
	if l == 0 {
		return 0
	}
	var fb uint8
	for i := 1; i <= l; i++ {
		fb ^= f.poly[i] & f.window[l-i]
	}
	out := f.window[0]
	copy(f.window, f.window[1:])
	f.window[l-1] = fb

	return out
}

// Fill returns the next n output bits.
func (f *Fibonacci) Fill(n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = f.Next()
	}

	return out
}
