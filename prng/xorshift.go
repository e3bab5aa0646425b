package prng

// XorShift32 is Marsaglia's 32-bit xorshift with shifts (13, 17, 5).
type XorShift32 struct {
	state uint32
}

// NewXorShift32 seeds the generator; a zero seed, which would stick at
// zero forever, is replaced by 1.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 1
	}

	return &XorShift32{state: seed}
}

// Next advances the state and returns it.
func (r *XorShift32) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x

	return x
}

// Uint64 implements Source.
func (r *XorShift32) Uint64() uint64 { return uint64(r.Next()) }

// XorShift128 is Marsaglia's xor128 generator with 32-bit outputs.
type XorShift128 struct {
	x, y, z, w uint32
}

// NewXorShift128 seeds w from the low half of seed and x from the high
// half mixed into Marsaglia's default constant; y and z keep their
// defaults.
func NewXorShift128(seed uint64) *XorShift128 {
	return &XorShift128{
		x: 123456789 ^ uint32(seed>>32),
		y: 362436069,
		z: 521288629,
		w: uint32(seed) | 1,
	}
}

// Next advances the state and returns the new w.
func (r *XorShift128) Next() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))

	return r.w
}

// Uint64 implements Source.
func (r *XorShift128) Uint64() uint64 { return uint64(r.Next()) }
