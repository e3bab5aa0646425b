package prng

const (
	mtSize       = 624
	mtOffset     = 397
	mtMultiplier = 1812433253
	mtUpperMask  = 0x80000000
	mtLowerMask  = 0x7fffffff
	mtMatrixA    = 0x9908b0df
	mtTemperB    = 0x9d2c5680
	mtTemperC    = 0xefc60000
)

// MT19937 is the 32-bit Mersenne Twister. Both the twist and the tempering
// are linear over GF(2).
type MT19937 struct {
	state [mtSize]uint32
	pos   int
}

// NewMT19937 initializes the state with the reference seeding routine.
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{pos: mtSize}
	mt.state[0] = seed
	for i := 1; i < mtSize; i++ {
		mt.state[i] = mtMultiplier*(mt.state[i-1]^(mt.state[i-1]>>30)) + uint32(i)
	}

	return mt
}

// twist regenerates the whole state block.
func (mt *MT19937) twist() {
	for i := 0; i < mtSize; i++ {
		y := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%mtSize] & mtLowerMask)
		next := mt.state[(i+mtOffset)%mtSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		mt.state[i] = next
	}
	mt.pos = 0
}

// Uint32 returns the next tempered output.
func (mt *MT19937) Uint32() uint32 {
	if mt.pos >= mtSize {
		mt.twist()
	}
	y := mt.state[mt.pos]
	mt.pos++

	y ^= y >> 11
	y ^= (y << 7) & mtTemperB
	y ^= (y << 15) & mtTemperC
	y ^= y >> 18

	return y
}

// Uint64 implements Source.
func (mt *MT19937) Uint64() uint64 { return uint64(mt.Uint32()) }
