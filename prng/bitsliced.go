package prng

import "github.com/katalvlaran/lfsrcrack/lfsr"

// BitSliced drives each low-order output bit from its own LFSR: bit p of
// every output is the next bit of regs[p].
type BitSliced struct {
	regs []*lfsr.Fibonacci
}

// NewBitSliced combines up to 64 registers, register i feeding bit i.
func NewBitSliced(regs ...*lfsr.Fibonacci) *BitSliced {
	if len(regs) > 64 {
		regs = regs[:64]
	}

	return &BitSliced{regs: regs}
}

// Uint64 implements Source.
func (b *BitSliced) Uint64() uint64 {
	var v uint64
	for p, r := range b.regs {
		v |= uint64(r.Next()) << uint(p)
	}

	return v
}
