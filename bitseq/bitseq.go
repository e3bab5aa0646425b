package bitseq

// MaxWidth is the widest supported sample, in bits.
const MaxWidth = 64

// Extract projects samples onto bit position pos.
// Element j of the result is bit pos of samples[j], always 0 or 1.
//
// dst is reused when cap(dst) >= len(samples); pass nil to allocate.
// pos must be in [0, MaxWidth).
//
// Complexity: O(n) time, O(n) space when dst must be allocated.
func Extract(samples []uint64, pos int, dst []uint8) []uint8 {
	n := len(samples)
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	shift := uint(pos)
	for j, s := range samples {
		dst[j] = uint8((s >> shift) & 1)
	}

	return dst
}

// Assemble rebuilds count integers from per-position bit streams.
//
//	out[j] = OR over p of (streams[p][j] << positions[p])
//
// streams and positions are parallel slices; every stream must hold at
// least count bits. Only the low bit of each stream element is used.
//
// Complexity: O(len(streams)·count) time, O(count) space.
func Assemble(streams [][]uint8, positions []int, count int) []uint64 {
	out := make([]uint64, count)
	for p, stream := range streams {
		shift := uint(positions[p])
		for j := 0; j < count; j++ {
			out[j] |= uint64(stream[j]&1) << shift
		}
	}

	return out
}

// Mask returns a value with the low width bits set.
// Widths >= MaxWidth give all ones; widths <= 0 give zero.
func Mask(width int) uint64 {
	switch {
	case width <= 0:
		return 0
	case width >= MaxWidth:
		return ^uint64(0)
	default:
		return (uint64(1) << uint(width)) - 1
	}
}
