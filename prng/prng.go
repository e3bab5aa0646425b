package prng

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKind indicates a generator name New does not know.
var ErrUnknownKind = errors.New("prng: unknown generator kind")

// Source yields successive generator outputs widened to 64 bits.
type Source interface {
	Uint64() uint64
}

// constructors maps generator names accepted by New to their builders.
var constructors = map[string]func(seed uint64) Source{
	"xorshift32":  func(seed uint64) Source { return NewXorShift32(uint32(seed)) },
	"xorshift128": func(seed uint64) Source { return NewXorShift128(seed) },
	"mt19937":     func(seed uint64) Source { return NewMT19937(uint32(seed)) },
}

// New builds the named generator from seed.
func New(kind string, seed uint64) (Source, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", kind, Kinds(), ErrUnknownKind)
	}

	return ctor(seed), nil
}

// Kinds lists the names New accepts, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}

// Take draws n outputs from src.
func Take(src Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}

	return out
}
