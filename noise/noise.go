// Package noise provides the game's entropy source and the blue-noise
// sampler used to scatter grass decorations across floor regions.
//
// The generator is Bob Jenkins' small noncryptographic PRNG
// (http://burtleburtle.net/bob/rand/smallprng.html). The rotation width is
// kept at 32 even though the state words are 64-bit; sequences are part of
// the observable behavior (decoration layouts for a given seed), so the
// arithmetic is preserved bit for bit.
package noise

import "math"

// Source holds PRNG state. Not safe for concurrent use; the game owns one
// on the host goroutine.
type Source struct {
	a, b, c, d uint64
}

func rotate(x uint64, k uint) uint64 {
	return (x << k) | (x >> (32 - k))
}

// NewSource seeds a generator and warms it up.
func NewSource(seed uint64) Source {
	s := Source{a: 0xf1ea5eed, b: seed, c: seed, d: seed}
	for i := 0; i < 20; i++ {
		s.Next()
	}
	return s
}

// Next advances the generator and returns the next value.
func (s *Source) Next() uint64 {
	e := s.a - rotate(s.b, 27)
	s.a = s.b ^ rotate(s.c, 17)
	s.b = s.c + s.d
	s.c = s.d + e
	s.d = e + s.a
	return s.d
}

// Range returns a value in [min, max], both ends inclusive.
func (s *Source) Range(min, max uint32) uint32 {
	value := s.Next()
	span := uint64(max) - uint64(min) + 1
	return uint32(value%span + uint64(min))
}

// UnitInterval returns a value in [0, 1].
func (s *Source) UnitInterval() float32 {
	return float32(float64(s.Next()) / float64(math.MaxUint64))
}
