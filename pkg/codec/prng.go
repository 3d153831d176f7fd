package codec

// reservedBits are the bit positions the seed conditioner may set or clear
// to keep the Park-Miller seed out of pathological (too sparse or too
// dense) trajectories. Order matters: set/clear proceeds through this slice
// in order, and a different order yields a different, incompatible stream.
var reservedBits = [8]uint{0x0C, 0x17, 0x0A, 0x19, 0x08, 0x1B, 0x06, 0x1D}

// PRNG is a Park-Miller linear congruential generator (multiplier 16807)
// over a 31-bit modulus, seeded through the bit-population conditioner
// described below. Mirrors the struct+constructor+method shape of this
// codebase's other pseudo-random generators.
type PRNG struct {
	seed uint32
}

// NewPRNG conditions crc into a non-trivial 31-bit seed and returns a PRNG
// primed to produce its stream.
func NewPRNG(crc uint32) *PRNG {
	seed := crc & 0x7FFFFFFF

	population := 0
	for i := uint32(0); i < 0x1F; i++ {
		population += int((seed >> i) & 1)
	}

	if population < 8 {
		for i := 0; i+population < 8; i++ {
			seed |= 1 << reservedBits[i]
		}
	}
	if population > 24 {
		for i := 0; i+population < 32; i++ {
			seed &^= 1 << reservedBits[i]
		}
	}

	if seed == 0 {
		seed = 1
	} else {
		seed &= 0x7FFFFFFF
	}

	return &PRNG{seed: seed}
}

// Next returns the next 31-bit value in the Park-Miller sequence, advancing
// the generator's state.
func (p *PRNG) Next() uint32 {
	upper := (p.seed >> 16) * 0x41A7
	lower := (p.seed & 0xFFFF) * 0x41A7

	seed := lower + (upper&0x7FFF)<<16
	if seed > 0x7FFFFFFF {
		seed = (seed & 0x7FFFFFFF) + 1
	}
	seed += upper >> 15
	if seed > 0x7FFFFFFF {
		seed = (seed & 0x7FFFFFFF) + 1
	}

	p.seed = seed
	return seed
}

// Fill writes the low byte of successive Next outputs into buf.
func (p *PRNG) Fill(buf []byte) {
	for i := range buf {
		buf[i] = byte(p.Next())
	}
}
