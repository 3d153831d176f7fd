package codec

// Obfuscate applies the two-pass XOR obfuscation in place over data, keyed
// by key. It is its own inverse: calling it twice with the same key and
// data length restores the original bytes.
func Obfuscate(data []byte, key [16]byte) {
	if len(data) == 0 {
		return
	}

	prng := NewPRNG(CRC32(key[:]))

	// Pass A: dense, rotating pad over every byte.
	l1 := int((prng.Next() & 0x7F) + 0x80)
	pad1 := make([]byte, l1)
	prng.Fill(pad1)
	for i := range data {
		data[i] ^= pad1[i%l1]
	}

	// Pass B: sparse, key- and position-dependent pad at a large stride.
	l2 := int((prng.Next() & 0x0F) + 0x11)
	pad2 := make([]byte, l2)
	prng.Fill(pad2)

	start := int(prng.Next()) % len(data)
	stride := int((prng.Next() & 0x1FFF) + 0x2000)

	for i := start; i < len(data); i += stride {
		idx := (int(key[i%16]) ^ (i & 0xFF)) % l2
		data[i] ^= pad2[idx]
	}
}
