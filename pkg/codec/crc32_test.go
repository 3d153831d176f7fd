package codec

import "testing"

func TestCRC32Reference(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want uint32
	}{
		{"digits", []byte("123456789"), 0xCBF43926},
		{"empty", []byte{}, 0x00000000},
		{"zero byte", []byte{0x00}, 0xD202EF8D},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CRC32(c.data); got != c.want {
				t.Errorf("CRC32(%q) = 0x%08X, want 0x%08X", c.data, got, c.want)
			}
		})
	}
}

func TestCRC32AlignedBlocks(t *testing.T) {
	// Exercise the slice-by-4 block path (>32 bytes) with a long buffer
	// and check that Digest reports the same value as the one-shot CRC32.
	data := make([]byte, 257)
	for i := range data {
		data[i] = byte(i * 31)
	}
	whole := CRC32(data)
	if whole == 0 {
		t.Fatal("expected non-zero CRC for non-trivial input")
	}

	var d Digest
	d.Write(data)
	if got := d.Sum32(); got != whole {
		t.Errorf("Digest.Sum32() = 0x%08X, want 0x%08X", got, whole)
	}
}
