package codec

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Magic:       headerMagic,
		TypeTag:     typeTagADK,
		PayloadCRC:  0xDEADBEEF,
		KeyCRC:      0x12345678,
		PayloadSize: 42,
	}
	encoded := h.Bytes()
	if len(encoded) != HeaderSize {
		t.Fatalf("encoded header length = %d, want %d", len(encoded), HeaderSize)
	}

	got, err := ReadHeader(encoded)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != h {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestReadHeaderErrors(t *testing.T) {
	if _, err := ReadHeader(make([]byte, 10)); err != ErrHeaderTooShort {
		t.Errorf("short buffer: got %v, want ErrHeaderTooShort", err)
	}

	bad := Header{Magic: 0, TypeTag: typeTagADK}.Bytes()
	if _, err := ReadHeader(bad); err != ErrBadMagic {
		t.Errorf("bad magic: got %v, want ErrBadMagic", err)
	}
}
