package codec

import "encoding/binary"

// HeaderSize is the fixed, little-endian archive header size in bytes.
const HeaderSize = 20

const (
	headerMagic uint32 = 0x06091812
	typeTagADK  uint32 = 0x6B646173 // "sadk"
	typeTagDNG  uint32 = 0x30306372 // "rc00"
)

// Header is the 20-byte archive header preceding the obfuscated,
// LZSS-compressed payload.
type Header struct {
	Magic       uint32
	TypeTag     uint32
	PayloadCRC  uint32
	KeyCRC      uint32
	PayloadSize uint32
}

func typeTagFor(game Game) uint32 {
	if game == DNG {
		return typeTagDNG
	}
	return typeTagADK
}

// ReadHeader parses the first HeaderSize bytes of data as an archive
// header. It returns ErrBadMagic (with the parsed header) when the magic
// constant does not match; the type tag is not validated, so callers that
// need it checked use GameFromTypeTag.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrHeaderTooShort
	}
	h := Header{
		Magic:       binary.LittleEndian.Uint32(data[0:4]),
		TypeTag:     binary.LittleEndian.Uint32(data[4:8]),
		PayloadCRC:  binary.LittleEndian.Uint32(data[8:12]),
		KeyCRC:      binary.LittleEndian.Uint32(data[12:16]),
		PayloadSize: binary.LittleEndian.Uint32(data[16:20]),
	}
	if h.Magic != headerMagic {
		return h, ErrBadMagic
	}
	return h, nil
}

// Bytes encodes the header into its 20-byte little-endian wire form.
func (h Header) Bytes() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.TypeTag)
	binary.LittleEndian.PutUint32(buf[8:12], h.PayloadCRC)
	binary.LittleEndian.PutUint32(buf[12:16], h.KeyCRC)
	binary.LittleEndian.PutUint32(buf[16:20], h.PayloadSize)
	return buf
}
