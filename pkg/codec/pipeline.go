package codec

import "fmt"

// Decrypt unwraps an archive: it parses the 20-byte header, derives the key
// for game (the caller is expected to already know game, typically from
// GameFromTypeTag on the header it just peeked at — Decrypt itself never
// cross-checks game against header.TypeTag), verifies the key CRC, runs the
// stream deobfuscation and LZSS decode, and verifies the payload CRC.
//
// A non-nil payload is returned alongside ErrPayloadCRCMismatch (the
// decoded bytes may still be usable); for every other error the payload is
// nil.
func Decrypt(data []byte, filename string, game Game) ([]byte, error) {
	header, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	keyFilename := stripGameMarker(stripCmpMarker(filename), game)
	key := MakeKey(keyFilename, shouldRandomize(filename), game)

	if CRC32(key[:]) != header.KeyCRC {
		return nil, fmt.Errorf("%w: %s", ErrKeyCRCMismatch, filename)
	}

	payload := make([]byte, len(data)-HeaderSize)
	copy(payload, data[HeaderSize:])
	Obfuscate(payload, key)

	decoded, err := DecodeLZSS(payload, int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, filename)
	}

	if CRC32(decoded) != header.PayloadCRC {
		return decoded, fmt.Errorf("%w: %s", ErrPayloadCRCMismatch, filename)
	}

	return decoded, nil
}

// Encrypt wraps payload into an archive: it derives the game from
// filename's inner ".adk"/".dng" extension, derives the key, LZSS-compresses
// the payload, obfuscates the compressed bytes, and prepends the header.
func Encrypt(payload []byte, filename string) ([]byte, error) {
	game, err := GameFromFilename(filename)
	if err != nil {
		return nil, err
	}

	keyFilename := stripGameMarker(filename, game)
	key := MakeKey(keyFilename, shouldRandomize(filename), game)

	payloadCRC := CRC32(payload)
	keyCRC := CRC32(key[:])

	compressed := EncodeLZSS(payload)
	Obfuscate(compressed, key)

	header := Header{
		Magic:       headerMagic,
		TypeTag:     typeTagFor(game),
		PayloadCRC:  payloadCRC,
		KeyCRC:      keyCRC,
		PayloadSize: uint32(len(payload)),
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)
	return out, nil
}
