package codec

import "errors"

var (
	// ErrKeyCRCMismatch means the derived key's CRC-32 disagrees with the
	// header's stored key CRC — the filename or game was likely misidentified.
	ErrKeyCRCMismatch = errors.New("codec: key CRC mismatch")

	// ErrPayloadSizeMismatch means the LZSS decoder exhausted its input
	// without producing exactly the header's stored payload size.
	ErrPayloadSizeMismatch = errors.New("codec: payload size mismatch")

	// ErrPayloadCRCMismatch means the payload decoded to the right size but
	// its CRC-32 disagrees with the header. The payload is still usable.
	ErrPayloadCRCMismatch = errors.New("codec: payload CRC mismatch")

	// ErrAmbiguousFileType means a filename's inner extension names neither
	// or both of .adk/.dng, so Encrypt cannot determine the game.
	ErrAmbiguousFileType = errors.New("codec: ambiguous file type")

	// ErrBadMagic means the header's magic constant did not match.
	ErrBadMagic = errors.New("codec: bad header magic")

	// ErrUnknownTypeTag means the header's type tag matches neither ADK nor DNG.
	ErrUnknownTypeTag = errors.New("codec: unknown type tag")

	// ErrHeaderTooShort means fewer than HeaderSize bytes were supplied.
	ErrHeaderTooShort = errors.New("codec: header too short")
)
