package codec

import "strings"

// Game identifies one of the two supported archive variants.
type Game int

const (
	// ADK is the first supported title, type tag "sadk".
	ADK Game = iota
	// DNG is the second supported title, type tag "rc00".
	DNG
)

func (g Game) String() string {
	switch g {
	case ADK:
		return "ADK"
	case DNG:
		return "DNG"
	default:
		return "unknown"
	}
}

var gameKeys = map[Game][16]byte{
	ADK: {0xBD, 0x8C, 0xC2, 0xBD, 0x30, 0x67, 0x4B, 0xF8, 0xB4, 0x9B, 0x1B, 0xF9, 0xF6, 0x82, 0x2E, 0xF4},
	DNG: {0xC9, 0x59, 0x46, 0xCA, 0xD9, 0xF0, 0x4F, 0x0A, 0xA1, 0x00, 0xAA, 0xB8, 0xCB, 0xE8, 0xDB, 0x6B},
}

// asciiLower folds only ASCII letters; every other byte passes through
// unchanged. strings.ToLower is Unicode-aware and would fold bytes this
// format's filenames never contain differently, silently changing the
// derived key — see DESIGN.md.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// foldIndex returns the index of marker in s, matched case-insensitively
// (ASCII only), or -1 if absent.
func foldIndex(s, marker string) int {
	return strings.Index(asciiLower(s), marker)
}

// stripMarker removes the first case-insensitive occurrence of marker from
// filename, preserving the original casing of every other byte.
func stripMarker(filename, marker string) string {
	if i := foldIndex(filename, marker); i >= 0 {
		return filename[:i] + filename[i+len(marker):]
	}
	return filename
}

// stripCmpMarker removes a ".cmp" marker from a filename of the form
// "<stem>.cmp.<ext>", per the archive filename convention. Filenames
// without the marker pass through unchanged.
func stripCmpMarker(filename string) string {
	return stripMarker(filename, ".cmp")
}

// GameFromFilename derives the Game from a filename's inner extension,
// ".adk" or ".dng". Returns ErrAmbiguousFileType if neither or both are
// present, matching the original encoder's filename dispatch.
func GameFromFilename(filename string) (Game, error) {
	lc := asciiLower(filename)
	hasADK := strings.Contains(lc, ".adk")
	hasDNG := strings.Contains(lc, ".dng")
	if hasADK == hasDNG {
		return 0, ErrAmbiguousFileType
	}
	if hasADK {
		return ADK, nil
	}
	return DNG, nil
}

// stripGameMarker removes the inner ".adk"/".dng" extension matching game
// from filename, the way the original encoder strips it before deriving
// the key-CRC filename.
func stripGameMarker(filename string, game Game) string {
	if game == ADK {
		return stripMarker(filename, ".adk")
	}
	return stripMarker(filename, ".dng")
}

// GameFromTypeTag maps a header type tag to its Game.
func GameFromTypeTag(tag uint32) (Game, error) {
	switch tag {
	case typeTagADK:
		return ADK, nil
	case typeTagDNG:
		return DNG, nil
	default:
		return 0, ErrUnknownTypeTag
	}
}

// shouldRandomize reports whether the key for filename should be XOR-mixed
// with filename-derived PRNG output. Randomization is disabled when the
// outer extension is ".s2m" or ".sav".
func shouldRandomize(filename string) bool {
	lc := asciiLower(filename)
	return !strings.HasSuffix(lc, ".s2m") && !strings.HasSuffix(lc, ".sav")
}

// MakeKey produces the 16-byte XOR key for game, optionally mixed with
// PRNG output seeded by the CRC-32 of the ASCII-lowercased filename.
func MakeKey(filename string, randomize bool, game Game) [16]byte {
	key := gameKeys[game]
	if !randomize {
		return key
	}

	lc := asciiLower(filename)
	prng := NewPRNG(CRC32([]byte(lc)))
	for i := range key {
		key[i] ^= byte(prng.Next())
	}
	return key
}
