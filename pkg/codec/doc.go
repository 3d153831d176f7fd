// Package codec implements the ADK/DNG archive format: a 20-byte header
// carrying two CRC-32 checksums, wrapped around an LZSS-compressed payload
// obfuscated by two passes of keyed XOR against a Park-Miller PRNG stream.
//
// The package does no I/O and no logging; callers supply byte slices and a
// filename (for key derivation) and get byte slices back.
package codec
