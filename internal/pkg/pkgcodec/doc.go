// Package pkgcodec converts byte strings to and from textual encodings:
// hex, binary strings, Base64 (standard and URL-safe), Base32, Base58,
// Base58Check, and Bech32/Bech32m.
//
// Every decoder validates its whole input and returns a sentinel error on
// malformed text instead of partial data. Encoders are deterministic, so
// decode(encode(b)) == b holds for every byte string and
// encode(decode(s)) reproduces s up to each format's normalization
// (lowercase hex, canonical padding, no interior whitespace).
package pkgcodec
