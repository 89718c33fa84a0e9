package pkgcodec

import "errors"

var (
	// ErrInvalidHex indicates a non-hexadecimal character in the input.
	ErrInvalidHex = errors.New("invalid hex input")
	// ErrInvalidBit indicates a character other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid binary input")
	// ErrBitLength indicates a bit count that is not a multiple of 8.
	ErrBitLength = errors.New("bit count is not a multiple of 8")
	// ErrInvalidBase64 indicates undecodable Base64 after normalization.
	ErrInvalidBase64 = errors.New("invalid base64 input")
	// ErrInvalidBase32 indicates undecodable Base32 after normalization.
	ErrInvalidBase32 = errors.New("invalid base32 input")
	// ErrInvalidBase58 indicates a character outside the Bitcoin alphabet.
	ErrInvalidBase58 = errors.New("invalid base58 input")
	// ErrInvalidBech32 indicates a malformed bech32 string (bad length,
	// missing separator, or a character outside the charset).
	ErrInvalidBech32 = errors.New("invalid bech32 input")
	// ErrInvalidChecksum indicates a bech32 string whose checksum does not
	// verify under either the bech32 or bech32m constant.
	ErrInvalidChecksum = errors.New("invalid bech32 checksum")
	// ErrInvalidHrp indicates a missing or malformed human-readable part.
	ErrInvalidHrp = errors.New("invalid human-readable part")
	// ErrMixedCase indicates a bech32 string mixing upper and lower case.
	ErrMixedCase = errors.New("mixed-case bech32 input")
	// ErrCheckTooShort indicates a Base58Check payload shorter than the
	// minimum of one payload byte plus the four checksum bytes.
	ErrCheckTooShort = errors.New("checked payload too short")
)
