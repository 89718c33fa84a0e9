package pkgcodec

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// EncodeBase58 renders bytes in the Bitcoin Base58 alphabet. Leading zero
// bytes come out as leading '1' characters.
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}

// DecodeBase58 parses Bitcoin-alphabet Base58 text back into bytes. Empty
// text is the encoding of the empty byte string, not an error; the library
// underneath rejects zero-length input.
func DecodeBase58(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	data, err := base58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase58, err)
	}

	return data, nil
}
