package pkgcodec

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// EncodeBase32 renders bytes as RFC 4648 Base32 text with '=' padding.
func EncodeBase32(data []byte) string {
	return base32.StdEncoding.EncodeToString(data)
}

// DecodeBase32 parses Base32 text back into bytes.
//
// Lowercase input and missing padding are both accepted; the text is
// uppercased and re-padded to a multiple of 8 before strict decoding.
func DecodeBase32(text string) ([]byte, error) {
	text = strings.ToUpper(strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text))

	text = strings.TrimRight(text, "=")
	if pad := len(text) % 8; pad != 0 {
		text += strings.Repeat("=", 8-pad)
	}

	data, err := base32.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase32, err)
	}

	return data, nil
}
