package pkgcodec

import (
	"fmt"
	"strings"
)

// EncodeBits renders bytes as a string of '0' and '1' characters, eight per
// byte, optionally separated by a space between bytes.
func EncodeBits(data []byte, separate bool) string {
	var sb strings.Builder

	for i, b := range data {
		if separate && i > 0 {
			sb.WriteByte(' ')
		}
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<bit) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// DecodeBits parses a binary string back into bytes.
//
// Whitespace separators are stripped first. The remaining bit count must be
// a multiple of 8; anything else would silently drop bits.
func DecodeBits(text string) ([]byte, error) {
	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text)

	if len(text)%8 != 0 {
		return nil, fmt.Errorf("%w: got %d bits", ErrBitLength, len(text))
	}

	data := make([]byte, 0, len(text)/8)
	for i := 0; i < len(text); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			switch text[i+j] {
			case '1':
				b |= 1
			case '0':
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidBit, text[i+j])
			}
		}
		data = append(data, b)
	}

	return data, nil
}
