package pkgcodec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexOptions controls the rendering of EncodeHex.
type HexOptions struct {
	Upper    bool // emit A-F instead of a-f
	Prefix   bool // prepend 0x once
	Separate bool // join bytes with a single space
}

// EncodeHex renders bytes as hexadecimal text.
func EncodeHex(data []byte, opts HexOptions) string {
	var sb strings.Builder

	if opts.Prefix {
		sb.WriteString("0x")
	}

	for i, b := range data {
		if opts.Separate && i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%02x", b))
	}

	out := sb.String()
	if opts.Upper {
		// Keep the 0x prefix lowercase; only the digits change case.
		if opts.Prefix {
			return "0x" + strings.ToUpper(out[2:])
		}
		return strings.ToUpper(out)
	}

	return out
}

// DecodeHex parses hexadecimal text back into bytes.
//
// "0x"/"0X" prefixes (once or per byte), spaces, and colon separators are
// all accepted and stripped. An odd number of digits is padded with one
// leading zero nibble, so "fff" decodes as 0x0f 0xff.
func DecodeHex(text string) ([]byte, error) {
	text = strings.ReplaceAll(text, "0x", "")
	text = strings.ReplaceAll(text, "0X", "")
	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, text)

	if len(text)%2 != 0 {
		text = "0" + text
	}

	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	return data, nil
}
