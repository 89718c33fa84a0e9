package pkgcodec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// wrapWidth is the MIME line length used when wrapping is requested.
const wrapWidth = 76

// Base64Options controls the rendering of EncodeBase64.
type Base64Options struct {
	URL  bool // URL-safe alphabet (-_), no padding
	Wrap bool // break output into 76-character lines
}

// EncodeBase64 renders bytes as Base64 text.
//
// The standard alphabet pads to a 4-character boundary with '='; the
// URL-safe variant substitutes -_ for +/ and omits padding.
func EncodeBase64(data []byte, opts Base64Options) string {
	var out string
	if opts.URL {
		out = base64.RawURLEncoding.EncodeToString(data)
	} else {
		out = base64.StdEncoding.EncodeToString(data)
	}

	if !opts.Wrap || len(out) <= wrapWidth {
		return out
	}

	var sb strings.Builder
	for len(out) > wrapWidth {
		sb.WriteString(out[:wrapWidth])
		sb.WriteString("\r\n")
		out = out[wrapWidth:]
	}
	sb.WriteString(out)

	return sb.String()
}

// DecodeBase64 parses Base64 text back into bytes.
//
// Input is normalized before decoding: whitespace is stripped, URL-safe
// characters are mapped back to the standard alphabet, and padding is
// restored to a multiple of 4. Decoding is strict after that, so stray
// characters or impossible padding still fail.
func DecodeBase64(text string) ([]byte, error) {
	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		case '-':
			return '+'
		case '_':
			return '/'
		}
		return r
	}, text)

	text = strings.TrimRight(text, "=")
	if pad := len(text) % 4; pad != 0 {
		if pad == 1 {
			return nil, fmt.Errorf("%w: impossible length %d", ErrInvalidBase64, len(text))
		}
		text += strings.Repeat("=", 4-pad)
	}

	data, err := base64.StdEncoding.Strict().DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	return data, nil
}
