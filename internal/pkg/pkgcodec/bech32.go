package pkgcodec

import (
	"fmt"
	"strings"
)

// bech32Charset maps 5-bit word values to characters.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	bech32Const  = 1
	bech32mConst = 0x2bc830a3

	maxBech32Len = 90
	minHrpLen    = 1
	maxHrpLen    = 83
)

func bech32Polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>i)&1 == 1 {
				chk ^= gen[i]
			}
		}
	}

	return chk
}

func bech32HrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}

	return out
}

func validateHrp(hrp string) error {
	if len(hrp) < minHrpLen || len(hrp) > maxHrpLen {
		return fmt.Errorf("%w: length %d", ErrInvalidHrp, len(hrp))
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return fmt.Errorf("%w: character %q", ErrInvalidHrp, hrp[i])
		}
	}

	return nil
}

// EncodeBech32 assembles a bech32 (or bech32m) string from a human-readable
// part and a sequence of 5-bit words, appending the 6-word checksum.
func EncodeBech32(hrp string, words []byte, bech32m bool) (string, error) {
	hrp = strings.ToLower(hrp)
	if err := validateHrp(hrp); err != nil {
		return "", err
	}
	for _, w := range words {
		if w > 31 {
			return "", fmt.Errorf("%w: word %d out of range", ErrInvalidBech32, w)
		}
	}
	if len(hrp)+1+len(words)+6 > maxBech32Len {
		return "", fmt.Errorf("%w: encoded length exceeds %d", ErrInvalidBech32, maxBech32Len)
	}

	variant := uint32(bech32Const)
	if bech32m {
		variant = bech32mConst
	}

	values := append(bech32HrpExpand(hrp), words...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := bech32Polymod(values) ^ variant

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, w := range words {
		sb.WriteByte(bech32Charset[w])
	}
	for i := 0; i < 6; i++ {
		sb.WriteByte(bech32Charset[(mod>>uint(5*(5-i)))&31])
	}

	return sb.String(), nil
}

// DecodeBech32 splits a bech32 string into its human-readable part and
// 5-bit words, verifying the checksum. The boolean result reports whether
// the checksum matched the bech32m constant rather than the bech32 one.
func DecodeBech32(text string) (string, []byte, bool, error) {
	if strings.ToLower(text) != text && strings.ToUpper(text) != text {
		return "", nil, false, ErrMixedCase
	}
	text = strings.ToLower(text)

	if len(text) > maxBech32Len {
		return "", nil, false, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidBech32, len(text), maxBech32Len)
	}

	sep := strings.LastIndexByte(text, '1')
	if sep < 1 {
		return "", nil, false, fmt.Errorf("%w: missing separator", ErrInvalidHrp)
	}
	if len(text)-sep-1 < 6 {
		return "", nil, false, fmt.Errorf("%w: data part shorter than checksum", ErrInvalidBech32)
	}

	hrp := text[:sep]
	if err := validateHrp(hrp); err != nil {
		return "", nil, false, err
	}

	data := make([]byte, 0, len(text)-sep-1)
	for i := sep + 1; i < len(text); i++ {
		idx := strings.IndexByte(bech32Charset, text[i])
		if idx < 0 {
			return "", nil, false, fmt.Errorf("%w: character %q", ErrInvalidBech32, text[i])
		}
		data = append(data, byte(idx))
	}

	var bech32m bool
	switch bech32Polymod(append(bech32HrpExpand(hrp), data...)) {
	case bech32Const:
	case bech32mConst:
		bech32m = true
	default:
		return "", nil, false, ErrInvalidChecksum
	}

	return hrp, data[:len(data)-6], bech32m, nil
}
