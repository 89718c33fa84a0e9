package pkgbase

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// MinBase is the smallest supported radix.
	MinBase = 2
	// MaxBase is the largest supported radix (digits 0-9a-z).
	MaxBase = 36
)

var (
	// ErrEmptyInput indicates the input was blank after trimming whitespace.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidDigit indicates a character is not a valid digit for the base.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrUnsupportedBase indicates a radix outside 2..36.
	ErrUnsupportedBase = errors.New("unsupported base")
	// ErrNegative indicates a negative value was passed to Format.
	ErrNegative = errors.New("negative value")
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Parse reads an unsigned integer from text in the given base.
//
// The text is trimmed first; letters are accepted in either case. The value
// is accumulated one digit at a time (value = value*base + digit) so there
// is no upper bound on magnitude.
func Parse(text string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	value := new(big.Int)
	radix := big.NewInt(int64(base))
	digit := new(big.Int)

	for _, r := range strings.ToLower(text) {
		idx := strings.IndexRune(digits, r)
		if idx < 0 || idx >= base {
			return nil, fmt.Errorf("%w: %q for base %d", ErrInvalidDigit, r, base)
		}

		value.Mul(value, radix)
		value.Add(value, digit.SetInt64(int64(idx)))
	}

	return value, nil
}

// Format renders an unsigned integer as lowercase digits in the given base.
//
// Zero formats as "0". Negative values are a caller error and are rejected
// rather than rendered with a sign.
func Format(value *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	if value == nil || value.Sign() == 0 {
		return "0", nil
	}
	if value.Sign() < 0 {
		return "", ErrNegative
	}

	radix := big.NewInt(int64(base))
	rem := new(big.Int)
	v := new(big.Int).Set(value)

	var out []byte
	for v.Sign() > 0 {
		v.QuoRem(v, radix, rem)
		out = append(out, digits[rem.Int64()])
	}

	// Digits come out least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

// Convert re-renders a digit string from one base into another.
func Convert(text string, from, to int) (string, error) {
	value, err := Parse(text, from)
	if err != nil {
		return "", err
	}

	return Format(value, to)
}
