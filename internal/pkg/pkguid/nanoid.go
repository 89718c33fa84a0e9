package pkguid

import (
	"fmt"
	"io"
	"math/bits"
)

// DefaultNanoIDAlphabet matches the reference NanoID character set.
const DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultNanoIDLength matches the reference NanoID output length.
const DefaultNanoIDLength = 21

// NewNanoID generates a fixed-length random string over the given alphabet.
//
// Each output character is drawn independently and uniformly: random bytes
// are masked down to the smallest power-of-two range covering the alphabet
// and values beyond the alphabet are rejected, so no character is favored.
// Empty alphabet or length selects the defaults.
func (e *Engine) NewNanoID(alphabet string, length int) (string, error) {
	if alphabet == "" {
		alphabet = DefaultNanoIDAlphabet
	}
	if length == 0 {
		length = DefaultNanoIDLength
	}

	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	if len(alphabet) < 2 || len(alphabet) > 256 {
		return "", fmt.Errorf("%w: %d characters", ErrBadAlphabet, len(alphabet))
	}
	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		if seen[alphabet[i]] {
			return "", fmt.Errorf("%w: duplicate character %q", ErrBadAlphabet, alphabet[i])
		}
		seen[alphabet[i]] = true
	}

	mask := byte(1<<bits.Len(uint(len(alphabet)-1)) - 1)

	// Oversample so most reads produce a full ID in one pass.
	step := (length*int(mask) + len(alphabet) - 1) / len(alphabet)
	if step < length {
		step = length
	}

	out := make([]byte, 0, length)
	buf := make([]byte, step)
	for {
		if _, err := io.ReadFull(e.entropy, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			idx := int(b & mask)
			if idx >= len(alphabet) {
				continue
			}
			out = append(out, alphabet[idx])
			if len(out) == length {
				return string(out), nil
			}
		}
	}
}
