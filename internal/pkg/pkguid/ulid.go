package pkguid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// ULIDInfo is the result of ParseULID.
type ULIDInfo struct {
	TimeMs  int64
	Entropy []byte
}

// NewULID generates a ULID: 48-bit millisecond timestamp followed by 80
// random bits, rendered as 26 Crockford Base32 characters. Because the
// timestamp leads and the encoding is big-endian, string order matches
// chronological order.
func (e *Engine) NewULID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(e.clock.Now()), e.entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ParseULID decodes a 26-character ULID. Lowercase input is accepted;
// Crockford's alphabet itself excludes I, L, O and U.
func ParseULID(text string) (ULIDInfo, error) {
	id, err := ulid.ParseStrict(strings.ToUpper(text))
	if err != nil {
		if errors.Is(err, ulid.ErrDataSize) {
			return ULIDInfo{}, fmt.Errorf("%w: %v", ErrLength, err)
		}
		return ULIDInfo{}, fmt.Errorf("%w: %v", ErrCharacter, err)
	}

	return ULIDInfo{
		TimeMs:  int64(id.Time()),
		Entropy: id.Entropy(),
	}, nil
}
