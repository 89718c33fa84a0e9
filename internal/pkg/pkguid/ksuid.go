package pkguid

import (
	"fmt"
	"io"

	"github.com/segmentio/ksuid"
)

// KSUIDInfo is the result of ParseKSUID. Time is Unix seconds (KSUID keeps
// a 4-byte second counter offset from its custom epoch, 2014-05-13).
type KSUIDInfo struct {
	Time    int64
	Payload []byte
}

// ksuidEpochSec is KSUID's custom epoch, 2014-05-13, in Unix seconds.
const ksuidEpochSec = 1400000000

// NewKSUID generates a KSUID: 4-byte timestamp plus 16 random payload
// bytes, rendered as 27 base-62 characters left-padded with '0'.
func (e *Engine) NewKSUID() (string, error) {
	now := e.clock.Now()
	if now.Unix() < ksuidEpochSec {
		return "", fmt.Errorf("%w: clock is before the ksuid epoch", ErrBeforeEpoch)
	}

	payload := make([]byte, 16)
	if _, err := io.ReadFull(e.entropy, payload); err != nil {
		return "", err
	}

	id, err := ksuid.FromParts(now, payload)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ParseKSUID decodes a 27-character base-62 KSUID.
func ParseKSUID(text string) (KSUIDInfo, error) {
	if len(text) != 27 {
		return KSUIDInfo{}, fmt.Errorf("%w: got %d characters, want 27", ErrLength, len(text))
	}

	id, err := ksuid.Parse(text)
	if err != nil {
		return KSUIDInfo{}, fmt.Errorf("%w: %v", ErrCharacter, err)
	}

	return KSUIDInfo{
		Time:    id.Time().Unix(),
		Payload: id.Payload(),
	}, nil
}
