package pkguid

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// gregorianToUnixTicks is the number of 100-ns ticks between the Gregorian
// epoch (1582-10-15) and the Unix epoch (1970-01-01).
const gregorianToUnixTicks = 0x01B21DD213814000

// UUIDInfo is the result of ParseUUID. TimeMs is only meaningful for the
// time-based versions (1, 6, 7), signalled by HasTime. ClockSeq and Node
// are populated for versions 1 and 6.
type UUIDInfo struct {
	UUID     uuid.UUID
	Version  int
	Variant  string
	TimeMs   int64
	HasTime  bool
	ClockSeq int
	Node     string
}

// gregorianTicks converts the clock reading into 100-ns ticks since the
// Gregorian epoch, the unit UUID v1 and v6 timestamps use.
func (e *Engine) gregorianTicks() uint64 {
	return uint64(e.clock.Now().UnixNano()/100) + gregorianToUnixTicks
}

// NewUUIDv1 generates a time-based UUID: 60-bit Gregorian timestamp in the
// classic scattered field order, random clock sequence and random node with
// the multicast bit set (the convention for non-MAC nodes).
func (e *Engine) NewUUIDv1() (uuid.UUID, error) {
	var id uuid.UUID

	ticks := e.gregorianTicks()
	binary.BigEndian.PutUint32(id[0:4], uint32(ticks))       // time-low
	binary.BigEndian.PutUint16(id[4:6], uint16(ticks>>32))   // time-mid
	binary.BigEndian.PutUint16(id[6:8], uint16(ticks>>48))   // time-hi

	if _, err := io.ReadFull(e.entropy, id[8:16]); err != nil {
		return uuid.Nil, err
	}
	id[10] |= 0x01 // multicast bit marks a random node

	id[6] = (id[6] & 0x0f) | 0x10
	id[8] = (id[8] & 0x3f) | 0x80

	return id, nil
}

// NewUUIDv3 generates a name-based UUID from the MD5 of namespace ‖ name.
func (e *Engine) NewUUIDv3(space uuid.UUID, name []byte) uuid.UUID {
	return uuid.NewHash(md5.New(), space, name, 3)
}

// NewUUIDv4 generates a fully random UUID.
func (e *Engine) NewUUIDv4() (uuid.UUID, error) {
	var id uuid.UUID

	if _, err := io.ReadFull(e.entropy, id[:]); err != nil {
		return uuid.Nil, err
	}

	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80

	return id, nil
}

// NewUUIDv5 generates a name-based UUID from the SHA-1 of namespace ‖ name.
func (e *Engine) NewUUIDv5(space uuid.UUID, name []byte) uuid.UUID {
	return uuid.NewHash(sha1.New(), space, name, 5)
}

// NewUUIDv6 generates a time-based UUID with the same timestamp source as
// v1 but the fields reordered most significant first, so byte order matches
// chronological order.
func (e *Engine) NewUUIDv6() (uuid.UUID, error) {
	var id uuid.UUID

	ticks := e.gregorianTicks()
	binary.BigEndian.PutUint32(id[0:4], uint32(ticks>>28))
	binary.BigEndian.PutUint16(id[4:6], uint16(ticks>>12))
	binary.BigEndian.PutUint16(id[6:8], uint16(ticks&0x0fff))

	if _, err := io.ReadFull(e.entropy, id[8:16]); err != nil {
		return uuid.Nil, err
	}

	id[6] = (id[6] & 0x0f) | 0x60
	id[8] = (id[8] & 0x3f) | 0x80

	return id, nil
}

// NewUUIDv7 generates a UUID with a 48-bit Unix-millisecond timestamp
// followed by 74 random bits.
func (e *Engine) NewUUIDv7() (uuid.UUID, error) {
	var id uuid.UUID

	ms := uint64(e.clock.Now().UnixMilli())
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if _, err := io.ReadFull(e.entropy, id[6:16]); err != nil {
		return uuid.Nil, err
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return id, nil
}

// ParseUUID accepts the canonical dashed form plus the uppercase, braced,
// URN-prefixed and dash-stripped variants, and decodes the version-specific
// bit layout.
func ParseUUID(text string) (UUIDInfo, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		if uuid.IsInvalidLengthError(err) {
			return UUIDInfo{}, fmt.Errorf("%w: %v", ErrLength, err)
		}
		return UUIDInfo{}, fmt.Errorf("%w: %v", ErrCharacter, err)
	}

	info := UUIDInfo{
		UUID:    id,
		Version: int(id.Version()),
		Variant: id.Variant().String(),
	}

	switch info.Version {
	case 1:
		ticks := uint64(binary.BigEndian.Uint16(id[6:8])&0x0fff)<<48 |
			uint64(binary.BigEndian.Uint16(id[4:6]))<<32 |
			uint64(binary.BigEndian.Uint32(id[0:4]))
		info.TimeMs = int64((ticks - gregorianToUnixTicks) / 10_000)
		info.HasTime = true
		info.ClockSeq = int(binary.BigEndian.Uint16(id[8:10]) & 0x3fff)
		info.Node = fmt.Sprintf("%x", id[10:16])
	case 3, 4, 5:
	case 6:
		ticks := uint64(binary.BigEndian.Uint32(id[0:4]))<<28 |
			uint64(binary.BigEndian.Uint16(id[4:6]))<<12 |
			uint64(binary.BigEndian.Uint16(id[6:8])&0x0fff)
		info.TimeMs = int64((ticks - gregorianToUnixTicks) / 10_000)
		info.HasTime = true
		info.ClockSeq = int(binary.BigEndian.Uint16(id[8:10]) & 0x3fff)
		info.Node = fmt.Sprintf("%x", id[10:16])
	case 7:
		info.TimeMs = int64(uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
			uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5]))
		info.HasTime = true
	default:
		return UUIDInfo{}, fmt.Errorf("%w: %d", ErrUnknownVersion, info.Version)
	}

	return info, nil
}
