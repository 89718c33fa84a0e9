package pkguid

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

const (
	snowflakeWorkerBits = 10
	snowflakeSeqBits    = 12

	maxWorkerID = 1<<snowflakeWorkerBits - 1
	seqMask     = 1<<snowflakeSeqBits - 1
)

// Sequencer supplies the 12-bit sequence field. Without one the generator
// randomizes the field from its entropy source, which keeps IDs cheap but
// means two IDs minted in the same millisecond on the same worker may
// collide. Callers that need a collision-free stream must plug in a
// monotonic Sequencer.
type Sequencer interface {
	Next() uint32
}

// SnowflakeConfig configures a Snowflake generator. A negative WorkerID
// asks for a random one drawn from the engine's entropy source.
type SnowflakeConfig struct {
	EpochMs   int64
	WorkerID  int64
	Sequencer Sequencer
}

// Snowflake mints 64-bit IDs laid out as
// timestamp-ms-since-epoch | 10-bit worker | 12-bit sequence.
type Snowflake struct {
	epochMs int64
	worker  uint64
	seq     Sequencer
	clock   Clock
	entropy io.Reader
}

// SnowflakeInfo is the result of ParseSnowflake.
type SnowflakeInfo struct {
	ID       uint64
	TimeMs   int64 // absolute unix ms (epoch added back)
	WorkerID uint16
	Sequence uint16
}

// NewSnowflake builds a Snowflake generator sharing the engine's clock and
// entropy source.
func (e *Engine) NewSnowflake(cfg SnowflakeConfig) (*Snowflake, error) {
	worker := cfg.WorkerID
	if worker < 0 {
		var err error
		worker, err = randomWorkerID(e.entropy)
		if err != nil {
			return nil, err
		}
	}
	if worker > maxWorkerID {
		return nil, fmt.Errorf("%w: %d > %d", ErrWorkerRange, worker, maxWorkerID)
	}

	return &Snowflake{
		epochMs: cfg.EpochMs,
		worker:  uint64(worker),
		seq:     cfg.Sequencer,
		clock:   e.clock,
		entropy: e.entropy,
	}, nil
}

func randomWorkerID(entropy io.Reader) (int64, error) {
	var id int64
	if err := binary.Read(entropy, binary.BigEndian, &id); err != nil {
		return 0, err
	}

	return id & maxWorkerID, nil
}

// Generate mints one ID from the current clock reading.
func (s *Snowflake) Generate() (uint64, error) {
	ms := s.clock.Now().UnixMilli() - s.epochMs
	if ms < 0 {
		return 0, fmt.Errorf("%w: epoch is %dms in the future", ErrBeforeEpoch, -ms)
	}

	var seq uint64
	if s.seq != nil {
		seq = uint64(s.seq.Next()) & seqMask
	} else {
		var buf [2]byte
		if _, err := io.ReadFull(s.entropy, buf[:]); err != nil {
			return 0, err
		}
		seq = uint64(binary.BigEndian.Uint16(buf[:])) & seqMask
	}

	return uint64(ms)<<(snowflakeWorkerBits+snowflakeSeqBits) | s.worker<<snowflakeSeqBits | seq, nil
}

// GenerateString mints one ID rendered as a decimal string.
func (s *Snowflake) GenerateString() (string, error) {
	id, err := s.Generate()
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(id, 10), nil
}

// ParseSnowflake splits a decimal snowflake ID into its fields, adding the
// epoch back onto the timestamp.
func ParseSnowflake(text string, epochMs int64) (SnowflakeInfo, error) {
	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return SnowflakeInfo{}, fmt.Errorf("%w: %v", ErrCharacter, err)
	}

	return SnowflakeInfo{
		ID:       id,
		TimeMs:   int64(id>>(snowflakeWorkerBits+snowflakeSeqBits)) + epochMs,
		WorkerID: uint16(id >> snowflakeSeqBits & maxWorkerID),
		Sequence: uint16(id & seqMask),
	}, nil
}
