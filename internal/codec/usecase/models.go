package usecase

import "github.com/shandysiswandi/gocodec/internal/codec/entity"

// EncodeOptions tunes the textual output of Encode. Fields only apply to
// the formats that understand them (Upper/Prefix/Separate for hex,
// Separate for binary, Wrap for base64).
type EncodeOptions struct {
	Upper    bool
	Prefix   bool
	Separate bool
	Wrap     bool
}

// CheckedResult carries the payload of a Base58Check string together with
// the checksum verdict. An invalid checksum is a result, not an error.
type CheckedResult struct {
	Payload []byte
	Valid   bool
}

// Bech32Result is the decomposition of a bech32/bech32m string.
type Bech32Result struct {
	Hrp     string
	Words   []byte
	Bech32m bool
}

// GenerateOptions carries the per-kind knobs of GenerateIDs.
type GenerateOptions struct {
	Namespace string // uuid v3/v5: namespace UUID, defaults to the DNS namespace
	Name      string // uuid v3/v5: name to hash
	Alphabet  string // nanoid
	Length    int    // nanoid
	Lowercase bool   // ulid: emit lowercase text
}

// ParsedID is the field-level decomposition of an identifier. Only the
// fields matching the kind are populated.
type ParsedID struct {
	Kind      entity.IDKind
	Canonical string

	Version int    // uuid
	Variant string // uuid

	TimeMs  int64 // uuid v1/v6/v7, ulid, snowflake (absolute unix ms)
	HasTime bool

	TimeSec  int64  // ksuid (unix seconds)
	ClockSeq int    // uuid v1/v6
	Node     string // uuid v1/v6, hex
	Entropy  string // ulid, hex
	Payload  string // ksuid, hex
	WorkerID uint16 // snowflake
	Sequence uint16 // snowflake
}

// FormatsResult lists every registered tag, for discovery endpoints.
type FormatsResult struct {
	Codecs  []entity.Format
	IDKinds []entity.IDKind
	Digests []entity.Digest
}
