package pkguid

import (
	"crypto/rand"
	"errors"
	"io"
	"time"
)

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// Clock supplies the current time. Generators read it instead of calling
// time.Now so tests can advance time deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

var (
	// ErrLength indicates an identifier of the wrong length.
	ErrLength = errors.New("invalid identifier length")
	// ErrCharacter indicates a character outside the format's alphabet.
	ErrCharacter = errors.New("invalid identifier character")
	// ErrUnknownVersion indicates a UUID version nibble outside the known set.
	ErrUnknownVersion = errors.New("unknown uuid version")
	// ErrWorkerRange indicates a snowflake worker id above 10 bits.
	ErrWorkerRange = errors.New("worker id out of range")
	// ErrBeforeEpoch indicates a clock reading earlier than the snowflake epoch.
	ErrBeforeEpoch = errors.New("clock is before the configured epoch")
	// ErrBadAlphabet indicates an unusable nanoid alphabet.
	ErrBadAlphabet = errors.New("invalid alphabet")
	// ErrBadLength indicates a non-positive nanoid length.
	ErrBadLength = errors.New("invalid length")
)

// Engine generates identifiers in every supported format from an injected
// clock and entropy source.
//
// Nil collaborators default to the system clock and crypto/rand, which is
// what production wiring uses. An Engine is safe for concurrent use as long
// as its entropy reader is (crypto/rand.Reader is).
type Engine struct {
	clock   Clock
	entropy io.Reader
}

// NewEngine constructs an Engine. Either collaborator may be nil to get the
// real clock or crypto/rand.
func NewEngine(clock Clock, entropy io.Reader) *Engine {
	if clock == nil {
		clock = realClock{}
	}
	if entropy == nil {
		entropy = rand.Reader
	}

	return &Engine{clock: clock, entropy: entropy}
}
