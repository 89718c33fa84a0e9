package usecase

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"
	"io"
	"time"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgbase"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgcodec"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkguid"
)

type HistoryStore interface {
	Append(ctx context.Context, rec entity.GenRecord) error
	List(ctx context.Context, limit int) ([]entity.GenRecord, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.IDGeneratedEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

// SnowflakeSettings seeds the module's snowflake generator. A negative
// WorkerID picks a random one.
type SnowflakeSettings struct {
	EpochMs  int64
	WorkerID int64
}

// NanoIDSettings are the fallback alphabet and length when a request does
// not override them.
type NanoIDSettings struct {
	Alphabet string
	Length   int
}

type Dependency struct {
	Store     HistoryStore
	Events    EventPublisher
	Runner    Runner
	Clock     pkguid.Clock
	Entropy   io.Reader
	ID        pkguid.StringID
	RootCtx   context.Context
	Snowflake SnowflakeSettings
	NanoID    NanoIDSettings
}

type codecEntry struct {
	encode func(data []byte, opts EncodeOptions) string
	decode func(text string) ([]byte, error)
}

type Usecase struct {
	store     HistoryStore
	events    EventPublisher
	runner    Runner
	engine    *pkguid.Engine
	clock     pkguid.Clock
	snowflake *pkguid.Snowflake
	snowEpoch int64
	nano      NanoIDSettings
	id        pkguid.StringID
	rootCtx   context.Context

	codecs  map[entity.Format]codecEntry
	digests map[entity.Digest]pkgcodec.DigestFn
}

func New(dep Dependency) (*Usecase, error) {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	engine := pkguid.NewEngine(dep.Clock, dep.Entropy)

	snowflake, err := engine.NewSnowflake(pkguid.SnowflakeConfig{
		EpochMs:  dep.Snowflake.EpochMs,
		WorkerID: dep.Snowflake.WorkerID,
	})
	if err != nil {
		return nil, err
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:     dep.Store,
		events:    dep.Events,
		runner:    dep.Runner,
		engine:    engine,
		clock:     clock,
		snowflake: snowflake,
		snowEpoch: dep.Snowflake.EpochMs,
		nano:      dep.NanoID,
		id:        dep.ID,
		rootCtx:   root,
		codecs:    buildCodecs(),
		digests:   buildDigests(),
	}, nil
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// buildCodecs assembles the closed codec registry. Every format tag maps to
// one encode/decode pair; call sites never switch on the tag themselves.
func buildCodecs() map[entity.Format]codecEntry {
	return map[entity.Format]codecEntry{
		entity.FormatHex: {
			encode: func(data []byte, opts EncodeOptions) string {
				return pkgcodec.EncodeHex(data, pkgcodec.HexOptions{
					Upper:    opts.Upper,
					Prefix:   opts.Prefix,
					Separate: opts.Separate,
				})
			},
			decode: pkgcodec.DecodeHex,
		},
		entity.FormatBinary: {
			encode: func(data []byte, opts EncodeOptions) string {
				return pkgcodec.EncodeBits(data, opts.Separate)
			},
			decode: pkgcodec.DecodeBits,
		},
		entity.FormatBase64: {
			encode: func(data []byte, opts EncodeOptions) string {
				return pkgcodec.EncodeBase64(data, pkgcodec.Base64Options{Wrap: opts.Wrap})
			},
			decode: pkgcodec.DecodeBase64,
		},
		entity.FormatBase64URL: {
			encode: func(data []byte, opts EncodeOptions) string {
				return pkgcodec.EncodeBase64(data, pkgcodec.Base64Options{URL: true})
			},
			decode: pkgcodec.DecodeBase64,
		},
		entity.FormatBase32: {
			encode: func(data []byte, _ EncodeOptions) string {
				return pkgcodec.EncodeBase32(data)
			},
			decode: pkgcodec.DecodeBase32,
		},
		entity.FormatBase58: {
			encode: func(data []byte, _ EncodeOptions) string {
				return pkgcodec.EncodeBase58(data)
			},
			decode: pkgcodec.DecodeBase58,
		},
	}
}

func sumFn(factory func() hash.Hash) pkgcodec.DigestFn {
	return func(data []byte) []byte {
		h := factory()
		h.Write(data)
		return h.Sum(nil)
	}
}

func buildDigests() map[entity.Digest]pkgcodec.DigestFn {
	return map[entity.Digest]pkgcodec.DigestFn{
		entity.DigestMD5:    sumFn(md5.New),
		entity.DigestSHA1:   sumFn(sha1.New),
		entity.DigestSHA256: sumFn(sha256.New),
		entity.DigestSHA384: sumFn(sha512.New384),
		entity.DigestSHA512: sumFn(sha512.New),
	}
}

// validationErrs are the sentinel failures that mean "bad input", mapped to
// a 4xx at the edge. Anything else from the codec packages is a server bug.
var validationErrs = []error{
	pkgbase.ErrEmptyInput,
	pkgbase.ErrInvalidDigit,
	pkgbase.ErrUnsupportedBase,
	pkgbase.ErrNegative,
	pkgcodec.ErrInvalidHex,
	pkgcodec.ErrInvalidBit,
	pkgcodec.ErrBitLength,
	pkgcodec.ErrInvalidBase64,
	pkgcodec.ErrInvalidBase32,
	pkgcodec.ErrInvalidBase58,
	pkgcodec.ErrInvalidBech32,
	pkgcodec.ErrInvalidChecksum,
	pkgcodec.ErrInvalidHrp,
	pkgcodec.ErrMixedCase,
	pkgcodec.ErrCheckTooShort,
	pkguid.ErrLength,
	pkguid.ErrCharacter,
	pkguid.ErrUnknownVersion,
	pkguid.ErrBadAlphabet,
	pkguid.ErrBadLength,
}

func mapCodecErr(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return pkgerror.NewInvalidInput(err)
		}
	}

	return pkgerror.NewServer(err)
}
