package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shandysiswandi/gocodec/internal/codec/entity"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkguid"
)

const (
	maxBatch       = 100
	defaultHistory = 20
)

// GenerateIDs mints count identifiers of the given kind. Each generated
// value is announced on the event bus for the audit trail; generation
// itself never blocks on that.
func (u *Usecase) GenerateIDs(ctx context.Context, kind entity.IDKind, count int, opts GenerateOptions) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if count > maxBatch {
		count = maxBatch
	}

	generate, err := u.generator(kind, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := generate()
		if err != nil {
			return nil, mapCodecErr(err)
		}
		ids = append(ids, id)
	}

	u.announce(kind, ids)

	return ids, nil
}

func (u *Usecase) generator(kind entity.IDKind, opts GenerateOptions) (func() (string, error), error) {
	uuidString := func(f func() (uuid.UUID, error)) func() (string, error) {
		return func() (string, error) {
			id, err := f()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		}
	}

	switch kind {
	case entity.IDKindUUID, entity.IDKindUUIDv4:
		return uuidString(u.engine.NewUUIDv4), nil
	case entity.IDKindUUIDv1:
		return uuidString(u.engine.NewUUIDv1), nil
	case entity.IDKindUUIDv6:
		return uuidString(u.engine.NewUUIDv6), nil
	case entity.IDKindUUIDv7:
		return uuidString(u.engine.NewUUIDv7), nil
	case entity.IDKindUUIDv3, entity.IDKindUUIDv5:
		space, err := namespaceUUID(opts.Namespace)
		if err != nil {
			return nil, err
		}
		if opts.Name == "" {
			return nil, pkgerror.NewInvalidInput(errors.New("name is required for name-based uuids"))
		}
		return func() (string, error) {
			if kind == entity.IDKindUUIDv3 {
				return u.engine.NewUUIDv3(space, []byte(opts.Name)).String(), nil
			}
			return u.engine.NewUUIDv5(space, []byte(opts.Name)).String(), nil
		}, nil
	case entity.IDKindULID:
		return func() (string, error) {
			id, err := u.engine.NewULID()
			if err != nil {
				return "", err
			}
			if opts.Lowercase {
				return strings.ToLower(id), nil
			}
			return id, nil
		}, nil
	case entity.IDKindKSUID:
		return u.engine.NewKSUID, nil
	case entity.IDKindSnowflake:
		return u.snowflake.GenerateString, nil
	case entity.IDKindNanoID:
		alphabet := opts.Alphabet
		if alphabet == "" {
			alphabet = u.nano.Alphabet
		}
		length := opts.Length
		if length == 0 {
			length = u.nano.Length
		}
		return func() (string, error) {
			return u.engine.NewNanoID(alphabet, length)
		}, nil
	default:
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("unknown id kind %q", kind))
	}
}

func namespaceUUID(text string) (uuid.UUID, error) {
	if text == "" {
		return uuid.NameSpaceDNS, nil
	}

	space, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, pkgerror.NewInvalidInput(fmt.Errorf("invalid namespace uuid: %w", err))
	}

	return space, nil
}

func (u *Usecase) announce(kind entity.IDKind, ids []string) {
	if u.events == nil || u.runner == nil {
		return
	}

	at := u.clock.Now().UnixMilli()
	for _, value := range ids {
		event := entity.IDGeneratedEvent{Kind: kind, Value: value, At: at}
		if u.id != nil {
			event.EventID = u.id.Generate()
		}

		u.runner.Go(u.rootCtx, func(ctx context.Context) error {
			if err := u.events.Publish(ctx, event); err != nil {
				slog.WarnContext(ctx, "failed to publish generation event", "event_id", event.EventID, "error", err)
				return err
			}
			return nil
		})
	}
}

// ParseID decomposes an identifier of the given kind into its fields.
// Parsing never generates or mutates anything.
func (u *Usecase) ParseID(ctx context.Context, kind entity.IDKind, text string) (ParsedID, error) {
	switch kind {
	case entity.IDKindUUID, entity.IDKindUUIDv1, entity.IDKindUUIDv3, entity.IDKindUUIDv4,
		entity.IDKindUUIDv5, entity.IDKindUUIDv6, entity.IDKindUUIDv7:
		return u.parseUUID(kind, text)
	case entity.IDKindULID:
		info, err := pkguid.ParseULID(text)
		if err != nil {
			return ParsedID{}, mapCodecErr(err)
		}
		return ParsedID{
			Kind:      kind,
			Canonical: strings.ToUpper(text),
			TimeMs:    info.TimeMs,
			HasTime:   true,
			Entropy:   hex.EncodeToString(info.Entropy),
		}, nil
	case entity.IDKindKSUID:
		info, err := pkguid.ParseKSUID(text)
		if err != nil {
			return ParsedID{}, mapCodecErr(err)
		}
		return ParsedID{
			Kind:      kind,
			Canonical: text,
			TimeSec:   info.Time,
			Payload:   hex.EncodeToString(info.Payload),
		}, nil
	case entity.IDKindSnowflake:
		info, err := pkguid.ParseSnowflake(text, u.snowEpoch)
		if err != nil {
			return ParsedID{}, mapCodecErr(err)
		}
		return ParsedID{
			Kind:      kind,
			Canonical: text,
			TimeMs:    info.TimeMs,
			HasTime:   true,
			WorkerID:  info.WorkerID,
			Sequence:  info.Sequence,
		}, nil
	case entity.IDKindNanoID:
		return ParsedID{}, pkgerror.NewInvalidInput(errors.New("nanoid has no structural fields to parse"))
	default:
		return ParsedID{}, pkgerror.NewInvalidInput(fmt.Errorf("unknown id kind %q", kind))
	}
}

func (u *Usecase) parseUUID(kind entity.IDKind, text string) (ParsedID, error) {
	info, err := pkguid.ParseUUID(text)
	if err != nil {
		return ParsedID{}, mapCodecErr(err)
	}

	if want, ok := uuidKindVersion[kind]; ok && info.Version != want {
		return ParsedID{}, pkgerror.NewInvalidInput(fmt.Errorf("expected uuid v%d, got v%d", want, info.Version))
	}

	return ParsedID{
		Kind:      kind,
		Canonical: info.UUID.String(),
		Version:   info.Version,
		Variant:   info.Variant,
		TimeMs:    info.TimeMs,
		HasTime:   info.HasTime,
		ClockSeq:  info.ClockSeq,
		Node:      info.Node,
	}, nil
}

var uuidKindVersion = map[entity.IDKind]int{
	entity.IDKindUUIDv1: 1,
	entity.IDKindUUIDv3: 3,
	entity.IDKindUUIDv4: 4,
	entity.IDKindUUIDv5: 5,
	entity.IDKindUUIDv6: 6,
	entity.IDKindUUIDv7: 7,
}

// History lists recent generation records, newest first.
func (u *Usecase) History(ctx context.Context, limit int) ([]entity.GenRecord, error) {
	if u.store == nil {
		return nil, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if limit < 1 {
		limit = defaultHistory
	}
	if limit > maxBatch {
		limit = maxBatch
	}

	records, err := u.store.List(ctx, limit)
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	return records, nil
}

// Formats lists every registered codec, identifier and digest tag.
func (u *Usecase) Formats(ctx context.Context) FormatsResult {
	result := FormatsResult{
		IDKinds: []entity.IDKind{
			entity.IDKindUUID, entity.IDKindUUIDv1, entity.IDKindUUIDv3,
			entity.IDKindUUIDv4, entity.IDKindUUIDv5, entity.IDKindUUIDv6,
			entity.IDKindUUIDv7, entity.IDKindULID, entity.IDKindKSUID,
			entity.IDKindSnowflake, entity.IDKindNanoID,
		},
	}

	for format := range u.codecs {
		result.Codecs = append(result.Codecs, format)
	}
	for digest := range u.digests {
		result.Digests = append(result.Digests, digest)
	}

	slices.Sort(result.Codecs)
	slices.Sort(result.Digests)

	return result
}
