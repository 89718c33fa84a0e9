package inbound

import (
	"context"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
	"github.com/shandysiswandi/gocodec/internal/codec/usecase"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgrouter"
)

type uc interface {
	Encode(ctx context.Context, format entity.Format, data []byte, opts usecase.EncodeOptions) (string, error)
	Decode(ctx context.Context, format entity.Format, text string) ([]byte, error)
	ConvertBase(ctx context.Context, value string, from, to int) (string, error)
	EncodeChecked(ctx context.Context, payload []byte, digest entity.Digest) (string, error)
	DecodeChecked(ctx context.Context, text string, digest entity.Digest) (usecase.CheckedResult, error)
	EncodeBech32(ctx context.Context, hrp string, words []byte, bech32m bool) (string, error)
	DecodeBech32(ctx context.Context, text string) (usecase.Bech32Result, error)
	GenerateIDs(ctx context.Context, kind entity.IDKind, count int, opts usecase.GenerateOptions) ([]string, error)
	ParseID(ctx context.Context, kind entity.IDKind, text string) (usecase.ParsedID, error)
	History(ctx context.Context, limit int) ([]entity.GenRecord, error)
	Formats(ctx context.Context) usecase.FormatsResult
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/codec/encode", end.Encode)
	r.POST("/codec/decode", end.Decode)
	r.POST("/base/convert", end.ConvertBase)

	r.POST("/base58check/encode", end.EncodeChecked)
	r.POST("/base58check/decode", end.DecodeChecked)
	r.POST("/bech32/encode", end.EncodeBech32)
	r.POST("/bech32/decode", end.DecodeBech32)

	r.POST("/ids/generate", end.GenerateIDs)
	r.POST("/ids/parse", end.ParseID)
	r.GET("/ids/history", end.History) // ?limit=
	r.GET("/formats", end.Formats)
}
