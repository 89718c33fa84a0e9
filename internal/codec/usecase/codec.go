package usecase

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgbase"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgcodec"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgerror"
)

// Encode renders bytes in the requested format.
func (u *Usecase) Encode(ctx context.Context, format entity.Format, data []byte, opts EncodeOptions) (string, error) {
	entry, ok := u.codecs[format]
	if !ok {
		return "", pkgerror.NewInvalidInput(fmt.Errorf("unknown format %q", format))
	}

	return entry.encode(data, opts), nil
}

// Decode parses encoded text in the requested format back into bytes.
func (u *Usecase) Decode(ctx context.Context, format entity.Format, text string) ([]byte, error) {
	entry, ok := u.codecs[format]
	if !ok {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("unknown format %q", format))
	}

	data, err := entry.decode(text)
	if err != nil {
		return nil, mapCodecErr(err)
	}

	return data, nil
}

// ConvertBase re-renders an unsigned integer digit string between bases
// 2 and 36.
func (u *Usecase) ConvertBase(ctx context.Context, value string, from, to int) (string, error) {
	out, err := pkgbase.Convert(value, from, to)
	if err != nil {
		return "", mapCodecErr(err)
	}

	return out, nil
}

// EncodeChecked wraps a payload in Base58Check using the named digest.
func (u *Usecase) EncodeChecked(ctx context.Context, payload []byte, digest entity.Digest) (string, error) {
	fn, err := u.digest(digest)
	if err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", pkgerror.NewInvalidInput(fmt.Errorf("empty payload"))
	}

	return pkgcodec.EncodeChecked(payload, fn), nil
}

// DecodeChecked unwraps a Base58Check string. A checksum mismatch comes
// back as Valid=false with the payload intact.
func (u *Usecase) DecodeChecked(ctx context.Context, text string, digest entity.Digest) (CheckedResult, error) {
	fn, err := u.digest(digest)
	if err != nil {
		return CheckedResult{}, err
	}

	result, err := pkgcodec.DecodeChecked(text, fn)
	if err != nil {
		return CheckedResult{}, mapCodecErr(err)
	}

	return CheckedResult{Payload: result.Payload, Valid: result.Valid}, nil
}

// EncodeBech32 assembles a bech32 or bech32m string.
func (u *Usecase) EncodeBech32(ctx context.Context, hrp string, words []byte, bech32m bool) (string, error) {
	text, err := pkgcodec.EncodeBech32(hrp, words, bech32m)
	if err != nil {
		return "", mapCodecErr(err)
	}

	return text, nil
}

// DecodeBech32 splits a bech32/bech32m string into hrp and words.
func (u *Usecase) DecodeBech32(ctx context.Context, text string) (Bech32Result, error) {
	hrp, words, bech32m, err := pkgcodec.DecodeBech32(text)
	if err != nil {
		return Bech32Result{}, mapCodecErr(err)
	}

	return Bech32Result{Hrp: hrp, Words: words, Bech32m: bech32m}, nil
}

func (u *Usecase) digest(name entity.Digest) (pkgcodec.DigestFn, error) {
	if name == "" {
		name = entity.DigestSHA256
	}

	fn, ok := u.digests[name]
	if !ok {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("unknown digest %q", name))
	}

	return fn, nil
}
