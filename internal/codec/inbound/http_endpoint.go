package inbound

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
	"github.com/shandysiswandi/gocodec/internal/codec/usecase"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Encode(ctx context.Context, r *http.Request) (any, error) {
	var req EncodeRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	data, err := requestBytes(req.DataHex, req.DataText)
	if err != nil {
		return nil, err
	}

	text, err := h.uc.Encode(ctx, req.Format, data, usecase.EncodeOptions{
		Upper:    req.Upper,
		Prefix:   req.Prefix,
		Separate: req.Separate,
		Wrap:     req.Wrap,
	})
	if err != nil {
		return nil, err
	}

	return EncodeResponse{Format: req.Format, Text: text}, nil
}

func (h *HTTPEndpoint) Decode(ctx context.Context, r *http.Request) (any, error) {
	var req DecodeRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	data, err := h.uc.Decode(ctx, req.Format, req.Text)
	if err != nil {
		return nil, err
	}

	resp := DecodeResponse{Format: req.Format, Hex: hex.EncodeToString(data)}
	if utf8.Valid(data) {
		resp.Text = string(data)
	}

	return resp, nil
}

func (h *HTTPEndpoint) ConvertBase(ctx context.Context, r *http.Request) (any, error) {
	var req ConvertBaseRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	value, err := h.uc.ConvertBase(ctx, req.Value, req.From, req.To)
	if err != nil {
		return nil, err
	}

	return ConvertBaseResponse{Value: value, From: req.From, To: req.To}, nil
}

func (h *HTTPEndpoint) EncodeChecked(ctx context.Context, r *http.Request) (any, error) {
	var req EncodeCheckedRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	payload, err := decodeHexField("payload_hex", req.PayloadHex)
	if err != nil {
		return nil, err
	}

	text, err := h.uc.EncodeChecked(ctx, payload, req.Digest)
	if err != nil {
		return nil, err
	}

	return EncodeCheckedResponse{Text: text}, nil
}

func (h *HTTPEndpoint) DecodeChecked(ctx context.Context, r *http.Request) (any, error) {
	var req DecodeCheckedRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.DecodeChecked(ctx, req.Text, req.Digest)
	if err != nil {
		return nil, err
	}

	return DecodeCheckedResponse{
		PayloadHex: hex.EncodeToString(result.Payload),
		Valid:      result.Valid,
	}, nil
}

func (h *HTTPEndpoint) EncodeBech32(ctx context.Context, r *http.Request) (any, error) {
	var req EncodeBech32Request
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	words := make([]byte, 0, len(req.Words))
	for _, w := range req.Words {
		if w < 0 || w > 31 {
			return nil, pkgerror.NewInvalidInput(errors.New("words must be 5-bit values"))
		}
		words = append(words, byte(w))
	}

	text, err := h.uc.EncodeBech32(ctx, req.Hrp, words, req.Bech32m)
	if err != nil {
		return nil, err
	}

	return EncodeBech32Response{Text: text}, nil
}

func (h *HTTPEndpoint) DecodeBech32(ctx context.Context, r *http.Request) (any, error) {
	var req DecodeBech32Request
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.DecodeBech32(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	words := make([]int, 0, len(result.Words))
	for _, w := range result.Words {
		words = append(words, int(w))
	}

	return DecodeBech32Response{
		Hrp:     result.Hrp,
		Words:   words,
		Bech32m: result.Bech32m,
	}, nil
}

func (h *HTTPEndpoint) GenerateIDs(ctx context.Context, r *http.Request) (any, error) {
	var req GenerateIDsRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	if req.Kind == "" {
		return nil, pkgerror.NewInvalidInput(errors.New("kind is required"))
	}

	ids, err := h.uc.GenerateIDs(ctx, req.Kind, req.Count, usecase.GenerateOptions{
		Namespace: req.Namespace,
		Name:      req.Name,
		Alphabet:  req.Alphabet,
		Length:    req.Length,
		Lowercase: req.Lowercase,
	})
	if err != nil {
		return nil, err
	}

	return GenerateIDsResponse{Kind: req.Kind, IDs: ids}, nil
}

func (h *HTTPEndpoint) ParseID(ctx context.Context, r *http.Request) (any, error) {
	var req ParseIDRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.ID) == "" {
		return nil, pkgerror.NewInvalidInput(errors.New("id is required"))
	}

	kind := req.Kind
	if kind == "" {
		kind = entity.IDKindUUID
	}

	parsed, err := h.uc.ParseID(ctx, kind, req.ID)
	if err != nil {
		return nil, err
	}

	return ParseIDResponse{
		Kind:      parsed.Kind,
		Canonical: parsed.Canonical,
		Version:   parsed.Version,
		Variant:   parsed.Variant,
		TimeMs:    parsed.TimeMs,
		TimeSec:   parsed.TimeSec,
		ClockSeq:  parsed.ClockSeq,
		Node:      parsed.Node,
		Entropy:   parsed.Entropy,
		Payload:   parsed.Payload,
		WorkerID:  parsed.WorkerID,
		Sequence:  parsed.Sequence,
	}, nil
}

func (h *HTTPEndpoint) History(ctx context.Context, r *http.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return nil, pkgerror.NewInvalidInput(errors.New("invalid limit"))
		}
		limit = value
	}

	records, err := h.uc.History(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]GenRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, GenRecord{Kind: rec.Kind, Value: rec.Value, At: rec.At})
	}

	return HistoryResponse{Records: out}, nil
}

func (h *HTTPEndpoint) Formats(ctx context.Context, r *http.Request) (any, error) {
	result := h.uc.Formats(ctx)

	return FormatsResponse{
		Codecs:  result.Codecs,
		IDKinds: result.IDKinds,
		Digests: result.Digests,
	}, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return pkgerror.NewInvalidFormat()
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return pkgerror.NewInvalidFormat()
	}

	return nil
}

// requestBytes resolves the payload of an encode request. data_hex wins
// when both fields are set.
func requestBytes(dataHex, dataText string) ([]byte, error) {
	if dataHex != "" {
		return decodeHexField("data_hex", dataHex)
	}

	return []byte(dataText), nil
}

func decodeHexField(name, value string) ([]byte, error) {
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("invalid %s", name))
	}

	return data, nil
}
