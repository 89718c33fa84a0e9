package inbound

import (
	"github.com/shandysiswandi/gocodec/internal/codec/entity"
)

type EncodeRequest struct {
	Format   entity.Format `json:"format"`
	DataHex  string        `json:"data_hex"`
	DataText string        `json:"data_text"`
	Upper    bool          `json:"upper"`
	Prefix   bool          `json:"prefix"`
	Separate bool          `json:"separate"`
	Wrap     bool          `json:"wrap"`
}

type EncodeResponse struct {
	Format entity.Format `json:"format"`
	Text   string        `json:"text"`
}

type DecodeRequest struct {
	Format entity.Format `json:"format"`
	Text   string        `json:"text"`
}

type DecodeResponse struct {
	Format entity.Format `json:"format"`
	Hex    string        `json:"hex"`
	Text   string        `json:"text,omitempty"`
}

type ConvertBaseRequest struct {
	Value string `json:"value"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

type ConvertBaseResponse struct {
	Value string `json:"value"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

type EncodeCheckedRequest struct {
	PayloadHex string        `json:"payload_hex"`
	Digest     entity.Digest `json:"digest"`
}

type EncodeCheckedResponse struct {
	Text string `json:"text"`
}

type DecodeCheckedRequest struct {
	Text   string        `json:"text"`
	Digest entity.Digest `json:"digest"`
}

type DecodeCheckedResponse struct {
	PayloadHex string `json:"payload_hex"`
	Valid      bool   `json:"valid"`
}

// Bech32 words travel as plain integers so the JSON stays readable; a
// []byte field would render as base64.
type EncodeBech32Request struct {
	Hrp     string `json:"hrp"`
	Words   []int  `json:"words"`
	Bech32m bool   `json:"bech32m"`
}

type EncodeBech32Response struct {
	Text string `json:"text"`
}

type DecodeBech32Request struct {
	Text string `json:"text"`
}

type DecodeBech32Response struct {
	Hrp     string `json:"hrp"`
	Words   []int  `json:"words"`
	Bech32m bool   `json:"bech32m"`
}

type GenerateIDsRequest struct {
	Kind      entity.IDKind `json:"kind"`
	Count     int           `json:"count"`
	Namespace string        `json:"namespace"`
	Name      string        `json:"name"`
	Alphabet  string        `json:"alphabet"`
	Length    int           `json:"length"`
	Lowercase bool          `json:"lowercase"`
}

type GenerateIDsResponse struct {
	Kind entity.IDKind `json:"kind"`
	IDs  []string      `json:"ids"`
}

func (r GenerateIDsResponse) Meta() map[string]any {
	return map[string]any{"count": len(r.IDs)}
}

type ParseIDRequest struct {
	Kind entity.IDKind `json:"kind"`
	ID   string        `json:"id"`
}

type ParseIDResponse struct {
	Kind      entity.IDKind `json:"kind"`
	Canonical string        `json:"canonical"`
	Version   int           `json:"version,omitempty"`
	Variant   string        `json:"variant,omitempty"`
	TimeMs    int64         `json:"time_ms,omitempty"`
	TimeSec   int64         `json:"time_sec,omitempty"`
	ClockSeq  int           `json:"clock_seq,omitempty"`
	Node      string        `json:"node,omitempty"`
	Entropy   string        `json:"entropy,omitempty"`
	Payload   string        `json:"payload,omitempty"`
	WorkerID  uint16        `json:"worker_id,omitempty"`
	Sequence  uint16        `json:"sequence,omitempty"`
}

type GenRecord struct {
	Kind  entity.IDKind `json:"kind"`
	Value string        `json:"value"`
	At    int64         `json:"at"`
}

type HistoryResponse struct {
	Records []GenRecord `json:"records"`
}

func (r HistoryResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Records)}
}

type FormatsResponse struct {
	Codecs  []entity.Format `json:"codecs"`
	IDKinds []entity.IDKind `json:"id_kinds"`
	Digests []entity.Digest `json:"digests"`
}
