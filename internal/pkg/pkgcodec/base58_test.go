package pkgcodec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"strings"
	"testing"
)

func TestBase58RoundTrip(t *testing.T) {
	for size := 0; size <= 64; size++ {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i*31 + 1)
		}

		got, err := DecodeBase58(EncodeBase58(data))
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("size %d round trip mismatch", size)
		}
	}
}

func TestBase58LeadingZeros(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01}

	text := EncodeBase58(data)
	if !strings.HasPrefix(text, "11") {
		t.Fatalf("expected two leading 1s, got %q", text)
	}

	got, err := DecodeBase58(text)
	if err != nil {
		t.Fatalf("DecodeBase58: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("expected %x, got %x", data, got)
	}
}

func TestDecodeBase58Empty(t *testing.T) {
	got, err := DecodeBase58("")
	if err != nil {
		t.Fatalf("DecodeBase58(\"\"): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got %x", got)
	}
}

func TestDecodeBase58Invalid(t *testing.T) {
	// 0, O, I and l are excluded from the Bitcoin alphabet.
	for _, in := range []string{"0", "O", "I", "l"} {
		if _, err := DecodeBase58(in); !errors.Is(err, ErrInvalidBase58) {
			t.Fatalf("DecodeBase58(%q): expected ErrInvalidBase58, got %v", in, err)
		}
	}
}

func sha256Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func TestEncodeCheckedRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02}

	text := EncodeChecked(payload, sha256Digest)
	result, err := DecodeChecked(text, sha256Digest)
	if err != nil {
		t.Fatalf("DecodeChecked: %v", err)
	}
	if !result.Valid {
		t.Fatal("expected valid checksum")
	}
	if !bytes.Equal(result.Payload, payload) {
		t.Fatalf("expected %x, got %x", payload, result.Payload)
	}
}

func TestDecodeCheckedDetectsCorruption(t *testing.T) {
	payload := []byte("check me")
	text := EncodeChecked(payload, sha256Digest)

	data, err := DecodeBase58(text)
	if err != nil {
		t.Fatalf("DecodeBase58: %v", err)
	}

	for i := range data {
		corrupted := make([]byte, len(data))
		copy(corrupted, data)
		corrupted[i] ^= 0xff

		result, err := DecodeChecked(EncodeBase58(corrupted), sha256Digest)
		if err != nil {
			t.Fatalf("byte %d: %v", i, err)
		}
		if result.Valid {
			t.Fatalf("flipping byte %d went undetected", i)
		}
	}
}

func TestDecodeCheckedTooShort(t *testing.T) {
	text := EncodeBase58([]byte{1, 2, 3, 4})
	if _, err := DecodeChecked(text, sha256Digest); !errors.Is(err, ErrCheckTooShort) {
		t.Fatalf("expected ErrCheckTooShort, got %v", err)
	}
}
