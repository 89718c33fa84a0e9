package pkgcodec

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitsRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x80, 0xff, 0x5a}

	plain := EncodeBits(data, false)
	if len(plain) != len(data)*8 {
		t.Fatalf("expected %d chars, got %d", len(data)*8, len(plain))
	}

	got, err := DecodeBits(plain)
	if err != nil {
		t.Fatalf("DecodeBits: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: %x != %x", got, data)
	}

	spaced := EncodeBits(data, true)
	got, err = DecodeBits(spaced)
	if err != nil {
		t.Fatalf("DecodeBits(spaced): %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("spaced round trip mismatch: %x != %x", got, data)
	}
}

func TestEncodeBitsKnownValue(t *testing.T) {
	if got := EncodeBits([]byte{0xa5}, false); got != "10100101" {
		t.Fatalf("expected 10100101, got %q", got)
	}
}

func TestDecodeBitsErrors(t *testing.T) {
	if _, err := DecodeBits("1010"); !errors.Is(err, ErrBitLength) {
		t.Fatalf("expected ErrBitLength, got %v", err)
	}
	if _, err := DecodeBits("1010101x"); !errors.Is(err, ErrInvalidBit) {
		t.Fatalf("expected ErrInvalidBit, got %v", err)
	}
}
