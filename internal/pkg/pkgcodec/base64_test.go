package pkgcodec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBase64RoundTrip(t *testing.T) {
	for size := 0; size <= 256; size++ {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 7)
		}

		std := EncodeBase64(data, Base64Options{})
		got, err := DecodeBase64(std)
		if err != nil {
			t.Fatalf("size %d std: %v", size, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("size %d std round trip mismatch", size)
		}

		url := EncodeBase64(data, Base64Options{URL: true})
		got, err = DecodeBase64(url)
		if err != nil {
			t.Fatalf("size %d url: %v", size, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("size %d url round trip mismatch", size)
		}
	}
}

func TestBase64URLAlphabet(t *testing.T) {
	data := []byte{0xfb, 0xef, 0xff}

	std := EncodeBase64(data, Base64Options{})
	if std != "++//" {
		t.Fatalf("expected ++//, got %q", std)
	}

	url := EncodeBase64(data, Base64Options{URL: true})
	if url != "--__" {
		t.Fatalf("expected --__, got %q", url)
	}
}

func TestBase64Wrap(t *testing.T) {
	data := make([]byte, 100)

	wrapped := EncodeBase64(data, Base64Options{Wrap: true})
	lines := strings.Split(wrapped, "\r\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", wrapped)
	}
	for i, line := range lines[:len(lines)-1] {
		if len(line) != wrapWidth {
			t.Fatalf("line %d has %d chars", i, len(line))
		}
	}

	got, err := DecodeBase64(wrapped)
	if err != nil {
		t.Fatalf("DecodeBase64(wrapped): %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("wrapped round trip mismatch")
	}
}

func TestDecodeBase64Unpadded(t *testing.T) {
	got, err := DecodeBase64("QQ")
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}
	if string(got) != "A" {
		t.Fatalf("expected A, got %q", got)
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	for _, in := range []string{"Q", "abc!", "QQQQQ"} {
		if _, err := DecodeBase64(in); !errors.Is(err, ErrInvalidBase64) {
			t.Fatalf("DecodeBase64(%q): expected ErrInvalidBase64, got %v", in, err)
		}
	}
}

func TestBase32RoundTrip(t *testing.T) {
	data := []byte("hello base32")

	text := EncodeBase32(data)
	got, err := DecodeBase32(text)
	if err != nil {
		t.Fatalf("DecodeBase32: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}

	// Lowercase and unpadded forms decode to the same bytes.
	got, err = DecodeBase32(strings.ToLower(strings.TrimRight(text, "=")))
	if err != nil {
		t.Fatalf("DecodeBase32 normalized: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("normalized round trip mismatch")
	}
}

func TestDecodeBase32Invalid(t *testing.T) {
	if _, err := DecodeBase32("!!!!!!!!"); !errors.Is(err, ErrInvalidBase32) {
		t.Fatalf("expected ErrInvalidBase32, got %v", err)
	}
}
