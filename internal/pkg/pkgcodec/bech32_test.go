package pkgcodec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBech32RoundTrip(t *testing.T) {
	words := []byte{0, 14, 20, 15, 7, 13, 26, 0, 25, 18, 6, 11, 13, 8, 21, 4, 20, 3, 17, 2}

	for _, m := range []bool{false, true} {
		text, err := EncodeBech32("bc", words, m)
		if err != nil {
			t.Fatalf("EncodeBech32(m=%v): %v", m, err)
		}

		hrp, got, gotM, err := DecodeBech32(text)
		if err != nil {
			t.Fatalf("DecodeBech32(%q): %v", text, err)
		}
		if hrp != "bc" {
			t.Fatalf("expected hrp bc, got %q", hrp)
		}
		if gotM != m {
			t.Fatalf("expected bech32m=%v, got %v", m, gotM)
		}
		if !bytes.Equal(got, words) {
			t.Fatalf("words mismatch: %v != %v", got, words)
		}
	}
}

func TestDecodeBech32KnownVector(t *testing.T) {
	// From BIP-173: valid with hrp "a" and no data words.
	hrp, words, m, err := DecodeBech32("A12UEL5L")
	if err != nil {
		t.Fatalf("DecodeBech32: %v", err)
	}
	if hrp != "a" || len(words) != 0 || m {
		t.Fatalf("unexpected result: hrp=%q words=%v m=%v", hrp, words, m)
	}
}

func TestDecodeBech32MixedCase(t *testing.T) {
	text, err := EncodeBech32("bc", []byte{1, 2, 3}, false)
	if err != nil {
		t.Fatalf("EncodeBech32: %v", err)
	}

	mixed := strings.ToUpper(text[:4]) + text[4:]
	if _, _, _, err := DecodeBech32(mixed); !errors.Is(err, ErrMixedCase) {
		t.Fatalf("expected ErrMixedCase, got %v", err)
	}

	// All-uppercase is fine and normalizes to lowercase.
	if _, _, _, err := DecodeBech32(strings.ToUpper(text)); err != nil {
		t.Fatalf("uppercase decode: %v", err)
	}
}

func TestDecodeBech32BadChecksum(t *testing.T) {
	text, err := EncodeBech32("tb", []byte{5, 10, 15}, false)
	if err != nil {
		t.Fatalf("EncodeBech32: %v", err)
	}

	last := text[len(text)-1]
	replacement := byte('q')
	if last == 'q' {
		replacement = 'p'
	}
	corrupted := text[:len(text)-1] + string(replacement)

	if _, _, _, err := DecodeBech32(corrupted); !errors.Is(err, ErrInvalidChecksum) {
		t.Fatalf("expected ErrInvalidChecksum, got %v", err)
	}
}

func TestDecodeBech32BadHrp(t *testing.T) {
	if _, _, _, err := DecodeBech32("1qqqqqq"); !errors.Is(err, ErrInvalidHrp) {
		t.Fatalf("expected ErrInvalidHrp, got %v", err)
	}
	if _, _, _, err := DecodeBech32("noseparator"); !errors.Is(err, ErrInvalidHrp) {
		t.Fatalf("expected ErrInvalidHrp, got %v", err)
	}
}

func TestDecodeBech32BadCharset(t *testing.T) {
	text, err := EncodeBech32("bc", []byte{1, 2, 3, 4, 5, 6}, false)
	if err != nil {
		t.Fatalf("EncodeBech32: %v", err)
	}

	// 'b' is not in the bech32 charset.
	corrupted := text[:len(text)-4] + "b" + text[len(text)-3:]
	if _, _, _, err := DecodeBech32(corrupted); err == nil {
		t.Fatal("expected decode failure")
	}
}

func TestEncodeBech32BadWord(t *testing.T) {
	if _, err := EncodeBech32("bc", []byte{32}, false); !errors.Is(err, ErrInvalidBech32) {
		t.Fatalf("expected ErrInvalidBech32, got %v", err)
	}
}
