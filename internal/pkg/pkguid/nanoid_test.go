package pkguid

import (
	"errors"
	"strings"
	"testing"
)

func TestNanoIDDefaults(t *testing.T) {
	engine, _ := testEngine(0)

	id, err := engine.NewNanoID("", 0)
	if err != nil {
		t.Fatalf("NewNanoID: %v", err)
	}
	if len(id) != DefaultNanoIDLength {
		t.Fatalf("expected %d characters, got %d", DefaultNanoIDLength, len(id))
	}
	for _, r := range id {
		if !strings.ContainsRune(DefaultNanoIDAlphabet, r) {
			t.Fatalf("character %q outside alphabet", r)
		}
	}
}

func TestNanoIDCustomAlphabet(t *testing.T) {
	engine, _ := testEngine(0)

	id, err := engine.NewNanoID("abc", 100)
	if err != nil {
		t.Fatalf("NewNanoID: %v", err)
	}
	if len(id) != 100 {
		t.Fatalf("expected 100 characters, got %d", len(id))
	}
	for _, r := range id {
		if r != 'a' && r != 'b' && r != 'c' {
			t.Fatalf("character %q outside alphabet", r)
		}
	}
}

func TestNanoIDDeterministicWithFixedEntropy(t *testing.T) {
	first, err := NewEngine(nil, &countReader{}).NewNanoID("0123456789abcdef", 32)
	if err != nil {
		t.Fatalf("NewNanoID: %v", err)
	}
	second, err := NewEngine(nil, &countReader{}).NewNanoID("0123456789abcdef", 32)
	if err != nil {
		t.Fatalf("NewNanoID: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output for identical entropy, got %q and %q", first, second)
	}
}

func TestNanoIDErrors(t *testing.T) {
	engine, _ := testEngine(0)

	if _, err := engine.NewNanoID("x", 10); !errors.Is(err, ErrBadAlphabet) {
		t.Fatalf("expected ErrBadAlphabet for single character, got %v", err)
	}
	if _, err := engine.NewNanoID("aab", 10); !errors.Is(err, ErrBadAlphabet) {
		t.Fatalf("expected ErrBadAlphabet for duplicate, got %v", err)
	}
	if _, err := engine.NewNanoID("abc", -1); !errors.Is(err, ErrBadLength) {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}

func TestKSUIDRoundTrip(t *testing.T) {
	engine, _ := testEngine(1700000000000)

	id, err := engine.NewKSUID()
	if err != nil {
		t.Fatalf("NewKSUID: %v", err)
	}
	if len(id) != 27 {
		t.Fatalf("expected 27 characters, got %d", len(id))
	}

	info, err := ParseKSUID(id)
	if err != nil {
		t.Fatalf("ParseKSUID: %v", err)
	}
	if info.Time != 1700000000 {
		t.Fatalf("expected unix time 1700000000, got %d", info.Time)
	}
	if len(info.Payload) != 16 {
		t.Fatalf("expected 16 payload bytes, got %d", len(info.Payload))
	}
}

func TestKSUIDBeforeEpoch(t *testing.T) {
	// 1000000000 (2001) predates KSUID's 2014 epoch; the 32-bit timestamp
	// would wrap instead of failing without a guard.
	engine, _ := testEngine(1000000000000)

	if _, err := engine.NewKSUID(); !errors.Is(err, ErrBeforeEpoch) {
		t.Fatalf("expected ErrBeforeEpoch, got %v", err)
	}
}

func TestParseKSUIDErrors(t *testing.T) {
	if _, err := ParseKSUID("tooshort"); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
	if _, err := ParseKSUID(strings.Repeat("!", 27)); !errors.Is(err, ErrCharacter) {
		t.Fatalf("expected ErrCharacter, got %v", err)
	}
}
