package keys

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestEncodeDeterministicAndReversible(t *testing.T) {
	raw := "order/2024-11/θ:1"
	a := Encode(raw)
	b := Encode(raw)
	if a != b {
		t.Fatalf("Encode not deterministic: %q vs %q", a, b)
	}
	dec, err := base64.RawURLEncoding.DecodeString(a)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(dec) != raw {
		t.Fatalf("round trip mismatch: got %q want %q", dec, raw)
	}
}

func TestEncodeCharset(t *testing.T) {
	const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_."
	enc := Encode("key with spaces, slashes// and unicode ✓")
	for _, r := range enc {
		if !strings.ContainsRune(allowed, r) {
			t.Fatalf("encoded key contains disallowed character %q in %q", r, enc)
		}
	}
}

func TestEncodedLengthBoundary(t *testing.T) {
	// 768 raw bytes encode to exactly MaxEncodedLen characters.
	at := Encode(strings.Repeat("k", 768))
	if len(at) != MaxEncodedLen {
		t.Fatalf("expected %d chars, got %d", MaxEncodedLen, len(at))
	}
	over := Encode(strings.Repeat("k", 769))
	if len(over) <= MaxEncodedLen {
		t.Fatalf("expected >%d chars, got %d", MaxEncodedLen, len(over))
	}
}
