package codec

import (
	"strings"
	"testing"
)

type order struct {
	ID    string `json:"id" msgpack:"id"`
	Total int    `json:"total" msgpack:"total"`
}

func TestStringIdentity(t *testing.T) {
	b, err := String{}.Encode("héllo")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s, err := String{}.Decode(b)
	if err != nil || s != "héllo" {
		t.Fatalf("Decode: %q err=%v", s, err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := order{ID: "o-1", Total: 250}
	b, err := JSON[order]{}.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := JSON[order]{}.Decode(b)
	if err != nil || got != want {
		t.Fatalf("Decode: %+v err=%v", got, err)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	want := order{ID: "o-2", Total: 99}
	b, err := Msgpack[order]{}.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Msgpack[order]{}.Decode(b)
	if err != nil || got != want {
		t.Fatalf("Decode: %+v err=%v", got, err)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	c := MustCBOR[order](true)
	want := order{ID: "o-3", Total: 7}
	b, err := c.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil || got != want {
		t.Fatalf("Decode: %+v err=%v", got, err)
	}
}

func TestLimitRejectsOversizedDecode(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 8}
	if _, err := c.Decode([]byte(strings.Repeat("x", 9))); err == nil {
		t.Fatalf("expected oversized decode to fail")
	}
	s, err := c.Decode([]byte("small"))
	if err != nil || s != "small" {
		t.Fatalf("within-limit decode: %q err=%v", s, err)
	}
	// Encode is never limited
	if _, err := c.Encode(strings.Repeat("x", 100)); err != nil {
		t.Fatalf("Encode should pass through: %v", err)
	}
}
