package mongodoc

import (
	"context"
	"strings"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{}); err != ErrNilCollection {
		t.Fatalf("expected ErrNilCollection, got %v", err)
	}
}

func TestWriteRejectsNonObjectPayload(t *testing.T) {
	d := &Docs{idField: DefaultIDField}
	for _, payload := range []string{`"just a string"`, `[1,2,3]`, `not json`} {
		err := d.Write(context.Background(), "k", []byte(payload))
		if err == nil {
			t.Fatalf("expected error for payload %q", payload)
		}
		if !strings.Contains(err.Error(), "not a JSON object") {
			t.Fatalf("unexpected error for payload %q: %v", payload, err)
		}
	}
}
