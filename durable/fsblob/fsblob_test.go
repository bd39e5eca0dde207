package fsblob

import (
	"bytes"
	"context"
	"testing"
)

func TestReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok, err := d.Read(ctx, "missing"); err != nil || ok {
		t.Fatalf("Read missing: ok=%v err=%v", ok, err)
	}

	key := "some/key:with weird? chars"
	want := []byte("payload")
	if err := d.Write(ctx, key, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, ok, err := d.Read(ctx, key)
	if err != nil || !ok || !bytes.Equal(got, want) {
		t.Fatalf("Read after write: ok=%v err=%v got=%q", ok, err, got)
	}

	// overwrite replaces
	want2 := []byte("payload2")
	if err := d.Write(ctx, key, want2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _, _ := d.Read(ctx, key); !bytes.Equal(got, want2) {
		t.Fatalf("overwrite not visible: got %q", got)
	}

	if err := d.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := d.Delete(ctx, key); err != nil {
		t.Fatalf("second Delete should be idempotent: %v", err)
	}
	if _, ok, _ := d.Read(ctx, key); ok {
		t.Fatalf("entry still present after delete")
	}
}
