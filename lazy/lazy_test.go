package lazy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestInitializesOnceUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	var inits atomic.Int64
	h := New(func(context.Context) (int, error) {
		inits.Add(1)
		return 42, nil
	})

	const callers = 32
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			v, err := h.Get(ctx)
			if err != nil || v != 42 {
				t.Errorf("Get: v=%d err=%v", v, err)
			}
		}()
	}
	wg.Wait()

	if n := inits.Load(); n != 1 {
		t.Fatalf("init ran %d times, want 1", n)
	}
}

func TestFailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("dial failed")
	var inits int
	h := New(func(context.Context) (string, error) {
		inits++
		if inits == 1 {
			return "", boom
		}
		return "conn", nil
	})

	if _, err := h.Get(ctx); !errors.Is(err, boom) {
		t.Fatalf("first Get: expected dial error, got %v", err)
	}
	v, err := h.Get(ctx)
	if err != nil || v != "conn" {
		t.Fatalf("second Get should retry and succeed: v=%q err=%v", v, err)
	}
	if inits != 2 {
		t.Fatalf("init ran %d times, want 2", inits)
	}

	// success is memoized
	if _, _ = h.Get(ctx); inits != 2 {
		t.Fatalf("init re-ran after success: %d", inits)
	}
}
