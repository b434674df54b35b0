package syncs

import (
	"context"
	"errors"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	if err := sem.Acquire(t.Context()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := sem.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}

	sem.Release()
	if err := sem.Acquire(t.Context()); err != nil {
		t.Fatal(err)
	}
	sem.Release()

	if cap(NewSemaphore(0)) != 1 {
		t.Fatal("should have at least one slot")
	}
}
