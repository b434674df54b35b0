package syncs

import "context"

type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, max(n, 1))
}

// Acquire blocks until a slot is free or ctx is done.
func (s Semaphore) Acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}
