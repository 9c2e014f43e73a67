package lock

import (
	"context"
	"sync"
)

// Memory is a process-local Locker. Each key is a one-slot channel.
type Memory struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

var _ Locker = (*Memory)(nil)

// NewMemory creates an in-process locker
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]chan struct{})}
}

func (m *Memory) slot(key string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		m.slots[key] = ch
	}
	return ch
}

// Acquire implements Locker
func (m *Memory) Acquire(ctx context.Context, keys ...string) (func(), error) {
	sorted, err := normalize(keys)
	if err != nil {
		return nil, err
	}

	held := make([]chan struct{}, 0, len(sorted))
	releaseHeld := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}

	for _, key := range sorted {
		ch := m.slot(key)
		select {
		case ch <- struct{}{}:
			held = append(held, ch)
		case <-ctx.Done():
			releaseHeld()
			return nil, contextError(ctx, key)
		}
	}

	var once sync.Once
	return func() { once.Do(releaseHeld) }, nil
}
