package storage

import (
	"context"
	"time"

	"storefront/internal/domain/repository"
)

// timeoutStore bounds every call on the wrapped store.
type timeoutStore struct {
	next    repository.LocalStore
	timeout time.Duration
}

// WithTimeout wraps store so each call carries a deadline of at most timeout.
// A non-positive timeout returns store unchanged.
func WithTimeout(store repository.LocalStore, timeout time.Duration) repository.LocalStore {
	if timeout <= 0 {
		return store
	}

	return &timeoutStore{next: store, timeout: timeout}
}

func (s *timeoutStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.next.Get(ctx, key)
}

func (s *timeoutStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.next.Set(ctx, key, value)
}

func (s *timeoutStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.next.Remove(ctx, key)
}
