package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Gateway.BaseURL = "http://backend.test/api"
	cfg.Gateway.RetryBackoff = time.Millisecond
	cfg.Auth.SnapshotTTL = time.Hour
	cfg.ApplyDefaults()

	return cfg
}

// memoryStore is an in-memory LocalStore that can be told to fail.
type memoryStore struct {
	mu         sync.Mutex
	data       map[string]string
	failReads  bool
	failWrites bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failReads {
		return "", false, domainerrors.NewStorageError("get", key, context.DeadlineExceeded)
	}
	value, ok := s.data[key]

	return value, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return domainerrors.NewStorageError("set", key, context.DeadlineExceeded)
	}
	s.data[key] = value

	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return domainerrors.NewStorageError("remove", key, context.DeadlineExceeded)
	}
	delete(s.data, key)

	return nil
}

func (s *memoryStore) value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]

	return value, ok
}

func (s *memoryStore) put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}

// loginAs marks state as confirmed for a user with id.
func loginAs(state *SessionState, id string) {
	state.update(func(s *entity.Session) {
		*s = entity.Session{
			State: entity.SessionAuthenticated,
			User:  &entity.User{ID: id, Name: "Test User", Email: id + "@example.com"},
		}
	})
}

func newProduct(id string, price float64, stock int) entity.ProductSnapshot {
	return entity.ProductSnapshot{
		ID:       id,
		Title:    "Product " + id,
		Price:    price,
		Stock:    &stock,
		IsActive: true,
	}
}

func remoteLine(product entity.ProductSnapshot, quantity int) entity.CartItem {
	return entity.CartItem{Product: &product, Quantity: quantity}
}
