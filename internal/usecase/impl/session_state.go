package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// SessionState owns the current session and the persisted auth snapshot.
// It is shared by the session manager, which drives transitions, and the
// cart engine, which only reads the user id and reports expired credentials.
type SessionState struct {
	store  repository.LocalStore
	logger *slog.Logger
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	session entity.Session
}

// NewSessionState creates an anonymous session.
func NewSessionState(store repository.LocalStore, cfg *config.Config, logger *slog.Logger) *SessionState {
	return &SessionState{
		store:   store,
		logger:  logger,
		ttl:     cfg.Auth.SnapshotTTL,
		now:     time.Now,
		session: entity.Session{State: entity.SessionAnonymous},
	}
}

// CurrentUserID returns the logged-in user's id, or "" for a guest.
func (s *SessionState) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.UserID()
}

// Current returns a copy of the session.
func (s *SessionState) Current() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.session
	if current.User != nil {
		user := *current.User
		current.User = &user
	}

	return current
}

// Expire downgrades an authenticated session to anonymous and forgets the cached snapshot.
func (s *SessionState) Expire(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.session.State == entity.SessionAuthenticated
	s.session = entity.Session{
		State: entity.SessionAnonymous,
		Error: domainerrors.ErrSessionExpired.Message(),
	}
	s.mu.Unlock()

	if wasAuthenticated {
		s.log(ctx).Info("Session expired, continuing as guest")
	}

	_ = s.clearSnapshot(ctx)
}

func (s *SessionState) update(fn func(*entity.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.session)
}

func (s *SessionState) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// loadSnapshot returns the cached snapshot if it exists, decodes and is fresh.
func (s *SessionState) loadSnapshot(ctx context.Context) *entity.AuthSnapshot {
	raw, found, err := s.store.Get(ctx, repository.KeyAuthState)
	if err != nil {
		s.log(ctx).Warn("Failed to read auth snapshot", slog.Any("error", err))

		return nil
	}
	if !found {
		return nil
	}

	var snapshot entity.AuthSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		s.log(ctx).Warn("Discarding unreadable auth snapshot", slog.Any("error", err))

		return nil
	}
	if !snapshot.Fresh(s.now(), s.ttl) {
		s.log(ctx).Debug("Ignoring stale auth snapshot")

		return nil
	}

	return &snapshot
}

// saveSnapshot persists the minimal fields of user. The error is for tests; callers ignore it.
func (s *SessionState) saveSnapshot(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(entity.NewAuthSnapshot(user, s.now()))
	if err != nil {
		return errors.Wrap(err, "failed to encode auth snapshot")
	}

	if err := s.store.Set(ctx, repository.KeyAuthState, string(payload)); err != nil {
		s.log(ctx).Warn("Failed to persist auth snapshot", slog.Any("error", err))

		return err
	}

	return nil
}

func (s *SessionState) clearSnapshot(ctx context.Context) error {
	if err := s.store.Remove(ctx, repository.KeyAuthState); err != nil {
		s.log(ctx).Warn("Failed to remove auth snapshot", slog.Any("error", err))

		return err
	}

	return nil
}
