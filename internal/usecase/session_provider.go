package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionProvider is what the cart engine needs to know about the session.
type SessionProvider interface {
	// CurrentUserID returns the logged-in user's id, or "" for a guest.
	// A provisional session counts as logged in.
	CurrentUserID() string

	// Current returns a copy of the session.
	Current() entity.Session

	// Expire downgrades the session to anonymous after the backend rejected its credentials.
	Expire(ctx context.Context)
}
