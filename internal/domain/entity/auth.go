// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// SessionState is the authentication state of the local shopper.
type SessionState string

const (
	// SessionAnonymous means no user is logged in.
	SessionAnonymous SessionState = "anonymous"
	// SessionChecking means verification is in flight and no cached identity is trusted.
	SessionChecking SessionState = "checking"
	// SessionAuthenticated means a user is logged in, possibly provisionally.
	SessionAuthenticated SessionState = "authenticated"
)

// AuthSnapshot is the locally cached identity: {"user":{...},"timestamp":<unix ms>}.
type AuthSnapshot struct {
	User      *User `json:"user"`      // Minimal user fields only.
	Timestamp int64 `json:"timestamp"` // When the snapshot was written, in Unix milliseconds.
}

// NewAuthSnapshot captures the minimal fields of user at now.
func NewAuthSnapshot(user *User, now time.Time) AuthSnapshot {
	return AuthSnapshot{
		User:      user.Minimal(),
		Timestamp: now.UnixMilli(),
	}
}

// Fresh reports whether the snapshot is usable as a provisional identity at now.
func (s *AuthSnapshot) Fresh(now time.Time, ttl time.Duration) bool {
	if s == nil || s.User == nil || s.User.ID == "" || s.Timestamp == 0 {
		return false
	}

	return now.Sub(time.UnixMilli(s.Timestamp)) < ttl
}

// Session is the snapshot of the session manager published to the presentation layer.
// Provisional is only ever true together with SessionAuthenticated, while the cached
// identity has not yet been confirmed by the backend.
type Session struct {
	State       SessionState `json:"state"`
	Provisional bool         `json:"provisional"`
	User        *User        `json:"user,omitempty"`
	IsLoading   bool         `json:"isLoading"`
	Error       string       `json:"error,omitempty"`
}

// UserID returns the current user's identifier, or "" when anonymous.
func (s Session) UserID() string {
	if s.State != SessionAuthenticated || s.User == nil {
		return ""
	}

	return s.User.ID
}
