package service

import "time"

// TokenInspector reads an access token without verifying its signature.
// The backend is the only party that can verify it; the client only needs
// to know when it is about to expire.
type TokenInspector interface {
	// ExpiresAt returns the token's expiry. ok is false when the token carries none
	// or cannot be parsed.
	ExpiresAt(token string) (expiry time.Time, ok bool)
}
