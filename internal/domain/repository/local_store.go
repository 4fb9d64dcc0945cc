// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Keys under which the engine and the session manager persist their state.
const (
	KeyGuestCart = "guest_cart"
	KeyAuthState = "auth_state"
)

// LocalStore is the persistent key-value store on the shopper's device.
// Every failure is reported as a *domainerrors.StorageError. Callers treat
// persistence as best effort and carry on in memory when it fails.
type LocalStore interface {
	// Get returns the value stored under key. found is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
