// Package service defines contracts for collaborators that live outside the process.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartGateway is the remote backend's cart API for the logged-in user.
// Every method returns a *domainerrors.GatewayError on failure. Deadlines come from ctx.
type CartGateway interface {
	// FetchCart returns the user's cart. A missing cart is reported as a 404 GatewayError.
	FetchCart(ctx context.Context) (*entity.RemoteCart, error)

	// AddItem adds quantity units of productID and returns the updated cart.
	AddItem(ctx context.Context, productID string, quantity int) (*entity.RemoteCart, error)

	// UpdateItem sets the quantity of productID.
	UpdateItem(ctx context.Context, productID string, quantity int) (*entity.RemoteCart, error)

	// RemoveItem removes the line for productID.
	RemoveItem(ctx context.Context, productID string) (*entity.RemoteCart, error)

	// ClearCart removes every line.
	ClearCart(ctx context.Context) error

	ApplyCoupon(ctx context.Context, code string) (*entity.DiscountResult, error)
	RemoveCoupon(ctx context.Context) (*entity.RemoteCart, error)
	ApplyReferral(ctx context.Context, code string) (*entity.DiscountResult, error)
	RemoveReferral(ctx context.Context) error
}
