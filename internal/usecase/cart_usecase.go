// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase is the cart engine as seen by the presentation layer and the session manager.
// Actions never return an error: every failure is folded into the ActionResult and,
// where it concerns the shopper, into the published state.
type CartUsecase interface {
	// LoadGuestCart shows the raw guest lines immediately, before any lookup, for anonymous shoppers.
	LoadGuestCart(ctx context.Context)

	FetchCart(ctx context.Context) entity.ActionResult
	AddToCart(ctx context.Context, productID string, quantity int) entity.ActionResult
	UpdateCart(ctx context.Context, productID string, quantity int) entity.ActionResult
	RemoveCartItem(ctx context.Context, productID string) entity.ActionResult
	ClearCart(ctx context.Context) entity.ActionResult

	// MergeGuestCart moves the guest cart into the authenticated cart. Called once after login.
	MergeGuestCart(ctx context.Context) entity.ActionResult

	// ClearCartOnLogout empties the in-memory cart and keeps the persisted guest cart.
	ClearCartOnLogout(ctx context.Context)

	ApplyCoupon(ctx context.Context, code string) entity.ActionResult
	RemoveCoupon(ctx context.Context) entity.ActionResult
	ApplyReferral(ctx context.Context, code string) entity.ActionResult
	RemoveReferral(ctx context.Context) entity.ActionResult

	// CalculateTotals re-derives totalItems and totalPrice from the current state.
	CalculateTotals()

	SetBuyNowProduct(productID string)
	ClearBuyNow()

	// Snapshot returns a copy of the current state.
	Snapshot() entity.CartState

	// Subscribe registers fn to receive every published state. The returned func unregisters it.
	// fn runs on the publishing goroutine and must not block.
	Subscribe(fn func(entity.CartState)) (unsubscribe func())
}
