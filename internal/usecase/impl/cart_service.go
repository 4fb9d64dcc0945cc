// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

const (
	msgAdded           = "Item added to cart successfully"
	msgAddedGuest      = "Item added to cart (guest mode)"
	msgAddFailed       = "Failed to add item to cart"
	msgUpdated         = "Cart updated"
	msgUpdateFailed    = "Failed to update cart"
	msgRemoved         = "Item removed from cart"
	msgRemoveFailed    = "Failed to remove item"
	msgCleared         = "Cart cleared"
	msgClearFailed     = "Failed to clear cart"
	msgFetchFailed     = "Failed to load cart"
	msgCatalogFailed   = "Failed to load product details"
	msgMerged          = "Guest cart merged"
	msgCancelled       = "Request cancelled"
	msgProductRequired = "Product is required"
)

// cartSettings are the engine's timeouts and limits, read once from config.
type cartSettings struct {
	requestTimeout     time.Duration
	mergeItemTimeout   time.Duration
	catalogTimeout     time.Duration
	maxUpdateQuantity  int
	catalogLookupLimit int
	rules              pricingRules
}

func newCartSettings(cfg *config.Config) cartSettings {
	return cartSettings{
		requestTimeout:     cfg.Gateway.RequestTimeout,
		mergeItemTimeout:   cfg.Gateway.MergeItemTimeout,
		catalogTimeout:     cfg.Gateway.CatalogTimeout,
		maxUpdateQuantity:  cfg.Cart.MaxUpdateQuantity,
		catalogLookupLimit: cfg.Cart.CatalogLookupLimit,
		rules: pricingRules{
			freeShippingThreshold: cfg.Cart.FreeShippingThreshold,
			shippingFee:           cfg.Cart.ShippingFee,
		},
	}
}

// cartService implements the CartUsecase interface.
//
// Operations are serialized by opMu. Helpers called while it is held
// (fetch, fetchGuest, fetchRemote, addGuest) never take it again.
// State changes go through update, which replaces fields under mu and then
// hands a copy to subscribers in publish order.
type cartService struct {
	session     usecase.SessionProvider
	cartGateway service.CartGateway
	catalog     service.CatalogGateway
	guest       *guestStore
	settings    cartSettings
	logger      *slog.Logger

	opMu sync.Mutex

	publishMu sync.Mutex
	mu        sync.RWMutex
	state     entity.CartState

	subMu       sync.Mutex
	subscribers map[uint64]func(entity.CartState)
	nextSubID   uint64
}

// NewCartService is the constructor for cartService.
func NewCartService(
	session usecase.SessionProvider,
	cartGateway service.CartGateway,
	catalog service.CatalogGateway,
	store repository.LocalStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		session:     session,
		cartGateway: cartGateway,
		catalog:     catalog,
		guest:       newGuestStore(store, logger),
		settings:    newCartSettings(cfg),
		logger:      logger,
		state: entity.CartState{
			Cart:      entity.Cart{Items: []entity.CartItem{}},
			IsLoading: true,
		},
		subscribers: make(map[uint64]func(entity.CartState)),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// acquire takes the operation lock. An operation whose caller has already given
// up is not started; once started it no longer observes caller cancellation.
func (srv *cartService) acquire(ctx context.Context) (context.Context, bool) {
	srv.opMu.Lock()
	if ctx.Err() != nil {
		srv.opMu.Unlock()

		return ctx, false
	}

	return context.WithoutCancel(ctx), true
}

func (srv *cartService) authenticated() bool {
	return srv.session.CurrentUserID() != ""
}

// Snapshot returns a copy of the current state.
func (srv *cartService) Snapshot() entity.CartState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state.Clone()
}

// Subscribe registers fn for every published state.
func (srv *cartService) Subscribe(fn func(entity.CartState)) func() {
	srv.subMu.Lock()
	id := srv.nextSubID
	srv.nextSubID++
	srv.subscribers[id] = fn
	srv.subMu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.subMu.Lock()
			delete(srv.subscribers, id)
			srv.subMu.Unlock()
		})
	}
}

func (srv *cartService) update(fn func(*entity.CartState)) {
	srv.updateIf(func(st *entity.CartState) bool {
		fn(st)

		return true
	})
}

// updateIf applies fn and publishes the new state when fn reports a change.
func (srv *cartService) updateIf(fn func(*entity.CartState) bool) {
	srv.publishMu.Lock()
	defer srv.publishMu.Unlock()

	srv.mu.Lock()
	changed := fn(&srv.state)
	snapshot := srv.state.Clone()
	srv.mu.Unlock()

	if !changed {
		return
	}

	srv.subMu.Lock()
	subscribers := make([]func(entity.CartState), 0, len(srv.subscribers))
	for _, sub := range srv.subscribers {
		subscribers = append(subscribers, sub)
	}
	srv.subMu.Unlock()

	for _, notify := range subscribers {
		notify(snapshot.Clone())
	}
}

func (srv *cartService) beginLoading() {
	srv.update(func(st *entity.CartState) { st.IsLoading = true })
}

func (srv *cartService) beginUpdating() {
	srv.update(func(st *entity.CartState) { st.IsUpdating = true })
}

// settle clears the busy flags that are still set. Deferred by every operation.
func (srv *cartService) settle() {
	srv.updateIf(func(st *entity.CartState) bool {
		if !st.IsLoading && !st.IsUpdating {
			return false
		}
		st.IsLoading = false
		st.IsUpdating = false

		return true
	})
}

// resetCart empties the in-memory cart and every derived price field.
func resetCart(st *entity.CartState) {
	st.Cart = entity.Cart{Items: []entity.CartItem{}}
	st.Pricing = entity.Pricing{}
	st.CouponError = ""
}

// failureMessage maps a failed authenticated call to the message shown to the
// shopper. A 401 downgrades the session so the next operation takes the guest path.
func (srv *cartService) failureMessage(ctx context.Context, err error, op, fallback string) string {
	if domainerrors.IsUnauthorized(err) {
		srv.log(ctx).Info("Session rejected by backend", slog.String("operation", op))
		srv.session.Expire(ctx)

		return domainerrors.ErrSessionExpired.Message()
	}

	srv.log(ctx).Warn("Cart operation failed", slog.String("operation", op), slog.Any("error", err))

	return domainerrors.UserMessage(err, fallback)
}

func (srv *cartService) rejectRemote(ctx context.Context, err error, op, fallback string) entity.ActionResult {
	return entity.Failed(srv.failureMessage(ctx, err, op, fallback))
}

// LoadGuestCart shows the stored guest lines at once, before products are resolved.
func (srv *cartService) LoadGuestCart(ctx context.Context) {
	ctx, ok := srv.acquire(ctx)
	if !ok {
		return
	}
	defer srv.opMu.Unlock()

	if srv.authenticated() {
		return
	}

	guest := srv.guest.load(ctx)
	if len(guest.Items) == 0 {
		return
	}

	srv.update(func(st *entity.CartState) {
		st.Cart.Items = guestItems(guest, knownProducts(st.Cart.Items))
		st.Pricing = calculateTotals(st.Pricing, st.Cart.Items)
		st.IsLoading = false
		st.CartInitialized = true
	})
}

// FetchCart loads the cart from the backend, or resolves the guest cart for anonymous shoppers.
func (srv *cartService) FetchCart(ctx context.Context) entity.ActionResult {
	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	return srv.fetch(ctx)
}

func (srv *cartService) fetch(ctx context.Context) entity.ActionResult {
	srv.beginLoading()
	defer srv.settle()

	if !srv.authenticated() {
		return srv.fetchGuest(ctx)
	}

	res, _ := srv.fetchRemote(ctx)

	return res
}

// refetchRemote reloads the cart after a discount change. It reports false when
// the backend refused the session and the guest cart is on screen instead.
func (srv *cartService) refetchRemote(ctx context.Context) bool {
	srv.beginLoading()
	defer srv.settle()

	_, remote := srv.fetchRemote(ctx)

	return remote
}

func (srv *cartService) fetchGuest(ctx context.Context) entity.ActionResult {
	guest := srv.guest.load(ctx)
	if len(guest.Items) == 0 {
		srv.update(func(st *entity.CartState) {
			resetCart(st)
			st.CartInitialized = true
			st.IsLoading = false
			st.LastError = ""
		})

		return entity.Succeeded("")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, srv.settings.catalogTimeout)
	defer cancel()

	products, err := srv.catalog.ListProducts(lookupCtx, srv.settings.catalogLookupLimit)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve guest cart products", slog.Any("error", err))
		srv.update(func(st *entity.CartState) {
			st.CartInitialized = true
			st.IsLoading = false
			st.LastError = msgCatalogFailed
		})

		return entity.Failed(msgCatalogFailed)
	}

	res := resolveGuestCart(guest, products)
	if res.changed {
		srv.log(ctx).Info("Normalized guest cart",
			slog.Any("dropped", res.dropped),
			slog.Int("kept", len(res.kept.Items)),
		)
		_ = srv.guest.save(ctx, res.kept)
	}

	pricing := srv.settings.rules.reprice(entity.Pricing{}, res.items)
	srv.update(func(st *entity.CartState) {
		st.Cart.Items = res.items
		st.Pricing = pricing
		st.CartInitialized = true
		st.IsLoading = false
		st.LastError = ""
	})

	return entity.Succeeded("")
}

// fetchRemote loads the backend cart. The bool is false when a 401 put the guest cart on screen.
func (srv *cartService) fetchRemote(ctx context.Context) (entity.ActionResult, bool) {
	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	remote, err := srv.cartGateway.FetchCart(reqCtx)
	switch {
	case err == nil:
		srv.adopt(remote)

		return entity.Succeeded(""), true

	case domainerrors.IsNotFound(err):
		srv.update(func(st *entity.CartState) {
			resetCart(st)
			st.CartInitialized = true
			st.IsLoading = false
			st.LastError = ""
		})

		return entity.Succeeded(""), true

	case domainerrors.IsUnauthorized(err):
		srv.log(ctx).Info("Cart fetch unauthorized, showing guest cart")

		return srv.fetchGuest(ctx), false

	default:
		msg := domainerrors.UserMessage(err, msgFetchFailed)
		srv.log(ctx).Warn("Failed to fetch cart", slog.Any("error", err))
		srv.update(func(st *entity.CartState) {
			st.CartInitialized = true
			st.IsLoading = false
			st.LastError = msg
		})

		return entity.Failed(msg), true
	}
}

// adopt replaces the cart with the backend's, trusting its pricing verbatim.
func (srv *cartService) adopt(remote *entity.RemoteCart) {
	items := normalizeRemoteItems(remote.Items)
	pricing := pricingFromRemote(remote, items)

	srv.update(func(st *entity.CartState) {
		st.Cart.Items = items
		st.Pricing = pricing
		st.CartInitialized = true
		st.IsLoading = false
		st.LastError = ""
	})
}

func normalizeRemoteItems(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		item.ProductID = item.ID()
		out = append(out, item)
	}

	return out
}

// AddToCart adds quantity units of productID. Repeated adds accumulate without a cap.
func (srv *cartService) AddToCart(ctx context.Context, productID string, quantity int) entity.ActionResult {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entity.Failed(msgProductRequired)
	}
	if quantity < 1 {
		return entity.Failed(domainerrors.ErrInvalidQuantity.Message())
	}

	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	srv.beginUpdating()
	defer srv.settle()

	if !srv.authenticated() {
		srv.addGuest(ctx, productID, quantity)

		return entity.Succeeded(msgAdded)
	}

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	remote, err := srv.cartGateway.AddItem(reqCtx, productID, quantity)
	if err != nil {
		if domainerrors.IsUnauthorized(err) {
			srv.log(ctx).Info("Session rejected while adding to cart, continuing as guest",
				slog.String("product_id", productID))
			srv.session.Expire(ctx)
			srv.addGuest(ctx, productID, quantity)

			return entity.Succeeded(msgAddedGuest)
		}

		srv.log(ctx).Warn("Failed to add item to cart", slog.String("product_id", productID), slog.Any("error", err))

		return entity.Failed(domainerrors.UserMessage(err, msgAddFailed))
	}

	items := normalizeRemoteItems(remote.Items)
	srv.update(func(st *entity.CartState) {
		pricing := st.Pricing
		if remote.CouponBelowMinimum() {
			pricing = pricing.WithoutCoupon()
		}
		pricing.ItemsPrice = remote.ItemsPrice
		pricing.ShippingPrice = remote.ShippingPrice

		st.Cart.Items = items
		st.Pricing = calculateTotals(pricing, items)
		st.IsUpdating = false
	})

	return entity.Succeeded(msgAdded)
}

// addGuest accumulates the line in the guest store and shows the guest cart.
func (srv *cartService) addGuest(ctx context.Context, productID string, quantity int) {
	guest := srv.guest.load(ctx)
	if i := guest.Find(productID); i >= 0 {
		guest.Items[i].Quantity += quantity
	} else {
		guest.Items = append(guest.Items, entity.GuestLine{ProductID: productID, Quantity: quantity})
	}

	_ = srv.guest.save(ctx, guest)
	srv.showGuest(guest)
}

// showGuest publishes the guest lines, priced from products already resolved.
// Guests never carry discounts.
func (srv *cartService) showGuest(guest entity.GuestCart) {
	srv.update(func(st *entity.CartState) {
		items := guestItems(guest, knownProducts(st.Cart.Items))
		st.Cart.Items = items
		st.Pricing = srv.settings.rules.reprice(entity.Pricing{}, items)
		st.CartInitialized = true
	})
}

// MergeGuestCart adds every guest line to the authenticated cart, one at a time
// and in order, then clears the guest store and fetches the merged cart.
func (srv *cartService) MergeGuestCart(ctx context.Context) entity.ActionResult {
	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	if !srv.authenticated() {
		return entity.Failed(domainerrors.ErrLoginRequired.Message())
	}

	guest := srv.guest.load(ctx)
	if len(guest.Items) == 0 {
		return srv.fetch(ctx)
	}

	srv.beginUpdating()
	defer srv.settle()

	var failed int
	for _, line := range guest.Items {
		if err := srv.mergeLine(ctx, line); err != nil {
			failed++
			srv.log(ctx).Warn("Failed to merge guest cart line",
				slog.String("product_id", line.ProductID),
				slog.Int("quantity", line.Quantity),
				slog.Any("error", err),
			)
		}
	}

	_ = srv.guest.clear(ctx)

	srv.log(ctx).Info("Merged guest cart",
		slog.Int("lines", len(guest.Items)),
		slog.Int("failed", failed),
	)

	result := srv.fetch(ctx)
	if !result.Success {
		return result
	}
	if failed > 0 {
		return entity.Succeeded(fmt.Sprintf("%d of %d items could not be added to your cart", failed, len(guest.Items)))
	}

	return entity.Succeeded(msgMerged)
}

func (srv *cartService) mergeLine(ctx context.Context, line entity.GuestLine) error {
	lineCtx, cancel := context.WithTimeout(ctx, srv.settings.mergeItemTimeout)
	defer cancel()

	_, err := srv.cartGateway.AddItem(lineCtx, line.ProductID, max(line.Quantity, 1))

	return err
}

// UpdateCart sets the quantity of productID, clamped to [1, maxUpdateQuantity].
func (srv *cartService) UpdateCart(ctx context.Context, productID string, quantity int) entity.ActionResult {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entity.Failed(msgProductRequired)
	}
	quantity = clampQuantity(quantity, 1, srv.settings.maxUpdateQuantity)

	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	srv.beginUpdating()
	defer srv.settle()

	if !srv.authenticated() {
		return srv.updateGuest(ctx, productID, quantity)
	}

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	if _, err := srv.cartGateway.UpdateItem(reqCtx, productID, quantity); err != nil {
		return srv.rejectRemote(ctx, err, "update", msgUpdateFailed)
	}

	srv.update(func(st *entity.CartState) {
		items := st.Cart.Items
		for i := range items {
			if items[i].ID() == productID {
				items[i].Quantity = quantity
			}
		}
		st.Pricing = srv.settings.rules.reprice(st.Pricing, items)
		st.IsUpdating = false
	})

	return entity.Succeeded(msgUpdated)
}

// updateGuest patches the stored line, shows it at once and then re-resolves the guest cart.
func (srv *cartService) updateGuest(ctx context.Context, productID string, quantity int) entity.ActionResult {
	guest := srv.guest.load(ctx)
	i := guest.Find(productID)
	if i < 0 {
		return entity.Failed(domainerrors.ErrCartItemNotFound.Message())
	}

	guest.Items[i].Quantity = quantity
	_ = srv.guest.save(ctx, guest)
	srv.showGuest(guest)

	srv.fetch(ctx)

	return entity.Succeeded(msgUpdated)
}

// RemoveCartItem removes the line for productID. Emptying the cart drops any discount.
func (srv *cartService) RemoveCartItem(ctx context.Context, productID string) entity.ActionResult {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entity.Failed(msgProductRequired)
	}

	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	srv.beginUpdating()
	defer srv.settle()

	if !srv.authenticated() {
		guest := srv.guest.load(ctx)
		if i := guest.Find(productID); i >= 0 {
			guest.Items = append(guest.Items[:i], guest.Items[i+1:]...)
		}
		_ = srv.guest.save(ctx, guest)
		srv.showGuest(guest)

		return entity.Succeeded(msgRemoved)
	}

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	if _, err := srv.cartGateway.RemoveItem(reqCtx, productID); err != nil {
		return srv.rejectRemote(ctx, err, "remove", msgRemoveFailed)
	}

	srv.update(func(st *entity.CartState) {
		items := make([]entity.CartItem, 0, len(st.Cart.Items))
		for _, item := range st.Cart.Items {
			if item.ID() != productID {
				items = append(items, item)
			}
		}

		pricing := st.Pricing
		if len(items) == 0 {
			pricing = pricing.WithoutCoupon().WithoutReferral()
		}

		st.Cart.Items = items
		st.Pricing = srv.settings.rules.reprice(pricing, items)
		st.IsUpdating = false
	})

	return entity.Succeeded(msgRemoved)
}

// ClearCart empties the cart everywhere. Local clearing happens even when the backend call fails.
func (srv *cartService) ClearCart(ctx context.Context) entity.ActionResult {
	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	srv.beginUpdating()
	defer srv.settle()

	result := entity.Succeeded(msgCleared)
	if srv.authenticated() {
		reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
		err := srv.cartGateway.ClearCart(reqCtx)
		cancel()
		if err != nil {
			result = srv.rejectRemote(ctx, err, "clear", msgClearFailed)
		}
	}

	_ = srv.guest.clear(ctx)
	srv.update(func(st *entity.CartState) {
		resetCart(st)
		st.IsUpdating = false
	})

	return result
}

// ClearCartOnLogout empties the in-memory cart without touching the stored guest cart.
func (srv *cartService) ClearCartOnLogout(ctx context.Context) {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.update(func(st *entity.CartState) {
		resetCart(st)
		st.LastError = ""
	})
	srv.log(ctx).Debug("Cart reset on logout")
}

// CalculateTotals re-derives totalItems and totalPrice from the current state.
func (srv *cartService) CalculateTotals() {
	srv.update(func(st *entity.CartState) {
		st.Pricing = calculateTotals(st.Pricing, st.Cart.Items)
	})
}

// SetBuyNowProduct marks productID for an immediate purchase. It is never persisted.
func (srv *cartService) SetBuyNowProduct(productID string) {
	srv.update(func(st *entity.CartState) { st.BuyNowProductID = productID })
}

// ClearBuyNow forgets the buy-now product.
func (srv *cartService) ClearBuyNow() {
	srv.update(func(st *entity.CartState) { st.BuyNowProductID = "" })
}
