package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// guestStore reads and writes the guest cart key. Once the local store has failed
// a write, the cart lives in memory for the rest of the process so the shopper
// does not lose lines they were just shown.
type guestStore struct {
	store  repository.LocalStore
	logger *slog.Logger

	mu       sync.Mutex
	fallback *entity.GuestCart
}

func newGuestStore(store repository.LocalStore, logger *slog.Logger) *guestStore {
	return &guestStore{store: store, logger: logger}
}

func (g *guestStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// load returns the guest cart, or an empty one when nothing usable is stored.
func (g *guestStore) load(ctx context.Context) entity.GuestCart {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fallback != nil {
		return cloneGuestCart(*g.fallback)
	}

	raw, found, err := g.store.Get(ctx, repository.KeyGuestCart)
	if err != nil {
		g.log(ctx).Warn("Failed to read guest cart", slog.Any("error", err))

		return entity.GuestCart{Items: []entity.GuestLine{}}
	}
	if !found {
		return entity.GuestCart{Items: []entity.GuestLine{}}
	}

	cart, err := decodeGuestCart(raw)
	if err != nil {
		g.log(ctx).Warn("Discarding unreadable guest cart", slog.Any("error", err))

		return entity.GuestCart{Items: []entity.GuestLine{}}
	}

	return cart
}

// save persists cart. On failure the cart is kept in memory and the StorageError returned.
func (g *guestStore) save(ctx context.Context, cart entity.GuestCart) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cart.Items == nil {
		cart.Items = []entity.GuestLine{}
	}

	payload, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode guest cart")
	}

	if err := g.store.Set(ctx, repository.KeyGuestCart, string(payload)); err != nil {
		g.log(ctx).Warn("Guest cart not persisted, keeping it in memory", slog.Any("error", err))
		kept := cloneGuestCart(cart)
		g.fallback = &kept

		return err
	}

	g.fallback = nil

	return nil
}

// clear removes the guest cart. On failure an empty in-memory cart shadows whatever is still stored.
func (g *guestStore) clear(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Remove(ctx, repository.KeyGuestCart); err != nil {
		g.log(ctx).Warn("Failed to remove guest cart", slog.Any("error", err))
		g.fallback = &entity.GuestCart{Items: []entity.GuestLine{}}

		return err
	}

	g.fallback = nil

	return nil
}

// degraded reports whether the guest cart currently lives only in memory.
func (g *guestStore) degraded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.fallback != nil
}

// decodeGuestCart parses a stored guest cart and drops lines without a product id.
func decodeGuestCart(raw string) (entity.GuestCart, error) {
	var cart entity.GuestCart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return entity.GuestCart{}, errors.Wrap(err, "invalid guest cart")
	}

	cart.Items = slices.DeleteFunc(cart.Items, func(line entity.GuestLine) bool {
		return line.ProductID == ""
	})
	if cart.Items == nil {
		cart.Items = []entity.GuestLine{}
	}

	return cart, nil
}

func cloneGuestCart(cart entity.GuestCart) entity.GuestCart {
	items := make([]entity.GuestLine, len(cart.Items))
	copy(items, cart.Items)

	return entity.GuestCart{Items: items}
}

// guestResolution is the outcome of checking guest lines against the catalog.
type guestResolution struct {
	items   []entity.CartItem // Lines to show, each with its product.
	kept    entity.GuestCart  // What should be persisted.
	dropped []string          // Product ids removed from the cart.
	changed bool              // Whether kept differs from the input.
}

// resolveGuestCart drops lines whose product is unknown, deleted, inactive or
// out of stock, and clamps quantities down to the available stock.
func resolveGuestCart(guest entity.GuestCart, products []entity.ProductSnapshot) guestResolution {
	byID := make(map[string]*entity.ProductSnapshot, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	res := guestResolution{
		items: make([]entity.CartItem, 0, len(guest.Items)),
		kept:  entity.GuestCart{Items: make([]entity.GuestLine, 0, len(guest.Items))},
	}

	for _, line := range guest.Items {
		product, ok := byID[line.ProductID]
		if !ok || !product.Purchasable() {
			res.dropped = append(res.dropped, line.ProductID)
			res.changed = true

			continue
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
			res.changed = true
		}
		if product.Stock != nil && quantity > *product.Stock {
			if *product.Stock <= 0 {
				res.dropped = append(res.dropped, line.ProductID)
				res.changed = true

				continue
			}
			quantity = *product.Stock
			res.changed = true
		}

		res.items = append(res.items, entity.CartItem{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
		})
		res.kept.Items = append(res.kept.Items, entity.GuestLine{ProductID: product.ID, Quantity: quantity})
	}

	return res
}

// guestItems turns guest lines into cart items, attaching products already known from known.
func guestItems(guest entity.GuestCart, known map[string]*entity.ProductSnapshot) []entity.CartItem {
	items := make([]entity.CartItem, 0, len(guest.Items))
	for _, line := range guest.Items {
		items = append(items, entity.CartItem{
			ProductID: line.ProductID,
			Product:   known[line.ProductID],
			Quantity:  line.Quantity,
		})
	}

	return items
}

func knownProducts(items []entity.CartItem) map[string]*entity.ProductSnapshot {
	known := make(map[string]*entity.ProductSnapshot, len(items))
	for _, item := range items {
		if item.Product != nil {
			known[item.ID()] = item.Product
		}
	}

	return known
}
