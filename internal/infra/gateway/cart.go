package gateway

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type cartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// cartGateway implements service.CartGateway over the backend's /cart routes.
type cartGateway struct {
	client *Client
}

// NewCartGateway is the constructor for cartGateway.
func NewCartGateway(client *Client) service.CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) FetchCart(ctx context.Context) (*entity.RemoteCart, error) {
	return g.cart(ctx, request{op: "fetch_cart", method: http.MethodGet, path: "/cart"})
}

func (g *cartGateway) AddItem(ctx context.Context, productID string, quantity int) (*entity.RemoteCart, error) {
	return g.cart(ctx, request{
		op:     "add_item",
		method: http.MethodPost,
		path:   "/cart",
		body:   cartLine{ProductID: productID, Quantity: quantity},
	})
}

func (g *cartGateway) UpdateItem(ctx context.Context, productID string, quantity int) (*entity.RemoteCart, error) {
	return g.cart(ctx, request{
		op:     "update_item",
		method: http.MethodPut,
		path:   "/cart",
		body:   cartLine{ProductID: productID, Quantity: quantity},
	})
}

func (g *cartGateway) RemoveItem(ctx context.Context, productID string) (*entity.RemoteCart, error) {
	return g.cart(ctx, request{
		op:     "remove_item",
		method: http.MethodDelete,
		path:   "/cart/remove/" + url.PathEscape(productID),
	})
}

func (g *cartGateway) ClearCart(ctx context.Context) error {
	return g.client.call(ctx, request{op: "clear_cart", method: http.MethodDelete, path: "/cart/clear-cart"}, nil)
}

func (g *cartGateway) ApplyCoupon(ctx context.Context, code string) (*entity.DiscountResult, error) {
	return g.discount(ctx, request{
		op:     "apply_coupon",
		method: http.MethodPost,
		path:   "/cart/apply-coupon",
		body:   map[string]string{"couponCode": code},
	})
}

func (g *cartGateway) RemoveCoupon(ctx context.Context) (*entity.RemoteCart, error) {
	return g.cart(ctx, request{op: "remove_coupon", method: http.MethodPost, path: "/cart/remove-coupon"})
}

func (g *cartGateway) ApplyReferral(ctx context.Context, code string) (*entity.DiscountResult, error) {
	return g.discount(ctx, request{
		op:     "apply_referral",
		method: http.MethodPost,
		path:   "/cart/apply-referral",
		body:   map[string]string{"referralCode": code},
	})
}

func (g *cartGateway) RemoveReferral(ctx context.Context) error {
	return g.client.call(ctx, request{op: "remove_referral", method: http.MethodPost, path: "/cart/remove-referral"}, nil)
}

// cart runs r and decodes a cart from its data. An empty data member yields an empty cart.
func (g *cartGateway) cart(ctx context.Context, r request) (*entity.RemoteCart, error) {
	var remote entity.RemoteCart
	if err := g.client.call(ctx, r, &remote); err != nil {
		return nil, err
	}
	if remote.Items == nil {
		remote.Items = []entity.CartItem{}
	}

	return &remote, nil
}

// discount runs r and returns the granted discount with the backend's message.
func (g *cartGateway) discount(ctx context.Context, r request) (*entity.DiscountResult, error) {
	var result entity.DiscountResult
	message, err := g.client.callMessage(ctx, r, &result)
	if err != nil {
		return nil, err
	}
	if result.Message == "" {
		result.Message = message
	}

	return &result, nil
}
