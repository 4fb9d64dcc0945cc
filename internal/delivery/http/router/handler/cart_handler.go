package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	streamBuffer    = 16
	streamHeartbeat = 15 * time.Second
)

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,gte=1"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type codeRequest struct {
	Code string `json:"code" validate:"max=64"`
}

type buyNowRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// cartActionResponse is the result of a cart action together with the state it produced.
type cartActionResponse struct {
	entity.ActionResult

	Cart entity.CartState `json:"cart"`
}

// CartHandler exposes the cart engine.
type CartHandler struct {
	cart      usecase.CartUsecase
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:      cart,
		logger:    logger,
		heartbeat: streamHeartbeat,
	}
}

func (h *CartHandler) respond(c echo.Context, result entity.ActionResult) error {
	return response.Success(c, http.StatusOK, cartActionResponse{
		ActionResult: result,
		Cart:         h.cart.Snapshot(),
	})
}

// GetCart returns the current cart state without contacting the backend.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cart.Snapshot())
}

// FetchCart reloads the cart from the backend or the guest store.
func (h *CartHandler) FetchCart(c echo.Context) error {
	return h.respond(c, h.cart.FetchCart(c.Request().Context()))
}

// AddItem adds a product. The quantity defaults to 1.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return h.respond(c, h.cart.AddToCart(c.Request().Context(), req.ProductID, quantity))
}

// UpdateItem sets the quantity of a line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, h.cart.UpdateCart(c.Request().Context(), c.Param("productId"), *req.Quantity))
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.respond(c, h.cart.RemoveCartItem(c.Request().Context(), c.Param("productId")))
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	return h.respond(c, h.cart.ClearCart(c.Request().Context()))
}

// MergeGuestCart moves the guest cart into the authenticated cart.
func (h *CartHandler) MergeGuestCart(c echo.Context) error {
	return h.respond(c, h.cart.MergeGuestCart(c.Request().Context()))
}

// ApplyCoupon applies a coupon code.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	var req codeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, h.cart.ApplyCoupon(c.Request().Context(), req.Code))
}

// RemoveCoupon drops the applied coupon.
func (h *CartHandler) RemoveCoupon(c echo.Context) error {
	return h.respond(c, h.cart.RemoveCoupon(c.Request().Context()))
}

// ApplyReferral applies a referral code.
func (h *CartHandler) ApplyReferral(c echo.Context) error {
	var req codeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, h.cart.ApplyReferral(c.Request().Context(), req.Code))
}

// RemoveReferral drops the applied referral.
func (h *CartHandler) RemoveReferral(c echo.Context) error {
	return h.respond(c, h.cart.RemoveReferral(c.Request().Context()))
}

// SetBuyNow marks a product for immediate checkout.
func (h *CartHandler) SetBuyNow(c echo.Context) error {
	var req buyNowRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	h.cart.SetBuyNowProduct(req.ProductID)

	return h.respond(c, entity.Succeeded(""))
}

// ClearBuyNow clears the buy-now product.
func (h *CartHandler) ClearBuyNow(c echo.Context) error {
	h.cart.ClearBuyNow()

	return h.respond(c, entity.Succeeded(""))
}

// Stream sends the current cart state, then every published state, as server-sent events.
// When the client falls behind, the oldest queued state is dropped.
func (h *CartHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	states := make(chan entity.CartState, streamBuffer)
	unsubscribe := h.cart.Subscribe(func(state entity.CartState) {
		for {
			select {
			case states <- state:
				return
			default:
			}
			select {
			case <-states:
			default:
			}
		}
	})
	defer unsubscribe()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, h.cart.Snapshot()); err != nil {
		return nil
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Cart stream closed")

			return nil
		case state := <-states:
			if err := writeEvent(res, state); err != nil {
				logger.Debug("Cart stream write failed", slog.Any("error", err))

				return nil
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, state entity.CartState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: cart\ndata: %s\n\n", payload); err != nil {
		return err
	}
	res.Flush()

	return nil
}
