package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake backend saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// recorder answers every request with respond and keeps a log of what it received.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec.mu.Lock()
	rec.requests = append(rec.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})
	rec.mu.Unlock()

	rec.respond(w, r)
}

func (rec *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.requests)

	return rec.requests[len(rec.requests)-1]
}

func respondData(data any) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
	}
}

const remoteCartJSON = `{
	"items": [{"product": {"_id": "p1", "title": "Mango Pickle", "price": 120, "isActive": true}, "quantity": 2}],
	"itemsPrice": 240,
	"shippingPrice": 50,
	"totalPrice": 265,
	"couponCode": "SAVE25",
	"discount": 25
}`

func TestCartGateway_FetchCart(t *testing.T) {
	rec := &recorder{respond: respondData(json.RawMessage(remoteCartJSON))}
	gateway := NewCartGateway(newTestClient(t, rec))

	remote, err := gateway.FetchCart(context.Background())

	require.NoError(t, err)
	require.Len(t, remote.Items, 1)
	assert.Equal(t, "p1", remote.Items[0].ID())
	assert.Equal(t, 2, remote.Items[0].Quantity)
	assert.InDelta(t, 265, remote.TotalPrice, 0.0001)
	assert.True(t, remote.HasCoupon())
	assert.Equal(t, recordedRequest{Method: http.MethodGet, Path: "/api/cart"}, rec.last(t))
}

func TestCartGateway_EmptyDataYieldsEmptyCart(t *testing.T) {
	rec := &recorder{respond: respondData(nil)}
	gateway := NewCartGateway(newTestClient(t, rec))

	remote, err := gateway.RemoveCoupon(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, remote.Items)
	assert.Empty(t, remote.Items)
	assert.Equal(t, http.MethodPost, rec.last(t).Method)
	assert.Equal(t, "/api/cart/remove-coupon", rec.last(t).Path)
}

func TestCartGateway_LineMutations(t *testing.T) {
	rec := &recorder{respond: respondData(json.RawMessage(remoteCartJSON))}
	gateway := NewCartGateway(newTestClient(t, rec))
	ctx := context.Background()

	_, err := gateway.AddItem(ctx, "p1", 2)
	require.NoError(t, err)
	got := rec.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/cart", got.Path)
	assert.JSONEq(t, `{"productId":"p1","quantity":2}`, got.Body)

	_, err = gateway.UpdateItem(ctx, "p1", 4)
	require.NoError(t, err)
	got = rec.last(t)
	assert.Equal(t, http.MethodPut, got.Method)
	assert.JSONEq(t, `{"productId":"p1","quantity":4}`, got.Body)

	_, err = gateway.RemoveItem(ctx, "p1")
	require.NoError(t, err)
	got = rec.last(t)
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/cart/remove/p1", got.Path)

	require.NoError(t, gateway.ClearCart(ctx))
	got = rec.last(t)
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/cart/clear-cart", got.Path)
}

func TestCartGateway_ApplyCoupon(t *testing.T) {
	rec := &recorder{respond: func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Coupon applied",
			"data":    map[string]any{"discount": 40},
		})
	}}
	gateway := NewCartGateway(newTestClient(t, rec))

	result, err := gateway.ApplyCoupon(context.Background(), "FEST40")

	require.NoError(t, err)
	assert.InDelta(t, 40, result.Discount, 0.0001)
	assert.Equal(t, "Coupon applied", result.Message)
	assert.Equal(t, "/api/cart/apply-coupon", rec.last(t).Path)
	assert.JSONEq(t, `{"couponCode":"FEST40"}`, rec.last(t).Body)
}

func TestCartGateway_Referral(t *testing.T) {
	rec := &recorder{respond: respondData(map[string]any{"discount": 15, "message": "Referral bonus"})}
	gateway := NewCartGateway(newTestClient(t, rec))
	ctx := context.Background()

	result, err := gateway.ApplyReferral(ctx, "FRIEND1")

	require.NoError(t, err)
	assert.InDelta(t, 15, result.Discount, 0.0001)
	assert.Equal(t, "Referral bonus", result.Message)
	assert.JSONEq(t, `{"referralCode":"FRIEND1"}`, rec.last(t).Body)

	require.NoError(t, gateway.RemoveReferral(ctx))
	assert.Equal(t, "/api/cart/remove-referral", rec.last(t).Path)
}
