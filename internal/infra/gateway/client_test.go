package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, mutate ...func(*config.GatewayConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.GatewayConfig{
		BaseURL:       server.URL + "/api",
		ClientTimeout: 2 * time.Second,
		RetryBackoff:  time.Millisecond,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}

	client, err := NewClient(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_DecodesEnvelopeAndSendsRequestID(t *testing.T) {
	var gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/profile", r.URL.Path)
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "u1", "name": "Asha"},
		})
	}))

	ctx := deliverycontext.WithRequestScope(context.Background(), "req-123", slog.Default())
	user, err := NewAuthGateway(client).Profile(ctx)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "req-123", gotRequestID)
}

func TestClient_ErrorResponseBecomesGatewayError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Only 2 left in stock"})
	}))

	_, err := NewCartGateway(client).AddItem(context.Background(), "p1", 3)

	var gwErr *domainerrors.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
	assert.Equal(t, "Only 2 left in stock", gwErr.Message())
	assert.Equal(t, "add_item", gwErr.Operation)
	assert.False(t, domainerrors.IsTransient(err))
}

func TestClient_ErrorFieldUsedWhenMessageMissing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error": "Please verify your email",
			"data":  map[string]any{"_id": "u7", "email": "new@example.com"},
		})
	}))

	_, err := NewAuthGateway(client).Login(context.Background(), loginCreds())

	var gwErr *domainerrors.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusForbidden, gwErr.StatusCode)
	assert.Equal(t, "Please verify your email", gwErr.Message())
	assert.JSONEq(t, `{"_id":"u7","email":"new@example.com"}`, string(gwErr.Payload))
}

func TestClient_SuccessFalseIsRejection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Coupon expired"})
	}))

	_, err := NewCartGateway(client).ApplyCoupon(context.Background(), "OLD")

	require.Error(t, err)
	assert.Equal(t, "Coupon expired", domainerrors.UserMessage(err, ""))
	assert.False(t, domainerrors.IsTransient(err))
}

func TestClient_RetriesTransientReadOnce(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "busy"})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"items": []any{}}})
	}))

	remote, err := NewCartGateway(client).FetchCart(context.Background())

	require.NoError(t, err)
	assert.Empty(t, remote.Items)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadGateway, map[string]any{"message": "upstream down"})
	}))

	err := NewCartGateway(client).ClearCart(context.Background())

	require.Error(t, err)
	assert.True(t, domainerrors.IsTransient(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Cart not found"})
	}))

	_, err := NewCartGateway(client).FetchCart(context.Background())

	assert.True(t, domainerrors.IsNotFound(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RefreshesSessionAndReplaysOnce(t *testing.T) {
	var refreshes, cartCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		refreshes.Add(1)
		http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, Value: "fresh", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"accessToken": "fresh"}})
	})
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		cartCalls.Add(1)
		if cookie, err := r.Cookie(accessTokenCookie); err != nil || cookie.Value != "fresh" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "jwt expired"})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"items": []any{}, "totalPrice": 0},
		})
	})
	client := newTestClient(t, mux)

	_, err := NewCartGateway(client).FetchCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, int32(2), cartCalls.Load())
}

func TestClient_FailedRefreshReturnsOriginalError(t *testing.T) {
	var cartCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "refresh token expired"})
	})
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, _ *http.Request) {
		cartCalls.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "jwt expired"})
	})
	client := newTestClient(t, mux)

	_, err := NewCartGateway(client).AddItem(context.Background(), "p1", 1)

	require.True(t, domainerrors.IsUnauthorized(err))
	assert.Equal(t, "jwt expired", domainerrors.UserMessage(err, ""))
	assert.Equal(t, int32(1), cartCalls.Load())
}

func TestClient_ProactiveRefreshBeforeExpiry(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
		refreshes.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"accessToken": "fresh"}})
	})
	mux.HandleFunc("/api/users/logout", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	client := newTestClient(t, mux)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return now }
	tokens := mockService.NewMockTokenInspector(t)
	tokens.EXPECT().ExpiresAt("stale").Return(now.Add(10*time.Second), true).Once()
	client.tokens = tokens
	client.httpClient.Jar.SetCookies(client.baseURL, []*http.Cookie{{Name: accessTokenCookie, Value: "stale"}})

	err := NewAuthGateway(client).Logout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshes.Load())
}

func TestClient_BreakerFailsFastWhenOpen(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
	}), func(cfg *config.GatewayConfig) {
		cfg.Breaker = config.BreakerConfig{Enabled: true, ConsecutiveFailures: 2, OpenTimeout: time.Minute}
	})
	gateway := NewCartGateway(client)

	for range 2 {
		require.Error(t, gateway.ClearCart(context.Background()))
	}

	err := gateway.ClearCart(context.Background())

	require.Error(t, err)
	assert.True(t, domainerrors.IsTransient(err))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_BreakerIgnoresClientErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "bad"})
	}), func(cfg *config.GatewayConfig) {
		cfg.Breaker = config.BreakerConfig{Enabled: true, ConsecutiveFailures: 1, OpenTimeout: time.Minute}
	})
	gateway := NewCartGateway(client)

	for range 3 {
		require.Error(t, gateway.ClearCart(context.Background()))
	}

	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_UnreachableBackendIsTransient(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(config.GatewayConfig{
		BaseURL:       baseURL,
		ClientTimeout: time.Second,
		RetryBackoff:  time.Millisecond,
	}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = NewAuthGateway(client).SendOTP(context.Background(), "9999999999")

	require.Error(t, err)
	assert.True(t, domainerrors.IsTransient(err))
}
