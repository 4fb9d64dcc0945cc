// Package gateway is the HTTP client for the remote commerce backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/singleflight"
)

const (
	pathRefreshToken  = "/users/refresh-token"
	accessTokenCookie = "accessToken"
	refreshSkew       = 30 * time.Second
	maxResponseBody   = 4 << 20
	userAgent         = "storefront/1.0"
)

// request describes one backend call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// envelope is the backend's response shape: {success, message, data}.
// Some error responses carry their text in "error" instead of "message".
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) text() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Error
}

// Client sends requests to the backend and keeps its session cookies.
//
// A 401 on any request other than the refresh call triggers one refresh and a
// single replay. Concurrent refreshes are coalesced. GET requests that fail
// transiently are retried once after the configured backoff.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker[*envelope]
	tokens       service.TokenInspector
	retryBackoff time.Duration
	logger       *slog.Logger
	now          func() time.Time

	refresh singleflight.Group
}

// NewClient builds a backend client from cfg. tokens may be nil, which disables proactive refresh.
func NewClient(cfg config.GatewayConfig, tokens service.TokenInspector, logger *slog.Logger) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid gateway base url %q", cfg.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   cfg.ClientTimeout,
			Transport: newRoundTripper(cfg.ChromeTLS, cfg.ClientTimeout),
			Jar:       jar,
		},
		tokens:       tokens,
		retryBackoff: cfg.RetryBackoff,
		logger:       logger,
		now:          time.Now,
	}

	if cfg.Breaker.Enabled {
		client.breaker = gobreaker.NewCircuitBreaker[*envelope](gobreaker.Settings{
			Name:    "gateway",
			Timeout: cfg.Breaker.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.Breaker.ConsecutiveFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || !domainerrors.IsTransient(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Gateway circuit breaker state changed",
					slog.String("name", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}

	return client, nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// call runs r and decodes the data member of the response into out, which may be nil.
func (c *Client) call(ctx context.Context, r request, out any) error {
	_, err := c.callMessage(ctx, r, out)

	return err
}

// callMessage is call that also returns the envelope's message.
func (c *Client) callMessage(ctx context.Context, r request, out any) (string, error) {
	c.refreshIfExpiring(ctx, r)

	env, err := c.attempt(ctx, r)
	if err != nil && r.method == http.MethodGet && domainerrors.IsTransient(err) {
		c.log(ctx).Warn("Gateway read failed, retrying once",
			slog.String("operation", r.op),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return "", domainerrors.NewTransientGatewayError(r.op, ctx.Err())
		case <-time.After(c.retryBackoff):
		}

		env, err = c.attempt(ctx, r)
	}
	if err != nil {
		return "", err
	}

	if err := decodeData(r.op, env.Data, out); err != nil {
		return "", err
	}

	return env.Message, nil
}

// attempt sends r once, refreshing the session and replaying once on a 401.
func (c *Client) attempt(ctx context.Context, r request) (*envelope, error) {
	env, err := c.send(ctx, r)
	if err == nil || r.path == pathRefreshToken || !domainerrors.IsUnauthorized(err) {
		return env, err
	}

	if refreshErr := c.refreshSession(ctx); refreshErr != nil {
		return nil, err
	}

	return c.send(ctx, r)
}

// send passes r through the circuit breaker when one is configured.
func (c *Client) send(ctx context.Context, r request) (*envelope, error) {
	if c.breaker == nil {
		return c.roundTrip(ctx, r)
	}

	env, err := c.breaker.Execute(func() (*envelope, error) {
		return c.roundTrip(ctx, r)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, domainerrors.NewTransientGatewayError(r.op, err)
	}

	return env, err
}

func (c *Client) roundTrip(ctx context.Context, r request) (*envelope, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewTransientGatewayError(r.op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, domainerrors.NewTransientGatewayError(r.op, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)
	if len(bytes.TrimSpace(body)) == 0 {
		decodeErr = nil
	}

	if resp.StatusCode >= http.StatusBadRequest {
		gwErr := domainerrors.NewGatewayError(r.op, resp.StatusCode, env.text())
		if decodeErr == nil && !isNull(env.Data) {
			gwErr.Payload = env.Data
		}

		return nil, gwErr
	}

	if decodeErr != nil {
		return nil, invalidResponse(r.op, decodeErr)
	}
	if env.Success != nil && !*env.Success {
		return nil, domainerrors.NewGatewayError(r.op, http.StatusBadRequest, env.text())
	}

	return &env, nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode request", r.op)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		target.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: build request", r.op)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(deliverycontext.HeaderXRequestID, deliverycontext.OutboundRequestID(ctx))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// refreshSession asks the backend for a new access token cookie.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, shared := c.refresh.Do(pathRefreshToken, func() (any, error) {
		var out struct {
			AccessToken string `json:"accessToken"`
		}

		env, err := c.send(ctx, request{
			op:     "refresh_token",
			method: http.MethodPost,
			path:   pathRefreshToken,
			body:   struct{}{},
		})
		if err != nil {
			return nil, err
		}
		if err := decodeData("refresh_token", env.Data, &out); err != nil {
			return nil, err
		}
		if out.AccessToken == "" {
			return nil, invalidResponse("refresh_token", errors.New("no access token returned"))
		}

		return nil, nil
	})

	if err != nil {
		c.log(ctx).Info("Session refresh failed", slog.Any("error", err))
	} else if !shared {
		c.log(ctx).Debug("Session refreshed")
	}

	return err
}

// refreshIfExpiring refreshes ahead of r when the access token cookie is about to expire.
func (c *Client) refreshIfExpiring(ctx context.Context, r request) {
	if c.tokens == nil || r.path == pathRefreshToken {
		return
	}

	token := c.cookie(accessTokenCookie)
	if token == "" {
		return
	}

	expiry, ok := c.tokens.ExpiresAt(token)
	if !ok || expiry.Sub(c.now()) > refreshSkew {
		return
	}

	_ = c.refreshSession(ctx)
}

func (c *Client) cookie(name string) string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == name {
			return cookie.Value
		}
	}

	return ""
}

func decodeData(op string, data json.RawMessage, out any) error {
	if out == nil || isNull(data) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return invalidResponse(op, err)
	}

	return nil
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// invalidResponse reports a 2xx response the client could not understand. It is not retried.
func invalidResponse(op string, err error) *domainerrors.GatewayError {
	gwErr := domainerrors.NewGatewayError(op, http.StatusBadGateway, "Unexpected response from server")
	gwErr.Transient = false
	gwErr.Err = errors.WithStack(err)

	return gwErr
}
