package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

type serverFixture struct {
	echo    *echo.Echo
	cart    *mockUsecase.MockCartUsecase
	session *mockUsecase.MockSessionUsecase
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Gateway.BaseURL = "http://backend.test/api"
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cart := mockUsecase.NewMockCartUsecase(t)
	session := mockUsecase.NewMockSessionUsecase(t)

	return &serverFixture{
		echo: NewEcho(cfg, logger, router.RouterParams{
			CartHandler:    handler.NewCartHandler(cart, logger),
			SessionHandler: handler.NewSessionHandler(session, logger),
		}),
		cart:    cart,
		session: session,
	}
}

func (f *serverFixture) do(t *testing.T, method, path, body string) (int, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "test-request")
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.Equal(t, "test-request", env.Meta.RequestID)

	return rec.Code, env
}

type actionPayload struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Cart    entity.CartState `json:"cart"`
}

func decodeAction(t *testing.T, env testEnvelope) actionPayload {
	t.Helper()

	var payload actionPayload
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	return payload
}

func TestServer_HealthCheck(t *testing.T) {
	f := newServerFixture(t)

	code, env := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestServer_AddItemDefaultsQuantity(t *testing.T) {
	f := newServerFixture(t)
	f.cart.EXPECT().AddToCart(mock.Anything, "p1", 1).Return(entity.Succeeded("Added to cart")).Once()
	f.cart.EXPECT().Snapshot().Return(entity.CartState{CartInitialized: true}).Once()

	code, env := f.do(t, http.MethodPost, "/cart/items", `{"productId":"p1"}`)

	require.Equal(t, http.StatusOK, code)
	payload := decodeAction(t, env)
	assert.True(t, payload.Success)
	assert.Equal(t, "Added to cart", payload.Message)
	assert.True(t, payload.Cart.CartInitialized)
}

func TestServer_AddItemRejectsZeroQuantity(t *testing.T) {
	f := newServerFixture(t)

	code, env := f.do(t, http.MethodPost, "/cart/items", `{"productId":"p1","quantity":0}`)

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "quantity failed on gte", env.Error.Details)
}

func TestServer_AddItemRejectsMalformedBody(t *testing.T) {
	f := newServerFixture(t)

	code, env := f.do(t, http.MethodPost, "/cart/items", `{"productId":`)

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid request body", env.Error.Message)
}

func TestServer_UpdateItem(t *testing.T) {
	f := newServerFixture(t)
	f.cart.EXPECT().UpdateCart(mock.Anything, "p1", 9).Return(entity.Succeeded("Cart updated")).Once()
	f.cart.EXPECT().Snapshot().Return(entity.CartState{}).Once()

	code, _ := f.do(t, http.MethodPut, "/cart/items/p1", `{"quantity":9}`)
	assert.Equal(t, http.StatusOK, code)

	code, env := f.do(t, http.MethodPut, "/cart/items/p1", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_FailedActionIsStillOK(t *testing.T) {
	f := newServerFixture(t)
	f.cart.EXPECT().ApplyCoupon(mock.Anything, "OLD").Return(entity.Failed("Coupon expired")).Once()
	f.cart.EXPECT().Snapshot().Return(entity.CartState{CouponError: "Coupon expired"}).Once()

	code, env := f.do(t, http.MethodPost, "/cart/coupon", `{"code":"OLD"}`)

	require.Equal(t, http.StatusOK, code)
	payload := decodeAction(t, env)
	assert.False(t, payload.Success)
	assert.Equal(t, "Coupon expired", payload.Message)
	assert.Equal(t, "Coupon expired", payload.Cart.CouponError)
}

func TestServer_CartRoutes(t *testing.T) {
	f := newServerFixture(t)
	ok := entity.Succeeded("")
	f.cart.EXPECT().Snapshot().Return(entity.CartState{})
	f.cart.EXPECT().FetchCart(mock.Anything).Return(ok).Once()
	f.cart.EXPECT().RemoveCartItem(mock.Anything, "p2").Return(ok).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Return(ok).Once()
	f.cart.EXPECT().MergeGuestCart(mock.Anything).Return(ok).Once()
	f.cart.EXPECT().RemoveCoupon(mock.Anything).Return(ok).Once()
	f.cart.EXPECT().ApplyReferral(mock.Anything, "FRIEND").Return(ok).Once()
	f.cart.EXPECT().RemoveReferral(mock.Anything).Return(ok).Once()
	f.cart.EXPECT().SetBuyNowProduct("p9").Return().Once()
	f.cart.EXPECT().ClearBuyNow().Return().Once()

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/cart", ""},
		{http.MethodPost, "/cart/fetch", ""},
		{http.MethodDelete, "/cart/items/p2", ""},
		{http.MethodDelete, "/cart", ""},
		{http.MethodPost, "/cart/merge", ""},
		{http.MethodDelete, "/cart/coupon", ""},
		{http.MethodPost, "/cart/referral", `{"code":"FRIEND"}`},
		{http.MethodDelete, "/cart/referral", ""},
		{http.MethodPut, "/cart/buy-now", `{"productId":"p9"}`},
		{http.MethodDelete, "/cart/buy-now", ""},
	}

	for _, r := range requests {
		code, _ := f.do(t, r.method, r.path, r.body)
		assert.Equal(t, http.StatusOK, code, "%s %s", r.method, r.path)
	}
}

func TestServer_Login(t *testing.T) {
	f := newServerFixture(t)
	user := &entity.User{ID: "u1", Name: "Asha"}
	f.session.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "asha@example.com", Password: "pw"}).
		Return(usecase.AuthResult{ActionResult: entity.Succeeded("Login successful"), User: user}).
		Once()
	f.session.EXPECT().Current().Return(entity.Session{State: entity.SessionAuthenticated, User: user}).Once()

	code, env := f.do(t, http.MethodPost, "/session/login", `{"email":"asha@example.com","password":"pw"}`)

	require.Equal(t, http.StatusOK, code)
	var payload struct {
		Success bool           `json:"success"`
		User    *entity.User   `json:"user"`
		Session entity.Session `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "u1", payload.User.ID)
	assert.Equal(t, entity.SessionAuthenticated, payload.Session.State)
}

func TestServer_LoginValidation(t *testing.T) {
	f := newServerFixture(t)

	code, env := f.do(t, http.MethodPost, "/session/login", `{"email":"not-an-email","password":""}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error.Details, "email failed on email")
	assert.Contains(t, env.Error.Details, "password failed on required")
}

func TestServer_SessionRoutes(t *testing.T) {
	f := newServerFixture(t)
	ok := usecase.AuthResult{ActionResult: entity.Succeeded("")}
	index := 0
	f.session.EXPECT().Current().Return(entity.Session{State: entity.SessionAnonymous})
	f.session.EXPECT().CheckAuth(mock.Anything).Return(entity.Session{State: entity.SessionAnonymous}).Once()
	f.session.EXPECT().SendOTP(mock.Anything, usecase.SendOTPInput{Phone: "9999999999"}).Return(ok).Once()
	f.session.EXPECT().
		VerifyOTP(mock.Anything, usecase.VerifyOTPInput{Phone: "9999999999", OTP: "123456"}).
		Return(ok).Once()
	f.session.EXPECT().Logout(mock.Anything).Return(ok).Once()
	f.session.EXPECT().UpdateProfile(mock.Anything, usecase.UpdateProfileInput{Name: "Asha K"}).Return(ok).Once()
	f.session.EXPECT().
		UpdateAddress(mock.Anything, usecase.UpdateAddressInput{Address: entity.Address{City: "Pune"}, Index: &index}).
		Return(ok).Once()
	f.session.EXPECT().RemoveAddress(mock.Anything, 1).Return(ok).Once()

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/session", ""},
		{http.MethodPost, "/session/check", ""},
		{http.MethodPost, "/session/otp/send", `{"phone":"9999999999"}`},
		{http.MethodPost, "/session/otp/verify", `{"phone":"9999999999","otp":"123456"}`},
		{http.MethodPost, "/session/logout", ""},
		{http.MethodPut, "/session/profile", `{"name":"Asha K"}`},
		{http.MethodPut, "/session/address", `{"address":{"city":"Pune"},"index":0}`},
		{http.MethodDelete, "/session/address/1", ""},
	}

	for _, r := range requests {
		code, _ := f.do(t, r.method, r.path, r.body)
		assert.Equal(t, http.StatusOK, code, "%s %s", r.method, r.path)
	}
}

func TestServer_RemoveAddressRejectsBadIndex(t *testing.T) {
	f := newServerFixture(t)

	code, env := f.do(t, http.MethodDelete, "/session/address/first", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t)

	code, env := f.do(t, http.MethodGet, "/orders", "")

	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
