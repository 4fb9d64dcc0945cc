package gateway

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// authGateway implements service.AuthGateway over the backend's /users routes.
type authGateway struct {
	client *Client
}

// NewAuthGateway is the constructor for authGateway.
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) Login(ctx context.Context, creds service.Credentials) (*entity.User, error) {
	return g.user(ctx, request{op: "login", method: http.MethodPost, path: "/users/login", body: creds})
}

func (g *authGateway) SendOTP(ctx context.Context, phone string) error {
	return g.client.call(ctx, request{
		op:     "send_otp",
		method: http.MethodPost,
		path:   "/users/send-otp",
		body:   map[string]string{"phone": phone},
	}, nil)
}

func (g *authGateway) VerifyOTP(ctx context.Context, input service.OTPVerification) (*entity.User, error) {
	return g.user(ctx, request{op: "verify_otp", method: http.MethodPost, path: "/users/verify-otp", body: input})
}

func (g *authGateway) Profile(ctx context.Context) (*entity.User, error) {
	return g.user(ctx, request{op: "profile", method: http.MethodGet, path: "/users/profile"})
}

func (g *authGateway) Logout(ctx context.Context) error {
	return g.client.call(ctx, request{op: "logout", method: http.MethodPost, path: "/users/logout", body: struct{}{}}, nil)
}

func (g *authGateway) UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*entity.User, error) {
	return g.user(ctx, request{op: "update_profile", method: http.MethodPut, path: "/users/update", body: update})
}

func (g *authGateway) UpdateAddress(ctx context.Context, update service.AddressUpdate) (*entity.User, error) {
	return g.user(ctx, request{op: "update_address", method: http.MethodPut, path: "/users/address", body: update})
}

func (g *authGateway) RemoveAddress(ctx context.Context, index int) (*entity.User, error) {
	return g.user(ctx, request{
		op:     "remove_address",
		method: http.MethodDelete,
		path:   "/users/address/" + strconv.Itoa(index),
	})
}

// user runs r and decodes the user from its data. A response without a user yields nil.
func (g *authGateway) user(ctx context.Context, r request) (*entity.User, error) {
	var user entity.User
	if err := g.client.call(ctx, r, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, nil
	}

	return &user, nil
}
