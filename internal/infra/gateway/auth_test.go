package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"_id":"u1","name":"Asha","email":"asha@example.com","phone":"9999999999","isVerified":true,
	"addresses":[{"fullName":"Asha","city":"Pune"}]}`

func loginCreds() service.Credentials {
	return service.Credentials{Email: "asha@example.com", Password: "s3cret"}
}

func TestAuthGateway_Login(t *testing.T) {
	rec := &recorder{respond: respondData(json.RawMessage(userJSON))}
	gateway := NewAuthGateway(newTestClient(t, rec))

	user, err := gateway.Login(context.Background(), loginCreds())

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Len(t, user.Addresses, 1)

	got := rec.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/users/login", got.Path)
	assert.JSONEq(t, `{"email":"asha@example.com","password":"s3cret"}`, got.Body)
}

func TestAuthGateway_OTP(t *testing.T) {
	rec := &recorder{respond: respondData(json.RawMessage(userJSON))}
	gateway := NewAuthGateway(newTestClient(t, rec))
	ctx := context.Background()

	require.NoError(t, gateway.SendOTP(ctx, "9999999999"))
	assert.Equal(t, "/api/users/send-otp", rec.last(t).Path)
	assert.JSONEq(t, `{"phone":"9999999999"}`, rec.last(t).Body)

	user, err := gateway.VerifyOTP(ctx, service.OTPVerification{Phone: "9999999999", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "/api/users/verify-otp", rec.last(t).Path)
	assert.JSONEq(t, `{"phone":"9999999999","otp":"123456"}`, rec.last(t).Body)
}

func TestAuthGateway_ProfileWithoutUserIsNil(t *testing.T) {
	rec := &recorder{respond: respondData(nil)}
	gateway := NewAuthGateway(newTestClient(t, rec))

	user, err := gateway.Profile(context.Background())

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthGateway_ProfileUnauthorized(t *testing.T) {
	rec := &recorder{respond: func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Not authorized"})
	}}
	gateway := NewAuthGateway(newTestClient(t, rec))

	user, err := gateway.Profile(context.Background())

	assert.Nil(t, user)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestAuthGateway_AccountMutations(t *testing.T) {
	rec := &recorder{respond: respondData(json.RawMessage(userJSON))}
	gateway := NewAuthGateway(newTestClient(t, rec))
	ctx := context.Background()

	_, err := gateway.UpdateProfile(ctx, service.ProfileUpdate{Name: "Asha K"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.last(t).Method)
	assert.Equal(t, "/api/users/update", rec.last(t).Path)
	assert.JSONEq(t, `{"name":"Asha K"}`, rec.last(t).Body)

	index := 0
	_, err = gateway.UpdateAddress(ctx, service.AddressUpdate{
		Address: entity.Address{FullName: "Asha", City: "Pune"},
		Index:   &index,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/users/address", rec.last(t).Path)
	assert.JSONEq(t, `{"address":{"fullName":"Asha","city":"Pune"},"index":0}`, rec.last(t).Body)

	_, err = gateway.RemoveAddress(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.last(t).Method)
	assert.Equal(t, "/api/users/address/2", rec.last(t).Path)

	require.NoError(t, gateway.Logout(ctx))
	assert.Equal(t, "/api/users/logout", rec.last(t).Path)
}
