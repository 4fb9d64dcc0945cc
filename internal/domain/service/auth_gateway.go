package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials is an email and password login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OTPVerification is a phone number and the one-time password sent to it.
type OTPVerification struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// ProfileUpdate carries the editable profile fields. Empty fields are left unchanged.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// AddressUpdate replaces the address at Index, or appends when Index is nil.
type AddressUpdate struct {
	Address entity.Address `json:"address"`
	Index   *int           `json:"index,omitempty"`
}

// AuthGateway is the backend's account API. Sessions are carried by cookies the
// gateway keeps between calls. Every method returns a *domainerrors.GatewayError on failure.
type AuthGateway interface {
	// Login returns the user on success. A refused unverified account is a 403
	// whose payload holds {_id, email}.
	Login(ctx context.Context, creds Credentials) (*entity.User, error)

	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, input OTPVerification) (*entity.User, error)

	// Profile returns the currently authenticated user. A 401 means nobody is logged in.
	Profile(ctx context.Context) (*entity.User, error)

	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*entity.User, error)
	UpdateAddress(ctx context.Context, update AddressUpdate) (*entity.User, error)
	RemoveAddress(ctx context.Context, index int) (*entity.User, error)
}
