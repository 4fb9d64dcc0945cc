// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SendOTPInput defines the phone number an OTP is sent to.
type SendOTPInput struct {
	Phone string `json:"phone" validate:"required,min=6,max=20"`
}

// VerifyOTPInput defines the data required to complete an OTP login.
type VerifyOTPInput struct {
	Phone string `json:"phone" validate:"required,min=6,max=20"`
	OTP   string `json:"otp" validate:"required,min=4,max=8"`
}

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,min=6,max=20"`
}

// UpdateAddressInput replaces the address at Index, or adds a new one when Index is nil.
type UpdateAddressInput struct {
	Address entity.Address `json:"address"`
	Index   *int           `json:"index" validate:"omitempty,gte=0"`
}

// --- Output DTOs ---

// AuthResult is the outcome of a session action.
type AuthResult struct {
	entity.ActionResult

	// User is set after a successful login or profile change
	User *entity.User `json:"user,omitempty"`

	// UnverifiedUser is set when login was refused because the email is not verified yet
	UnverifiedUser *entity.UnverifiedUser `json:"unverifiedUser,omitempty"`
}

// SessionUsecase defines the authentication session manager.
type SessionUsecase interface {
	SessionProvider

	// CheckAuth verifies the session against the backend, trusting a fresh cached
	// snapshot provisionally while the check is in flight.
	CheckAuth(ctx context.Context) entity.Session

	// Login and VerifyOTP merge the guest cart before returning.
	Login(ctx context.Context, input LoginInput) AuthResult
	SendOTP(ctx context.Context, input SendOTPInput) AuthResult
	VerifyOTP(ctx context.Context, input VerifyOTPInput) AuthResult

	// Logout resets the in-memory cart before returning, even if the backend call fails.
	Logout(ctx context.Context) AuthResult

	UpdateProfile(ctx context.Context, input UpdateProfileInput) AuthResult
	UpdateAddress(ctx context.Context, input UpdateAddressInput) AuthResult
	RemoveAddress(ctx context.Context, index int) AuthResult
}

// ToAddressUpdate converts the input into the gateway request.
func (in UpdateAddressInput) ToAddressUpdate() service.AddressUpdate {
	return service.AddressUpdate{Address: in.Address, Index: in.Index}
}
