package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// sessionActionResponse is the result of a session action together with the resulting session.
type sessionActionResponse struct {
	usecase.AuthResult

	Session entity.Session `json:"session"`
}

// SessionHandler exposes the session manager.
type SessionHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

func (h *SessionHandler) respond(c echo.Context, result usecase.AuthResult) error {
	return response.Success(c, http.StatusOK, sessionActionResponse{
		AuthResult: result,
		Session:    h.session.Current(),
	})
}

// GetSession returns the current session.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.session.Current())
}

// CheckAuth verifies the session with the backend.
func (h *SessionHandler) CheckAuth(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.session.CheckAuth(c.Request().Context()))
}

// Login handles the email and password login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bind(c, &input); err != nil {
		return err
	}

	return h.respond(c, h.session.Login(c.Request().Context(), input))
}

// SendOTP asks the backend to text a one-time password.
func (h *SessionHandler) SendOTP(c echo.Context) error {
	var input usecase.SendOTPInput
	if err := bind(c, &input); err != nil {
		return err
	}

	return h.respond(c, h.session.SendOTP(c.Request().Context(), input))
}

// VerifyOTP completes an OTP login.
func (h *SessionHandler) VerifyOTP(c echo.Context) error {
	var input usecase.VerifyOTPInput
	if err := bind(c, &input); err != nil {
		return err
	}

	return h.respond(c, h.session.VerifyOTP(c.Request().Context(), input))
}

// Logout handles the logout request.
func (h *SessionHandler) Logout(c echo.Context) error {
	return h.respond(c, h.session.Logout(c.Request().Context()))
}

// UpdateProfile changes the editable profile fields.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := bind(c, &input); err != nil {
		return err
	}

	return h.respond(c, h.session.UpdateProfile(c.Request().Context(), input))
}

// UpdateAddress saves a shipping address.
func (h *SessionHandler) UpdateAddress(c echo.Context) error {
	var input usecase.UpdateAddressInput
	if err := bind(c, &input); err != nil {
		return err
	}

	return h.respond(c, h.session.UpdateAddress(c.Request().Context(), input))
}

// RemoveAddress deletes the address at the :index path parameter.
func (h *SessionHandler) RemoveAddress(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("index must be a non-negative integer")
	}

	return h.respond(c, h.session.RemoveAddress(c.Request().Context(), index))
}
