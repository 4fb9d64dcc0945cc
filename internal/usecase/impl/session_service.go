package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const (
	msgLoginSuccess      = "Login successful"
	msgLoginFailed       = "Failed to login. Please try again."
	msgOTPSent           = "OTP sent"
	msgOTPFailed         = "Failed to send OTP"
	msgOTPInvalid        = "Invalid or expired OTP"
	msgLoggedOut         = "Logged out"
	msgLogoutFailed      = "Logout failed. Please try again."
	msgProfileUpdated    = "Profile updated"
	msgProfileFailed     = "Failed to update profile"
	msgAddressUpdated    = "Address saved"
	msgAddressFailed     = "Failed to update address"
	msgAddressRemoved    = "Address removed"
	msgAddressRemoveFail = "Failed to delete address"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	*SessionState

	auth           service.AuthGateway
	cart           usecase.CartUsecase
	requestTimeout time.Duration
	retryBackoff   time.Duration
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	state *SessionState,
	auth service.AuthGateway,
	cart usecase.CartUsecase,
	cfg *config.Config,
) usecase.SessionUsecase {
	return &sessionService{
		SessionState:   state,
		auth:           auth,
		cart:           cart,
		requestTimeout: cfg.Gateway.RequestTimeout,
		retryBackoff:   cfg.Gateway.RetryBackoff,
	}
}

// call runs fn under the request timeout.
func (srv *sessionService) call(ctx context.Context, fn func(context.Context) error) error {
	reqCtx, cancel := context.WithTimeout(ctx, srv.requestTimeout)
	defer cancel()

	return fn(reqCtx)
}

// callWithRetry runs fn and retries it once when the gateway classifies the failure as transient.
func (srv *sessionService) callWithRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	err := srv.call(ctx, fn)
	if err == nil || !domainerrors.IsTransient(err) {
		return err
	}

	srv.log(ctx).Warn("Transient failure, retrying once", slog.String("operation", op), slog.Any("error", err))

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-time.After(srv.retryBackoff):
	}

	return srv.call(ctx, fn)
}

func (srv *sessionService) beginLoading() {
	srv.update(func(s *entity.Session) {
		s.IsLoading = true
		s.Error = ""
	})
}

// authenticate records user as the confirmed identity and persists its snapshot.
func (srv *sessionService) authenticate(ctx context.Context, user *entity.User) {
	srv.update(func(s *entity.Session) {
		s.State = entity.SessionAuthenticated
		s.Provisional = false
		s.User = user
		s.IsLoading = false
		s.Error = ""
	})
	_ = srv.saveSnapshot(ctx, user)
}

// CheckAuth verifies the session with the backend. A fresh cached snapshot is
// trusted provisionally while the check runs, and kept if the check fails transiently.
func (srv *sessionService) CheckAuth(ctx context.Context) entity.Session {
	snapshot := srv.loadSnapshot(ctx)
	srv.update(func(s *entity.Session) {
		s.IsLoading = true
		if snapshot != nil {
			s.State = entity.SessionAuthenticated
			s.Provisional = true
			s.User = snapshot.User
		} else {
			s.State = entity.SessionChecking
			s.Provisional = false
			s.User = nil
		}
	})

	var user *entity.User
	err := srv.call(ctx, func(ctx context.Context) error {
		var err error
		user, err = srv.auth.Profile(ctx)

		return err
	})

	switch {
	case err == nil && user != nil:
		srv.authenticate(ctx, user)

	case err != nil && snapshot != nil && domainerrors.IsTransient(err):
		srv.log(ctx).Warn("Auth check failed transiently, keeping cached identity", slog.Any("error", err))
		srv.update(func(s *entity.Session) {
			s.IsLoading = false
			s.Error = domainerrors.UserMessage(err, "")
		})

	default:
		if err != nil && !domainerrors.IsUnauthorized(err) {
			srv.log(ctx).Warn("Auth check failed", slog.Any("error", err))
		}
		srv.update(func(s *entity.Session) {
			*s = entity.Session{State: entity.SessionAnonymous}
		})
		_ = srv.clearSnapshot(ctx)
	}

	return srv.Current()
}

// Login authenticates with email and password, then merges the guest cart.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) usecase.AuthResult {
	srv.beginLoading()

	var user *entity.User
	err := srv.callWithRetry(ctx, "login", func(ctx context.Context) error {
		var err error
		user, err = srv.auth.Login(ctx, service.Credentials{Email: input.Email, Password: input.Password})

		return err
	})
	if err != nil {
		return srv.loginFailed(ctx, err, msgLoginFailed)
	}

	return srv.completeLogin(ctx, user)
}

// SendOTP asks the backend to send a one-time password to the phone number.
func (srv *sessionService) SendOTP(ctx context.Context, input usecase.SendOTPInput) usecase.AuthResult {
	srv.beginLoading()

	err := srv.callWithRetry(ctx, "send_otp", func(ctx context.Context) error {
		return srv.auth.SendOTP(ctx, input.Phone)
	})
	if err != nil {
		msg := domainerrors.UserMessage(err, msgOTPFailed)
		srv.update(func(s *entity.Session) {
			s.IsLoading = false
			s.Error = msg
		})

		return usecase.AuthResult{ActionResult: entity.Failed(msg)}
	}

	srv.update(func(s *entity.Session) { s.IsLoading = false })

	return usecase.AuthResult{ActionResult: entity.Succeeded(msgOTPSent)}
}

// VerifyOTP completes an OTP login, then merges the guest cart.
func (srv *sessionService) VerifyOTP(ctx context.Context, input usecase.VerifyOTPInput) usecase.AuthResult {
	srv.beginLoading()

	var user *entity.User
	err := srv.callWithRetry(ctx, "verify_otp", func(ctx context.Context) error {
		var err error
		user, err = srv.auth.VerifyOTP(ctx, service.OTPVerification{Phone: input.Phone, OTP: input.OTP})

		return err
	})
	if err != nil {
		return srv.loginFailed(ctx, err, msgOTPInvalid)
	}

	return srv.completeLogin(ctx, user)
}

func (srv *sessionService) completeLogin(ctx context.Context, user *entity.User) usecase.AuthResult {
	if user == nil || user.ID == "" {
		return srv.loginFailed(ctx, errors.New("backend returned no user"), msgLoginFailed)
	}

	srv.authenticate(ctx, user)
	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID))

	if res := srv.cart.MergeGuestCart(ctx); !res.Success {
		srv.log(ctx).Warn("Guest cart merge incomplete", slog.String("message", res.Message))
	}

	return usecase.AuthResult{
		ActionResult: entity.Succeeded(msgLoginSuccess),
		User:         user,
	}
}

// loginFailed reports a failed login. An unverified account is reported without touching the session.
func (srv *sessionService) loginFailed(ctx context.Context, err error, fallback string) usecase.AuthResult {
	msg := domainerrors.UserMessage(err, fallback)
	srv.log(ctx).Info("Login failed", slog.Any("error", err))

	if unverified := unverifiedUser(err); unverified != nil {
		srv.update(func(s *entity.Session) { s.IsLoading = false })

		return usecase.AuthResult{
			ActionResult:   entity.Failed(msg),
			UnverifiedUser: unverified,
		}
	}

	srv.update(func(s *entity.Session) {
		*s = entity.Session{State: entity.SessionAnonymous, Error: msg}
	})

	return usecase.AuthResult{ActionResult: entity.Failed(msg)}
}

// unverifiedUser extracts {_id, email} from a 403 login refusal.
func unverifiedUser(err error) *entity.UnverifiedUser {
	var gwErr *domainerrors.GatewayError
	if !errors.As(err, &gwErr) || gwErr.StatusCode != http.StatusForbidden || len(gwErr.Payload) == 0 {
		return nil
	}

	var user entity.UnverifiedUser
	if json.Unmarshal(gwErr.Payload, &user) != nil || user.ID == "" {
		return nil
	}

	return &user
}

// Logout ends the session. The in-memory cart and the snapshot are cleared even when the backend call fails.
func (srv *sessionService) Logout(ctx context.Context) usecase.AuthResult {
	srv.beginLoading()

	err := srv.call(ctx, srv.auth.Logout)

	srv.cart.ClearCartOnLogout(ctx)
	_ = srv.clearSnapshot(ctx)

	if err != nil {
		msg := domainerrors.UserMessage(err, msgLogoutFailed)
		srv.log(ctx).Warn("Backend logout failed", slog.Any("error", err))
		srv.update(func(s *entity.Session) {
			*s = entity.Session{State: entity.SessionAnonymous, Error: msg}
		})

		return usecase.AuthResult{ActionResult: entity.Failed(msg)}
	}

	srv.update(func(s *entity.Session) {
		*s = entity.Session{State: entity.SessionAnonymous}
	})

	return usecase.AuthResult{ActionResult: entity.Succeeded(msgLoggedOut)}
}

// UpdateProfile changes the editable profile fields.
func (srv *sessionService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) usecase.AuthResult {
	return srv.mutateUser(ctx, msgProfileUpdated, msgProfileFailed, func(ctx context.Context) (*entity.User, error) {
		return srv.auth.UpdateProfile(ctx, service.ProfileUpdate{Name: input.Name, Email: input.Email, Phone: input.Phone})
	})
}

// UpdateAddress saves a shipping address.
func (srv *sessionService) UpdateAddress(ctx context.Context, input usecase.UpdateAddressInput) usecase.AuthResult {
	return srv.mutateUser(ctx, msgAddressUpdated, msgAddressFailed, func(ctx context.Context) (*entity.User, error) {
		return srv.auth.UpdateAddress(ctx, input.ToAddressUpdate())
	})
}

// RemoveAddress deletes the shipping address at index.
func (srv *sessionService) RemoveAddress(ctx context.Context, index int) usecase.AuthResult {
	return srv.mutateUser(ctx, msgAddressRemoved, msgAddressRemoveFail, func(ctx context.Context) (*entity.User, error) {
		return srv.auth.RemoveAddress(ctx, index)
	})
}

// mutateUser runs an account change that returns the updated user. A 401 ends the session.
func (srv *sessionService) mutateUser(
	ctx context.Context,
	success, fallback string,
	fn func(context.Context) (*entity.User, error),
) usecase.AuthResult {
	if srv.CurrentUserID() == "" {
		return usecase.AuthResult{ActionResult: entity.Failed(domainerrors.ErrLoginRequired.Message())}
	}

	srv.beginLoading()

	var user *entity.User
	err := srv.call(ctx, func(ctx context.Context) error {
		var err error
		user, err = fn(ctx)

		return err
	})
	if err != nil {
		if domainerrors.IsUnauthorized(err) {
			srv.Expire(ctx)

			return usecase.AuthResult{ActionResult: entity.Failed(domainerrors.ErrSessionExpired.Message())}
		}

		msg := domainerrors.UserMessage(err, fallback)
		srv.update(func(s *entity.Session) {
			s.IsLoading = false
			s.Error = msg
		})

		return usecase.AuthResult{ActionResult: entity.Failed(msg)}
	}

	if user == nil {
		srv.update(func(s *entity.Session) { s.IsLoading = false })

		return usecase.AuthResult{ActionResult: entity.Succeeded(success), User: srv.Current().User}
	}

	srv.authenticate(ctx, user)

	return usecase.AuthResult{ActionResult: entity.Succeeded(success), User: user}
}
