package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message.
// errors.Is still matches the original through the shared error code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Session errors
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Please login to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please login again",
		"",
	)

	// Discount errors
	ErrReferralActive = NewBaseError(
		http.StatusConflict,
		"REFERRAL_ACTIVE",
		"Referral already applied. Remove referral to use coupon.",
		"",
	)

	ErrCouponActive = NewBaseError(
		http.StatusConflict,
		"COUPON_ACTIVE",
		"Coupon already applied. Remove coupon to use referral.",
		"",
	)

	ErrCouponAlreadyApplied = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_APPLIED",
		"Coupon already applied.",
		"",
	)

	ErrReferralAlreadyApplied = NewBaseError(
		http.StatusConflict,
		"REFERRAL_ALREADY_APPLIED",
		"Referral already applied.",
		"",
	)

	ErrCouponInvalid = NewBaseError(
		http.StatusBadRequest,
		"COUPON_INVALID",
		"Invalid or expired coupon code",
		"",
	)

	ErrReferralInvalid = NewBaseError(
		http.StatusBadRequest,
		"REFERRAL_INVALID",
		"Invalid or expired referral code",
		"",
	)

	// Cart errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item not found in cart",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrCodeRequired = NewBaseError(
		http.StatusBadRequest,
		"CODE_REQUIRED",
		"Please enter a code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// GatewayError is the typed failure returned by every remote backend call.
// StatusCode is zero when no HTTP response was received.
type GatewayError struct {
	Operation  string
	StatusCode int
	Msg        string
	Transient  bool
	Err        error

	// Payload is the "data" member of the error body, when the backend sent one
	Payload json.RawMessage
}

// NewGatewayError creates an error for a non-2xx response from the backend.
func NewGatewayError(operation string, statusCode int, message string) *GatewayError {
	return &GatewayError{
		Operation:  operation,
		StatusCode: statusCode,
		Msg:        message,
		Transient:  statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError,
	}
}

// NewTransientGatewayError creates an error for a timeout or connection failure.
func NewTransientGatewayError(operation string, err error) *GatewayError {
	return &GatewayError{
		Operation: operation,
		Transient: true,
		Err:       err,
	}
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Msg != "":
		return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Msg)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Operation, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	default:
		return e.Operation + ": gateway failure"
	}
}

// Unwrap returns the underlying transport error, if any
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the backend status, or 502 when the backend was unreachable
func (e *GatewayError) HTTPCode() int {
	if e.StatusCode == 0 {
		return http.StatusBadGateway
	}

	return e.StatusCode
}

// ErrorCode returns the business error code
func (e *GatewayError) ErrorCode() string {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return "GATEWAY_UNAUTHORIZED"
	case e.StatusCode == http.StatusNotFound:
		return "GATEWAY_NOT_FOUND"
	case e.Transient:
		return "GATEWAY_UNAVAILABLE"
	default:
		return "GATEWAY_REJECTED"
	}
}

// Message returns the backend's message field
func (e *GatewayError) Message() string {
	return e.Msg
}

// Details returns the failed operation name
func (e *GatewayError) Details() string {
	return e.Operation
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var gwErr *GatewayError

	return errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var gwErr *GatewayError

	return errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound
}

// IsTransient reports whether err is a timeout, connection failure or 5xx/429.
func IsTransient(err error) bool {
	var gwErr *GatewayError

	return errors.As(err, &gwErr) && gwErr.Transient
}

// UserMessage returns the message a user should see for err, or fallback.
func UserMessage(err error, fallback string) string {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return fallback
}

// StorageError reports a failed local store operation. The engine treats
// these as no-ops; the value exists so callers and tests can observe degraded mode.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError wraps a backend failure for op on key
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("local store %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the backend error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err came from the local store.
func IsStorageError(err error) bool {
	var storageErr *StorageError

	return errors.As(err, &storageErr)
}
