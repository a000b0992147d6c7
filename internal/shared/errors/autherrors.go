package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeSessionExpired ErrorType = "session_expired"
	ErrorTypeNoSession      ErrorType = "no_session"
)

const (
	MsgSessionExpired = "Your session has expired. Please login again."
	MsgLoginFailed    = "Login failed. Please check your credentials."
	MsgSignupFailed   = "Signup failed. Please try again."
	MsgLoginRequired  = "Please login to access this page"
)

// NewSessionExpiredError is returned once the backend rejected the
// session token and the holder has been cleared.
func NewSessionExpiredError(cause error) *AppError {
	e := newAppError(ErrorTypeSessionExpired, http.StatusUnauthorized, MsgSessionExpired, nil)
	e.cause = cause
	return e
}

// NewNoSessionError is returned when a protected view is requested
// without a stored session.
func NewNoSessionError() *AppError {
	return newAppError(ErrorTypeNoSession, http.StatusUnauthorized, MsgLoginRequired, nil)
}

// IsSessionEnded reports whether the caller must log in again.
func IsSessionEnded(err error) bool {
	return isType(err, ErrorTypeSessionExpired) || isType(err, ErrorTypeNoSession) || IsAuthFailure(err)
}

// ErrorTypeRoleMismatch marks a valid session asking for another role's
// view. Unlike a backend 403 it does not end the session.
const ErrorTypeRoleMismatch ErrorType = "role_mismatch"

// NewRoleMismatchError sends the user to the unauthorized page.
func NewRoleMismatchError(message string) *AppError {
	return newAppError(ErrorTypeRoleMismatch, http.StatusForbidden, message, nil)
}

// IsRoleMismatch reports a role mismatch.
func IsRoleMismatch(err error) bool {
	return isType(err, ErrorTypeRoleMismatch)
}
