package service

import (
	"errors"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicate          = errors.New("username or email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("email address has not been verified")
	ErrRateLimited        = errors.New("too many attempts, try again later")
	ErrTransient          = errors.New("service temporarily unavailable")

	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenReused   = errors.New("token has already been used")
	ErrTokenConsumed = errors.New("token has already been consumed")
)

const (
	MessageSignUp               = "account created, check your email to verify it"
	MessageEmailVerified        = "email verified"
	MessageVerificationFailed   = "verification link is invalid or has expired"
	MessagePasswordResetRequest = "if an account exists for this email, a password reset link has been sent"
	MessageVerificationResent   = "if the account is awaiting verification, a new link has been sent"
	MessagePasswordReset        = "password has been reset"
	MessageResetFailed          = "reset link is invalid or has expired"
)

// IsTokenError reports whether err is one of the token failures that are
// collapsed into a single external answer.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenReused) ||
		errors.Is(err, ErrTokenConsumed)
}

func isClassified(err error) bool {
	return IsTokenError(err) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrAccountNotVerified) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTransient)
}
