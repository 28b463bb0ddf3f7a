package entity

import "time"

type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify_email"
	PurposeResetPassword Purpose = "reset_password"
)

func (p Purpose) Valid() bool {
	return p == PurposeVerifyEmail || p == PurposeResetPassword
}

type VerificationToken struct {
	ID         string
	AccountID  string
	Purpose    Purpose
	TokenHash  string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time

	// Token holds the plaintext value and is only set on freshly issued tokens.
	Token string
}

func (t *VerificationToken) Consumed() bool {
	return t.ConsumedAt != nil
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
