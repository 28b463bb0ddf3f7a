package entity

import "time"

type AccountState string

const (
	AccountStatePendingVerification AccountState = "pending_verification"
	AccountStateActive              AccountState = "active"
)

type Account struct {
	ID                string
	Username          string
	CanonicalUsername string
	Email             string
	CanonicalEmail    string
	PasswordHash      string
	EmailVerified     bool
	VerifiedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// State derives the lifecycle state from the verification flag.
func (a *Account) State() AccountState {
	if a.EmailVerified {
		return AccountStateActive
	}
	return AccountStatePendingVerification
}
