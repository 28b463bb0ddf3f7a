package entity

import "time"

// RefreshToken is the stored half of an opaque refresh token. Only the hash of
// the token value is persisted.
type RefreshToken struct {
	ID        string
	AccountID string
	FamilyID  string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RotatedAt *time.Time
	RevokedAt *time.Time
}

func (t *RefreshToken) Spent() bool {
	return t.RotatedAt != nil || t.RevokedAt != nil
}

// Expired reports whether now has reached the expiry instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
