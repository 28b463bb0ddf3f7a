package dto

import "time"

type SignUpResult struct {
	AccountID string
	Message   string
}

type AccessToken struct {
	Token     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type RefreshToken struct {
	Token     string
	FamilyID  string
	ExpiresAt time.Time
}

type TokenPair struct {
	AccountID    string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}
