package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/dto"
	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const opaqueTokenBytes = 32

var errRotationLost = errors.New("refresh token rotated concurrently")

// TokenConfig carries the signing material and lifetimes of one Token Service.
type TokenConfig struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c TokenConfig) validate() error {
	if len(c.Secret) == 0 {
		return errors.New("token secret is required")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}

// AccessClaims is what a verified access token asserts.
type AccessClaims struct {
	AccountID string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type refreshTokenStore interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	RevokeFamily(ctx context.Context, familyID string, at time.Time) (int64, error)
	RevokeAllForAccount(ctx context.Context, accountID string, at time.Time) (int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// Transactor runs fn with repositories bound to one transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error
}

// Option tunes the clock and randomness of the token components.
type Option func(*options)

type options struct {
	now    func() time.Time
	random io.Reader
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithRandom(random io.Reader) Option {
	return func(o *options) {
		if random != nil {
			o.random = random
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, random: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type TokenService struct {
	cfg    TokenConfig
	store  refreshTokenStore
	tx     Transactor
	now    func() time.Time
	random io.Reader
}

func NewTokenService(cfg TokenConfig, store refreshTokenStore, tx Transactor, opts ...Option) (*TokenService, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return &TokenService{cfg: cfg, store: store, tx: tx, now: o.now, random: o.random}, nil
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.cfg.AccessTTL
}

func (s *TokenService) IssueAccessToken(accountID string) (*dto.AccessToken, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	tokenID := uuid.NewString()

	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		Issuer:    s.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        tokenID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &dto.AccessToken{
		Token:     signed,
		ID:        tokenID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// IssueRefreshToken stores a new refresh token in familyID, starting a new
// family when familyID is empty.
func (s *TokenService) IssueRefreshToken(ctx context.Context, accountID, familyID string) (*dto.RefreshToken, error) {
	return s.issueRefreshToken(ctx, s.store, accountID, familyID)
}

func (s *TokenService) issueRefreshToken(ctx context.Context, store refreshTokenStore, accountID, familyID string) (*dto.RefreshToken, error) {
	raw, err := randomToken(s.random)
	if err != nil {
		return nil, err
	}
	if familyID == "" {
		familyID = uuid.NewString()
	}

	now := s.now()
	token := &entity.RefreshToken{
		AccountID: accountID,
		FamilyID:  familyID,
		TokenHash: hashToken(raw),
		ExpiresAt: now.Add(s.cfg.RefreshTTL),
		CreatedAt: now,
	}
	if err = store.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &dto.RefreshToken{
		Token:     raw,
		FamilyID:  familyID,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// IssuePair issues an access token and a refresh token in familyID.
func (s *TokenService) IssuePair(ctx context.Context, accountID, familyID string) (*dto.TokenPair, error) {
	return s.issuePair(ctx, s.store, accountID, familyID)
}

func (s *TokenService) issuePair(ctx context.Context, store refreshTokenStore, accountID, familyID string) (*dto.TokenPair, error) {
	access, err := s.IssueAccessToken(accountID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issueRefreshToken(ctx, store, accountID, familyID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccountID:    accountID,
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		ExpiresIn:    int64(s.cfg.AccessTTL.Seconds()),
	}, nil
}

// VerifyAccessToken checks signature, issuer and expiry without touching the store.
func (s *TokenService) VerifyAccessToken(token string) (*AccessClaims, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		logrus.WithError(err).Debug("Access token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		logrus.Debug("Access token rejected: missing claims")
		return nil, ErrTokenInvalid
	}

	return &AccessClaims{
		AccountID: claims.Subject,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// RotateRefreshToken spends token and issues a new pair in the same family,
// both in one transaction: a failed insert leaves the token unspent.
// Presenting a spent token, or losing the race to spend it, is treated as
// reuse and revokes the whole family.
func (s *TokenService) RotateRefreshToken(ctx context.Context, token string) (*dto.TokenPair, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	stored, err := s.store.FindByHash(ctx, hashToken(token))
	if err != nil {
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	if stored == nil {
		return nil, ErrTokenInvalid
	}

	now := s.now()
	if stored.Spent() {
		return nil, s.reused(ctx, stored, now)
	}
	if stored.Expired(now) {
		return nil, ErrTokenExpired
	}

	var pair *dto.TokenPair
	err = s.tx.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		won, err := repos.RefreshTokens.MarkRotated(ctx, stored.ID, now)
		if err != nil {
			return fmt.Errorf("rotate refresh token: %w", err)
		}
		if !won {
			return errRotationLost
		}
		pair, err = s.issuePair(ctx, repos.RefreshTokens, stored.AccountID, stored.FamilyID)
		return err
	})
	if errors.Is(err, errRotationLost) {
		return nil, s.reused(ctx, stored, now)
	}
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *TokenService) reused(ctx context.Context, stored *entity.RefreshToken, now time.Time) error {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": stored.AccountID,
		"family_id":  stored.FamilyID,
	})
	revoked, err := s.store.RevokeFamily(ctx, stored.FamilyID, now)
	if err != nil {
		logger.WithError(err).Error("Failed to revoke refresh token family after reuse")
		return fmt.Errorf("revoke refresh token family: %w", err)
	}
	logger.WithField("revoked", revoked).Warn("Refresh token reuse detected, family revoked")
	return ErrTokenReused
}

// RevokeAll revokes every outstanding refresh token of the account.
func (s *TokenService) RevokeAll(ctx context.Context, accountID string) (int64, error) {
	return s.revokeAll(ctx, s.store, accountID, s.now())
}

func (s *TokenService) revokeAll(ctx context.Context, store refreshTokenStore, accountID string, at time.Time) (int64, error) {
	revoked, err := store.RevokeAllForAccount(ctx, accountID, at)
	if err != nil {
		return 0, fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return revoked, nil
}

// RevokeFamily revokes the family token belongs to. Unknown tokens are ignored.
func (s *TokenService) RevokeFamily(ctx context.Context, token string) error {
	stored, err := s.store.FindByHash(ctx, hashToken(token))
	if err != nil {
		return fmt.Errorf("find refresh token: %w", err)
	}
	if stored == nil {
		return nil
	}
	if _, err = s.store.RevokeFamily(ctx, stored.FamilyID, s.now()); err != nil {
		return fmt.Errorf("revoke refresh token family: %w", err)
	}
	return nil
}

func (s *TokenService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.store.DeleteExpired(ctx, s.now())
}

func randomToken(random io.Reader) (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
