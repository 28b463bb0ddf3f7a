package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"

	"github.com/sirupsen/logrus"
)

type VerificationConfig struct {
	VerifyEmailTTL   time.Duration
	ResetPasswordTTL time.Duration
}

type verificationTokenStore interface {
	Create(ctx context.Context, token *entity.VerificationToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.VerificationToken, error)
	MarkConsumed(ctx context.Context, id string, at time.Time) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// VerificationManager issues and consumes single-use email verification and
// password reset tokens.
type VerificationManager struct {
	cfg    VerificationConfig
	store  verificationTokenStore
	now    func() time.Time
	random io.Reader
}

func NewVerificationManager(cfg VerificationConfig, store verificationTokenStore, opts ...Option) (*VerificationManager, error) {
	if cfg.VerifyEmailTTL <= 0 || cfg.ResetPasswordTTL <= 0 {
		return nil, errors.New("verification token lifetimes must be positive")
	}
	o := buildOptions(opts)
	return &VerificationManager{cfg: cfg, store: store, now: o.now, random: o.random}, nil
}

func (m *VerificationManager) ttl(purpose entity.Purpose) time.Duration {
	if purpose == entity.PurposeResetPassword {
		return m.cfg.ResetPasswordTTL
	}
	return m.cfg.VerifyEmailTTL
}

// Issue creates a token for purpose. Earlier tokens stay valid; each one can be
// consumed once.
func (m *VerificationManager) Issue(ctx context.Context, accountID string, purpose entity.Purpose) (*entity.VerificationToken, error) {
	if !purpose.Valid() {
		return nil, fmt.Errorf("%w: unknown token purpose %q", ErrValidation, purpose)
	}

	raw, err := randomToken(m.random)
	if err != nil {
		return nil, err
	}

	now := m.now()
	token := &entity.VerificationToken{
		AccountID: accountID,
		Purpose:   purpose,
		TokenHash: hashToken(raw),
		ExpiresAt: now.Add(m.ttl(purpose)),
		CreatedAt: now,
	}
	if err = m.store.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("store verification token: %w", err)
	}

	token.Token = raw
	return token, nil
}

// Consume marks the token used and returns its account. Expiry is exclusive:
// a token presented at its expiry instant is expired.
func (m *VerificationManager) Consume(ctx context.Context, token string, purpose entity.Purpose) (string, error) {
	stored, err := m.lookup(ctx, token, purpose)
	if err != nil {
		return "", err
	}
	if err = m.consume(ctx, m.store, stored); err != nil {
		return "", err
	}
	return stored.AccountID, nil
}

// lookup returns the stored token when it could still be consumed for purpose.
func (m *VerificationManager) lookup(ctx context.Context, token string, purpose entity.Purpose) (*entity.VerificationToken, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	stored, err := m.store.FindByHash(ctx, hashToken(token))
	if err != nil {
		return nil, fmt.Errorf("find verification token: %w", err)
	}

	logger := logrus.WithField("purpose", purpose)
	if stored == nil {
		logger.Debug("Verification token not found")
		return nil, ErrTokenInvalid
	}
	logger = logger.WithField("account_id", stored.AccountID)
	if stored.Purpose != purpose {
		logger.WithField("token_purpose", stored.Purpose).Warn("Verification token presented for the wrong purpose")
		return nil, ErrTokenInvalid
	}
	if stored.Consumed() {
		logger.Info("Verification token already consumed")
		return nil, ErrTokenConsumed
	}
	if stored.Expired(m.now()) {
		logger.Info("Verification token expired")
		return nil, ErrTokenExpired
	}
	return stored, nil
}

// consume spends a token returned by lookup through store, which may be bound
// to the caller's transaction.
func (m *VerificationManager) consume(ctx context.Context, store verificationTokenStore, stored *entity.VerificationToken) error {
	won, err := store.MarkConsumed(ctx, stored.ID, m.now())
	if err != nil {
		return fmt.Errorf("consume verification token: %w", err)
	}
	if !won {
		logrus.WithFields(logrus.Fields{
			"purpose":    stored.Purpose,
			"account_id": stored.AccountID,
		}).Info("Verification token consumed concurrently")
		return ErrTokenConsumed
	}
	return nil
}

func (m *VerificationManager) PurgeExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx, m.now())
}
