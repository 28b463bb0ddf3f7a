package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/dto"
	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/notifier"
	"github.com/vibast-solutions/ms-go-authn/app/ratelimit"
	"github.com/vibast-solutions/ms-go-authn/app/repository"
	"github.com/vibast-solutions/ms-go-authn/config"

	"github.com/sirupsen/logrus"
)

const defaultOperationTimeout = 5 * time.Second

// Field names the identifier probed by CheckAvailability.
type Field int

const (
	FieldUnspecified Field = iota
	FieldUsername
	FieldEmail
)

type accountStore interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, canonicalEmail string) (*entity.Account, error)
	FindByUsername(ctx context.Context, canonicalUsername string) (*entity.Account, error)
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	ReplacePasswordHash(ctx context.Context, id, currentHash, passwordHash string, at time.Time) (bool, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
	VerifyDummy(password string)
	NeedsUpgrade(encodedHash string) bool
}

// Authenticator is the surface the gRPC and HTTP transports depend on.
type Authenticator interface {
	CheckAvailability(ctx context.Context, field Field, value string) (bool, error)
	SignUp(ctx context.Context, username, email, password string) (*dto.SignUpResult, error)
	VerifyEmail(ctx context.Context, token string) error
	SignIn(ctx context.Context, email, password string) (*dto.TokenPair, error)
	RefreshToken(ctx context.Context, token string) (*dto.TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ResendVerification(ctx context.Context, email string) error
	ValidateAccessToken(ctx context.Context, token string) (*AccessClaims, error)
	SignOut(ctx context.Context, refreshToken string) error
}

var _ Authenticator = (*AuthService)(nil)

type AsyncRunner func(task func())

type AuthServiceOption func(*AuthService)

// AuthService composes the store, token service and verification flows into
// the account lifecycle operations.
type AuthService struct {
	accounts      accountStore
	tx            Transactor
	tokens        *TokenService
	verifications *VerificationManager
	hasher        passwordHasher
	policy        config.PasswordPolicy

	notifier       notifier.Notifier
	signInLimiter  ratelimit.Limiter
	resetLimiter   ratelimit.Limiter
	revocations    ratelimit.RevocationList
	verifyEmailURL string
	resetURL       string
	timeout        time.Duration
	now            func() time.Time
	asyncRunner    AsyncRunner
}

func NewAuthService(
	accounts accountStore,
	tx Transactor,
	tokens *TokenService,
	verifications *VerificationManager,
	hasher passwordHasher,
	policy config.PasswordPolicy,
	opts ...AuthServiceOption,
) *AuthService {
	svc := &AuthService{
		accounts:      accounts,
		tx:            tx,
		tokens:        tokens,
		verifications: verifications,
		hasher:        hasher,
		policy:        policy,
		notifier:      notifier.NewLogNotifier(nil),
		signInLimiter: ratelimit.Noop{},
		resetLimiter:  ratelimit.Noop{},
		revocations:   ratelimit.NoopRevocationList{},
		timeout:       defaultOperationTimeout,
		now:           time.Now,
		asyncRunner: func(task func()) {
			go task()
		},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func WithAsyncRunner(runner AsyncRunner) AuthServiceOption {
	return func(s *AuthService) {
		if runner != nil {
			s.asyncRunner = runner
		}
	}
}

func WithNotifier(n notifier.Notifier) AuthServiceOption {
	return func(s *AuthService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLinks sets the base URLs the verification and reset tokens are appended to.
func WithLinks(verifyEmailURL, resetPasswordURL string) AuthServiceOption {
	return func(s *AuthService) {
		s.verifyEmailURL = verifyEmailURL
		s.resetURL = resetPasswordURL
	}
}

func WithLimiters(signIn, reset ratelimit.Limiter) AuthServiceOption {
	return func(s *AuthService) {
		if signIn != nil {
			s.signInLimiter = signIn
		}
		if reset != nil {
			s.resetLimiter = reset
		}
	}
}

func WithRevocationList(list ratelimit.RevocationList) AuthServiceOption {
	return func(s *AuthService) {
		if list != nil {
			s.revocations = list
		}
	}
}

func WithOperationTimeout(timeout time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func WithServiceClock(now func() time.Time) AuthServiceOption {
	return func(s *AuthService) {
		if now != nil {
			s.now = now
		}
	}
}

// CheckAvailability reports whether value is free for field. Malformed values
// are simply unavailable.
func (s *AuthService) CheckAvailability(ctx context.Context, field Field, value string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		account *entity.Account
		err     error
	)
	switch field {
	case FieldUsername:
		if ValidateUsername(value) != nil {
			return false, nil
		}
		account, err = s.accounts.FindByUsername(ctx, CanonicalizeUsername(value))
	case FieldEmail:
		if ValidateEmail(value) != nil {
			return false, nil
		}
		account, err = s.accounts.FindByEmail(ctx, CanonicalizeEmail(value))
	default:
		return false, nil
	}
	if err != nil {
		return false, s.transient(ctx, err)
	}
	return account == nil, nil
}

func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*dto.SignUpResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if err := s.policy.Validate(password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, s.transient(ctx, fmt.Errorf("hash password: %w", err))
	}

	now := s.now()
	account := &entity.Account{
		Username:          username,
		CanonicalUsername: CanonicalizeUsername(username),
		Email:             email,
		CanonicalEmail:    CanonicalizeEmail(email),
		PasswordHash:      hash,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err = s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, s.transient(ctx, err)
	}

	s.dispatch(ctx, account, entity.PurposeVerifyEmail)

	return &dto.SignUpResult{
		AccountID: account.ID,
		Message:   MessageSignUp,
	}, nil
}

// VerifyEmail consumes a verify-email token and activates its account.
// Activating an already active account is a no-op.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stored, err := s.verifications.lookup(ctx, token, entity.PurposeVerifyEmail)
	if err != nil {
		return s.transient(ctx, err)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		if err := s.verifications.consume(ctx, repos.VerificationTokens, stored); err != nil {
			return err
		}
		return repos.Accounts.MarkVerified(ctx, stored.AccountID, s.now())
	})
	if err != nil {
		return s.transient(ctx, err)
	}

	logrus.WithField("account_id", stored.AccountID).Info("Email verified")
	return nil
}

// SignIn answers identically for unknown emails and wrong passwords. The
// verification check runs only once the password has matched.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*dto.TokenPair, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := CanonicalizeEmail(email)
	logger := logrus.WithField("email", key)

	if err := s.signInLimiter.Check(ctx, key); err != nil {
		if errors.Is(err, ratelimit.ErrRateLimited) {
			logger.Warn("Sign-in throttled")
			return nil, ErrRateLimited
		}
		logger.WithError(err).Warn("Sign-in limiter unavailable, continuing")
	}

	account, err := s.accounts.FindByEmail(ctx, key)
	if err != nil {
		return nil, s.transient(ctx, err)
	}
	if account == nil {
		s.hasher.VerifyDummy(password)
		s.recordSignInFailure(ctx, key)
		logger.Info("Sign-in failed: unknown email")
		return nil, ErrInvalidCredentials
	}

	logger = logger.WithField("account_id", account.ID)
	matched, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		logger.WithError(err).Error("Stored password hash is unreadable")
		return nil, ErrInvalidCredentials
	}
	if !matched {
		s.recordSignInFailure(ctx, key)
		logger.Info("Sign-in failed: password mismatch")
		return nil, ErrInvalidCredentials
	}
	if !account.EmailVerified {
		return nil, ErrAccountNotVerified
	}

	if err = s.signInLimiter.Reset(ctx, key); err != nil {
		logger.WithError(err).Warn("Failed to reset sign-in counter")
	}
	if s.hasher.NeedsUpgrade(account.PasswordHash) {
		s.upgradeHash(ctx, account.ID, account.PasswordHash, password)
	}

	pair, err := s.tokens.IssuePair(ctx, account.ID, "")
	if err != nil {
		return nil, s.transient(ctx, err)
	}
	return pair, nil
}

// RefreshToken rotates a refresh token. Every token failure collapses into
// ErrInvalidCredentials.
func (s *AuthService) RefreshToken(ctx context.Context, token string) (*dto.TokenPair, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pair, err := s.tokens.RotateRefreshToken(ctx, token)
	if err != nil {
		if IsTokenError(err) {
			logrus.WithError(err).Info("Refresh token rejected")
			return nil, ErrInvalidCredentials
		}
		return nil, s.transient(ctx, err)
	}
	return pair, nil
}

// RequestPasswordReset always succeeds from the caller's point of view unless
// the account lookup itself fails. The limiter runs for unknown emails too.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := CanonicalizeEmail(email)
	logger := logrus.WithField("email", key)

	if !s.allowReset(ctx, "reset:"+key, logger) {
		return nil
	}

	account, err := s.accounts.FindByEmail(ctx, key)
	if err != nil {
		return s.transient(ctx, err)
	}
	if account == nil {
		logger.Info("Password reset requested for unknown email")
		return nil
	}

	s.dispatch(ctx, account, entity.PurposeResetPassword)
	return nil
}

// ResetPassword consumes the token, replaces the password and revokes every
// refresh token in one transaction, then cuts off access tokens issued
// before now.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: reset token is required", ErrValidation)
	}
	if err := s.policy.Validate(newPassword); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stored, err := s.verifications.lookup(ctx, token, entity.PurposeResetPassword)
	if err != nil {
		return s.transient(ctx, err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return s.transient(ctx, fmt.Errorf("hash password: %w", err))
	}

	accountID := stored.AccountID
	now := s.now()
	var revoked int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		err := s.verifications.consume(ctx, repos.VerificationTokens, stored)
		if err != nil {
			return err
		}
		if err = repos.Accounts.UpdatePasswordHash(ctx, accountID, hash, now); err != nil {
			return fmt.Errorf("update password hash: %w", err)
		}
		revoked, err = s.tokens.revokeAll(ctx, repos.RefreshTokens, accountID, now)
		return err
	})
	if err != nil {
		return s.transient(ctx, err)
	}

	logger := logrus.WithField("account_id", accountID)
	if err = s.revocations.RevokeBefore(ctx, accountID, now, s.tokens.AccessTTL()); err != nil {
		logger.WithError(err).Warn("Failed to record access token cutoff")
	}

	logger.WithField("revoked_refresh_tokens", revoked).Info("Password reset")
	return nil
}

// ResendVerification issues a fresh verify-email token for pending accounts.
// Unknown and already verified emails get the same silent success.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := CanonicalizeEmail(email)
	logger := logrus.WithField("email", key)

	if !s.allowReset(ctx, "verify:"+key, logger) {
		return nil
	}

	account, err := s.accounts.FindByEmail(ctx, key)
	if err != nil {
		return s.transient(ctx, err)
	}
	if account == nil || account.EmailVerified {
		return nil
	}

	s.dispatch(ctx, account, entity.PurposeVerifyEmail)
	return nil
}

// ValidateAccessToken verifies an access token and rejects it when it was
// issued before the account's revocation cutoff.
func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (*AccessClaims, error) {
	claims, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cutoff, found, err := s.revocations.RevokedBefore(ctx, claims.AccountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", claims.AccountID).Warn("Revocation list unavailable, continuing")
		return claims, nil
	}
	// iat has second precision.
	if found && claims.IssuedAt.Before(cutoff.Truncate(time.Second)) {
		logrus.WithField("account_id", claims.AccountID).Debug("Access token issued before revocation cutoff")
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// SignOut revokes the refresh token family the token belongs to.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return fmt.Errorf("%w: refresh token is required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.tokens.RevokeFamily(ctx, refreshToken); err != nil {
		return s.transient(ctx, err)
	}
	return nil
}

// PurgeExpired deletes expired refresh and verification tokens.
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, int64, error) {
	refresh, err := s.tokens.PurgeExpired(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("purge refresh tokens: %w", err)
	}
	verification, err := s.verifications.PurgeExpired(ctx)
	if err != nil {
		return refresh, 0, fmt.Errorf("purge verification tokens: %w", err)
	}
	return refresh, verification, nil
}

func (s *AuthService) recordSignInFailure(ctx context.Context, key string) {
	err := s.signInLimiter.Increment(ctx, key)
	if err != nil && !errors.Is(err, ratelimit.ErrRateLimited) {
		logrus.WithError(err).WithField("email", key).Warn("Failed to record sign-in failure")
	}
}

func (s *AuthService) allowReset(ctx context.Context, key string, logger *logrus.Entry) bool {
	err := s.resetLimiter.Increment(ctx, key)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ratelimit.ErrRateLimited):
		logger.Warn("Token request throttled")
		return false
	default:
		logger.WithError(err).Warn("Reset limiter unavailable, continuing")
		return true
	}
}

// upgradeHash rehashes password in the background. The write is skipped when
// the stored hash changed since sign-in read it.
func (s *AuthService) upgradeHash(ctx context.Context, accountID, currentHash, password string) {
	detached := context.WithoutCancel(ctx)
	s.asyncRunner(func() {
		taskCtx, cancel := context.WithTimeout(detached, s.timeout)
		defer cancel()

		logger := logrus.WithField("account_id", accountID)
		hash, err := s.hasher.Hash(password)
		if err != nil {
			logger.WithError(err).Error("Failed to rehash password")
			return
		}
		swapped, err := s.accounts.ReplacePasswordHash(taskCtx, accountID, currentHash, hash, s.now())
		if err != nil {
			logger.WithError(err).Error("Failed to store upgraded password hash")
			return
		}
		if !swapped {
			logger.Info("Password changed before hash upgrade, skipping")
			return
		}
		logger.Info("Password hash upgraded")
	})
}

// dispatch issues a token for purpose and hands its link to the notifier
// outside the request. Failures are logged only.
func (s *AuthService) dispatch(ctx context.Context, account *entity.Account, purpose entity.Purpose) {
	detached := context.WithoutCancel(ctx)
	s.asyncRunner(func() {
		taskCtx, cancel := context.WithTimeout(detached, s.timeout)
		defer cancel()

		logger := logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"purpose":    purpose,
		})

		token, err := s.verifications.Issue(taskCtx, account.ID, purpose)
		if err != nil {
			logger.WithError(err).Error("Failed to issue verification token")
			return
		}

		base := s.verifyEmailURL
		if purpose == entity.PurposeResetPassword {
			base = s.resetURL
		}

		msg := notifier.Message{
			AccountID: account.ID,
			Email:     account.Email,
			Purpose:   purpose,
			Link:      buildLink(base, token.Token),
		}
		if err = s.notifier.Deliver(taskCtx, msg); err != nil {
			logger.WithError(err).Error("Failed to deliver verification token")
		}
	})
}

// transient passes classified errors through and turns everything else,
// including deadlines, into ErrTransient.
func (s *AuthService) transient(ctx context.Context, err error) error {
	if err == nil || isClassified(err) {
		return err
	}
	logger := logrus.WithError(err)
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger = logger.WithField("context", ctxErr.Error())
	}
	logger.Error("Store or signing operation failed")
	return fmt.Errorf("%w: %v", ErrTransient, err)
}

func buildLink(base, token string) string {
	if base == "" {
		return token
	}
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
