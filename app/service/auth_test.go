package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/ratelimit"
	"github.com/vibast-solutions/ms-go-authn/app/service"
	"github.com/vibast-solutions/ms-go-authn/app/service/servicetest"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRedis(t *testing.T) redis.UniversalClient {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSignUp_CreatesPendingAccountAndBlocksSignIn(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	res, err := s.Auth.SignUp(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccountID)
	assert.Equal(t, service.MessageSignUp, res.Message)

	account, err := s.Accounts.FindByID(ctx, res.AccountID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, entity.AccountStatePendingVerification, account.State())
	assert.True(t, strings.HasPrefix(account.PasswordHash, "$argon2id$"))
	assert.NotContains(t, account.PasswordHash, "secret1")
	assert.Equal(t, 1, s.Notifier.Count(entity.PurposeVerifyEmail))

	_, err = s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrAccountNotVerified)

	_, err = s.Auth.SignIn(ctx, "alice@x.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials, "an unverified account with a wrong password looks like any other failure")
}

func TestSignUp_Validation(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@x.com", "secret1"},
		{"short username", "ab", "a@x.com", "secret1"},
		{"bad username chars", "al ice", "a@x.com", "secret1"},
		{"empty email", "alice", "", "secret1"},
		{"malformed email", "alice", "not-an-email", "secret1"},
		{"display name email", "alice", "Alice <alice@x.com>", "secret1"},
		{"oversized email", "alice", strings.Repeat("a", 64) + "@" + strings.Repeat("b", 200) + ".com", "secret1"},
		{"empty password", "alice", "a@x.com", ""},
		{"short password", "alice", "a@x.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Auth.SignUp(ctx, tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
	assert.Zero(t, s.Notifier.Count(entity.PurposeVerifyEmail))
}

func TestSignUp_DuplicateIsCaseInsensitive(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	_, err := s.Auth.SignUp(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = s.Auth.SignUp(ctx, "alice", "other@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrDuplicate)

	_, err = s.Auth.SignUp(ctx, "bob", "ALICE@X.COM", "secret1")
	assert.ErrorIs(t, err, service.ErrDuplicate)

	_, err = s.Auth.SignUp(ctx, "carol", "carol.smith+news@gmail.com", "secret1")
	require.NoError(t, err)
	_, err = s.Auth.SignUp(ctx, "carol2", "CarolSmith@gmail.com", "secret1")
	assert.ErrorIs(t, err, service.ErrDuplicate)
}

func TestCheckAvailability(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	_, err := s.Auth.SignUp(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	cases := []struct {
		name      string
		field     service.Field
		value     string
		available bool
	}{
		{"taken username any case", service.FieldUsername, "ALICE", false},
		{"free username", service.FieldUsername, "bob", true},
		{"malformed username", service.FieldUsername, "b", false},
		{"taken email", service.FieldEmail, "Alice@X.com", false},
		{"free email", service.FieldEmail, "bob@x.com", true},
		{"malformed email", service.FieldEmail, "bob@", false},
		{"unknown field", service.FieldUnspecified, "bob", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			available, err := s.Auth.CheckAvailability(ctx, tc.field, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.available, available)
		})
	}
}

func TestSignUpVerifySignInScenario(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	res, err := s.Auth.SignUp(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccountID)

	err = s.Auth.VerifyEmail(ctx, "wrong-token")
	assert.True(t, service.IsTokenError(err), "expected token error, got %v", err)

	token := s.Notifier.LastToken(t, entity.PurposeVerifyEmail)
	require.NoError(t, s.Auth.VerifyEmail(ctx, token))

	account, err := s.Accounts.FindByID(ctx, res.AccountID)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStateActive, account.State())

	err = s.Auth.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenConsumed)

	pair, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, res.AccountID, pair.AccountID)

	_, err = s.Auth.SignIn(ctx, "alice@x.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	_, err := s.Auth.SignUp(ctx, "late", "late@x.com", "secret1")
	require.NoError(t, err)

	s.Clock.Advance(servicetest.VerifyTTL)
	err = s.Auth.VerifyEmail(ctx, s.Notifier.LastToken(t, entity.PurposeVerifyEmail))
	assert.ErrorIs(t, err, service.ErrTokenExpired)

	assert.ErrorIs(t, s.Auth.VerifyEmail(ctx, ""), service.ErrTokenInvalid)
}

func TestVerifyEmail_FailedActivationKeepsToken(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	res, err := s.Auth.SignUp(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	token := s.Notifier.LastToken(t, entity.PurposeVerifyEmail)

	restore := s.FailWrites(t, "UPDATE", "accounts")
	assert.ErrorIs(t, s.Auth.VerifyEmail(ctx, token), service.ErrTransient)
	restore()

	require.NoError(t, s.Auth.VerifyEmail(ctx, token), "the token survives a failed activation")
	account, err := s.Accounts.FindByID(ctx, res.AccountID)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStateActive, account.State())
}

func TestSignIn_UnknownEmailAndWrongPasswordMatch(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	_, unknownErr := s.Auth.SignIn(ctx, "nobody@x.com", "secret1")
	_, wrongErr := s.Auth.SignIn(ctx, "alice@x.com", "not-it")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.ErrorIs(t, unknownErr, service.ErrInvalidCredentials)
}

func TestSignIn_Throttled(t *testing.T) {
	limiter := ratelimit.NewRedisLimiter(newRedis(t), ratelimit.Rule{Prefix: "signin", MaxAttempts: 2, Window: time.Minute})
	s := servicetest.New(t, service.WithLimiters(limiter, nil))
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	for i := 0; i < 2; i++ {
		_, err := s.Auth.SignIn(ctx, "alice@x.com", "bad-password")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	}

	_, err := s.Auth.SignIn(ctx, "Alice@X.com", "secret1")
	assert.ErrorIs(t, err, service.ErrRateLimited)
}

func TestSignIn_SuccessResetsThrottle(t *testing.T) {
	limiter := ratelimit.NewRedisLimiter(newRedis(t), ratelimit.Rule{Prefix: "signin", MaxAttempts: 2, Window: time.Minute})
	s := servicetest.New(t, service.WithLimiters(limiter, nil))
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	_, err := s.Auth.SignIn(ctx, "alice@x.com", "bad-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = s.Auth.SignIn(ctx, "alice@x.com", "bad-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	assert.NoError(t, err)
}

func TestSignIn_UpgradesLegacyHash(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	verifiedAt := servicetest.Base
	account := &entity.Account{
		Username:          "legacy",
		CanonicalUsername: "legacy",
		Email:             "legacy@x.com",
		CanonicalEmail:    "legacy@x.com",
		PasswordHash:      string(legacy),
		EmailVerified:     true,
		VerifiedAt:        &verifiedAt,
		CreatedAt:         servicetest.Base,
		UpdatedAt:         servicetest.Base,
	}
	require.NoError(t, s.Accounts.Create(ctx, account))

	_, err = s.Auth.SignIn(ctx, "legacy@x.com", "secret1")
	require.NoError(t, err)

	stored, err := s.Accounts.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))

	_, err = s.Auth.SignIn(ctx, "legacy@x.com", "secret1")
	assert.NoError(t, err)
}

func TestSignIn_HashUpgradeYieldsToPasswordReset(t *testing.T) {
	var (
		holding = true
		held    []func()
	)
	runner := func(task func()) {
		if holding {
			held = append(held, task)
			return
		}
		task()
	}
	s := servicetest.New(t, service.WithAsyncRunner(runner))
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	verifiedAt := servicetest.Base
	require.NoError(t, s.Accounts.Create(ctx, &entity.Account{
		Username:          "legacy",
		CanonicalUsername: "legacy",
		Email:             "legacy@x.com",
		CanonicalEmail:    "legacy@x.com",
		PasswordHash:      string(legacy),
		EmailVerified:     true,
		VerifiedAt:        &verifiedAt,
		CreatedAt:         servicetest.Base,
		UpdatedAt:         servicetest.Base,
	}))

	_, err = s.Auth.SignIn(ctx, "legacy@x.com", "secret1")
	require.NoError(t, err)
	require.Len(t, held, 1)
	holding = false

	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "legacy@x.com"))
	require.NoError(t, s.Auth.ResetPassword(ctx, s.Notifier.LastToken(t, entity.PurposeResetPassword), "newpass1"))

	held[0]()

	_, err = s.Auth.SignIn(ctx, "legacy@x.com", "newpass1")
	assert.NoError(t, err)
	_, err = s.Auth.SignIn(ctx, "legacy@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefreshToken_StoreFailureIsRetryable(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	pair, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	restore := s.FailWrites(t, "INSERT", "refresh_tokens")
	_, err = s.Auth.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrTransient)
	restore()

	rotated, err := s.Auth.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	_, err = s.Auth.RefreshToken(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshToken_RotatesAndCollapsesErrors(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	pair, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	rotated, err := s.Auth.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	_, err = s.Auth.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.Auth.RefreshToken(ctx, rotated.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials, "reuse revokes the family")

	_, err = s.Auth.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.Auth.RefreshToken(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefreshToken_ConcurrentCallsHaveOneWinner(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	pair, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	const callers = 10
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		failures  atomic.Int32
		start     = make(chan struct{})
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, refreshErr := s.Auth.RefreshToken(ctx, pair.RefreshToken)
			switch {
			case refreshErr == nil:
				successes.Add(1)
			case errors.Is(refreshErr, service.ErrInvalidCredentials):
				failures.Add(1)
			default:
				t.Errorf("unexpected refresh error: %v", refreshErr)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(callers-1), failures.Load())
}

func TestRequestPasswordReset_ResponseDoesNotRevealAccount(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	unknownErr := s.Auth.RequestPasswordReset(ctx, "nobody@x.com")
	knownErr := s.Auth.RequestPasswordReset(ctx, "alice@x.com")

	assert.NoError(t, unknownErr)
	assert.NoError(t, knownErr)
	assert.Equal(t, 1, s.Notifier.Count(entity.PurposeResetPassword))

	assert.ErrorIs(t, s.Auth.RequestPasswordReset(ctx, " "), service.ErrValidation)
}

func TestRequestPasswordReset_Throttled(t *testing.T) {
	limiter := ratelimit.NewRedisLimiter(newRedis(t), ratelimit.Rule{Prefix: "reset", MaxAttempts: 2, Window: time.Hour})
	s := servicetest.New(t, service.WithLimiters(nil, limiter))
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Auth.RequestPasswordReset(ctx, "alice@x.com"))
	}
	assert.Equal(t, 2, s.Notifier.Count(entity.PurposeResetPassword))
}

func TestRequestPasswordReset_UnknownEmailCountsTowardLimit(t *testing.T) {
	client := newRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Rule{Prefix: "reset", MaxAttempts: 5, Window: time.Hour})
	s := servicetest.New(t, service.WithLimiters(nil, limiter))
	ctx := context.Background()

	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "Nobody@X.com"))
	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "nobody@x.com"))

	count, err := client.Get(ctx, "authn:rl:reset:reset:nobody@x.com").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestResetPassword_FailedRevocationRollsBack(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	before, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "alice@x.com"))
	resetToken := s.Notifier.LastToken(t, entity.PurposeResetPassword)

	restore := s.FailWrites(t, "UPDATE", "refresh_tokens")
	assert.ErrorIs(t, s.Auth.ResetPassword(ctx, resetToken, "newpass1"), service.ErrTransient)
	restore()

	_, err = s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err, "the password is unchanged after the rollback")

	require.NoError(t, s.Auth.ResetPassword(ctx, resetToken, "newpass1"), "the reset token is still usable")
	_, err = s.Auth.RefreshToken(ctx, before.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = s.Auth.SignIn(ctx, "alice@x.com", "newpass1")
	assert.NoError(t, err)
}

func TestResetPassword_RevokesRefreshTokens(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	first, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	second, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "alice@x.com"))
	resetToken := s.Notifier.LastToken(t, entity.PurposeResetPassword)

	require.NoError(t, s.Auth.ResetPassword(ctx, resetToken, "newpass1"))

	_, err = s.Auth.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = s.Auth.RefreshToken(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = s.Auth.SignIn(ctx, "alice@x.com", "newpass1")
	assert.NoError(t, err)

	err = s.Auth.ResetPassword(ctx, resetToken, "another1")
	assert.ErrorIs(t, err, service.ErrTokenConsumed)
}

func TestResetPassword_Validation(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "alice@x.com"))
	resetToken := s.Notifier.LastToken(t, entity.PurposeResetPassword)

	assert.ErrorIs(t, s.Auth.ResetPassword(ctx, "", "newpass1"), service.ErrValidation)
	assert.ErrorIs(t, s.Auth.ResetPassword(ctx, resetToken, "123"), service.ErrValidation)
	assert.True(t, service.IsTokenError(s.Auth.ResetPassword(ctx, "unknown", "newpass1")))

	assert.NoError(t, s.Auth.ResetPassword(ctx, resetToken, "newpass1"), "a rejected weak password leaves the token usable")
}

func TestResetPassword_VerifyTokenCannotReset(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	_, err := s.Auth.SignUp(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	err = s.Auth.ResetPassword(ctx, s.Notifier.LastToken(t, entity.PurposeVerifyEmail), "newpass1")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestValidateAccessToken_RevocationCutoff(t *testing.T) {
	s := servicetest.New(t, service.WithRevocationList(ratelimit.NewRedisRevocationList(newRedis(t))))
	ctx := context.Background()
	accountID := s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	before, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	claims, err := s.Auth.ValidateAccessToken(ctx, before.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)

	s.Clock.Advance(time.Minute)
	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "alice@x.com"))
	require.NoError(t, s.Auth.ResetPassword(ctx, s.Notifier.LastToken(t, entity.PurposeResetPassword), "newpass1"))

	_, err = s.Auth.ValidateAccessToken(ctx, before.AccessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	after, err := s.Auth.SignIn(ctx, "alice@x.com", "newpass1")
	require.NoError(t, err)
	_, err = s.Auth.ValidateAccessToken(ctx, after.AccessToken)
	assert.NoError(t, err)
}

func TestResendVerification(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()

	_, err := s.Auth.SignUp(ctx, "pending", "pending@x.com", "secret1")
	require.NoError(t, err)
	s.ActiveAccount(t, "active", "active@x.com", "secret1")
	require.Equal(t, 2, s.Notifier.Count(entity.PurposeVerifyEmail))

	require.NoError(t, s.Auth.ResendVerification(ctx, "pending@x.com"))
	require.NoError(t, s.Auth.ResendVerification(ctx, "active@x.com"))
	require.NoError(t, s.Auth.ResendVerification(ctx, "nobody@x.com"))
	assert.Equal(t, 3, s.Notifier.Count(entity.PurposeVerifyEmail))

	require.NoError(t, s.Auth.VerifyEmail(ctx, s.Notifier.LastToken(t, entity.PurposeVerifyEmail)))
	_, err = s.Auth.SignIn(ctx, "pending@x.com", "secret1")
	assert.NoError(t, err)
}

func TestSignOut_RevokesFamily(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	pair, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	other, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, s.Auth.SignOut(ctx, pair.RefreshToken))
	require.NoError(t, s.Auth.SignOut(ctx, "unknown-token"))
	assert.ErrorIs(t, s.Auth.SignOut(ctx, ""), service.ErrValidation)

	_, err = s.Auth.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = s.Auth.RefreshToken(ctx, other.RefreshToken)
	assert.NoError(t, err)
}

func TestPurgeExpired(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	s.ActiveAccount(t, "alice", "alice@x.com", "secret1")

	_, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, s.Auth.RequestPasswordReset(ctx, "alice@x.com"))

	s.Clock.Advance(servicetest.RefreshTTL)
	refresh, verification, err := s.Auth.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), refresh)
	assert.Equal(t, int64(2), verification)
}

func TestStoreFailureIsTransient(t *testing.T) {
	s := servicetest.New(t)
	ctx := context.Background()
	require.NoError(t, s.DB.Close())

	_, err := s.Auth.SignIn(ctx, "alice@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrTransient)

	_, err = s.Auth.CheckAvailability(ctx, service.FieldEmail, "alice@x.com")
	assert.ErrorIs(t, err, service.ErrTransient)

	err = s.Auth.RequestPasswordReset(ctx, "alice@x.com")
	assert.ErrorIs(t, err, service.ErrTransient)
}

func TestDeadlineIsTransient(t *testing.T) {
	s := servicetest.New(t, service.WithOperationTimeout(time.Nanosecond))

	_, err := s.Auth.SignUp(context.Background(), "slow", "slow@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrTransient)
}
