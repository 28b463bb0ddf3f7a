package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/repository"
	"github.com/vibast-solutions/ms-go-authn/app/repository/repositorytest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markRotatedQuery  = `(?s)UPDATE refresh_tokens SET rotated_at = \?\s+WHERE id = \? AND rotated_at IS NULL AND revoked_at IS NULL`
	markConsumedQuery = `(?s)UPDATE verification_tokens SET consumed_at = \? WHERE id = \? AND consumed_at IS NULL`
	revokeFamilyQuery = `(?s)UPDATE refresh_tokens SET revoked_at = \$1 WHERE family_id = \$2 AND revoked_at IS NULL`
)

func TestRefreshTokenRepository_MarkRotated(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewRefreshTokenRepository(db, repository.DialectMySQL)
	at := time.UnixMilli(1_700_000_000_000)

	mock.ExpectExec(markRotatedQuery).
		WithArgs(at.UnixMilli(), "token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(markRotatedQuery).
		WithArgs(at.UnixMilli(), "token-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := repo.MarkRotated(context.Background(), "token-1", at)
	if err != nil {
		t.Fatalf("mark rotated failed: %v", err)
	}
	if !won {
		t.Fatalf("expected first rotation to win")
	}

	won, err = repo.MarkRotated(context.Background(), "token-1", at)
	if err != nil {
		t.Fatalf("mark rotated failed: %v", err)
	}
	if won {
		t.Fatalf("expected second rotation to lose")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRefreshTokenRepository_RevokeFamilyPostgres(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewRefreshTokenRepository(db, repository.DialectPostgres)
	at := time.UnixMilli(1_700_000_000_000)

	mock.ExpectExec(revokeFamilyQuery).
		WithArgs(at.UnixMilli(), "family-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	revoked, err := repo.RevokeFamily(context.Background(), "family-1", at)
	if err != nil {
		t.Fatalf("revoke family failed: %v", err)
	}
	if revoked != 3 {
		t.Fatalf("expected 3 revoked tokens, got %d", revoked)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerificationTokenRepository_MarkConsumed(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewVerificationTokenRepository(db, repository.DialectSQLite)
	at := time.UnixMilli(1_700_000_000_000)

	mock.ExpectExec(markConsumedQuery).
		WithArgs(at.UnixMilli(), "token-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := repo.MarkConsumed(context.Background(), "token-1", at)
	if err != nil {
		t.Fatalf("mark consumed failed: %v", err)
	}
	if won {
		t.Fatalf("expected consumption to lose")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func createAccount(t *testing.T, repo *repository.AccountRepository, username string) *entity.Account {
	t.Helper()

	now := time.Now().UTC()
	account := &entity.Account{
		Username:          username,
		CanonicalUsername: username,
		Email:             username + "@example.com",
		CanonicalEmail:    username + "@example.com",
		PasswordHash:      "hash",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestSQLite_AccountUniqueness(t *testing.T) {
	db := repositorytest.NewSQLite(t)
	repo := repository.NewAccountRepository(db, repository.DialectSQLite)
	ctx := context.Background()

	account := createAccount(t, repo, "alice")

	dupUsername := &entity.Account{
		Username:          "ALICE",
		CanonicalUsername: "alice",
		Email:             "other@example.com",
		CanonicalEmail:    "other@example.com",
		PasswordHash:      "hash",
	}
	assert.ErrorIs(t, repo.Create(ctx, dupUsername), repository.ErrDuplicate)

	dupEmail := &entity.Account{
		Username:          "bob",
		CanonicalUsername: "bob",
		Email:             "Alice@Example.com",
		CanonicalEmail:    "alice@example.com",
		PasswordHash:      "hash",
	}
	assert.ErrorIs(t, repo.Create(ctx, dupEmail), repository.ErrDuplicate)

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.AccountStatePendingVerification, found.State())

	verifiedAt := time.Now().UTC()
	require.NoError(t, repo.MarkVerified(ctx, account.ID, verifiedAt))
	require.NoError(t, repo.MarkVerified(ctx, account.ID, verifiedAt.Add(time.Hour)))

	found, err = repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found.VerifiedAt)
	assert.True(t, found.EmailVerified)
	assert.Equal(t, verifiedAt.UnixMilli(), found.VerifiedAt.UnixMilli())
}

func TestSQLite_ConcurrentRotationHasOneWinner(t *testing.T) {
	db := repositorytest.NewSQLite(t)
	accounts := repository.NewAccountRepository(db, repository.DialectSQLite)
	tokens := repository.NewRefreshTokenRepository(db, repository.DialectSQLite)
	ctx := context.Background()

	account := createAccount(t, accounts, "alice")
	now := time.Now().UTC()
	token := &entity.RefreshToken{
		AccountID: account.ID,
		FamilyID:  "family-1",
		TokenHash: "hash-1",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, tokens.Create(ctx, token))

	const workers = 16
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := tokens.MarkRotated(ctx, token.ID, time.Now())
			if err == nil && won {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	stored, err := tokens.FindByHash(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Spent())
}

func TestSQLite_RevokeAndPurgeRefreshTokens(t *testing.T) {
	db := repositorytest.NewSQLite(t)
	accounts := repository.NewAccountRepository(db, repository.DialectSQLite)
	tokens := repository.NewRefreshTokenRepository(db, repository.DialectSQLite)
	ctx := context.Background()

	account := createAccount(t, accounts, "alice")
	now := time.Now().UTC()
	for i, hash := range []string{"live-1", "live-2", "expired"} {
		expiresAt := now.Add(time.Hour)
		if hash == "expired" {
			expiresAt = now.Add(-time.Minute)
		}
		require.NoError(t, tokens.Create(ctx, &entity.RefreshToken{
			AccountID: account.ID,
			FamilyID:  []string{"family-a", "family-b", "family-b"}[i],
			TokenHash: hash,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}))
	}

	revoked, err := tokens.RevokeFamily(ctx, "family-b", now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), revoked)

	revoked, err = tokens.RevokeAllForAccount(ctx, account.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), revoked)

	purged, err := tokens.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	gone, err := tokens.FindByHash(ctx, "expired")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSQLite_ConcurrentConsumptionHasOneWinner(t *testing.T) {
	db := repositorytest.NewSQLite(t)
	accounts := repository.NewAccountRepository(db, repository.DialectSQLite)
	tokens := repository.NewVerificationTokenRepository(db, repository.DialectSQLite)
	ctx := context.Background()

	account := createAccount(t, accounts, "alice")
	now := time.Now().UTC()
	token := &entity.VerificationToken{
		AccountID: account.ID,
		Purpose:   entity.PurposeVerifyEmail,
		TokenHash: "verify-hash",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, tokens.Create(ctx, token))

	const workers = 16
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := tokens.MarkConsumed(ctx, token.ID, time.Now())
			if err == nil && won {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	stored, err := tokens.FindByHash(ctx, "verify-hash")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Consumed())
	assert.Equal(t, entity.PurposeVerifyEmail, stored.Purpose)
}
