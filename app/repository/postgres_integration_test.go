//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgres_RepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("authn"),
		postgres.WithUsername("authn"),
		postgres.WithPassword("authn"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := repository.Open(ctx, repository.DialectPostgres, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repository.Migrate(ctx, db, repository.DialectPostgres))

	accounts := repository.NewAccountRepository(db, repository.DialectPostgres)
	refreshTokens := repository.NewRefreshTokenRepository(db, repository.DialectPostgres)
	verificationTokens := repository.NewVerificationTokenRepository(db, repository.DialectPostgres)

	now := time.Now().UTC()
	account := &entity.Account{
		Username:          "alice",
		CanonicalUsername: "alice",
		Email:             "alice@example.com",
		CanonicalEmail:    "alice@example.com",
		PasswordHash:      "hash",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, accounts.Create(ctx, account))

	duplicate := *account
	duplicate.ID = ""
	assert.ErrorIs(t, accounts.Create(ctx, &duplicate), repository.ErrDuplicate)

	found, err := accounts.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, account.ID, found.ID)

	refresh := &entity.RefreshToken{
		AccountID: account.ID,
		FamilyID:  uuid.NewString(),
		TokenHash: "0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, refreshTokens.Create(ctx, refresh))

	won, err := refreshTokens.MarkRotated(ctx, refresh.ID, now)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = refreshTokens.MarkRotated(ctx, refresh.ID, now)
	require.NoError(t, err)
	assert.False(t, won)

	verification := &entity.VerificationToken{
		AccountID: account.ID,
		Purpose:   entity.PurposeResetPassword,
		TokenHash: "a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, verificationTokens.Create(ctx, verification))

	consumed, err := verificationTokens.MarkConsumed(ctx, verification.ID, now)
	require.NoError(t, err)
	assert.True(t, consumed)

	stored, err := verificationTokens.FindByHash(ctx, verification.TokenHash)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Consumed())
}
