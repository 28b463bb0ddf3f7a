package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/repository"
	"github.com/vibast-solutions/ms-go-authn/app/repository/repositorytest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE refresh_tokens SET rotated_at`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx := repository.NewTransactor(db, repository.DialectMySQL)
	err := tx.WithinTx(context.Background(), func(ctx context.Context, repos *repository.Repositories) error {
		_, err := repos.RefreshTokens.MarkRotated(ctx, "token-1", time.Now())
		return err
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	tx := repository.NewTransactor(db, repository.DialectMySQL)
	err := tx.WithinTx(context.Background(), func(context.Context, *repository.Repositories) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLite_TransactorDiscardsPartialWrites(t *testing.T) {
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

	// The duplicate hash fails the insert after the rotation has been written.
	err := repository.NewTransactor(db, repository.DialectSQLite).WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		won, err := repos.RefreshTokens.MarkRotated(ctx, token.ID, now)
		if err != nil {
			return err
		}
		require.True(t, won)
		return repos.RefreshTokens.Create(ctx, &entity.RefreshToken{
			AccountID: account.ID,
			FamilyID:  "family-1",
			TokenHash: "hash-1",
			ExpiresAt: now.Add(time.Hour),
			CreatedAt: now,
		})
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	stored, err := tokens.FindByHash(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Spent())
}
