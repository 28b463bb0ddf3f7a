package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Repositories groups the repositories bound to one handle.
type Repositories struct {
	Accounts           *AccountRepository
	RefreshTokens      *RefreshTokenRepository
	VerificationTokens *VerificationTokenRepository
}

func NewRepositories(db DBTX, dialect Dialect) *Repositories {
	return &Repositories{
		Accounts:           NewAccountRepository(db, dialect),
		RefreshTokens:      NewRefreshTokenRepository(db, dialect),
		VerificationTokens: NewVerificationTokenRepository(db, dialect),
	}
}

type Transactor struct {
	db      *sql.DB
	dialect Dialect
}

func NewTransactor(db *sql.DB, dialect Dialect) *Transactor {
	return &Transactor{db: db, dialect: dialect}
}

// WithinTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise. fn must not
// touch the pool: SQLite runs with a single connection.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(ctx, NewRepositories(tx, t.dialect)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
