package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"

	"github.com/google/uuid"
)

const accountColumns = `id, username, canonical_username, email, canonical_email, password_hash,
		       email_verified, verified_at, created_at, updated_at`

type AccountRepository struct {
	db      DBTX
	dialect Dialect
}

func NewAccountRepository(db DBTX, dialect Dialect) *AccountRepository {
	return &AccountRepository{db: db, dialect: dialect}
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	query := `
		INSERT INTO accounts (id, username, canonical_username, email, canonical_email, password_hash, email_verified, verified_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		account.ID,
		account.Username,
		account.CanonicalUsername,
		account.Email,
		account.CanonicalEmail,
		account.PasswordHash,
		account.EmailVerified,
		toNullMillis(account.VerifiedAt),
		toMillis(account.CreatedAt),
		toMillis(account.UpdatedAt),
	)
	if err != nil {
		if r.dialect.IsDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, canonicalEmail string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts WHERE canonical_email = ?
	`
	return r.findOne(ctx, query, canonicalEmail)
}

func (r *AccountRepository) FindByUsername(ctx context.Context, canonicalUsername string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts WHERE canonical_username = ?
	`
	return r.findOne(ctx, query, canonicalUsername)
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts WHERE id = ?
	`
	return r.findOne(ctx, query, id)
}

// MarkVerified is idempotent: the first verification timestamp is kept.
func (r *AccountRepository) MarkVerified(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE accounts SET
			email_verified = ?,
			verified_at = COALESCE(verified_at, ?),
			updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), true, toMillis(at), toMillis(at), id)
	return err
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string, at time.Time) error {
	query := `
		UPDATE accounts SET
			password_hash = ?,
			updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), passwordHash, toMillis(at), id)
	return err
}

// ReplacePasswordHash swaps currentHash for passwordHash. It returns false
// when the stored hash no longer equals currentHash.
func (r *AccountRepository) ReplacePasswordHash(ctx context.Context, id, currentHash, passwordHash string, at time.Time) (bool, error) {
	query := `
		UPDATE accounts SET
			password_hash = ?,
			updated_at = ?
		WHERE id = ? AND password_hash = ?
	`
	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), passwordHash, toMillis(at), id, currentHash)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *AccountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, r.dialect.Rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var (
		account    entity.Account
		verifiedAt sql.NullInt64
		createdAt  int64
		updatedAt  int64
	)
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.CanonicalUsername,
		&account.Email,
		&account.CanonicalEmail,
		&account.PasswordHash,
		&account.EmailVerified,
		&verifiedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.VerifiedAt = fromNullMillis(verifiedAt)
	account.CreatedAt = fromMillis(createdAt)
	account.UpdatedAt = fromMillis(updatedAt)
	return &account, nil
}
