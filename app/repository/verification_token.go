package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"

	"github.com/google/uuid"
)

type VerificationTokenRepository struct {
	db      DBTX
	dialect Dialect
}

func NewVerificationTokenRepository(db DBTX, dialect Dialect) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db, dialect: dialect}
}

func (r *VerificationTokenRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}

	query := `
		INSERT INTO verification_tokens (id, account_id, purpose, token_hash, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		token.ID,
		token.AccountID,
		string(token.Purpose),
		token.TokenHash,
		toMillis(token.ExpiresAt),
		toMillis(token.CreatedAt),
	)
	if err != nil {
		if r.dialect.IsDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *VerificationTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.VerificationToken, error) {
	query := `
		SELECT id, account_id, purpose, token_hash, expires_at, consumed_at, created_at
		FROM verification_tokens WHERE token_hash = ?
	`
	var (
		token      entity.VerificationToken
		purpose    string
		expiresAt  int64
		consumedAt sql.NullInt64
		createdAt  int64
	)
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), tokenHash).Scan(
		&token.ID,
		&token.AccountID,
		&purpose,
		&token.TokenHash,
		&expiresAt,
		&consumedAt,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	token.Purpose = entity.Purpose(purpose)
	token.ExpiresAt = fromMillis(expiresAt)
	token.ConsumedAt = fromNullMillis(consumedAt)
	token.CreatedAt = fromMillis(createdAt)
	return &token, nil
}

// MarkConsumed returns false when the token was already consumed.
func (r *VerificationTokenRepository) MarkConsumed(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `UPDATE verification_tokens SET consumed_at = ? WHERE id = ? AND consumed_at IS NULL`
	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), toMillis(at), id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *VerificationTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM verification_tokens WHERE expires_at <= ?`
	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), toMillis(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
