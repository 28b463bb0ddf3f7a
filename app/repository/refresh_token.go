package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"

	"github.com/google/uuid"
)

type RefreshTokenRepository struct {
	db      DBTX
	dialect Dialect
}

func NewRefreshTokenRepository(db DBTX, dialect Dialect) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db, dialect: dialect}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}

	query := `
		INSERT INTO refresh_tokens (id, account_id, family_id, token_hash, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		token.ID,
		token.AccountID,
		token.FamilyID,
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

func (r *RefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	query := `
		SELECT id, account_id, family_id, token_hash, expires_at, created_at, rotated_at, revoked_at
		FROM refresh_tokens WHERE token_hash = ?
	`
	var (
		token     entity.RefreshToken
		expiresAt int64
		createdAt int64
		rotatedAt sql.NullInt64
		revokedAt sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), tokenHash).Scan(
		&token.ID,
		&token.AccountID,
		&token.FamilyID,
		&token.TokenHash,
		&expiresAt,
		&createdAt,
		&rotatedAt,
		&revokedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	token.ExpiresAt = fromMillis(expiresAt)
	token.CreatedAt = fromMillis(createdAt)
	token.RotatedAt = fromNullMillis(rotatedAt)
	token.RevokedAt = fromNullMillis(revokedAt)
	return &token, nil
}

// MarkRotated spends a live token. It returns false when another caller
// rotated or revoked the token first.
func (r *RefreshTokenRepository) MarkRotated(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE refresh_tokens SET rotated_at = ?
		WHERE id = ? AND rotated_at IS NULL AND revoked_at IS NULL
	`
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

func (r *RefreshTokenRepository) RevokeFamily(ctx context.Context, familyID string, at time.Time) (int64, error) {
	query := `UPDATE refresh_tokens SET revoked_at = ? WHERE family_id = ? AND revoked_at IS NULL`
	return r.exec(ctx, query, toMillis(at), familyID)
}

func (r *RefreshTokenRepository) RevokeAllForAccount(ctx context.Context, accountID string, at time.Time) (int64, error) {
	query := `UPDATE refresh_tokens SET revoked_at = ? WHERE account_id = ? AND revoked_at IS NULL`
	return r.exec(ctx, query, toMillis(at), accountID)
}

// DeleteExpired removes tokens whose expiry is at or before the cutoff.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at <= ?`
	return r.exec(ctx, query, toMillis(before))
}

func (r *RefreshTokenRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
