// internal/repository/postgres/token_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
	"spendtrack/internal/util"
)

// TokenRepository implements repository.TokenRepository for PostgreSQL.
type TokenRepository struct {
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sqlx.DB) repository.TokenRepository {
	return &TokenRepository{}
}

// GetOrCreateToken returns the existing key for userID or persists candidateKey.
// The no-op DO UPDATE makes the statement return the surviving row either way,
// so concurrent logins all receive the same key.
func (r *TokenRepository) GetOrCreateToken(ctx context.Context, q repository.DBExecutor, userID int64, candidateKey string) (string, error) {
	query := `INSERT INTO auth_tokens (key, user_id, created_at)
              VALUES ($1, $2, now())
              ON CONFLICT (user_id) DO UPDATE SET user_id = auth_tokens.user_id
              RETURNING key`
	var key string
	err := q.QueryRowContext(ctx, query, candidateKey, userID).Scan(&key)
	if err != nil {
		return "", fmt.Errorf("failed to get or create token for user %d: %w", userID, err)
	}
	return key, nil
}

// GetUserByKey resolves a token key to its owning user in one join query.
// An unknown key is reported as util.ErrNotFound.
func (r *TokenRepository) GetUserByKey(ctx context.Context, q repository.DBExecutor, key string) (*domain.User, error) {
	var user domain.User
	query := `SELECT u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at
              FROM auth_tokens t
              JOIN users u ON u.id = t.user_id
              WHERE t.key = $1`
	err := q.GetContext(ctx, &user, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by token key: %w", err)
	}
	return &user, nil
}
