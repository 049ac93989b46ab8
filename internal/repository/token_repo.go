// internal/repository/token_repo.go
package repository

import (
	"context"

	"spendtrack/internal/domain"
)

// TokenRepository defines the interface for auth token data operations.
type TokenRepository interface {
	// GetOrCreateToken returns the key already stored for userID, or persists
	// candidateKey and returns it. The operation is a single atomic upsert so
	// concurrent logins converge on one key.
	GetOrCreateToken(ctx context.Context, q DBExecutor, userID int64, candidateKey string) (string, error)
	// GetUserByKey resolves a token key to its owning user.
	GetUserByKey(ctx context.Context, q DBExecutor, key string) (*domain.User, error)
}
