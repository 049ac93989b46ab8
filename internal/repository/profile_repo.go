// internal/repository/profile_repo.go
package repository

import (
	"context"

	"spendtrack/internal/domain"
)

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	// CreateProfile adds a new profile row using the provided DBExecutor.
	CreateProfile(ctx context.Context, q DBExecutor, profile *domain.Profile) error
	// GetProfileByUserID retrieves the profile owned by userID.
	GetProfileByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Profile, error)
	// UpdateProfile persists the mutable fields of the given profile,
	// keyed by its owning user.
	UpdateProfile(ctx context.Context, q DBExecutor, profile *domain.Profile) error
}
