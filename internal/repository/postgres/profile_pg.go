// internal/repository/postgres/profile_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
	"spendtrack/internal/util"
)

// ProfileRepository implements repository.ProfileRepository for PostgreSQL.
type ProfileRepository struct {
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &ProfileRepository{}
}

// CreateProfile inserts a new profile row using the provided DBExecutor.
func (r *ProfileRepository) CreateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, full_name, bio, picture_key, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query, profile.UserID, profile.FullName, profile.Bio, profile.PictureKey, profile.CreatedAt, profile.UpdatedAt).Scan(&profile.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfileByUserID retrieves the profile owned by userID using the provided DBExecutor.
func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT id, user_id, full_name, bio, picture_key, created_at, updated_at
              FROM profiles WHERE user_id = $1`
	err := q.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile for user %d: %w", userID, err)
	}
	return &profile, nil
}

// UpdateProfile persists the mutable profile fields, keyed by the owning user.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.Profile) error {
	query := `UPDATE profiles SET full_name = $1, bio = $2, picture_key = $3, updated_at = $4
              WHERE user_id = $5`
	result, err := q.ExecContext(ctx, query, profile.FullName, profile.Bio, profile.PictureKey, time.Now().UTC(), profile.UserID)
	if err != nil {
		return fmt.Errorf("failed to update profile for user %d: %w", profile.UserID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating profile for user %d: %w", profile.UserID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
