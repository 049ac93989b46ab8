// internal/domain/profile.go
package domain

import (
	"time"

	"spendtrack/internal/util"
)

// Field length bounds for profile columns.
const (
	MaxFullNameLength = 150
	MaxBioLength      = 500
)

// Profile holds the per-user profile row. Exactly one exists per user,
// created empty at registration; UserID never changes afterwards.
type Profile struct {
	ID         int64     `db:"id" json:"id"`                   // Primary key, BIGSERIAL in DB
	UserID     int64     `db:"user_id" json:"user_id"`         // Owning user, unique
	FullName   string    `db:"full_name" json:"full_name"`     // Display name
	Bio        string    `db:"bio" json:"bio"`                 // Free-form short text
	PictureKey string    `db:"picture_key" json:"picture_key"` // Blob-store key of the profile picture, empty if none
	CreatedAt  time.Time `db:"created_at" json:"created_at"`   // Timestamp of creation
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`   // Timestamp of last update
}

// NewProfile creates an empty profile for the given user.
func NewProfile(userID int64) *Profile {
	now := time.Now().UTC()
	return &Profile{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks field bounds on the merged profile state.
func (p *Profile) Validate() error {
	fieldErrs := util.FieldErrors{}
	if len(p.FullName) > MaxFullNameLength {
		fieldErrs["full_name"] = "must be at most 150 characters"
	}
	if len(p.Bio) > MaxBioLength {
		fieldErrs["bio"] = "must be at most 500 characters"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}
