// internal/service/profile_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"spendtrack/internal/blobstore"
	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
)

// UpdateProfileInput carries a partial profile update; nil fields keep
// their stored values.
type UpdateProfileInput struct {
	FullName *string
	Bio      *string
}

// PictureUpload carries an uploaded profile picture. A nil *PictureUpload
// on update means "keep the currently stored picture".
type PictureUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// ProfileService defines the interface for profile-related business logic.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*domain.Profile, error)
	// Update merges the partial fields onto the stored profile and, when a
	// picture is supplied, replaces the stored blob. Without a picture the
	// existing blob reference is carried over untouched.
	Update(ctx context.Context, userID int64, input UpdateProfileInput, picture *PictureUpload) (*domain.Profile, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	dbExecutor  repository.DBExecutor
	profileRepo repository.ProfileRepository
	blobs       blobstore.Store
	logger      *slog.Logger
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(
	dbExecutor repository.DBExecutor,
	profileRepo repository.ProfileRepository,
	blobs blobstore.Store,
	logger *slog.Logger,
) ProfileService {
	return &profileService{
		dbExecutor:  dbExecutor,
		profileRepo: profileRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

// Get returns the profile owned by userID.
func (s *profileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.profileRepo.GetProfileByUserID(ctx, s.dbExecutor, userID)
}

// Update loads the current profile, merges the incoming partial fields onto
// it, validates the merged record, and persists it. Merging onto the loaded
// record (never a blank one) is what keeps the stored picture when the
// request carries no file.
func (s *profileService) Update(ctx context.Context, userID int64, input UpdateProfileInput, picture *PictureUpload) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	oldPictureKey := profile.PictureKey
	if picture != nil {
		newKey := newPictureKey(picture.Filename)
		if err := s.blobs.Save(ctx, newKey, picture.ContentType, picture.Content); err != nil {
			return nil, fmt.Errorf("update profile: failed to store picture: %w", err)
		}
		profile.PictureKey = newKey
	}

	if err := s.profileRepo.UpdateProfile(ctx, s.dbExecutor, profile); err != nil {
		return nil, err
	}

	// The replaced blob is discarded; there is no picture history. Removal
	// is best effort once the row points at the new key.
	if picture != nil && oldPictureKey != "" && oldPictureKey != profile.PictureKey {
		if err := s.blobs.Delete(ctx, oldPictureKey); err != nil {
			s.logger.Warn("failed to delete replaced profile picture", "key", oldPictureKey, "error", err)
		}
	}

	return profile, nil
}

// newPictureKey builds a unique blob key, preserving the upload's extension.
func newPictureKey(filename string) string {
	return "profiles/" + uuid.NewString() + filepath.Ext(filename)
}
