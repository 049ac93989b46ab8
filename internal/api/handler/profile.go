// internal/api/handler/profile.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"spendtrack/internal/api/middleware"
	"spendtrack/internal/service"
)

// maxUploadSize caps profile picture uploads at 10 MiB.
const maxUploadSize = 10 << 20

// ProfileHandler handles HTTP requests for the caller's profile.
type ProfileHandler struct {
	service service.ProfileService
	logger  *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: svc,
		logger:  logger,
	}
}

// Get handles retrieving the caller's profile.
// GET /api/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	profile, err := h.service.Get(r.Context(), user.ID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, profile)
}

// Update handles a partial update of the caller's profile, optionally with
// a new picture. Form fields absent from the request keep their stored
// values, and so does the picture when no file is uploaded.
// PUT/PATCH /api/profile (multipart/form-data or urlencoded)
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			invalidBody(w, h.logger)
			return
		}
		// Text-only updates may arrive urlencoded.
		if err := r.ParseForm(); err != nil {
			invalidBody(w, h.logger)
			return
		}
	}

	input := service.UpdateProfileInput{}
	if values, ok := r.PostForm["full_name"]; ok && len(values) > 0 {
		input.FullName = &values[0]
	}
	if values, ok := r.PostForm["bio"]; ok && len(values) > 0 {
		input.Bio = &values[0]
	}

	var picture *service.PictureUpload
	file, header, err := r.FormFile("profile_picture")
	switch {
	case err == nil:
		defer file.Close()
		picture = &service.PictureUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// No new picture supplied; the stored one is kept.
	default:
		invalidBody(w, h.logger)
		return
	}

	profile, err := h.service.Update(r.Context(), user.ID, input, picture)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, profile)
}
