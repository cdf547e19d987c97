package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/utils"
	"github.com/shubhamkr/streamtube-backend/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("current user lookup failed")
		writeMappedError(w, err, "current user lookup failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, user, "current user fetched successfully")
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateProfile(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("profile update failed")
		writeMappedError(w, err, "profile update failed")
		return
	}

	log.Info().Str("id", userID).Msg("profile updated")
	utils.WriteSuccess(w, http.StatusOK, updatedUser, "profile updated successfully")
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, avatarFormField, h.services.ProfileService.UpdateAvatar, "avatar updated successfully")
}

func (h *Handler) updateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, coverImageFormField, h.services.ProfileService.UpdateCoverImage, "cover image updated successfully")
}

func (h *Handler) updateImage(w http.ResponseWriter, r *http.Request, field string, update func(ctx context.Context, userID string, localPath string) (models.User, error), successMessage string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	localPath, err := h.saveUploadedFile(r, field)
	if err != nil {
		log.Err(err).Str("field", field).Msg("saving upload failed")
		utils.WriteError(w, http.StatusBadRequest, "invalid image upload")
		return
	}
	if localPath == "" {
		log.Error().Str("field", field).Msg("image file is missing")
		utils.WriteError(w, http.StatusBadRequest, "image file is missing")
		return
	}
	defer h.removeTempFiles(r, localPath)

	updatedUser, err := update(ctx, userID, localPath)
	if err != nil {
		log.Err(err).Str("id", userID).Str("field", field).Msg("image update failed")
		writeMappedError(w, err, "image update failed")
		return
	}

	log.Info().Str("id", userID).Str("field", field).Msg("image updated")
	utils.WriteSuccess(w, http.StatusOK, updatedUser, successMessage)
}
