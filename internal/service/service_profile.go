package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shubhamkr/streamtube-backend/internal/adapter"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/store"
	"github.com/shubhamkr/streamtube-backend/internal/validators"
	"github.com/shubhamkr/streamtube-backend/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	uploader       adapter.FileUploader
	validator      validators.Validator
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, uploader adapter.FileUploader, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		uploader:       uploader,
		validator:      validators.NewUserRequestValidator(),
		logger:         logger,
	}
}

// UpdateProfile applies a partial update of the mutable textual fields.
// Empty request fields are left untouched; a request with no fields at all
// yields ErrInvalidDataProvided.
func (p *profileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if err := p.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("id", userID).Msg("invalid profile update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var update models.ProfileUpdate
	if fullName := strings.TrimSpace(req.FullName); fullName != "" {
		update.FullName = &fullName
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		update.Email = &email
	}

	updatedUser, err := p.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser.Sanitize(), nil
}

// UpdateAvatar uploads the replacement avatar and stores its public URL.
func (p *profileService) UpdateAvatar(ctx context.Context, userID string, localPath string) (models.User, error) {
	return p.updateImage(ctx, userID, localPath, p.userRepository.UpdateAvatar)
}

// UpdateCoverImage uploads the replacement cover image and stores its public URL.
func (p *profileService) UpdateCoverImage(ctx context.Context, userID string, localPath string) (models.User, error) {
	return p.updateImage(ctx, userID, localPath, p.userRepository.UpdateCoverImage)
}

func (p *profileService) updateImage(ctx context.Context, userID string, localPath string, persist func(context.Context, string, string) (models.User, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" || localPath == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	publicURL, err := p.uploader.Upload(ctx, localPath)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("image upload failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	updatedUser, err := persist(ctx, userID, publicURL)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("storing image url failed")
		return models.User{}, fmt.Errorf("storing image url failed: %w", err)
	}

	return updatedUser.Sanitize(), nil
}
