package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shubhamkr/streamtube-backend/internal/adapter"
	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/store"
	"github.com/shubhamkr/streamtube-backend/internal/utils"
	"github.com/shubhamkr/streamtube-backend/internal/validators"
	"github.com/shubhamkr/streamtube-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT session
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uploader pushes avatar and cover files to the external image host
	// during registration.
	uploader adapter.FileUploader

	// uuidGenerator mints the immutable user ID at registration time.
	uuidGenerator *utils.UUIDGenerator

	// validator enforces the field-level rules on inbound requests.
	validator validators.Validator

	// accessSignKey is the HMAC secret used to sign and verify access tokens.
	accessSignKey string

	// accessTTL controls how long a newly issued access token remains valid.
	accessTTL time.Duration

	// refreshSignKey is the HMAC secret for refresh tokens. It must differ
	// from accessSignKey so one token kind can never pass as the other.
	refreshSignKey string

	// refreshTTL controls how long a newly issued refresh token remains valid.
	refreshTTL time.Duration

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and image-host uploader, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, uploader adapter.FileUploader, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uploader:       uploader,
		uuidGenerator:  utils.NewUUIDGenerator(),
		validator:      validators.NewUserRequestValidator(),
		accessSignKey:  cfg.AccessTokenSecret,
		accessTTL:      cfg.AccessTokenTTL,
		refreshSignKey: cfg.RefreshTokenSecret,
		refreshTTL:     cfg.RefreshTokenTTL,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the textual fields against the user-request rules, uploads the avatar
// (required) and the cover image (optional) to the image host, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// Username and e-mail are lowercased before storage so logins are
// case-insensitive.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required textual field is empty.
//   - ErrAvatarRequired if avatarPath is empty.
//   - ErrUploadFailed (wrapped) if the image host rejects an upload.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     e-mail already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest, avatarPath string, coverImagePath string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)

	if avatarPath == "" {
		log.Error().Str("username", username).Msg("registration without avatar")
		return models.User{}, ErrAvatarRequired
	}

	avatarURL, err := a.uploader.Upload(ctx, avatarPath)
	if err != nil {
		log.Err(err).Str("username", username).Msg("avatar upload failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	var coverImageURL string
	if coverImagePath != "" {
		coverImageURL, err = a.uploader.Upload(ctx, coverImagePath)
		if err != nil {
			log.Err(err).Str("username", username).Msg("cover image upload failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:        a.uuidGenerator.Generate(),
		Username:      username,
		Email:         email,
		FullName:      fullName,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Sanitize(), nil
}

// Login authenticates an existing user and opens a session.
//
// It looks up the account by username or e-mail (case-insensitive), compares
// the supplied password against the stored bcrypt hash, mints an access/refresh
// token pair, and stores the refresh token so it can later be rotated or
// revoked.
//
// Returns the sanitized user record and the token pair, or:
//   - ErrInvalidDataProvided if neither username nor e-mail is given, or the
//     password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found — see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.User{}, models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	foundUser, err := a.userRepository.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		log.Err(err).Str("username", username).Str("email", email).Msg("user lookup failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Error().
			Str("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrWrongPassword
	}

	pair, err := a.mintTokenPair(foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("token pair creation failed")
		return models.User{}, models.TokenPair{}, err
	}

	if err = a.userRepository.SetRefreshToken(ctx, foundUser.UserID, pair.RefreshToken); err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("storing refresh token failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("storing refresh token failed: %w", err)
	}

	return foundUser.Sanitize(), pair, nil
}

// RefreshSession exchanges a valid refresh token for a new token pair.
//
// The presented token is verified against the refresh signing key, then
// atomically swapped for the new one: the store only accepts the rotation if
// the presented token still matches the stored value. Concurrent refreshes
// with the same token therefore produce exactly one winner.
//
// Returns the sanitized user record and the new pair, or:
//   - ErrInvalidDataProvided if the token string is empty.
//   - ErrTokenIsExpired if the token's exp claim lies in the past.
//   - ErrTokenIsExpiredOrInvalid for any other validation failure, including
//     a token whose subject no longer exists.
//   - ErrRefreshTokenReused if the stored token has diverged (rotation raced
//     or the token was revoked).
func (a *authService) RefreshSession(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	parsed, err := utils.ValidateAndParseToken(refreshToken, a.refreshSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.User{}, models.TokenPair{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("refresh token validation failed")
		return models.User{}, models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		// A token whose subject no longer exists is as dead as a forged one.
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("id", parsed.UserID).Msg("refresh token subject no longer exists")
			return models.User{}, models.TokenPair{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("id", parsed.UserID).Msg("user lookup failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user lookup failed: %w", err)
	}

	pair, err := a.mintTokenPair(foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("token pair creation failed")
		return models.User{}, models.TokenPair{}, err
	}

	if err = a.userRepository.RotateRefreshToken(ctx, foundUser.UserID, refreshToken, pair.RefreshToken); err != nil {
		if errors.Is(err, store.ErrRefreshTokenMismatch) {
			log.Warn().Str("id", foundUser.UserID).Msg("refresh token reuse detected")
			return models.User{}, models.TokenPair{}, ErrRefreshTokenReused
		}
		log.Err(err).Str("id", foundUser.UserID).Msg("refresh token rotation failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("refresh token rotation failed: %w", err)
	}

	return foundUser.Sanitize(), pair, nil
}

// Logout revokes the stored refresh token for userID. The operation is
// idempotent at the session level: an already-cleared token is cleared again
// without complaint.
func (a *authService) Logout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.ClearRefreshToken(ctx, userID); err != nil {
		log.Err(err).Str("id", userID).Msg("clearing refresh token failed")
		return fmt.Errorf("clearing refresh token failed: %w", err)
	}

	return nil
}

// ChangePassword re-verifies the old password before storing the new hash.
// The stored refresh token is revoked in the same statement, so existing
// sessions cannot survive a credential change.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrWrongPassword if the old password does not match.
//   - A wrapped storage error on lookup or update failure.
func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("id", userID).Msg("invalid password change data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.VerifyPassword(req.OldPassword, foundUser.PasswordHash) {
		log.Error().Str("id", userID).Msg("wrong old password")
		return ErrWrongPassword
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, newHash); err != nil {
		log.Err(err).Str("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// CurrentUser returns the sanitized account record for userID.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return foundUser.Sanitize(), nil
}

// ParseAccessToken validates and parses a raw access-token string.
//
// It delegates to utils.ValidateAndParseToken, verifying the signature and the
// issuer claim. Expired tokens surface as ErrTokenIsExpired; any other
// validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseToken(tokenString, a.accessSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// mintTokenPair issues a fresh access/refresh token pair for user.
func (a *authService) mintTokenPair(user models.User) (models.TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(a.tokenIssuer, user, a.accessTTL, a.accessSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateRefreshToken(a.tokenIssuer, user.UserID, a.refreshTTL, a.refreshSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
	}, nil
}
