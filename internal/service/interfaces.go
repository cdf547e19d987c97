package service

import (
	"context"

	"github.com/shubhamkr/streamtube-backend/models"
)

// AuthService owns the account and session lifecycle: registration, login,
// refresh-token rotation, logout, and password changes.
type AuthService interface {
	// RegisterUser creates a new account. avatarPath must point to a local
	// temp file; coverImagePath may be empty. Both are uploaded to the image
	// host before the account row is written.
	RegisterUser(ctx context.Context, req models.RegisterRequest, avatarPath string, coverImagePath string) (models.User, error)

	// Login verifies credentials and opens a session, returning the user and
	// a freshly minted access/refresh token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)

	// RefreshSession exchanges a valid refresh token for a new token pair,
	// atomically rotating the stored token. A token that no longer matches
	// the stored one yields ErrRefreshTokenReused.
	RefreshSession(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error)

	// Logout revokes the stored refresh token, ending the session.
	Logout(ctx context.Context, userID string) error

	// ChangePassword re-verifies the old password, stores the new hash, and
	// revokes the active refresh token.
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error

	// CurrentUser returns the sanitized account record for userID.
	CurrentUser(ctx context.Context, userID string) (models.User, error)

	// ParseAccessToken validates a raw access-token string and returns the
	// decoded token. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService owns mutations of the non-credential profile surface.
type ProfileService interface {
	// UpdateProfile applies a partial update of full name and e-mail.
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)

	// UpdateAvatar uploads a replacement avatar and stores its URL.
	UpdateAvatar(ctx context.Context, userID string, localPath string) (models.User, error)

	// UpdateCoverImage uploads a replacement cover image and stores its URL.
	UpdateCoverImage(ctx context.Context, userID string, localPath string) (models.User, error)
}
