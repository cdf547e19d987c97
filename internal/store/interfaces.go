package store

import (
	"context"

	"github.com/shubhamkr/streamtube-backend/models"
)

// UserRepository is the persistence contract for user accounts and their
// single-session refresh-token state.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsernameOrEmail(ctx context.Context, username string, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// SetRefreshToken unconditionally stores a new refresh token for the user.
	SetRefreshToken(ctx context.Context, userID string, refreshToken string) error
	// ClearRefreshToken removes the stored refresh token, ending the session.
	ClearRefreshToken(ctx context.Context, userID string) error
	// RotateRefreshToken replaces the stored refresh token with next only when
	// the stored value still equals presented. Under concurrent refresh
	// attempts with the same token exactly one caller succeeds; the rest get
	// ErrRefreshTokenMismatch.
	RotateRefreshToken(ctx context.Context, userID string, presented string, next string) error

	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
	UpdateAvatar(ctx context.Context, userID string, avatarURL string) (models.User, error)
	UpdateCoverImage(ctx context.Context, userID string, coverImageURL string) (models.User, error)
}

// ErrorClassificator reports whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
