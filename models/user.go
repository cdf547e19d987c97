package models

import "time"

// User represents a registered account of the media-sharing platform.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user. Generated once at
	// registration (UUIDv7) and immutable afterwards.
	UserID string `json:"user_id"`

	// Username is the unique, lowercased handle used for login and display.
	Username string `json:"username"`

	// Email is the unique, lowercased e-mail address of the account.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// AvatarURL points to the uploaded profile image on the external
	// image host. Required for every account.
	AvatarURL string `json:"avatar_url"`

	// CoverImageURL points to the optional channel cover image.
	CoverImageURL string `json:"cover_image_url,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// RefreshToken is the currently valid refresh token issued to this
	// account, or empty when no session is active. Overwritten on every
	// login and refresh, cleared on logout. Never exposed via JSON.
	RefreshToken string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the account row.
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate describes a partial update of the mutable profile fields.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FullName *string
	Email    *string
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitize returns a copy of the user with all credential material cleared.
// Handlers serialize only sanitized copies, even though the sensitive fields
// are already excluded from JSON by their struct tags.
func (u User) Sanitize() User {
	u.PasswordHash = ""
	u.RefreshToken = ""
	return u
}
