package models

// RegisterRequest carries the textual fields of a registration submission.
// Avatar and cover image arrive as multipart file parts and are handled
// separately by the HTTP layer.
type RegisterRequest struct {
	// Username is the requested unique handle. Trimmed and lowercased
	// before persistence.
	Username string `json:"username"`

	// Email is the account e-mail address. Trimmed and lowercased.
	Email string `json:"email"`

	// FullName is the display name. Required.
	FullName string `json:"full_name"`

	// Password is the plaintext password. It is hashed exactly once, at
	// registration, and never stored or logged as-is.
	Password string `json:"password"`
}

// LoginRequest identifies an account by username or e-mail plus password.
// At least one of Username and Email must be set.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// RefreshRequest optionally carries a refresh token in the request body.
// Browser clients normally present the token via the refreshToken cookie
// instead; the body field exists for non-browser callers.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ChangePasswordRequest carries the old and new plaintext passwords.
// The old password is re-verified before any mutation happens.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateProfileRequest carries the mutable textual profile fields.
// Empty fields are left untouched (partial update).
type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}
