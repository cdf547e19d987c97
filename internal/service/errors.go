package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrRefreshTokenReused is returned when a presented refresh token no
	// longer matches the stored one. The token was already rotated or
	// revoked, which indicates a replay or a raced refresh.
	ErrRefreshTokenReused = errors.New("refresh token is reused or revoked")

	// ErrAvatarRequired is returned by registration when no avatar file was
	// submitted. Every account must carry an avatar.
	ErrAvatarRequired = errors.New("avatar image is required")

	// ErrUploadFailed wraps image-host failures so handlers can map them to a
	// single upstream-error status.
	ErrUploadFailed = errors.New("image upload failed")
)
