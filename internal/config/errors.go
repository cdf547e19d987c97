package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or inconsistent.
var (
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source. Fatal at startup.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSecrets indicates that the access or refresh token
	// signing secret is empty.
	ErrMissingTokenSecrets = errors.New("access and refresh token secrets are required")

	// ErrIdenticalTokenSecrets indicates that the access and refresh signing
	// secrets are equal, which would allow cross-use of token kinds.
	ErrIdenticalTokenSecrets = errors.New("access and refresh token secrets must differ")

	// ErrInvalidTokenTTL indicates non-positive token lifetimes or an access
	// token that outlives the refresh token.
	ErrInvalidTokenTTL = errors.New("invalid token lifetimes")
)
