package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or an e-mail change
	// collides with an existing username or e-mail (unique violation).
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRefreshTokenMismatch is returned by the refresh-token rotation when
	// the stored token no longer equals the presented one. This means the
	// token was already rotated, revoked, or is being replayed.
	ErrRefreshTokenMismatch = errors.New("refresh token mismatch")

	// ErrNoFieldsToUpdate is returned when a partial profile update carries
	// no fields at all.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
