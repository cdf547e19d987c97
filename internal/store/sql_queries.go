// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/shubhamkr/streamtube-backend/models"
)

// userColumns is the canonical column list returned by every user query.
// refresh_token is nullable in the schema and coalesced to the empty string
// so it scans directly into models.User.
const userColumns = `user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, COALESCE(refresh_token, ''), created_at, updated_at`

const (
	createUser = `INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url, cover_image_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + userColumns + `;`

	findUserByUsernameOrEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(username) = lower($1) OR lower(email) = lower($2);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	setRefreshToken = `UPDATE users
    SET refresh_token = $2, updated_at = NOW()
    WHERE user_id = $1;`

	clearRefreshToken = `UPDATE users
    SET refresh_token = NULL, updated_at = NOW()
    WHERE user_id = $1;`

	// rotateRefreshToken is a compare-and-swap: the stored token must still
	// equal the presented one, otherwise zero rows are affected.
	rotateRefreshToken = `UPDATE users
    SET refresh_token = $3, updated_at = NOW()
    WHERE user_id = $1 AND refresh_token = $2;`

	// updatePassword also revokes the active session: a credential change
	// must invalidate any previously issued refresh token.
	updatePassword = `UPDATE users
    SET password_hash = $2, refresh_token = NULL, updated_at = NOW()
    WHERE user_id = $1;`

	updateAvatar = `UPDATE users
    SET avatar_url = $2, updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	updateCoverImage = `UPDATE users
    SET cover_image_url = $2, updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`
)

// buildUpdateProfileQuery dynamically builds the UPDATE statement for a
// partial profile mutation. Returns ErrNoFieldsToUpdate when the update
// carries no fields at all.
func buildUpdateProfileQuery(userID string, update models.ProfileUpdate) (string, []any, error) {
	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(sq.Dollar)

	touched := false
	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
		touched = true
	}
	if update.Email != nil {
		builder = builder.Set("email", strings.ToLower(strings.TrimSpace(*update.Email)))
		touched = true
	}
	if !touched {
		return "", nil, ErrNoFieldsToUpdate
	}

	return builder.ToSql()
}
