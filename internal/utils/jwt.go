package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shubhamkr/streamtube-backend/models"
)

// ErrTokenExpired is returned by ValidateAndParseToken when the token's
// signature and shape are valid but its "exp" claim lies in the past.
// Callers can distinguish it from structural failures with errors.Is.
var ErrTokenExpired = errors.New("token is expired")

// GenerateAccessToken creates a signed HMAC-SHA256 access token for user.
//
// The token embeds [models.AccessClaims]: the standard claim set
// (iss, sub, iat, exp) plus the user's username, e-mail, and full name, so
// that ordinary requests can be authorized without a database round-trip.
//
// All parameters are required. Returns an error if issuer, signKey, or the
// user ID are empty, or if tokenDuration is not positive.
func GenerateAccessToken(issuer string, user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || user.UserID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating access token")
	}

	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: user.UserID}, nil
}

// GenerateRefreshToken creates a signed HMAC-SHA256 refresh token.
//
// The claim surface is intentionally minimal — registered claims only, with
// the user ID as the subject. The signing key must be distinct from the
// access-token key so that one token kind can never be replayed as the other.
//
// All parameters are required. Returns an error if any of them are empty or
// if tokenDuration is not positive.
func GenerateRefreshToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating refresh token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		// jti makes every token unique even when two are minted within the
		// same second for the same user, so rotation always changes the value.
		ID: uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing refresh token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseToken validates the given JWT string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Expired-but-otherwise-valid tokens are reported as [ErrTokenExpired] so
// that callers can surface a distinct failure; every other validation
// problem is returned as a wrapped parse error.
func ValidateAndParseToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}
