package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the claim set embedded into every access token.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat, iss) with the identity
// attributes the frontend needs without a database round-trip. Refresh tokens
// deliberately carry only the registered claims: a leaked refresh token alone
// cannot be used to impersonate a user without a store lookup.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Username is the unique handle of the token's subject.
	Username string `json:"username"`

	// Email is the e-mail address of the token's subject.
	Email string `json:"email"`

	// FullName is the display name of the token's subject.
	FullName string `json:"full_name"`
}

// Token wraps a parsed JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// cookies. UserID is a cached copy of the "sub" claim populated during
// generation or validation.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair bundles the two credentials minted on every successful login or
// refresh. Instances are ephemeral: only the refresh token's raw value is
// persisted, against the user row, for rotation comparison.
type TokenPair struct {
	// AccessToken is the short-lived credential sent with individual requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived credential used solely to mint new
	// pairs. It is rotated on every use.
	RefreshToken string `json:"refresh_token"`
}
