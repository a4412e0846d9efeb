package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is the identity object embedded into token claims.
// The wire shape {"user":{"id":...}} is part of the public token contract
// and must not change.
type TokenUser struct {
	ID int64 `json:"id"`
}

// TokenClaims is the claim set carried by every session token: the owning
// user's identity plus the standard registered claims (exp, iat, iss).
type TokenClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID is a cached copy of the embedded user identity.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "user" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
