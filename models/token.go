package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token: the identity it was issued for
// and that identity's role flag.
//
// It embeds [jwt.RegisteredClaims] so that the optional "iat", "iss" and
// "exp" claims are validated by the jwt parser.
type Claims struct {
	// UserID is the id of the authenticated user.
	UserID string `json:"id"`

	// IsAdmin mirrors User.IsAdmin at the moment the token was issued.
	IsAdmin bool `json:"isAdmin"`

	jwt.RegisteredClaims
}

// Token is an issued session token together with the claims it carries.
type Token struct {
	// Claims are the decoded token claims.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature) placed in the
	// access_token cookie.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
