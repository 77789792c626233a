package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySignKey is returned when a token is signed or verified without a key.
var ErrEmptySignKey = errors.New("empty token sign key")

// TokenParams holds the settings used to issue and verify session tokens.
type TokenParams struct {
	// SignKey is the HMAC-SHA256 secret. Required.
	SignKey string
	// Issuer, when set, is written to "iss" and required on verification.
	Issuer string
	// Duration, when positive, sets "exp" to issue time plus Duration.
	// Tokens never expire otherwise.
	Duration time.Duration
}

// GenerateSessionToken creates a signed HS256 session token for the given
// identity.
//
// The token always carries "id", "isAdmin" and "iat". "iss" and "exp" are
// added only when configured in params.
func GenerateSessionToken(params TokenParams, userID string, isAdmin bool) (models.Token, error) {
	if params.SignKey == "" {
		return models.Token{}, ErrEmptySignKey
	}
	if userID == "" {
		return models.Token{}, errors.New("empty user id for session token")
	}

	now := time.Now()
	claims := models.Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   params.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if params.Duration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(params.Duration))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed}, nil
}

// ParseSessionToken verifies tokenString and returns its claims.
//
// Verification includes:
//   - HMAC signature check with params.SignKey (other algorithms are rejected)
//   - "exp" check when the claim is present
//   - "iss" check when params.Issuer is set
//   - presence of a non-empty "id" claim
func ParseSessionToken(params TokenParams, tokenString string) (models.Claims, error) {
	if params.SignKey == "" {
		return models.Claims{}, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if params.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(params.Issuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Claims{}, errors.New("empty id claim")
	}

	return claims, nil
}
