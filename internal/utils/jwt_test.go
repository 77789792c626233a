package utils

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	params := TokenParams{SignKey: "secret-key", Issuer: "go-blog", Duration: time.Hour}

	token, err := GenerateSessionToken(params, "user-1", true)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "user-1", token.Claims.UserID)
	assert.True(t, token.Claims.IsAdmin)
	assert.Equal(t, "go-blog", token.Claims.Issuer)
	require.NotNil(t, token.Claims.IssuedAt)
	require.NotNil(t, token.Claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateSessionToken_NoExpiryByDefault(t *testing.T) {
	token, err := GenerateSessionToken(TokenParams{SignKey: "k"}, "user-1", false)
	require.NoError(t, err)

	assert.Nil(t, token.Claims.ExpiresAt)
	assert.Empty(t, token.Claims.Issuer)

	claims, err := ParseSessionToken(TokenParams{SignKey: "k"}, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params TokenParams
		userID string
	}{
		{"empty key", TokenParams{}, "user-1"},
		{"empty user id", TokenParams{SignKey: "k"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.params, tt.userID, false)
			assert.Error(t, err)
		})
	}
}

func TestParseSessionToken_RoundTrip(t *testing.T) {
	params := TokenParams{SignKey: "secret-key", Issuer: "go-blog", Duration: time.Minute}

	token, err := GenerateSessionToken(params, "user-42", true)
	require.NoError(t, err)

	claims, err := ParseSessionToken(params, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseSessionToken_Rejects(t *testing.T) {
	params := TokenParams{SignKey: "secret-key", Issuer: "go-blog"}

	valid, err := GenerateSessionToken(params, "user-1", false)
	require.NoError(t, err)

	otherKey, err := GenerateSessionToken(TokenParams{SignKey: "other", Issuer: "go-blog"}, "user-1", false)
	require.NoError(t, err)

	otherIssuer, err := GenerateSessionToken(TokenParams{SignKey: "secret-key", Issuer: "someone"}, "user-1", false)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-1",
		"iss": "go-blog",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "go-blog",
	}).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "user-1",
		"iss": "go-blog",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong key", otherKey.SignedString},
		{"wrong issuer", otherIssuer.SignedString},
		{"expired", expired},
		{"missing id", noID},
		{"alg none", unsigned},
		{"tampered", valid.SignedString + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(params, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestParseSessionToken_EmptyKey(t *testing.T) {
	_, err := ParseSessionToken(TokenParams{}, "a.b.c")
	assert.ErrorIs(t, err, ErrEmptySignKey)
}

func TestParseSessionToken_RejectsForeignPayloadUnderValidSignature(t *testing.T) {
	params := TokenParams{SignKey: "secret-key", Issuer: "go-blog"}

	valid, err := GenerateSessionToken(params, "user-1", false)
	require.NoError(t, err)

	parts := strings.Split(valid.SignedString, ".")
	require.Len(t, parts, 3)

	payloads := map[string]map[string]any{
		"promoted to admin": {"id": "user-1", "isAdmin": true, "iss": "go-blog"},
		"other identity":    {"id": "user-2", "isAdmin": false, "iss": "go-blog"},
		"issued-at dropped": {"id": "user-1", "isAdmin": false, "iss": "go-blog"},
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			raw, err := json.Marshal(payload)
			require.NoError(t, err)

			forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString(raw) + "." + parts[2]
			require.NotEqual(t, valid.SignedString, forged)

			_, err = ParseSessionToken(params, forged)
			assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
		})
	}
}
