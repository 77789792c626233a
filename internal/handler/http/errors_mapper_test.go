package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", validators.ErrUsernameCase, http.StatusBadRequest, "Username should only be lowercase"},
		{"wrapped validation", fmt.Errorf("sign up: %w", validators.ErrAllFieldsRequired), http.StatusBadRequest, "All fields are required"},
		{"password digest limit", fmt.Errorf("hash: %w", utils.ErrPasswordTooLong), http.StatusBadRequest, "Password must be at most 72 bytes"},
		{"invalid json", fmt.Errorf("%w: %w", ErrInvalidJSON, errors.New("unexpected EOF")), http.StatusBadRequest, "Invalid JSON was passed"},
		{"unauthorized", service.ErrUnauthorizedAccess, http.StatusUnauthorized, "Unauthorized Access"},
		{"incorrect password", service.ErrIncorrectPassword, http.StatusForbidden, "Incorrect Password"},
		{"user update forbidden", service.ErrUserUpdateForbidden, http.StatusForbidden, "User is unauthorized to make these changes"},
		{"user delete forbidden", service.ErrUserDeleteForbidden, http.StatusUnauthorized, "User is not authorized to perform this action"},
		{"list users forbidden", service.ErrListUsersForbidden, http.StatusUnauthorized, "You are not authorized to perform this operation"},
		{"create post forbidden", service.ErrCreatePostForbidden, http.StatusUnauthorized, "You are not authorized to perform this action"},
		{"post change forbidden", service.ErrPostChangeForbidden, http.StatusUnauthorized, "You are not allowed to perform this action"},
		{"on behalf forbidden", service.ErrActOnBehalfForbidden, http.StatusForbidden, "You are not allowed to act on behalf of another user"},
		{"user not found", fmt.Errorf("user search by email failed: %w", store.ErrUserNotFound), http.StatusNotFound, "User not Found"},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound, "Post not found"},
		{"comment not found", store.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
		{"duplicate user", store.ErrUserAlreadyExists, http.StatusConflict, "Username or email already exists"},
		{"something went wrong wins over scan error", fmt.Errorf("%w: %w", service.ErrSomethingWentWrong, store.ErrScanningRow), http.StatusInternalServerError, "Something went wrong"},
		{"google failure wins over user lookup", fmt.Errorf("%w: %w", service.ErrGoogleSignInFailed, store.ErrUserNotFound), http.StatusUnauthorized, "Google sign-in failed"},
		{"store internals stay hidden", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("connection refused")), http.StatusInternalServerError, "Internal Server Error"},
		{"request deadline", fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded), http.StatusGatewayTimeout, "Request timed out"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := resolveError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	t.Run("database failure carries sqlstate", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		err := fmt.Errorf("%w: %w", store.ErrUserAlreadyExists, pgErr)

		rr := httptest.NewRecorder()
		writeError(rr, httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil), err)

		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusConflict, body.StatusCode)
		assert.Equal(t, "Username or email already exists", body.Message)
		assert.Equal(t, pgerrcode.UniqueViolation, body.ErrorCode)
	})

	t.Run("other failures omit errorCode", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrUnauthorizedAccess)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"success":false,"statusCode":401,"message":"Unauthorized Access"}`, rr.Body.String())
	})
}
