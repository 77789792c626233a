package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// errorMapping binds a sentinel to a response status. An empty message means
// the sentinel's own text is shown to the client.
type errorMapping struct {
	err     error
	status  int
	message string
}

// errorMappings is scanned in order and the first match wins. Errors wrapping
// several sentinels resolve to the earliest entry, so service-level
// sentinels come before the store ones they may wrap.
var errorMappings = []errorMapping{
	{err: ErrInvalidJSON, status: http.StatusBadRequest},
	{err: ErrRouteNotFound, status: http.StatusNotFound},
	{err: context.DeadlineExceeded, status: http.StatusGatewayTimeout, message: "Request timed out"},

	{err: validators.ErrAllFieldsRequired, status: http.StatusBadRequest},
	{err: validators.ErrUsernameLength, status: http.StatusBadRequest},
	{err: validators.ErrUsernameSpace, status: http.StatusBadRequest},
	{err: validators.ErrUsernameCase, status: http.StatusBadRequest},
	{err: validators.ErrUsernameCharset, status: http.StatusBadRequest},
	{err: validators.ErrPasswordTooShort, status: http.StatusBadRequest},
	{err: validators.ErrPasswordTooLong, status: http.StatusBadRequest},
	{err: validators.ErrPostFieldsRequired, status: http.StatusBadRequest},
	{err: validators.ErrContentRequired, status: http.StatusBadRequest},
	{err: validators.ErrPostIDRequired, status: http.StatusBadRequest},
	{err: validators.ErrCommentIDRequired, status: http.StatusBadRequest},

	{err: service.ErrUnauthorizedAccess, status: http.StatusUnauthorized},
	{err: service.ErrGoogleSignInFailed, status: http.StatusUnauthorized},
	{err: service.ErrIncorrectPassword, status: http.StatusForbidden},
	{err: service.ErrUserUpdateForbidden, status: http.StatusForbidden},
	{err: service.ErrUserDeleteForbidden, status: http.StatusUnauthorized},
	{err: service.ErrListUsersForbidden, status: http.StatusUnauthorized},
	{err: service.ErrCreatePostForbidden, status: http.StatusUnauthorized},
	{err: service.ErrPostChangeForbidden, status: http.StatusUnauthorized},
	{err: service.ErrActOnBehalfForbidden, status: http.StatusForbidden},
	{err: service.ErrSomethingWentWrong, status: http.StatusInternalServerError},

	{err: store.ErrUserAlreadyExists, status: http.StatusConflict, message: "Username or email already exists"},
	{err: store.ErrUserNotFound, status: http.StatusNotFound, message: "User not Found"},
	{err: store.ErrPostNotFound, status: http.StatusNotFound, message: "Post not found"},
	{err: store.ErrCommentNotFound, status: http.StatusNotFound, message: "Comment not found"},
}

// resolveError returns the response status and public message for err.
// Unmapped errors are internal and never leak their text.
func resolveError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.message != "" {
				return m.status, m.message
			}
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request-scoped logger and writes the uniform
// error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := resolveError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
		ErrorCode:  store.SQLState(err),
	}, status)
}
