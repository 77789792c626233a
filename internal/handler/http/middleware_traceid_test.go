package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithTraceID(h *Handler, incoming string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/post/getPosts", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", requestTraceID: ""},
		{name: "oversized trace ID is replaced", requestTraceID: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			nextCalled := false

			rr := runWithTraceID(h, tt.requestTraceID, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			}))

			responseTraceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseTraceID)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			} else {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", responseTraceID)
			}

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := runWithTraceID(h, "", next).Header().Get(traceIDHeader)
		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	var ctxLogger *logger.Logger

	runWithTraceID(h, "trace-context-test", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
	}))

	require.NotNil(t, ctxLogger)
}
