package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context logger writes to buf, the
// way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/post/getPosts",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"posts":[]}`,
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/post/getPosts"`,
				`"status":200`,
				`"duration":`,
				`"size":12`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/comment/create",
			handlerStatus:   http.StatusCreated,
			handlerResponse: `{}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
			},
		},
		{
			name:          "PATCH 404",
			method:        http.MethodPatch,
			path:          "/api/comment/editComment/missing",
			handlerStatus: http.StatusNotFound,
			checkLogContains: []string{
				`"method":"PATCH"`,
				`"status":404`,
				`"size":0`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodPatch,
			path:            "/api/comment/updateLikeForComments?commentId=c1&userId=u1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/api/comment/updateLikeForComments?commentId=c1&userId=u1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_NothingWrittenLogs200(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	}, "withLogging should not recover panics")
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
