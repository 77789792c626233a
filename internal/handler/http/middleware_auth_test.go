// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		setup  func(s *testServices)
	}{
		{
			name: "no cookie",
		},
		{
			name:   "empty cookie",
			cookie: &http.Cookie{Name: accessTokenCookie, Value: ""},
		},
		{
			name:   "cookie with another name",
			cookie: &http.Cookie{Name: "token", Value: testToken},
		},
		{
			name:   "token fails verification",
			cookie: &http.Cookie{Name: accessTokenCookie, Value: "forged"},
			setup: func(s *testServices) {
				s.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Claims{}, service.ErrUnauthorizedAccess)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svcs := newTestHandler(t, config.StructuredConfig{})
			if tt.setup != nil {
				tt.setup(svcs)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/getUsers", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.False(t, nextCalled, "next must not run for a rejected request")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"success":false,"statusCode":401,"message":"Unauthorized Access"}`, rr.Body.String())
		})
	}
}

func TestAuth_AttachesClaims(t *testing.T) {
	h, svcs := newTestHandler(t, config.StructuredConfig{})
	svcs.expectSession(testAdmin)

	var got models.Claims
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/getUsers", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: testToken})
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	require.True(t, ok)
	assert.Equal(t, testAdmin, got)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestCallerFrom(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := callerFrom(req)
	assert.ErrorIs(t, err, service.ErrUnauthorizedAccess)

	req = req.WithContext(utils.WithClaims(req.Context(), testCaller))
	caller, err := callerFrom(req)
	require.NoError(t, err)
	assert.Equal(t, testCaller, caller)
}
