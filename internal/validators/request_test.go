// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Post{}), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), models.SignUpRequest{}, "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_SignUp(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid",
			req:  models.SignUpRequest{Username: "johndoe1", Email: "j@x.io", Password: "secret1"},
		},
		{
			name: "valid pointer",
			req:  &models.SignUpRequest{Username: "johndoe1", Email: "j@x.io", Password: "secret1"},
		},
		{
			name:    "missing email",
			req:     models.SignUpRequest{Username: "johndoe1", Password: "secret1"},
			wantErr: ErrAllFieldsRequired,
		},
		{
			name:    "missing everything reports required first",
			req:     models.SignUpRequest{},
			wantErr: ErrAllFieldsRequired,
		},
		{
			name:    "bad username",
			req:     models.SignUpRequest{Username: "John Doe", Email: "j@x.io", Password: "secret1"},
			wantErr: ErrUsernameSpace,
		},
		{
			name:    "password beyond bcrypt limit",
			req:     models.SignUpRequest{Username: "johndoe1", Email: "j@x.io", Password: strings.Repeat("p", 73)},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:   "scoped to required only skips username rules",
			req:    models.SignUpRequest{Username: "JD", Email: "j@x.io", Password: "p"},
			fields: []string{FieldRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SignIn(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SignInRequest{Email: "a@b.c", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SignInRequest{Email: "a@b.c"}), ErrAllFieldsRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.SignInRequest{Password: "x"}), ErrAllFieldsRequired)
}

func TestValidate_UpdateUser(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.UpdateUserRequest
		wantErr error
	}{
		{name: "empty update", req: models.UpdateUserRequest{}},
		{name: "picture only", req: models.UpdateUserRequest{ProfilePicture: ptr("http://img")}},
		{name: "valid username and password", req: models.UpdateUserRequest{Username: ptr("janedoe1"), Password: ptr("secret1")}},
		{name: "empty strings are ignored", req: models.UpdateUserRequest{Username: ptr(""), Password: ptr("")}},
		{name: "short password", req: models.UpdateUserRequest{Password: ptr("abc")}, wantErr: ErrPasswordTooShort},
		{name: "long password", req: models.UpdateUserRequest{Password: ptr(strings.Repeat("p", 80))}, wantErr: ErrPasswordTooLong},
		{name: "bad username", req: models.UpdateUserRequest{Username: ptr("JaneDoe1")}, wantErr: ErrUsernameCase},
		{
			name:    "password checked before username",
			req:     models.UpdateUserRequest{Username: ptr("x"), Password: ptr("abc")},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CreatePost(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreatePostRequest{Title: "T", Content: "C"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreatePostRequest{Title: "T"}), ErrPostFieldsRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.CreatePostRequest{Content: "C"}), ErrPostFieldsRequired)
}

func TestValidate_Comments(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateCommentRequest{Content: "hi", UserID: "u", PostID: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateCommentRequest{Content: "hi", UserID: "u"}), ErrAllFieldsRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.CreateCommentRequest{UserID: "u", PostID: "p"}), ErrAllFieldsRequired)

	assert.NoError(t, v.Validate(ctx, models.EditCommentRequest{Content: "edited"}))
	assert.ErrorIs(t, v.Validate(ctx, models.EditCommentRequest{}), ErrContentRequired)
}

func TestPasswordLimit_MatchesDigestLimit(t *testing.T) {
	v := NewRequestValidator()

	atLimit := models.UpdateUserRequest{Password: ptr(strings.Repeat("p", utils.MaxPasswordBytes))}
	require.NoError(t, v.Validate(context.Background(), atLimit))

	overLimit := models.UpdateUserRequest{Password: ptr(strings.Repeat("p", utils.MaxPasswordBytes+1))}
	err := v.Validate(context.Background(), overLimit)
	assert.ErrorIs(t, err, utils.ErrPasswordTooLong)
}
