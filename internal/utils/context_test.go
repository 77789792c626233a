package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
)

func TestGetClaimsFromContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		want    models.Claims
		wantOK  bool
	}{
		{
			name:   "claims attached",
			ctx:    WithClaims(context.Background(), models.Claims{UserID: "u-1", IsAdmin: true}),
			want:   models.Claims{UserID: "u-1", IsAdmin: true},
			wantOK: true,
		},
		{
			name:   "nothing attached",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "wrong type under key",
			ctx:    context.WithValue(context.Background(), ClaimsCtxKey, "u-1"),
			wantOK: false,
		},
		{
			name:   "empty user id",
			ctx:    WithClaims(context.Background(), models.Claims{IsAdmin: true}),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetClaimsFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "claims", ClaimsCtxKey.String())
}
