package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAppVersion_ReturnsBuildVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-01", "abc123"), logger.Nop())

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_NotInjected(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestGetBuildInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "today", "deadbeef"), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info := svc.GetBuildInfo(ctx)
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "today", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
}
