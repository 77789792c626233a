package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.HTTPMetrics

	cookieSecure   bool
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, httpMetrics *metrics.HTTPMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        httpMetrics,
		cookieSecure:   cfg.App.CookieSecure,
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
