package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/server"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Bool("google_verification", cfg.App.GoogleClientID != "").
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	googleVerifier, err := newGoogleVerifier(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating google verifier")
	}

	services := service.NewServices(storages, googleVerifier, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("version", services.AppInfoService.GetAppVersion(context.Background())).Msg("starting go-blog server")
	srv.RunServer()
}

// newGoogleVerifier returns nil when no Google client id is configured. In
// that mode /api/auth/google trusts the email in the request body.
func newGoogleVerifier(cfg *config.StructuredConfig, log *logger.Logger) (adapter.GoogleVerifier, error) {
	if cfg.App.GoogleClientID == "" {
		log.Warn().
			Str("route", "/api/auth/google").
			Msg("google id token verification is disabled; any caller can obtain a session for any registered email. Set APP_GOOGLE_CLIENT_ID to enable it")
		return nil, nil
	}

	return adapter.NewGoogleVerifier(cfg.Adapter, cfg.App, log)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
