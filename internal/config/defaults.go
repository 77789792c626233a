package config

import "time"

const (
	defaultHTTPAddress        = ":3000"
	defaultShutdownTimeout    = 10 * time.Second
	defaultGoogleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	defaultAdapterTimeout     = 5 * time.Second
	defaultLogLevel           = "info"
)

// applyDefaults fills fields left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Adapter.GoogleTokenInfoURL == "" {
		cfg.Adapter.GoogleTokenInfoURL = defaultGoogleTokenInfoURL
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}
