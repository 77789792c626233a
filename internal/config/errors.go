package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no session token signing key was
	// configured. The server refuses to start without one.
	ErrMissingTokenSignKey = errors.New("token sign key is required (APP_TOKEN_SIGN_KEY)")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration: database DSN is required (STORAGE_DB_DATABASE_URI)")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
