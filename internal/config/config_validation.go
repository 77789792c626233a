// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violation is reported, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}
	if cfg.App.TokenDuration < 0 {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}
	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	return err
}
