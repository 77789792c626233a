// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the outbound integrations of the
// go-blog server.
//
// The only integration is [GoogleVerifier], which checks Google ID tokens
// presented at sign-in against Google's tokeninfo endpoint. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] (e.g. [ErrInvalidIDToken] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/google_verifier_mock.go -package=mock

// GoogleVerifier verifies Google ID tokens.
type GoogleVerifier interface {
	// VerifyIDToken asks Google whether idToken is valid and was issued for
	// the configured client. On success it returns the identity asserted by
	// the token. The email must be verified by Google.
	VerifyIDToken(ctx context.Context, idToken string) (models.GoogleIdentity, error)
}
