// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is present but is not a
	// valid JSON document of the expected shape.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrNoAccessToken is returned by the auth middleware when the request
	// carries no access_token cookie, or an empty one.
	ErrNoAccessToken = errors.New("no access_token cookie")

	// ErrRouteNotFound is returned for paths and methods no route serves.
	ErrRouteNotFound = errors.New("Route not found")
)
