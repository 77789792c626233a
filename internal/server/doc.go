// Package server runs the HTTP server of the blog API.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server
