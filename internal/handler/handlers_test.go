package handler

import (
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewHandlers only stores the services pointer, so nil is safe for
// construction-time tests.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}

	h, err := NewHandlers(nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init(), "router must build without services")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentMetrics(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}

	assert.NotPanics(t, func() {
		_, _ = NewHandlers(nil, cfg, logger.Nop())
		_, _ = NewHandlers(nil, cfg, logger.Nop())
	}, "each handler set registers its collectors in its own registry")
}
