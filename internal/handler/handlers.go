package handler

import (
	"github.com/MKhiriev/go-gift-catalog/internal/cache"
	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/handler/http"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. rateLimiter may
// be nil.
func NewHandlers(services *service.Services, rateLimiter cache.RateLimiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, rateLimiter, logger),
	}, nil
}
