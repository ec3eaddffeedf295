package http

import (
	"github.com/MKhiriev/go-gift-catalog/internal/cache"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/service"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
)

type Handler struct {
	services *service.Services

	// rateLimiter throttles the member endpoints. Nil disables throttling.
	rateLimiter cache.RateLimiter
	traceIDs    *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, rateLimiter cache.RateLimiter, logger *logger.Logger) *Handler {
	logger.Info().Bool("rate_limit", rateLimiter != nil).Msg("http handler created")
	return &Handler{
		services:    services,
		rateLimiter: rateLimiter,
		traceIDs:    utils.NewTraceIDGenerator(),
		logger:      logger,
	}
}
