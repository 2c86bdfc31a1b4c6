package http

import (
	"time"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/metrics"
	"github.com/MKhiriev/voice-notes/internal/service"
	"github.com/MKhiriev/voice-notes/internal/validators"
)

type Handler struct {
	services  *service.Services
	metrics   *metrics.Metrics
	validator validators.Validator

	// dispatchKey guards the dispatcher endpoint when non-empty.
	dispatchKey    string
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		validator:      validators.NewStructValidator(),
		dispatchKey:    cfg.App.DispatchKey,
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
