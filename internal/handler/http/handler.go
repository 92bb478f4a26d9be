package http

import (
	"time"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/service"
)

type Handler struct {
	services *service.Services

	// webhookSecret verifies POST /api/users deliveries. Empty disables
	// the route.
	webhookSecret  string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.WebhookSecret == "" {
		logger.Warn().Msg("APP_WEBHOOK_SECRET is empty, user sync webhook will reject every delivery")
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		webhookSecret:  cfg.App.WebhookSecret,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
