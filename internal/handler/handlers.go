package handler

import (
	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/handler/grpc"
	"github.com/MKhiriev/fin360/internal/handler/http"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/service"
)

// Handlers holds one handler per enabled transport. A transport is enabled
// when its listen address is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
