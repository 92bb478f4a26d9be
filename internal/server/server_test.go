package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/handler"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/service"
)

func newHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, &config.StructuredConfig{Server: cfg}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}

	s, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.httpServer)
	require.NotNil(t, srv.gRPCServer)
	assert.Equal(t, "127.0.0.1:0", srv.httpServer.server.Addr)
	assert.Contains(t, srv.gRPCServer.server.GetServiceInfo(), "grpc.health.v1.Health")

	// Stopping servers that never started must not block or panic.
	s.Shutdown()
}

func TestNewServer_OnlyConfiguredTransports(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}

	s, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.Nil(t, srv.httpServer)
	assert.NotNil(t, srv.gRPCServer)
}

func TestNewServer_NothingToRun(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestGRPCServer_ShutdownMarksNotServing(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	h := newHandlers(t, cfg)

	s, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)
	s.Shutdown()

	resp, err := h.GRPC.Health().Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
