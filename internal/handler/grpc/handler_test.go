package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/fin360/internal/logger"
)

func TestHealth(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	ctx := context.Background()

	for _, name := range []string{"", ServiceName} {
		resp, err := h.Health().Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), "service %q", name)
	}

	_, err := h.Health().Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Error(t, err)

	h.Shutdown()
	resp, err := h.Health().Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestRegister(t *testing.T) {
	s := grpc.NewServer()
	NewHandler(nil, logger.Nop()).Register(s)

	_, ok := s.GetServiceInfo()[healthpb.Health_ServiceDesc.ServiceName]
	assert.True(t, ok)
}

func TestUnaryLogging(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})
	buf.Reset()
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, "trace-7"))
	var seen string
	resp, err := h.UnaryLogging(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		logger.FromContext(ctx).Debug().Msg("handled")
		seen = req.(string)
		return "resp", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
	assert.Equal(t, "req", seen)

	_, err = h.UnaryLogging(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	var handled, first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &handled))
	require.NoError(t, json.Unmarshal(lines[1], &first))
	require.NoError(t, json.Unmarshal(lines[2], &second))

	assert.Equal(t, "trace-7", handled["trace_id"])
	assert.Equal(t, "trace-7", first["trace_id"])
	assert.Equal(t, info.FullMethod, first["method"])
	assert.Equal(t, "warn", second["level"])
	assert.Equal(t, "boom", second["error"])
	assert.Len(t, second["trace_id"], 36)
}
