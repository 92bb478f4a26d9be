package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/models"
)

type httpAIAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAIAdapter constructs a REST [AIAdapter] for the backend at
// cfg.AIAddress. A bare host:port gets an http:// scheme.
func NewHTTPAIAdapter(cfg config.Adapter, logger *logger.Logger) (AIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.AIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ai backend address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Chat implements [AIAdapter].
func (a *httpAIAdapter) Chat(ctx context.Context, req models.ChatbotRequest) (models.ChatbotResponse, error) {
	var out models.ChatbotResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/chatbot")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpAIAdapter.Chat").Msg("ai backend request failed")
		return models.ChatbotResponse{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpAIAdapter.Chat").
			Int("status", resp.StatusCode()).
			Msg("ai backend returned an error")
		return models.ChatbotResponse{}, err
	}

	if strings.TrimSpace(out.Response) == "" {
		return models.ChatbotResponse{}, ErrEmptyResponse
	}

	return out, nil
}
