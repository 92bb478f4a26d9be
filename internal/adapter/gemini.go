package adapter

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
)

type geminiGenerator struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// NewGeminiGenerator constructs a [TextGenerator] backed by the Gemini API.
// baseURL overrides the API endpoint and is empty outside tests.
func NewGeminiGenerator(ctx context.Context, cfg config.Adapter, baseURL string, logger *logger.Logger) (TextGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	if cfg.RequestTimeout > 0 {
		cc.HTTPOptions.Timeout = genai.Ptr(cfg.RequestTimeout)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("error initializing gemini client: %w", err)
	}

	return &geminiGenerator{client: client, model: cfg.GeminiModel, logger: logger}, nil
}

// Generate implements [TextGenerator]. The reply is requested as JSON.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "geminiGenerator.Generate").Str("model", g.model).Msg("gemini request failed")
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
