package adapter

import (
	"context"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
)

// Adapters bundles the outbound clients. A field is nil when the matching
// integration is not configured.
type Adapters struct {
	AI    AIAdapter
	Voice TextGenerator
}

// NewAdapters builds the clients enabled by cfg: the AI backend when
// AIAddress is set and the Gemini generator when GeminiAPIKey is set.
func NewAdapters(ctx context.Context, cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	adapters := &Adapters{}

	if cfg.AIAddress != "" {
		ai, err := NewHTTPAIAdapter(cfg, log)
		if err != nil {
			return nil, err
		}
		adapters.AI = ai
	} else {
		log.Warn().Str("func", "NewAdapters").Msg("ai backend address is not set, /chatbot is disabled")
	}

	if cfg.GeminiAPIKey != "" {
		voice, err := NewGeminiGenerator(ctx, cfg, "", log)
		if err != nil {
			return nil, err
		}
		adapters.Voice = voice
	} else {
		log.Warn().Str("func", "NewAdapters").Msg("gemini api key is not set, voice commands are disabled")
	}

	return adapters, nil
}
