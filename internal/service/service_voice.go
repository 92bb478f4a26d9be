package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/fin360/internal/adapter"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

// sitePages are the dashboard sections a voice command can navigate to.
var sitePages = []string{
	"overview", "recent", "games", "cognitive games", "number match game",
	"motor games", "music mania game", "flappy bird game", "nodulus game",
	"emotional games", "color paint game", "social games", "chatbot",
	"game flow", "news", "profile",
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"mr": "Marathi",
}

const voicePromptTemplate = `You control a web dashboard by voice. The user spoke in %s.
Turn the utterance into exactly one JSON object and nothing else.

Allowed actions:
- {"action":"navigate","target":"<page>"} where <page> is one of: %s
- {"action":"scroll","target":"up"} or {"action":"scroll","target":"down"}
- {"action":"back"}
- {"action":"refresh"}

Translate page names spoken in %s to the English names above.
If the utterance matches nothing, reply {"action":"unknown"}.

Utterance: %q`

type voiceService struct {
	generator adapter.TextGenerator

	logger *logger.Logger
}

// NewVoiceService constructs a VoiceService. generator may be nil when no
// model is configured; Interpret then fails with ErrVoiceUnavailable.
func NewVoiceService(generator adapter.TextGenerator, logger *logger.Logger) VoiceService {
	return &voiceService{generator: generator, logger: logger}
}

func (v *voiceService) Interpret(ctx context.Context, req models.VoiceCommandRequest) (models.VoiceCommand, error) {
	log := logger.FromContext(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return models.VoiceCommand{}, ErrValidationNoText
	}
	if v.generator == nil {
		return models.VoiceCommand{}, ErrVoiceUnavailable
	}

	reply, err := v.generator.Generate(ctx, voicePrompt(text, req.Language))
	if err != nil {
		log.Err(err).Str("func", "voiceService.Interpret").Msg("model request failed")
		return models.VoiceCommand{}, err
	}

	cmd, err := parseVoiceCommand(reply)
	if err != nil {
		log.Warn().Err(err).Str("func", "voiceService.Interpret").Str("reply", reply).Msg("unusable model reply")
		return models.VoiceCommand{}, err
	}

	log.Debug().Str("func", "voiceService.Interpret").Str("action", cmd.Action).Str("target", cmd.Target).Msg("voice command recognized")
	return cmd, nil
}

func voicePrompt(text, language string) string {
	name, ok := languageNames[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		name = languageNames["en"]
	}
	return fmt.Sprintf(voicePromptTemplate, name, strings.Join(sitePages, ", "), name, text)
}

// parseVoiceCommand reads the model reply, which may be wrapped in a
// markdown code fence, and checks it against the allowed actions.
func parseVoiceCommand(reply string) (models.VoiceCommand, error) {
	reply = stripCodeFence(reply)

	var cmd models.VoiceCommand
	if err := json.Unmarshal([]byte(reply), &cmd); err != nil {
		return models.VoiceCommand{}, fmt.Errorf("%w: reply is not JSON", ErrUnrecognizedCommand)
	}

	cmd.Action = strings.ToLower(strings.TrimSpace(cmd.Action))
	cmd.Target = strings.ToLower(strings.TrimSpace(cmd.Target))

	switch cmd.Action {
	case models.VoiceActionNavigate:
		if cmd.Target == "" {
			return models.VoiceCommand{}, fmt.Errorf("%w: navigate without target", ErrUnrecognizedCommand)
		}
		if !slices.Contains(sitePages, cmd.Target) {
			return models.VoiceCommand{}, fmt.Errorf("%w: unknown page %q", ErrUnrecognizedCommand, cmd.Target)
		}
	case models.VoiceActionScroll:
		if cmd.Target != "up" && cmd.Target != "down" {
			return models.VoiceCommand{}, fmt.Errorf("%w: scroll %q", ErrUnrecognizedCommand, cmd.Target)
		}
	case models.VoiceActionBack, models.VoiceActionRefresh:
		cmd.Target = ""
	default:
		return models.VoiceCommand{}, fmt.Errorf("%w: action %q", ErrUnrecognizedCommand, cmd.Action)
	}

	return cmd, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
