package models

// Voice command actions understood by the dashboard.
const (
	VoiceActionNavigate = "navigate"
	VoiceActionScroll   = "scroll"
	VoiceActionBack     = "back"
	VoiceActionRefresh  = "refresh"
)

// VoiceCommandRequest carries a transcribed utterance.
type VoiceCommandRequest struct {
	Text string `json:"text"`

	// Language is "en", "hi" or "mr". Anything else is treated as "en".
	Language string `json:"language"`
}

// VoiceCommand is the structured intent extracted from an utterance,
// e.g. {"action":"navigate","target":"profile"}.
type VoiceCommand struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}
