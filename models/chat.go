package models

import "time"

// ChatInput is one exchange between a user and the assistant.
type ChatInput struct {
	UserID      string `json:"userId"`
	UserMessage string `json:"userMessage"`
	BotResponse string `json:"botResponse"`

	// Intent and Confidence come from the intent classifier and are not
	// sensitive; they are stored in clear.
	Intent     *string  `json:"intent,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// ChatRecord is a chat exchange as persisted, with both message texts
// encrypted.
type ChatRecord struct {
	ID          string        `json:"_id"`
	UserID      string        `json:"userId"`
	UserMessage CipheredValue `json:"userMessage"`
	BotResponse CipheredValue `json:"botResponse"`
	Intent      *string       `json:"intent"`
	Confidence  *float64      `json:"confidence"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the ChatRecord model.
func (ChatRecord) TableName() string {
	return "chats"
}

// ChatMessage is the decrypted view of a [ChatRecord].
type ChatMessage struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Intent      *string   `json:"intent"`
	Confidence  *float64  `json:"confidence"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AskRequest is a question sent to the assistant on behalf of a user.
type AskRequest struct {
	Prompt       string        `json:"prompt"`
	ModelOptions *ModelOptions `json:"model_options,omitempty"`
}
