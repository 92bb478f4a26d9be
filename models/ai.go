package models

// ModelOptions tunes the language model behind the AI analysis backend.
// Zero values are replaced with [DefaultModelOptions] before sending.
type ModelOptions struct {
	ModelName     string  `json:"model_name"`
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"top_p"`
	MaxTokens     int     `json:"max_tokens"`
	ContextWindow int     `json:"context_window"`
}

// DefaultModelOptions mirrors the defaults of the AI backend.
func DefaultModelOptions() ModelOptions {
	return ModelOptions{
		ModelName:     "gemini-1.5-flash",
		Temperature:   0.5,
		TopP:          0.95,
		MaxTokens:     2048,
		ContextWindow: 3,
	}
}

// ChatbotRequest is the body of POST /chatbot on the AI backend.
type ChatbotRequest struct {
	Prompt       string       `json:"prompt"`
	ModelOptions ModelOptions `json:"model_options"`
}

// ChatbotResponse is the reply of POST /chatbot. The backend also returns
// its own chat history, which is ignored.
type ChatbotResponse struct {
	Response string `json:"response"`
}
