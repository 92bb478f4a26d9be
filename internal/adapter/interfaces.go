// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients for outbound integrations: the AI
// analysis backend reached over REST and the Gemini model used to turn voice
// transcripts into dashboard commands.
//
// Upstream HTTP failures are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] without knowing the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/fin360/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AIAdapter talks to the AI analysis backend.
type AIAdapter interface {
	// Chat sends a prompt to POST /chatbot and returns the assistant's reply.
	Chat(ctx context.Context, req models.ChatbotRequest) (models.ChatbotResponse, error)
}

// TextGenerator produces a single text completion for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
