package service

import (
	"context"
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/fin360/internal/adapter"
	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/models"
)

type chatService struct {
	chatRepository store.ChatRepository
	aiAdapter      adapter.AIAdapter
	cipher         crypto.Cipher

	logger *logger.Logger
}

// NewChatService constructs a ChatService. aiAdapter may be nil, in which
// case Ask fails with ErrAssistantUnavailable.
func NewChatService(chatRepository store.ChatRepository, aiAdapter adapter.AIAdapter, cipher crypto.Cipher, logger *logger.Logger) ChatService {
	return &chatService{
		chatRepository: chatRepository,
		aiAdapter:      aiAdapter,
		cipher:         cipher,
		logger:         logger,
	}
}

// UploadChatMessage encrypts both message texts and stores the exchange.
// An empty intent or a zero confidence is stored as null. The returned
// message is decrypted from what was saved.
func (c *chatService) UploadChatMessage(ctx context.Context, chat models.ChatInput) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if chat.UserID == "" {
		return models.ChatMessage{}, ErrValidationNoUserID
	}
	if chat.UserMessage == "" || chat.BotResponse == "" {
		return models.ChatMessage{}, ErrValidationNoMessage
	}

	userMessage, err := c.cipher.EncryptValue(crypto.String(chat.UserMessage))
	if err != nil {
		log.Err(err).Str("func", "chatService.UploadChatMessage").Msg("failed to encrypt user message")
		return models.ChatMessage{}, fmt.Errorf("error encrypting user message: %w", err)
	}
	botResponse, err := c.cipher.EncryptValue(crypto.String(chat.BotResponse))
	if err != nil {
		log.Err(err).Str("func", "chatService.UploadChatMessage").Msg("failed to encrypt bot response")
		return models.ChatMessage{}, fmt.Errorf("error encrypting bot response: %w", err)
	}

	record := models.ChatRecord{
		UserID:      chat.UserID,
		UserMessage: models.CipheredValue(userMessage),
		BotResponse: models.CipheredValue(botResponse),
	}
	if chat.Intent != nil && *chat.Intent != "" {
		record.Intent = chat.Intent
	}
	if chat.Confidence != nil && *chat.Confidence != 0 {
		record.Confidence = chat.Confidence
	}

	saved, err := c.chatRepository.Save(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "chatService.UploadChatMessage").Msg("failed to save chat")
		return models.ChatMessage{}, fmt.Errorf("error saving chat: %w", err)
	}

	return c.decryptChat(saved)
}

// GetAllChatMessages returns every stored exchange, oldest first.
func (c *chatService) GetAllChatMessages(ctx context.Context) ([]models.ChatMessage, error) {
	records, err := c.chatRepository.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.GetAllChatMessages").Msg("failed to list chats")
		return nil, fmt.Errorf("error listing chats: %w", err)
	}
	return c.decryptChats(ctx, records)
}

// GetUserChatMessages returns the user's exchanges, oldest first.
func (c *chatService) GetUserChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	records, err := c.chatRepository.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.GetUserChatMessages").Msg("failed to list chats")
		return nil, fmt.Errorf("error listing chats: %w", err)
	}
	return c.decryptChats(ctx, records)
}

// Ask sends the prompt to the AI backend with the default model options
// overridden by any non-zero option in req, then stores the exchange.
func (c *chatService) Ask(ctx context.Context, userID string, req models.AskRequest) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if c.aiAdapter == nil {
		return models.ChatMessage{}, ErrAssistantUnavailable
	}
	if userID == "" {
		return models.ChatMessage{}, ErrValidationNoUserID
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return models.ChatMessage{}, ErrValidationNoPrompt
	}

	options := models.DefaultModelOptions()
	if req.ModelOptions != nil {
		if err := mergo.Merge(&options, *req.ModelOptions, mergo.WithOverride); err != nil {
			return models.ChatMessage{}, fmt.Errorf("error merging model options: %w", err)
		}
	}

	reply, err := c.aiAdapter.Chat(ctx, models.ChatbotRequest{Prompt: prompt, ModelOptions: options})
	if err != nil {
		log.Err(err).Str("func", "chatService.Ask").Str("model", options.ModelName).Msg("ai backend call failed")
		return models.ChatMessage{}, fmt.Errorf("error asking assistant: %w", err)
	}

	return c.UploadChatMessage(ctx, models.ChatInput{
		UserID:      userID,
		UserMessage: prompt,
		BotResponse: reply.Response,
	})
}

func (c *chatService) decryptChats(ctx context.Context, records []models.ChatRecord) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0, len(records))
	for _, record := range records {
		message, err := c.decryptChat(record)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "chatService.decryptChats").Str("chat_id", record.ID).Msg("failed to decrypt chat")
			return nil, fmt.Errorf("error decrypting chat %s: %w", record.ID, err)
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (c *chatService) decryptChat(record models.ChatRecord) (models.ChatMessage, error) {
	userMessage, err := c.cipher.DecryptValue(string(record.UserMessage))
	if err != nil {
		return models.ChatMessage{}, err
	}
	botResponse, err := c.cipher.DecryptValue(string(record.BotResponse))
	if err != nil {
		return models.ChatMessage{}, err
	}

	return models.ChatMessage{
		ID:          record.ID,
		UserID:      record.UserID,
		UserMessage: textOf(userMessage),
		BotResponse: textOf(botResponse),
		Intent:      record.Intent,
		Confidence:  record.Confidence,
		CreatedAt:   record.CreatedAt,
	}, nil
}
