package service

import (
	"context"

	"github.com/MKhiriev/fin360/models"
)

// StockService manages a user's stock holdings. Every user-entered field is
// encrypted before it reaches storage and decrypted on the way out.
type StockService interface {
	AddStock(ctx context.Context, userID string, input models.StockInput) (models.StockHolding, error)
	FetchAllStocks(ctx context.Context, userID string) ([]models.StockHolding, error)
	DeleteStock(ctx context.Context, userID, stockID string) error
}

// StockServiceWrapper defines middleware composition for StockService.
// Implementations wrap an existing StockService to add behavior such as
// logging or validating.
type StockServiceWrapper interface {
	Wrap(StockService) StockService
}

// ChatService stores assistant conversations with both message texts
// encrypted.
type ChatService interface {
	UploadChatMessage(ctx context.Context, chat models.ChatInput) (models.ChatMessage, error)
	GetAllChatMessages(ctx context.Context) ([]models.ChatMessage, error)
	GetUserChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error)

	// Ask forwards the prompt to the AI backend and stores the exchange.
	Ask(ctx context.Context, userID string, req models.AskRequest) (models.ChatMessage, error)
}

// UserService manages accounts synced from the identity provider and their
// encrypted profiles.
type UserService interface {
	// CreateUser is idempotent: an existing account with the same ClerkID
	// is returned unchanged.
	CreateUser(ctx context.Context, input models.NewUserInput) (models.UserDetails, error)
	UpdateUser(ctx context.Context, userID string, update models.ProfileUpdate) (models.UserDetails, error)
	GetUserDetails(ctx context.Context, userID string) (models.UserDetails, error)
}

type PortfolioService interface {
	Summary(ctx context.Context, userID, currency string) (models.PortfolioSummary, error)
}

type VoiceService interface {
	Interpret(ctx context.Context, req models.VoiceCommandRequest) (models.VoiceCommand, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
