package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fin360/models"
)

// StockRepository persists encrypted stock holdings.
type StockRepository interface {
	// Save stores a new holding. ID, CreatedAt and UpdatedAt are assigned
	// by the repository and returned.
	Save(ctx context.Context, stock models.StockRecord) (models.StockRecord, error)

	// ListByUser returns the user's holdings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.StockRecord, error)

	// Delete removes a holding owned by userID. Returns [ErrStockNotFound]
	// when nothing was removed.
	Delete(ctx context.Context, userID, stockID string) error
}

// ChatRepository persists encrypted chat exchanges.
type ChatRepository interface {
	Save(ctx context.Context, chat models.ChatRecord) (models.ChatRecord, error)

	// ListAll returns every stored exchange, oldest first.
	ListAll(ctx context.Context) ([]models.ChatRecord, error)

	// ListByUser returns the user's exchanges, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.ChatRecord, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	// Create stores a new user. Returns [ErrUserAlreadyExists] when the
	// ClerkID is taken.
	Create(ctx context.Context, user models.User) (models.User, error)

	FindByClerkID(ctx context.Context, clerkID string) (models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile replaces the encrypted profile document of a user.
	UpdateProfile(ctx context.Context, userID string, profile models.CipheredDocument) error
}
