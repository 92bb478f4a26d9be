package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

func TestNewStorages_UnknownDriver(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{Driver: "redis"}, logger.Nop())
	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewStorages_SQLite(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/fin360.db"

	s, err := NewStorages(context.Background(), config.Storage{
		Driver: config.DriverSQLite,
		DB:     config.DB{DSN: dsn},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.NotNil(t, s.StockRepository)
	assert.NotNil(t, s.ChatRepository)
	assert.NotNil(t, s.UserRepository)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close(context.Background()))
}

// TestSQLiteStorages_RoundTrip runs the repositories against a real SQLite
// file with migrations applied.
func TestSQLiteStorages_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewStorages(ctx, config.Storage{
		Driver: config.DriverSQLite,
		DB:     config.DB{DSN: "file:" + t.TempDir() + "/fin360.db"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })

	user, err := s.UserRepository.Create(ctx, models.User{ClerkID: "user_1", FullName: "A", Email: "a@x", UserName: "a", Role: "user", IsActive: true, Profile: "{}"})
	require.NoError(t, err)

	_, err = s.UserRepository.Create(ctx, models.User{ClerkID: "user_1", Profile: "{}"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	require.NoError(t, s.UserRepository.UpdateProfile(ctx, user.ID, `{"phoneNumber":"aa:bb"}`))
	found, err := s.UserRepository.FindByClerkID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, models.CipheredDocument(`{"phoneNumber":"aa:bb"}`), found.Profile)
	assert.True(t, found.IsActive)

	first, err := s.StockRepository.Save(ctx, models.StockRecord{UserID: user.ID, StockName: "n1", TickerSymbol: "t1", NumberOfShares: "c1", PurchasePrice: "p1", PurchaseDate: "d1"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := s.StockRepository.Save(ctx, models.StockRecord{UserID: user.ID, StockName: "n2", TickerSymbol: "t2", NumberOfShares: "c2", PurchasePrice: "p2", PurchaseDate: "d2"})
	require.NoError(t, err)

	stocks, err := s.StockRepository.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	assert.Equal(t, second.ID, stocks[0].ID, "newest first")

	assert.ErrorIs(t, s.StockRepository.Delete(ctx, "someone-else", first.ID), ErrStockNotFound)
	require.NoError(t, s.StockRepository.Delete(ctx, user.ID, first.ID))

	_, err = s.ChatRepository.Save(ctx, models.ChatRecord{UserID: user.ID, UserMessage: "m", BotResponse: "b"})
	require.NoError(t, err)
	chats, err := s.ChatRepository.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Nil(t, chats[0].Intent)
}
