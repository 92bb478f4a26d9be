package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

// chatRepository is the SQL implementation of [ChatRepository] over the
// "chats" table.
type chatRepository struct {
	*DB
	logger *logger.Logger
}

// NewChatRepository constructs a [ChatRepository] backed by db.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *chatRepository) Save(ctx context.Context, chat models.ChatRecord) (models.ChatRecord, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	chat.ID = ids.Generate()
	chat.CreatedAt = now
	chat.UpdatedAt = now

	query, args, err := buildInsertChatQuery(r.builder(), chat)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.Save").Msg("failed to create query")
		return models.ChatRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "chatRepository.Save").
			Str("user_id", chat.UserID).
			Msg("failed to insert chat")
		return models.ChatRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return chat, nil
}

func (r *chatRepository) ListAll(ctx context.Context) ([]models.ChatRecord, error) {
	return r.list(ctx, "")
}

func (r *chatRepository) ListByUser(ctx context.Context, userID string) ([]models.ChatRecord, error) {
	return r.list(ctx, userID)
}

func (r *chatRepository) list(ctx context.Context, userID string) ([]models.ChatRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChatsQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.list").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	results := make([]models.ChatRecord, 0, 32)
	err = r.withRetry(ctx, func() error {
		results = results[:0]

		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var c models.ChatRecord
			if scanErr := rows.Scan(
				&c.ID,
				&c.UserID,
				&c.UserMessage,
				&c.BotResponse,
				&c.Intent,
				&c.Confidence,
				&c.CreatedAt,
				&c.UpdatedAt,
			); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			results = append(results, c)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "chatRepository.list").
			Str("user_id", userID).
			Msg("failed to list chats")
		return nil, err
	}

	return results, nil
}
