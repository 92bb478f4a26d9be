package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

type chatDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	UserID      any                  `bson:"userId"`
	UserMessage models.CipheredValue `bson:"userMessage"`
	BotResponse models.CipheredValue `bson:"botResponse"`
	Intent      *string              `bson:"intent"`
	Confidence  *float64             `bson:"confidence"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func (d chatDocument) record() models.ChatRecord {
	return models.ChatRecord{
		ID:          d.ID.Hex(),
		UserID:      ownerHex(d.UserID),
		UserMessage: d.UserMessage,
		BotResponse: d.BotResponse,
		Intent:      d.Intent,
		Confidence:  d.Confidence,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// mongoChatRepository implements [ChatRepository] over the "chats"
// collection.
type mongoChatRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoChatRepository constructs a MongoDB backed [ChatRepository].
func NewMongoChatRepository(m *Mongo, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating mongo chat repository")
	return &mongoChatRepository{
		coll:   m.db.Collection(collectionChats),
		logger: logger,
	}
}

func (r *mongoChatRepository) Save(ctx context.Context, chat models.ChatRecord) (models.ChatRecord, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := chatDocument{
		ID:          primitive.NewObjectID(),
		UserID:      ownerRef(chat.UserID),
		UserMessage: chat.UserMessage,
		BotResponse: chat.BotResponse,
		Intent:      chat.Intent,
		Confidence:  chat.Confidence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoChatRepository.Save").
			Str("user_id", chat.UserID).
			Msg("failed to insert chat")
		return models.ChatRecord{}, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	return doc.record(), nil
}

func (r *mongoChatRepository) ListAll(ctx context.Context) ([]models.ChatRecord, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoChatRepository) ListByUser(ctx context.Context, userID string) ([]models.ChatRecord, error) {
	return r.find(ctx, bson.D{ownerFilter(userID)})
}

func (r *mongoChatRepository) find(ctx context.Context, filter bson.D) ([]models.ChatRecord, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "mongoChatRepository.find").Msg("failed to find chats")
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	var docs []chatDocument
	if err = cur.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "mongoChatRepository.find").Msg("failed to decode chats")
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	results := make([]models.ChatRecord, 0, len(docs))
	for _, d := range docs {
		results = append(results, d.record())
	}
	return results, nil
}
