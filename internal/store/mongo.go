// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
)

// Collection names of the document store.
const (
	collectionStocks = "stockholdings"
	collectionChats  = "chats"
	collectionUsers  = "users"
)

// Mongo is an open MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to cfg.URI, pings the primary and makes sure the
// indexes the repositories rely on exist.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo")
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	m := &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		logger: log,
	}

	if err = m.ensureIndexes(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: collectionUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "clerkId", Value: 1}},
				Options: options.Index().SetName("clerkId").SetUnique(true),
			},
		},
		{
			collection: collectionStocks,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("userId_createdAt"),
			},
		},
		{
			collection: collectionChats,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("userId_createdAt"),
			},
		},
	}

	// createIndexes is a no-op for an index that already exists with the
	// same name and keys.
	for _, idx := range indexes {
		if _, err := m.db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("%w: index %s.%s: %w", ErrDocumentStore, idx.collection, *idx.model.Options.Name, err)
		}
	}

	return nil
}

// ownerRef is the userId stored on holdings and chats. Users are keyed by
// ObjectId, so their ids are stored as ObjectId too; anything that is not
// an ObjectId hex is kept as a string.
func ownerRef(userID string) any {
	if id, err := primitive.ObjectIDFromHex(userID); err == nil {
		return id
	}
	return userID
}

// ownerFilter matches documents owned by userID whether userId was stored as
// an ObjectId or as its hex string.
func ownerFilter(userID string) bson.E {
	ref := ownerRef(userID)
	if _, ok := ref.(primitive.ObjectID); !ok {
		return bson.E{Key: "userId", Value: userID}
	}
	return bson.E{Key: "userId", Value: bson.D{{Key: "$in", Value: bson.A{ref, userID}}}}
}

// ownerHex reads a decoded userId back into its string form.
func ownerHex(v any) string {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case string:
		return t
	default:
		return ""
	}
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
