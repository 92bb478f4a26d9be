package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

type userDocument struct {
	ID              primitive.ObjectID      `bson:"_id,omitempty"`
	ClerkID         string                  `bson:"clerkId"`
	FullName        string                  `bson:"fullName"`
	Email           string                  `bson:"email"`
	UserName        string                  `bson:"userName"`
	ProfileImageURL string                  `bson:"profileImageUrl"`
	KYCVerified     bool                    `bson:"kycVerified"`
	Role            string                  `bson:"role"`
	IsActive        bool                    `bson:"isActive"`
	Profile         models.CipheredDocument `bson:"profile"`
	CreatedAt       time.Time               `bson:"createdAt"`
	UpdatedAt       time.Time               `bson:"updatedAt"`
}

func (d userDocument) user() models.User {
	return models.User{
		ID:              d.ID.Hex(),
		ClerkID:         d.ClerkID,
		FullName:        d.FullName,
		Email:           d.Email,
		UserName:        d.UserName,
		ProfileImageURL: d.ProfileImageURL,
		KYCVerified:     d.KYCVerified,
		Role:            d.Role,
		IsActive:        d.IsActive,
		Profile:         d.Profile,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// mongoUserRepository implements [UserRepository] over the "users"
// collection. clerkId carries a unique index.
type mongoUserRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoUserRepository constructs a MongoDB backed [UserRepository].
func NewMongoUserRepository(m *Mongo, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		coll:   m.db.Collection(collectionUsers),
		logger: logger,
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := userDocument{
		ID:              primitive.NewObjectID(),
		ClerkID:         user.ClerkID,
		FullName:        user.FullName,
		Email:           user.Email,
		UserName:        user.UserName,
		ProfileImageURL: user.ProfileImageURL,
		KYCVerified:     user.KYCVerified,
		Role:            user.Role,
		IsActive:        user.IsActive,
		Profile:         user.Profile,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "mongoUserRepository.Create").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	return doc.user(), nil
}

func (r *mongoUserRepository) FindByClerkID(ctx context.Context, clerkID string) (models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "clerkId", Value: clerkID}})
}

func (r *mongoUserRepository) FindByID(ctx context.Context, userID string) (models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.D) (models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.User{}, errNotFound(err, ErrUserNotFound)
	}
	return doc.user(), nil
}

func (r *mongoUserRepository) UpdateProfile(ctx context.Context, userID string, profile models.CipheredDocument) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "profile", Value: profile},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoUserRepository.UpdateProfile").
			Str("user_id", userID).
			Msg("failed to update profile")
		return fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
