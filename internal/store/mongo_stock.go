package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

type stockDocument struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	UserID         any                  `bson:"userId"`
	StockName      models.CipheredValue `bson:"stockName"`
	TickerSymbol   models.CipheredValue `bson:"tickerSymbol"`
	NumberOfShares models.CipheredValue `bson:"numberOfShares"`
	PurchasePrice  models.CipheredValue `bson:"purchasePrice"`
	PurchaseDate   models.CipheredValue `bson:"purchaseDate"`
	CreatedAt      time.Time            `bson:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt"`
}

func (d stockDocument) record() models.StockRecord {
	return models.StockRecord{
		ID:             d.ID.Hex(),
		UserID:         ownerHex(d.UserID),
		StockName:      d.StockName,
		TickerSymbol:   d.TickerSymbol,
		NumberOfShares: d.NumberOfShares,
		PurchasePrice:  d.PurchasePrice,
		PurchaseDate:   d.PurchaseDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// mongoStockRepository implements [StockRepository] over the
// "stockholdings" collection.
type mongoStockRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoStockRepository constructs a MongoDB backed [StockRepository].
func NewMongoStockRepository(m *Mongo, logger *logger.Logger) StockRepository {
	logger.Debug().Msg("creating mongo stock repository")
	return &mongoStockRepository{
		coll:   m.db.Collection(collectionStocks),
		logger: logger,
	}
}

func (r *mongoStockRepository) Save(ctx context.Context, stock models.StockRecord) (models.StockRecord, error) {
	log := logger.FromContext(ctx)

	// BSON dates have millisecond precision
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := stockDocument{
		ID:             primitive.NewObjectID(),
		UserID:         ownerRef(stock.UserID),
		StockName:      stock.StockName,
		TickerSymbol:   stock.TickerSymbol,
		NumberOfShares: stock.NumberOfShares,
		PurchasePrice:  stock.PurchasePrice,
		PurchaseDate:   stock.PurchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "mongoStockRepository.Save").Str("user_id", stock.UserID).Msg("failed to insert stock holding")
		return models.StockRecord{}, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	return doc.record(), nil
}

func (r *mongoStockRepository) ListByUser(ctx context.Context, userID string) ([]models.StockRecord, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{ownerFilter(userID)}, opts)
	if err != nil {
		log.Err(err).Str("func", "mongoStockRepository.ListByUser").Str("user_id", userID).Msg("failed to find stock holdings")
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	var docs []stockDocument
	if err = cur.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "mongoStockRepository.ListByUser").Str("user_id", userID).Msg("failed to decode stock holdings")
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	results := make([]models.StockRecord, 0, len(docs))
	for _, d := range docs {
		results = append(results, d.record())
	}
	return results, nil
}

func (r *mongoStockRepository) Delete(ctx context.Context, userID, stockID string) error {
	id, err := primitive.ObjectIDFromHex(stockID)
	if err != nil {
		// not an id this store could have issued
		return ErrStockNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}, ownerFilter(userID)})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoStockRepository.Delete").
			Str("user_id", userID).
			Str("stock_id", stockID).
			Msg("failed to delete stock holding")
		return fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}
	if res.DeletedCount == 0 {
		return ErrStockNotFound
	}
	return nil
}

// errNotFound maps the driver's "no documents" error to notFound.
func errNotFound(err, notFound error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return fmt.Errorf("%w: %w", ErrDocumentStore, err)
}
