package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

// stockRepository is the SQL implementation of [StockRepository] over the
// "stock_holdings" table.
type stockRepository struct {
	*DB
	logger *logger.Logger
}

// NewStockRepository constructs a [StockRepository] backed by db.
func NewStockRepository(db *DB, logger *logger.Logger) StockRepository {
	logger.Debug().Msg("creating stock repository")
	return &stockRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts the holding with a fresh time-ordered UUID and the current time.
func (r *stockRepository) Save(ctx context.Context, stock models.StockRecord) (models.StockRecord, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	stock.ID = ids.Generate()
	stock.CreatedAt = now
	stock.UpdatedAt = now

	query, args, err := buildInsertStockQuery(r.builder(), stock)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.Save").Msg("failed to create query")
		return models.StockRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "stockRepository.Save").
			Str("user_id", stock.UserID).
			Msg("failed to insert stock holding")
		return models.StockRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return stock, nil
}

func (r *stockRepository) ListByUser(ctx context.Context, userID string) ([]models.StockRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStocksQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.ListByUser").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	results := make([]models.StockRecord, 0, 16)
	err = r.withRetry(ctx, func() error {
		results = results[:0]

		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var s models.StockRecord
			if scanErr := rows.Scan(
				&s.ID,
				&s.UserID,
				&s.StockName,
				&s.TickerSymbol,
				&s.NumberOfShares,
				&s.PurchasePrice,
				&s.PurchaseDate,
				&s.CreatedAt,
				&s.UpdatedAt,
			); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			results = append(results, s)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "stockRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to list stock holdings")
		return nil, err
	}

	return results, nil
}

func (r *stockRepository) Delete(ctx context.Context, userID, stockID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStockQuery(r.builder(), userID, stockID)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "stockRepository.Delete").
			Str("user_id", userID).
			Str("stock_id", stockID).
			Msg("failed to delete stock holding")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrStockNotFound
	}

	return nil
}
