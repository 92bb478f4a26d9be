package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/models"
)

// Field names of an encrypted stock record. They match the JSON names the
// dashboard uses.
const (
	fieldStockName      = "stockName"
	fieldTickerSymbol   = "tickerSymbol"
	fieldNumberOfShares = "numberOfShares"
	fieldPurchasePrice  = "purchasePrice"
	fieldPurchaseDate   = "purchaseDate"
)

type stockService struct {
	stockRepository store.StockRepository
	cipher          crypto.Cipher

	logger *logger.Logger
}

func NewStockService(stockRepository store.StockRepository, cipher crypto.Cipher, logger *logger.Logger) StockService {
	return &stockService{
		stockRepository: stockRepository,
		cipher:          cipher,
		logger:          logger,
	}
}

// AddStock encrypts every user-entered field of input and stores the
// holding. Shares and price are stored as JSON numbers, so they decrypt
// back to numbers.
func (s *stockService) AddStock(ctx context.Context, userID string, input models.StockInput) (models.StockHolding, error) {
	log := logger.FromContext(ctx)

	encrypted, err := encryptFields(s.cipher, map[string]crypto.Value{
		fieldStockName:      crypto.String(input.StockName),
		fieldTickerSymbol:   crypto.String(input.TickerSymbol),
		fieldNumberOfShares: decimalValue(input.NumberOfShares),
		fieldPurchasePrice:  decimalValue(input.PurchasePrice),
		fieldPurchaseDate:   crypto.String(input.PurchaseDate),
	})
	if err != nil {
		log.Err(err).Str("func", "stockService.AddStock").Msg("failed to encrypt stock")
		return models.StockHolding{}, fmt.Errorf("error encrypting stock: %w", err)
	}

	saved, err := s.stockRepository.Save(ctx, models.StockRecord{
		UserID:         userID,
		StockName:      models.CipheredValue(encrypted[fieldStockName]),
		TickerSymbol:   models.CipheredValue(encrypted[fieldTickerSymbol]),
		NumberOfShares: models.CipheredValue(encrypted[fieldNumberOfShares]),
		PurchasePrice:  models.CipheredValue(encrypted[fieldPurchasePrice]),
		PurchaseDate:   models.CipheredValue(encrypted[fieldPurchaseDate]),
	})
	if err != nil {
		log.Err(err).Str("func", "stockService.AddStock").Msg("failed to save stock")
		return models.StockHolding{}, fmt.Errorf("error saving stock: %w", err)
	}

	return models.StockHolding{
		ID:             saved.ID,
		UserID:         saved.UserID,
		StockName:      input.StockName,
		TickerSymbol:   input.TickerSymbol,
		NumberOfShares: input.NumberOfShares,
		PurchasePrice:  input.PurchasePrice,
		PurchaseDate:   input.PurchaseDate,
		CreatedAt:      saved.CreatedAt,
		UpdatedAt:      saved.UpdatedAt,
	}, nil
}

// FetchAllStocks returns the user's holdings, newest first, decrypted. A
// record that cannot be decrypted fails the whole call.
func (s *stockService) FetchAllStocks(ctx context.Context, userID string) ([]models.StockHolding, error) {
	log := logger.FromContext(ctx)

	records, err := s.stockRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "stockService.FetchAllStocks").Msg("failed to list stocks")
		return nil, fmt.Errorf("error listing stocks: %w", err)
	}

	holdings := make([]models.StockHolding, 0, len(records))
	for _, record := range records {
		holding, err := s.decryptStock(record)
		if err != nil {
			log.Err(err).Str("func", "stockService.FetchAllStocks").Str("stock_id", record.ID).Msg("failed to decrypt stock")
			return nil, fmt.Errorf("error decrypting stock %s: %w", record.ID, err)
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}

func (s *stockService) DeleteStock(ctx context.Context, userID, stockID string) error {
	if err := s.stockRepository.Delete(ctx, userID, stockID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "stockService.DeleteStock").Str("stock_id", stockID).Msg("failed to delete stock")
		return fmt.Errorf("error deleting stock: %w", err)
	}
	return nil
}

func (s *stockService) decryptStock(record models.StockRecord) (models.StockHolding, error) {
	fields, err := decryptFields(s.cipher, map[string]string{
		fieldStockName:      string(record.StockName),
		fieldTickerSymbol:   string(record.TickerSymbol),
		fieldNumberOfShares: string(record.NumberOfShares),
		fieldPurchasePrice:  string(record.PurchasePrice),
		fieldPurchaseDate:   string(record.PurchaseDate),
	})
	if err != nil {
		return models.StockHolding{}, err
	}

	holding := models.StockHolding{
		ID:        record.ID,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if holding.StockName, err = requiredText(fields, fieldStockName); err != nil {
		return models.StockHolding{}, err
	}
	if holding.TickerSymbol, err = requiredText(fields, fieldTickerSymbol); err != nil {
		return models.StockHolding{}, err
	}
	if holding.NumberOfShares, err = requiredDecimal(fields, fieldNumberOfShares); err != nil {
		return models.StockHolding{}, err
	}
	if holding.PurchasePrice, err = requiredDecimal(fields, fieldPurchasePrice); err != nil {
		return models.StockHolding{}, err
	}
	if holding.PurchaseDate, err = requiredText(fields, fieldPurchaseDate); err != nil {
		return models.StockHolding{}, err
	}

	return holding, nil
}
