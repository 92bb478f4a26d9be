package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/fin360/models"
)

// StockValidationService checks and normalizes requests before they reach
// the wrapped StockService.
type StockValidationService struct {
	inner StockService
}

func NewStockValidationService() StockServiceWrapper {
	return &StockValidationService{}
}

func (v *StockValidationService) Wrap(inner StockService) StockService {
	v.inner = inner
	return v
}

// AddStock trims the text fields, upper-cases the ticker and rejects
// negative amounts.
func (v *StockValidationService) AddStock(ctx context.Context, userID string, input models.StockInput) (models.StockHolding, error) {
	if userID == "" {
		return models.StockHolding{}, ErrValidationNoUserID
	}

	normalized, err := normalizeStockInput(input)
	if err != nil {
		return models.StockHolding{}, err
	}

	return v.inner.AddStock(ctx, userID, normalized)
}

func (v *StockValidationService) FetchAllStocks(ctx context.Context, userID string) ([]models.StockHolding, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.FetchAllStocks(ctx, userID)
}

func (v *StockValidationService) DeleteStock(ctx context.Context, userID, stockID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if strings.TrimSpace(stockID) == "" {
		return ErrValidationNoStockID
	}
	return v.inner.DeleteStock(ctx, userID, strings.TrimSpace(stockID))
}

func normalizeStockInput(input models.StockInput) (models.StockInput, error) {
	input.StockName = strings.TrimSpace(input.StockName)
	input.TickerSymbol = strings.ToUpper(strings.TrimSpace(input.TickerSymbol))
	input.PurchaseDate = strings.TrimSpace(input.PurchaseDate)

	switch {
	case input.StockName == "":
		return models.StockInput{}, ErrValidationNoStockName
	case input.TickerSymbol == "":
		return models.StockInput{}, ErrValidationNoTicker
	case input.NumberOfShares.IsNegative():
		return models.StockInput{}, ErrValidationNegativeShares
	case input.PurchasePrice.IsNegative():
		return models.StockInput{}, ErrValidationNegativePrice
	case input.PurchaseDate == "":
		return models.StockInput{}, ErrValidationNoPurchaseDate
	}

	return input, nil
}
