package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

const defaultCurrency = money.INR

var hundred = decimal.NewFromInt(100)

type portfolioService struct {
	stocks StockService

	logger *logger.Logger
}

// NewPortfolioService builds summaries on top of the decrypted holdings
// returned by stocks. Nothing is stored: the summary is recomputed on every
// call.
func NewPortfolioService(stocks StockService, logger *logger.Logger) PortfolioService {
	return &portfolioService{stocks: stocks, logger: logger}
}

// Summary groups the user's holdings by ticker. Amounts are formatted in
// currency (INR when empty); no conversion takes place, the purchase prices
// are assumed to be in that currency already.
func (p *portfolioService) Summary(ctx context.Context, userID, currency string) (models.PortfolioSummary, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return models.PortfolioSummary{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}

	holdings, err := p.stocks.FetchAllStocks(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "portfolioService.Summary").Msg("failed to fetch holdings")
		return models.PortfolioSummary{}, err
	}

	byTicker := make(map[string]*models.HoldingSummary)
	total := decimal.Zero
	for _, h := range holdings {
		s, ok := byTicker[h.TickerSymbol]
		if !ok {
			s = &models.HoldingSummary{TickerSymbol: h.TickerSymbol, StockName: h.StockName}
			byTicker[h.TickerSymbol] = s
		}
		invested := h.Invested()
		s.Shares = s.Shares.Add(h.NumberOfShares)
		s.Invested = s.Invested.Add(invested)
		total = total.Add(invested)
	}

	summary := models.PortfolioSummary{
		Currency:               cur.Code,
		Holdings:               make([]models.HoldingSummary, 0, len(byTicker)),
		TotalInvested:          total,
		TotalInvestedFormatted: formatAmount(total, cur),
	}
	for _, s := range byTicker {
		if !s.Shares.IsZero() {
			s.AveragePrice = s.Invested.Div(s.Shares).Round(int32(cur.Fraction))
		}
		if !total.IsZero() {
			s.Weight = s.Invested.Div(total).Mul(hundred).Round(2)
		}
		s.InvestedFormatted = formatAmount(s.Invested, cur)
		summary.Holdings = append(summary.Holdings, *s)
	}

	slices.SortFunc(summary.Holdings, func(a, b models.HoldingSummary) int {
		if c := b.Invested.Cmp(a.Invested); c != 0 {
			return c
		}
		return cmp.Compare(a.TickerSymbol, b.TickerSymbol)
	})

	return summary, nil
}

// formatAmount renders amount with the currency's symbol and grouping,
// rounded to its minor unit.
func formatAmount(amount decimal.Decimal, cur *money.Currency) string {
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
