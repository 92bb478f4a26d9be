package models

import "github.com/shopspring/decimal"

// PortfolioSummary aggregates a user's holdings by ticker.
type PortfolioSummary struct {
	Currency string `json:"currency"`

	Holdings []HoldingSummary `json:"holdings"`

	TotalInvested          decimal.Decimal `json:"totalInvested"`
	TotalInvestedFormatted string          `json:"totalInvestedFormatted"`
}

// HoldingSummary is one ticker's position: total shares, weighted average
// purchase price, and its share of the portfolio in percent.
type HoldingSummary struct {
	TickerSymbol      string          `json:"tickerSymbol"`
	StockName         string          `json:"stockName"`
	Shares            decimal.Decimal `json:"shares"`
	AveragePrice      decimal.Decimal `json:"averagePrice"`
	Invested          decimal.Decimal `json:"invested"`
	InvestedFormatted string          `json:"investedFormatted"`
	Weight            decimal.Decimal `json:"weight"`
}
