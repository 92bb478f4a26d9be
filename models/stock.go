// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInput is a purchase the user records in their portfolio.
// Shares and price accept both JSON numbers and numeric strings.
type StockInput struct {
	StockName      string          `json:"stockName"`
	TickerSymbol   string          `json:"tickerSymbol"`
	NumberOfShares decimal.Decimal `json:"numberOfShares"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`

	// PurchaseDate is kept as the text the user entered, usually an ISO
	// date ("2024-03-01").
	PurchaseDate string `json:"purchaseDate"`
}

// StockRecord is a stock holding as persisted. Every user-entered field is
// encrypted individually; ownership and timestamps stay in clear so they
// can be filtered and sorted on.
type StockRecord struct {
	// ID is assigned by storage on save.
	ID     string `json:"_id"`
	UserID string `json:"userId"`

	StockName      CipheredValue `json:"stockName"`
	TickerSymbol   CipheredValue `json:"tickerSymbol"`
	NumberOfShares CipheredValue `json:"numberOfShares"`
	PurchasePrice  CipheredValue `json:"purchasePrice"`
	PurchaseDate   CipheredValue `json:"purchaseDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the StockRecord model.
func (StockRecord) TableName() string {
	return "stock_holdings"
}

// StockHolding is the decrypted view of a [StockRecord] returned to the
// owner.
type StockHolding struct {
	ID             string          `json:"_id"`
	UserID         string          `json:"userId"`
	StockName      string          `json:"stockName"`
	TickerSymbol   string          `json:"tickerSymbol"`
	NumberOfShares decimal.Decimal `json:"numberOfShares"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	PurchaseDate   string          `json:"purchaseDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Invested returns shares multiplied by purchase price.
func (h StockHolding) Invested() decimal.Decimal {
	return h.NumberOfShares.Mul(h.PurchasePrice)
}
