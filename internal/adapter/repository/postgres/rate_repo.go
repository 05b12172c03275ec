package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// fxRateRepository implements domain.FXRateSource against the fx_rates
// table, which an ingestion pipeline fills with daily closing rates.
// Lookups take the most recent rate on or before the requested date so
// weekends and holidays resolve to the last trading day.
type fxRateRepository struct {
	db *DB
}

// NewFXRateRepository creates a new FX rate repository
func NewFXRateRepository(db *DB) domain.FXRateSource {
	return &fxRateRepository{db: db}
}

// GetRate retrieves the rate converting one unit of from into to at the
// given date
func (r *fxRateRepository) GetRate(ctx context.Context, from, to string, date time.Time) (decimal.Decimal, string, error) {
	query := `
		SELECT rate, source
		FROM fx_rates
		WHERE base_currency = $1 AND quote_currency = $2 AND rate_date <= $3
		ORDER BY rate_date DESC
		LIMIT 1
	`

	var rateStr, source string
	err := r.db.QueryRowContext(ctx, query, from, to, date).Scan(&rateStr, &source)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, "", domain.ErrLookupUnavailable
		}
		return decimal.Zero, "", fmt.Errorf("failed to get fx rate: %w", err)
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("failed to parse fx rate: %w", err)
	}

	return rate, source, nil
}

// tokenPriceRepository implements domain.PriceSource against the
// token_prices table, same pipeline and same date semantics as fx_rates.
type tokenPriceRepository struct {
	db *DB
}

// NewTokenPriceRepository creates a new token price repository
func NewTokenPriceRepository(db *DB) domain.PriceSource {
	return &tokenPriceRepository{db: db}
}

// GetPrice retrieves the token's unit price at the given time
func (r *tokenPriceRepository) GetPrice(ctx context.Context, token domain.Token, at time.Time) (decimal.Decimal, error) {
	query := `
		SELECT price
		FROM token_prices
		WHERE symbol = $1 AND chain = $2 AND contract = $3 AND price_date <= $4
		ORDER BY price_date DESC
		LIMIT 1
	`

	var priceStr string
	err := r.db.QueryRowContext(ctx, query, token.Symbol, token.Chain, token.Contract, at).Scan(&priceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.ErrLookupUnavailable
		}
		return decimal.Zero, fmt.Errorf("failed to get token price: %w", err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse token price: %w", err)
	}

	return price, nil
}
