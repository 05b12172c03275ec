package testutil

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// StaticRules is a JurisdictionRuleSource backed by a fixed map.
type StaticRules struct {
	Rules map[string]domain.JurisdictionRules
}

// GetRules returns the configured rules for the code, or
// ErrLookupUnavailable if the code is unknown.
func (s *StaticRules) GetRules(ctx context.Context, code string) (domain.JurisdictionRules, error) {
	rules, ok := s.Rules[code]
	if !ok {
		return domain.JurisdictionRules{}, domain.ErrLookupUnavailable
	}
	return rules, nil
}

// USRules returns a rule source preloaded with US-style defaults:
// 365-day long-term threshold, crypto-to-crypto taxable, wash sales
// enforced with a 30-day window.
func USRules() *StaticRules {
	return &StaticRules{Rules: map[string]domain.JurisdictionRules{
		"US": {
			Code:                  "US",
			LongTermThresholdDays: 365,
			CryptoToCryptoTaxable: true,
			WashSaleEnabled:       true,
			WashSaleWindowDays:    30,
		},
	}}
}

// StaticFX is an FXRateSource returning one fixed rate, or failing
// for the first FailFor calls to exercise retry paths.
type StaticFX struct {
	Rate    decimal.Decimal
	Source  string
	FailFor int

	Calls int
}

func (f *StaticFX) GetRate(ctx context.Context, from, to string, date time.Time) (decimal.Decimal, string, error) {
	f.Calls++
	if f.Calls <= f.FailFor {
		return decimal.Zero, "", domain.ErrLookupUnavailable
	}
	return f.Rate, f.Source, nil
}

// StaticPrices is a PriceSource returning one fixed price per symbol.
type StaticPrices struct {
	Prices map[string]decimal.Decimal
}

func (p *StaticPrices) GetPrice(ctx context.Context, token domain.Token, at time.Time) (decimal.Decimal, error) {
	price, ok := p.Prices[token.Symbol]
	if !ok {
		return decimal.Zero, domain.ErrLookupUnavailable
	}
	return price, nil
}
