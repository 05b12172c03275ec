package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxCategory represents the tax treatment assigned to a disposal slice.
type TaxCategory string

const (
	CategoryShortTerm  TaxCategory = "SHORT_TERM"
	CategoryLongTerm   TaxCategory = "LONG_TERM"
	CategoryNonTaxable TaxCategory = "NON_TAXABLE"
)

// Disposal represents one slice of a disposal event matched against a
// single lot. A disposal event that spans several lots produces one
// Disposal per consumed lot, and the slices sum to the requested
// amount. Disposals are append-only: once written they never change,
// except that the wash-sale detector records its effects on separate
// WashSaleViolation rows, never here.
type Disposal struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Token   Token

	// LotID is nil only for the zero-basis fallback slice created when
	// open lots were exhausted before the requested amount was covered.
	LotID *uuid.UUID

	DisposedAt time.Time
	UnitPrice  decimal.Decimal // proceeds per unit
	Amount     decimal.Decimal

	CostBasisPerUnit decimal.Decimal // copied from the lot at match time
	TotalCostBasis   decimal.Decimal
	TotalProceeds    decimal.Decimal
	GainLoss         decimal.Decimal // TotalProceeds - TotalCostBasis

	HoldingPeriodDays int
	Category          TaxCategory

	// LowConfidence marks the over-disposal fallback: the remainder was
	// recorded with zero basis (worst case for the taxpayer) instead of
	// being dropped. Surfaced, never hidden.
	LowConfidence bool

	SourceRef string

	// Local-currency mirror. Nil means "not yet normalized".
	LocalProceeds      *decimal.Decimal
	LocalCostBasis     *decimal.Decimal
	LocalGainLoss      *decimal.Decimal
	ExchangeRate       *decimal.Decimal
	ExchangeRateSource string
	ExchangeRateDate   *time.Time
}

// IsLoss reports whether the slice realized a loss.
func (d *Disposal) IsLoss() bool {
	return d.GainLoss.IsNegative()
}

// PerUnitLoss returns the magnitude of the loss per disposed unit.
// Zero for gains and zero-amount slices.
func (d *Disposal) PerUnitLoss() decimal.Decimal {
	if !d.IsLoss() || d.Amount.IsZero() {
		return decimal.Zero
	}
	return d.GainLoss.Abs().Div(d.Amount)
}

// Normalized reports whether the local-currency mirror has been filled.
func (d *Disposal) Normalized() bool {
	return d.LocalProceeds != nil && d.ExchangeRate != nil
}

// RealizedSummary aggregates an owner's realized results over a period.
// Totals are computed per call and returned, never accumulated in
// shared state.
type RealizedSummary struct {
	OwnerID         uuid.UUID
	PeriodStart     time.Time
	PeriodEnd       time.Time
	ShortTermGains  decimal.Decimal
	LongTermGains   decimal.Decimal
	OrdinaryIncome  decimal.Decimal
	DisallowedLoss  decimal.Decimal
	LowConfidence   int // slices carrying the zero-basis fallback
	DisposalCount   int
	NormalizedCount int
}
