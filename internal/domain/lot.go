package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AcquisitionMethod represents how a lot entered the owner's holdings.
// The set is closed: the classifier switches exhaustively over it and
// rejects anything else at the ingestion boundary.
type AcquisitionMethod string

const (
	MethodPurchase   AcquisitionMethod = "PURCHASE"
	MethodReward     AcquisitionMethod = "REWARD"
	MethodAirdrop    AcquisitionMethod = "AIRDROP"
	MethodMined      AcquisitionMethod = "MINED"
	MethodTransferIn AcquisitionMethod = "TRANSFER_IN"
)

// ValidMethod reports whether m is one of the known acquisition methods.
func ValidMethod(m AcquisitionMethod) bool {
	switch m {
	case MethodPurchase, MethodReward, MethodAirdrop, MethodMined, MethodTransferIn:
		return true
	}
	return false
}

// IncomeMethod reports whether acquiring via m recognizes ordinary
// income at acquisition time (rewards, airdrops, mining). The later
// disposal of such a lot is still a regular capital event.
func (m AcquisitionMethod) IncomeMethod() bool {
	return m == MethodReward || m == MethodAirdrop || m == MethodMined
}

// Token identifies an asset: symbol plus chain, with an optional
// contract address to disambiguate same-symbol tokens across contracts.
type Token struct {
	Symbol   string
	Chain    string
	Contract string // empty for native assets
}

// Lot represents a discrete acquisition of a token at a known cost
// basis and date, partially or fully available for future disposal.
//
// Lots are never deleted. After creation only RemainingAmount,
// DisposedAmount, BasisAdjustment and the local-currency mirror fields
// may change; everything else is fixed at acquisition to keep the
// ledger reconstructable.
type Lot struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Token      Token
	AcquiredAt time.Time
	Method     AcquisitionMethod

	// UnitPrice is the fiat acquisition price per unit in the base
	// currency. Monetary quantities are decimals throughout; binary
	// floats are not allowed anywhere money flows.
	UnitPrice       decimal.Decimal
	OriginalAmount  decimal.Decimal
	RemainingAmount decimal.Decimal
	DisposedAmount  decimal.Decimal

	// BasisAdjustment accumulates wash-sale losses deferred onto this
	// lot as the replacement purchase. It never decreases.
	BasisAdjustment decimal.Decimal

	SourceRef string
	Verified  bool

	// Local-currency mirror. Nil pointers mean "not yet normalized",
	// never zero.
	LocalUnitPrice     *decimal.Decimal
	ExchangeRate       *decimal.Decimal
	ExchangeRateSource string
	ExchangeRateDate   *time.Time
}

// Validate ensures the lot adheres to the ledger invariants:
// amounts conserve (remaining + disposed == original), nothing is
// negative, and the original amount is strictly positive.
func (l *Lot) Validate() error {
	if l.OriginalAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if l.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if l.RemainingAmount.IsNegative() || l.DisposedAmount.IsNegative() {
		return ErrInsufficientLotBalance
	}
	if !l.RemainingAmount.Add(l.DisposedAmount).Equal(l.OriginalAmount) {
		return ErrInsufficientLotBalance
	}
	return nil
}

// Open reports whether the lot still has units available for disposal.
func (l *Lot) Open() bool {
	return l.RemainingAmount.IsPositive()
}

// CostBasis returns the lot's total basis for amount units at the
// acquisition price, before any wash-sale adjustment.
func (l *Lot) CostBasis(amount decimal.Decimal) decimal.Decimal {
	return l.UnitPrice.Mul(amount)
}

// AdjustedBasis returns the full-lot basis including deferred
// wash-sale losses.
func (l *Lot) AdjustedBasis() decimal.Decimal {
	return l.UnitPrice.Mul(l.OriginalAmount).Add(l.BasisAdjustment)
}

// Normalized reports whether the local-currency mirror has been filled.
func (l *Lot) Normalized() bool {
	return l.LocalUnitPrice != nil && l.ExchangeRate != nil
}
