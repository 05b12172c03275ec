package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WashSaleViolation records a disallowed loss: a loss disposal followed
// (or preceded) by a repurchase of the same token inside the wash-sale
// window. The violation is derived data — it references the loss
// disposal without mutating it, so the original ledger record stays
// trustworthy while the tax effect is represented separately.
//
// Idempotence key: (DisposalID, LotID). Re-running detection must not
// duplicate violations.
type WashSaleViolation struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	DisposalID uuid.UUID // the loss disposal
	LotID      uuid.UUID // the repurchase lot absorbing the deferral

	DaysBetween    int
	DisallowedLoss decimal.Decimal // <= |disposal.GainLoss|

	// AdjustedCostBasis is the repurchase lot's full basis after the
	// deferred loss is added: the loss is moved onto the replacement
	// lot, not destroyed.
	AdjustedCostBasis decimal.Decimal

	DetectedAt time.Time
}
