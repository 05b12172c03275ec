package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AcquisitionEvent is the validated ingestion record for a new lot.
// Upstream decoders hand the engine these typed events; untyped
// payloads never cross the ingestion boundary.
type AcquisitionEvent struct {
	OwnerID   uuid.UUID
	Token     Token
	Amount    decimal.Decimal
	UnitPrice decimal.Decimal
	Timestamp time.Time
	Method    AcquisitionMethod
	SourceRef string
}

// Validate rejects malformed acquisition events before they touch the
// ledger. A failed event is quarantined; the stream continues.
func (e *AcquisitionEvent) Validate() error {
	if e.OwnerID == uuid.Nil {
		return errors.New("acquisition event missing owner")
	}
	if e.Token.Symbol == "" || e.Token.Chain == "" {
		return errors.New("acquisition event missing token identity")
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if e.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if e.Timestamp.IsZero() {
		return errors.New("acquisition event missing timestamp")
	}
	if !ValidMethod(e.Method) {
		return errors.New("unknown acquisition method: " + string(e.Method))
	}
	if e.SourceRef == "" {
		return errors.New("acquisition event missing source ref")
	}
	return nil
}

// DisposalEvent is the validated ingestion record for a disposal.
// Exactly one of TotalProceeds or UnitPrice must be set; the matcher
// works in total proceeds and derives the per-unit rate once.
type DisposalEvent struct {
	OwnerID       uuid.UUID
	Token         Token
	Amount        decimal.Decimal
	TotalProceeds *decimal.Decimal // total fiat received
	UnitPrice     *decimal.Decimal // fiat per unit, alternative to TotalProceeds
	Timestamp     time.Time
	SourceRef     string

	// CryptoToCrypto marks a disposal whose counter-asset is itself
	// crypto; some jurisdictions exempt these entirely.
	CryptoToCrypto bool
}

// Validate rejects malformed disposal events at the ingestion boundary.
func (e *DisposalEvent) Validate() error {
	if e.OwnerID == uuid.Nil {
		return errors.New("disposal event missing owner")
	}
	if e.Token.Symbol == "" || e.Token.Chain == "" {
		return errors.New("disposal event missing token identity")
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if (e.TotalProceeds == nil) == (e.UnitPrice == nil) {
		return errors.New("disposal event must set exactly one of total proceeds or unit price")
	}
	if e.TotalProceeds != nil && e.TotalProceeds.IsNegative() {
		return ErrInvalidPrice
	}
	if e.UnitPrice != nil && e.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if e.Timestamp.IsZero() {
		return errors.New("disposal event missing timestamp")
	}
	if e.SourceRef == "" {
		return errors.New("disposal event missing source ref")
	}
	return nil
}

// Proceeds returns the event's total proceeds, deriving them from the
// unit price when that is how the event was reported.
func (e *DisposalEvent) Proceeds() decimal.Decimal {
	if e.TotalProceeds != nil {
		return *e.TotalProceeds
	}
	return e.UnitPrice.Mul(e.Amount)
}
