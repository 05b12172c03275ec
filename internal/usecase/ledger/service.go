package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// LedgerService owns the lot ledger: the ordered store of acquisition
// lots per owner/token that the matcher and wash-sale detector read
// and mutate.
type LedgerService struct {
	LotRepo domain.LotRepository

	// Prices optionally backfills acquisition value for income-method
	// events ingested without one (reward and airdrop feeds rarely
	// carry a fiat price). Nil disables the lookup.
	Prices domain.PriceSource
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(lotRepo domain.LotRepository) *LedgerService {
	return &LedgerService{LotRepo: lotRepo}
}

// AddLot validates an acquisition event and persists it as a new lot.
// Replaying an event with a source ref already ingested for the owner
// is an idempotent no-op: the existing lot is returned unchanged.
func (s *LedgerService) AddLot(ctx context.Context, event domain.AcquisitionEvent) (*domain.Lot, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	// Idempotent replay: same source ref, same lot.
	existing, err := s.LotRepo.GetBySourceRef(ctx, event.OwnerID, event.SourceRef)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrLotNotFound {
		return nil, err
	}

	unitPrice := event.UnitPrice
	if unitPrice.IsZero() && event.Method.IncomeMethod() && s.Prices != nil {
		price, err := s.Prices.GetPrice(ctx, event.Token, event.Timestamp)
		switch {
		case err == nil:
			unitPrice = price
		case errors.Is(err, domain.ErrLookupUnavailable):
			// No quote yet: keep the zero basis, the lot stays
			// unverified until a manual correction.
		default:
			return nil, err
		}
	}

	lot := &domain.Lot{
		ID:              uuid.New(),
		OwnerID:         event.OwnerID,
		Token:           event.Token,
		AcquiredAt:      event.Timestamp,
		Method:          event.Method,
		UnitPrice:       unitPrice,
		OriginalAmount:  event.Amount,
		RemainingAmount: event.Amount,
		DisposedAmount:  decimal.Zero,
		BasisAdjustment: decimal.Zero,
		SourceRef:       event.SourceRef,
		// Income lots still missing a valuation are unverified until a
		// quote arrives or the owner corrects the basis by hand.
		Verified: !(unitPrice.IsZero() && event.Method.IncomeMethod()),
	}

	if err := lot.Validate(); err != nil {
		return nil, err
	}

	if err := s.LotRepo.Create(ctx, lot); err != nil {
		return nil, err
	}

	return lot, nil
}

// OldestOpenLot returns the owner's oldest lot with remaining balance
// for the token. Ordering is acquisition time ascending with insertion
// order as the tie-break, so repeated calls are deterministic.
func (s *LedgerService) OldestOpenLot(ctx context.Context, ownerID uuid.UUID, token domain.Token) (*domain.Lot, error) {
	lots, err := s.LotRepo.OpenLots(ctx, ownerID, token)
	if err != nil {
		return nil, err
	}
	if len(lots) == 0 {
		return nil, domain.ErrNoOpenLots
	}
	return lots[0], nil
}

// Consume decrements a lot's remaining amount and increments its
// disposed amount, in memory. The caller persists the change as part
// of its own transaction.
//
// Consuming more than the remaining amount is unreachable from a
// correct matcher; if it happens the ledger invariants are already
// broken and ErrInsufficientLotBalance is returned so the caller can
// flag the owner's ledger for manual audit.
func (s *LedgerService) Consume(lot *domain.Lot, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(lot.RemainingAmount) {
		return domain.ErrInsufficientLotBalance
	}

	lot.RemainingAmount = lot.RemainingAmount.Sub(amount)
	lot.DisposedAmount = lot.DisposedAmount.Add(amount)

	return lot.Validate()
}

// QueryOpenLots returns the owner's open lots, optionally filtered by
// token, in deterministic FIFO order.
func (s *LedgerService) QueryOpenLots(ctx context.Context, ownerID uuid.UUID, token *domain.Token) ([]*domain.Lot, error) {
	if token != nil {
		return s.LotRepo.OpenLots(ctx, ownerID, *token)
	}

	all, err := s.LotRepo.ListByOwner(ctx, ownerID, nil)
	if err != nil {
		return nil, err
	}

	open := make([]*domain.Lot, 0, len(all))
	for _, lot := range all {
		if lot.Open() {
			open = append(open, lot)
		}
	}
	return open, nil
}

// LotsAcquiredBetween exposes the window scan used by the wash-sale
// detector: lots of the token acquired within [from, to], oldest first.
func (s *LedgerService) LotsAcquiredBetween(ctx context.Context, ownerID uuid.UUID, token domain.Token, from, to time.Time) ([]*domain.Lot, error) {
	return s.LotRepo.ListAcquiredBetween(ctx, ownerID, token, from, to)
}
