package matcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/simaogato/cryptotax-backend/internal/usecase/classifier"
	"github.com/simaogato/cryptotax-backend/internal/usecase/ledger"
)

// hoursPerDay converts a holding duration to whole days.
const hoursPerDay = 24

// MatchResult carries everything one disposal event produced. All
// running totals live here, scoped to the invocation — the matcher
// keeps no shared accumulator state.
type MatchResult struct {
	Slices         []*domain.Disposal
	TotalCostBasis decimal.Decimal
	TotalProceeds  decimal.Decimal
	TotalGainLoss  decimal.Decimal

	// Duplicate is set when the event's source ref was already
	// processed; the replay was an idempotent no-op.
	Duplicate bool

	// LowConfidence is set when open lots were exhausted and the
	// remainder was recorded at zero basis.
	LowConfidence bool
}

// MatcherService converts disposal events into Disposal slices by
// greedily consuming the oldest open lots (FIFO).
type MatcherService struct {
	Ledger         *ledger.LedgerService
	DisposalRepo   domain.DisposalRepository
	CheckpointRepo domain.CheckpointRepository
	SettingsRepo   domain.TaxSettingsRepository
	RuleSource     domain.JurisdictionRuleSource

	locks *streamLocks
}

// NewMatcherService creates a new MatcherService instance
func NewMatcherService(
	ledgerService *ledger.LedgerService,
	disposalRepo domain.DisposalRepository,
	checkpointRepo domain.CheckpointRepository,
	settingsRepo domain.TaxSettingsRepository,
	ruleSource domain.JurisdictionRuleSource,
) *MatcherService {
	return &MatcherService{
		Ledger:         ledgerService,
		DisposalRepo:   disposalRepo,
		CheckpointRepo: checkpointRepo,
		SettingsRepo:   settingsRepo,
		RuleSource:     ruleSource,
		locks:          newStreamLocks(),
	}
}

// ProcessDisposal applies one disposal event to the owner's lot ledger.
//
// Logic:
//  1. Validate the event; a malformed event rejects only itself.
//  2. Serialize on the (owner, token, chain) stream lock.
//  3. Replay check: an already-seen source ref is an idempotent no-op.
//  4. Resolve settings and jurisdiction rules once for the event.
//  5. Greedily consume the oldest open lot: take = min(remaining
//     amount, lot remaining), one Disposal slice per lot consumed.
//  6. If lots run out first, record the remainder at zero cost basis
//     flagged LowConfidence — conservative for the taxpayer, and never
//     silently dropped.
//  7. Persist slices, updated lots and the stream checkpoint in one
//     transaction.
//
// Guarantee: slice amounts sum to the event amount, and slice proceeds
// sum to the event proceeds exactly (the final slice takes the exact
// remainder, so no unit of currency is lost to rounding).
func (s *MatcherService) ProcessDisposal(ctx context.Context, event domain.DisposalEvent) (*MatchResult, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	lock := s.locks.acquire(event.OwnerID, event.Token)
	defer lock.Unlock()

	seen, err := s.DisposalRepo.ExistsBySourceRef(ctx, event.OwnerID, event.SourceRef)
	if err != nil {
		return nil, fmt.Errorf("failed to check disposal source ref: %w", err)
	}
	if seen {
		return &MatchResult{Duplicate: true}, nil
	}

	// Settings and rules are resolved once per event, not once per
	// slice, to bound external-lookup latency.
	settings, err := s.SettingsRepo.GetByOwner(ctx, event.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax settings: %w", err)
	}
	rules, err := s.RuleSource.GetRules(ctx, settings.JurisdictionCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load jurisdiction rules: %w", err)
	}

	openLots, err := s.Ledger.LotRepo.OpenLots(ctx, event.OwnerID, event.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to load open lots: %w", err)
	}

	totalProceeds := event.Proceeds()
	unitProceeds := decimal.Zero
	if event.Amount.IsPositive() {
		unitProceeds = totalProceeds.Div(event.Amount)
	}

	result := &MatchResult{
		TotalProceeds: totalProceeds,
	}

	remaining := event.Amount
	allocatedProceeds := decimal.Zero
	var consumed []*domain.Lot

	for _, lot := range openLots {
		if !remaining.IsPositive() {
			break
		}

		take := decimal.Min(remaining, lot.RemainingAmount)
		remaining = remaining.Sub(take)

		// The final slice takes the exact proceeds remainder so the
		// slices reconcile to the event total without rounding drift.
		var proceeds decimal.Decimal
		if remaining.IsZero() {
			proceeds = totalProceeds.Sub(allocatedProceeds)
		} else {
			proceeds = unitProceeds.Mul(take)
		}
		allocatedProceeds = allocatedProceeds.Add(proceeds)

		holdingDays := holdingPeriodDays(lot.AcquiredAt, event.Timestamp)
		category, err := classifier.Classify(classifier.Input{
			Method:            lot.Method,
			HoldingPeriodDays: holdingDays,
			CryptoToCrypto:    event.CryptoToCrypto,
		}, settings, rules)
		if err != nil {
			return nil, err
		}

		if err := s.Ledger.Consume(lot, take); err != nil {
			// Unreachable from correct matching: the take is capped at
			// the lot's remaining amount. Observed anyway means the
			// ledger is corrupt and needs manual audit, not repair.
			return nil, fmt.Errorf("lot %s owner %s: %w", lot.ID, event.OwnerID, err)
		}
		consumed = append(consumed, lot)

		basis := lot.UnitPrice.Mul(take)
		lotID := lot.ID
		result.Slices = append(result.Slices, &domain.Disposal{
			ID:                uuid.New(),
			OwnerID:           event.OwnerID,
			Token:             event.Token,
			LotID:             &lotID,
			DisposedAt:        event.Timestamp,
			UnitPrice:         unitProceeds,
			Amount:            take,
			CostBasisPerUnit:  lot.UnitPrice,
			TotalCostBasis:    basis,
			TotalProceeds:     proceeds,
			GainLoss:          proceeds.Sub(basis),
			HoldingPeriodDays: holdingDays,
			Category:          category,
			SourceRef:         event.SourceRef,
		})
	}

	// Lots exhausted before the requested amount: record the remainder
	// at zero basis rather than dropping it. Zero basis overstates the
	// gain, never understates it, and the flag keeps it visible.
	if remaining.IsPositive() {
		proceeds := totalProceeds.Sub(allocatedProceeds)
		category, err := classifier.Classify(classifier.Input{
			Method:            domain.MethodPurchase,
			HoldingPeriodDays: 0,
			CryptoToCrypto:    event.CryptoToCrypto,
		}, settings, rules)
		if err != nil {
			return nil, err
		}

		result.Slices = append(result.Slices, &domain.Disposal{
			ID:               uuid.New(),
			OwnerID:          event.OwnerID,
			Token:            event.Token,
			DisposedAt:       event.Timestamp,
			UnitPrice:        unitProceeds,
			Amount:           remaining,
			CostBasisPerUnit: decimal.Zero,
			TotalCostBasis:   decimal.Zero,
			TotalProceeds:    proceeds,
			GainLoss:         proceeds,
			Category:         category,
			LowConfidence:    true,
			SourceRef:        event.SourceRef,
		})
		result.LowConfidence = true
	}

	for _, slice := range result.Slices {
		result.TotalCostBasis = result.TotalCostBasis.Add(slice.TotalCostBasis)
		result.TotalGainLoss = result.TotalGainLoss.Add(slice.GainLoss)
	}

	checkpoint := &domain.StreamCheckpoint{
		OwnerID:       event.OwnerID,
		Token:         event.Token,
		LastSourceRef: event.SourceRef,
		LastEventAt:   event.Timestamp,
		UpdatedAt:     time.Now(),
	}

	if err := s.DisposalRepo.RecordMatch(ctx, result.Slices, consumed, checkpoint); err != nil {
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	return result, nil
}

// BackfillResult summarizes a replayed event stream.
type BackfillResult struct {
	Applied     int
	Skipped     int // at or before the stream checkpoint, or duplicates
	Quarantined []QuarantinedEvent
}

// QuarantinedEvent is a poison event set aside with its error. The
// rest of the stream keeps processing.
type QuarantinedEvent struct {
	Event domain.DisposalEvent
	Err   error
}

// ReplayBackfill reprocesses an owner/token stream in ingestion order,
// resuming after the last committed checkpoint. Events are never
// reordered, a malformed event quarantines only itself, and an
// invariant violation (ErrInsufficientLotBalance) aborts the stream
// for manual audit.
func (s *MatcherService) ReplayBackfill(ctx context.Context, events []domain.DisposalEvent) (*BackfillResult, error) {
	result := &BackfillResult{}

	var cp *domain.StreamCheckpoint
	if len(events) > 0 {
		var err error
		cp, err = s.CheckpointRepo.Get(ctx, events[0].OwnerID, events[0].Token)
		if err != nil {
			return nil, fmt.Errorf("failed to load stream checkpoint: %w", err)
		}
	}

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			// Cancelled mid-backfill: everything applied so far is
			// checkpointed, the next run resumes after it.
			return result, err
		}

		if cp != nil && !event.Timestamp.After(cp.LastEventAt) {
			result.Skipped++
			continue
		}

		match, err := s.ProcessDisposal(ctx, event)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientLotBalance) {
				return result, err
			}
			result.Quarantined = append(result.Quarantined, QuarantinedEvent{Event: event, Err: err})
			continue
		}
		if match.Duplicate {
			result.Skipped++
			continue
		}
		result.Applied++
	}

	return result, nil
}

// holdingPeriodDays returns the whole days elapsed between acquisition
// and disposal.
func holdingPeriodDays(acquired, disposed time.Time) int {
	if disposed.Before(acquired) {
		return 0
	}
	return int(disposed.Sub(acquired).Hours() / hoursPerDay)
}
