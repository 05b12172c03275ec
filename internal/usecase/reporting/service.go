package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// ReportingService answers the read-side queries: realized gain/loss
// summaries and wash-sale violation listings. All totals are computed
// per call and returned — nothing accumulates between invocations.
type ReportingService struct {
	LotRepo       domain.LotRepository
	DisposalRepo  domain.DisposalRepository
	ViolationRepo domain.WashSaleViolationRepository
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(
	lotRepo domain.LotRepository,
	disposalRepo domain.DisposalRepository,
	violationRepo domain.WashSaleViolationRepository,
) *ReportingService {
	return &ReportingService{
		LotRepo:       lotRepo,
		DisposalRepo:  disposalRepo,
		ViolationRepo: violationRepo,
	}
}

// ComputeRealizedSummary aggregates an owner's realized results over
// [from, to]:
//   - short/long-term gains from taxable disposal slices,
//   - ordinary income from income-method lots (reward/airdrop/mined)
//     acquired in the period, valued at their acquisition price,
//   - disallowed losses from wash-sale violations in the period.
func (s *ReportingService) ComputeRealizedSummary(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*domain.RealizedSummary, error) {
	summary := &domain.RealizedSummary{
		OwnerID:     ownerID,
		PeriodStart: from,
		PeriodEnd:   to,
	}

	disposals, err := s.DisposalRepo.ListByOwner(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list disposals: %w", err)
	}
	for _, d := range disposals {
		summary.DisposalCount++
		if d.LowConfidence {
			summary.LowConfidence++
		}
		if d.Normalized() {
			summary.NormalizedCount++
		}

		switch d.Category {
		case domain.CategoryShortTerm:
			summary.ShortTermGains = summary.ShortTermGains.Add(d.GainLoss)
		case domain.CategoryLongTerm:
			summary.LongTermGains = summary.LongTermGains.Add(d.GainLoss)
		case domain.CategoryNonTaxable:
			// Excluded from both buckets.
		}
	}

	incomeLots, err := s.LotRepo.ListIncomeLots(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list income lots: %w", err)
	}
	for _, lot := range incomeLots {
		summary.OrdinaryIncome = summary.OrdinaryIncome.Add(lot.UnitPrice.Mul(lot.OriginalAmount))
	}

	violations, err := s.ViolationRepo.ListByOwner(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list wash-sale violations: %w", err)
	}
	for _, v := range violations {
		summary.DisallowedLoss = summary.DisallowedLoss.Add(v.DisallowedLoss)
	}

	return summary, nil
}

// ListWashSaleViolations returns the owner's violations whose loss
// disposal falls in [from, to].
func (s *ReportingService) ListWashSaleViolations(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.WashSaleViolation, error) {
	return s.ViolationRepo.ListByOwner(ctx, ownerID, from, to)
}
