package washsale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// hoursPerDay converts window arithmetic to whole days.
const hoursPerDay = 24

// defaultWindowDays applies when neither the jurisdiction nor the user
// configured a wash-sale window.
const defaultWindowDays = 30

// DetectorService post-processes loss disposals against the lot ledger
// and produces WashSaleViolation records. It never mutates the
// disposals themselves: the deferred loss lands on the repurchase
// lot's basis adjustment, and the violation row carries the tax effect.
type DetectorService struct {
	LotRepo       domain.LotRepository
	DisposalRepo  domain.DisposalRepository
	ViolationRepo domain.WashSaleViolationRepository
	SettingsRepo  domain.TaxSettingsRepository
	RuleSource    domain.JurisdictionRuleSource
}

// NewDetectorService creates a new DetectorService instance
func NewDetectorService(
	lotRepo domain.LotRepository,
	disposalRepo domain.DisposalRepository,
	violationRepo domain.WashSaleViolationRepository,
	settingsRepo domain.TaxSettingsRepository,
	ruleSource domain.JurisdictionRuleSource,
) *DetectorService {
	return &DetectorService{
		LotRepo:       lotRepo,
		DisposalRepo:  disposalRepo,
		ViolationRepo: violationRepo,
		SettingsRepo:  settingsRepo,
		RuleSource:    ruleSource,
	}
}

// Detect scans the owner's loss disposals in [from, to] for wash
// sales. For each loss of token T on date D it matches repurchase lots
// acquired within [D-window, D+window], oldest first — the same greedy
// discipline the FIFO matcher uses — deferring the loss onto each
// repurchase lot until the loss is fully allocated or lots run out.
//
// Detection runs only when both the user's settings and the
// jurisdiction's rules mark wash-sale enforcement active.
//
// Idempotent: the (disposal, lot) pair is the violation key. A pair
// already recorded is counted as allocated and skipped, so re-running
// detection leaves the ledger unchanged.
func (s *DetectorService) Detect(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.WashSaleViolation, error) {
	settings, err := s.SettingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax settings: %w", err)
	}
	rules, err := s.RuleSource.GetRules(ctx, settings.JurisdictionCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load jurisdiction rules: %w", err)
	}

	if !settings.WashSaleEnabled || !rules.WashSaleEnabled {
		return nil, nil
	}

	windowDays := settings.WashSaleWindow(rules)
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	window := time.Duration(windowDays) * hoursPerDay * time.Hour

	losses, err := s.DisposalRepo.ListLosses(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list loss disposals: %w", err)
	}

	var created []*domain.WashSaleViolation
	for _, loss := range losses {
		violations, err := s.detectForLoss(ctx, loss, window)
		if err != nil {
			return nil, err
		}
		created = append(created, violations...)
	}
	return created, nil
}

// detectForLoss allocates one loss disposal across its window's
// repurchase lots.
func (s *DetectorService) detectForLoss(ctx context.Context, loss *domain.Disposal, window time.Duration) ([]*domain.WashSaleViolation, error) {
	lossRemaining := loss.GainLoss.Abs()
	perUnitLoss := loss.PerUnitLoss()
	if perUnitLoss.IsZero() {
		return nil, nil
	}

	windowLots, err := s.LotRepo.ListAcquiredBetween(
		ctx, loss.OwnerID, loss.Token,
		loss.DisposedAt.Add(-window), loss.DisposedAt.Add(window),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan wash-sale window: %w", err)
	}

	var created []*domain.WashSaleViolation
	for _, lot := range windowLots {
		if !lossRemaining.IsPositive() {
			break
		}
		// A lot cannot be its own replacement.
		if loss.LotID != nil && lot.ID == *loss.LotID {
			continue
		}
		if !lot.OriginalAmount.IsPositive() {
			continue
		}

		// Disallow up to the repurchased quantity's worth of the loss,
		// never exceeding what remains of the loss itself.
		disallowed := decimal.Min(lossRemaining, lot.OriginalAmount.Mul(perUnitLoss))
		if !disallowed.IsPositive() {
			continue
		}

		exists, err := s.ViolationRepo.Exists(ctx, loss.ID, lot.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check violation existence: %w", err)
		}
		if exists {
			// Already allocated by a previous run; the computation is
			// deterministic, so count it and move on.
			lossRemaining = lossRemaining.Sub(disallowed)
			continue
		}

		adjusted := lot.AdjustedBasis().Add(disallowed)
		violation := &domain.WashSaleViolation{
			ID:                uuid.New(),
			OwnerID:           loss.OwnerID,
			DisposalID:        loss.ID,
			LotID:             lot.ID,
			DaysBetween:       daysBetween(loss.DisposedAt, lot.AcquiredAt),
			DisallowedLoss:    disallowed,
			AdjustedCostBasis: adjusted,
			DetectedAt:        time.Now(),
		}

		if err := s.ViolationRepo.Create(ctx, violation); err != nil {
			return nil, fmt.Errorf("failed to create violation: %w", err)
		}
		if err := s.LotRepo.UpdateBasisAdjustment(ctx, lot.ID, lot.BasisAdjustment.Add(disallowed)); err != nil {
			return nil, fmt.Errorf("failed to defer loss onto lot basis: %w", err)
		}

		lossRemaining = lossRemaining.Sub(disallowed)
		created = append(created, violation)
	}

	return created, nil
}

func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / hoursPerDay)
}
