package normalizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// SameCurrencySource is the sentinel rate source recorded when the
// reporting currency equals the base currency: rate exactly 1, no
// lookup performed.
const SameCurrencySource = "same-currency"

const (
	maxAttempts    = 3
	initialBackoff = 100 * time.Millisecond
	sweepBatchSize = 100
)

// NormalizerService attaches local-currency mirrors to lots and
// disposals. Nil mirror fields mean "not yet normalized" — never zero —
// and the sweep re-attempts them later.
type NormalizerService struct {
	LotRepo      domain.LotRepository
	DisposalRepo domain.DisposalRepository
	SettingsRepo domain.TaxSettingsRepository
	FXSource     domain.FXRateSource
}

// NewNormalizerService creates a new NormalizerService instance
func NewNormalizerService(
	lotRepo domain.LotRepository,
	disposalRepo domain.DisposalRepository,
	settingsRepo domain.TaxSettingsRepository,
	fxSource domain.FXRateSource,
) *NormalizerService {
	return &NormalizerService{
		LotRepo:      lotRepo,
		DisposalRepo: disposalRepo,
		SettingsRepo: settingsRepo,
		FXSource:     fxSource,
	}
}

// NormalizeLot fills and persists the lot's local-currency mirror.
// On lookup failure the mirror stays nil and ErrLookupUnavailable is
// returned; the lot remains visible to the sweep.
func (s *NormalizerService) NormalizeLot(ctx context.Context, lot *domain.Lot, base, reporting string) error {
	rate, source, err := s.lookupRate(ctx, base, reporting, lot.AcquiredAt)
	if err != nil {
		return err
	}

	localPrice := lot.UnitPrice.Mul(rate)
	rateDate := lot.AcquiredAt

	lot.LocalUnitPrice = &localPrice
	lot.ExchangeRate = &rate
	lot.ExchangeRateSource = source
	lot.ExchangeRateDate = &rateDate

	if err := s.LotRepo.UpdateMirror(ctx, lot); err != nil {
		return fmt.Errorf("failed to persist lot mirror: %w", err)
	}
	return nil
}

// NormalizeDisposal fills and persists the disposal's local-currency
// mirror using the rate on the disposal date.
func (s *NormalizerService) NormalizeDisposal(ctx context.Context, d *domain.Disposal, base, reporting string) error {
	rate, source, err := s.lookupRate(ctx, base, reporting, d.DisposedAt)
	if err != nil {
		return err
	}

	localProceeds := d.TotalProceeds.Mul(rate)
	localBasis := d.TotalCostBasis.Mul(rate)
	localGainLoss := d.GainLoss.Mul(rate)
	rateDate := d.DisposedAt

	d.LocalProceeds = &localProceeds
	d.LocalCostBasis = &localBasis
	d.LocalGainLoss = &localGainLoss
	d.ExchangeRate = &rate
	d.ExchangeRateSource = source
	d.ExchangeRateDate = &rateDate

	if err := s.DisposalRepo.UpdateMirror(ctx, d); err != nil {
		return fmt.Errorf("failed to persist disposal mirror: %w", err)
	}
	return nil
}

// SweepResult summarizes one retry sweep over not-yet-normalized rows.
type SweepResult struct {
	LotsNormalized      int
	DisposalsNormalized int
	StillPending        int
}

// Sweep re-attempts normalization for every lot and disposal of the
// owner that is still missing its local-currency mirror. Rows whose
// lookups fail again simply stay pending for the next sweep.
func (s *NormalizerService) Sweep(ctx context.Context, ownerID uuid.UUID, reporting string) (*SweepResult, error) {
	settings, err := s.SettingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax settings: %w", err)
	}
	base := settings.BaseCurrency

	result := &SweepResult{}

	lots, err := s.LotRepo.ListUnnormalized(ctx, ownerID, sweepBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list unnormalized lots: %w", err)
	}
	for _, lot := range lots {
		err := s.NormalizeLot(ctx, lot, base, reporting)
		switch {
		case err == nil:
			result.LotsNormalized++
		case errors.Is(err, domain.ErrLookupUnavailable):
			result.StillPending++
		default:
			return nil, err
		}
	}

	disposals, err := s.DisposalRepo.ListUnnormalized(ctx, ownerID, sweepBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list unnormalized disposals: %w", err)
	}
	for _, d := range disposals {
		err := s.NormalizeDisposal(ctx, d, base, reporting)
		switch {
		case err == nil:
			result.DisposalsNormalized++
		case errors.Is(err, domain.ErrLookupUnavailable):
			result.StillPending++
		default:
			return nil, err
		}
	}

	return result, nil
}

// lookupRate resolves the FX rate for a date. Same-currency pairs are
// exactly 1 with the sentinel source and never hit the FX collaborator.
// Lookups are retried with bounded doubling backoff before giving up
// with ErrLookupUnavailable.
func (s *NormalizerService) lookupRate(ctx context.Context, base, reporting string, date time.Time) (decimal.Decimal, string, error) {
	if base == reporting {
		return decimal.NewFromInt(1), SameCurrencySource, nil
	}

	backoff := initialBackoff
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return decimal.Zero, "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		rate, source, err := s.FXSource.GetRate(ctx, base, reporting, date)
		if err == nil {
			return rate, source, nil
		}
		lastErr = err
	}

	// Whatever the collaborator reported, the row is simply "not yet
	// normalized" from the caller's point of view.
	if !errors.Is(lastErr, domain.ErrLookupUnavailable) {
		lastErr = errors.Join(domain.ErrLookupUnavailable, lastErr)
	}
	return decimal.Zero, "", fmt.Errorf("fx %s/%s on %s: %w", base, reporting, date.Format("2006-01-02"), lastErr)
}
