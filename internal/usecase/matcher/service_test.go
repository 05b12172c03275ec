package matcher

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/simaogato/cryptotax-backend/internal/testutil"
	"github.com/simaogato/cryptotax-backend/internal/usecase/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	btc = domain.Token{Symbol: "BTC", Chain: "bitcoin"}
	eth = domain.Token{Symbol: "ETH", Chain: "ethereum"}
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return day0.AddDate(0, 0, n) }

type fixture struct {
	store   *testutil.Store
	ledger  *ledger.LedgerService
	matcher *MatcherService
	ownerID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := testutil.NewStore()
	ownerID := uuid.New()
	store.PutSettings(domain.UserTaxSettings{
		OwnerID:          ownerID,
		JurisdictionCode: "US",
		BaseCurrency:     "USD",
		WashSaleEnabled:  true,
	})

	ledgerService := ledger.NewLedgerService(store.Lots())
	return &fixture{
		store:  store,
		ledger: ledgerService,
		matcher: NewMatcherService(
			ledgerService, store.Disposals(), store.Checkpoints(),
			store.Settings(), testutil.USRules(),
		),
		ownerID: ownerID,
	}
}

func (f *fixture) addLot(t *testing.T, token domain.Token, amount, price string, at time.Time, ref string) *domain.Lot {
	t.Helper()
	lot, err := f.ledger.AddLot(context.Background(), domain.AcquisitionEvent{
		OwnerID:   f.ownerID,
		Token:     token,
		Amount:    mustDec(amount),
		UnitPrice: mustDec(price),
		Timestamp: at,
		Method:    domain.MethodPurchase,
		SourceRef: ref,
	})
	require.NoError(t, err)
	return lot
}

func (f *fixture) disposal(token domain.Token, amount, proceeds string, at time.Time, ref string) domain.DisposalEvent {
	p := mustDec(proceeds)
	return domain.DisposalEvent{
		OwnerID:       f.ownerID,
		Token:         token,
		Amount:        mustDec(amount),
		TotalProceeds: &p,
		Timestamp:     at,
		SourceRef:     ref,
	}
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProcessDisposal_SingleLotLongTermGain(t *testing.T) {
	// 1 BTC bought at $10,000 on day 0, sold for $15,000 on day 400:
	// $5,000 gain, 400-day holding period, long-term at a 365-day
	// threshold.
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "1", "10000", day(0), "buy-1")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(btc, "1", "15000", day(400), "sell-1"))

	require.NoError(t, err)
	require.Len(t, result.Slices, 1)

	slice := result.Slices[0]
	assert.True(t, slice.GainLoss.Equal(mustDec("5000")))
	assert.Equal(t, 400, slice.HoldingPeriodDays)
	assert.Equal(t, domain.CategoryLongTerm, slice.Category)
	assert.False(t, slice.LowConfidence)
}

func TestProcessDisposal_PartialLotSplit(t *testing.T) {
	// Lot1: 2 ETH @ $1,000 (day 0), Lot2: 3 ETH @ $1,200 (day 10).
	// Disposing 4 ETH at $1,500/ETH on day 20 consumes Lot1 fully
	// (basis $2,000) then 2 ETH of Lot2 (basis $2,400); gain $1,600
	// and Lot2 keeps 1 ETH.
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, eth, "2", "1000", day(0), "buy-1")
	lot2 := f.addLot(t, eth, "3", "1200", day(10), "buy-2")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(eth, "4", "6000", day(20), "sell-1"))

	require.NoError(t, err)
	require.Len(t, result.Slices, 2)

	assert.True(t, result.Slices[0].TotalCostBasis.Equal(mustDec("2000")))
	assert.True(t, result.Slices[1].TotalCostBasis.Equal(mustDec("2400")))
	assert.True(t, result.TotalCostBasis.Equal(mustDec("4400")))
	assert.True(t, result.TotalProceeds.Equal(mustDec("6000")))
	assert.True(t, result.TotalGainLoss.Equal(mustDec("1600")))

	stored, err := f.store.Lots().GetByID(ctx, lot2.ID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingAmount.Equal(mustDec("1")))
	assert.True(t, stored.DisposedAmount.Equal(mustDec("2")))
}

func TestProcessDisposal_FIFOOrdering(t *testing.T) {
	// Lot A (day 1, 10 units), Lot B (day 5, 10 units): disposing 15
	// drains A completely before touching B.
	f := newFixture(t)
	ctx := context.Background()

	lotA := f.addLot(t, btc, "10", "100", day(1), "buy-a")
	lotB := f.addLot(t, btc, "10", "110", day(5), "buy-b")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(btc, "15", "3000", day(30), "sell-1"))

	require.NoError(t, err)
	require.Len(t, result.Slices, 2)
	assert.Equal(t, lotA.ID, *result.Slices[0].LotID)
	assert.Equal(t, lotB.ID, *result.Slices[1].LotID)
	assert.True(t, result.Slices[0].Amount.Equal(mustDec("10")))
	assert.True(t, result.Slices[1].Amount.Equal(mustDec("5")))

	storedA, _ := f.store.Lots().GetByID(ctx, lotA.ID)
	storedB, _ := f.store.Lots().GetByID(ctx, lotB.ID)
	assert.True(t, storedA.RemainingAmount.IsZero())
	assert.True(t, storedB.RemainingAmount.Equal(mustDec("5")))
}

func TestProcessDisposal_ConservationAcrossManySlices(t *testing.T) {
	// Awkward per-unit proceeds (1000/7) across three lots: slice
	// amounts must sum to the disposal amount and proceeds must
	// reconcile exactly, with no rounding drift mid-calculation.
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, eth, "3", "100", day(0), "buy-1")
	f.addLot(t, eth, "2", "110", day(1), "buy-2")
	f.addLot(t, eth, "2", "120", day(2), "buy-3")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(eth, "7", "1000", day(100), "sell-1"))

	require.NoError(t, err)
	require.Len(t, result.Slices, 3)

	amountSum := decimal.Zero
	proceedsSum := decimal.Zero
	for _, slice := range result.Slices {
		amountSum = amountSum.Add(slice.Amount)
		proceedsSum = proceedsSum.Add(slice.TotalProceeds)
		assert.True(t, slice.TotalProceeds.Sub(slice.TotalCostBasis).Equal(slice.GainLoss))
	}
	assert.True(t, amountSum.Equal(mustDec("7")), "slice amounts must sum to the disposal amount")
	assert.True(t, proceedsSum.Equal(mustDec("1000")), "slice proceeds must sum to the event proceeds exactly")
	assert.True(t, result.TotalCostBasis.Add(result.TotalGainLoss).Equal(mustDec("1000")))
}

func TestProcessDisposal_LotExhaustionFallbackSlice(t *testing.T) {
	// Only 1 BTC on the ledger but 2 disposed: the uncovered unit is
	// recorded at zero basis, flagged low confidence, never dropped.
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "1", "10000", day(0), "buy-1")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(btc, "2", "30000", day(10), "sell-1"))

	require.NoError(t, err)
	require.Len(t, result.Slices, 2)
	assert.True(t, result.LowConfidence)

	fallback := result.Slices[1]
	assert.Nil(t, fallback.LotID)
	assert.True(t, fallback.TotalCostBasis.IsZero())
	assert.True(t, fallback.Amount.Equal(mustDec("1")))
	assert.True(t, fallback.TotalProceeds.Equal(mustDec("15000")))
	assert.True(t, fallback.GainLoss.Equal(mustDec("15000")), "zero basis makes the whole proceeds gain")
	assert.True(t, fallback.LowConfidence)

	// Conservation still holds with the fallback slice included.
	amountSum := decimal.Zero
	for _, slice := range result.Slices {
		amountSum = amountSum.Add(slice.Amount)
	}
	assert.True(t, amountSum.Equal(mustDec("2")))
}

func TestProcessDisposal_ReplayIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lot := f.addLot(t, btc, "2", "10000", day(0), "buy-1")
	event := f.disposal(btc, "1", "15000", day(10), "sell-1")

	first, err := f.matcher.ProcessDisposal(ctx, event)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	second, err := f.matcher.ProcessDisposal(ctx, event)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Empty(t, second.Slices)

	// Ledger state identical to processing the event once.
	stored, err := f.store.Lots().GetByID(ctx, lot.ID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingAmount.Equal(mustDec("1")))

	disposals, err := f.store.Disposals().ListByOwner(ctx, f.ownerID, day(0), day(100))
	require.NoError(t, err)
	assert.Len(t, disposals, 1)
}

func TestProcessDisposal_LongTermBoundaryInclusive(t *testing.T) {
	// Exactly 365 days is long-term.
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "1", "10000", day(0), "buy-1")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(btc, "1", "12000", day(365), "sell-1"))

	require.NoError(t, err)
	require.Len(t, result.Slices, 1)
	assert.Equal(t, 365, result.Slices[0].HoldingPeriodDays)
	assert.Equal(t, domain.CategoryLongTerm, result.Slices[0].Category)
}

func TestProcessDisposal_DayBeforeBoundaryIsShortTerm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "1", "10000", day(0), "buy-1")

	result, err := f.matcher.ProcessDisposal(ctx, f.disposal(btc, "1", "12000", day(364), "sell-1"))

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryShortTerm, result.Slices[0].Category)
}

func TestProcessDisposal_RejectsMalformedEvent(t *testing.T) {
	f := newFixture(t)

	event := f.disposal(btc, "0", "100", day(1), "sell-1")
	_, err := f.matcher.ProcessDisposal(context.Background(), event)

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestReplayBackfill_QuarantinesPoisonEventAndContinues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "10", "100", day(0), "buy-1")

	events := []domain.DisposalEvent{
		f.disposal(btc, "1", "200", day(1), "sell-1"),
		f.disposal(btc, "0", "0", day(2), "sell-bad"), // zero amount
		f.disposal(btc, "1", "250", day(3), "sell-2"),
	}

	result, err := f.matcher.ReplayBackfill(ctx, events)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	require.Len(t, result.Quarantined, 1)
	assert.Equal(t, "sell-bad", result.Quarantined[0].Event.SourceRef)
	assert.ErrorIs(t, result.Quarantined[0].Err, domain.ErrInvalidAmount)
}

func TestReplayBackfill_ResumesAfterCheckpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "10", "100", day(0), "buy-1")

	events := []domain.DisposalEvent{
		f.disposal(btc, "1", "200", day(1), "sell-1"),
		f.disposal(btc, "1", "210", day(2), "sell-2"),
	}

	first, err := f.matcher.ReplayBackfill(ctx, events)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Applied)

	// A second run of the same stream resumes after the checkpoint:
	// nothing is re-applied.
	second, err := f.matcher.ReplayBackfill(ctx, events)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Applied)
	assert.Equal(t, 2, second.Skipped)

	disposals, err := f.store.Disposals().ListByOwner(ctx, f.ownerID, day(0), day(100))
	require.NoError(t, err)
	assert.Len(t, disposals, 2)
}

func TestProcessDisposal_ChecksStreamCheckpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLot(t, btc, "5", "100", day(0), "buy-1")
	_, err := f.matcher.ProcessDisposal(ctx, f.disposal(btc, "1", "150", day(7), "sell-1"))
	require.NoError(t, err)

	cp, err := f.store.Checkpoints().Get(ctx, f.ownerID, btc)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Equal(t, "sell-1", cp.LastSourceRef)
	assert.True(t, cp.LastEventAt.Equal(day(7)))
}
