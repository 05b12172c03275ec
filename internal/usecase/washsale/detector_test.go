package washsale

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/simaogato/cryptotax-backend/internal/testutil"
	"github.com/simaogato/cryptotax-backend/internal/usecase/ledger"
	"github.com/simaogato/cryptotax-backend/internal/usecase/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eth = domain.Token{Symbol: "ETH", Chain: "ethereum"}

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return day0.AddDate(0, 0, n) }

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	store    *testutil.Store
	ledger   *ledger.LedgerService
	matcher  *matcher.MatcherService
	detector *DetectorService
	ownerID  uuid.UUID
}

func newFixture(t *testing.T, washSaleEnabled bool) *fixture {
	t.Helper()
	store := testutil.NewStore()
	ownerID := uuid.New()
	store.PutSettings(domain.UserTaxSettings{
		OwnerID:          ownerID,
		JurisdictionCode: "US",
		BaseCurrency:     "USD",
		WashSaleEnabled:  washSaleEnabled,
	})

	rules := testutil.USRules()
	ledgerService := ledger.NewLedgerService(store.Lots())
	return &fixture{
		store:  store,
		ledger: ledgerService,
		matcher: matcher.NewMatcherService(
			ledgerService, store.Disposals(), store.Checkpoints(),
			store.Settings(), rules,
		),
		detector: NewDetectorService(
			store.Lots(), store.Disposals(), store.WashSales(),
			store.Settings(), rules,
		),
		ownerID: ownerID,
	}
}

func (f *fixture) buy(t *testing.T, amount, price string, at time.Time, ref string) *domain.Lot {
	t.Helper()
	lot, err := f.ledger.AddLot(context.Background(), domain.AcquisitionEvent{
		OwnerID:   f.ownerID,
		Token:     eth,
		Amount:    mustDec(amount),
		UnitPrice: mustDec(price),
		Timestamp: at,
		Method:    domain.MethodPurchase,
		SourceRef: ref,
	})
	require.NoError(t, err)
	return lot
}

func (f *fixture) sell(t *testing.T, amount, proceeds string, at time.Time, ref string) {
	t.Helper()
	p := mustDec(proceeds)
	_, err := f.matcher.ProcessDisposal(context.Background(), domain.DisposalEvent{
		OwnerID:       f.ownerID,
		Token:         eth,
		Amount:        mustDec(amount),
		TotalProceeds: &p,
		Timestamp:     at,
		SourceRef:     ref,
	})
	require.NoError(t, err)
}

func TestDetect_RepurchaseInsideWindowDisallowsFullLoss(t *testing.T) {
	// 1 ETH bought at $2,000, sold on day 50 for $1,500 (a $500 loss),
	// rebought on day 60 at $1,800: inside the 30-day window, the full
	// $500 is disallowed and deferred onto the repurchase lot's basis.
	f := newFixture(t, true)
	ctx := context.Background()

	f.buy(t, "1", "2000", day(0), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")
	repurchase := f.buy(t, "1", "1800", day(60), "buy-2")

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, repurchase.ID, v.LotID)
	assert.Equal(t, 10, v.DaysBetween)
	assert.True(t, v.DisallowedLoss.Equal(mustDec("500")))
	assert.True(t, v.AdjustedCostBasis.Equal(mustDec("2300")), "original $1,800 basis plus the $500 deferral")

	stored, err := f.store.Lots().GetByID(ctx, repurchase.ID)
	require.NoError(t, err)
	assert.True(t, stored.BasisAdjustment.Equal(mustDec("500")))
}

func TestDetect_DisallowedLossNeverExceedsLoss(t *testing.T) {
	// A 10 ETH repurchase cannot disallow more than the realized loss.
	f := newFixture(t, true)
	ctx := context.Background()

	f.buy(t, "1", "2000", day(0), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")
	f.buy(t, "10", "1800", day(55), "buy-2")

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.True(t, violations[0].DisallowedLoss.Equal(mustDec("500")))
}

func TestDetect_AllocatesOldestFirstAcrossRepurchases(t *testing.T) {
	// 2 ETH loss of $1,000 total; repurchases of 1 ETH each on days 55
	// and 58 split the deferral oldest-first, $500 per unit.
	f := newFixture(t, true)
	ctx := context.Background()

	f.buy(t, "2", "2000", day(0), "buy-1")
	f.sell(t, "2", "3000", day(50), "sell-1") // $1,000 loss
	first := f.buy(t, "1", "1700", day(55), "buy-2")
	second := f.buy(t, "1", "1600", day(58), "buy-3")

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, first.ID, violations[0].LotID)
	assert.Equal(t, second.ID, violations[1].LotID)
	assert.True(t, violations[0].DisallowedLoss.Equal(mustDec("500")))
	assert.True(t, violations[1].DisallowedLoss.Equal(mustDec("500")))
}

func TestDetect_RepurchaseOutsideWindowIgnored(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.buy(t, "1", "2000", day(0), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")
	f.buy(t, "1", "1800", day(81), "buy-2") // 31 days later

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestDetect_ConsumedLotIsNotItsOwnReplacement(t *testing.T) {
	// The lot whose sale realized the loss sits inside its own window
	// but must not absorb the deferral.
	f := newFixture(t, true)
	ctx := context.Background()

	f.buy(t, "1", "2000", day(30), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestDetect_RerunIsIdempotent(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.buy(t, "1", "2000", day(0), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")
	repurchase := f.buy(t, "1", "1800", day(60), "buy-2")

	first, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))
	require.NoError(t, err)
	assert.Empty(t, second, "re-running detection must not duplicate violations")

	all, err := f.store.WashSales().ListByOwner(ctx, f.ownerID, day(0), day(100))
	require.NoError(t, err)
	assert.Len(t, all, 1)

	stored, err := f.store.Lots().GetByID(ctx, repurchase.ID)
	require.NoError(t, err)
	assert.True(t, stored.BasisAdjustment.Equal(mustDec("500")), "basis deferral applied exactly once")
}

func TestDetect_DisabledByUserSettings(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.buy(t, "1", "2000", day(0), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")
	f.buy(t, "1", "1800", day(60), "buy-2")

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestDetect_DisabledByJurisdiction(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	// Jurisdiction without wash-sale enforcement.
	f.detector.RuleSource = &testutil.StaticRules{Rules: map[string]domain.JurisdictionRules{
		"US": {Code: "US", LongTermThresholdDays: 365, CryptoToCryptoTaxable: true, WashSaleEnabled: false},
	}}

	f.buy(t, "1", "2000", day(0), "buy-1")
	f.sell(t, "1", "1500", day(50), "sell-1")
	f.buy(t, "1", "1800", day(60), "buy-2")

	violations, err := f.detector.Detect(ctx, f.ownerID, day(0), day(100))

	require.NoError(t, err)
	assert.Empty(t, violations)
}
