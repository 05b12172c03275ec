package normalizer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/simaogato/cryptotax-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedLot(t *testing.T, store *testutil.Store, ownerID uuid.UUID) *domain.Lot {
	t.Helper()
	lot := &domain.Lot{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Token:           domain.Token{Symbol: "BTC", Chain: "bitcoin"},
		AcquiredAt:      day0,
		Method:          domain.MethodPurchase,
		UnitPrice:       mustDec("10000"),
		OriginalAmount:  mustDec("1"),
		RemainingAmount: mustDec("1"),
		SourceRef:       "buy-1",
	}
	require.NoError(t, store.Lots().Create(context.Background(), lot))
	return lot
}

func newService(store *testutil.Store, fx domain.FXRateSource) *NormalizerService {
	return NewNormalizerService(store.Lots(), store.Disposals(), store.Settings(), fx)
}

func TestNormalizeLot_SameCurrencyUsesSentinelRate(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()
	lot := seedLot(t, store, ownerID)

	// The FX source must never be consulted for same-currency pairs.
	fx := &testutil.StaticFX{Rate: mustDec("99"), Source: "ecb"}
	service := newService(store, fx)

	require.NoError(t, service.NormalizeLot(context.Background(), lot, "USD", "USD"))

	require.NotNil(t, lot.ExchangeRate)
	assert.True(t, lot.ExchangeRate.Equal(mustDec("1")))
	assert.Equal(t, SameCurrencySource, lot.ExchangeRateSource)
	assert.True(t, lot.LocalUnitPrice.Equal(mustDec("10000")))
	assert.Zero(t, fx.Calls)
}

func TestNormalizeLot_ConvertsWithLookupRate(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()
	lot := seedLot(t, store, ownerID)

	fx := &testutil.StaticFX{Rate: mustDec("0.9"), Source: "ecb"}
	service := newService(store, fx)

	require.NoError(t, service.NormalizeLot(context.Background(), lot, "USD", "EUR"))

	assert.True(t, lot.LocalUnitPrice.Equal(mustDec("9000")))
	assert.True(t, lot.ExchangeRate.Equal(mustDec("0.9")))
	assert.Equal(t, "ecb", lot.ExchangeRateSource)
	require.NotNil(t, lot.ExchangeRateDate)
	assert.True(t, lot.ExchangeRateDate.Equal(day0))

	// Mirror persisted, not just set in memory.
	stored, err := store.Lots().GetByID(context.Background(), lot.ID)
	require.NoError(t, err)
	assert.True(t, stored.Normalized())
}

func TestNormalizeLot_RetriesThenSucceeds(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()
	lot := seedLot(t, store, ownerID)

	fx := &testutil.StaticFX{Rate: mustDec("0.9"), Source: "ecb", FailFor: 2}
	service := newService(store, fx)

	require.NoError(t, service.NormalizeLot(context.Background(), lot, "USD", "EUR"))
	assert.Equal(t, 3, fx.Calls)
}

func TestNormalizeLot_LookupFailureLeavesMirrorNil(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()
	lot := seedLot(t, store, ownerID)

	fx := &testutil.StaticFX{FailFor: 100}
	service := newService(store, fx)

	err := service.NormalizeLot(context.Background(), lot, "USD", "EUR")

	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
	// Nil means "not yet normalized", never zero.
	assert.Nil(t, lot.LocalUnitPrice)
	assert.Nil(t, lot.ExchangeRate)

	stored, err := store.Lots().GetByID(context.Background(), lot.ID)
	require.NoError(t, err)
	assert.False(t, stored.Normalized())
}

func TestNormalizeDisposal_FillsAllMirrorFields(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()

	d := &domain.Disposal{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Token:          domain.Token{Symbol: "BTC", Chain: "bitcoin"},
		DisposedAt:     day0.AddDate(0, 0, 30),
		Amount:         mustDec("1"),
		TotalCostBasis: mustDec("10000"),
		TotalProceeds:  mustDec("15000"),
		GainLoss:       mustDec("5000"),
		SourceRef:      "sell-1",
	}
	require.NoError(t, store.Disposals().RecordMatch(context.Background(), []*domain.Disposal{d}, nil, nil))

	fx := &testutil.StaticFX{Rate: mustDec("0.5"), Source: "ecb"}
	service := newService(store, fx)

	require.NoError(t, service.NormalizeDisposal(context.Background(), d, "USD", "EUR"))

	assert.True(t, d.LocalProceeds.Equal(mustDec("7500")))
	assert.True(t, d.LocalCostBasis.Equal(mustDec("5000")))
	assert.True(t, d.LocalGainLoss.Equal(mustDec("2500")))
}

func TestSweep_RetriesPendingRowsAndReportsCounts(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()
	store.PutSettings(domain.UserTaxSettings{
		OwnerID:          ownerID,
		JurisdictionCode: "US",
		BaseCurrency:     "USD",
	})
	seedLot(t, store, ownerID)

	d := &domain.Disposal{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Token:         domain.Token{Symbol: "BTC", Chain: "bitcoin"},
		DisposedAt:    day0.AddDate(0, 0, 10),
		Amount:        mustDec("1"),
		TotalProceeds: mustDec("12000"),
		GainLoss:      mustDec("2000"),
		SourceRef:     "sell-1",
	}
	require.NoError(t, store.Disposals().RecordMatch(context.Background(), []*domain.Disposal{d}, nil, nil))

	fx := &testutil.StaticFX{Rate: mustDec("0.9"), Source: "ecb"}
	service := newService(store, fx)

	result, err := service.Sweep(context.Background(), ownerID, "EUR")

	require.NoError(t, err)
	assert.Equal(t, 1, result.LotsNormalized)
	assert.Equal(t, 1, result.DisposalsNormalized)
	assert.Equal(t, 0, result.StillPending)

	// Nothing left for a second sweep.
	again, err := service.Sweep(context.Background(), ownerID, "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0, again.LotsNormalized)
	assert.Equal(t, 0, again.DisposalsNormalized)
}

func TestSweep_FailedLookupsStayPending(t *testing.T) {
	store := testutil.NewStore()
	ownerID := uuid.New()
	store.PutSettings(domain.UserTaxSettings{
		OwnerID:          ownerID,
		JurisdictionCode: "US",
		BaseCurrency:     "USD",
	})
	seedLot(t, store, ownerID)

	fx := &testutil.StaticFX{FailFor: 1 << 30}
	service := newService(store, fx)

	result, err := service.Sweep(context.Background(), ownerID, "EUR")

	require.NoError(t, err)
	assert.Equal(t, 0, result.LotsNormalized)
	assert.Equal(t, 1, result.StillPending)
}
