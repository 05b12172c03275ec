package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLot(original, remaining, disposed int64) *Lot {
	return &Lot{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Token:           Token{Symbol: "BTC", Chain: "bitcoin"},
		AcquiredAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Method:          MethodPurchase,
		UnitPrice:       decimal.NewFromInt(10000),
		OriginalAmount:  decimal.NewFromInt(original),
		RemainingAmount: decimal.NewFromInt(remaining),
		DisposedAmount:  decimal.NewFromInt(disposed),
		SourceRef:       "tx-1",
	}
}

func TestLotValidate_ConservationHolds(t *testing.T) {
	lot := newTestLot(10, 6, 4)
	require.NoError(t, lot.Validate())
}

func TestLotValidate_ConservationBroken(t *testing.T) {
	lot := newTestLot(10, 6, 3) // 6 + 3 != 10
	assert.ErrorIs(t, lot.Validate(), ErrInsufficientLotBalance)
}

func TestLotValidate_NegativeRemaining(t *testing.T) {
	lot := newTestLot(10, -1, 11)
	assert.ErrorIs(t, lot.Validate(), ErrInsufficientLotBalance)
}

func TestLotValidate_NonPositiveOriginal(t *testing.T) {
	lot := newTestLot(0, 0, 0)
	assert.ErrorIs(t, lot.Validate(), ErrInvalidAmount)
}

func TestLotValidate_NegativePrice(t *testing.T) {
	lot := newTestLot(10, 10, 0)
	lot.UnitPrice = decimal.NewFromInt(-1)
	assert.ErrorIs(t, lot.Validate(), ErrInvalidPrice)
}

func TestLotValidate_ZeroPriceAllowed(t *testing.T) {
	// Airdrops can legitimately carry a zero acquisition price.
	lot := newTestLot(10, 10, 0)
	lot.UnitPrice = decimal.Zero
	lot.Method = MethodAirdrop
	require.NoError(t, lot.Validate())
}

func TestLotAdjustedBasis_IncludesWashSaleDeferral(t *testing.T) {
	lot := newTestLot(2, 2, 0) // 2 units @ 10,000
	lot.BasisAdjustment = decimal.NewFromInt(500)

	assert.True(t, lot.AdjustedBasis().Equal(decimal.NewFromInt(20500)))
}

func TestAcquisitionMethod_IncomeMethods(t *testing.T) {
	assert.True(t, MethodReward.IncomeMethod())
	assert.True(t, MethodAirdrop.IncomeMethod())
	assert.True(t, MethodMined.IncomeMethod())
	assert.False(t, MethodPurchase.IncomeMethod())
	assert.False(t, MethodTransferIn.IncomeMethod())
}

func TestValidMethod_RejectsUnknown(t *testing.T) {
	assert.False(t, ValidMethod(AcquisitionMethod("STAKED")))
	assert.True(t, ValidMethod(MethodTransferIn))
}
