package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAcquisition() AcquisitionEvent {
	return AcquisitionEvent{
		OwnerID:   uuid.New(),
		Token:     Token{Symbol: "ETH", Chain: "ethereum"},
		Amount:    decimal.NewFromInt(2),
		UnitPrice: decimal.NewFromInt(1000),
		Timestamp: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Method:    MethodPurchase,
		SourceRef: "0xabc",
	}
}

func TestAcquisitionEventValidate_OK(t *testing.T) {
	e := validAcquisition()
	require.NoError(t, e.Validate())
}

func TestAcquisitionEventValidate_RejectsZeroAmount(t *testing.T) {
	e := validAcquisition()
	e.Amount = decimal.Zero
	assert.ErrorIs(t, e.Validate(), ErrInvalidAmount)
}

func TestAcquisitionEventValidate_RejectsNegativePrice(t *testing.T) {
	e := validAcquisition()
	e.UnitPrice = decimal.NewFromInt(-5)
	assert.ErrorIs(t, e.Validate(), ErrInvalidPrice)
}

func TestAcquisitionEventValidate_RejectsUnknownMethod(t *testing.T) {
	e := validAcquisition()
	e.Method = AcquisitionMethod("GIFTED")
	assert.Error(t, e.Validate())
}

func TestAcquisitionEventValidate_RejectsMissingSourceRef(t *testing.T) {
	e := validAcquisition()
	e.SourceRef = ""
	assert.Error(t, e.Validate())
}

func validDisposal() DisposalEvent {
	proceeds := decimal.NewFromInt(6000)
	return DisposalEvent{
		OwnerID:       uuid.New(),
		Token:         Token{Symbol: "ETH", Chain: "ethereum"},
		Amount:        decimal.NewFromInt(4),
		TotalProceeds: &proceeds,
		Timestamp:     time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC),
		SourceRef:     "0xdef",
	}
}

func TestDisposalEventValidate_OK(t *testing.T) {
	e := validDisposal()
	require.NoError(t, e.Validate())
}

func TestDisposalEventValidate_RequiresExactlyOnePriceField(t *testing.T) {
	e := validDisposal()
	unit := decimal.NewFromInt(1500)
	e.UnitPrice = &unit
	assert.Error(t, e.Validate(), "both proceeds and unit price set")

	e.TotalProceeds = nil
	e.UnitPrice = nil
	assert.Error(t, e.Validate(), "neither proceeds nor unit price set")
}

func TestDisposalEventProceeds_DerivedFromUnitPrice(t *testing.T) {
	e := validDisposal()
	e.TotalProceeds = nil
	unit := decimal.NewFromInt(1500)
	e.UnitPrice = &unit

	require.NoError(t, e.Validate())
	assert.True(t, e.Proceeds().Equal(decimal.NewFromInt(6000)))
}
