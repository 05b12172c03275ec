package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/simaogato/cryptotax-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLotRepository is a mock implementation of LotRepository for testing
type MockLotRepository struct {
	mock.Mock
}

func (m *MockLotRepository) Create(ctx context.Context, lot *domain.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) GetBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (*domain.Lot, error) {
	args := m.Called(ctx, ownerID, sourceRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) OpenLots(ctx context.Context, ownerID uuid.UUID, token domain.Token) ([]*domain.Lot, error) {
	args := m.Called(ctx, ownerID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, token *domain.Token) ([]*domain.Lot, error) {
	args := m.Called(ctx, ownerID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) ListAcquiredBetween(ctx context.Context, ownerID uuid.UUID, token domain.Token, from, to time.Time) ([]*domain.Lot, error) {
	args := m.Called(ctx, ownerID, token, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) ListIncomeLots(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Lot, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) UpdateBasisAdjustment(ctx context.Context, id uuid.UUID, adjustment decimal.Decimal) error {
	args := m.Called(ctx, id, adjustment)
	return args.Error(0)
}

func (m *MockLotRepository) UpdateMirror(ctx context.Context, lot *domain.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Lot, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lot), args.Error(1)
}

var btc = domain.Token{Symbol: "BTC", Chain: "bitcoin"}

func acquisition(ownerID uuid.UUID, amount, price int64, sourceRef string) domain.AcquisitionEvent {
	return domain.AcquisitionEvent{
		OwnerID:   ownerID,
		Token:     btc,
		Amount:    decimal.NewFromInt(amount),
		UnitPrice: decimal.NewFromInt(price),
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Method:    domain.MethodPurchase,
		SourceRef: sourceRef,
	}
}

func TestAddLot_CreatesOpenLot(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	ownerID := uuid.New()
	mockRepo.On("GetBySourceRef", ctx, ownerID, "tx-1").Return(nil, domain.ErrLotNotFound)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Lot")).Return(nil)

	lot, err := service.AddLot(ctx, acquisition(ownerID, 10, 100, "tx-1"))

	require.NoError(t, err)
	assert.True(t, lot.RemainingAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, lot.DisposedAmount.IsZero())
	assert.True(t, lot.OriginalAmount.Equal(lot.RemainingAmount.Add(lot.DisposedAmount)))
	mockRepo.AssertExpectations(t)
}

func TestAddLot_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	_, err := service.AddLot(ctx, acquisition(uuid.New(), 0, 100, "tx-1"))

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAddLot_RejectsNegativePrice(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	event := acquisition(uuid.New(), 10, 0, "tx-1")
	event.UnitPrice = decimal.NewFromInt(-1)
	_, err := service.AddLot(ctx, event)

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAddLot_DuplicateSourceRefIsNoOp(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	ownerID := uuid.New()
	existing := &domain.Lot{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Token:           btc,
		OriginalAmount:  decimal.NewFromInt(10),
		RemainingAmount: decimal.NewFromInt(4),
		DisposedAmount:  decimal.NewFromInt(6),
		SourceRef:       "tx-1",
	}
	mockRepo.On("GetBySourceRef", ctx, ownerID, "tx-1").Return(existing, nil)

	lot, err := service.AddLot(ctx, acquisition(ownerID, 10, 100, "tx-1"))

	require.NoError(t, err)
	assert.Equal(t, existing.ID, lot.ID, "replay must return the existing lot")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAddLot_PricesZeroValueIncomeLot(t *testing.T) {
	// Reward feeds often arrive without a fiat value; with a price
	// source attached the lot gets its acquisition value backfilled.
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)
	service.Prices = &testutil.StaticPrices{Prices: map[string]decimal.Decimal{
		"BTC": decimal.NewFromInt(42000),
	}}

	ownerID := uuid.New()
	mockRepo.On("GetBySourceRef", ctx, ownerID, "reward-1").Return(nil, domain.ErrLotNotFound)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Lot")).Return(nil)

	event := acquisition(ownerID, 2, 0, "reward-1")
	event.Method = domain.MethodReward
	lot, err := service.AddLot(ctx, event)

	require.NoError(t, err)
	assert.True(t, lot.UnitPrice.Equal(decimal.NewFromInt(42000)))
	assert.True(t, lot.Verified)
}

func TestAddLot_UnpricedIncomeLotKeepsZeroBasis(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)
	service.Prices = &testutil.StaticPrices{Prices: map[string]decimal.Decimal{}}

	ownerID := uuid.New()
	mockRepo.On("GetBySourceRef", ctx, ownerID, "reward-1").Return(nil, domain.ErrLotNotFound)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Lot")).Return(nil)

	event := acquisition(ownerID, 2, 0, "reward-1")
	event.Method = domain.MethodAirdrop
	lot, err := service.AddLot(ctx, event)

	require.NoError(t, err)
	assert.True(t, lot.UnitPrice.IsZero(), "missing quote leaves the basis at zero")
	assert.False(t, lot.Verified)
}

func TestOldestOpenLot_ReturnsFirstInFIFOOrder(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	ownerID := uuid.New()
	oldest := &domain.Lot{ID: uuid.New(), AcquiredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &domain.Lot{ID: uuid.New(), AcquiredAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}
	mockRepo.On("OpenLots", ctx, ownerID, btc).Return([]*domain.Lot{oldest, newer}, nil)

	lot, err := service.OldestOpenLot(ctx, ownerID, btc)

	require.NoError(t, err)
	assert.Equal(t, oldest.ID, lot.ID)
}

func TestOldestOpenLot_NoOpenLots(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	ownerID := uuid.New()
	mockRepo.On("OpenLots", ctx, ownerID, btc).Return([]*domain.Lot{}, nil)

	_, err := service.OldestOpenLot(ctx, ownerID, btc)

	assert.ErrorIs(t, err, domain.ErrNoOpenLots)
}

func TestConsume_UpdatesAmountsAndConserves(t *testing.T) {
	service := NewLedgerService(new(MockLotRepository))

	lot := &domain.Lot{
		OriginalAmount:  decimal.NewFromInt(10),
		RemainingAmount: decimal.NewFromInt(10),
		DisposedAmount:  decimal.Zero,
	}

	require.NoError(t, service.Consume(lot, decimal.NewFromInt(4)))

	assert.True(t, lot.RemainingAmount.Equal(decimal.NewFromInt(6)))
	assert.True(t, lot.DisposedAmount.Equal(decimal.NewFromInt(4)))
	assert.True(t, lot.RemainingAmount.Add(lot.DisposedAmount).Equal(lot.OriginalAmount))
}

func TestConsume_OverdrawIsInvariantViolation(t *testing.T) {
	service := NewLedgerService(new(MockLotRepository))

	lot := &domain.Lot{
		OriginalAmount:  decimal.NewFromInt(10),
		RemainingAmount: decimal.NewFromInt(3),
		DisposedAmount:  decimal.NewFromInt(7),
	}

	err := service.Consume(lot, decimal.NewFromInt(4))

	assert.ErrorIs(t, err, domain.ErrInsufficientLotBalance)
	// The lot must be untouched after a refused consume.
	assert.True(t, lot.RemainingAmount.Equal(decimal.NewFromInt(3)))
	assert.True(t, lot.DisposedAmount.Equal(decimal.NewFromInt(7)))
}

func TestQueryOpenLots_FiltersExhaustedLots(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLotRepository)
	service := NewLedgerService(mockRepo)

	ownerID := uuid.New()
	open := &domain.Lot{ID: uuid.New(), RemainingAmount: decimal.NewFromInt(1)}
	spent := &domain.Lot{ID: uuid.New(), RemainingAmount: decimal.Zero}
	mockRepo.On("ListByOwner", ctx, ownerID, (*domain.Token)(nil)).Return([]*domain.Lot{open, spent}, nil)

	lots, err := service.QueryOpenLots(ctx, ownerID, nil)

	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, open.ID, lots[0].ID)
}
