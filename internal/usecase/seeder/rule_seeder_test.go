package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRuleRepository is a mock implementation of JurisdictionRuleRepository
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) GetRules(ctx context.Context, code string) (domain.JurisdictionRules, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.JurisdictionRules), args.Error(1)
}

func (m *MockRuleRepository) Upsert(ctx context.Context, rules domain.JurisdictionRules) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

func TestRuleSeeder_Seed_RulesMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRuleRepository)
	seeder := NewRuleSeeder(mockRepo)

	// Every lookup misses, so every baseline jurisdiction is created.
	mockRepo.On("GetRules", ctx, mock.Anything).Return(domain.JurisdictionRules{}, errors.New("not found"))
	mockRepo.On("Upsert", ctx, mock.MatchedBy(func(rules domain.JurisdictionRules) bool {
		return rules.Code == "US" &&
			rules.LongTermThresholdDays == 365 &&
			rules.WashSaleEnabled &&
			rules.WashSaleWindowDays == 30
	})).Return(nil)
	mockRepo.On("Upsert", ctx, mock.MatchedBy(func(rules domain.JurisdictionRules) bool {
		return rules.Code == "PT" && !rules.CryptoToCryptoTaxable
	})).Return(nil)
	mockRepo.On("Upsert", ctx, mock.AnythingOfType("domain.JurisdictionRules")).Return(nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "Upsert", 4)
}

func TestRuleSeeder_Seed_RulesExist(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRuleRepository)
	seeder := NewRuleSeeder(mockRepo)

	// Everything already present: nothing gets written.
	mockRepo.On("GetRules", ctx, mock.Anything).Return(domain.JurisdictionRules{Code: "US"}, nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Upsert")
}

func TestRuleSeeder_Seed_UpsertFails(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRuleRepository)
	seeder := NewRuleSeeder(mockRepo)

	mockRepo.On("GetRules", ctx, mock.Anything).Return(domain.JurisdictionRules{}, errors.New("not found"))
	mockRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("connection lost"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}
