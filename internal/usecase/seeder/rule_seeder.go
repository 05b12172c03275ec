package seeder

import (
	"context"

	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// RuleSeeder ensures a baseline set of jurisdiction rules exists at
// startup. Rows already present are left alone so operator-tuned
// parameters survive restarts.
type RuleSeeder struct {
	repo domain.JurisdictionRuleRepository
}

// NewRuleSeeder creates a new RuleSeeder instance
func NewRuleSeeder(repo domain.JurisdictionRuleRepository) *RuleSeeder {
	return &RuleSeeder{
		repo: repo,
	}
}

// defaultRules is the baseline rule set. The rules pipeline owns the
// table after first boot; these only fill the gaps.
var defaultRules = []domain.JurisdictionRules{
	{
		Code:                  "US",
		LongTermThresholdDays: 365,
		CryptoToCryptoTaxable: true,
		WashSaleEnabled:       true,
		WashSaleWindowDays:    30,
	},
	{
		Code:                  "DE",
		LongTermThresholdDays: 365,
		CryptoToCryptoTaxable: true,
		WashSaleEnabled:       false,
	},
	{
		Code:                  "PT",
		LongTermThresholdDays: 365,
		CryptoToCryptoTaxable: false,
		WashSaleEnabled:       false,
	},
	{
		Code:                  "FR",
		LongTermThresholdDays: 365,
		CryptoToCryptoTaxable: false,
		WashSaleEnabled:       false,
	},
}

// Seed ensures all baseline jurisdiction rules exist in the database.
// If a jurisdiction is missing, it is created; existing rows are never
// overwritten.
func (s *RuleSeeder) Seed(ctx context.Context) error {
	for _, rules := range defaultRules {
		_, err := s.repo.GetRules(ctx, rules.Code)
		if err == nil {
			// Rules exist, no action needed.
			continue
		}

		if err := s.repo.Upsert(ctx, rules); err != nil {
			return err
		}
	}

	return nil
}
