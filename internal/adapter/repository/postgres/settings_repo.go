package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// taxSettingsRepository implements domain.TaxSettingsRepository.
// The table is written by the account service; this engine only reads.
type taxSettingsRepository struct {
	db *DB
}

// NewTaxSettingsRepository creates a new tax settings repository
func NewTaxSettingsRepository(db *DB) domain.TaxSettingsRepository {
	return &taxSettingsRepository{db: db}
}

// GetByOwner retrieves the tax settings for an owner
func (r *taxSettingsRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserTaxSettings, error) {
	query := `
		SELECT owner_id, jurisdiction_code, base_currency,
		       wash_sale_enabled, wash_sale_window_days, long_term_threshold_days
		FROM user_tax_settings
		WHERE owner_id = $1
	`

	var s domain.UserTaxSettings
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&s.OwnerID,
		&s.JurisdictionCode,
		&s.BaseCurrency,
		&s.WashSaleEnabled,
		&s.WashSaleWindowDays,
		&s.LongTermThresholdDays,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tax settings not found for owner %s", ownerID)
		}
		return nil, fmt.Errorf("failed to get tax settings: %w", err)
	}

	return &s, nil
}

// jurisdictionRuleRepository implements domain.JurisdictionRuleSource
// against the jurisdiction_rules table, which a rules pipeline keeps
// current.
type jurisdictionRuleRepository struct {
	db *DB
}

// NewJurisdictionRuleRepository creates a new jurisdiction rule repository
func NewJurisdictionRuleRepository(db *DB) domain.JurisdictionRuleRepository {
	return &jurisdictionRuleRepository{db: db}
}

// GetRules retrieves the tax rules for a jurisdiction code
func (r *jurisdictionRuleRepository) GetRules(ctx context.Context, code string) (domain.JurisdictionRules, error) {
	query := `
		SELECT code, long_term_threshold_days, crypto_to_crypto_taxable,
		       wash_sale_enabled, wash_sale_window_days
		FROM jurisdiction_rules
		WHERE code = $1
	`

	var rules domain.JurisdictionRules
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&rules.Code,
		&rules.LongTermThresholdDays,
		&rules.CryptoToCryptoTaxable,
		&rules.WashSaleEnabled,
		&rules.WashSaleWindowDays,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JurisdictionRules{}, fmt.Errorf("jurisdiction rules not found for code %s", code)
		}
		return domain.JurisdictionRules{}, fmt.Errorf("failed to get jurisdiction rules: %w", err)
	}

	return rules, nil
}

// Upsert creates or replaces the rules row for a jurisdiction code
func (r *jurisdictionRuleRepository) Upsert(ctx context.Context, rules domain.JurisdictionRules) error {
	query := `
		INSERT INTO jurisdiction_rules (
			code, long_term_threshold_days, crypto_to_crypto_taxable,
			wash_sale_enabled, wash_sale_window_days
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code)
		DO UPDATE SET long_term_threshold_days = $2, crypto_to_crypto_taxable = $3,
		              wash_sale_enabled = $4, wash_sale_window_days = $5
	`

	_, err := r.db.ExecContext(ctx, query,
		rules.Code,
		rules.LongTermThresholdDays,
		rules.CryptoToCryptoTaxable,
		rules.WashSaleEnabled,
		rules.WashSaleWindowDays,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert jurisdiction rules: %w", err)
	}

	return nil
}
