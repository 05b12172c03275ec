package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// washSaleViolationRepository implements domain.WashSaleViolationRepository
type washSaleViolationRepository struct {
	db *DB
}

// NewWashSaleViolationRepository creates a new wash sale violation repository
func NewWashSaleViolationRepository(db *DB) domain.WashSaleViolationRepository {
	return &washSaleViolationRepository{db: db}
}

// Create persists a new wash sale violation
func (r *washSaleViolationRepository) Create(ctx context.Context, v *domain.WashSaleViolation) error {
	query := `
		INSERT INTO wash_sale_violations (
			id, owner_id, disposal_id, lot_id, days_between,
			disallowed_loss, adjusted_cost_basis, detected_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.OwnerID,
		v.DisposalID,
		v.LotID,
		v.DaysBetween,
		v.DisallowedLoss.String(),
		v.AdjustedCostBasis.String(),
		v.DetectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create wash sale violation: %w", err)
	}

	return nil
}

// Exists reports whether a (disposal, lot) pair was already recorded
func (r *washSaleViolationRepository) Exists(ctx context.Context, disposalID, lotID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wash_sale_violations WHERE disposal_id = $1 AND lot_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, disposalID, lotID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check wash sale violation: %w", err)
	}
	return exists, nil
}

// ListByOwner retrieves violations whose loss disposal falls in [from, to].
// The period keys on the loss sale's date, not the detection run's clock.
func (r *washSaleViolationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.WashSaleViolation, error) {
	query := `
		SELECT v.id, v.owner_id, v.disposal_id, v.lot_id, v.days_between,
		       v.disallowed_loss, v.adjusted_cost_basis, v.detected_at
		FROM wash_sale_violations v
		JOIN disposals d ON d.id = v.disposal_id
		WHERE v.owner_id = $1 AND d.disposed_at >= $2 AND d.disposed_at <= $3
		ORDER BY d.disposed_at ASC, v.detected_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query wash sale violations: %w", err)
	}
	defer rows.Close()

	violations := make([]*domain.WashSaleViolation, 0)
	for rows.Next() {
		var v domain.WashSaleViolation
		var disallowed, adjusted string

		err := rows.Scan(
			&v.ID,
			&v.OwnerID,
			&v.DisposalID,
			&v.LotID,
			&v.DaysBetween,
			&disallowed,
			&adjusted,
			&v.DetectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wash sale violation: %w", err)
		}

		if v.DisallowedLoss, err = decimal.NewFromString(disallowed); err != nil {
			return nil, fmt.Errorf("failed to parse disallowed_loss: %w", err)
		}
		if v.AdjustedCostBasis, err = decimal.NewFromString(adjusted); err != nil {
			return nil, fmt.Errorf("failed to parse adjusted_cost_basis: %w", err)
		}

		violations = append(violations, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wash sale violations: %w", err)
	}

	return violations, nil
}
