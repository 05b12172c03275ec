package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// disposalRepository implements domain.DisposalRepository
type disposalRepository struct {
	db *DB
}

// NewDisposalRepository creates a new disposal repository
func NewDisposalRepository(db *DB) domain.DisposalRepository {
	return &disposalRepository{db: db}
}

const disposalColumns = `
	id, owner_id, symbol, chain, contract, lot_id, disposed_at,
	unit_price, amount, cost_basis_per_unit, total_cost_basis,
	total_proceeds, gain_loss, holding_period_days, category,
	low_confidence, source_ref,
	local_proceeds, local_cost_basis, local_gain_loss,
	exchange_rate, exchange_rate_source, exchange_rate_date
`

// RecordMatch persists one disposal event's outcome atomically: every
// slice it produced, the updated amounts of the lots it consumed, and
// the stream checkpoint. Either the whole event commits or none of it
// does, so a crashed backfill resumes from the last committed event.
func (r *disposalRepository) RecordMatch(ctx context.Context, slices []*domain.Disposal, consumed []*domain.Lot, checkpoint *domain.StreamCheckpoint) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertQuery := `
		INSERT INTO disposals (
			id, owner_id, symbol, chain, contract, lot_id, disposed_at,
			unit_price, amount, cost_basis_per_unit, total_cost_basis,
			total_proceeds, gain_loss, holding_period_days, category,
			low_confidence, source_ref
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	for _, slice := range slices {
		var lotID interface{}
		if slice.LotID != nil {
			lotID = *slice.LotID
		}

		_, err = dbTx.ExecContext(ctx, insertQuery,
			slice.ID,
			slice.OwnerID,
			slice.Token.Symbol,
			slice.Token.Chain,
			slice.Token.Contract,
			lotID,
			slice.DisposedAt,
			slice.UnitPrice.String(),
			slice.Amount.String(),
			slice.CostBasisPerUnit.String(),
			slice.TotalCostBasis.String(),
			slice.TotalProceeds.String(),
			slice.GainLoss.String(),
			slice.HoldingPeriodDays,
			string(slice.Category),
			slice.LowConfidence,
			slice.SourceRef,
		)
		if err != nil {
			return fmt.Errorf("failed to insert disposal slice: %w", err)
		}
	}

	updateLotQuery := `
		UPDATE lots SET remaining_amount = $1, disposed_amount = $2 WHERE id = $3
	`
	for _, lot := range consumed {
		_, err = dbTx.ExecContext(ctx, updateLotQuery,
			lot.RemainingAmount.String(),
			lot.DisposedAmount.String(),
			lot.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update consumed lot: %w", err)
		}
	}

	if checkpoint != nil {
		checkpointQuery := `
			INSERT INTO stream_checkpoints (
				owner_id, symbol, chain, contract,
				last_source_ref, last_event_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (owner_id, symbol, chain, contract)
			DO UPDATE SET last_source_ref = $5, last_event_at = $6, updated_at = $7
		`
		_, err = dbTx.ExecContext(ctx, checkpointQuery,
			checkpoint.OwnerID,
			checkpoint.Token.Symbol,
			checkpoint.Token.Chain,
			checkpoint.Token.Contract,
			checkpoint.LastSourceRef,
			checkpoint.LastEventAt,
			checkpoint.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert stream checkpoint: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match: %w", err)
	}

	return nil
}

// ExistsBySourceRef reports whether a disposal event was already processed
func (r *disposalRepository) ExistsBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM disposals WHERE owner_id = $1 AND source_ref = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ownerID, sourceRef).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check disposal source ref: %w", err)
	}
	return exists, nil
}

// ListByOwner retrieves disposals in [from, to]
func (r *disposalRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Disposal, error) {
	query := `SELECT ` + disposalColumns + `
		FROM disposals
		WHERE owner_id = $1 AND disposed_at >= $2 AND disposed_at <= $3
		ORDER BY disposed_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query disposals: %w", err)
	}
	defer rows.Close()

	return collectDisposals(rows)
}

// ListLosses retrieves loss disposals in [from, to]
func (r *disposalRepository) ListLosses(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Disposal, error) {
	query := `SELECT ` + disposalColumns + `
		FROM disposals
		WHERE owner_id = $1 AND disposed_at >= $2 AND disposed_at <= $3
		  AND gain_loss < 0
		ORDER BY disposed_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query loss disposals: %w", err)
	}
	defer rows.Close()

	return collectDisposals(rows)
}

// UpdateMirror persists a disposal's local-currency mirror fields
func (r *disposalRepository) UpdateMirror(ctx context.Context, d *domain.Disposal) error {
	query := `
		UPDATE disposals
		SET local_proceeds = $1, local_cost_basis = $2, local_gain_loss = $3,
		    exchange_rate = $4, exchange_rate_source = $5, exchange_rate_date = $6
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		decimalOrNil(d.LocalProceeds),
		decimalOrNil(d.LocalCostBasis),
		decimalOrNil(d.LocalGainLoss),
		decimalOrNil(d.ExchangeRate),
		d.ExchangeRateSource,
		d.ExchangeRateDate,
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update disposal mirror: %w", err)
	}
	return nil
}

// ListUnnormalized retrieves disposals still missing their mirror
func (r *disposalRepository) ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Disposal, error) {
	query := `SELECT ` + disposalColumns + `
		FROM disposals
		WHERE owner_id = $1 AND local_proceeds IS NULL
		ORDER BY disposed_at ASC, id ASC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unnormalized disposals: %w", err)
	}
	defer rows.Close()

	return collectDisposals(rows)
}

// scanDisposal reads one disposal from the disposalColumns select list.
func scanDisposal(row rowScanner) (*domain.Disposal, error) {
	var d domain.Disposal
	var lotID uuid.NullUUID
	var category string
	var unitPrice, amount, basisPerUnit, totalBasis, proceeds, gainLoss string
	var localProceeds, localBasis, localGainLoss, rate sql.NullString
	var rateSource sql.NullString
	var rateDate sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Token.Symbol,
		&d.Token.Chain,
		&d.Token.Contract,
		&lotID,
		&d.DisposedAt,
		&unitPrice,
		&amount,
		&basisPerUnit,
		&totalBasis,
		&proceeds,
		&gainLoss,
		&d.HoldingPeriodDays,
		&category,
		&d.LowConfidence,
		&d.SourceRef,
		&localProceeds,
		&localBasis,
		&localGainLoss,
		&rate,
		&rateSource,
		&rateDate,
	)
	if err != nil {
		return nil, err
	}

	if lotID.Valid {
		id := lotID.UUID
		d.LotID = &id
	}
	d.Category = domain.TaxCategory(category)

	if d.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, fmt.Errorf("failed to parse unit_price: %w", err)
	}
	if d.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	if d.CostBasisPerUnit, err = decimal.NewFromString(basisPerUnit); err != nil {
		return nil, fmt.Errorf("failed to parse cost_basis_per_unit: %w", err)
	}
	if d.TotalCostBasis, err = decimal.NewFromString(totalBasis); err != nil {
		return nil, fmt.Errorf("failed to parse total_cost_basis: %w", err)
	}
	if d.TotalProceeds, err = decimal.NewFromString(proceeds); err != nil {
		return nil, fmt.Errorf("failed to parse total_proceeds: %w", err)
	}
	if d.GainLoss, err = decimal.NewFromString(gainLoss); err != nil {
		return nil, fmt.Errorf("failed to parse gain_loss: %w", err)
	}

	if d.LocalProceeds, err = nullDecimal(localProceeds, "local_proceeds"); err != nil {
		return nil, err
	}
	if d.LocalCostBasis, err = nullDecimal(localBasis, "local_cost_basis"); err != nil {
		return nil, err
	}
	if d.LocalGainLoss, err = nullDecimal(localGainLoss, "local_gain_loss"); err != nil {
		return nil, err
	}
	if d.ExchangeRate, err = nullDecimal(rate, "exchange_rate"); err != nil {
		return nil, err
	}
	if rateSource.Valid {
		d.ExchangeRateSource = rateSource.String
	}
	if rateDate.Valid {
		t := rateDate.Time
		d.ExchangeRateDate = &t
	}

	return &d, nil
}

// collectDisposals drains a disposal result set.
func collectDisposals(rows *sql.Rows) ([]*domain.Disposal, error) {
	disposals := make([]*domain.Disposal, 0)
	for rows.Next() {
		d, err := scanDisposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan disposal: %w", err)
		}
		disposals = append(disposals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate disposals: %w", err)
	}
	return disposals, nil
}
