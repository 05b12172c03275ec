package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// lotRepository implements domain.LotRepository
type lotRepository struct {
	db *DB
}

// NewLotRepository creates a new lot repository
func NewLotRepository(db *DB) domain.LotRepository {
	return &lotRepository{db: db}
}

// lotColumns is the select list shared by every lot query. The seq
// column is a bigserial that freezes insertion order; it never leaves
// this package and exists only as the deterministic FIFO tie-break.
const lotColumns = `
	id, owner_id, symbol, chain, contract, acquired_at, method,
	unit_price, original_amount, remaining_amount, disposed_amount,
	basis_adjustment, source_ref, verified,
	local_unit_price, exchange_rate, exchange_rate_source, exchange_rate_date
`

// fifoOrder keeps every listing deterministic: acquisition time
// ascending, insertion order as the tie-break.
const fifoOrder = ` ORDER BY acquired_at ASC, seq ASC`

// Create persists a new lot
func (r *lotRepository) Create(ctx context.Context, lot *domain.Lot) error {
	query := `
		INSERT INTO lots (
			id, owner_id, symbol, chain, contract, acquired_at, method,
			unit_price, original_amount, remaining_amount, disposed_amount,
			basis_adjustment, source_ref, verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		lot.ID,
		lot.OwnerID,
		lot.Token.Symbol,
		lot.Token.Chain,
		lot.Token.Contract,
		lot.AcquiredAt,
		string(lot.Method),
		lot.UnitPrice.String(),
		lot.OriginalAmount.String(),
		lot.RemainingAmount.String(),
		lot.DisposedAmount.String(),
		lot.BasisAdjustment.String(),
		lot.SourceRef,
		lot.Verified,
	)
	if err != nil {
		return fmt.Errorf("failed to create lot: %w", err)
	}

	return nil
}

// GetByID retrieves a lot by its ID
func (r *lotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`

	lot, err := scanLot(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLotNotFound
		}
		return nil, fmt.Errorf("failed to get lot by ID: %w", err)
	}
	return lot, nil
}

// GetBySourceRef retrieves the lot ingested for a source ref
func (r *lotRepository) GetBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (*domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE owner_id = $1 AND source_ref = $2`

	lot, err := scanLot(r.db.QueryRowContext(ctx, query, ownerID, sourceRef))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLotNotFound
		}
		return nil, fmt.Errorf("failed to get lot by source ref: %w", err)
	}
	return lot, nil
}

// OpenLots retrieves lots with remaining balance in FIFO order
func (r *lotRepository) OpenLots(ctx context.Context, ownerID uuid.UUID, token domain.Token) ([]*domain.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lots
		WHERE owner_id = $1 AND symbol = $2 AND chain = $3 AND contract = $4
		  AND remaining_amount > 0` + fifoOrder

	rows, err := r.db.QueryContext(ctx, query, ownerID, token.Symbol, token.Chain, token.Contract)
	if err != nil {
		return nil, fmt.Errorf("failed to query open lots: %w", err)
	}
	defer rows.Close()

	return collectLots(rows)
}

// ListByOwner retrieves all lots for an owner, optionally by token
func (r *lotRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, token *domain.Token) ([]*domain.Lot, error) {
	var rows *sql.Rows
	var err error

	if token != nil {
		query := `SELECT ` + lotColumns + `
			FROM lots
			WHERE owner_id = $1 AND symbol = $2 AND chain = $3 AND contract = $4` + fifoOrder
		rows, err = r.db.QueryContext(ctx, query, ownerID, token.Symbol, token.Chain, token.Contract)
	} else {
		query := `SELECT ` + lotColumns + ` FROM lots WHERE owner_id = $1` + fifoOrder
		rows, err = r.db.QueryContext(ctx, query, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lots by owner: %w", err)
	}
	defer rows.Close()

	return collectLots(rows)
}

// ListAcquiredBetween retrieves lots of the token acquired in [from, to]
func (r *lotRepository) ListAcquiredBetween(ctx context.Context, ownerID uuid.UUID, token domain.Token, from, to time.Time) ([]*domain.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lots
		WHERE owner_id = $1 AND symbol = $2 AND chain = $3 AND contract = $4
		  AND acquired_at >= $5 AND acquired_at <= $6` + fifoOrder

	rows, err := r.db.QueryContext(ctx, query, ownerID, token.Symbol, token.Chain, token.Contract, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query lots in window: %w", err)
	}
	defer rows.Close()

	return collectLots(rows)
}

// ListIncomeLots retrieves reward/airdrop/mined lots acquired in [from, to]
func (r *lotRepository) ListIncomeLots(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lots
		WHERE owner_id = $1 AND method IN ($2, $3, $4)
		  AND acquired_at >= $5 AND acquired_at <= $6` + fifoOrder

	rows, err := r.db.QueryContext(ctx, query, ownerID,
		string(domain.MethodReward), string(domain.MethodAirdrop), string(domain.MethodMined),
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query income lots: %w", err)
	}
	defer rows.Close()

	return collectLots(rows)
}

// UpdateBasisAdjustment persists a lot's wash-sale basis deferral
func (r *lotRepository) UpdateBasisAdjustment(ctx context.Context, id uuid.UUID, adjustment decimal.Decimal) error {
	query := `UPDATE lots SET basis_adjustment = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, adjustment.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update basis adjustment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check basis adjustment update: %w", err)
	}
	if affected == 0 {
		return domain.ErrLotNotFound
	}
	return nil
}

// UpdateMirror persists a lot's local-currency mirror fields
func (r *lotRepository) UpdateMirror(ctx context.Context, lot *domain.Lot) error {
	query := `
		UPDATE lots
		SET local_unit_price = $1, exchange_rate = $2,
		    exchange_rate_source = $3, exchange_rate_date = $4
		WHERE id = $5
	`

	_, err := r.db.ExecContext(ctx, query,
		decimalOrNil(lot.LocalUnitPrice),
		decimalOrNil(lot.ExchangeRate),
		lot.ExchangeRateSource,
		lot.ExchangeRateDate,
		lot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lot mirror: %w", err)
	}
	return nil
}

// ListUnnormalized retrieves lots still missing their mirror
func (r *lotRepository) ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lots
		WHERE owner_id = $1 AND local_unit_price IS NULL` + fifoOrder + `
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unnormalized lots: %w", err)
	}
	defer rows.Close()

	return collectLots(rows)
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanLot reads one lot from the lotColumns select list.
func scanLot(row rowScanner) (*domain.Lot, error) {
	var lot domain.Lot
	var method string
	var unitPrice, original, remaining, disposed, adjustment string
	var localPrice, rate sql.NullString
	var rateSource sql.NullString
	var rateDate sql.NullTime

	err := row.Scan(
		&lot.ID,
		&lot.OwnerID,
		&lot.Token.Symbol,
		&lot.Token.Chain,
		&lot.Token.Contract,
		&lot.AcquiredAt,
		&method,
		&unitPrice,
		&original,
		&remaining,
		&disposed,
		&adjustment,
		&lot.SourceRef,
		&lot.Verified,
		&localPrice,
		&rate,
		&rateSource,
		&rateDate,
	)
	if err != nil {
		return nil, err
	}

	lot.Method = domain.AcquisitionMethod(method)

	if lot.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, fmt.Errorf("failed to parse unit_price: %w", err)
	}
	if lot.OriginalAmount, err = decimal.NewFromString(original); err != nil {
		return nil, fmt.Errorf("failed to parse original_amount: %w", err)
	}
	if lot.RemainingAmount, err = decimal.NewFromString(remaining); err != nil {
		return nil, fmt.Errorf("failed to parse remaining_amount: %w", err)
	}
	if lot.DisposedAmount, err = decimal.NewFromString(disposed); err != nil {
		return nil, fmt.Errorf("failed to parse disposed_amount: %w", err)
	}
	if lot.BasisAdjustment, err = decimal.NewFromString(adjustment); err != nil {
		return nil, fmt.Errorf("failed to parse basis_adjustment: %w", err)
	}

	if lot.LocalUnitPrice, err = nullDecimal(localPrice, "local_unit_price"); err != nil {
		return nil, err
	}
	if lot.ExchangeRate, err = nullDecimal(rate, "exchange_rate"); err != nil {
		return nil, err
	}
	if rateSource.Valid {
		lot.ExchangeRateSource = rateSource.String
	}
	if rateDate.Valid {
		t := rateDate.Time
		lot.ExchangeRateDate = &t
	}

	return &lot, nil
}

// collectLots drains a lot result set.
func collectLots(rows *sql.Rows) ([]*domain.Lot, error) {
	lots := make([]*domain.Lot, 0)
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lot: %w", err)
		}
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lots: %w", err)
	}
	return lots, nil
}

// nullDecimal parses a nullable DECIMAL column into a pointer.
func nullDecimal(v sql.NullString, column string) (*decimal.Decimal, error) {
	if !v.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return &d, nil
}

// decimalOrNil renders a nullable decimal for an INSERT/UPDATE.
func decimalOrNil(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}
