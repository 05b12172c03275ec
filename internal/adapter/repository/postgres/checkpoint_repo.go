package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// checkpointRepository implements domain.CheckpointRepository.
// Writes happen inside disposalRepository.RecordMatch so the checkpoint
// commits atomically with the event it marks.
type checkpointRepository struct {
	db *DB
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(db *DB) domain.CheckpointRepository {
	return &checkpointRepository{db: db}
}

// Get retrieves the checkpoint for a (owner, token) stream, or nil if
// the stream has never committed an event
func (r *checkpointRepository) Get(ctx context.Context, ownerID uuid.UUID, token domain.Token) (*domain.StreamCheckpoint, error) {
	query := `
		SELECT owner_id, symbol, chain, contract, last_source_ref, last_event_at, updated_at
		FROM stream_checkpoints
		WHERE owner_id = $1 AND symbol = $2 AND chain = $3 AND contract = $4
	`

	var cp domain.StreamCheckpoint
	err := r.db.QueryRowContext(ctx, query, ownerID, token.Symbol, token.Chain, token.Contract).Scan(
		&cp.OwnerID,
		&cp.Token.Symbol,
		&cp.Token.Chain,
		&cp.Token.Contract,
		&cp.LastSourceRef,
		&cp.LastEventAt,
		&cp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stream checkpoint: %w", err)
	}

	return &cp, nil
}
