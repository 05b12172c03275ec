package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LotRepository defines the interface for lot persistence operations.
// Lots are never deleted; only remaining/disposed amounts, the
// wash-sale basis adjustment and the local-currency mirror mutate
// after creation.
type LotRepository interface {
	// Create persists a new lot.
	Create(ctx context.Context, lot *Lot) error

	// GetByID retrieves a lot by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*Lot, error)

	// GetBySourceRef retrieves the lot ingested for a source ref, or
	// ErrLotNotFound if none. Used for idempotent replay.
	GetBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (*Lot, error)

	// OpenLots retrieves lots with remaining balance for the owner and
	// token, ordered by acquisition time ascending, ties broken by
	// insertion order for determinism.
	OpenLots(ctx context.Context, ownerID uuid.UUID, token Token) ([]*Lot, error)

	// ListByOwner retrieves all lots for an owner, optionally filtered
	// by token (nil = all tokens), in the same deterministic order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, token *Token) ([]*Lot, error)

	// ListAcquiredBetween retrieves lots of the token acquired within
	// [from, to], ordered oldest first. Used by the wash-sale window
	// scan and by income reporting.
	ListAcquiredBetween(ctx context.Context, ownerID uuid.UUID, token Token, from, to time.Time) ([]*Lot, error)

	// ListIncomeLots retrieves reward/airdrop/mined lots acquired in
	// [from, to] across all tokens, for ordinary-income reporting.
	ListIncomeLots(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*Lot, error)

	// UpdateBasisAdjustment persists a lot's wash-sale basis deferral.
	UpdateBasisAdjustment(ctx context.Context, id uuid.UUID, adjustment decimal.Decimal) error

	// UpdateMirror persists a lot's local-currency mirror fields.
	UpdateMirror(ctx context.Context, lot *Lot) error

	// ListUnnormalized retrieves lots whose local-currency mirror is
	// still empty, for the normalizer's retry sweep.
	ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Lot, error)
}

// DisposalRepository defines the interface for disposal persistence.
// Disposal rows are append-only and immutable once written, except for
// the local-currency mirror filled in by the normalizer.
type DisposalRepository interface {
	// RecordMatch atomically persists the slices produced by one
	// disposal event together with the updated amounts of the lots it
	// consumed and the stream checkpoint. One event, one transaction:
	// a crashed backfill resumes from the last committed event.
	RecordMatch(ctx context.Context, slices []*Disposal, consumed []*Lot, checkpoint *StreamCheckpoint) error

	// ExistsBySourceRef reports whether a disposal event with this
	// source ref was already processed for the owner.
	ExistsBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (bool, error)

	// ListByOwner retrieves disposals in [from, to], ordered by
	// disposal time then ID.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*Disposal, error)

	// ListLosses retrieves loss disposals (gain_loss < 0) in [from, to].
	ListLosses(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*Disposal, error)

	// UpdateMirror persists a disposal's local-currency mirror fields.
	UpdateMirror(ctx context.Context, d *Disposal) error

	// ListUnnormalized retrieves disposals whose local-currency mirror
	// is still empty, for the normalizer's retry sweep.
	ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Disposal, error)
}

// WashSaleViolationRepository defines the interface for wash-sale
// violation persistence. Violations are append-only.
type WashSaleViolationRepository interface {
	// Create persists a new violation.
	Create(ctx context.Context, v *WashSaleViolation) error

	// Exists reports whether a violation for the (disposal, lot) pair
	// is already recorded. Detection keys on this for idempotence.
	Exists(ctx context.Context, disposalID, lotID uuid.UUID) (bool, error)

	// ListByOwner retrieves violations whose loss disposal falls in
	// [from, to].
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*WashSaleViolation, error)
}

// StreamCheckpoint marks the last committed disposal event of an
// (owner, token, chain) stream so a cancelled or crashed backfill
// resumes after it instead of restarting.
type StreamCheckpoint struct {
	OwnerID       uuid.UUID
	Token         Token
	LastSourceRef string
	LastEventAt   time.Time
	UpdatedAt     time.Time
}

// CheckpointRepository defines the interface for stream checkpoints.
// Checkpoints are written by DisposalRepository.RecordMatch inside the
// match transaction; this interface only reads them back.
type CheckpointRepository interface {
	// Get retrieves the checkpoint for a stream, or nil if the stream
	// has never committed an event.
	Get(ctx context.Context, ownerID uuid.UUID, token Token) (*StreamCheckpoint, error)
}

// TaxSettingsRepository reads per-owner tax settings. The settings are
// owned by the account service; this engine never writes them.
type TaxSettingsRepository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*UserTaxSettings, error)
}

// PriceSource resolves historical fiat prices for a token. External
// collaborator; returns ErrLookupUnavailable when no quote exists.
type PriceSource interface {
	GetPrice(ctx context.Context, token Token, at time.Time) (decimal.Decimal, error)
}

// FXRateSource resolves historical FX rates between fiat currencies.
// External collaborator; returns the rate and the quoting source, or
// ErrLookupUnavailable.
type FXRateSource interface {
	GetRate(ctx context.Context, from, to string, date time.Time) (decimal.Decimal, string, error)
}

// JurisdictionRuleSource resolves jurisdiction tax rules by code.
type JurisdictionRuleSource interface {
	GetRules(ctx context.Context, code string) (JurisdictionRules, error)
}

// JurisdictionRuleRepository extends the rule source with the write the
// startup seeder needs. Everything else consumes rules read-only
// through JurisdictionRuleSource.
type JurisdictionRuleRepository interface {
	JurisdictionRuleSource
	Upsert(ctx context.Context, rules JurisdictionRules) error
}
