package domain

import "errors"

// Error taxonomy for the tax engine.
//
// ValidationError-class failures (invalid amount/price, malformed
// events) reject the single offending event; the stream continues.
// ErrInsufficientLotBalance is different in kind: a correct matcher can
// never trigger it, so observing it means the ledger invariants are
// broken and the owner's ledger must be flagged for manual audit.
var (
	// ErrInvalidAmount rejects a non-positive amount on ingestion.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidPrice rejects a negative price on ingestion.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrLotNotFound is returned when a referenced lot does not exist.
	ErrLotNotFound = errors.New("lot not found")

	// ErrNoOpenLots is returned when a disposal finds no lot with
	// remaining balance for the owner/token.
	ErrNoOpenLots = errors.New("no open lots for owner and token")

	// ErrInsufficientLotBalance signals an attempt to consume more than
	// a lot's remaining amount. Unreachable from a correct matcher;
	// treated as an internal invariant violation, not a normal error.
	ErrInsufficientLotBalance = errors.New("consume exceeds lot remaining amount")

	// ErrDuplicateEvent marks an event whose source ref was already
	// ingested. Replays are idempotent no-ops, not failures.
	ErrDuplicateEvent = errors.New("event already ingested")

	// ErrLookupUnavailable is returned by price/FX collaborators when a
	// quote cannot be resolved. Callers leave local-currency fields nil
	// and re-attempt in a later sweep.
	ErrLookupUnavailable = errors.New("external lookup unavailable")
)
