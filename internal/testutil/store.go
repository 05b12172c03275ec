// Package testutil provides in-memory repository implementations for
// service tests. The fakes preserve the same contracts as the postgres
// adapters: deterministic FIFO ordering, copy-on-read lots, and
// atomic-looking match recording.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// Store is the shared backing state for the in-memory repositories.
type Store struct {
	mu          sync.Mutex
	seq         int
	lots        []lotRecord
	disposals   []domain.Disposal
	violations  []domain.WashSaleViolation
	checkpoints map[string]domain.StreamCheckpoint
	settings    map[uuid.UUID]domain.UserTaxSettings
}

type lotRecord struct {
	seq int // insertion order, the FIFO tie-break
	lot domain.Lot
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		checkpoints: make(map[string]domain.StreamCheckpoint),
		settings:    make(map[uuid.UUID]domain.UserTaxSettings),
	}
}

// Lots returns the store's LotRepository view.
func (s *Store) Lots() domain.LotRepository { return &lotRepo{s} }

// Disposals returns the store's DisposalRepository view.
func (s *Store) Disposals() domain.DisposalRepository { return &disposalRepo{s} }

// WashSales returns the store's WashSaleViolationRepository view.
func (s *Store) WashSales() domain.WashSaleViolationRepository { return &washSaleRepo{s} }

// Checkpoints returns the store's CheckpointRepository view.
func (s *Store) Checkpoints() domain.CheckpointRepository { return &checkpointRepo{s} }

// Settings returns the store's TaxSettingsRepository view.
func (s *Store) Settings() domain.TaxSettingsRepository { return &settingsRepo{s} }

// PutSettings seeds tax settings for an owner.
func (s *Store) PutSettings(st domain.UserTaxSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[st.OwnerID] = st
}

func streamKey(ownerID uuid.UUID, token domain.Token) string {
	return ownerID.String() + "|" + token.Symbol + "|" + token.Chain + "|" + token.Contract
}

// --- LotRepository ---

type lotRepo struct{ s *Store }

func (r *lotRepo) Create(ctx context.Context, lot *domain.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq++
	r.s.lots = append(r.s.lots, lotRecord{seq: r.s.seq, lot: *lot})
	return nil
}

func (r *lotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.lots {
		if r.s.lots[i].lot.ID == id {
			lot := r.s.lots[i].lot
			return &lot, nil
		}
	}
	return nil, domain.ErrLotNotFound
}

func (r *lotRepo) GetBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.lots {
		l := r.s.lots[i].lot
		if l.OwnerID == ownerID && l.SourceRef == sourceRef {
			return &l, nil
		}
	}
	return nil, domain.ErrLotNotFound
}

// collect returns copies of lots matching the filter, FIFO ordered:
// acquisition time ascending, insertion order as the tie-break.
func (r *lotRepo) collect(match func(domain.Lot) bool) []*domain.Lot {
	records := make([]lotRecord, 0)
	for _, rec := range r.s.lots {
		if match(rec.lot) {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].lot.AcquiredAt.Equal(records[j].lot.AcquiredAt) {
			return records[i].lot.AcquiredAt.Before(records[j].lot.AcquiredAt)
		}
		return records[i].seq < records[j].seq
	})
	out := make([]*domain.Lot, len(records))
	for i := range records {
		lot := records[i].lot
		out[i] = &lot
	}
	return out
}

func (r *lotRepo) OpenLots(ctx context.Context, ownerID uuid.UUID, token domain.Token) ([]*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(l domain.Lot) bool {
		return l.OwnerID == ownerID && l.Token == token && l.RemainingAmount.IsPositive()
	}), nil
}

func (r *lotRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, token *domain.Token) ([]*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(l domain.Lot) bool {
		if l.OwnerID != ownerID {
			return false
		}
		return token == nil || l.Token == *token
	}), nil
}

func (r *lotRepo) ListAcquiredBetween(ctx context.Context, ownerID uuid.UUID, token domain.Token, from, to time.Time) ([]*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(l domain.Lot) bool {
		return l.OwnerID == ownerID && l.Token == token &&
			!l.AcquiredAt.Before(from) && !l.AcquiredAt.After(to)
	}), nil
}

func (r *lotRepo) ListIncomeLots(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(l domain.Lot) bool {
		return l.OwnerID == ownerID && l.Method.IncomeMethod() &&
			!l.AcquiredAt.Before(from) && !l.AcquiredAt.After(to)
	}), nil
}

func (r *lotRepo) UpdateBasisAdjustment(ctx context.Context, id uuid.UUID, adjustment decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.lots {
		if r.s.lots[i].lot.ID == id {
			r.s.lots[i].lot.BasisAdjustment = adjustment
			return nil
		}
	}
	return domain.ErrLotNotFound
}

func (r *lotRepo) UpdateMirror(ctx context.Context, lot *domain.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.lots {
		if r.s.lots[i].lot.ID == lot.ID {
			stored := &r.s.lots[i].lot
			stored.LocalUnitPrice = lot.LocalUnitPrice
			stored.ExchangeRate = lot.ExchangeRate
			stored.ExchangeRateSource = lot.ExchangeRateSource
			stored.ExchangeRateDate = lot.ExchangeRateDate
			return nil
		}
	}
	return domain.ErrLotNotFound
}

func (r *lotRepo) ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lots := r.collect(func(l domain.Lot) bool {
		return l.OwnerID == ownerID && l.LocalUnitPrice == nil
	})
	if limit > 0 && len(lots) > limit {
		lots = lots[:limit]
	}
	return lots, nil
}

// --- DisposalRepository ---

type disposalRepo struct{ s *Store }

func (r *disposalRepo) RecordMatch(ctx context.Context, slices []*domain.Disposal, consumed []*domain.Lot, checkpoint *domain.StreamCheckpoint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, slice := range slices {
		r.s.disposals = append(r.s.disposals, *slice)
	}
	for _, lot := range consumed {
		for i := range r.s.lots {
			if r.s.lots[i].lot.ID == lot.ID {
				r.s.lots[i].lot.RemainingAmount = lot.RemainingAmount
				r.s.lots[i].lot.DisposedAmount = lot.DisposedAmount
			}
		}
	}
	if checkpoint != nil {
		r.s.checkpoints[streamKey(checkpoint.OwnerID, checkpoint.Token)] = *checkpoint
	}
	return nil
}

func (r *disposalRepo) ExistsBySourceRef(ctx context.Context, ownerID uuid.UUID, sourceRef string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.disposals {
		if r.s.disposals[i].OwnerID == ownerID && r.s.disposals[i].SourceRef == sourceRef {
			return true, nil
		}
	}
	return false, nil
}

func (r *disposalRepo) list(match func(domain.Disposal) bool) []*domain.Disposal {
	out := make([]*domain.Disposal, 0)
	for i := range r.s.disposals {
		if match(r.s.disposals[i]) {
			d := r.s.disposals[i]
			out = append(out, &d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisposedAt.Before(out[j].DisposedAt)
	})
	return out
}

func (r *disposalRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Disposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(d domain.Disposal) bool {
		return d.OwnerID == ownerID && !d.DisposedAt.Before(from) && !d.DisposedAt.After(to)
	}), nil
}

func (r *disposalRepo) ListLosses(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.Disposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(d domain.Disposal) bool {
		return d.OwnerID == ownerID && d.GainLoss.IsNegative() &&
			!d.DisposedAt.Before(from) && !d.DisposedAt.After(to)
	}), nil
}

func (r *disposalRepo) UpdateMirror(ctx context.Context, d *domain.Disposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.disposals {
		if r.s.disposals[i].ID == d.ID {
			stored := &r.s.disposals[i]
			stored.LocalProceeds = d.LocalProceeds
			stored.LocalCostBasis = d.LocalCostBasis
			stored.LocalGainLoss = d.LocalGainLoss
			stored.ExchangeRate = d.ExchangeRate
			stored.ExchangeRateSource = d.ExchangeRateSource
			stored.ExchangeRateDate = d.ExchangeRateDate
			return nil
		}
	}
	return errors.New("disposal not found")
}

func (r *disposalRepo) ListUnnormalized(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Disposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.list(func(d domain.Disposal) bool {
		return d.OwnerID == ownerID && d.LocalProceeds == nil
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- WashSaleViolationRepository ---

type washSaleRepo struct{ s *Store }

func (r *washSaleRepo) Create(ctx context.Context, v *domain.WashSaleViolation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.violations = append(r.s.violations, *v)
	return nil
}

func (r *washSaleRepo) Exists(ctx context.Context, disposalID, lotID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.violations {
		if r.s.violations[i].DisposalID == disposalID && r.s.violations[i].LotID == lotID {
			return true, nil
		}
	}
	return false, nil
}

func (r *washSaleRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*domain.WashSaleViolation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.WashSaleViolation, 0)
	for i := range r.s.violations {
		v := r.s.violations[i]
		if v.OwnerID != ownerID {
			continue
		}
		// Period filtering keys on the loss disposal's date, matching
		// the postgres adapter's join.
		at := v.DetectedAt
		for j := range r.s.disposals {
			if r.s.disposals[j].ID == v.DisposalID {
				at = r.s.disposals[j].DisposedAt
				break
			}
		}
		if !at.Before(from) && !at.After(to) {
			out = append(out, &v)
		}
	}
	return out, nil
}

// --- CheckpointRepository ---

type checkpointRepo struct{ s *Store }

func (r *checkpointRepo) Get(ctx context.Context, ownerID uuid.UUID, token domain.Token) (*domain.StreamCheckpoint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp, ok := r.s.checkpoints[streamKey(ownerID, token)]
	if !ok {
		return nil, nil
	}
	return &cp, nil
}

// --- TaxSettingsRepository ---

type settingsRepo struct{ s *Store }

func (r *settingsRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserTaxSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.settings[ownerID]
	if !ok {
		return nil, errors.New("tax settings not found for owner")
	}
	return &st, nil
}
