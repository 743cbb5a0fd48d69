package service

import (
	"context"
	"encoding/json"

	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerStore on top of a snapshot store.
// The whole ledger is decoded and re-encoded on every mutation; concurrent
// writers race and the last write wins. Persistence failures are logged and
// swallowed so a checkout never fails because the ledger could not be saved.
type LedgerServiceImpl struct {
	snapshots ports.SnapshotStore
	feed      ports.ChangeFeed
	log       zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(snapshots ports.SnapshotStore, feed ports.ChangeFeed, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		snapshots: snapshots,
		feed:      feed,
		log:       log,
	}
}

// ReadAll returns every ledger record, most recent first. A missing or
// malformed snapshot yields an empty ledger rather than an error.
func (s *LedgerServiceImpl) ReadAll(ctx context.Context) ([]domain.TransactionRecord, error) {
	raw, err := s.snapshots.Get(ctx, ports.KeyHistory)
	if err != nil {
		return nil, err
	}
	return domain.DecodeRecords(raw), nil
}

// Append prepends a record so the newest entry is always first.
func (s *LedgerServiceImpl) Append(ctx context.Context, record domain.TransactionRecord) error {
	records, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}

	updated := append([]domain.TransactionRecord{record}, records...)
	s.persist(ctx, updated)
	return nil
}

// SetStatus updates the status of the single record matching id. Unknown ids
// are a no-op.
func (s *LedgerServiceImpl) SetStatus(ctx context.Context, id string, status domain.RecordStatus) error {
	records, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range records {
		if records[i].ID == id {
			records[i].Status = status
			changed = true
		}
	}
	if !changed {
		return nil
	}

	s.persist(ctx, records)
	return nil
}

// SetStatusBulk updates every record accepted by match and returns how many
// records changed.
func (s *LedgerServiceImpl) SetStatusBulk(ctx context.Context, match func(domain.TransactionRecord) bool, status domain.RecordStatus) (int, error) {
	records, err := s.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range records {
		if match(records[i]) {
			records[i].Status = status
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}

	s.persist(ctx, records)
	return count, nil
}

// persist writes the full ledger back and broadcasts the change. Failures
// are logged, never returned.
func (s *LedgerServiceImpl) persist(ctx context.Context, records []domain.TransactionRecord) {
	data, err := json.Marshal(records)
	if err != nil {
		s.log.Warn().Err(err).Msg("ledger snapshot encode failed")
		return
	}

	if err := s.snapshots.Set(ctx, ports.KeyHistory, data); err != nil {
		s.log.Warn().Err(err).Msg("ledger snapshot write failed")
		return
	}

	if err := s.feed.Publish(ctx); err != nil {
		s.log.Warn().Err(err).Msg("ledger change broadcast failed")
	}
}
