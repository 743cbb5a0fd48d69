package ports

import (
	"context"

	"vendorguard/internal/core/domain"
)

// Snapshot keys of the shared persisted store.
const (
	KeyHistory  = "merchantHistory"
	KeySettings = "merchantSettings"
	KeyLogo     = "merchantLogo" // legacy, superseded by profileImage inside settings
)

// SnapshotStore is the durable key/value mechanism behind the ledger and
// settings. Values are read and written whole; concurrent writers race with
// last-writer-wins on the full value.
type SnapshotStore interface {
	// Get returns the stored value, or nil, nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ChangeFeed is the best-effort "store changed" broadcast used to tell other
// contexts to re-read their snapshots. It carries no payload and gives no
// delivery or ordering guarantee.
type ChangeFeed interface {
	Publish(ctx context.Context) error
	// Subscribe returns a channel that receives one value per broadcast.
	// The channel closes when ctx is cancelled.
	Subscribe(ctx context.Context) (<-chan struct{}, error)
}

// LedgerStore defines operations on the persisted transaction ledger.
// Records are kept most-recent-first.
type LedgerStore interface {
	// Append prepends the record to the ledger.
	Append(ctx context.Context, record domain.TransactionRecord) error
	// ReadAll returns the ledger most-recent-first. Absent or malformed
	// snapshots read as an empty ledger.
	ReadAll(ctx context.Context) ([]domain.TransactionRecord, error)
	// SetStatus replaces the status of the single record matching id.
	// Unknown ids are a no-op.
	SetStatus(ctx context.Context, id string, status domain.RecordStatus) error
	// SetStatusBulk replaces the status of every record matching the
	// predicate and returns how many records changed.
	SetStatusBulk(ctx context.Context, match func(domain.TransactionRecord) bool, status domain.RecordStatus) (int, error)
}

// SettingsStore defines persistence for merchant settings.
type SettingsStore interface {
	Load(ctx context.Context) (domain.MerchantSettings, error)
	// Save overwrites the stored settings wholesale.
	Save(ctx context.Context, settings domain.MerchantSettings) error
}
