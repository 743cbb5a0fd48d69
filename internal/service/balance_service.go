package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"

	"github.com/rs/zerolog"
)

// fallbackBucket collects records whose timestamp carries no date portion.
const fallbackBucket = "New"

// BalanceServiceImpl implements ports.BalanceService. Every view is derived
// from the full ledger on each call; nothing is cached.
type BalanceServiceImpl struct {
	ledger ports.LedgerStore
	log    zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(ledger ports.LedgerStore, log zerolog.Logger) *BalanceServiceImpl {
	return &BalanceServiceImpl{ledger: ledger, log: log}
}

// Withdrawable sums the amounts of Completed records. Amounts that do not
// parse count as zero. The result is always rendered with 4 decimal places.
func (s *BalanceServiceImpl) Withdrawable(ctx context.Context) (string, error) {
	records, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.4f", completedTotal(records)), nil
}

// RevenueSeries buckets record amounts by calendar date, oldest bucket
// first. Refunded and Settled records keep their bucket but contribute
// nothing to it.
func (s *BalanceServiceImpl) RevenueSeries(ctx context.Context) ([]ports.RevenuePoint, error) {
	records, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	// Records arrive most recent first. Buckets are keyed in encounter
	// order and the series is reversed at the end, so the oldest date ends
	// up first.
	totals := make(map[string]float64)
	var order []string
	for _, rec := range records {
		key := dateBucket(rec.Date)
		if _, seen := totals[key]; !seen {
			// Materialize the bucket immediately so a terminal record still
			// claims its date exactly once.
			totals[key] = 0
			order = append(order, key)
		}
		if rec.Status == domain.StatusRefunded || rec.Status == domain.StatusSettled {
			continue
		}
		totals[key] += parseAmount(rec.Amount)
	}

	points := make([]ports.RevenuePoint, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		points = append(points, ports.RevenuePoint{Date: order[i], Amount: totals[order[i]]})
	}
	return points, nil
}

// Summary returns the dashboard headline numbers.
func (s *BalanceServiceImpl) Summary(ctx context.Context) (*ports.BalanceSummary, error) {
	records, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.BalanceSummary{
		Withdrawable: fmt.Sprintf("%.4f", completedTotal(records)),
		TotalOrders:  len(records),
	}, nil
}

func completedTotal(records []domain.TransactionRecord) float64 {
	var total float64
	for _, rec := range records {
		if rec.Status != domain.StatusCompleted {
			continue
		}
		total += parseAmount(rec.Amount)
	}
	return total
}

func parseAmount(amount string) float64 {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// dateBucket extracts the calendar-date portion of a record timestamp,
// everything before the first comma. Timestamps without a date fall into
// the shared fallback bucket.
func dateBucket(date string) string {
	if date == "" {
		return fallbackBucket
	}
	return strings.SplitN(date, ",", 2)[0]
}
