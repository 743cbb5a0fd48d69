package ports

import (
	"context"

	"vendorguard/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// PaymentAttempt holds the caller-supplied input for one payment attempt.
// Amount flows through as an opaque string; it is not validated as numeric.
type PaymentAttempt struct {
	Amount string
	Item   string
}

// Receipt is returned to the caller after a successful payment attempt,
// with enough data to build a receipt view.
type Receipt struct {
	ID     string
	Amount string
	Item   string
	Method domain.PaymentMethod
}

// CheckoutService orchestrates a single payment attempt. Each successful
// attempt appends exactly one ledger record; retries after failure create
// independent records.
type CheckoutService interface {
	PayWithCrypto(ctx context.Context, attempt PaymentAttempt) (*Receipt, error)
	PayWithCard(ctx context.Context, attempt PaymentAttempt) (*Receipt, error)
}

// RevenuePoint is one time bucket of the revenue series.
type RevenuePoint struct {
	Date   string
	Amount float64
}

// BalanceSummary is the dashboard headline view derived from the ledger.
type BalanceSummary struct {
	Withdrawable string
	TotalOrders  int
}

// BalanceService derives views from the ledger snapshot. All methods are
// pure functions of ledger state.
type BalanceService interface {
	// Withdrawable returns the sum of Completed record amounts, formatted
	// to 4 decimal places.
	Withdrawable(ctx context.Context) (string, error)
	// RevenueSeries buckets record amounts by the date portion of their
	// timestamp, excluding Refunded and Settled records.
	RevenueSeries(ctx context.Context) ([]RevenuePoint, error)
	Summary(ctx context.Context) (*BalanceSummary, error)
}

// WithdrawalService settles completed records and refunds individual ones.
type WithdrawalService interface {
	// Withdraw transitions every Completed record to Settled and returns
	// the settled amount. Fails with NoFundsAvailable when the
	// withdrawable balance is zero or less.
	Withdraw(ctx context.Context) (string, error)
	// Refund sends the record amount back to the customer and marks the
	// single matching record Refunded.
	Refund(ctx context.Context, recordID string) (*domain.TransactionRecord, error)
}

// ExportService renders the ledger as CSV.
type ExportService interface {
	ExportCSV(ctx context.Context) ([]byte, error)
}

// PaymentLink is a generated checkout link.
type PaymentLink struct {
	ID      string
	URL     string
	QRImage string // base64-encoded PNG, optional
}

// LinkParams are the checkout parameters carried by a payment link.
type LinkParams struct {
	Amount       string
	Item         string
	LockDuration string
}

// PaylinkService generates and parses payment links.
type PaylinkService interface {
	Generate(amount, item, lockDuration string) (*PaymentLink, error)
	Parse(rawURL string) LinkParams
}

// HealthChecker reports the health of a backing dependency.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
