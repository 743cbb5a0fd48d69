package domain

import (
	"encoding/json"
	"time"
)

// RecordStatus represents the lifecycle state of a ledger record.
type RecordStatus string

const (
	StatusCompleted RecordStatus = "Completed"
	StatusRefunded  RecordStatus = "Refunded"
	StatusSettled   RecordStatus = "Settled"
)

// PaymentMethod labels how a payment was collected.
type PaymentMethod string

const (
	MethodCrypto PaymentMethod = "Crypto (Base)"
	MethodCard   PaymentMethod = "Credit Card"
)

// DefaultCustomerAddress is recorded when the payer identity is unknown
// (card payments have no wallet address).
const DefaultCustomerAddress = "Secure User"

// DateLayout is the locale-style timestamp captured at record creation.
// The balance aggregator buckets on the segment before the first comma,
// so the layout must keep the "date, time" shape.
const DateLayout = "1/2/2006, 3:04:05 PM"

// TransactionRecord is one entry of the merchant ledger. All fields except
// Status are immutable after creation. JSON tags are camelCase because the
// persisted snapshot format predates this service and must stay readable
// by older clients.
type TransactionRecord struct {
	ID              string        `json:"id"`
	Amount          string        `json:"amount"` // opaque decimal string, not validated at write time
	Item            string        `json:"item"`
	Date            string        `json:"date"`
	CustomerAddress string        `json:"customerAddress"`
	Method          PaymentMethod `json:"method"`
	Status          RecordStatus  `json:"status"`
}

// IsTerminal returns true once the record has been settled or refunded.
// Terminal records never re-enter the withdrawable balance.
func (r *TransactionRecord) IsTerminal() bool {
	return r.Status == StatusSettled || r.Status == StatusRefunded
}

// CanRefund returns true if the record may still transition to Refunded.
func (r *TransactionRecord) CanRefund() bool {
	return r.Status == StatusCompleted
}

// NewRecord builds a Completed ledger record stamped with the current time.
func NewRecord(id, amount, item, customerAddress string, method PaymentMethod, now time.Time) TransactionRecord {
	if customerAddress == "" {
		customerAddress = DefaultCustomerAddress
	}
	return TransactionRecord{
		ID:              id,
		Amount:          amount,
		Item:            item,
		Date:            now.Format(DateLayout),
		CustomerAddress: customerAddress,
		Method:          method,
		Status:          StatusCompleted,
	}
}

// DecodeRecords parses a persisted ledger snapshot. Absent or malformed
// data decodes to an empty ledger, never an error.
func DecodeRecords(data []byte) []TransactionRecord {
	if len(data) == 0 {
		return []TransactionRecord{}
	}
	var records []TransactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []TransactionRecord{}
	}
	if records == nil {
		return []TransactionRecord{}
	}
	return records
}
