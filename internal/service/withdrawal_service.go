package service

import (
	"context"
	"fmt"
	"time"

	"vendorguard/config"
	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"
	"vendorguard/pkg/apperror"

	"github.com/rs/zerolog"
)

// zeroAddress is the refund destination for records that carry no customer
// address.
const zeroAddress = "0x0000000000000000000000000000000000000000"

// WithdrawalServiceImpl implements ports.WithdrawalService.
type WithdrawalServiceImpl struct {
	ledger ports.LedgerStore
	wallet ports.WalletCapability // nil when no wallet is available
	cfg    config.CheckoutConfig
	log    zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(ledger ports.LedgerStore, wallet ports.WalletCapability, cfg config.CheckoutConfig, log zerolog.Logger) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		ledger: ledger,
		wallet: wallet,
		cfg:    cfg,
		log:    log,
	}
}

// Withdraw settles every Completed record in one sweep. Either all of them
// move to Settled or none do. Refunded records are never touched.
func (s *WithdrawalServiceImpl) Withdraw(ctx context.Context) (string, error) {
	records, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return "", err
	}

	total := completedTotal(records)
	if total <= 0 {
		return "", apperror.ErrNoFundsAvailable()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.cfg.SettlementDelay):
	}

	count, err := s.ledger.SetStatusBulk(ctx, func(rec domain.TransactionRecord) bool {
		return rec.Status == domain.StatusCompleted
	}, domain.StatusSettled)
	if err != nil {
		return "", err
	}

	amount := fmt.Sprintf("%.4f", total)
	s.log.Info().
		Str("amount", amount).
		Int("records", count).
		Msg("withdrawal settled")

	return amount, nil
}

// Refund sends the record amount back to the customer address captured at
// checkout, then marks the record Refunded. Only Completed records qualify.
func (s *WithdrawalServiceImpl) Refund(ctx context.Context, recordID string) (*domain.TransactionRecord, error) {
	records, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	var record *domain.TransactionRecord
	for i := range records {
		if records[i].ID == recordID {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	if !record.CanRefund() {
		return nil, apperror.ErrNotRefundable()
	}

	if s.wallet == nil {
		return nil, apperror.ErrWalletUnavailable()
	}

	to := record.CustomerAddress
	if to == "" {
		to = zeroAddress
	}

	transferID, err := s.wallet.SendTransfer(ctx, to, record.Amount)
	if err != nil {
		if ports.RPCCode(err) == ports.RPCCodeUserRejected {
			return nil, apperror.ErrTransferRejected()
		}
		return nil, apperror.ErrTransferFailed(err)
	}

	if err := s.wallet.AwaitConfirmation(ctx, transferID); err != nil {
		return nil, apperror.ErrTransferFailed(err)
	}

	if err := s.ledger.SetStatus(ctx, recordID, domain.StatusRefunded); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("id", recordID).
		Str("amount", record.Amount).
		Str("to", to).
		Msg("refund confirmed")

	refunded := *record
	refunded.Status = domain.StatusRefunded
	return &refunded, nil
}
