package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"vendorguard/config"
	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"
	"vendorguard/pkg/apperror"

	"github.com/rs/zerolog"
)

const cardIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	wallet ports.WalletCapability // nil when no wallet is available
	ledger ports.LedgerStore
	cfg    config.CheckoutConfig
	log    zerolog.Logger
	now    func() time.Time
}

// NewCheckoutService creates a new CheckoutServiceImpl. wallet may be nil;
// crypto payments then fail with WALLET_001 while card payments keep working.
func NewCheckoutService(wallet ports.WalletCapability, ledger ports.LedgerStore, cfg config.CheckoutConfig, log zerolog.Logger) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		wallet: wallet,
		ledger: ledger,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// PayWithCrypto runs the on-chain payment flow: connect the wallet, move it
// to the configured network, send the transfer and wait for one
// confirmation. Only a confirmed transfer is recorded; a failed attempt
// leaves the ledger untouched and a retry produces an independent record.
func (s *CheckoutServiceImpl) PayWithCrypto(ctx context.Context, attempt ports.PaymentAttempt) (*ports.Receipt, error) {
	if s.wallet == nil {
		return nil, apperror.ErrWalletUnavailable()
	}

	accounts, err := s.wallet.RequestAccounts(ctx)
	if err != nil {
		if ports.RPCCode(err) == ports.RPCCodeUserRejected {
			return nil, apperror.ErrUserRejected()
		}
		return nil, apperror.InternalError(err)
	}

	s.ensureNetwork(ctx)

	transferID, err := s.wallet.SendTransfer(ctx, s.cfg.Destination, attempt.Amount)
	if err != nil {
		if ports.RPCCode(err) == ports.RPCCodeUserRejected {
			return nil, apperror.ErrTransferRejected()
		}
		return nil, apperror.ErrTransferFailed(err)
	}

	// No deadline here: confirmation takes as long as the chain takes.
	if err := s.wallet.AwaitConfirmation(ctx, transferID); err != nil {
		return nil, apperror.ErrTransferFailed(err)
	}

	customer := ""
	if len(accounts) > 0 {
		customer = accounts[0]
	}

	record := domain.NewRecord(transferID, attempt.Amount, attempt.Item, customer, domain.MethodCrypto, s.now())
	if err := s.ledger.Append(ctx, record); err != nil {
		s.log.Warn().Err(err).Str("transfer_id", transferID).Msg("confirmed payment could not be recorded")
	}

	s.log.Info().
		Str("transfer_id", transferID).
		Str("amount", attempt.Amount).
		Msg("crypto payment confirmed")

	return &ports.Receipt{
		ID:     record.ID,
		Amount: record.Amount,
		Item:   record.Item,
		Method: record.Method,
	}, nil
}

// PayWithCard simulates a card authorization with a fixed processing delay.
func (s *CheckoutServiceImpl) PayWithCard(ctx context.Context, attempt ports.PaymentAttempt) (*ports.Receipt, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.cfg.CardDelay):
	}

	id, err := cardReference()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	record := domain.NewRecord(id, attempt.Amount, attempt.Item, "", domain.MethodCard, s.now())
	if err := s.ledger.Append(ctx, record); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("card payment could not be recorded")
	}

	s.log.Info().
		Str("id", id).
		Str("amount", attempt.Amount).
		Msg("card payment approved")

	return &ports.Receipt{
		ID:     record.ID,
		Amount: record.Amount,
		Item:   record.Item,
		Method: record.Method,
	}, nil
}

// ensureNetwork asks the wallet to switch to the configured chain, adding it
// first when the wallet does not know it. Failures are logged and ignored;
// the transfer itself decides whether the network was usable.
func (s *CheckoutServiceImpl) ensureNetwork(ctx context.Context) {
	err := s.wallet.SwitchNetwork(ctx, s.cfg.ChainID)
	if err == nil {
		return
	}

	if ports.RPCCode(err) == ports.RPCCodeUnknownNetwork {
		params := ports.NetworkParams{
			ChainID:          s.cfg.ChainID,
			ChainName:        s.cfg.ChainName,
			CurrencyName:     s.cfg.CurrencyName,
			CurrencySymbol:   s.cfg.CurrencySymbol,
			CurrencyDecimals: s.cfg.CurrencyDecimals,
			RPCURL:           s.cfg.RPCURL,
			ExplorerURL:      s.cfg.ExplorerURL,
		}
		if addErr := s.wallet.AddNetwork(ctx, params); addErr != nil {
			s.log.Warn().Err(addErr).Str("chain_id", s.cfg.ChainID).Msg("wallet refused network definition")
			return
		}
		if retryErr := s.wallet.SwitchNetwork(ctx, s.cfg.ChainID); retryErr != nil {
			s.log.Warn().Err(apperror.ErrNetworkSwitchFailed(retryErr)).Str("chain_id", s.cfg.ChainID).Msg("network switch failed after add")
		}
		return
	}

	s.log.Warn().Err(apperror.ErrNetworkSwitchFailed(err)).Str("chain_id", s.cfg.ChainID).Msg("network switch failed")
}

// cardReference builds a mock authorization id of the form CARD-XXXXXXXXX.
func cardReference() (string, error) {
	buf := make([]byte, 9)
	max := big.NewInt(int64(len(cardIDCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = cardIDCharset[n.Int64()]
	}
	return "CARD-" + string(buf), nil
}
