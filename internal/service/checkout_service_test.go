package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"vendorguard/config"
	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"
	"vendorguard/internal/core/ports/mocks"
	"vendorguard/pkg/apperror"
	"vendorguard/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		ChainID:          "0x2105",
		ChainName:        "Base",
		CurrencyName:     "Ethereum",
		CurrencySymbol:   "ETH",
		CurrencyDecimals: 18,
		RPCURL:           "https://mainnet.base.org",
		ExplorerURL:      "https://basescan.org",
		Destination:      "0x1A2b3C4d5E6f7A8b9C0d1E2f3A4b5C6d7E8f9A0b",
		CardDelay:        time.Millisecond,
		SettlementDelay:  time.Millisecond,
	}
}

type checkoutTestDeps struct {
	svc    *CheckoutServiceImpl
	wallet *mocks.MockWalletCapability
	ledger *mocks.MockLedgerStore
	ctrl   *gomock.Controller
}

func setupCheckoutService(t *testing.T) *checkoutTestDeps {
	ctrl := gomock.NewController(t)
	d := &checkoutTestDeps{
		wallet: mocks.NewMockWalletCapability(ctrl),
		ledger: mocks.NewMockLedgerStore(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewCheckoutService(d.wallet, d.ledger, testCheckoutConfig(), zerolog.Nop())
	d.svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)
	}
	return d
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	return appErr.Code
}

// ==================== PayWithCrypto Tests ====================

func TestCheckoutService_PayWithCrypto_Success(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	attempt := ports.PaymentAttempt{Amount: "0.05", Item: "Premium Plan"}

	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xCustomer"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(nil)
	d.wallet.EXPECT().SendTransfer(ctx, "0x1A2b3C4d5E6f7A8b9C0d1E2f3A4b5C6d7E8f9A0b", "0.05").
		Return("0xHASH", nil)
	d.wallet.EXPECT().AwaitConfirmation(ctx, "0xHASH").Return(nil)

	var appended domain.TransactionRecord
	d.ledger.EXPECT().Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.TransactionRecord) error {
			appended = rec
			return nil
		})

	receipt, err := d.svc.PayWithCrypto(ctx, attempt)
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Equal(t, "0xHASH", receipt.ID)
	assert.Equal(t, "0.05", receipt.Amount)
	assert.Equal(t, "Premium Plan", receipt.Item)
	assert.Equal(t, domain.MethodCrypto, receipt.Method)

	assert.Equal(t, "0xHASH", appended.ID)
	assert.Equal(t, "0xCustomer", appended.CustomerAddress)
	assert.Equal(t, domain.StatusCompleted, appended.Status)
	assert.Equal(t, "3/14/2026, 3:04:05 PM", appended.Date)
}

func TestCheckoutService_PayWithCrypto_NoWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerStore(ctrl)
	svc := NewCheckoutService(nil, ledger, testCheckoutConfig(), zerolog.Nop())

	receipt, err := svc.PayWithCrypto(context.Background(), ports.PaymentAttempt{Amount: "1"})
	assert.Nil(t, receipt)
	assert.Equal(t, "WALLET_001", appCode(t, err))
}

func TestCheckoutService_PayWithCrypto_UserDeclinesConnection(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	d.wallet.EXPECT().RequestAccounts(gomock.Any()).
		Return(nil, &ports.RPCError{Code: 4001, Message: "User rejected the request"})

	receipt, err := d.svc.PayWithCrypto(context.Background(), ports.PaymentAttempt{Amount: "1"})
	assert.Nil(t, receipt)
	assert.Equal(t, "WALLET_002", appCode(t, err))
}

func TestCheckoutService_PayWithCrypto_UnknownNetworkIsAdded(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").
		Return(&ports.RPCError{Code: 4902, Message: "Unrecognized chain ID"})
	d.wallet.EXPECT().AddNetwork(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.NetworkParams) error {
			assert.Equal(t, "0x2105", params.ChainID)
			assert.Equal(t, "Base", params.ChainName)
			assert.Equal(t, 18, params.CurrencyDecimals)
			return nil
		})
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(nil)
	d.wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").Return("0xH", nil)
	d.wallet.EXPECT().AwaitConfirmation(ctx, "0xH").Return(nil)
	d.ledger.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	assert.NoError(t, err)
}

func TestCheckoutService_PayWithCrypto_NetworkSwitchFailureIsIgnored(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(fmt.Errorf("rpc timeout"))
	d.wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").Return("0xH", nil)
	d.wallet.EXPECT().AwaitConfirmation(ctx, "0xH").Return(nil)
	d.ledger.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	assert.NoError(t, err, "network switch problems must not block the payment")
}

func TestCheckoutService_PayWithCrypto_SwitchFailureLogsWalletCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletCapability(ctrl)
	ledger := mocks.NewMockLedgerStore(ctrl)
	var logBuf bytes.Buffer
	svc := NewCheckoutService(wallet, ledger, testCheckoutConfig(), logger.NewWithWriter("warn", &logBuf))

	ctx := context.Background()
	wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(fmt.Errorf("rpc timeout"))
	wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").Return("0xH", nil)
	wallet.EXPECT().AwaitConfirmation(ctx, "0xH").Return(nil)
	ledger.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	_, err := svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "WALLET_003", "the swallowed switch failure must be traceable by its code")
}

func TestCheckoutService_PayWithCrypto_UserRejectsTransfer(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(nil)
	d.wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").
		Return("", &ports.RPCError{Code: 4001, Message: "User denied transaction"})
	// No Append: a rejected transfer leaves the ledger untouched.

	receipt, err := d.svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	assert.Nil(t, receipt)
	assert.Equal(t, "PAY_001", appCode(t, err))
}

func TestCheckoutService_PayWithCrypto_TransferError(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(nil)
	d.wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").
		Return("", fmt.Errorf("insufficient gas"))

	receipt, err := d.svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	assert.Nil(t, receipt)
	assert.Equal(t, "PAY_002", appCode(t, err))
}

func TestCheckoutService_PayWithCrypto_ConfirmationFailure(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(nil)
	d.wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").Return("0xH", nil)
	d.wallet.EXPECT().AwaitConfirmation(ctx, "0xH").Return(fmt.Errorf("dropped from mempool"))

	receipt, err := d.svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	assert.Nil(t, receipt)
	assert.Equal(t, "PAY_002", appCode(t, err))
}

func TestCheckoutService_PayWithCrypto_LedgerFailureStillSucceeds(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.wallet.EXPECT().RequestAccounts(ctx).Return([]string{"0xC"}, nil)
	d.wallet.EXPECT().SwitchNetwork(ctx, "0x2105").Return(nil)
	d.wallet.EXPECT().SendTransfer(ctx, gomock.Any(), "1").Return("0xH", nil)
	d.wallet.EXPECT().AwaitConfirmation(ctx, "0xH").Return(nil)
	d.ledger.EXPECT().Append(ctx, gomock.Any()).Return(fmt.Errorf("store down"))

	receipt, err := d.svc.PayWithCrypto(ctx, ports.PaymentAttempt{Amount: "1"})
	require.NoError(t, err, "a confirmed transfer is a successful payment regardless of bookkeeping")
	assert.Equal(t, "0xH", receipt.ID)
}

// ==================== PayWithCard Tests ====================

func TestCheckoutService_PayWithCard_Success(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	var appended domain.TransactionRecord
	d.ledger.EXPECT().Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.TransactionRecord) error {
			appended = rec
			return nil
		})

	receipt, err := d.svc.PayWithCard(ctx, ports.PaymentAttempt{Amount: "49.99", Item: "Widget"})
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.True(t, strings.HasPrefix(receipt.ID, "CARD-"))
	assert.Len(t, receipt.ID, len("CARD-")+9)
	for _, r := range receipt.ID[len("CARD-"):] {
		assert.Contains(t, cardIDCharset, string(r))
	}

	assert.Equal(t, domain.MethodCard, receipt.Method)
	assert.Equal(t, domain.DefaultCustomerAddress, appended.CustomerAddress)
	assert.Equal(t, domain.StatusCompleted, appended.Status)
}

func TestCheckoutService_PayWithCard_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerStore(ctrl)
	cfg := testCheckoutConfig()
	cfg.CardDelay = time.Second
	svc := NewCheckoutService(nil, ledger, cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	receipt, err := svc.PayWithCard(ctx, ports.PaymentAttempt{Amount: "1"})
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckoutService_PayWithCard_UniqueIDs(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(2)

	r1, err := d.svc.PayWithCard(ctx, ports.PaymentAttempt{Amount: "1"})
	require.NoError(t, err)
	r2, err := d.svc.PayWithCard(ctx, ports.PaymentAttempt{Amount: "1"})
	require.NoError(t, err)

	assert.NotEqual(t, r1.ID, r2.ID)
}
