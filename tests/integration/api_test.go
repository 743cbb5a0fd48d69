package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vendorguard/config"
	httpHandler "vendorguard/internal/adapter/http/handler"
	redisStorage "vendorguard/internal/adapter/storage/redis"
	"vendorguard/internal/service"
	"vendorguard/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on top of miniredis: real Redis
// snapshot store and change feed, real services, real HTTP layer. Only the
// wallet capability is scripted.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	wallet *fakeWallet
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	log := logger.New("error", false)

	snapshots := redisStorage.NewSnapshotStore(rdb)
	feed := redisStorage.NewChangeFeed(rdb, log)

	checkoutCfg := config.CheckoutConfig{
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

	wallet := newFakeWallet()
	ledger := service.NewLedgerService(snapshots, feed, log)
	settings := service.NewSettingsService(snapshots, feed, log)
	checkoutSvc := service.NewCheckoutService(wallet, ledger, checkoutCfg, log)
	balanceSvc := service.NewBalanceService(ledger, log)
	withdrawalSvc := service.NewWithdrawalService(ledger, wallet, checkoutCfg, log)
	exportSvc := service.NewExportService(ledger)
	paylinkSvc := service.NewPaylinkService(config.PaylinkConfig{BaseURL: "https://vendorguard.pro", QRSize: 64})

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:   checkoutSvc,
		BalanceSvc:    balanceSvc,
		WithdrawalSvc: withdrawalSvc,
		ExportSvc:     exportSvc,
		PaylinkSvc:    paylinkSvc,
		Ledger:        ledger,
		Settings:      settings,
		Logger:        log,
	})

	return &testApp{
		server: httptest.NewServer(router),
		redis:  mr,
		wallet: wallet,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) post(t *testing.T, path, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeEnvelope(t, resp.Body)
}

func (a *testApp) get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeEnvelope(t, resp.Body)
}

func decodeEnvelope(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&envelope))
	return envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %T", envelope["data"])
	return data
}

func TestCardCheckoutToWithdrawal(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Two card payments
	code, env := app.post(t, "/api/v1/checkout/card", `{"amount":"10.50","item":"Widget"}`)
	require.Equal(t, http.StatusCreated, code)
	firstID := dataObject(t, env)["id"].(string)
	assert.Contains(t, firstID, "CARD-")

	code, _ = app.post(t, "/api/v1/checkout/card", `{"amount":"2.00","item":"Gadget"}`)
	require.Equal(t, http.StatusCreated, code)

	// Ledger lists both, newest first
	code, env = app.get(t, "/api/v1/transactions")
	require.Equal(t, http.StatusOK, code)
	items := env["data"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Gadget", items[0].(map[string]any)["item"])
	assert.Equal(t, "Widget", items[1].(map[string]any)["item"])

	// Summary reflects both payments
	code, env = app.get(t, "/api/v1/dashboard/summary")
	require.Equal(t, http.StatusOK, code)
	summary := dataObject(t, env)
	assert.Equal(t, "12.5000", summary["withdrawable"])
	assert.Equal(t, float64(2), summary["total_orders"])

	// Withdraw settles everything
	code, env = app.post(t, "/api/v1/payouts/withdraw", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "12.5000", dataObject(t, env)["amount"])

	code, env = app.get(t, "/api/v1/dashboard/summary")
	require.Equal(t, http.StatusOK, code)
	summary = dataObject(t, env)
	assert.Equal(t, "0.0000", summary["withdrawable"])
	assert.Equal(t, float64(2), summary["total_orders"], "settled orders still count")

	// Second withdrawal finds nothing
	code, env = app.post(t, "/api/v1/payouts/withdraw", "")
	assert.Equal(t, http.StatusPaymentRequired, code)
	assert.Equal(t, "PAY_003", env["error_code"])
}

func TestCryptoCheckoutAndRefund(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	code, env := app.post(t, "/api/v1/checkout/crypto", `{"amount":"0.05","item":"Premium Plan"}`)
	require.Equal(t, http.StatusCreated, code)
	receipt := dataObject(t, env)
	txID := receipt["id"].(string)
	assert.Equal(t, "Crypto (Base)", receipt["method"])

	transfers := app.wallet.sentTransfers()
	require.Len(t, transfers, 1)
	assert.Equal(t, "0x1A2b3C4d5E6f7A8b9C0d1E2f3A4b5C6d7E8f9A0b", transfers[0].To)
	assert.Equal(t, "0.05", transfers[0].Amount)

	// Refund goes back to the customer address captured at checkout
	code, env = app.post(t, "/api/v1/transactions/"+txID+"/refund", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Refunded", dataObject(t, env)["status"])

	transfers = app.wallet.sentTransfers()
	require.Len(t, transfers, 2)
	assert.Equal(t, "0xFEEDFACE00000000000000000000000000000001", transfers[1].To)

	// Refunded funds are no longer withdrawable
	code, env = app.get(t, "/api/v1/dashboard/summary")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0.0000", dataObject(t, env)["withdrawable"])

	// A second refund of the same record is rejected
	code, env = app.post(t, "/api/v1/transactions/"+txID+"/refund", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "PAY_005", env["error_code"])
}

func TestCryptoCheckout_UnknownNetworkGetsAdded(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	app.wallet.networkKnown = false

	code, _ := app.post(t, "/api/v1/checkout/crypto", `{"amount":"1.00","item":"Doc"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, app.wallet.networkKnown, "wallet should have learned the network")
}

func TestCryptoCheckout_UserRejection(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	app.wallet.rejectConnect = true

	code, env := app.post(t, "/api/v1/checkout/crypto", `{"amount":"1.00","item":"Doc"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "WALLET_002", env["error_code"])

	// Nothing recorded
	_, listEnv := app.get(t, "/api/v1/transactions")
	assert.Empty(t, listEnv["data"])
}

func TestRevenueSeriesAcrossDays(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, _ = app.post(t, "/api/v1/checkout/card", `{"amount":"3.00","item":"A"}`)
	_, _ = app.post(t, "/api/v1/checkout/card", `{"amount":"4.00","item":"B"}`)

	code, env := app.get(t, "/api/v1/dashboard/revenue")
	require.Equal(t, http.StatusOK, code)
	points := env["data"].([]any)
	require.Len(t, points, 1, "same-day payments share one bucket")
	assert.Equal(t, 7.0, points[0].(map[string]any)["amount"])
}

func TestSettingsRoundTrip(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Defaults before anything is saved
	code, env := app.get(t, "/api/v1/settings")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "VendorGuard Pro", dataObject(t, env)["companyName"])

	req, err := http.NewRequest(http.MethodPut, app.server.URL+"/api/v1/settings",
		bytes.NewBufferString(`{"companyName":"Acme Exports","lockDuration":"48"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	code, env = app.get(t, "/api/v1/settings")
	require.Equal(t, http.StatusOK, code)
	settings := dataObject(t, env)
	assert.Equal(t, "Acme Exports", settings["companyName"])
	assert.Equal(t, "48", settings["lockDuration"])
}

func TestCSVExport(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, _ = app.post(t, "/api/v1/checkout/card", `{"amount":"9.99","item":"Widget, Deluxe"}`)

	resp, err := http.Get(app.server.URL + "/api/v1/transactions/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Date,Item,Amount,Status")
	assert.Contains(t, string(body), "Widget, Deluxe,9.99,Completed")
}

func TestPaylinkLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	code, env := app.post(t, "/api/v1/paylinks", `{"amount":"0.25","item":"Secure Doc","lockDuration":"72"}`)
	require.Equal(t, http.StatusCreated, code)
	link := dataObject(t, env)
	assert.NotEmpty(t, link["qr_image"])

	id := link["id"].(string)
	code, env = app.get(t, fmt.Sprintf("/pay/%s?amount=0.25&item=Secure+Doc&lock=72", id))
	require.Equal(t, http.StatusOK, code)
	page := dataObject(t, env)
	assert.Equal(t, "0.25", page["amount"])
	assert.Equal(t, "Secure Doc", page["item"])
	assert.Equal(t, "72", page["lockDuration"])

	// Bare link resolves to the literal defaults
	code, env = app.get(t, "/pay/"+id)
	require.Equal(t, http.StatusOK, code)
	page = dataObject(t, env)
	assert.Equal(t, "0.00", page["amount"])
	assert.Equal(t, "Secure Asset", page["item"])
	assert.Equal(t, "24", page["lockDuration"])
}

func TestCorruptLedgerSnapshotReadsAsEmpty(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	require.NoError(t, app.redis.Set("snapshot:merchantHistory", "{{{corrupt"))

	code, env := app.get(t, "/api/v1/dashboard/summary")
	require.Equal(t, http.StatusOK, code)
	summary := dataObject(t, env)
	assert.Equal(t, "0.0000", summary["withdrawable"])
	assert.Equal(t, float64(0), summary["total_orders"])

	// A fresh payment starts a new ledger over the corrupt snapshot
	code, _ = app.post(t, "/api/v1/checkout/card", `{"amount":"1.00","item":"A"}`)
	require.Equal(t, http.StatusCreated, code)

	_, env = app.get(t, "/api/v1/transactions")
	assert.Len(t, env["data"], 1)
}
