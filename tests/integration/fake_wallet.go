package integration

import (
	"context"
	"fmt"
	"sync"

	"vendorguard/internal/core/ports"
)

// transfer records one SendTransfer call made against the fake wallet.
type transfer struct {
	To     string
	Amount string
}

// fakeWallet is a scripted ports.WalletCapability. By default every call
// succeeds; individual failure modes can be armed per test.
type fakeWallet struct {
	mu            sync.Mutex
	transfers     []transfer
	counter       int
	networkKnown  bool
	rejectConnect bool
	rejectSend    bool
}

func newFakeWallet() *fakeWallet {
	return &fakeWallet{networkKnown: true}
}

func (w *fakeWallet) RequestAccounts(_ context.Context) ([]string, error) {
	if w.rejectConnect {
		return nil, &ports.RPCError{Code: ports.RPCCodeUserRejected, Message: "User rejected the request"}
	}
	return []string{"0xFEEDFACE00000000000000000000000000000001"}, nil
}

func (w *fakeWallet) SwitchNetwork(_ context.Context, chainID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.networkKnown {
		return &ports.RPCError{Code: ports.RPCCodeUnknownNetwork, Message: "Unrecognized chain ID"}
	}
	return nil
}

func (w *fakeWallet) AddNetwork(_ context.Context, _ ports.NetworkParams) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.networkKnown = true
	return nil
}

func (w *fakeWallet) SendTransfer(_ context.Context, to, amount string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rejectSend {
		return "", &ports.RPCError{Code: ports.RPCCodeUserRejected, Message: "User denied transaction"}
	}
	w.counter++
	w.transfers = append(w.transfers, transfer{To: to, Amount: amount})
	return fmt.Sprintf("0xTX%04d", w.counter), nil
}

func (w *fakeWallet) AwaitConfirmation(_ context.Context, _ string) error {
	return nil
}

func (w *fakeWallet) sentTransfers() []transfer {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]transfer, len(w.transfers))
	copy(out, w.transfers)
	return out
}
