package ports

import (
	"context"
	"errors"
	"fmt"
)

// Vendor error codes surfaced by browser wallet providers.
const (
	RPCCodeUserRejected   = 4001
	RPCCodeUnknownNetwork = 4902
)

// RPCError is a vendor-style wallet error with a numeric code.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("wallet rpc error %d: %s", e.Code, e.Message)
}

// RPCCode extracts the vendor code from err, or 0 if err is not an RPCError.
func RPCCode(err error) int {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code
	}
	return 0
}

// NetworkParams describes a network definition for AddNetwork requests.
type NetworkParams struct {
	ChainID          string
	ChainName        string
	CurrencyName     string
	CurrencySymbol   string
	CurrencyDecimals int
	RPCURL           string
	ExplorerURL      string
}

// WalletCapability is the externally provided wallet interface used to
// request accounts, switch networks and send transfers. It is injected, never
// reimplemented here; a nil capability means no wallet is available.
type WalletCapability interface {
	// RequestAccounts prompts for account access and returns the connected
	// accounts. Declining the prompt yields an RPCError with code 4001.
	RequestAccounts(ctx context.Context) ([]string, error)
	// SwitchNetwork asks the wallet to move to the given chain. An unknown
	// chain yields an RPCError with code 4902.
	SwitchNetwork(ctx context.Context, chainID string) error
	// AddNetwork registers a network definition with the wallet.
	AddNetwork(ctx context.Context, params NetworkParams) error
	// SendTransfer submits a native-currency transfer and returns its
	// identifier. User cancellation yields an RPCError with code 4001.
	SendTransfer(ctx context.Context, to string, amount string) (string, error)
	// AwaitConfirmation blocks until the transfer has one confirmation.
	// Duration is indeterminate; cancellation comes only from ctx or the
	// capability itself.
	AwaitConfirmation(ctx context.Context, transferID string) error
}
