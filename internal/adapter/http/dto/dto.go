package dto

// CheckoutRequest is the request body for both payment paths. Amount is an
// opaque string; the checkout flow records it exactly as submitted.
type CheckoutRequest struct {
	Amount string `json:"amount" binding:"required,max=64"`
	Item   string `json:"item" binding:"required,max=200"`
}

// ReceiptResponse is the response body for a successful payment.
type ReceiptResponse struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Item   string `json:"item"`
	Method string `json:"method"`
}

// TransactionResponse mirrors one ledger record.
type TransactionResponse struct {
	ID              string `json:"id"`
	Amount          string `json:"amount"`
	Item            string `json:"item"`
	Date            string `json:"date"`
	CustomerAddress string `json:"customerAddress"`
	Method          string `json:"method"`
	Status          string `json:"status"`
}

// SummaryResponse is the dashboard headline view.
type SummaryResponse struct {
	Withdrawable string `json:"withdrawable"`
	TotalOrders  int    `json:"total_orders"`
}

// RevenuePointResponse is one bucket of the revenue series.
type RevenuePointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// WithdrawResponse reports the settled amount of a withdrawal.
type WithdrawResponse struct {
	Amount string `json:"amount"`
}

// SettingsRequest is the request body for updating merchant settings.
type SettingsRequest struct {
	CompanyName   string `json:"companyName" binding:"required,max=100"`
	LockDuration  string `json:"lockDuration" binding:"required,max=10"`
	WalletAddress string `json:"walletAddress,omitempty" binding:"max=100"`
	ProfileImage  string `json:"profileImage,omitempty"`
}

// SettingsResponse is the response body for merchant settings.
type SettingsResponse struct {
	CompanyName   string `json:"companyName"`
	LockDuration  string `json:"lockDuration"`
	WalletAddress string `json:"walletAddress,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
}

// PaylinkRequest is the request body for generating a payment link.
type PaylinkRequest struct {
	Amount       string `json:"amount" binding:"required,max=64"`
	Item         string `json:"item" binding:"required,max=200"`
	LockDuration string `json:"lockDuration" binding:"max=10"`
}

// PaylinkResponse carries the generated link and its QR code.
type PaylinkResponse struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	QRImage string `json:"qr_image"`
}

// PayPageResponse holds the checkout parameters resolved for a payment link.
type PayPageResponse struct {
	Amount       string `json:"amount"`
	Item         string `json:"item"`
	LockDuration string `json:"lockDuration"`
}
