package handler

import (
	"vendorguard/internal/adapter/http/dto"
	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"
	"vendorguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles balance views, the transaction list, withdrawals
// and refunds.
type DashboardHandler struct {
	balanceSvc    ports.BalanceService
	withdrawalSvc ports.WithdrawalService
	exportSvc     ports.ExportService
	ledger        ports.LedgerStore
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(balanceSvc ports.BalanceService, withdrawalSvc ports.WithdrawalService, exportSvc ports.ExportService, ledger ports.LedgerStore) *DashboardHandler {
	return &DashboardHandler{
		balanceSvc:    balanceSvc,
		withdrawalSvc: withdrawalSvc,
		exportSvc:     exportSvc,
		ledger:        ledger,
	}
}

// GetSummary handles GET /api/v1/dashboard/summary.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.balanceSvc.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SummaryResponse{
		Withdrawable: summary.Withdrawable,
		TotalOrders:  summary.TotalOrders,
	})
}

// GetRevenue handles GET /api/v1/dashboard/revenue.
func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	series, err := h.balanceSvc.RevenueSeries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	points := make([]dto.RevenuePointResponse, 0, len(series))
	for _, p := range series {
		points = append(points, dto.RevenuePointResponse{Date: p.Date, Amount: p.Amount})
	}
	response.OK(c, points)
}

// ListTransactions handles GET /api/v1/transactions.
func (h *DashboardHandler) ListTransactions(c *gin.Context) {
	records, err := h.ledger.ReadAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(records))
	for i := range records {
		items = append(items, toTransactionResponse(&records[i]))
	}
	response.OK(c, items)
}

// ExportTransactions handles GET /api/v1/transactions/export.
func (h *DashboardHandler) ExportTransactions(c *gin.Context) {
	data, err := h.exportSvc.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Attachment(c, "transaction_history.csv", "text/csv", data)
}

// Refund handles POST /api/v1/transactions/:id/refund.
func (h *DashboardHandler) Refund(c *gin.Context) {
	record, err := h.withdrawalSvc.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(record))
}

// Withdraw handles POST /api/v1/payouts/withdraw.
func (h *DashboardHandler) Withdraw(c *gin.Context) {
	amount, err := h.withdrawalSvc.Withdraw(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawResponse{Amount: amount})
}

func toTransactionResponse(rec *domain.TransactionRecord) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              rec.ID,
		Amount:          rec.Amount,
		Item:            rec.Item,
		Date:            rec.Date,
		CustomerAddress: rec.CustomerAddress,
		Method:          string(rec.Method),
		Status:          string(rec.Status),
	}
}
