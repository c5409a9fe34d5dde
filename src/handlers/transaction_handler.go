package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/username/barcontrol/backend/src/models"
	"github.com/username/barcontrol/backend/src/services"
	"github.com/username/barcontrol/backend/src/utils"
)

type TransactionHandler struct {
	reportService services.ReportService
}

func NewTransactionHandler(reportService services.ReportService) *TransactionHandler {
	return &TransactionHandler{reportService: reportService}
}

// HandleListTransactions serves GET /api/transactions?type=&from=&to=, the
// backing data of the drill-down tables. The window semantics match the
// dashboard exactly: same normalization, same inclusive boundaries.
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	txType := models.TransactionType(r.URL.Query().Get("type"))
	switch txType {
	case "", models.TransactionSale, models.TransactionExpense, models.TransactionPayment:
	default:
		utils.SendJSONError(w, fmt.Sprintf("unknown transaction type %q", txType), http.StatusBadRequest)
		return
	}

	from := utils.ParseQueryDate(r.URL.Query().Get("from"))
	to := utils.ParseQueryDate(r.URL.Query().Get("to"))

	transactions, err := h.reportService.ListTransactions(txType, from, to)
	if err != nil {
		if errors.Is(err, services.ErrMissingDateRange) {
			utils.SendJSONError(w, "query parameter 'from' is required (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		utils.SendJSONError(w, fmt.Sprintf("Error listing transactions: %v", err), http.StatusInternalServerError)
		return
	}

	utils.SendJSON(w, transactions, http.StatusOK)
}
