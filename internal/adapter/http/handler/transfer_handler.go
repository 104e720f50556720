package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkotenko/gotransfer/internal/adapter/http/dto"
	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Perform(ctx context.Context, input usecase.PerformTransferInput) (*usecase.TransferResult, error)
	TotalBalance(ctx context.Context, currency string) (domain.Money, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Create performs a transfer. A completed attempt is always 200 whatever
// the embedded status; only construction-time rejections become client
// errors.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.PayerAccountID == "" || req.PayeeAccountID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body", "payer_account_id and payee_account_id are required")
		return
	}

	// An absent amount is rejected; an explicit zero is a valid transfer.
	if req.Amount == nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "amount is required")
		return
	}

	result, err := h.transferUC.Perform(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to perform transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OutcomeFromResult(result))
}

// TotalBalance returns the summed balance of every account in one
// currency. The sum is a weakly consistent snapshot with respect to
// in-flight transfers.
func (h *TransferHandler) TotalBalance(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		writeError(w, http.StatusBadRequest, "missing currency", "currency query parameter is required")
		return
	}

	total, err := h.transferUC.TotalBalance(r.Context(), currency)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to aggregate balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.MoneyFromDomain(total))
}
