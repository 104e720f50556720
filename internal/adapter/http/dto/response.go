package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/internal/usecase"
)

// MoneyResponse represents a currency-tagged amount in API responses.
type MoneyResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// MoneyFromDomain converts domain money to a response; an unrecorded value
// (for example balances of a busy outcome) becomes nil and is omitted.
func MoneyFromDomain(m domain.Money) *MoneyResponse {
	if !m.IsValid() {
		return nil
	}

	return &MoneyResponse{Amount: m.Amount, Currency: m.Currency}
}

// TransferOutcomeResponse represents the result of one transfer attempt.
// Whatever the embedded status, a response of this shape means the attempt
// completed; only the status communicates the business result.
type TransferOutcomeResponse struct {
	TransferID          string         `json:"transfer_id"`
	Status              string         `json:"status"`
	PayerStatus         string         `json:"payer_status"`
	PayeeStatus         string         `json:"payee_status"`
	InitialPayerBalance *MoneyResponse `json:"initial_payer_balance,omitempty"`
	InitialPayeeBalance *MoneyResponse `json:"initial_payee_balance,omitempty"`
	PayerBalance        *MoneyResponse `json:"payer_balance,omitempty"`
	PayeeBalance        *MoneyResponse `json:"payee_balance,omitempty"`
	TransferSum         *MoneyResponse `json:"transfer_sum,omitempty"`
}

// OutcomeFromResult converts a use case transfer result to a response.
func OutcomeFromResult(r *usecase.TransferResult) *TransferOutcomeResponse {
	o := r.Outcome

	return &TransferOutcomeResponse{
		TransferID:          r.TransferID,
		Status:              string(o.Status),
		PayerStatus:         string(o.PayerStatus),
		PayeeStatus:         string(o.PayeeStatus),
		InitialPayerBalance: MoneyFromDomain(o.InitialPayerBalance),
		InitialPayeeBalance: MoneyFromDomain(o.InitialPayeeBalance),
		PayerBalance:        MoneyFromDomain(o.PayerBalance),
		PayeeBalance:        MoneyFromDomain(o.PayeeBalance),
		TransferSum:         MoneyFromDomain(o.TransferSum),
	}
}

// EntryResponse represents one account posting.
type EntryResponse struct {
	Amount   *MoneyResponse `json:"amount"`
	PostedAt time.Time      `json:"posted_at"`
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []domain.Entry) []*EntryResponse {
	out := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = &EntryResponse{Amount: MoneyFromDomain(e.Amount), PostedAt: e.PostedAt}
	}

	return out
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID       string         `json:"id"`
	Currency string         `json:"currency"`
	Balance  *MoneyResponse `json:"balance"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:       a.ID(),
		Currency: a.Currency(),
		Balance:  MoneyFromDomain(a.Balance()),
	}
}

// HolderResponse represents a holder and their accounts.
type HolderResponse struct {
	ID       string             `json:"id"`
	FullName string             `json:"full_name"`
	Accounts []*AccountResponse `json:"accounts"`
}

// HolderFromDomain converts a domain holder to a response.
func HolderFromDomain(h *domain.Holder) *HolderResponse {
	accounts := h.Accounts()

	out := &HolderResponse{
		ID:       h.ID(),
		FullName: h.FullName(),
		Accounts: make([]*AccountResponse, 0, len(accounts)),
	}
	for _, a := range accounts {
		out.Accounts = append(out.Accounts, AccountFromDomain(a))
	}

	return out
}

// HoldersFromDomain converts domain holders to responses.
func HoldersFromDomain(holders []*domain.Holder) []*HolderResponse {
	out := make([]*HolderResponse, len(holders))
	for i, h := range holders {
		out[i] = HolderFromDomain(h)
	}

	return out
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
