package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dkotenko/gotransfer/internal/usecase"
)

// TransferRequest represents a request to move funds between two accounts.
// Amount is a pointer so an absent field is distinguishable from an
// explicit zero. Currency is optional and defaults to the payer account's
// currency.
type TransferRequest struct {
	Amount         *decimal.Decimal `json:"amount"`
	Currency       string           `json:"currency,omitempty"`
	PayerAccountID string           `json:"payer_account_id"`
	PayeeAccountID string           `json:"payee_account_id"`
}

// ToUseCaseInput converts to use case input. The caller must have checked
// that Amount is present.
func (r *TransferRequest) ToUseCaseInput() usecase.PerformTransferInput {
	var amount decimal.Decimal
	if r.Amount != nil {
		amount = *r.Amount
	}

	return usecase.PerformTransferInput{
		Amount:         amount,
		Currency:       r.Currency,
		PayerAccountID: r.PayerAccountID,
		PayeeAccountID: r.PayeeAccountID,
	}
}
