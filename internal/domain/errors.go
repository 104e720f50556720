package domain

import "errors"

var (
	// Money errors
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrUnknownCurrency  = errors.New("unknown currency code")

	// Account errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrMissingAccountID = errors.New("account id is required")
	ErrMissingCurrency  = errors.New("currency is required")
	ErrMissingEntry     = errors.New("entry is required")
	ErrMissingTimestamp = errors.New("timestamp is required")
	ErrMissingAmount    = errors.New("amount is required")

	// Transfer errors
	ErrMissingPayer      = errors.New("payer account is required")
	ErrMissingPayee      = errors.New("payee account is required")
	ErrSamePayerAndPayee = errors.New("payer and payee cannot be the same account")

	// Holder errors
	ErrHolderNotFound    = errors.New("holder not found")
	ErrMissingHolderID   = errors.New("holder id is required")
	ErrMissingHolderName = errors.New("holder full name is required")
	ErrHolderNoAccounts  = errors.New("holder must have at least one account")
)
