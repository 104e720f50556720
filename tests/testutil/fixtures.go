// Package testutil provides fixtures for integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/dkotenko/gotransfer/internal/adapter/http"
	"github.com/dkotenko/gotransfer/internal/adapter/http/handler"
	"github.com/dkotenko/gotransfer/internal/adapter/repository/memory"
	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/internal/usecase"
)

// Account builds a USD account with the given opening balance.
func Account(t *testing.T, id string, balance int64) *domain.Account {
	t.Helper()

	return AccountWithCurrency(t, id, "USD", balance)
}

// AccountWithCurrency builds an account with the given currency and
// opening balance.
func AccountWithCurrency(t *testing.T, id, currency string, balance int64) *domain.Account {
	t.Helper()

	initial, err := domain.NewMoney(decimal.NewFromInt(balance), currency)
	if err != nil {
		t.Fatalf("failed to build money: %v", err)
	}

	account, err := domain.NewAccount(id, currency, &initial, nil)
	if err != nil {
		t.Fatalf("failed to build account: %v", err)
	}

	return account
}

// Holder builds a holder owning the given accounts.
func Holder(t *testing.T, id, fullName string, accounts ...*domain.Account) *domain.Holder {
	t.Helper()

	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID()] = a
	}

	holder, err := domain.NewHolder(id, fullName, byID)
	if err != nil {
		t.Fatalf("failed to build holder: %v", err)
	}

	return holder
}

// Transfer builds a transfer of amount units between two accounts in the
// payer's currency.
func Transfer(t *testing.T, payer, payee *domain.Account, amount int64) *domain.Transfer {
	t.Helper()

	sum, err := domain.NewMoney(decimal.NewFromInt(amount), payer.Currency())
	if err != nil {
		t.Fatalf("failed to build money: %v", err)
	}

	tx, err := domain.NewTransfer(sum, payer, payee, time.Now())
	if err != nil {
		t.Fatalf("failed to build transfer: %v", err)
	}

	return tx
}

// Router wires the full HTTP stack over the given holders, without redis.
func Router(t *testing.T, holders ...*domain.Holder) *adaptershttp.RouterConfig {
	t.Helper()

	repo := memory.NewHolderRepository(holders)
	idGen := memory.NewULIDGenerator()

	transferUC := usecase.NewTransferUseCase(repo, idGen, zerolog.Nop(), usecase.DefaultRetryPolicy())
	holderUC := usecase.NewHolderUseCase(repo)

	return &adaptershttp.RouterConfig{
		TransferHandler: handler.NewTransferHandler(transferUC),
		HolderHandler:   handler.NewHolderHandler(holderUC),
		HealthHandler:   handler.NewHealthHandler(nil),
		Logger:          zerolog.Nop(),
	}
}
