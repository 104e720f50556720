package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	adaptershttp "github.com/dkotenko/gotransfer/internal/adapter/http"
	"github.com/dkotenko/gotransfer/internal/adapter/http/dto"
	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/tests/testutil"
)

func postTransfer(t *testing.T, router http.Handler, req dto.TransferRequest) (*httptest.ResponseRecorder, *dto.TransferOutcomeResponse) {
	t.Helper()

	body, _ := json.Marshal(req)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		return w, nil
	}

	var resp dto.TransferOutcomeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return w, &resp
}

func amountOf(i int64) *decimal.Decimal {
	d := decimal.NewFromInt(i)
	return &d
}

func TestTransferFlow(t *testing.T) {
	payer := testutil.Account(t, "acc-payer", 300)
	payee := testutil.Account(t, "acc-payee", 300)
	holder := testutil.Holder(t, "h-1", "Walter White", payer, payee)

	cfg := testutil.Router(t, holder)
	router := adaptershttp.NewRouter(*cfg)

	t.Run("successful transfer", func(t *testing.T) {
		w, resp := postTransfer(t, router, dto.TransferRequest{
			Amount:         amountOf(100),
			PayerAccountID: "acc-payer",
			PayeeAccountID: "acc-payee",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if resp.Status != string(domain.TransferStatusOK) {
			t.Fatalf("expected OK, got %s", resp.Status)
		}
		if resp.PayerBalance == nil || !resp.PayerBalance.Amount.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected payer balance 200, got %+v", resp.PayerBalance)
		}
		if resp.PayeeBalance == nil || !resp.PayeeBalance.Amount.Equal(decimal.NewFromInt(400)) {
			t.Fatalf("expected payee balance 400, got %+v", resp.PayeeBalance)
		}
		if resp.TransferID == "" {
			t.Fatal("expected a transfer id")
		}
	})

	t.Run("insufficient funds is a completed attempt", func(t *testing.T) {
		w, resp := postTransfer(t, router, dto.TransferRequest{
			Amount:         amountOf(10000),
			PayerAccountID: "acc-payer",
			PayeeAccountID: "acc-payee",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if resp.Status != string(domain.TransferStatusBad) {
			t.Fatalf("expected BAD, got %s", resp.Status)
		}
		if resp.PayerStatus != string(domain.EntryStatusInsufficientSum) {
			t.Fatalf("expected INSUFFICIENT_SUM, got %s", resp.PayerStatus)
		}
		if !resp.PayerBalance.Amount.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected payer balance unchanged at 200, got %s", resp.PayerBalance.Amount)
		}
	})

	t.Run("unknown payer is 404", func(t *testing.T) {
		w, _ := postTransfer(t, router, dto.TransferRequest{
			Amount:         amountOf(100),
			PayerAccountID: "nope",
			PayeeAccountID: "acc-payee",
		})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing amount is 400 and moves nothing", func(t *testing.T) {
		balanceBefore := payer.Balance().Amount
		payerEntries := len(payer.Entries())
		payeeEntries := len(payee.Entries())

		body := []byte(`{"payer_account_id":"acc-payer","payee_account_id":"acc-payee"}`)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
		if len(payer.Entries()) != payerEntries || len(payee.Entries()) != payeeEntries {
			t.Fatal("expected no entries appended for a rejected request")
		}
		if !payer.Balance().Amount.Equal(balanceBefore) {
			t.Fatalf("expected payer balance unchanged at %s, got %s", balanceBefore, payer.Balance().Amount)
		}
	})

	t.Run("same payer and payee is 400", func(t *testing.T) {
		w, _ := postTransfer(t, router, dto.TransferRequest{
			Amount:         amountOf(100),
			PayerAccountID: "acc-payer",
			PayeeAccountID: "acc-payer",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTransferFlow_CurrencyMismatch(t *testing.T) {
	payer := testutil.Account(t, "acc-usd", 300)
	payee := testutil.AccountWithCurrency(t, "acc-gbp", "GBP", 300)
	holder := testutil.Holder(t, "h-1", "Bruce Willis", payer, payee)

	cfg := testutil.Router(t, holder)
	router := adaptershttp.NewRouter(*cfg)

	w, _ := postTransfer(t, router, dto.TransferRequest{
		Amount:         amountOf(100),
		PayerAccountID: "acc-usd",
		PayeeAccountID: "acc-gbp",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a cross-currency transfer, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDirectoryAndBalanceFlow(t *testing.T) {
	a1 := testutil.Account(t, "acc-1", 300)
	a2 := testutil.Account(t, "acc-2", 200)
	gbp := testutil.AccountWithCurrency(t, "acc-gbp", "GBP", 500)

	h1 := testutil.Holder(t, "h-1", "Walter White", a1, a2)
	h2 := testutil.Holder(t, "h-2", "Bruce Willis", gbp)

	cfg := testutil.Router(t, h1, h2)
	router := adaptershttp.NewRouter(*cfg)

	t.Run("list holders", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/holders", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var holders []*dto.HolderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &holders); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(holders) != 2 {
			t.Fatalf("expected 2 holders, got %d", len(holders))
		}
		if holders[0].ID != "h-1" || holders[1].ID != "h-2" {
			t.Fatalf("expected holders ordered by id, got %s, %s", holders[0].ID, holders[1].ID)
		}
	})

	t.Run("get account", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var account dto.AccountResponse
		if err := json.Unmarshal(w.Body.Bytes(), &account); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !account.Balance.Amount.Equal(decimal.NewFromInt(300)) {
			t.Fatalf("expected balance 300, got %s", account.Balance.Amount)
		}
	})

	t.Run("usd total excludes gbp", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/balance?currency=USD", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var total dto.MoneyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &total); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !total.Amount.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected 500 USD, got %s", total.Amount)
		}
	})

	t.Run("total tracks a transfer", func(t *testing.T) {
		w, resp := postTransfer(t, router, dto.TransferRequest{
			Amount:         amountOf(50),
			PayerAccountID: "acc-1",
			PayeeAccountID: "acc-2",
		})
		if w.Code != http.StatusOK || resp.Status != string(domain.TransferStatusOK) {
			t.Fatalf("transfer failed: %d %s", w.Code, w.Body.String())
		}

		r := httptest.NewRequest(http.MethodGet, "/api/v1/balance?currency=USD", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, r)

		var total dto.MoneyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &total); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !total.Amount.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected total conserved at 500, got %s", total.Amount)
		}
	})

	t.Run("unknown currency is 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/balance?currency=WAT", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
