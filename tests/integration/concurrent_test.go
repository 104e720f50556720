package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dkotenko/gotransfer/internal/adapter/repository/memory"
	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/internal/usecase"
	"github.com/dkotenko/gotransfer/tests/testutil"
)

func TestConcurrentTransfers(t *testing.T) {
	ctx := context.Background()

	t.Run("ring of transfers conserves the total", func(t *testing.T) {
		const (
			numAccounts        = 8
			transfersPerWorker = 25
			openingBalance     = 1000
		)

		accounts := make([]*domain.Account, numAccounts)
		for i := range accounts {
			accounts[i] = testutil.Account(t, accountID(i), openingBalance)
		}
		holder := testutil.Holder(t, "h-ring", "Walter White", accounts...)

		repo := memory.NewHolderRepository([]*domain.Holder{holder})
		transferUC := usecase.NewTransferUseCase(repo, memory.NewULIDGenerator(), zerolog.Nop(), usecase.DefaultRetryPolicy())

		var (
			wg        sync.WaitGroup
			okCount   atomic.Int32
			busyCount atomic.Int32
		)

		// Every worker pushes money to the next account in the ring.
		wg.Add(numAccounts)
		for i := range numAccounts {
			go func() {
				defer wg.Done()

				payer := accountID(i)
				payee := accountID((i + 1) % numAccounts)

				for range transfersPerWorker {
					result, err := transferUC.Perform(ctx, usecase.PerformTransferInput{
						Amount:         decimal.NewFromInt(10),
						PayerAccountID: payer,
						PayeeAccountID: payee,
					})
					if err != nil {
						t.Errorf("unexpected error: %v", err)
						return
					}

					switch {
					case result.Outcome.Status == domain.TransferStatusOK:
						okCount.Add(1)
					case result.Outcome.Status.Busy():
						busyCount.Add(1)
					default:
						t.Errorf("unexpected status %s", result.Outcome.Status)
						return
					}
				}
			}()
		}

		wg.Wait()

		total, err := transferUC.TotalBalance(ctx, "USD")
		if err != nil {
			t.Fatalf("failed to aggregate: %v", err)
		}

		want := decimal.NewFromInt(numAccounts * openingBalance)
		if !total.Amount.Equal(want) {
			t.Fatalf("expected total %s, got %s (ok=%d busy=%d)", want, total.Amount, okCount.Load(), busyCount.Load())
		}

		if okCount.Load()+busyCount.Load() != numAccounts*transfersPerWorker {
			t.Fatalf("lost attempts: ok=%d busy=%d", okCount.Load(), busyCount.Load())
		}
	})

	t.Run("concurrent drains never overdraw the payer", func(t *testing.T) {
		const numWorkers = 20

		payer := testutil.Account(t, "acc-src", 100)
		payee := testutil.Account(t, "acc-dst", 0)
		holder := testutil.Holder(t, "h-drain", "Walter White", payer, payee)

		repo := memory.NewHolderRepository([]*domain.Holder{holder})
		transferUC := usecase.NewTransferUseCase(repo, memory.NewULIDGenerator(), zerolog.Nop(), usecase.DefaultRetryPolicy())

		var (
			wg       sync.WaitGroup
			okCount  atomic.Int32
			badCount atomic.Int32
		)

		// 20 workers moving 10 each against a balance of 100: at most 10
		// can land.
		wg.Add(numWorkers)
		for range numWorkers {
			go func() {
				defer wg.Done()

				result, err := transferUC.Perform(ctx, usecase.PerformTransferInput{
					Amount:         decimal.NewFromInt(10),
					PayerAccountID: "acc-src",
					PayeeAccountID: "acc-dst",
				})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}

				switch result.Outcome.Status {
				case domain.TransferStatusOK:
					okCount.Add(1)
				case domain.TransferStatusBad:
					badCount.Add(1)
				}
			}()
		}

		wg.Wait()

		if payer.Balance().IsNegative() {
			t.Fatalf("payer overdrawn: %s", payer.Balance())
		}
		if okCount.Load() > 10 {
			t.Fatalf("expected at most 10 successful transfers, got %d", okCount.Load())
		}

		moved := decimal.NewFromInt(int64(okCount.Load()) * 10)
		if !payee.Balance().Amount.Equal(moved) {
			t.Fatalf("expected payee balance %s, got %s", moved, payee.Balance().Amount)
		}
	})

	t.Run("bidirectional contention resolves", func(t *testing.T) {
		const rounds = 50

		a := testutil.Account(t, "acc-a", 1000)
		b := testutil.Account(t, "acc-b", 1000)
		holder := testutil.Holder(t, "h-pair", "Walter White", a, b)

		repo := memory.NewHolderRepository([]*domain.Holder{holder})
		transferUC := usecase.NewTransferUseCase(repo, memory.NewULIDGenerator(), zerolog.Nop(), usecase.DefaultRetryPolicy())

		var wg sync.WaitGroup

		run := func(payer, payee string) {
			defer wg.Done()

			for range rounds {
				result, err := transferUC.Perform(ctx, usecase.PerformTransferInput{
					Amount:         decimal.NewFromInt(1),
					PayerAccountID: payer,
					PayeeAccountID: payee,
				})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if result.Outcome.Status != domain.TransferStatusOK && !result.Outcome.Status.Busy() {
					t.Errorf("unexpected status %s", result.Outcome.Status)
					return
				}
			}
		}

		wg.Add(2)
		go run("acc-a", "acc-b")
		go run("acc-b", "acc-a")
		wg.Wait()

		total := a.Balance().Amount.Add(b.Balance().Amount)
		if !total.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("expected combined balance 2000, got %s", total)
		}
	})
}

func accountID(i int) string {
	return "acc-" + string(rune('a'+i))
}
