package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/internal/usecase"
	"github.com/dkotenko/gotransfer/internal/usecase/mocks"
)

func TestHolderUseCase(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockHolderRepository()
	repo.Add(newHolder(t, "h-1", "Walter White", newAccount(t, "acc-1", "USD", 300)))
	repo.Add(newHolder(t, "h-2", "Jesse Pinkman", newAccount(t, "acc-2", "USD", 100)))

	uc := usecase.NewHolderUseCase(repo)

	t.Run("list holders", func(t *testing.T) {
		holders, err := uc.ListHolders(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(holders) != 2 {
			t.Errorf("expected 2 holders, got %d", len(holders))
		}
	})

	t.Run("get holder", func(t *testing.T) {
		holder, err := uc.GetHolder(ctx, "h-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if holder.FullName() != "Walter White" {
			t.Errorf("unexpected holder: %s", holder.FullName())
		}

		if _, err := uc.GetHolder(ctx, "nope"); !errors.Is(err, domain.ErrHolderNotFound) {
			t.Errorf("expected ErrHolderNotFound, got %v", err)
		}
	})

	t.Run("resolve account across holders", func(t *testing.T) {
		account, err := uc.GetAccount(ctx, "acc-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.ID() != "acc-2" {
			t.Errorf("unexpected account: %s", account.ID())
		}

		if _, err := uc.GetAccount(ctx, "nope"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
