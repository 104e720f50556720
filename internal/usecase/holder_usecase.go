package usecase

import (
	"context"

	"github.com/dkotenko/gotransfer/internal/domain"
)

// HolderUseCase answers read-only directory queries.
type HolderUseCase struct {
	holders HolderRepository
}

// NewHolderUseCase creates a new HolderUseCase.
func NewHolderUseCase(holders HolderRepository) *HolderUseCase {
	return &HolderUseCase{holders: holders}
}

// ListHolders returns every holder in the directory.
func (uc *HolderUseCase) ListHolders(ctx context.Context) ([]*domain.Holder, error) {
	return uc.holders.ListHolders(ctx)
}

// GetHolder retrieves a holder by id.
func (uc *HolderUseCase) GetHolder(ctx context.Context, id string) (*domain.Holder, error) {
	return uc.holders.GetHolder(ctx, id)
}

// GetAccount resolves an account by id across all holders.
func (uc *HolderUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.holders.GetAccount(ctx, id)
}
