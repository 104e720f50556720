// Package memory holds the in-memory holder directory. The directory is
// built once at startup and never changes afterwards; all mutation in the
// system happens inside accounts, behind their own locks.
package memory

import (
	"context"
	"sort"

	"github.com/dkotenko/gotransfer/internal/domain"
)

// HolderRepository implements usecase.HolderRepository over an immutable
// map of holders.
type HolderRepository struct {
	holders map[string]*domain.Holder
}

// NewHolderRepository creates a repository owning a copy of the given
// holders.
func NewHolderRepository(holders []*domain.Holder) *HolderRepository {
	byID := make(map[string]*domain.Holder, len(holders))
	for _, h := range holders {
		byID[h.ID()] = h
	}

	return &HolderRepository{holders: byID}
}

// ListHolders returns all holders ordered by id.
func (r *HolderRepository) ListHolders(_ context.Context) ([]*domain.Holder, error) {
	holders := make([]*domain.Holder, 0, len(r.holders))
	for _, h := range r.holders {
		holders = append(holders, h)
	}

	sort.Slice(holders, func(i, j int) bool { return holders[i].ID() < holders[j].ID() })

	return holders, nil
}

// GetHolder retrieves a holder by id.
func (r *HolderRepository) GetHolder(_ context.Context, id string) (*domain.Holder, error) {
	h, ok := r.holders[id]
	if !ok {
		return nil, domain.ErrHolderNotFound
	}

	return h, nil
}

// GetAccount scans all holders for the account with the given id.
func (r *HolderRepository) GetAccount(_ context.Context, id string) (*domain.Account, error) {
	for _, h := range r.holders {
		if a := h.Account(id); a != nil {
			return a, nil
		}
	}

	return nil, domain.ErrAccountNotFound
}
