package usecase

import (
	"context"
	"time"

	"github.com/dkotenko/gotransfer/internal/domain"
)

// HolderRepository is the read-only directory of holders and their accounts.
type HolderRepository interface {
	ListHolders(ctx context.Context) ([]*domain.Holder, error)
	GetHolder(ctx context.Context, id string) (*domain.Holder, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
