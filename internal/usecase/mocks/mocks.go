// Package mocks provides hand-rolled test doubles for the use case
// interfaces. Each mock behaves as a small in-memory implementation unless
// a Func field overrides the corresponding method.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dkotenko/gotransfer/internal/domain"
)

// MockHolderRepository is a mock implementation of usecase.HolderRepository.
type MockHolderRepository struct {
	mu      sync.RWMutex
	holders map[string]*domain.Holder

	ListHoldersFunc func(ctx context.Context) ([]*domain.Holder, error)
	GetHolderFunc   func(ctx context.Context, id string) (*domain.Holder, error)
	GetAccountFunc  func(ctx context.Context, id string) (*domain.Account, error)
}

func NewMockHolderRepository() *MockHolderRepository {
	return &MockHolderRepository{
		holders: make(map[string]*domain.Holder),
	}
}

// Add registers a holder with the default in-memory behavior.
func (m *MockHolderRepository) Add(h *domain.Holder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holders[h.ID()] = h
}

func (m *MockHolderRepository) ListHolders(ctx context.Context) ([]*domain.Holder, error) {
	if m.ListHoldersFunc != nil {
		return m.ListHoldersFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	holders := make([]*domain.Holder, 0, len(m.holders))
	for _, h := range m.holders {
		holders = append(holders, h)
	}
	return holders, nil
}

func (m *MockHolderRepository) GetHolder(ctx context.Context, id string) (*domain.Holder, error) {
	if m.GetHolderFunc != nil {
		return m.GetHolderFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.holders[id]; ok {
		return h, nil
	}
	return nil, domain.ErrHolderNotFound
}

func (m *MockHolderRepository) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, h := range m.holders {
		if a := h.Account(id); a != nil {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	counter atomic.Int64

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return fmt.Sprintf("generated-id-%d", m.counter.Add(1))
}
