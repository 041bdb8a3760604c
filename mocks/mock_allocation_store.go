package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// MockAllocationStore is a mock implementation of port.AllocationStore.
type MockAllocationStore struct {
	mock.Mock
}

func (m *MockAllocationStore) AllocateBatch(ctx context.Context, raffleID uuid.UUID, prefix string, groups []domain.PurchaseGroup, sourceFile string) (*port.BatchResult, error) {
	args := m.Called(ctx, raffleID, prefix, groups, sourceFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.BatchResult), args.Error(1)
}

func (m *MockAllocationStore) AllocateDirect(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, []string, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Purchase), args.Get(1).([]string), args.Error(2)
}

func (m *MockAllocationStore) Reset(ctx context.Context, raffleID uuid.UUID) (*port.ResetResult, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ResetResult), args.Error(1)
}
