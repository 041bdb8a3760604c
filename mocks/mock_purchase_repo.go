package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// MockPurchaseRepo is a mock implementation of port.PurchaseRepository.
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) TicketCodes(ctx context.Context, purchaseID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPurchaseRepo) ListByPhone(ctx context.Context, raffleID uuid.UUID, phoneE164 string) ([]domain.PurchaseWithCodes, error) {
	args := m.Called(ctx, raffleID, phoneE164)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithCodes), args.Error(1)
}

func (m *MockPurchaseRepo) MarkSmsSent(ctx context.Context, purchaseID uuid.UUID) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

func (m *MockPurchaseRepo) MarkSmsFailed(ctx context.Context, purchaseID uuid.UUID, reason string) error {
	args := m.Called(ctx, purchaseID, reason)
	return args.Error(0)
}
