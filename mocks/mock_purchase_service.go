package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// MockPurchaseService is a mock implementation of service.PurchaseService.
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreateManual(ctx context.Context, raffleID uuid.UUID, input service.ManualPurchaseInput) (*service.ManualPurchaseResult, error) {
	args := m.Called(ctx, raffleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ManualPurchaseResult), args.Error(1)
}
