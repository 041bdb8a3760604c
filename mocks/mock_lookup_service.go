package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// MockLookupService is a mock implementation of service.LookupService.
type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) ByPhone(ctx context.Context, raffleID uuid.UUID, rawPhone string) ([]domain.PurchaseWithCodes, error) {
	args := m.Called(ctx, raffleID, rawPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithCodes), args.Error(1)
}
