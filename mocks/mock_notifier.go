package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// MockNotifier is a mock implementation of service.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, raffle *domain.Raffle, purchaseIDs []uuid.UUID) {
	m.Called(ctx, raffle, purchaseIDs)
}
