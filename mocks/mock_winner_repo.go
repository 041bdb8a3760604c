package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// MockWinnerRepo is a mock implementation of port.WinnerRepository.
type MockWinnerRepo struct {
	mock.Mock
}

func (m *MockWinnerRepo) Upsert(ctx context.Context, winner *domain.Winner) error {
	args := m.Called(ctx, winner)
	return args.Error(0)
}

func (m *MockWinnerRepo) GetByRaffle(ctx context.Context, raffleID uuid.UUID) ([]domain.Winner, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Winner), args.Error(1)
}
