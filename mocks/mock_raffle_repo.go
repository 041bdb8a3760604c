package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// MockRaffleRepo is a mock implementation of port.RaffleRepository.
type MockRaffleRepo struct {
	mock.Mock
}

func (m *MockRaffleRepo) Create(ctx context.Context, raffle *domain.Raffle) error {
	args := m.Called(ctx, raffle)
	return args.Error(0)
}

func (m *MockRaffleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleRepo) List(ctx context.Context) ([]domain.RaffleWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaffleWithCount), args.Error(1)
}

func (m *MockRaffleRepo) Update(ctx context.Context, raffle *domain.Raffle) error {
	args := m.Called(ctx, raffle)
	return args.Error(0)
}

func (m *MockRaffleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRaffleRepo) Stats(ctx context.Context, id uuid.UUID) (*domain.RaffleStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaffleStats), args.Error(1)
}
