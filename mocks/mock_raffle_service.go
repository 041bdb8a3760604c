package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// MockRaffleService is a mock implementation of service.RaffleService.
type MockRaffleService struct {
	mock.Mock
}

func (m *MockRaffleService) Create(ctx context.Context, input service.RaffleInput) (*domain.Raffle, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleService) List(ctx context.Context) ([]domain.RaffleWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaffleWithCount), args.Error(1)
}

func (m *MockRaffleService) Update(ctx context.Context, id uuid.UUID, input service.RaffleInput) (*domain.Raffle, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRaffleService) Reset(ctx context.Context, id uuid.UUID) (*port.ResetResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ResetResult), args.Error(1)
}

func (m *MockRaffleService) Stats(ctx context.Context, id uuid.UUID) (*domain.RaffleStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaffleStats), args.Error(1)
}

func (m *MockRaffleService) AnnounceWinner(ctx context.Context, raffleID uuid.UUID, input service.WinnerInput) (*domain.Winner, error) {
	args := m.Called(ctx, raffleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Winner), args.Error(1)
}

func (m *MockRaffleService) Winners(ctx context.Context, raffleID uuid.UUID) ([]domain.Winner, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Winner), args.Error(1)
}

func (m *MockRaffleService) ExportRows(ctx context.Context, raffleID uuid.UUID) ([]domain.TicketExportRow, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TicketExportRow), args.Error(1)
}
