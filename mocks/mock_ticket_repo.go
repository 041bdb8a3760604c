package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// MockTicketRepo is a mock implementation of port.TicketRepository.
type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) GetByCode(ctx context.Context, raffleID uuid.UUID, code string) (*domain.Ticket, error) {
	args := m.Called(ctx, raffleID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]domain.TicketExportRow, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TicketExportRow), args.Error(1)
}
