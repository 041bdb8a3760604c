package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportRows(ctx context.Context, input service.ImportInput) (*domain.ImportSummary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportSummary), args.Error(1)
}

func (m *MockImportService) ImportSpreadsheet(ctx context.Context, raffleID uuid.UUID, sourceFile string, r io.Reader) (*domain.ImportSummary, error) {
	args := m.Called(ctx, raffleID, sourceFile, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportSummary), args.Error(1)
}
