package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, input service.ImageUploadInput) (*service.ImageUploadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageUploadOutput), args.Error(1)
}

func (m *MockUploadService) PresignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
