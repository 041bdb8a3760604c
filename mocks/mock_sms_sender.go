package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// MockSmsSender is a mock implementation of port.SmsSender.
type MockSmsSender struct {
	mock.Mock
}

func (m *MockSmsSender) Send(ctx context.Context, toE164, text string) port.SendResult {
	args := m.Called(ctx, toE164, text)
	return args.Get(0).(port.SendResult)
}
