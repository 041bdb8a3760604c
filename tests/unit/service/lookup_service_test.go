package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/service"
	"github.com/Boldmaa4421/raffle-app/mocks"
)

func TestByPhone_NormalizesBeforeQuerying(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)

	want := []domain.PurchaseWithCodes{{ID: uuid.New(), Codes: []string{"A1B2-000001"}}}
	purchaseRepo.On("ListByPhone", mock.Anything, raffle.ID, "+97699019096").Return(want, nil)

	svc := service.NewLookupService(raffleRepo, purchaseRepo)
	got, err := svc.ByPhone(context.Background(), raffle.ID, "99 01 90 96")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestByPhone_InvalidPhoneReturnsEmpty(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)

	svc := service.NewLookupService(raffleRepo, purchaseRepo)
	got, err := svc.ByPhone(context.Background(), raffle.ID, "not a phone")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	purchaseRepo.AssertNotCalled(t, "ListByPhone", mock.Anything, mock.Anything, mock.Anything)
}

func TestByPhone_RaffleNotFound(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)

	id := uuid.New()
	raffleRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrRaffleNotFound)

	svc := service.NewLookupService(raffleRepo, purchaseRepo)
	_, err := svc.ByPhone(context.Background(), id, "99019096")

	assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
}

func TestByPhone_NilResultBecomesEmptySlice(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)
	purchaseRepo.On("ListByPhone", mock.Anything, raffle.ID, "+97699019096").
		Return([]domain.PurchaseWithCodes{}, nil)

	svc := service.NewLookupService(raffleRepo, purchaseRepo)
	got, err := svc.ByPhone(context.Background(), raffle.ID, "99019096")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}
