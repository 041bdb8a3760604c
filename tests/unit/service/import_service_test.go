package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
	"github.com/Boldmaa4421/raffle-app/internal/service"
	"github.com/Boldmaa4421/raffle-app/mocks"
)

var testImportConfig = config.ImportConfig{
	MaxQty:           500,
	MaxMultiplier:    1000,
	BatchSize:        200,
	BatchTimeoutSecs: 60,
	PreviewLimit:     500,
}

func testRaffle(price int64) *domain.Raffle {
	return &domain.Raffle{
		ID:          uuid.New(),
		Title:       "Test Raffle",
		TicketPrice: price,
	}
}

// anchorRow builds a raw row that the scanner accepts as a complete group.
func anchorRow(amount float64, phone string) domain.RawRow {
	return domain.RawRow{
		PurchasedAt: "2025-01-05",
		Amount:      amount,
		Phone:       phone,
	}
}

func TestImportRows_RaffleNotFound(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	id := uuid.New()
	raffleRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrRaffleNotFound)

	svc := service.NewImportService(raffleRepo, store, notifier, testImportConfig)
	summary, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: id,
		Rows:     []domain.RawRow{anchorRow(5000, "99019096")},
	})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
	store.AssertNotCalled(t, "AllocateBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportRows_InvalidTicketPrice(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(0)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)

	svc := service.NewImportService(raffleRepo, store, notifier, testImportConfig)
	_, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: raffle.ID,
		Rows:     []domain.RawRow{anchorRow(5000, "99019096")},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTicketPrice)
}

func TestImportRows_EmptyRows(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)

	svc := service.NewImportService(raffleRepo, store, notifier, testImportConfig)
	_, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: raffle.ID,
		Rows:     nil,
	})

	assert.ErrorIs(t, err, domain.ErrEmptyImport)
}

func TestImportRows_AllocatesAndNotifies(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)

	notifyID := uuid.New()
	prefix := domain.TicketPrefix(raffle.ID)
	store.On("AllocateBatch", mock.Anything, raffle.ID, prefix, mock.Anything, "statement.xlsx").
		Return(&port.BatchResult{
			InsertedPurchases: 2,
			InsertedTickets:   4,
			NotifyIDs:         []uuid.UUID{notifyID},
		}, nil)
	notifier.On("Dispatch", mock.Anything, raffle, []uuid.UUID{notifyID}).Return()

	svc := service.NewImportService(raffleRepo, store, notifier, testImportConfig)
	summary, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID:   raffle.ID,
		SourceFile: "statement.xlsx",
		Rows: []domain.RawRow{
			anchorRow(15000, "99019096"),
			anchorRow(5000, "88112233"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.ParsedGroups)
	assert.Equal(t, 2, summary.InsertedPurchases)
	assert.Equal(t, 4, summary.InsertedTickets)
	assert.Equal(t, 0, summary.SkippedCount)
	assert.Equal(t, 0, summary.FailedBatches)
	notifier.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestImportRows_OverpayPreview(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)
	store.On("AllocateBatch", mock.Anything, raffle.ID, mock.Anything, mock.Anything, mock.Anything).
		Return(&port.BatchResult{InsertedPurchases: 1, InsertedTickets: 3}, nil)

	svc := service.NewImportService(raffleRepo, store, notifier, testImportConfig)
	summary, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: raffle.ID,
		Rows:     []domain.RawRow{anchorRow(17000, "99019096")},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.OverpaidCount)
	require.Len(t, summary.OverpaidPreview, 1)
	assert.Equal(t, int64(17000), summary.OverpaidPreview[0].PaidAmount)
	assert.Equal(t, int64(15000), summary.OverpaidPreview[0].ExpectedAmount)
	assert.Equal(t, int64(2000), summary.OverpaidPreview[0].OverpayDiff)
}

func TestImportRows_SkipsReported(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)
	store.On("AllocateBatch", mock.Anything, raffle.ID, mock.Anything, mock.Anything, mock.Anything).
		Return(&port.BatchResult{InsertedPurchases: 1, InsertedTickets: 1}, nil)

	svc := service.NewImportService(raffleRepo, store, notifier, testImportConfig)
	summary, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: raffle.ID,
		Rows: []domain.RawRow{
			anchorRow(5000, "99019096"),
			// Underpaid row with its own phone becomes a skip, not a group.
			anchorRow(3000, "88112233"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ParsedGroups)
	assert.Equal(t, 1, summary.SkippedCount)
	require.Len(t, summary.SkippedPreview, 1)
	assert.Equal(t, 3, summary.SkippedPreview[0].Row)
}

func TestImportRows_BatchFailureStopsImport(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)
	store.On("AllocateBatch", mock.Anything, raffle.ID, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("deadlock detected")).Once()

	cfg := testImportConfig
	cfg.BatchSize = 1

	svc := service.NewImportService(raffleRepo, store, notifier, cfg)
	summary, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: raffle.ID,
		Rows: []domain.RawRow{
			anchorRow(5000, "99019096"),
			anchorRow(5000, "88112233"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.ParsedGroups)
	assert.Equal(t, 1, summary.FailedBatches)
	assert.Equal(t, 0, summary.InsertedPurchases)
	// The second batch is never attempted once one fails.
	store.AssertNumberOfCalls(t, "AllocateBatch", 1)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportRows_BatchesSequentially(t *testing.T) {
	raffleRepo := new(mocks.MockRaffleRepo)
	store := new(mocks.MockAllocationStore)
	notifier := new(mocks.MockNotifier)

	raffle := testRaffle(5000)
	raffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)
	store.On("AllocateBatch", mock.Anything, raffle.ID, mock.Anything, mock.MatchedBy(func(groups []domain.PurchaseGroup) bool {
		return len(groups) == 1
	}), mock.Anything).Return(&port.BatchResult{InsertedPurchases: 1, InsertedTickets: 1}, nil)

	cfg := testImportConfig
	cfg.BatchSize = 1

	svc := service.NewImportService(raffleRepo, store, notifier, cfg)
	summary, err := svc.ImportRows(context.Background(), service.ImportInput{
		RaffleID: raffle.ID,
		Rows: []domain.RawRow{
			anchorRow(5000, "99019096"),
			anchorRow(5000, "88112233"),
			anchorRow(5000, "95051234"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.InsertedPurchases)
	store.AssertNumberOfCalls(t, "AllocateBatch", 3)
}
