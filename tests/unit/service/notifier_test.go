package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
	"github.com/Boldmaa4421/raffle-app/internal/service"
	"github.com/Boldmaa4421/raffle-app/mocks"
)

func pendingPurchase(id uuid.UUID, phone string) *domain.Purchase {
	return &domain.Purchase{
		ID:        id,
		PhoneE164: phone,
		SmsStatus: domain.SmsStatusUnsent,
	}
}

func TestDispatch_SendsAndMarksSent(t *testing.T) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	sender := new(mocks.MockSmsSender)

	raffle := testRaffle(5000)
	id := uuid.New()
	codes := []string{"A1B2-000001", "A1B2-000002"}
	purchaseRepo.On("GetByID", mock.Anything, id).Return(pendingPurchase(id, "+97699019096"), nil)
	purchaseRepo.On("TicketCodes", mock.Anything, id).Return(codes, nil)
	sender.On("Send", mock.Anything, "+97699019096", service.SmsText(raffle.Title, codes)).
		Return(port.SendResult{OK: true, StatusCode: 200})
	purchaseRepo.On("MarkSmsSent", mock.Anything, id).Return(nil)

	n := service.NewNotifier(purchaseRepo, sender, 2)
	n.Dispatch(context.Background(), raffle, []uuid.UUID{id})

	purchaseRepo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestDispatch_FailureRecordedWithStatus(t *testing.T) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	sender := new(mocks.MockSmsSender)

	raffle := testRaffle(5000)
	id := uuid.New()
	purchaseRepo.On("GetByID", mock.Anything, id).Return(pendingPurchase(id, "+97699019096"), nil)
	purchaseRepo.On("TicketCodes", mock.Anything, id).Return([]string{"A1B2-000001"}, nil)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(port.SendResult{OK: false, StatusCode: 502, Error: "gateway status 502: bad gateway"})
	purchaseRepo.On("MarkSmsFailed", mock.Anything, id, "[502] gateway status 502: bad gateway").Return(nil)

	n := service.NewNotifier(purchaseRepo, sender, 1)
	n.Dispatch(context.Background(), raffle, []uuid.UUID{id})

	purchaseRepo.AssertExpectations(t)
	purchaseRepo.AssertNotCalled(t, "MarkSmsSent", mock.Anything, mock.Anything)
}

func TestDispatch_SkipsAlreadySent(t *testing.T) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	sender := new(mocks.MockSmsSender)

	raffle := testRaffle(5000)
	id := uuid.New()
	p := pendingPurchase(id, "+97699019096")
	p.SmsStatus = domain.SmsStatusSent
	purchaseRepo.On("GetByID", mock.Anything, id).Return(p, nil)

	n := service.NewNotifier(purchaseRepo, sender, 1)
	n.Dispatch(context.Background(), raffle, []uuid.UUID{id})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_SkipsWithoutPhone(t *testing.T) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	sender := new(mocks.MockSmsSender)

	raffle := testRaffle(5000)
	id := uuid.New()
	purchaseRepo.On("GetByID", mock.Anything, id).Return(pendingPurchase(id, ""), nil)

	n := service.NewNotifier(purchaseRepo, sender, 1)
	n.Dispatch(context.Background(), raffle, []uuid.UUID{id})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_SkipsWithoutCodes(t *testing.T) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	sender := new(mocks.MockSmsSender)

	raffle := testRaffle(5000)
	id := uuid.New()
	purchaseRepo.On("GetByID", mock.Anything, id).Return(pendingPurchase(id, "+97699019096"), nil)
	purchaseRepo.On("TicketCodes", mock.Anything, id).Return([]string{}, nil)

	n := service.NewNotifier(purchaseRepo, sender, 1)
	n.Dispatch(context.Background(), raffle, []uuid.UUID{id})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

// boundedSender counts how many sends run at once.
type boundedSender struct {
	mu      sync.Mutex
	active  int32
	maxSeen int32
}

func (s *boundedSender) Send(ctx context.Context, toE164, text string) port.SendResult {
	cur := atomic.AddInt32(&s.active, 1)
	s.mu.Lock()
	if cur > s.maxSeen {
		s.maxSeen = cur
	}
	s.mu.Unlock()
	defer atomic.AddInt32(&s.active, -1)
	return port.SendResult{OK: true, StatusCode: 200}
}

func TestDispatch_BoundedConcurrency(t *testing.T) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	sender := &boundedSender{}

	raffle := testRaffle(5000)
	ids := make([]uuid.UUID, 20)
	for i := range ids {
		ids[i] = uuid.New()
		purchaseRepo.On("GetByID", mock.Anything, ids[i]).Return(pendingPurchase(ids[i], "+97699019096"), nil)
		purchaseRepo.On("TicketCodes", mock.Anything, ids[i]).Return([]string{"A1B2-000001"}, nil)
		purchaseRepo.On("MarkSmsSent", mock.Anything, ids[i]).Return(nil)
	}

	n := service.NewNotifier(purchaseRepo, sender, 3)
	n.Dispatch(context.Background(), raffle, ids)

	assert.LessOrEqual(t, sender.maxSeen, int32(3))
	purchaseRepo.AssertNumberOfCalls(t, "MarkSmsSent", 20)
}

func TestSmsText(t *testing.T) {
	text := service.SmsText("Morin Sugalaa", []string{"A1B2-000001", "A1B2-000002"})
	assert.Contains(t, text, "Morin Sugalaa")
	assert.Contains(t, text, "A1B2-000001, A1B2-000002")
	assert.Contains(t, text, "Таны сугалааны код")
}
